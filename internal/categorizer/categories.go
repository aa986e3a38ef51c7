package categorizer

import "sorucat/internal/models"

// DefaultCategories returns the nine support-question categories the
// service ships with. The example phrases define each category's semantic
// center; they are embedded once at startup and averaged into prototype
// vectors. Order matters: it is the canonical order used for tie-breaking
// and for the similarity breakdown.
func DefaultCategories() []models.Category {
	return []models.Category{
		{
			ID:          "yorum",
			DisplayName: "yorum",
			Examples: []string{
				"Bu ürün çok güzel, beğendim",
				"Ürün hakkında yorum yapabilir misiniz?",
				"Bu ürün kaliteli mi?",
				"Kullanıcı değerlendirmeleri nasıl?",
				"Ürün performansı nasıl?",
				"Bu ürünü tavsiye eder misiniz?",
				"Ürün beklentilerimi karşıladı mı?",
				"Başka kullanıcıların görüşleri nedir?",
				"Ürün hakkındaki genel yorumlar nelerdir?",
				"Ürün hakkında olumlu ve olumsuz yorumlar neler?",
				"Kullanıcıların genel memnuniyeti nedir?",
			},
		},
		{
			ID:          "ozel_talep",
			DisplayName: "özel talep",
			Examples: []string{
				"Özel bir renk istiyorum",
				"Farklı boyutta sipariş verebilir miyim?",
				"Özel paketleme yapabilir misiniz?",
				"Kişiselleştirilmiş ürün alabilir miyim?",
				"Özel sipariş verebilir miyim?",
				"Farklı model istiyorum",
				"Ürün üzerinde değişiklik yapılabilir mi?",
				"Kişiye özel tasarım mümkün mü?",
				"Ürünü istediğim şekilde özelleştirebilir miyim?",
				"Ekstra aksesuar ekleyebilir miyim?",
				"Ürün üzerinde isim yazdırabilir miyim?",
			},
		},
		{
			ID:          "teknik",
			DisplayName: "teknik",
			Examples: []string{
				"Ürün çalışmıyor, yardım edin",
				"Teknik destek alabilir miyim?",
				"Garanti kapsamında mı?",
				"Servis merkezi nerede?",
				"Ürün arızalı",
				"Teknik sorun yaşıyorum",
				"Ürünün özellikleri hakkında detaylı bilgi alabilir miyim?",
				"Ürün güncelleme veya yazılım desteği var mı?",
				"Cihaz açılmıyor, ne yapmalıyım?",
				"Ürünün garantisi ne kadar?",
				"Teknik kullanım kılavuzu var mı?",
				"Ürünle ilgili sık karşılaşılan teknik sorunlar nelerdir?",
			},
		},
		{
			ID:          "yanlis_hasarli",
			DisplayName: "Yanlış veya hasarlı ürün",
			Examples: []string{
				"Ürün hasarlı geldi",
				"Yanlış ürün gönderildi",
				"Ürün kırık geldi",
				"Eksik parça var",
				"Ürün bozuk geldi",
				"Hatalı ürün aldım",
				"Paketleme yeterli değildi, ürün zarar gördü",
				"Yanlış model gönderilmiş",
				"Ürün beklediğimden farklı ve hasarlı",
				"Ürün tesliminde problem yaşadım",
				"Paket teslim edilirken zarar görmüş",
			},
		},
		{
			ID:          "orijinallik",
			DisplayName: "Orijinallik",
			Examples: []string{
				"Bu ürün orijinal mi?",
				"Sahte ürün mü?",
				"Gerçek ürün mü?",
				"Orijinal değil mi?",
				"Bu ürün sahte mi?",
				"Orijinal ürün mü?",
				"Ürünün garantisi var mı?",
				"Markanın lisanslı ürünü mü?",
				"Ürün sertifikalı mı?",
				"Ürünle ilgili sahtecilik şüphesi var mı?",
				"Ürünün üreticisi kimdir?",
			},
		},
		{
			ID:          "iade_degisim",
			DisplayName: "İade ve değişim",
			Examples: []string{
				"İade etmek istiyorum",
				"Değiştirmek istiyorum",
				"Para iadesi alabilir miyim?",
				"İade şartları neler?",
				"Ürünü değiştirmek istiyorum",
				"İade nasıl yapılır?",
				"Ürünü iade etmek için ne yapmalıyım?",
				"Ürün değişimi mümkün mü?",
				"İade süreci ne kadar sürüyor?",
				"Ürün teslim aldıktan sonra iade edebilir miyim?",
				"İade kargo kodu nereden alınır?",
			},
		},
		{
			ID:          "stok",
			DisplayName: "stok",
			Examples: []string{
				"Bu ürün stokta var mı?",
				"Kaç tane kaldı?",
				"Stok durumu nasıl?",
				"Ne zaman gelir?",
				"Bu ürün mevcut mu?",
				"Stokta kaç tane var?",
				"Ürün tekrar stoklara ne zaman gelecek?",
				"Sipariş vermek için stok yeterli mi?",
				"Stok durumu hakkında bilgi alabilir miyim?",
				"Ürün stokta kalmadı mı?",
				"Stok yenileme süresi nedir?",
			},
		},
		{
			ID:          "kargo_bilgileri",
			DisplayName: "Kargo bilgileri",
			Examples: []string{
				"Hangi kargo firması?",
				"kargo", "kargo firması", "kargo ile gönderiyorsunuz",
				// Carrier names, incl. common misspellings seen in tickets.
				"mng", "mng kargo", "mng ile", "mng kargo ile gönderim",
				"yurtiçi", "yurtiçi kargo", "yurtici", "yurtiçi ile",
				"hepsijet", "hepsijet kargo", "hepsijet ile",
				"aras", "aras kargo", "aras ile gönderim",
				"dpd", "dpd kargo", "dpd ile",
				"dhl", "dhl kargo", "dhl ile gönderim",
				"kargoist", "kargoist ile", "kargoist kargo",
				"ptt", "ptt kargo", "ptt ile",
				"kargomsende", "kargomsende kargo", "kargomsende ile",
				"Kargo takip numarası nedir?",
				"Kargo durumu nasıl?",
				"Kargo bilgisi alabilir miyim?",
				"Kargo firması hangisi?",
				"Kargo takibi yapabilir miyim?",
				"Kargom ne zaman teslim edilir?",
				"Gönderim süresi nedir?",
				"Kargo teslimatında sorun yaşadım",
				"Kargo ile ilgili detaylı bilgi verebilir misiniz?",
				"Kargo teslimat adresini değiştirebilir miyim?",
				"Kargo gecikmesi ile ilgili bilgi almak istiyorum",
			},
		},
		{
			ID:          "siparis_teslimat",
			DisplayName: "Sipariş teslimat bilgileri",
			Examples: []string{
				"Siparişim ne zaman teslim edilecek?",
				"Ne zaman gelir?",
				"Teslimat süresi nedir?",
				"Sipariş durumu nasıl?",
				"Siparişim ne zaman gelir?",
				"Teslimat ne zaman?",
				"Siparişimin durumu hakkında bilgi verir misiniz?",
				"Sipariş teslimatı gecikiyor",
				"Ürün teslimat adresimi değiştirebilir miyim?",
				"Siparişimin kargoya verilme süresi nedir?",
				"Siparişle ilgili gecikme yaşanıyor mu?",
			},
		},
	}
}

// RegressionQuestions pairs one representative question per category with
// the category it must resolve to. Used by the /test endpoint and the
// selftest command.
func RegressionQuestions() []struct{ Question, Want string } {
	return []struct{ Question, Want string }{
		{"Bu ürün hakkında yorum yapabilir misiniz?", "yorum"},
		{"Özel bir sipariş vermek istiyorum", "ozel_talep"},
		{"Teknik destek alabilir miyim?", "teknik"},
		{"Ürün hasarlı geldi", "yanlis_hasarli"},
		{"Bu ürün orijinal mi?", "orijinallik"},
		{"İade nasıl yapılır?", "iade_degisim"},
		{"Bu ürün stokta var mı?", "stok"},
		{"Hangi kargo firması kullanıyorsunuz?", "kargo_bilgileri"},
		{"Siparişim ne zaman teslim edilecek?", "siparis_teslimat"},
	}
}
