package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"sorucat/internal/categorizer"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the canned regression questions through the engine",
	Long: `Classifies one representative question per category and reports
whether each landed in its expected category. Useful after changing the
embedding model or provider configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Question", "Got", "Want", "Confidence", "Result"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		failures := 0
		for _, tc := range categorizer.RegressionQuestions() {
			res, err := appInstance.Engine.Categorize(cmd.Context(), tc.Question)
			if err != nil {
				table.Append([]string{tc.Question, "-", tc.Want, "-", color.RedString("ERROR: %v", err)})
				failures++
				continue
			}
			status := color.GreenString("OK")
			if res.CategoryID != tc.Want {
				status = color.RedString("MISMATCH")
				failures++
			}
			table.Append([]string{tc.Question, res.CategoryID, tc.Want, fmt.Sprintf("%.3f", res.Confidence), status})
		}
		table.Render()

		if failures > 0 {
			return fmt.Errorf("%d of %d regression questions failed", failures, len(categorizer.RegressionQuestions()))
		}
		fmt.Println("All regression questions categorized as expected.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}
