package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var categorizeShowAll bool

var categorizeCmd = &cobra.Command{
	Use:   "categorize [question]",
	Short: "Classify a single question from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		question := strings.Join(args, " ")
		result, err := appInstance.Engine.Categorize(cmd.Context(), question)
		if err != nil {
			return fmt.Errorf("categorization failed: %w", err)
		}

		marker := color.YellowString("low similarity")
		if result.HighSimilarity {
			marker = color.GreenString("high similarity")
		}
		fmt.Printf("Category: %s (%s)\n", color.CyanString(result.CategoryID), result.CategoryName)
		fmt.Printf("Confidence: %.3f (%s, method=%s)\n", result.Confidence, marker, result.Method)

		if categorizeShowAll {
			fmt.Println()
			printSimilarityTable(result.Similarities, result.CategoryID)
		}
		return nil
	},
}

// printSimilarityTable renders the full breakdown, highest score first.
func printSimilarityTable(similarities map[string]float64, winner string) {
	ids := make([]string, 0, len(similarities))
	for id := range similarities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return similarities[ids[i]] > similarities[ids[j]] })

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", "Similarity"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, id := range ids {
		label := id
		if id == winner {
			label = color.GreenString(id)
		}
		table.Append([]string{label, fmt.Sprintf("%.4f", similarities[id])})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(categorizeCmd)
	categorizeCmd.Flags().BoolVar(&categorizeShowAll, "all", false, "Show the similarity score for every category")
}
