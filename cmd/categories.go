package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the known categories and their example counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		categories := appInstance.Engine.Categories()
		if len(categories) == 0 {
			fmt.Println("Engine not initialized, no categories available.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Display Name", "Examples"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, cat := range categories {
			table.Append([]string{cat.ID, cat.DisplayName, strconv.Itoa(len(cat.Examples))})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
