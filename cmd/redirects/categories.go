package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Prints how many posts each category has",
	RunE: func(cmd *cobra.Command, args []string) error {
		co, err := newCore()
		if err != nil {
			return err
		}

		count, err := co.CountCategories()
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)

		err = enc.Encode(count)
		if err != nil {
			return err
		}

		return enc.Close()
	},
}
