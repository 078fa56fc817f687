package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints the redirects without writing them",
	RunE: func(cmd *cobra.Command, args []string) error {
		co, err := newCore()
		if err != nil {
			return err
		}

		table, err := co.BuildRedirectTable()
		if err != nil {
			return err
		}

		for _, line := range table.Lines() {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}

		return nil
	},
}
