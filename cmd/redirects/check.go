package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var errOutdated = errors.New("redirects file is out of date")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Checks that the redirects file matches the posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		co, err := newCore()
		if err != nil {
			return err
		}

		existing, err := co.LoadRedirects(false)
		if err != nil {
			return err
		}

		table, err := co.BuildRedirectTable()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		expected := table.Map()

		missing := lo.Filter(lo.Keys(expected), func(src string, _ int) bool {
			return existing[src] != expected[src]
		})
		sort.Strings(missing)

		stale := lo.Filter(lo.Keys(existing), func(src string, _ int) bool {
			_, ok := expected[src]
			return !ok
		})
		sort.Strings(stale)

		for _, src := range missing {
			fmt.Fprintln(out, "M", src, expected[src])
		}

		for _, src := range stale {
			fmt.Fprintln(out, "S", src, existing[src])
		}

		duplicates := table.Duplicates()
		sources := lo.Keys(duplicates)
		sort.Strings(sources)
		for _, src := range sources {
			fmt.Fprintln(out, "D", src, strings.Join(duplicates[src], " "))
		}

		if len(missing) != 0 || len(stale) != 0 {
			return errOutdated
		}

		return nil
	},
}
