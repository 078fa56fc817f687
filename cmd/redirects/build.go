package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.hacdias.com/redirects/log"
)

func init() {
	buildFlags(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

func buildFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("watch", false, "rebuild when the posts change")
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Writes the redirects file",
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	co, err := newCore()
	if err != nil {
		return err
	}

	defer func() {
		_ = log.L().Sync()
	}()

	_, err = co.Build()
	if err != nil {
		return err
	}

	watch, err := cmd.Flags().GetBool("watch")
	if err != nil || !watch {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	log.S().Info("watching for changes")
	return co.Watch(ctx, func() error {
		_, err := co.Build()
		return err
	})
}
