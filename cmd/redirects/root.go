package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.hacdias.com/redirects/core"
	"go.hacdias.com/redirects/log"
)

var v = viper.New()

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("source", ".", "site source directory")
	flags.String("posts", core.DefaultPostsDirectory, "posts directory, relative to the source")
	flags.String("metadata", core.DefaultMetadataFile, "metadata file inside each post folder")
	flags.String("output", core.DefaultOutputFile, "redirects file, relative to the source")
	flags.Bool("dev", false, "enable development mode (debug logging)")

	_ = v.BindPFlag("SourceDirectory", flags.Lookup("source"))
	_ = v.BindPFlag("PostsDirectory", flags.Lookup("posts"))
	_ = v.BindPFlag("MetadataFile", flags.Lookup("metadata"))
	_ = v.BindPFlag("OutputFile", flags.Lookup("output"))
	_ = v.BindPFlag("Development", flags.Lookup("dev"))

	buildFlags(rootCmd)
}

var rootCmd = &cobra.Command{
	Use:               "redirects",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "Generates the redirects file of a blog from its posts",
	SilenceUsage:      true,
	RunE:              runBuild,
}

func newCore() (*core.Core, error) {
	c, err := core.ParseConfig(v)
	if err != nil {
		return nil, err
	}

	if c.Development {
		log.SetDebug()
	}

	return core.NewCore(c), nil
}
