package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultPostsDirectory = "posts"
	DefaultMetadataFile   = "index.qmd"
	DefaultOutputFile     = "_site/_redirects"
)

type Config struct {
	Development     bool
	SourceDirectory string
	PostsDirectory  string // relative to SourceDirectory
	MetadataFile    string // relative to each post folder
	OutputFile      string // relative to SourceDirectory
}

// SetDefaults registers the default values of [Config] in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("SourceDirectory", ".")
	v.SetDefault("PostsDirectory", DefaultPostsDirectory)
	v.SetDefault("MetadataFile", DefaultMetadataFile)
	v.SetDefault("OutputFile", DefaultOutputFile)
	v.SetDefault("Development", false)
}

// ParseConfig parses the configuration from a redirects.{yaml,toml,json} file
// in the source directory, or else in the working directory. A missing
// configuration file is not an error.
func ParseConfig(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetConfigName("redirects")
	v.SetEnvPrefix("redirects")
	v.AutomaticEnv()

	// Set by flags or environment, before the file is read.
	if src := v.GetString("SourceDirectory"); src != "" && src != "." {
		v.AddConfigPath(src)
	}
	v.AddConfigPath(".")

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	conf := &Config{}
	err = v.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	err = conf.validate()
	if err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) validate() error {
	var err error

	c.SourceDirectory, err = filepath.Abs(c.SourceDirectory)
	if err != nil {
		return err
	}

	c.PostsDirectory, err = cleanRelative("PostsDirectory", c.PostsDirectory)
	if err != nil {
		return err
	}

	c.OutputFile, err = cleanRelative("OutputFile", c.OutputFile)
	if err != nil {
		return err
	}

	if c.OutputFile == "." {
		return errors.New("config: OutputFile is empty")
	}

	if strings.TrimSpace(c.MetadataFile) == "" {
		return errors.New("config: MetadataFile is empty")
	}

	return nil
}

func cleanRelative(name, p string) (string, error) {
	if filepath.IsAbs(p) {
		return "", fmt.Errorf("config: %s must be relative to SourceDirectory", name)
	}

	p = filepath.Clean(p)
	if p == ".." || strings.HasPrefix(p, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("config: %s must be inside SourceDirectory", name)
	}

	return p, nil
}
