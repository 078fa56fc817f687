package core

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		SourceDirectory: "/",
		PostsDirectory:  DefaultPostsDirectory,
		MetadataFile:    DefaultMetadataFile,
		OutputFile:      DefaultOutputFile,
	}
}

// newTestCore creates a [Core] over an in-memory filesystem. Each key of posts
// is a post folder; a non-empty value is written as its metadata file.
func newTestCore(t *testing.T, posts map[string]string) (*Core, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for folder, metadata := range posts {
		dir := filepath.Join(DefaultPostsDirectory, folder)
		require.NoError(t, fs.MkdirAll(dir, 0777))

		if metadata != "" {
			require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, DefaultMetadataFile), []byte(metadata), 0644))
		}
	}

	return NewCoreFromFs(testConfig(), fs), fs
}
