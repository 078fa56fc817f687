package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatch(t *testing.T, dir string) (*atomic.Int32, context.CancelFunc, <-chan error) {
	t.Helper()

	co := NewCore(&Config{
		SourceDirectory: dir,
		PostsDirectory:  DefaultPostsDirectory,
		MetadataFile:    DefaultMetadataFile,
		OutputFile:      "_redirects",
	})

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)

	go func() {
		errc <- co.Watch(ctx, func() error {
			calls.Add(1)
			_, err := co.Build()
			return err
		})
	}()

	return &calls, cancel, errc
}

// touchPosts keeps changing the posts directory until fn holds, as the
// watcher may not be registered yet on the first changes.
func touchPosts(t *testing.T, dir string, fn func() bool) {
	t.Helper()

	i := 0
	require.Eventually(t, func() bool {
		i++
		post := filepath.Join(dir, "posts", "20240101_alpha")
		if err := os.MkdirAll(post, 0777); err != nil {
			return false
		}
		if err := os.WriteFile(filepath.Join(post, DefaultMetadataFile), []byte(fmt.Sprintf("categories: [SQL]\n# %d\n", i)), 0644); err != nil {
			return false
		}
		return fn()
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "posts"), 0777))

	calls, cancel, errc := startWatch(t, dir)

	touchPosts(t, dir, func() bool {
		return calls.Load() > 0
	})

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(filepath.Join(dir, "_redirects"))
		return err == nil && string(data) == "/alpha /posts/20240101_alpha\n/category/sql /#category=SQL\n"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-errc)
}

func TestWatchMissingPostsDirectory(t *testing.T) {
	dir := t.TempDir()

	calls, cancel, errc := startWatch(t, dir)

	select {
	case err := <-errc:
		t.Fatalf("watch stopped early: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	touchPosts(t, dir, func() bool {
		return calls.Load() > 0
	})

	cancel()
	assert.NoError(t, <-errc)
}

func TestWatchIgnoresOutputFile(t *testing.T) {
	dir := t.TempDir()

	calls, cancel, errc := startWatch(t, dir)
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "_redirects"), []byte("/a /posts/a\n"), 0644))
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, calls.Load())

	cancel()
	assert.NoError(t, <-errc)
}
