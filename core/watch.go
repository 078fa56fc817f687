package core

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch calls exec every time something changes in the posts directory,
// until ctx is done. New post folders are watched as they appear. When the
// posts directory does not exist yet, its closest existing parent is watched
// until it is created.
func (co *Core) Watch(ctx context.Context, exec func() error) error {
	log := co.log.Named("watcher")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	postsDir := co.cfg.PostsDirectory

	addTree := func(dir string) error {
		return co.sourceFS.Walk(dir, func(filename string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.IsDir() {
				return nil
			}

			return watcher.Add(filepath.Join(co.cfg.SourceDirectory, filename))
		})
	}

	addPosts := func() error {
		dir := postsDir
		for dir != "." {
			if ok, _ := co.sourceFS.DirExists(dir); ok {
				break
			}
			dir = filepath.Dir(dir)
		}

		if dir == postsDir {
			return addTree(postsDir)
		}

		log.Infow("posts directory does not exist, waiting for it", "path", postsDir)
		return watcher.Add(filepath.Join(co.cfg.SourceDirectory, dir))
	}

	err = addPosts()
	if err != nil {
		return fmt.Errorf("could not watch %s: %w", postsDir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Ignore CHMOD only events.
			if evt.Op == fsnotify.Chmod {
				continue
			}

			rel, err := filepath.Rel(co.cfg.SourceDirectory, evt.Name)
			if err != nil {
				continue
			}

			inPosts := isWithin(rel, postsDir)
			if !inPosts && !isWithin(postsDir, rel) {
				// Unrelated change in a parent of the posts directory.
				continue
			}

			log.Infof("%s changed", evt.Name)

			if evt.Has(fsnotify.Create) {
				if isDir, _ := co.sourceFS.IsDir(rel); isDir {
					if inPosts {
						err = addTree(rel)
					} else {
						err = addPosts()
					}
					if err != nil {
						log.Error(err)
					}
				}
			}

			if err := exec(); err != nil {
				log.Error(err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err)
		}
	}
}

func isWithin(name, dir string) bool {
	if dir == "." {
		return true
	}

	return name == dir || strings.HasPrefix(name, dir+string(filepath.Separator))
}
