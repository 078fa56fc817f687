package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

type Post struct {
	Folder string
	Slug   string
}

// DeriveSlug returns the part of folder after the last underscore, or folder
// itself when it has none.
func DeriveSlug(folder string) string {
	if i := strings.LastIndex(folder, "_"); i != -1 {
		return folder[i+1:]
	}

	return folder
}

// ListPostFolders lists the immediate sub-directories of the posts directory
// in lexical order. A missing posts directory yields no folders.
func (co *Core) ListPostFolders() ([]string, error) {
	infos, err := co.sourceFS.ReadDir(co.cfg.PostsDirectory)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			co.log.Debugw("posts directory does not exist", "path", co.cfg.PostsDirectory)
			return []string{}, nil
		}
		return nil, err
	}

	folders := []string{}
	for _, info := range infos {
		if info.IsDir() {
			folders = append(folders, info.Name())
		}
	}

	return folders, nil
}

// GetPosts returns the posts in the order of [Core.ListPostFolders].
func (co *Core) GetPosts() ([]Post, error) {
	folders, err := co.ListPostFolders()
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(folders))
	for _, folder := range folders {
		posts = append(posts, Post{Folder: folder, Slug: DeriveSlug(folder)})
	}

	return posts, nil
}

func (co *Core) metadataFilename(folder string) string {
	return filepath.Join(co.cfg.PostsDirectory, folder, co.cfg.MetadataFile)
}
