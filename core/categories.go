package core

import (
	"bytes"
	"errors"
	"os"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

const (
	categoriesKey       = "categories:"
	categoriesSeparator = ", "
)

var categoriesList = regexp.MustCompile(`\[(.*?)\]`)

// Category is a free-text label, as written in a post's metadata.
type Category string

// Key is the lowercased, hyphenated form used in URL paths.
func (c Category) Key() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}

// Encoded is the form used in the listing page fragment.
func (c Category) Encoded() string {
	return strings.ReplaceAll(string(c), " ", "%20")
}

// ParseCategories returns the categories declared in the first line of raw
// that starts with "categories:". Only the bracketed list on that line is
// considered. Without such a line, or without brackets, it returns no
// categories.
func ParseCategories(raw string) []string {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.HasPrefix(line, categoriesKey) {
			continue
		}

		match := categoriesList.FindStringSubmatch(line)
		if match == nil || match[1] == "" {
			return []string{}
		}

		return strings.Split(match[1], categoriesSeparator)
	}

	return []string{}
}

// ExtractCategories reads the metadata file of the given post folder and
// returns its categories. Missing or unreadable metadata yields none.
func (co *Core) ExtractCategories(folder string) []string {
	filename := co.metadataFilename(folder)

	data, err := co.sourceFS.ReadFile(filename)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			co.log.Warnw("could not read metadata", "path", filename, "err", err)
		}
		return []string{}
	}

	// Carriage returns would otherwise end up in the last category.
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	return ParseCategories(string(data))
}

// GetCategories returns the unique categories of all posts, in the order
// they are first seen.
func (co *Core) GetCategories(posts []Post) []Category {
	categories := []Category{}
	for _, post := range posts {
		for _, c := range co.ExtractCategories(post.Folder) {
			categories = append(categories, Category(c))
		}
	}

	return lo.Uniq(categories)
}

// CountCategories returns how many posts declare each category.
func (co *Core) CountCategories() (map[string]int, error) {
	posts, err := co.GetPosts()
	if err != nil {
		return nil, err
	}

	count := map[string]int{}
	for _, post := range posts {
		for _, c := range lo.Uniq(co.ExtractCategories(post.Folder)) {
			count[c]++
		}
	}

	return count, nil
}
