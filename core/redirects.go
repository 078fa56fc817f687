package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

type Redirect struct {
	Source      string
	Destination string
}

func PostRedirect(p Post) Redirect {
	return Redirect{
		Source:      "/" + p.Slug,
		Destination: "/posts/" + p.Folder,
	}
}

func CategoryRedirect(c Category) Redirect {
	return Redirect{
		Source:      "/category/" + c.Key(),
		Destination: "/#category=" + c.Encoded(),
	}
}

func (r Redirect) String() string {
	return fmt.Sprintf("%s %s", r.Source, r.Destination)
}

type Table []Redirect

func (t Table) Lines() []string {
	return lo.Map(t, func(r Redirect, _ int) string {
		return r.String()
	})
}

// Map returns the table as read back by [Core.LoadRedirects]: for duplicate
// sources, the last destination wins.
func (t Table) Map() map[string]string {
	return lo.SliceToMap(t, func(r Redirect) (string, string) {
		return r.Source, r.Destination
	})
}

// Duplicates returns the sources that appear more than once in the table,
// with all of their destinations in table order.
func (t Table) Duplicates() map[string][]string {
	bySource := lo.GroupBy(t, func(r Redirect) string {
		return r.Source
	})

	duplicates := map[string][]string{}
	for src, redirects := range bySource {
		if len(redirects) > 1 {
			duplicates[src] = lo.Map(redirects, func(r Redirect, _ int) string {
				return r.Destination
			})
		}
	}

	return duplicates
}

// BuildRedirectTable builds the post redirects, in listing order, followed by
// the category redirects, in the order the categories are first seen.
func (co *Core) BuildRedirectTable() (Table, error) {
	posts, err := co.GetPosts()
	if err != nil {
		return nil, fmt.Errorf("could not list posts: %w", err)
	}

	table := make(Table, 0, len(posts))
	for _, post := range posts {
		table = append(table, PostRedirect(post))
	}

	for _, c := range co.GetCategories(posts) {
		table = append(table, CategoryRedirect(c))
	}

	for src, dsts := range table.Duplicates() {
		co.log.Warnw("duplicate redirect source", "source", src, "destinations", dsts)
	}

	return table, nil
}

// WriteRedirects overwrites the output file with the lines of the table.
func (co *Core) WriteRedirects(table Table) (err error) {
	filename := co.cfg.OutputFile

	f, err := co.sourceFS.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close %s: %w", filename, cerr)
		}
	}()

	for _, line := range table.Lines() {
		_, err = f.WriteString(line + "\n")
		if err != nil {
			return fmt.Errorf("could not write %s: %w", filename, err)
		}
	}

	co.log.Infow("redirects written", "path", filepath.Join(co.cfg.SourceDirectory, filename), "count", len(table))
	return nil
}

// Build builds the redirect table and writes it to the output file.
func (co *Core) Build() (Table, error) {
	table, err := co.BuildRedirectTable()
	if err != nil {
		return nil, err
	}

	return table, co.WriteRedirects(table)
}

// LoadRedirects parses the output file. A missing file yields no redirects.
func (co *Core) LoadRedirects(ignoreMalformed bool) (map[string]string, error) {
	redirects := map[string]string{}

	data, err := co.sourceFS.ReadFile(co.cfg.OutputFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return redirects, nil
		}
		return nil, err
	}

	lines := strings.Split(string(data), "\n")

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, " ")
		if len(parts) == 2 {
			redirects[parts[0]] = parts[1]
		} else if !ignoreMalformed {
			return nil, fmt.Errorf("found invalid redirect entry: %s", line)
		}
	}

	return redirects, nil
}
