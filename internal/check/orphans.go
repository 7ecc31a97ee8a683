package check

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/docbrowser/internal/config"
)

// MarkdownPattern selects the files the orphan scan considers.
const MarkdownPattern = "**/*.md"

// ExcludedDirs are never scanned for orphans.
var ExcludedDirs = []string{
	".git",
	"node_modules",
	"vendor",
	".docbrowser",
	".github",
}

// Orphans lists markdown files under dir that no module path, alternate path
// or sub-file refers to. Paths are slash separated, relative to dir, sorted.
func Orphans(dir string, modules []config.Module) ([]string, error) {
	referenced := make(map[string]bool)
	for _, m := range modules {
		referenced[cleanRef(m.Path)] = true
		for _, alt := range m.AltPaths {
			referenced[cleanRef(alt)] = true
		}
		for _, f := range m.Files {
			referenced[cleanRef(f.Path)] = true
		}
	}

	matches, err := doublestar.Glob(os.DirFS(dir), MarkdownPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var orphans []string
	for _, m := range matches {
		if excluded(m) || referenced[m] {
			continue
		}
		orphans = append(orphans, m)
	}
	sort.Strings(orphans)
	return orphans, nil
}

func cleanRef(p string) string {
	return strings.TrimPrefix(path.Clean("/"+strings.TrimPrefix(p, "./")), "/")
}

func excluded(rel string) bool {
	for _, seg := range strings.Split(path.Dir(rel), "/") {
		for _, excl := range ExcludedDirs {
			if strings.EqualFold(seg, excl) {
				return true
			}
		}
	}
	return false
}
