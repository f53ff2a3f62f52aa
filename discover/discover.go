// Package discover finds Java source files under a directory.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Ext is the extension of the files the analyzer understands.
const Ext = ".java"

var skipDirs = map[string]struct{}{
	"build":        {},
	"target":       {},
	"out":          {},
	"bin":          {},
	"node_modules": {},
	"generated":    {},
}

// Files returns the Java files under root in lexical order. Hidden entries,
// build output directories and paths matched by root/.gitignore are skipped.
// A root that is itself a Java file is returned as the only result.
func Files(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		if filepath.Ext(root) != Ext {
			return nil, fmt.Errorf("%s is not a %s file", root, Ext)
		}
		return []string{root}, nil
	}

	gi := loadGitignore(root)
	var files []string

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk directory: %w", err)
		}

		name := d.Name()
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}

		if d.IsDir() {
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if gi != nil && gi.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") || d.Type()&os.ModeSymlink != 0 {
			return nil
		}
		if filepath.Ext(name) != Ext {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
