// internal/inputs/inputs.go
// Package inputs turns command-line paths into the raw inputs of a batch,
// declaring each file's media type from its extension the way a browser file
// picker would.
package inputs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwiater/chatfreq/internal/wordfreq"
)

// Options controls directory walking. Files named explicitly are always read.
type Options struct {
	AllowedExtensions []string
	ExcludeGlobs      []string
}

// Collect reads every file named in paths and every allowed file below the
// named directories, in argument order and then lexical order.
func Collect(paths []string, opts Options) ([]wordfreq.RawInput, error) {
	files, err := discover(paths, opts)
	if err != nil {
		return nil, err
	}
	out := make([]wordfreq.RawInput, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read input %s: %w", path, err)
		}
		out = append(out, wordfreq.RawInput{
			Name:      path,
			MediaType: wordfreq.MediaTypeForName(path),
			Data:      data,
		})
	}
	return out, nil
}

func discover(paths []string, opts Options) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		clean := filepath.Clean(path)
		if _, ok := seen[clean]; ok {
			return
		}
		seen[clean] = struct{}{}
		files = append(files, clean)
	}

	allowedMap := make(map[string]struct{}, len(opts.AllowedExtensions))
	for _, ext := range opts.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowedMap[ext] = struct{}{}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat input %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && shouldExclude(path, opts.ExcludeGlobs) {
					return filepath.SkipDir
				}
				return nil
			}
			if shouldExclude(path, opts.ExcludeGlobs) {
				return nil
			}
			if len(allowedMap) > 0 {
				if _, ok := allowedMap[strings.ToLower(filepath.Ext(path))]; !ok {
					return nil
				}
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	return files, nil
}

func shouldExclude(path string, patterns []string) bool {
	normalized := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		pattern = filepath.ToSlash(pattern)
		if strings.Contains(pattern, "**") {
			trimmed := strings.ReplaceAll(pattern, "**", "")
			if trimmed != "" && strings.Contains(normalized, trimmed) {
				return true
			}
		}
		if ok, _ := filepath.Match(pattern, normalized); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
