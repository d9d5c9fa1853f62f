// Package vault reads the user's markdown knowledge base.
package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// File is one entry of a vault directory listing.
type File struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	IsDir     bool   `json:"is_dir"`
	Extension string `json:"extension,omitempty"`
}

// Note is a loaded vault note.
type Note struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	Modified string `json:"modified,omitempty"`
}

// SearchResult collects the matching lines of one note.
type SearchResult struct {
	Path        string   `json:"path"`
	Name        string   `json:"name"`
	Matches     []string `json:"matches"`
	LineNumbers []int    `json:"line_numbers"`
}

// Status summarizes the vault on disk.
type Status struct {
	Exists      bool   `json:"exists"`
	Path        string `json:"path"`
	FileCount   int    `json:"file_count"`
	FolderCount int    `json:"folder_count"`
}

const maxMatchLen = 100

// Vault reads notes below a configurable root.
type Vault struct {
	root func() string
}

// New builds a Vault. root is consulted per call so settings changes
// apply immediately.
func New(root func() string) *Vault {
	return &Vault{root: root}
}

// resolve maps a vault-relative path onto disk, rejecting absolute
// paths and anything that climbs out of the root.
func (v *Vault) resolve(relativePath string) (string, error) {
	if relativePath == "" {
		return v.root(), nil
	}
	if filepath.IsAbs(relativePath) {
		return "", fmt.Errorf("path escapes the vault: %s", relativePath)
	}
	clean := filepath.Clean(relativePath)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes the vault: %s", relativePath)
	}
	return filepath.Join(v.root(), clean), nil
}

// Status walks the whole vault and counts files and folders.
func (v *Vault) Status() (*Status, error) {
	root := v.root()

	if _, err := os.Stat(root); os.IsNotExist(err) {
		return &Status{Exists: false, Path: root}, nil
	}

	status := &Status{Exists: true, Path: root}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == root {
			return nil
		}
		if d.IsDir() {
			status.FolderCount++
		} else {
			status.FileCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}

// List returns one directory level, hidden entries skipped, directories
// first and names compared case-insensitively.
func (v *Vault) List(relativePath string) ([]File, error) {
	root := v.root()
	target, err := v.resolve(relativePath)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory not found: %s", target)
		}
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []File
	for _, entry := range entries {
		name := entry.Name()
		// Hidden files and the .obsidian directory stay out of listings.
		if strings.HasPrefix(name, ".") {
			continue
		}

		full := filepath.Join(target, name)
		rel, relErr := filepath.Rel(root, full)
		if relErr != nil {
			rel = name
		}

		f := File{Name: name, Path: rel, IsDir: entry.IsDir()}
		if !f.IsDir {
			f.Extension = strings.TrimPrefix(filepath.Ext(name), ".")
		}
		files = append(files, f)
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].IsDir != files[j].IsDir {
			return files[i].IsDir
		}
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})

	return files, nil
}

// ReadNote loads one note by its vault-relative path.
func (v *Vault) ReadNote(relativePath string) (*Note, error) {
	path, err := v.resolve(relativePath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("note not found: %s", relativePath)
		}
		return nil, fmt.Errorf("failed to read note: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	note := &Note{
		Path:    relativePath,
		Name:    name,
		Content: string(content),
	}
	if info, err := os.Stat(path); err == nil {
		note.Modified = info.ModTime().UTC().Format(time.RFC3339)
	}

	return note, nil
}

// Search scans markdown files for the query, case-insensitively.
// Results are ordered by match count, long lines truncated.
func (v *Vault) Search(query string) ([]SearchResult, error) {
	root := v.root()

	if _, err := os.Stat(root); os.IsNotExist(err) {
		return []SearchResult{}, nil
	}

	queryLower := strings.ToLower(query)
	var results []SearchResult

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".obsidian" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil
		}

		var matches []string
		var lineNumbers []int
		for i, line := range strings.Split(string(content), "\n") {
			if strings.Contains(strings.ToLower(line), queryLower) {
				if runes := []rune(line); len(runes) > maxMatchLen {
					line = string(runes[:maxMatchLen]) + "..."
				}
				matches = append(matches, line)
				lineNumbers = append(lineNumbers, i+1)
			}
		}
		if len(matches) == 0 {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		results = append(results, SearchResult{
			Path:        rel,
			Name:        strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Matches:     matches,
			LineNumbers: lineNumbers,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return len(results[i].Matches) > len(results[j].Matches)
	})

	return results, nil
}
