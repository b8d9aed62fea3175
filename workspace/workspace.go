// Package workspace manages the named project directories the agent works
// in. Every file the model generates and every command it runs is scoped to
// the active project.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mkarren/codeforge/config"
	"github.com/mkarren/codeforge/errors"
)

// Project is a named directory under the workspace root. File contents are
// cached per project; the cache is dropped when a new project is opened.
type Project struct {
	Name string
	Dir  string

	access *config.FilesystemAccess
	cache  map[string]string
}

// Open selects a project by name, creating the workspace root and the
// project directory if they do not exist yet.
func Open(cfg *config.Config, name string) (*Project, error) {
	if name == "" {
		return nil, errors.New("project name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return nil, errors.New("project name '%s' must not contain path separators", name)
	}
	// "." and ".." pass the separator check but would resolve to the
	// workspace root or its parent, moving every write and command outside
	// the workspace.
	if name == "." || name == ".." {
		return nil, errors.New("project name '%s' is not a valid directory name", name)
	}

	root, err := expandHome(cfg.WorkspacePath)
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "could not create project directory '%s'", dir)
	}

	return &Project{
		Name:   name,
		Dir:    dir,
		access: &cfg.FilesystemAccess,
		cache:  make(map[string]string),
	}, nil
}

// ListFiles returns every file under the given subdirectory ("" for the
// whole project), sorted, as project-relative paths. Hidden paths are
// omitted.
func (p *Project) ListFiles(sub string) ([]string, error) {
	start := p.Dir
	if sub != "" {
		full, err := p.resolve(sub)
		if err != nil {
			return nil, err
		}
		start = full
	}
	if _, err := os.Stat(start); err != nil {
		return nil, errors.Wrapf(err, "directory not found: %s", sub)
	}

	var files []string
	err := filepath.WalkDir(start, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(p.Dir, path)
		if err != nil {
			return err
		}
		hidden, err := p.restricted(rel, p.access.Hidden)
		if err != nil {
			return err
		}
		if !hidden {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list project files")
	}
	sort.Strings(files)
	return files, nil
}

// ReadFile returns a file's content, serving repeated reads from the cache.
func (p *Project) ReadFile(path string) (string, error) {
	full, err := p.resolve(path)
	if err != nil {
		return "", err
	}
	hidden, err := p.restricted(path, p.access.Hidden)
	if err != nil {
		return "", err
	}
	if hidden {
		return "", errors.New("access denied: path '%s' is hidden", path)
	}

	if content, ok := p.cache[path]; ok {
		return content, nil
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file '%s'", path)
	}
	content := string(data)
	p.cache[path] = content
	return content, nil
}

// WriteFile writes content to a file, creating parent directories as needed
// and updating the cache.
func (p *Project) WriteFile(path, content string) error {
	full, err := p.resolve(path)
	if err != nil {
		return err
	}
	hidden, err := p.restricted(path, p.access.Hidden)
	if err != nil {
		return err
	}
	if hidden {
		return errors.New("access denied: path '%s' is hidden", path)
	}
	readOnly, err := p.restricted(path, p.access.ReadOnly)
	if err != nil {
		return err
	}
	if readOnly {
		return errors.New("access denied: path '%s' is read-only", path)
	}

	if dir := filepath.Dir(full); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "could not create parent directory for '%s'", path)
		}
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "failed to write to file '%s'", path)
	}
	p.cache[path] = content
	return nil
}

// CreateDir creates a directory (and parents) inside the project.
func (p *Project) CreateDir(path string) error {
	full, err := p.resolve(path)
	if err != nil {
		return err
	}
	hidden, err := p.restricted(path, p.access.Hidden)
	if err != nil {
		return err
	}
	if hidden {
		return errors.New("access denied: path '%s' is hidden", path)
	}
	if err := os.MkdirAll(full, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory '%s'", path)
	}
	return nil
}

// FileSize reports the size of a file in bytes.
func (p *Project) FileSize(path string) (int64, error) {
	full, err := p.resolve(path)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(full)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to stat '%s'", path)
	}
	return info.Size(), nil
}

// resolve maps a project-relative path to an absolute one, rejecting
// absolute paths and anything that escapes the project directory.
func (p *Project) resolve(rel string) (string, error) {
	cleaned := filepath.Clean(rel)
	if cleaned == "." {
		return p.Dir, nil
	}
	if !filepath.IsLocal(cleaned) {
		return "", errors.New("path '%s' escapes the project directory", rel)
	}
	return filepath.Join(p.Dir, cleaned), nil
}

// restricted checks whether a project-relative path matches any of the glob
// patterns.
func (p *Project) restricted(path string, patterns []string) (bool, error) {
	path = filepath.ToSlash(filepath.Clean(path))
	for _, pattern := range patterns {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, errors.New("invalid glob pattern '%s'", pattern)
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrapf(err, "could not resolve home directory")
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
