package agent

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mkarren/codeforge/config"
	"github.com/mkarren/codeforge/workspace"
)

// Files whose content is always worth showing the model when present.
var keyFilenames = []string{
	"package.json", "requirements.txt", "setup.py", "go.mod",
	"README.md", ".gitignore", "app.py", "main.py", "main.go",
	"index.js", "index.html",
}

// Extensions of files small enough to be worth including wholesale.
var keyExtensions = map[string]bool{
	".json": true, ".py": true, ".js": true, ".ts": true, ".go": true,
	".html": true, ".css": true, ".md": true, ".txt": true,
	".yaml": true, ".yml": true,
}

// buildProjectContext summarizes the active project for the model: the file
// listing, then the content of up to cfg.MaxFiles files. Well-known
// filenames are included first, then files with key extensions that fit
// under the size cap.
func buildProjectContext(p *workspace.Project, cfg config.Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current project: %s\n\n", p.Name)

	files, err := p.ListFiles("")
	if err != nil || len(files) == 0 {
		b.WriteString("Project is empty.\n")
		return b.String()
	}

	b.WriteString("Project files:\n")
	for _, file := range files {
		fmt.Fprintf(&b, "- %s\n", file)
	}

	for _, file := range selectContextFiles(p, files, cfg) {
		content, err := p.ReadFile(file)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\nContent of %s:\n```\n%s\n```\n", file, content)
	}

	return b.String()
}

func selectContextFiles(p *workspace.Project, files []string, cfg config.Context) []string {
	var selected []string
	seen := make(map[string]bool)

	for _, name := range keyFilenames {
		for _, file := range files {
			if filepath.Base(file) == name && !seen[file] {
				selected = append(selected, file)
				seen[file] = true
			}
		}
	}

	for _, file := range files {
		if seen[file] {
			continue
		}
		if !keyExtensions[strings.ToLower(filepath.Ext(file))] {
			continue
		}
		size, err := p.FileSize(file)
		if err != nil || size >= cfg.MaxFileSize {
			continue
		}
		selected = append(selected, file)
		seen[file] = true
	}

	if len(selected) > cfg.MaxFiles {
		selected = selected[:cfg.MaxFiles]
	}
	return selected
}
