package agent

import (
	"strings"
	"testing"

	"github.com/mkarren/codeforge/config"
	"github.com/mkarren/codeforge/workspace"
)

func contextProject(t *testing.T) *workspace.Project {
	t.Helper()
	cfg := &config.Config{WorkspacePath: t.TempDir()}
	p, err := workspace.Open(cfg, "ctx")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBuildProjectContextEmpty(t *testing.T) {
	p := contextProject(t)
	got := buildProjectContext(p, config.Context{MaxFiles: 10, MaxFileSize: 10000})
	if !strings.Contains(got, "Current project: ctx") {
		t.Errorf("project name missing: %q", got)
	}
	if !strings.Contains(got, "Project is empty.") {
		t.Errorf("empty marker missing: %q", got)
	}
}

func TestBuildProjectContextIncludesKeyFiles(t *testing.T) {
	p := contextProject(t)
	if err := p.WriteFile("README.md", "# readme"); err != nil {
		t.Fatal(err)
	}
	if err := p.WriteFile("src/app.py", "print('x')"); err != nil {
		t.Fatal(err)
	}
	if err := p.WriteFile("image.png", "binary"); err != nil {
		t.Fatal(err)
	}

	got := buildProjectContext(p, config.Context{MaxFiles: 10, MaxFileSize: 10000})
	if !strings.Contains(got, "Content of README.md") {
		t.Errorf("key filename content missing:\n%s", got)
	}
	if !strings.Contains(got, "Content of src/app.py") {
		t.Errorf("key extension content missing:\n%s", got)
	}
	if strings.Contains(got, "Content of image.png") {
		t.Errorf("non-key file included:\n%s", got)
	}
	// The listing still names every file.
	if !strings.Contains(got, "- image.png") {
		t.Errorf("listing incomplete:\n%s", got)
	}
}

func TestSelectContextFilesKeyNamesFirstAndCapped(t *testing.T) {
	p := contextProject(t)
	if err := p.WriteFile("zzz.md", "notes"); err != nil {
		t.Fatal(err)
	}
	if err := p.WriteFile("package.json", "{}"); err != nil {
		t.Fatal(err)
	}

	files, err := p.ListFiles("")
	if err != nil {
		t.Fatal(err)
	}

	selected := selectContextFiles(p, files, config.Context{MaxFiles: 10, MaxFileSize: 10000})
	if len(selected) != 2 || selected[0] != "package.json" {
		t.Errorf("key filename should come first: %v", selected)
	}

	selected = selectContextFiles(p, files, config.Context{MaxFiles: 1, MaxFileSize: 10000})
	if len(selected) != 1 {
		t.Errorf("cap not applied: %v", selected)
	}
}

func TestSelectContextFilesSkipsLargeFiles(t *testing.T) {
	p := contextProject(t)
	if err := p.WriteFile("big.md", strings.Repeat("a", 200)); err != nil {
		t.Fatal(err)
	}

	files, err := p.ListFiles("")
	if err != nil {
		t.Fatal(err)
	}
	selected := selectContextFiles(p, files, config.Context{MaxFiles: 10, MaxFileSize: 100})
	if len(selected) != 0 {
		t.Errorf("oversized file should be skipped: %v", selected)
	}
}
