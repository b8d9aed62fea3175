package terminal

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mkarren/codeforge/agent"
	"github.com/mkarren/codeforge/config"
	"github.com/mkarren/codeforge/llm"
)

func testAgent(t *testing.T) *agent.Agent {
	t.Helper()
	cfg := &config.Config{
		WorkspacePath: t.TempDir(),
		Context:       config.Context{MaxFiles: 10, MaxFileSize: 10000},
	}
	return agent.New(cfg, &llm.MockClient{}, agent.ModeAuto)
}

func TestTerminalNew(t *testing.T) {
	a := testAgent(t)
	term := New(a)
	if term == nil {
		t.Fatal("expected terminal instance, got nil")
	}
	if term.agent != a {
		t.Fatal("terminal agent doesn't match the provided agent")
	}
}

func TestProcessTurnWithoutProject(t *testing.T) {
	term := New(testAgent(t))

	// Without a project the turn prints a hint instead of failing.
	if err := term.processTurn(context.Background(), "build me a website"); err != nil {
		t.Errorf("processTurn failed: %v", err)
	}
}

func TestProcessTurnQueriesModel(t *testing.T) {
	a := testAgent(t)
	term := New(a)
	ctx := context.Background()

	term.runBangCommand(ctx, "project demo")
	if a.Project() == nil {
		t.Fatal("!project did not select a project")
	}

	if err := term.processTurn(ctx, "say hi"); err != nil {
		t.Errorf("processTurn failed: %v", err)
	}
	// system + user + assistant after one round trip
	if a.History.Len() != 3 {
		t.Errorf("expected 3 history entries, got %d", a.History.Len())
	}
}

func TestBangCommandsNeedProject(t *testing.T) {
	a := testAgent(t)
	term := New(a)
	ctx := context.Background()

	// None of these may panic or touch the model before a project exists.
	for _, cmd := range []string{"list", "cat file.txt", "exec echo hi"} {
		term.runBangCommand(ctx, cmd)
	}
	if a.History.Len() != 1 {
		t.Errorf("bang commands must not reach the model, history has %d entries", a.History.Len())
	}
}

func TestBangCommandDispatch(t *testing.T) {
	a := testAgent(t)
	term := New(a)
	ctx := context.Background()

	term.runBangCommand(ctx, "project demo")
	p := a.Project()
	if p == nil {
		t.Fatal("project not set")
	}

	if err := p.WriteFile("note.txt", "hello"); err != nil {
		t.Fatal(err)
	}

	// These print to stdout; the test just exercises the dispatch paths.
	term.runBangCommand(ctx, "list")
	term.runBangCommand(ctx, "cat note.txt")
	term.runBangCommand(ctx, "exec true")
	term.runBangCommand(ctx, "help")
	term.runBangCommand(ctx, "bogus")
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 200); got != "short" {
		t.Errorf("short strings must pass through, got %q", got)
	}
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	got := truncate(string(long), 200)
	if len(got) != 203 || got[200:] != "..." {
		t.Errorf("unexpected truncation: len=%d", len(got))
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	// A cut landing inside a multi-byte rune must back off to the rune's
	// start, not emit a partial sequence.
	s := strings.Repeat("é", 100) // 2 bytes per rune
	got := truncate(s, 3)
	if !utf8.ValidString(got) {
		t.Errorf("truncated string is not valid UTF-8: %q", got)
	}
	if got != "é..." {
		t.Errorf("expected a single rune plus ellipsis, got %q", got)
	}
}
