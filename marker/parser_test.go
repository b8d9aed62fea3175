package marker

import (
	"strings"
	"testing"
)

func TestParseFileBlock(t *testing.T) {
	response := strings.Join([]string{
		"FILE: src/app.py",
		"import flask",
		"",
		"app = flask.Flask(__name__)",
	}, "\n")

	segments := Parse(response)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	seg := segments[0]
	if seg.Kind != File {
		t.Fatalf("expected File segment, got %v", seg.Kind)
	}
	if seg.Path != "src/app.py" {
		t.Errorf("unexpected path: %q", seg.Path)
	}
	want := "import flask\n\napp = flask.Flask(__name__)"
	if seg.Text != want {
		t.Errorf("unexpected content:\n%q\nwant:\n%q", seg.Text, want)
	}
}

func TestParseDirAndCmd(t *testing.T) {
	segments := Parse("DIR: static/css\nCMD: npm install\n")
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	if segments[0].Kind != Dir || segments[0].Path != "static/css" {
		t.Errorf("unexpected dir segment: %+v", segments[0])
	}
	if segments[1].Kind != Cmd || segments[1].Command != "npm install" {
		t.Errorf("unexpected cmd segment: %+v", segments[1])
	}
	// The trailing newline is an empty prose line.
	if segments[2].Kind != Prose {
		t.Errorf("expected trailing prose segment, got %+v", segments[2])
	}
}

func TestParseFileFlushedByNextMarker(t *testing.T) {
	response := strings.Join([]string{
		"FILE: a.txt",
		"first",
		"FILE: b.txt",
		"second",
	}, "\n")

	segments := Parse(response)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Path != "a.txt" || segments[0].Text != "first" {
		t.Errorf("unexpected first file: %+v", segments[0])
	}
	if segments[1].Path != "b.txt" || segments[1].Text != "second" {
		t.Errorf("unexpected second file: %+v", segments[1])
	}
}

func TestParseFileWithoutContentIsDropped(t *testing.T) {
	segments := Parse("FILE: empty.txt\nCMD: ls")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Kind != Cmd {
		t.Errorf("expected only the command, got %+v", segments[0])
	}
}

func TestParseProseInterleaved(t *testing.T) {
	response := strings.Join([]string{
		"I'll create the entry point first.",
		"FILE: main.go",
		"package main",
		"CMD: go build ./...",
		"That builds the binary.",
	}, "\n")

	segments := Parse(response)
	if len(segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segments))
	}
	wantKinds := []Kind{Prose, File, Cmd, Prose}
	for i, k := range wantKinds {
		if segments[i].Kind != k {
			t.Errorf("segment %d: expected kind %v, got %v", i, k, segments[i].Kind)
		}
	}
	if segments[3].Text != "That builds the binary." {
		t.Errorf("unexpected trailing prose: %q", segments[3].Text)
	}
}

func TestParseProseCoalesced(t *testing.T) {
	segments := Parse("line one\nline two")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Text != "line one\nline two" {
		t.Errorf("unexpected prose: %q", segments[0].Text)
	}
}

func TestParseTrimsPathsAndCommands(t *testing.T) {
	segments := Parse("FILE:   padded.txt  \ncontent\nDIR:  d \nCMD:  echo hi  ")
	if segments[0].Path != "padded.txt" {
		t.Errorf("file path not trimmed: %q", segments[0].Path)
	}
	if segments[1].Path != "d" {
		t.Errorf("dir path not trimmed: %q", segments[1].Path)
	}
	if segments[2].Command != "echo hi" {
		t.Errorf("command not trimmed: %q", segments[2].Command)
	}
}

func TestParseMarkerMidLineIgnored(t *testing.T) {
	segments := Parse("see the FILE: marker above")
	if len(segments) != 1 || segments[0].Kind != Prose {
		t.Fatalf("mid-line marker should be prose, got %+v", segments)
	}
}
