// Package marker implements the action protocol spoken between the model and
// the agent. The model embeds line-prefixed markers in its otherwise free-form
// response:
//
//	FILE: <path>    begin a file block; the following lines up to the next
//	                marker are the file's complete content
//	DIR: <path>     create a directory
//	CMD: <command>  run a shell command in the project directory
//
// Everything else is prose meant for the user. Parse splits a response into
// ordered segments; Applier executes them against a project.
package marker

import "strings"

type Kind int

const (
	Prose Kind = iota
	File
	Dir
	Cmd
)

const (
	filePrefix = "FILE: "
	dirPrefix  = "DIR: "
	cmdPrefix  = "CMD: "
)

// Segment is one parsed piece of a model response, in response order.
type Segment struct {
	Kind    Kind
	Path    string // File, Dir
	Command string // Cmd
	Text    string // Prose: explanation text; File: file content
}

// Parse scans a response line by line and returns its segments. A pending
// file block is flushed when a new marker starts and at end of input; a FILE
// marker with no content lines before the next marker yields no segment.
// Consecutive prose lines are coalesced into a single segment.
func Parse(response string) []Segment {
	var (
		segments   []Segment
		filePath   string
		fileLines  []string
		inFile     bool
		proseLines []string
	)

	flushProse := func() {
		if len(proseLines) > 0 {
			segments = append(segments, Segment{Kind: Prose, Text: strings.Join(proseLines, "\n")})
			proseLines = nil
		}
	}
	flushFile := func() {
		if inFile && filePath != "" && len(fileLines) > 0 {
			segments = append(segments, Segment{
				Kind: File,
				Path: filePath,
				Text: strings.Join(fileLines, "\n"),
			})
		}
		inFile = false
		filePath = ""
		fileLines = nil
	}

	for _, line := range strings.Split(response, "\n") {
		switch {
		case strings.HasPrefix(line, filePrefix):
			flushProse()
			flushFile()
			inFile = true
			filePath = strings.TrimSpace(line[len(filePrefix):])
		case strings.HasPrefix(line, dirPrefix):
			flushProse()
			flushFile()
			segments = append(segments, Segment{Kind: Dir, Path: strings.TrimSpace(line[len(dirPrefix):])})
		case strings.HasPrefix(line, cmdPrefix):
			flushProse()
			flushFile()
			segments = append(segments, Segment{Kind: Cmd, Command: strings.TrimSpace(line[len(cmdPrefix):])})
		case inFile:
			fileLines = append(fileLines, line)
		default:
			proseLines = append(proseLines, line)
		}
	}
	flushProse()
	flushFile()

	return segments
}
