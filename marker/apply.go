package marker

import (
	"context"

	"github.com/mkarren/codeforge/workspace"
)

// Callbacks let the interaction surface (terminal, bridge) decide how parsed
// segments are reported and whether commands may run. Nil callbacks are
// skipped; a nil ShouldRunCommand allows every command.
type Callbacks struct {
	OnProse          func(text string)
	OnFileWritten    func(path string)
	OnDirCreated     func(path string)
	OnCommandResult  func(command string, result *workspace.ExecResult)
	OnCommandSkipped func(command string)
	OnError          func(seg Segment, err error)
	ShouldRunCommand func(command string) bool
}

// Applier executes parsed segments against a project.
type Applier struct {
	project *workspace.Project
}

func NewApplier(p *workspace.Project) *Applier {
	return &Applier{project: p}
}

// Apply walks the segments in order. Failures on individual segments are
// reported through OnError and do not stop the remaining segments; only
// context cancellation aborts the walk.
func (a *Applier) Apply(ctx context.Context, segments []Segment, cb Callbacks) error {
	for _, seg := range segments {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch seg.Kind {
		case Prose:
			if cb.OnProse != nil {
				cb.OnProse(seg.Text)
			}
		case File:
			if err := a.project.WriteFile(seg.Path, seg.Text); err != nil {
				if cb.OnError != nil {
					cb.OnError(seg, err)
				}
				continue
			}
			if cb.OnFileWritten != nil {
				cb.OnFileWritten(seg.Path)
			}
		case Dir:
			if err := a.project.CreateDir(seg.Path); err != nil {
				if cb.OnError != nil {
					cb.OnError(seg, err)
				}
				continue
			}
			if cb.OnDirCreated != nil {
				cb.OnDirCreated(seg.Path)
			}
		case Cmd:
			if cb.ShouldRunCommand != nil && !cb.ShouldRunCommand(seg.Command) {
				if cb.OnCommandSkipped != nil {
					cb.OnCommandSkipped(seg.Command)
				}
				continue
			}
			result, err := a.project.Exec(ctx, seg.Command)
			if err != nil {
				if cb.OnError != nil {
					cb.OnError(seg, err)
				}
				continue
			}
			if cb.OnCommandResult != nil {
				cb.OnCommandResult(seg.Command, result)
			}
		}
	}
	return nil
}
