package agent

import (
	"context"
	"fmt"

	"github.com/mkarren/codeforge/config"
	"github.com/mkarren/codeforge/errors"
	"github.com/mkarren/codeforge/history"
	"github.com/mkarren/codeforge/llm"
	"github.com/mkarren/codeforge/marker"
	"github.com/mkarren/codeforge/workspace"
)

type Mode string

const (
	// ModeAuto applies every parsed action without asking.
	ModeAuto Mode = "auto"
	// ModePrompt asks for confirmation before running shell commands.
	ModePrompt Mode = "prompt"
)

// ErrNoProject is returned by project-scoped operations before a project has
// been selected.
var ErrNoProject = errors.New("no project selected")

// Agent ties together the configuration, the active project, the
// conversation history and the model client. It is driven by an interaction
// surface (the terminal REPL or the websocket bridge) through Query and the
// marker callbacks.
type Agent struct {
	Config  *config.Config
	History *history.History
	Client  llm.Client
	Mode    Mode

	project *workspace.Project
}

func New(cfg *config.Config, client llm.Client, mode Mode) *Agent {
	return &Agent{
		Config:  cfg,
		History: history.New(SystemPrompt),
		Client:  client,
		Mode:    mode,
	}
}

// Project returns the active project, or nil if none has been selected.
func (a *Agent) Project() *workspace.Project {
	return a.project
}

// SetProject selects (creating if needed) the named project and resets the
// conversation, since history about one project does not apply to another.
func (a *Agent) SetProject(name string) (*workspace.Project, error) {
	p, err := workspace.Open(a.Config, name)
	if err != nil {
		return nil, err
	}
	a.project = p
	a.History.Reset()
	return p, nil
}

// Query runs one full turn: gather project context, send the request to the
// model, record the exchange, then parse the response and apply its markers
// to the project. Callbacks report prose and applied actions to the caller.
func (a *Agent) Query(ctx context.Context, userInput string, cb marker.Callbacks) error {
	if a.project == nil {
		return ErrNoProject
	}

	projectContext := buildProjectContext(a.project, a.Config.Context)
	prompt := fmt.Sprintf("User request: %s\n\nProject Context:\n%s", userInput, projectContext)
	a.History.AddUser(prompt)

	response, err := a.Client.Chat(ctx, a.History.Messages())
	if err != nil {
		return errors.Wrapf(err, "LLM chat failed")
	}
	a.History.Add(*response)

	segments := marker.Parse(response.Content)
	applier := marker.NewApplier(a.project)
	return applier.Apply(ctx, segments, cb)
}
