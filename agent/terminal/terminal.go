package terminal

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mkarren/codeforge/agent"
	"github.com/mkarren/codeforge/marker"
	"github.com/mkarren/codeforge/workspace"
)

const noProjectHint = "No project selected. Use !project <name> first."

// Terminal handles the interactive CLI mode of the agent.
type Terminal struct {
	agent *agent.Agent
}

// New creates a new Terminal instance.
func New(a *agent.Agent) *Terminal {
	return &Terminal{agent: a}
}

// Run starts the interactive session. It returns when the user types an exit
// word or stdin is closed.
func (t *Terminal) Run(ctx context.Context, initialPrompt string) error {
	if initialPrompt != "" {
		if err := t.processTurn(ctx, initialPrompt); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			// EOF or read error ends the session
			break
		}

		userInput := strings.TrimSpace(scanner.Text())
		if userInput == "" {
			continue
		}

		switch strings.ToLower(userInput) {
		case "exit", "quit", "bye":
			fmt.Println("Goodbye!")
			return scanner.Err()
		}

		if err := t.processTurn(ctx, userInput); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}

	return scanner.Err()
}

// processTurn handles a single user input: bang commands are executed
// locally, everything else goes to the model.
func (t *Terminal) processTurn(ctx context.Context, userInput string) error {
	if strings.HasPrefix(userInput, "!") {
		t.runBangCommand(ctx, userInput[1:])
		return nil
	}
	return t.query(ctx, userInput)
}

func (t *Terminal) query(ctx context.Context, userInput string) error {
	if t.agent.Project() == nil {
		fmt.Println(noProjectHint)
		return nil
	}

	fmt.Println("Thinking...")
	fmt.Println("\nAI Assistant Response:")
	return t.agent.Query(ctx, userInput, t.callbacks())
}

// callbacks renders applied actions for the terminal. Command output is cut
// at 200 bytes to keep the transcript readable.
func (t *Terminal) callbacks() marker.Callbacks {
	return marker.Callbacks{
		OnProse: func(text string) {
			fmt.Println(text)
		},
		OnFileWritten: func(path string) {
			fmt.Printf("✅ Created/Updated file: %s\n", path)
		},
		OnDirCreated: func(path string) {
			fmt.Printf("✅ Created directory: %s\n", path)
		},
		OnCommandResult: func(command string, result *workspace.ExecResult) {
			if result.ExitCode == 0 {
				fmt.Printf("✅ Executed command: %s\n", command)
				if result.Stdout != "" {
					fmt.Printf("Output: %s\n", truncate(result.Stdout, 200))
				}
				return
			}
			fmt.Printf("❌ Command failed: %s\n", command)
			if result.Stderr != "" {
				fmt.Printf("Error: %s\n", truncate(result.Stderr, 200))
			}
		},
		OnCommandSkipped: func(command string) {
			fmt.Printf("Skipped command: %s\n", command)
		},
		OnError: func(seg marker.Segment, err error) {
			fmt.Printf("Error: %v\n", err)
		},
		ShouldRunCommand: func(command string) bool {
			if t.agent.Mode != agent.ModePrompt {
				return true
			}
			fmt.Printf("Run command `%s`? (y/n): ", command)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			return strings.TrimSpace(strings.ToLower(answer)) == "y"
		},
	}
}

// runBangCommand dispatches the local !commands that never reach the model.
func (t *Terminal) runBangCommand(ctx context.Context, input string) {
	parts := strings.SplitN(strings.TrimSpace(input), " ", 2)
	command := strings.ToLower(parts[0])
	arg := ""
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}

	switch command {
	case "project":
		if arg == "" {
			fmt.Println("Usage: !project <project_name>")
			return
		}
		p, err := t.agent.SetProject(arg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Project set: %s\n", p.Name)
		fmt.Printf("Path: %s\n", p.Dir)

	case "list":
		p := t.agent.Project()
		if p == nil {
			fmt.Println(noProjectHint)
			return
		}
		files, err := p.ListFiles("")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(files) == 0 {
			fmt.Println("No files in project.")
			return
		}
		fmt.Println("Project files:")
		for _, file := range files {
			fmt.Printf("- %s\n", file)
		}

	case "cat":
		p := t.agent.Project()
		if p == nil {
			fmt.Println(noProjectHint)
			return
		}
		if arg == "" {
			fmt.Println("Usage: !cat <file_path>")
			return
		}
		content, err := p.ReadFile(arg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Content of %s:\n%s\n", arg, content)

	case "exec":
		p := t.agent.Project()
		if p == nil {
			fmt.Println(noProjectHint)
			return
		}
		if arg == "" {
			fmt.Println("Usage: !exec <shell_command>")
			return
		}
		result, err := p.Exec(ctx, arg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if result.ExitCode == 0 {
			fmt.Printf("Command executed successfully: %s\n", arg)
			if result.Stdout != "" {
				fmt.Print(result.Stdout)
			}
			return
		}
		fmt.Printf("Command failed with code %d: %s\n", result.ExitCode, arg)
		if result.Stderr != "" {
			fmt.Print(result.Stderr)
		}

	case "help":
		fmt.Println(helpText)

	default:
		fmt.Printf("Unknown command: %s. Type !help for available commands.\n", command)
	}
}

const helpText = `Available commands:
!project <name>  - Set or create a project
!list            - List files in the current project
!cat <file>      - Show the content of a file
!exec <command>  - Execute a shell command
!help            - Show this help message

For any other input, the AI will process it as a coding task.`

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Back the cut off to a rune boundary so a multi-byte character is
	// dropped whole instead of printed mangled.
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
