package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mkarren/codeforge/agent"
	"github.com/mkarren/codeforge/agent/terminal"
	"github.com/mkarren/codeforge/config"
	"github.com/mkarren/codeforge/llm"
)

func main() {
	modeFlag := flag.String("m", "auto", "Execution mode: 'auto' or 'prompt'")
	projectFlag := flag.String("p", "", "Project to open at startup")
	apiKeyFlag := flag.String("api-key", "", "API key for the Gemini API (overrides GEMINI_API_KEY)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %+v\n", err)
		os.Exit(1)
	}

	// An explicit key on the command line wins over the environment.
	if *apiKeyFlag != "" {
		os.Setenv("GEMINI_API_KEY", *apiKeyFlag)
	}

	opMode, err := parseMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing LLM client: %+v\n", err)
		os.Exit(1)
	}

	forgeAgent := agent.New(cfg, client, opMode)

	if *projectFlag != "" {
		p, err := forgeAgent.SetProject(*projectFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening project '%s': %+v\n", *projectFlag, err)
			os.Exit(1)
		}
		fmt.Printf("Project set: %s\n", p.Name)
		fmt.Printf("Path: %s\n", p.Dir)
	}

	// Get initial prompt from remaining arguments
	initialPrompt := strings.Join(flag.Args(), " ")

	fmt.Println("🤖 codeforge initialized")
	fmt.Println("Type !help for available commands")
	term := terminal.New(forgeAgent)
	if err := term.Run(ctx, initialPrompt); err != nil {
		fmt.Fprintf(os.Stderr, "Agent stopped with an error: %+v\n", err)
		os.Exit(1)
	}
}

func parseMode(mode string) (agent.Mode, error) {
	switch mode {
	case "auto":
		return agent.ModeAuto, nil
	case "prompt":
		return agent.ModePrompt, nil
	}
	return "", fmt.Errorf("invalid mode '%s', must be 'auto' or 'prompt'", mode)
}

// newLLMClient picks the provider named in the config; anything unknown gets
// the mock client so the terminal stays usable without credentials.
func newLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	switch cfg.LLMClient {
	case "gemini", "":
		return llm.NewGeminiLLMClient(ctx, cfg.Model, cfg.Temperature)
	case "openai":
		return llm.NewOpenAILLMClient(ctx, cfg.Model, cfg.Temperature)
	case "anthropic":
		return llm.NewAnthropicLLMClient(ctx, cfg.Model, cfg.Temperature)
	case "bedrock":
		return llm.NewBedrockLLMClient(ctx, cfg.Model, cfg.Temperature)
	default:
		return &llm.MockClient{}, nil
	}
}
