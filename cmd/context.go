package cmd

import (
	"fmt"

	"github.com/masmgr/gitscrub/config"
	"github.com/masmgr/gitscrub/internal/git"
	"github.com/masmgr/gitscrub/internal/output"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across the history commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Reader   git.HistoryReader
	History  git.History
}

// NewCommandContext creates a context from CLI flags.
// It performs configuration loading, reader construction, and the history
// fetch.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	repoPath := c.String("repo")

	reader, err := newReader(c.String("backend"), readOptions(cfg))
	if err != nil {
		return nil, err
	}

	history, err := reader.ReadHistory(c.Context, repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Reader:   reader,
		History:  history,
	}, nil
}

// HasCommits returns true if the repository has any commits.
func (ctx *CommandContext) HasCommits() bool {
	return !ctx.History.Empty()
}

// PrintNoCommitsMessage prints a message when the history is empty.
func (ctx *CommandContext) PrintNoCommitsMessage() {
	fmt.Println("No commits found in the repository.")
}

// Coordinator builds a checkout coordinator from the loaded configuration.
func (ctx *CommandContext) Coordinator() *git.Coordinator {
	return git.NewCoordinator(nil, git.CheckoutOptions{
		DefaultBranch: ctx.Config.History.DefaultBranch,
		Timeout:       ctx.Config.Exec.Timeout(),
		GitPath:       ctx.Config.Exec.GitPath,
	})
}

// Inspector builds a HEAD inspector from the loaded configuration.
func (ctx *CommandContext) Inspector() *git.Inspector {
	return git.NewInspector(nil, ctx.Config.Exec.GitPath, ctx.Config.Exec.Timeout())
}

// loadConfig loads configuration from file or defaults, applying flag
// overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("limit") {
		cfg.History.Limit = c.Int("limit")
	}
	return cfg, nil
}

func readOptions(cfg *config.Config) git.ReadOptions {
	return git.ReadOptions{
		Limit:      cfg.History.Limit,
		DateFormat: cfg.History.DateFormat,
		Timeout:    cfg.Exec.Timeout(),
		GitPath:    cfg.Exec.GitPath,
	}
}

// newReader constructs a history reader for the backend flag value.
func newReader(backend string, opts git.ReadOptions) (git.HistoryReader, error) {
	switch backend {
	case "", "cli", "git":
		return git.NewCLIReader(nil, opts), nil
	case "gogit", "go-git":
		return git.NewGoGitReader(opts), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected cli or gogit)", backend)
	}
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		Top:        c.Int("top"),
		OutputPath: c.String("output"),
	}
}
