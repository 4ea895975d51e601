package output

import (
	"time"

	"github.com/masmgr/gitscrub/internal/git"
)

// Compile-time interface conformance checks.
var (
	_ HistoryWriter = (*ConsoleHistoryWriter)(nil)
	_ HistoryWriter = (*JSONHistoryWriter)(nil)
	_ HistoryWriter = (*CSVHistoryWriter)(nil)
	_ HistoryWriter = (*MarkdownHistoryWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int
	OutputPath string
}

// HistoryReport holds a fetched commit history for rendering.
type HistoryReport struct {
	RepoPath      string
	DefaultBranch string
	GeneratedAt   time.Time
	Head          *git.HeadState // when set, the current position is marked
	Commits       git.History
}

// HistoryWriter writes commit history reports.
type HistoryWriter interface {
	Write(report *HistoryReport, options OutputOptions) error
}

// NewHistoryWriter creates a report writer for the specified format.
func NewHistoryWriter(format OutputFormat) HistoryWriter {
	switch format {
	case FormatJSON:
		return &JSONHistoryWriter{}
	case FormatCSV:
		return &CSVHistoryWriter{}
	case FormatMarkdown:
		return &MarkdownHistoryWriter{}
	default:
		return &ConsoleHistoryWriter{}
	}
}

// headIndex returns the history position HEAD currently corresponds to,
// or -1 when unknown.
func (r *HistoryReport) headIndex() int {
	if r.Head == nil {
		return -1
	}
	return r.Commits.IndexOf(r.Head.Hash)
}
