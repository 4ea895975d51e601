package git

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/masmgr/gitscrub/internal/execx"
)

// logFormat emits four lines per commit: full hash, author name, author
// date (git's default rendering), subject. The fixed stride is what the
// parser relies on; no separators exist beyond newlines.
const logFormat = "%H%n%an%n%ad%n%s"

// logStride is the number of output lines per commit record.
const logStride = 4

// ReadOptions configures history readers.
type ReadOptions struct {
	Limit      int           // cap on log entries; 0 means unlimited
	DateFormat string        // Go layout for the date line; empty means DefaultDateFormat
	Timeout    time.Duration // per-invocation; 0 means none
	GitPath    string        // git binary; empty means "git"
}

func (o ReadOptions) dateFormat() string {
	if o.DateFormat == "" {
		return DefaultDateFormat
	}
	return o.DateFormat
}

func (o ReadOptions) gitPath() string {
	if o.GitPath == "" {
		return "git"
	}
	return o.GitPath
}

// CLIReader reads commit history by invoking the git executable.
type CLIReader struct {
	runner execx.Runner
	opts   ReadOptions
}

// NewCLIReader creates a reader backed by the given runner.
// A nil runner means real process execution.
func NewCLIReader(runner execx.Runner, opts ReadOptions) *CLIReader {
	if runner == nil {
		runner = execx.ExecRunner{}
	}
	return &CLIReader{runner: runner, opts: opts}
}

// ReadHistory runs git log against repoPath and parses the output.
// It never mutates repository state. An empty log is an empty history,
// not an error; a nonzero exit that still produced parseable records
// yields the partial history instead of failing.
func (r *CLIReader) ReadHistory(ctx context.Context, repoPath string) (History, error) {
	args := []string{"--no-pager", "-C", repoPath, "log", "--pretty=format:" + logFormat}
	if r.opts.Limit > 0 {
		args = append(args, "-n", strconv.Itoa(r.opts.Limit))
	}

	ctx, cancel := withTimeout(ctx, r.opts.Timeout)
	defer cancel()

	stdout, stderr, err := r.runner.Run(ctx, "", r.opts.gitPath(), args...)
	if err != nil {
		if execx.IsStartFailure(err) {
			return nil, &ExecutionError{Op: "log", Err: err, Output: toolDetail(stdout, stderr)}
		}
		if hist := parseLog(stdout, r.opts.dateFormat()); !hist.Empty() {
			return hist, nil
		}
		return nil, &ToolFailure{Op: "log", Err: err, Output: toolDetail(stdout, stderr)}
	}

	return parseLog(stdout, r.opts.dateFormat()), nil
}

// parseLog consumes log output four lines at a time. A trailing group
// shorter than the stride is dropped, and a group whose date line does
// not match the layout is skipped. Records are grouped positionally, so
// skipping the group is the only recourse for a malformed one; a partial
// valid history always beats failing the whole read.
func parseLog(out []byte, dateFormat string) History {
	if len(strings.TrimSpace(string(out))) == 0 {
		return History{}
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	history := make(History, 0, len(lines)/logStride)

	for i := 0; i+logStride <= len(lines); i += logStride {
		when, err := time.Parse(dateFormat, strings.TrimSpace(lines[i+2]))
		if err != nil {
			continue
		}
		history = append(history, Commit{
			Hash:    strings.TrimSpace(lines[i]),
			Author:  lines[i+1],
			When:    when,
			Subject: lines[i+3],
		})
	}

	return history
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
