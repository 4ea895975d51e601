package output

import "time"

// JSONHistoryWriter writes commit history reports as JSON.
type JSONHistoryWriter struct{}

// JSONHistoryReport is the JSON output structure for a history listing.
type JSONHistoryReport struct {
	RepoPath      string            `json:"repo"`
	DefaultBranch string            `json:"defaultBranch"`
	GeneratedAt   string            `json:"generatedAt"`
	Head          *JSONHeadState    `json:"head,omitempty"`
	TotalCommits  int               `json:"totalCommits"`
	Items         []JSONHistoryItem `json:"items"`
}

// JSONHeadState is the JSON output structure for the current HEAD.
type JSONHeadState struct {
	Hash     string `json:"hash"`
	Branch   string `json:"branch,omitempty"`
	Detached bool   `json:"detached"`
	Index    int    `json:"index"` // position in the history; -1 when absent
}

// JSONHistoryItem is the JSON output structure for a single commit.
type JSONHistoryItem struct {
	Index   int    `json:"index"`
	SHA     string `json:"sha"`
	When    string `json:"when"`
	Author  string `json:"author"`
	Subject string `json:"subject"`
}

// Write outputs the history report as JSON.
func (w *JSONHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	items := limitTop(report.Commits, options.Top)

	jsonItems := make([]JSONHistoryItem, len(items))
	for i, c := range items {
		jsonItems[i] = JSONHistoryItem{
			Index:   i,
			SHA:     c.Hash,
			When:    c.When.Format(time.RFC3339),
			Author:  c.Author,
			Subject: c.Subject,
		}
	}

	jsonReport := JSONHistoryReport{
		RepoPath:      report.RepoPath,
		DefaultBranch: report.DefaultBranch,
		GeneratedAt:   report.GeneratedAt.Format(time.RFC3339),
		TotalCommits:  report.Commits.Len(),
		Items:         jsonItems,
	}
	if report.Head != nil {
		jsonReport.Head = &JSONHeadState{
			Hash:     report.Head.Hash,
			Branch:   report.Head.Branch,
			Detached: report.Head.Detached,
			Index:    report.headIndex(),
		}
	}

	return writeJSON(jsonReport, options.OutputPath)
}
