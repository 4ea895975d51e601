package output

import "fmt"

// MarkdownHistoryWriter writes commit history reports as Markdown.
type MarkdownHistoryWriter struct{}

// Write outputs the history report as Markdown.
func (w *MarkdownHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	items := limitTop(report.Commits, options.Top)
	headIdx := report.headIndex()

	out, file, err := createWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Commit History")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Default branch:** %s\n\n", report.DefaultBranch)
	fmt.Fprintf(out, "**Total commits:** %d\n\n", report.Commits.Len())

	fmt.Fprintln(out, "| # | SHA | Date | Author | Subject |")
	fmt.Fprintln(out, "|---|-----|------|--------|---------|")

	for i, c := range items {
		sha := "`" + c.ShortHash() + "`"
		if i == headIdx {
			sha = sha + " *"
		}
		fmt.Fprintf(out, "| %d | %s | %s | %s | %s |\n",
			i, sha, c.When.Format(reportDateTimeLayout), c.Author, c.Subject)
	}

	if headIdx >= 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "`*` marks the position currently checked out.")
	}

	return nil
}
