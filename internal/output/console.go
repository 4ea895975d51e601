package output

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleHistoryWriter writes commit history to the console.
type ConsoleHistoryWriter struct{}

// Write outputs the history report to the console. Index 0 is the tip;
// when the report carries a HEAD state the current position is marked.
func (w *ConsoleHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	items := limitTop(report.Commits, options.Top)
	headIdx := report.headIndex()

	color.Green("Commit History")
	fmt.Printf("Repository: %s\n", report.RepoPath)
	fmt.Printf("Default branch: %s\n", report.DefaultBranch)
	if report.Head != nil {
		if report.Head.Detached {
			fmt.Printf("HEAD: %s (detached)\n", report.Head.Hash)
		} else {
			fmt.Printf("HEAD: %s (%s)\n", report.Head.Hash, report.Head.Branch)
		}
	}
	fmt.Printf("Total commits: %d\n\n", report.Commits.Len())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " \t#\tSHA\tDate\tAuthor\tSubject")

	for i, c := range items {
		marker := " "
		if i == headIdx {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			marker,
			i,
			c.ShortHash(),
			c.When.Format(reportDateTimeLayout),
			c.Author,
			truncateSubject(c.Subject, 60),
		)
	}

	tw.Flush()

	if headIdx >= 0 {
		fmt.Println("\n* = position currently checked out")
	}
	return nil
}
