package output

import (
	"fmt"
	"time"
)

// CSVHistoryWriter writes commit history reports as CSV.
type CSVHistoryWriter struct{}

// Write outputs the history report as CSV.
func (w *CSVHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	items := limitTop(report.Commits, options.Top)

	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	headers := []string{"Index", "SHA", "When", "Author", "Subject"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for i, c := range items {
		row := []string{
			fmt.Sprintf("%d", i),
			c.Hash,
			c.When.Format(time.RFC3339),
			c.Author,
			c.Subject,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
