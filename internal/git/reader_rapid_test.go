package git

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"
)

// --- Generators ---

func genCommitLines() *rapid.Generator[[]string] {
	return rapid.Custom(func(t *rapid.T) []string {
		count := rapid.IntRange(0, 50).Draw(t, "count")
		base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		lines := make([]string, 0, count*logStride)
		for i := 0; i < count; i++ {
			hash := fmt.Sprintf("%040x", i+1)
			author := rapid.StringMatching(`[A-Za-z][A-Za-z ]{0,20}`).Draw(t, fmt.Sprintf("author%d", i))
			when := base.Add(-time.Duration(i) * time.Hour)
			subject := rapid.StringMatching(`[^\n]{0,40}`).Draw(t, fmt.Sprintf("subject%d", i))
			lines = append(lines, hash, author, when.Format(DefaultDateFormat), subject)
		}
		return lines
	})
}

// --- Property Tests ---

func TestRapidParseLog_StrideCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := genCommitLines().Draw(t, "lines")
		extra := rapid.IntRange(0, logStride-1).Draw(t, "extra")

		// Append a truncated trailing group; it must never produce a commit.
		padded := append(append([]string{}, lines...), make([]string, extra)...)

		h := parseLog([]byte(strings.Join(padded, "\n")), DefaultDateFormat)

		want := len(lines) / logStride
		if h.Len() != want {
			t.Fatalf("parsed %d commits from %d full groups", h.Len(), want)
		}
		for i, c := range h {
			if c.Hash != lines[i*logStride] {
				t.Fatalf("commit %d hash %q, expected %q (input order not preserved)", i, c.Hash, lines[i*logStride])
			}
		}
	})
}

func TestRapidParseLog_BadDateOnlyDropsOwnGroup(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := genCommitLines().Draw(t, "lines")
		groups := len(lines) / logStride
		if groups == 0 {
			return
		}

		corrupted := rapid.IntRange(0, groups-1).Draw(t, "corrupted")
		mutated := append([]string{}, lines...)
		mutated[corrupted*logStride+2] = "definitely not a date"

		h := parseLog([]byte(strings.Join(mutated, "\n")), DefaultDateFormat)

		if h.Len() != groups-1 {
			t.Fatalf("parsed %d commits, expected %d after dropping one group", h.Len(), groups-1)
		}
		for _, c := range h {
			if c.Hash == lines[corrupted*logStride] {
				t.Fatalf("corrupted group %d survived parsing", corrupted)
			}
		}
	})
}
