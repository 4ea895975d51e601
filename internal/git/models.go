package git

import "time"

// DefaultDateFormat is the Go layout matching git's default %ad rendering,
// e.g. "Tue Dec 3 14:05:22 2024 +0000".
const DefaultDateFormat = "Mon Jan 2 15:04:05 2006 -0700"

// Commit is an immutable record of a single commit.
type Commit struct {
	Hash    string
	Author  string
	When    time.Time
	Subject string
}

// ShortHash returns an abbreviated hash for display.
func (c Commit) ShortHash() string {
	if len(c.Hash) <= 8 {
		return c.Hash
	}
	return c.Hash[:8]
}

// History is an ordered commit sequence, newest-first: index 0 is the tip.
// A history is immutable once fetched; a new fetch replaces it wholesale.
type History []Commit

// Len returns the number of commits.
func (h History) Len() int {
	return len(h)
}

// Empty reports whether the history contains no commits.
func (h History) Empty() bool {
	return len(h) == 0
}

// Clamp maps any index into the valid range [0, len-1].
// Out-of-range indices are clamped, never an error. An empty history
// clamps everything to 0.
func (h History) Clamp(i int) int {
	if i < 0 || len(h) == 0 {
		return 0
	}
	if i >= len(h) {
		return len(h) - 1
	}
	return i
}

// At returns the commit at the clamped index and false when the history
// is empty.
func (h History) At(i int) (Commit, bool) {
	if len(h) == 0 {
		return Commit{}, false
	}
	return h[h.Clamp(i)], true
}

// IndexOf returns the position of the commit with the given hash,
// or -1 when it is not in the history.
func (h History) IndexOf(hash string) int {
	for i, c := range h {
		if c.Hash == hash {
			return i
		}
	}
	return -1
}
