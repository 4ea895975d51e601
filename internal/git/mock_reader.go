package git

import "context"

// MockHistoryReader is a test double for HistoryReader.
// It allows tests to provide predefined commit data without needing a real
// Git repository.
type MockHistoryReader struct {
	History History
	Err     error
	Reads   int
}

// NewMockHistoryReader creates a new MockHistoryReader with the given data.
func NewMockHistoryReader(history History, err error) *MockHistoryReader {
	return &MockHistoryReader{History: history, Err: err}
}

// ReadHistory returns the predefined history or error.
func (m *MockHistoryReader) ReadHistory(_ context.Context, _ string) (History, error) {
	m.Reads++
	return m.History, m.Err
}

// MockReconciler is a test double for Reconciler.
// It records every requested target index so tests can assert on exactly
// which reconciliations were issued.
type MockReconciler struct {
	Indices []int
	Err     error
}

// Reconcile records the clamped target index and returns the predefined error.
func (m *MockReconciler) Reconcile(_ context.Context, _ string, history History, targetIndex int) error {
	m.Indices = append(m.Indices, history.Clamp(targetIndex))
	return m.Err
}
