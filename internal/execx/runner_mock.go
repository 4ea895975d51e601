package execx

import (
	"context"
	"strings"
)

// MockCall records a single invocation seen by a MockRunner.
type MockCall struct {
	Dir  string
	Name string
	Args []string
}

// MockResult is the canned outcome returned for one invocation.
type MockResult struct {
	Stdout []byte
	Stderr []byte
	Err    error
}

// MockRunner is a test double for Runner.
// It returns queued results in order (repeating the last one when the queue
// runs dry) and records every call so tests can assert on the exact
// command lines issued.
type MockRunner struct {
	Results []MockResult
	Calls   []MockCall
}

// NewMockRunner creates a MockRunner that returns the given results in order.
func NewMockRunner(results ...MockResult) *MockRunner {
	return &MockRunner{Results: results}
}

// Run records the call and returns the next queued result.
func (m *MockRunner) Run(_ context.Context, dir string, name string, args ...string) ([]byte, []byte, error) {
	m.Calls = append(m.Calls, MockCall{Dir: dir, Name: name, Args: args})
	if len(m.Results) == 0 {
		return nil, nil, nil
	}
	i := len(m.Calls) - 1
	if i >= len(m.Results) {
		i = len(m.Results) - 1
	}
	r := m.Results[i]
	return r.Stdout, r.Stderr, r.Err
}

// LastCall returns the most recent recorded call, or a zero MockCall.
func (m *MockRunner) LastCall() MockCall {
	if len(m.Calls) == 0 {
		return MockCall{}
	}
	return m.Calls[len(m.Calls)-1]
}

// CommandLine renders a recorded call as a single string, for assertions.
func (c MockCall) CommandLine() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Compile-time interface conformance check.
var _ Runner = (*MockRunner)(nil)
