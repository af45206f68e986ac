package doctor

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCheckStatus_String(t *testing.T) {
	tests := []struct {
		status   CheckStatus
		expected string
	}{
		{StatusPass, "pass"},
		{StatusWarn, "warn"},
		{StatusFail, "fail"},
		{CheckStatus(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			if got := tc.status.String(); got != tc.expected {
				t.Errorf("got %q, want %q", got, tc.expected)
			}
		})
	}
}

// mockCheck is a test implementation of Check.
type mockCheck struct {
	name     string
	category string
	result   CheckResult
	fixErr   error
	fixCalls int
}

func (m *mockCheck) Name() string     { return m.name }
func (m *mockCheck) Category() string { return m.category }
func (m *mockCheck) Run() CheckResult { return m.result }
func (m *mockCheck) Fix() error {
	m.fixCalls++
	return m.fixErr
}

func TestRunAll(t *testing.T) {
	checks := []Check{
		&mockCheck{
			name:     "check1",
			category: "TEST",
			result:   CheckResult{Name: "check1", Status: StatusPass, Message: "OK"},
		},
		&mockCheck{
			name:     "check2",
			category: "TEST",
			result:   CheckResult{Name: "check2", Status: StatusFail, Message: "Failed"},
		},
	}

	results := RunAll(checks)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].Status != StatusPass {
		t.Errorf("expected first check to pass")
	}
	if results[1].Status != StatusFail {
		t.Errorf("expected second check to fail")
	}
}

func TestCountByStatus(t *testing.T) {
	results := []CheckResult{
		{Status: StatusPass},
		{Status: StatusPass},
		{Status: StatusWarn},
		{Status: StatusFail},
	}

	counts := CountByStatus(results)

	if counts[StatusPass] != 2 {
		t.Errorf("expected 2 passes, got %d", counts[StatusPass])
	}
	if counts[StatusWarn] != 1 {
		t.Errorf("expected 1 warning, got %d", counts[StatusWarn])
	}
	if counts[StatusFail] != 1 {
		t.Errorf("expected 1 failure, got %d", counts[StatusFail])
	}
}

func TestHasFailures(t *testing.T) {
	noFailures := []CheckResult{
		{Status: StatusPass},
		{Status: StatusWarn},
	}
	if HasFailures(noFailures) {
		t.Error("expected no failures")
	}

	withFailures := []CheckResult{
		{Status: StatusPass},
		{Status: StatusFail},
	}
	if !HasFailures(withFailures) {
		t.Error("expected failures")
	}
}

func TestHasIssues(t *testing.T) {
	clean := []CheckResult{{Status: StatusPass}}
	if HasIssues(clean) {
		t.Error("expected no issues")
	}

	warned := []CheckResult{{Status: StatusPass}, {Status: StatusWarn}}
	if !HasIssues(warned) {
		t.Error("warnings count as issues")
	}

	failed := []CheckResult{{Status: StatusFail}}
	if !HasIssues(failed) {
		t.Error("failures count as issues")
	}
}

func TestFixableCount(t *testing.T) {
	results := []CheckResult{
		{Status: StatusPass, Fixable: true}, // Passing checks don't need fixing
		{Status: StatusWarn, Fixable: true},
		{Status: StatusFail, Fixable: true},
		{Status: StatusFail, Fixable: false},
	}

	if got := FixableCount(results); got != 2 {
		t.Errorf("expected 2 fixable issues, got %d", got)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		results  []CheckResult
		expected string
	}{
		{
			name:     "all passing",
			results:  []CheckResult{{Status: StatusPass}, {Status: StatusPass}},
			expected: "Everything looks good",
		},
		{
			name:     "one issue",
			results:  []CheckResult{{Status: StatusPass}, {Status: StatusWarn}},
			expected: "1 issue found",
		},
		{
			name:     "multiple issues",
			results:  []CheckResult{{Status: StatusWarn}, {Status: StatusFail}},
			expected: "2 issues found",
		},
		{
			name:     "empty results",
			results:  nil,
			expected: "Everything looks good",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Summary(tc.results); got != tc.expected {
				t.Errorf("got %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestCheckStatus_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(CheckResult{Name: "tmux", Status: StatusWarn, Message: "old"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"status":"warn"`) {
		t.Errorf("expected string status in JSON, got %s", data)
	}
}
