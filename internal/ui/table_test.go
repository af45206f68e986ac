package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Name", Width: 20},
		{Title: "Status", Width: 10},
	}
	rows := []table.Row{
		{"item1", "ok"},
		{"item2", "error"},
	}

	tbl := NewTable(columns, rows)

	view := tbl.View()
	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "Status")
	assert.Contains(t, view, "item1")
	assert.Contains(t, view, "item2")
}

func TestNewTable_EmptyRows(t *testing.T) {
	columns := []TableColumn{
		{Title: "Name", Width: 20},
	}
	rows := []table.Row{}

	tbl := NewTable(columns, rows)
	view := tbl.View()

	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Name")
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Session", Width: 15},
		{Title: "Windows", Width: 10},
	}
	rows := [][]string{
		{"tandem", "2"},
		{"scratch", "1"},
	}

	output := RenderSimpleTable(columns, rows)

	assert.Contains(t, output, "Session")
	assert.Contains(t, output, "Windows")
	assert.Contains(t, output, "tandem")
	assert.Contains(t, output, "scratch")
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	columns := []TableColumn{
		{Title: "Name", Width: 20},
	}

	output := RenderSimpleTable(columns, [][]string{})
	assert.Empty(t, output)
}

func TestRenderSessionTable(t *testing.T) {
	rows := []SessionRow{
		{Name: "tandem", Windows: "2", Created: "2026-08-23 14:02", Attached: true},
		{Name: "scratch", Windows: "1", Created: "2026-08-22 09:15", Attached: false},
	}

	output := RenderSessionTable(rows, "tandem")

	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "WINDOWS")
	assert.Contains(t, output, "CREATED")
	assert.Contains(t, output, "ATTACHED")
	assert.Contains(t, output, "tandem")
	assert.Contains(t, output, "scratch")
	assert.Contains(t, output, "attached")
	assert.Contains(t, output, SymbolActive, "managed session is marked")
}

func TestRenderSessionTable_NoManagedMatch(t *testing.T) {
	rows := []SessionRow{
		{Name: "scratch", Windows: "1", Created: "2026-08-22 09:15"},
	}

	output := RenderSessionTable(rows, "tandem")

	assert.NotContains(t, output, SymbolActive)
	assert.Contains(t, output, "-", "detached sessions show a dash")
}

func TestRenderSessionTable_EmptyRows(t *testing.T) {
	output := RenderSessionTable(nil, "tandem")
	assert.Equal(t, "No tmux sessions running", output)
}

func TestRenderDoctorTable(t *testing.T) {
	rows := []DoctorCheckRow{
		{Status: "pass", Category: "DEPENDENCIES", Message: "tmux 3.4 found"},
		{Status: "warn", Category: "DEPENDENCIES", Message: "nvidia-smi not found", Suggestion: "GPU gauges will be skipped"},
		{Status: "fail", Category: "CONFIG", Message: "invalid .tandem.yaml", Suggestion: "Run tandem init"},
	}

	output := RenderDoctorTable(rows)

	assert.Contains(t, output, "DEPENDENCIES")
	assert.Contains(t, output, "CONFIG")
	assert.Contains(t, output, "tmux 3.4 found")
	assert.Contains(t, output, "nvidia-smi not found")
	assert.Contains(t, output, "GPU gauges will be skipped")
	assert.Contains(t, output, "invalid .tandem.yaml")
	assert.Contains(t, output, "Run tandem init")
}

func TestRenderDoctorTable_EmptyRows(t *testing.T) {
	output := RenderDoctorTable(nil)
	assert.Equal(t, "No checks to display", output)
}

func TestRenderDoctorTable_GroupsByCategory(t *testing.T) {
	rows := []DoctorCheckRow{
		{Status: "pass", Category: "Cat1", Message: "Check 1"},
		{Status: "pass", Category: "Cat2", Message: "Check 2"},
		{Status: "pass", Category: "Cat1", Message: "Check 3"},
	}

	output := RenderDoctorTable(rows)

	// Categories appear in first-seen order, with rows grouped under them
	cat1 := strings.Index(output, "Cat1")
	cat2 := strings.Index(output, "Cat2")
	check3 := strings.Index(output, "Check 3")
	assert.Less(t, cat1, cat2)
	assert.Less(t, check3, cat2, "Cat1 rows group before Cat2 starts")
}

func TestRenderDoctorTable_NoSuggestionForPass(t *testing.T) {
	rows := []DoctorCheckRow{
		{Status: "pass", Category: "Test", Message: "All good", Suggestion: "This should not appear"},
	}

	output := RenderDoctorTable(rows)

	assert.Contains(t, output, "All good")
	assert.NotContains(t, output, "This should not appear")
}

func TestRenderDoctorTable_StatusIcons(t *testing.T) {
	output := RenderDoctorTable([]DoctorCheckRow{
		{Status: "pass", Category: "C", Message: "ok"},
		{Status: "warn", Category: "C", Message: "meh"},
		{Status: "fail", Category: "C", Message: "bad"},
		{Status: "unknown", Category: "C", Message: "pending"},
	})

	assert.Contains(t, output, SymbolSuccess)
	assert.Contains(t, output, SymbolWarning)
	assert.Contains(t, output, SymbolFail)
	assert.Contains(t, output, SymbolPending)
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{name: "shorter than width", input: "foo", width: 5, expected: "foo  "},
		{name: "equal to width", input: "foobar", width: 6, expected: "foobar"},
		{name: "longer than width", input: "foobar", width: 3, expected: "foobar"},
		{name: "empty string", input: "", width: 3, expected: "   "},
		{name: "zero width", input: "foo", width: 0, expected: "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, padRight(tt.input, tt.width))
		})
	}
}
