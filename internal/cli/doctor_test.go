package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandem-cli/tandem/internal/doctor"
)

// fakeCheck is a canned check for exercising the report rendering.
type fakeCheck struct {
	name     string
	category string
	result   doctor.CheckResult
}

func (c *fakeCheck) Name() string            { return c.name }
func (c *fakeCheck) Category() string        { return c.category }
func (c *fakeCheck) Run() doctor.CheckResult { return c.result }
func (c *fakeCheck) Fix() error              { return nil }

func TestCollectChecks(t *testing.T) {
	checks := collectChecks("")
	require.NotEmpty(t, checks)

	categories := make(map[string]bool)
	for _, check := range checks {
		categories[check.Category()] = true
	}

	assert.True(t, categories["DEPENDENCIES"], "should check tmux and the GPU tool")
	assert.True(t, categories["TELEMETRY"], "should check the telemetry sources")
	assert.True(t, categories["CONFIG"], "should check the config file")
}

func TestDoctorRows(t *testing.T) {
	checks := []doctor.Check{
		&fakeCheck{name: "tmux", category: "DEPENDENCIES"},
		&fakeCheck{name: "config_file", category: "CONFIG"},
	}
	results := []doctor.CheckResult{
		{Name: "tmux", Status: doctor.StatusPass, Message: "tmux 3.4 found"},
		{Name: "config_file", Status: doctor.StatusWarn, Message: "no config file", Suggestion: "Run 'tandem init'"},
	}

	rows := doctorRows(checks, results)
	require.Len(t, rows, 2)

	assert.Equal(t, "pass", rows[0].Status)
	assert.Equal(t, "DEPENDENCIES", rows[0].Category)
	assert.Equal(t, "tmux 3.4 found", rows[0].Message)

	assert.Equal(t, "warn", rows[1].Status)
	assert.Equal(t, "Run 'tandem init'", rows[1].Suggestion)
}

func TestWriteDoctorJSON(t *testing.T) {
	checks := []doctor.Check{
		&fakeCheck{name: "tmux", category: "DEPENDENCIES"},
		&fakeCheck{name: "gpu_tool", category: "DEPENDENCIES"},
		&fakeCheck{name: "config_file", category: "CONFIG"},
	}
	results := []doctor.CheckResult{
		{Name: "tmux", Status: doctor.StatusPass, Message: "tmux 3.4 found"},
		{Name: "gpu_tool", Status: doctor.StatusWarn, Message: "no GPU tool found"},
		{Name: "config_file", Status: doctor.StatusFail, Message: "invalid YAML", Fixable: true},
	}

	var buf bytes.Buffer
	err := writeDoctorJSON(&buf, checks, results)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"status": "pass"`)
	assert.Contains(t, out, `"status": "warn"`)
	assert.Contains(t, out, `"status": "fail"`)
	assert.Contains(t, out, `"name": "DEPENDENCIES"`)
	assert.Contains(t, out, `"name": "CONFIG"`)

	// The summary block decodes cleanly.
	var decoded struct {
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
		Summary SummaryOutput `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Categories, 2)
	assert.Equal(t, "DEPENDENCIES", decoded.Categories[0].Name)
	assert.Equal(t, "CONFIG", decoded.Categories[1].Name)

	assert.Equal(t, 1, decoded.Summary.Pass)
	assert.Equal(t, 1, decoded.Summary.Warn)
	assert.Equal(t, 1, decoded.Summary.Fail)
	assert.Equal(t, 1, decoded.Summary.Fixable)
	assert.False(t, decoded.Summary.AllClear)
}

func TestWriteDoctorJSON_AllClear(t *testing.T) {
	checks := []doctor.Check{
		&fakeCheck{name: "tmux", category: "DEPENDENCIES"},
	}
	results := []doctor.CheckResult{
		{Name: "tmux", Status: doctor.StatusPass, Message: "tmux 3.4 found"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeDoctorJSON(&buf, checks, results))

	assert.Contains(t, buf.String(), `"all_clear": true`)
}
