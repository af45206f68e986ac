package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/tandem-cli/tandem/internal/doctor"
	"github.com/tandem-cli/tandem/internal/errors"
	"github.com/tandem-cli/tandem/internal/ui"
)

// DoctorOutput is the JSON shape of `tandem doctor --json`.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput groups check results under their category.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput totals the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand runs the environment checks and renders the report. Any
// failed check makes the command exit non-zero.
func doctorCommand() error {
	checks := collectChecks(Config())
	results := doctor.RunAll(checks)

	if doctorJSON {
		if err := writeDoctorJSON(os.Stdout, checks, results); err != nil {
			return err
		}
	} else {
		printDoctorReport(checks, results)
	}

	if doctor.HasFailures(results) {
		return errors.NewExitError(1)
	}
	return nil
}

// collectChecks gathers every diagnostic: tmux and the GPU tool, the
// telemetry sources for this platform, then config discovery and schema.
func collectChecks(configPath string) []doctor.Check {
	var checks []doctor.Check
	checks = append(checks, doctor.NewDepsChecks()...)
	checks = append(checks, doctor.NewTelemetryChecks()...)
	checks = append(checks, doctor.NewConfigChecks(configPath)...)
	return checks
}

// doctorRows pairs checks with their results for the table renderer.
func doctorRows(checks []doctor.Check, results []doctor.CheckResult) []ui.DoctorCheckRow {
	rows := make([]ui.DoctorCheckRow, len(results))
	for i := range results {
		rows[i] = ui.DoctorCheckRow{
			Status:     results[i].Status.String(),
			Category:   checks[i].Category(),
			Message:    results[i].Message,
			Suggestion: results[i].Suggestion,
		}
	}
	return rows
}

// printDoctorReport renders the human-readable report.
func printDoctorReport(checks []doctor.Check, results []doctor.CheckResult) {
	header := lipgloss.NewStyle().Bold(true)

	fmt.Println()
	fmt.Println(header.Render("tandem doctor"))
	fmt.Println()
	fmt.Print(ui.RenderDoctorTable(doctorRows(checks, results)))

	if doctor.HasIssues(results) {
		fmt.Printf("%s %s\n", ui.WarningStyle().Render(ui.SymbolWarning), doctor.Summary(results))
		if doctor.FixableCount(results) > 0 {
			fmt.Printf("  %s\n", ui.MutedStyle().Render("Run 'tandem init' to write a starter config."))
		}
	} else {
		fmt.Printf("%s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), doctor.Summary(results))
	}
	fmt.Println()
}

// writeDoctorJSON renders the report as JSON, grouped the same way as the
// text output.
func writeDoctorJSON(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) error {
	grouped := make(map[string][]doctor.CheckResult)
	var order []string

	for i, check := range checks {
		cat := check.Category()
		if _, ok := grouped[cat]; !ok {
			order = append(order, cat)
		}
		grouped[cat] = append(grouped[cat], results[i])
	}

	out := DoctorOutput{Categories: make([]CategoryOutput, 0, len(order))}
	for _, cat := range order {
		out.Categories = append(out.Categories, CategoryOutput{Name: cat, Results: grouped[cat]})
	}

	counts := doctor.CountByStatus(results)
	out.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		Fixable:  doctor.FixableCount(results),
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
