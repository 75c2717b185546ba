package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/aymerick/raymond"
	"github.com/fulmenhq/weedoc/internal/assets"
)

// ReportFormat represents the output format for run reports
type ReportFormat string

const (
	// ReportConcise is a short, colorized summary for terminal use
	ReportConcise  ReportFormat = "concise"
	ReportJSON     ReportFormat = "json"
	ReportMarkdown ReportFormat = "markdown"
)

// ReportFormatter handles formatting run reports
type ReportFormatter struct {
	format ReportFormat
}

// NewReportFormatter creates a new report formatter
func NewReportFormatter(format ReportFormat) *ReportFormatter {
	return &ReportFormatter{format: format}
}

// Format formats a run report according to the configured format
func (f *ReportFormatter) Format(report *RunReport) (string, error) {
	switch f.format {
	case ReportConcise:
		return f.formatConcise(report), nil
	case ReportJSON:
		return f.formatJSON(report)
	case ReportMarkdown:
		return f.formatMarkdown(report)
	default:
		return "", fmt.Errorf("unsupported report format: %s", f.format)
	}
}

// formatConcise prints a short, colorized summary suitable for terminals
func (f *ReportFormatter) formatConcise(report *RunReport) string {
	color := func(code string, s string) string {
		if os.Getenv("NO_COLOR") != "" {
			return s
		}
		return "\x1b[" + code + "m" + s + "\x1b[0m"
	}
	bold := func(s string) string { return color("1", s) }
	green := func(s string) string { return color("32", s) }
	yellow := func(s string) string { return color("33", s) }
	red := func(s string) string { return color("31", s) }

	var sb strings.Builder

	updatedStr := fmt.Sprintf("%d updated", report.Summary.TotalUpdated)
	if report.Summary.TotalUpdated > 0 {
		updatedStr = yellow(updatedStr)
	} else {
		updatedStr = green(updatedStr)
	}
	fmt.Fprintf(&sb, "%s locales=%d | files: %d | %s\n",
		bold("Export"), report.Summary.Locales, report.Summary.TotalFiles, updatedStr)

	for _, loc := range report.Locales {
		var statusStr string
		switch loc.Status {
		case StatusExported:
			statusStr = green(string(loc.Status))
		case StatusSkipped:
			statusStr = yellow(string(loc.Status))
		default:
			statusStr = red(string(loc.Status))
		}

		if loc.Status == StatusSkipped {
			fmt.Fprintf(&sb, " - %s: %s (no locale directory)\n", loc.Locale, statusStr)
			continue
		}
		fmt.Fprintf(&sb, " - %s: %s (%d files, %d updated)\n", loc.Locale, statusStr, loc.Files, loc.Updated)
		if loc.Error != "" {
			fmt.Fprintf(&sb, "   %s %s\n", red("!"), loc.Error)
		}
	}

	if report.Summary.Failed > 0 {
		sb.WriteString(red(fmt.Sprintf("❌ %d locale(s) failed - see details above", report.Summary.Failed)))
	} else if report.Summary.Skipped > 0 {
		sb.WriteString(yellow(fmt.Sprintf("⚠️ %d locale(s) skipped - missing locale directories", report.Summary.Skipped)))
	} else {
		sb.WriteString(green("✅ Export completed"))
	}

	return sb.String()
}

// formatJSON creates a JSON-formatted run report
func (f *ReportFormatter) formatJSON(report *RunReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatMarkdown renders the run report through the embedded Handlebars
// template. The report goes through a JSON round-trip first so the template
// sees the same field names as the JSON output.
func (f *ReportFormatter) formatMarkdown(report *RunReport) (string, error) {
	data, err := f.formatJSON(report)
	if err != nil {
		return "", err
	}
	var ctx map[string]interface{}
	if err := json.Unmarshal([]byte(data), &ctx); err != nil {
		return "", fmt.Errorf("failed to prepare template data: %w", err)
	}

	tpl, ok := assets.GetTemplate("report/report.md.hbs")
	if !ok {
		return "", fmt.Errorf("report template missing from embedded assets")
	}
	return renderHandlebars(string(tpl), ctx)
}

// raymond panics when a helper is registered twice, so registration is
// guarded for repeated renders.
var helpersOnce sync.Once

// renderHandlebars renders a Handlebars template string with helpers registered
func renderHandlebars(tpl string, data interface{}) (string, error) {
	helpersOnce.Do(func() {
		raymond.RegisterHelper("gt", func(a, b interface{}) bool {
			aVal, _ := strconv.Atoi(fmt.Sprintf("%v", a))
			bVal, _ := strconv.Atoi(fmt.Sprintf("%v", b))
			return aVal > bVal
		})
	})
	out, err := raymond.Render(tpl, data)
	if err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return out, nil
}
