package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execRoot(t *testing.T, args []string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	// Reduce log noise to capture clean command output for JSON parsing
	full := append([]string{"--log-level", "error"}, args...)
	rootCmd.SetArgs(full)
	err := rootCmd.Execute()
	return buf.String(), err
}

const exportTestSnapshot = `version: 1
commands:
  - plugin: weechat
    name: away
    description: set or remove away status
    args: "[-all] [<message>]"
    args_description: "raw[-all]: toggle away status on all connected servers"
options:
  - config: weechat
    section: look
    name: mouse
    type: boolean
    default: "off"
    description: enable mouse support
infos:
  - plugin: weechat
    name: version
    description: WeeChat version
irc_colors:
  - irc: "00"
    weechat: white
plugins_priority:
  - name: irc
    priority: 1000
`

// exportTestFiles is the number of files the fixture snapshot produces:
// one commands file, one options file, irc_colors, and the seven
// plugin API categories.
const exportTestFiles = 10

// writeExportFixture builds a doc tree with an en/autogen directory and a
// snapshot file, returning their paths.
func writeExportFixture(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	docRoot := filepath.Join(dir, "doc")
	for _, sub := range []string{"user", "plugin_api"} {
		if err := os.MkdirAll(filepath.Join(docRoot, "en", "autogen", sub), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	snapshot := filepath.Join(dir, "snapshot.yaml")
	if err := os.WriteFile(snapshot, []byte(exportTestSnapshot), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return docRoot, snapshot
}

func TestExport_NoSnapshot(t *testing.T) {
	out, err := execRoot(t, []string{"export"})
	if err == nil {
		t.Fatalf("expected export without a snapshot to fail\n%s", out)
	}
	if !strings.Contains(err.Error(), "no snapshot configured") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExport_RendersDocTree(t *testing.T) {
	docRoot, snapshot := writeExportFixture(t)
	out, err := execRoot(t, []string{"export", "--snapshot", snapshot, "--path", docRoot, "en_US"})
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "en_US: 10 files, 10 updated") {
		t.Fatalf("expected per-locale progress line, got: %s", out)
	}
	if !strings.Contains(out, "total: 10 files, 10 updated") {
		t.Fatalf("expected grand total line, got: %s", out)
	}

	data, err := os.ReadFile(filepath.Join(docRoot, "en", "autogen", "user", "weechat_commands.asciidoc"))
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "[[command_weechat_away]]") {
		t.Errorf("expected command anchor, got: %s", content)
	}
	if !strings.Contains(content, "auto-generated by weedoc") {
		t.Errorf("expected auto-generation banner, got: %s", content)
	}
}

func TestExport_SecondRunUpToDate(t *testing.T) {
	docRoot, snapshot := writeExportFixture(t)
	if out, err := execRoot(t, []string{"export", "--snapshot", snapshot, "--path", docRoot, "en_US"}); err != nil {
		t.Fatalf("first export failed: %v\n%s", err, out)
	}
	out, err := execRoot(t, []string{"export", "--snapshot", snapshot, "--path", docRoot, "en_US"})
	if err != nil {
		t.Fatalf("second export failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "total: 10 files, 0 updated") {
		t.Fatalf("expected unchanged tree on second run, got: %s", out)
	}
}

func TestExport_SkipsLocaleWithoutTree(t *testing.T) {
	docRoot, snapshot := writeExportFixture(t)
	out, err := execRoot(t, []string{"export", "--snapshot", snapshot, "--path", docRoot, "en_US", "fr_FR"})
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "en_US: 10 files, 10 updated") {
		t.Fatalf("expected en_US progress line, got: %s", out)
	}
	if strings.Contains(out, "fr_FR:") {
		t.Errorf("skipped locale should not print a progress line, got: %s", out)
	}
}

func TestExport_MissingDocRoot(t *testing.T) {
	_, snapshot := writeExportFixture(t)
	out, err := execRoot(t, []string{"export", "--snapshot", snapshot, "--path", "/nonexistent/doc", "en_US"})
	if err == nil {
		t.Fatalf("expected export with a missing doc root to fail\n%s", out)
	}
	if !strings.Contains(err.Error(), "documentation root") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExport_JSONReport(t *testing.T) {
	docRoot, snapshot := writeExportFixture(t)
	out, err := execRoot(t, []string{"export", "--snapshot", snapshot, "--path", docRoot, "--report-format", "json", "en_US"})
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}
	idx := strings.Index(out, "{")
	if idx < 0 {
		t.Fatalf("expected JSON report after progress lines, got: %s", out)
	}
	var report struct {
		Metadata struct {
			Tool string `json:"tool"`
		} `json:"metadata"`
		Locales []struct {
			Locale string `json:"locale"`
			Status string `json:"status"`
		} `json:"locales"`
		Summary struct {
			TotalFiles int `json:"total_files"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(out[idx:]), &report); err != nil {
		t.Fatalf("report is not valid JSON: %v\n%s", err, out)
	}
	if report.Metadata.Tool != "weedoc" {
		t.Errorf("expected tool weedoc, got %q", report.Metadata.Tool)
	}
	if len(report.Locales) != 1 || report.Locales[0].Status != "exported" {
		t.Errorf("unexpected locales in report: %+v", report.Locales)
	}
	if report.Summary.TotalFiles != exportTestFiles {
		t.Errorf("expected %d total files, got %d", exportTestFiles, report.Summary.TotalFiles)
	}
}

func TestExport_ReportFile(t *testing.T) {
	docRoot, snapshot := writeExportFixture(t)
	reportPath := filepath.Join(t.TempDir(), "report.md")
	out, err := execRoot(t, []string{"export", "--snapshot", snapshot, "--path", docRoot,
		"--report-format", "markdown", "--report-file", reportPath, "en_US"})
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}
	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("read report file: %v", err)
	}
	if !strings.Contains(string(data), "# Documentation Export Report") {
		t.Errorf("expected markdown report, got: %s", data)
	}
}
