package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fulmenhq/weedoc/internal/host"
	"github.com/fulmenhq/weedoc/internal/i18n"
	"github.com/fulmenhq/weedoc/internal/ops"
	"github.com/fulmenhq/weedoc/pkg/buildinfo"
	"github.com/fulmenhq/weedoc/pkg/logger"
	billy "github.com/go-git/go-billy/v5"
)

// LocaleStatus is the outcome of one locale in an export run.
type LocaleStatus string

const (
	StatusExported LocaleStatus = "exported"
	StatusSkipped  LocaleStatus = "skipped"
	StatusFailed   LocaleStatus = "failed"
)

// CategoryCount is the per-category file tally of one locale.
type CategoryCount struct {
	Category string `json:"category"`
	Files    int    `json:"files"`
	Updated  int    `json:"updated"`
}

// LocaleResult is the outcome of one locale.
type LocaleResult struct {
	Locale     string          `json:"locale"`
	Dir        string          `json:"dir"`
	Status     LocaleStatus    `json:"status"`
	Files      int             `json:"files"`
	Updated    int             `json:"updated"`
	Error      string          `json:"error,omitempty"`
	Categories []CategoryCount `json:"categories,omitempty"`
}

// ReportMetadata describes the run itself.
type ReportMetadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Tool        string    `json:"tool"`
	Version     string    `json:"version"`
	Snapshot    string    `json:"snapshot,omitempty"`
	TargetPath  string    `json:"target_path,omitempty"`
}

// RunSummary aggregates the run across locales.
type RunSummary struct {
	Locales      int `json:"locales"`
	Exported     int `json:"exported"`
	Skipped      int `json:"skipped"`
	Failed       int `json:"failed"`
	TotalFiles   int `json:"total_files"`
	TotalUpdated int `json:"total_updated"`
}

// RunReport is the full result of an export run.
type RunReport struct {
	Metadata ReportMetadata `json:"metadata"`
	Locales  []LocaleResult `json:"locales"`
	Summary  RunSummary     `json:"summary"`
}

// Exporter generates the documentation tree for a set of locales. Fs is
// rooted at the documentation path; each locale writes below
// "{lang}/autogen".
type Exporter struct {
	Fs      billy.Filesystem
	Host    host.Host
	Rules   *host.Rules
	Catalog *i18n.Catalog

	// SnapshotPath and TargetPath only annotate the run report.
	SnapshotPath string
	TargetPath   string

	// Out receives per-locale progress lines. Defaults to stdout.
	Out io.Writer
}

func (e *Exporter) out() io.Writer {
	if e.Out != nil {
		return e.Out
	}
	return os.Stdout
}

// Run exports every locale in order and returns the run report. Locales
// whose documentation directory is missing are skipped with a warning; a
// failing locale is recorded and the run moves on to the next one. The
// returned error covers setup problems only, per-locale failures live in
// the report.
func (e *Exporter) Run(locales []string) (*RunReport, error) {
	if e.Fs == nil {
		return nil, fmt.Errorf("exporter: no filesystem configured")
	}
	if e.Host == nil {
		return nil, fmt.Errorf("exporter: no host configured")
	}
	if e.Rules == nil {
		e.Rules = host.DefaultRules()
	}
	if e.Catalog == nil {
		e.Catalog = i18n.NewCatalog(e.Host.LocaleDir())
	}

	categories := ops.GetCategoryRegistry().Categories()
	for _, cat := range categories {
		if _, ok := renderers[cat.Name]; !ok {
			return nil, fmt.Errorf("exporter: no renderer for category %s", cat.Name)
		}
	}

	data := collect(e.Host, e.Rules)
	counters := NewRunCounters()

	report := &RunReport{
		Metadata: ReportMetadata{
			GeneratedAt: time.Now().UTC(),
			Tool:        "weedoc",
			Version:     buildinfo.BinaryVersion,
			Snapshot:    e.SnapshotPath,
			TargetPath:  e.TargetPath,
		},
	}

	for _, locale := range locales {
		counters.BeginLocale()
		result := LocaleResult{Locale: locale}

		dir := e.Fs.Join(i18n.DirPrefix(locale), "autogen")
		result.Dir = dir
		if _, err := e.Fs.Stat(dir); err != nil {
			logger.Warn("locale directory not found, skipping",
				logger.String("locale", locale), logger.String("dir", dir))
			result.Status = StatusSkipped
			report.Locales = append(report.Locales, result)
			report.Summary.Skipped++
			continue
		}

		ctx := &renderContext{
			fs:       e.Fs,
			dir:      dir,
			tr:       e.Catalog.ForLocale(locale),
			counters: counters,
			data:     data,
		}

		var renderErr error
		for _, cat := range categories {
			if err := renderers[cat.Name](ctx, cat); err != nil {
				renderErr = fmt.Errorf("category %s: %w", cat.Name, err)
				break
			}
		}

		result.Files = counters.LocaleFiles()
		result.Updated = counters.LocaleUpdated()
		result.Categories = categoryCounts(categories, counters)
		if renderErr != nil {
			logger.Error("locale export failed",
				logger.String("locale", locale), logger.Err(renderErr))
			result.Status = StatusFailed
			result.Error = renderErr.Error()
			report.Summary.Failed++
		} else {
			result.Status = StatusExported
			report.Summary.Exported++
			fmt.Fprintf(e.out(), "%s: %d files, %d updated\n", locale, result.Files, result.Updated)
		}
		report.Locales = append(report.Locales, result)
	}

	report.Summary.Locales = len(locales)
	report.Summary.TotalFiles = counters.TotalFiles()
	report.Summary.TotalUpdated = counters.TotalUpdated()
	fmt.Fprintf(e.out(), "total: %d files, %d updated\n", report.Summary.TotalFiles, report.Summary.TotalUpdated)

	return report, nil
}

func categoryCounts(categories []ops.Category, counters *RunCounters) []CategoryCount {
	var out []CategoryCount
	for _, cat := range categories {
		files := counters.LocaleCategoryFiles(cat.Name)
		if files == 0 {
			continue
		}
		out = append(out, CategoryCount{
			Category: cat.Name,
			Files:    files,
			Updated:  counters.LocaleCategoryUpdated(cat.Name),
		})
	}
	return out
}
