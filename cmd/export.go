/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fulmenhq/weedoc/internal/export"
	"github.com/fulmenhq/weedoc/internal/host"
	"github.com/fulmenhq/weedoc/internal/i18n"
	"github.com/fulmenhq/weedoc/internal/ops"
	"github.com/fulmenhq/weedoc/pkg/config"
	"github.com/fulmenhq/weedoc/pkg/logger"
	"github.com/fulmenhq/weedoc/pkg/safeio"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
)

// exportCmd renders a snapshot into the per-locale AsciiDoc files.
var exportCmd = &cobra.Command{
	Use:   "export [locales...]",
	Short: "Export AsciiDoc documentation from a snapshot",
	Long: `Export renders every documentation category of a metadata snapshot
(commands, options, infos, hdata, ...) into the autogen directory of each
requested locale. Files whose content is already up to date are left
untouched, so the doc tree only shows real changes.

Locales may be given as arguments; otherwise the configured locales (or
the built-in list) are exported. A locale without a <lang>/autogen
directory under the documentation root is skipped with a warning.`,
	Args:              cobra.ArbitraryArgs,
	ValidArgsFunction: completeLocales,
	RunE:              runExport,
}

func init() {
	// Register with ops registry
	if err := ops.RegisterCommand("export", ops.GroupExport, exportCmd, "Export AsciiDoc documentation from a snapshot"); err != nil {
		panic(fmt.Sprintf("Failed to register export command: %v", err))
	}

	exportCmd.Flags().String("snapshot", "", "Metadata snapshot file (YAML or JSON)")
	exportCmd.Flags().String("path", "", "Documentation root directory (default ~/src/weechat/doc)")
	exportCmd.Flags().String("localedir", "", "Gettext catalog root (overrides the snapshot's localedir)")
	exportCmd.Flags().String("rules", "", "TOML file with curation rule overrides")
	exportCmd.Flags().String("report-format", "concise", "Report format: concise, json, or markdown")
	exportCmd.Flags().String("report-file", "", "Write the run report to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	snapshotPath := flagOrConfig(cmd.Flags(), "snapshot", cfg.Snapshot)
	if snapshotPath == "" {
		return fmt.Errorf("no snapshot configured (pass --snapshot or set snapshot in weedoc.yaml)")
	}
	snapshotPath, err = resolveUserPath(snapshotPath)
	if err != nil {
		return fmt.Errorf("invalid snapshot path: %w", err)
	}
	snap, err := host.LoadSnapshot(snapshotPath)
	if err != nil {
		return err
	}

	docRoot, err := resolveUserPath(flagOrConfig(cmd.Flags(), "path", cfg.Path))
	if err != nil {
		return fmt.Errorf("invalid documentation root: %w", err)
	}
	if _, err := os.Stat(docRoot); err != nil {
		return fmt.Errorf("documentation root %s: %w", docRoot, err)
	}

	rules := host.DefaultRules()
	if rulesPath := flagOrConfig(cmd.Flags(), "rules", cfg.Rules); rulesPath != "" {
		rulesPath, err = resolveUserPath(rulesPath)
		if err != nil {
			return fmt.Errorf("invalid rules path: %w", err)
		}
		if rules, err = host.LoadRules(rulesPath); err != nil {
			return err
		}
	}

	var catalog *i18n.Catalog
	if localeDir := flagOrConfig(cmd.Flags(), "localedir", cfg.Localedir); localeDir != "" {
		localeDir, err = resolveUserPath(localeDir)
		if err != nil {
			return fmt.Errorf("invalid localedir: %w", err)
		}
		catalog = i18n.NewCatalog(localeDir)
	}

	locales := args
	if len(locales) == 0 {
		locales = cfg.Locales
	}
	if len(locales) == 0 {
		locales = host.DefaultLocales()
	}

	logger.Info("exporting documentation",
		logger.String("snapshot", snapshotPath),
		logger.String("path", docRoot),
		logger.Int("locales", len(locales)))

	exp := &export.Exporter{
		Fs:           osfs.New(docRoot),
		Host:         snap,
		Rules:        rules,
		Catalog:      catalog,
		SnapshotPath: snapshotPath,
		TargetPath:   docRoot,
		Out:          cmd.OutOrStdout(),
	}
	report, err := exp.Run(locales)
	if err != nil {
		return err
	}

	if err := emitReport(cmd, cfg, report); err != nil {
		return err
	}

	if report.Summary.Failed > 0 {
		return fmt.Errorf("%d locale(s) failed to export", report.Summary.Failed)
	}
	return nil
}

// emitReport formats the run report and writes it to the configured sink.
// The default concise format is skipped on stdout because the progress
// lines already cover it; asking for it explicitly still prints it.
func emitReport(cmd *cobra.Command, cfg *config.Config, report *export.RunReport) error {
	format := export.ReportFormat(flagOrConfig(cmd.Flags(), "report-format", cfg.Report.Format))
	reportFile := flagOrConfig(cmd.Flags(), "report-file", cfg.Report.File)
	if reportFile == "" && format == export.ReportConcise && !cmd.Flags().Changed("report-format") {
		return nil
	}

	formatted, err := export.NewReportFormatter(format).Format(report)
	if err != nil {
		return err
	}
	if reportFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), formatted)
		return nil
	}

	reportFile, err = resolveUserPath(reportFile)
	if err != nil {
		return fmt.Errorf("invalid report file: %w", err)
	}
	if err := safeio.WriteFilePreservePerms(reportFile, []byte(formatted+"\n")); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info("report written", logger.String("file", reportFile))
	return nil
}

// flagOrConfig returns the flag value when explicitly set, else the config value.
func flagOrConfig(flags *pflag.FlagSet, name, configValue string) string {
	if flags.Changed(name) {
		v, _ := flags.GetString(name)
		return v
	}
	return configValue
}

// resolveUserPath expands a leading "~" and normalizes the path.
func resolveUserPath(p string) (string, error) {
	expanded, err := safeio.ExpandUser(p)
	if err != nil {
		return "", err
	}
	return safeio.CleanUserPath(expanded)
}

func completeLocales(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	seen := make(map[string]bool, len(args))
	for _, a := range args {
		seen[a] = true
	}
	var out []string
	for _, loc := range host.DefaultLocales() {
		if !seen[loc] && strings.HasPrefix(loc, toComplete) {
			out = append(out, loc)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
