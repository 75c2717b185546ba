package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fulmenhq/weedoc/internal/host"
	"github.com/fulmenhq/weedoc/internal/i18n"
	"github.com/fulmenhq/weedoc/internal/ops"
	"github.com/fulmenhq/weedoc/pkg/config"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// localeInfo describes one locale and the state of its doc tree.
type localeInfo struct {
	Locale  string `json:"locale"`
	Name    string `json:"name"`
	Dir     string `json:"dir"`
	Present bool   `json:"present"`
}

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "Show known locales and their documentation trees",
	Long: `Locales lists the locales weedoc would export (configured locales, or
the built-in list) and checks whether each one has a <lang>/autogen
directory under the documentation root. Locales without that directory
are skipped during export.`,
	Args: cobra.NoArgs,
	RunE: runLocales,
}

func init() {
	// Register with ops registry
	if err := ops.RegisterCommand("locales", ops.GroupSupport, localesCmd, "Show known locales and their documentation trees"); err != nil {
		panic(fmt.Sprintf("Failed to register locales command: %v", err))
	}

	localesCmd.Flags().String("path", "", "Documentation root directory (default from config)")
	localesCmd.Flags().String("format", "text", "Output format (text, json)")
}

func runLocales(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	docRoot, err := resolveUserPath(flagOrConfig(cmd.Flags(), "path", cfg.Path))
	if err != nil {
		return fmt.Errorf("invalid documentation root: %w", err)
	}

	locales := cfg.Locales
	if len(locales) == 0 {
		locales = host.DefaultLocales()
	}

	infos := make([]localeInfo, 0, len(locales))
	for _, loc := range locales {
		dir := filepath.Join(i18n.DirPrefix(loc), "autogen")
		_, statErr := os.Stat(filepath.Join(docRoot, dir))
		infos = append(infos, localeInfo{
			Locale:  loc,
			Name:    nativeName(loc),
			Dir:     dir,
			Present: statErr == nil,
		})
	}

	out := cmd.OutOrStdout()
	if format, _ := cmd.Flags().GetString("format"); format == "json" {
		payload := struct {
			Path    string       `json:"path"`
			Locales []localeInfo `json:"locales"`
		}{Path: docRoot, Locales: infos}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Documentation root: %s\n\n", docRoot)
	nameWidth := 0
	for _, info := range infos {
		if w := runewidth.StringWidth(info.Name); w > nameWidth {
			nameWidth = w
		}
	}
	for _, info := range infos {
		status := "✅ ready"
		if !info.Present {
			status = "❌ missing"
		}
		fmt.Fprintf(out, "  %s  %s  %-13s %s\n",
			info.Locale, runewidth.FillRight(info.Name, nameWidth), info.Dir, status)
	}
	return nil
}

// nativeName returns the language's name in that language ("fr_FR" -> "français").
func nativeName(locale string) string {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return locale
	}
	base, _ := tag.Base()
	return display.Self.Name(language.Make(base.String()))
}
