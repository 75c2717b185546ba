package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fulmenhq/weedoc/internal/ops"
	"github.com/fulmenhq/weedoc/pkg/schema"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Work with metadata snapshot files",
	Long: `Snapshot groups operations on the metadata snapshot files consumed by
the export command.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var snapshotVetCmd = &cobra.Command{
	Use:   "vet [files...]",
	Short: "Validate snapshot files against the embedded schema",
	Long: `Vet checks that each snapshot file parses as YAML or JSON and conforms
to the embedded snapshot schema. Arguments may be files or glob patterns
(including ** for recursive matches). Files are validated concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSnapshotVet,
}

// vetResult holds the validation outcome for one file.
type vetResult struct {
	File   string                   `json:"file"`
	Valid  bool                     `json:"valid"`
	Errors []schema.ValidationError `json:"errors,omitempty"`
	Err    string                   `json:"error,omitempty"`
}

// vetError reports how many files failed validation. Execute maps it to
// exitcode.ValidationError.
type vetError struct {
	invalid int
	total   int
}

func (e *vetError) Error() string {
	return fmt.Sprintf("%d of %d snapshot file(s) failed validation", e.invalid, e.total)
}

func init() {
	// Register with ops registry
	if err := ops.RegisterCommand("snapshot", ops.GroupExport, snapshotCmd, "Validate and inspect snapshot files"); err != nil {
		panic(fmt.Sprintf("Failed to register snapshot command: %v", err))
	}

	snapshotCmd.AddCommand(snapshotVetCmd)
	snapshotVetCmd.Flags().String("format", "text", "Output format (text, json)")
	snapshotVetCmd.Flags().Int("workers", 0, "Number of concurrent validators (0 = number of CPUs)")
}

func runSnapshotVet(cmd *cobra.Command, args []string) error {
	files, err := expandSnapshotArgs(args)
	if err != nil {
		return err
	}

	validator, err := schema.GetEmbeddedValidator("snapshot-v1.0.0")
	if err != nil {
		return fmt.Errorf("failed to load snapshot schema: %w", err)
	}

	workers, _ := cmd.Flags().GetInt("workers")
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if len(files) < 2 {
		workers = 1
	}

	results := make([]vetResult, len(files))
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for i, file := range files {
		i, file := i, file // per-iteration copies; go directive predates Go 1.22 loop semantics
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = vetFile(validator, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format, _ := cmd.Flags().GetString("format"); format == "json" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return vetFailure(results)
	}

	for _, r := range results {
		switch {
		case r.Err != "":
			fmt.Fprintf(out, "❌ %s: %s\n", r.File, r.Err)
		case !r.Valid:
			fmt.Fprintf(out, "❌ %s: %d error(s)\n", r.File, len(r.Errors))
			for _, e := range r.Errors {
				fmt.Fprintf(out, "   - %s: %s\n", e.Path, e.Message)
			}
		default:
			fmt.Fprintf(out, "✅ %s: valid\n", r.File)
		}
	}
	return vetFailure(results)
}

// expandSnapshotArgs expands glob patterns; plain paths pass through so a
// missing file still surfaces as a read error.
func expandSnapshotArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			files = append(files, arg)
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}

func vetFile(validator *schema.Validator, file string) vetResult {
	res := vetResult{File: file}
	cleanPath, err := resolveUserPath(file)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	data, err := os.ReadFile(cleanPath) // #nosec G304 -- cleanPath sanitized with safeio.CleanUserPath
	if err != nil {
		res.Err = err.Error()
		return res
	}
	vres, err := validator.ValidateBytes(data)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Valid = vres.Valid
	res.Errors = vres.Errors
	return res
}

func vetFailure(results []vetResult) error {
	invalid := 0
	for _, r := range results {
		if r.Err != "" || !r.Valid {
			invalid++
		}
	}
	if invalid > 0 {
		return &vetError{invalid: invalid, total: len(results)}
	}
	return nil
}
