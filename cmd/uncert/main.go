// Command uncert runs the uncertainty propagation engine from the shell,
// speaking the same JSON request/response contract an embedding
// application would use.
//
// Usage:
//
//	# propagate: read a request from stdin or a file, write the response
//	echo '{"formula":"x^2 + y","variables":[
//	  {"name":"x","value":3,"uncertainty":0.1},
//	  {"name":"y","value":1,"uncertainty":0.05}],
//	  "outputConfidence":95}' | uncert eval
//
//	uncert eval -f request.json
//
//	# z-score for a confidence level
//	uncert zscore 95
//
//	# spreadsheet formula generation
//	uncert sheet -f sheet-request.json
//
// Failures print a JSON object {"kind": ..., "message": ...} on stderr
// and exit non-zero; kinds are the stable identifiers from
// propagate.ErrorKind (parse, validation, domain, …).
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/uncert/confidence"
	"github.com/katalvlaran/uncert/propagate"
	"github.com/katalvlaran/uncert/sheet"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "uncert",
		Short:         "Propagate measurement uncertainty through a formula",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(newEvalCmd(), newZScoreCmd(), newSheetCmd())

	return root
}

// setupLogging routes structured logs to stderr; stdout stays pure JSON
// output so the binary composes in pipes.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// newEvalCmd builds the "eval" subcommand: JSON request in, JSON response out.
func newEvalCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Run one propagation request (JSON in, JSON out)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(file, cmd.InOrStdin())
			if err != nil {
				return fail(cmd, "input", err)
			}

			var req propagate.Request
			if err = json.Unmarshal(data, &req); err != nil {
				return fail(cmd, "input", err)
			}

			slog.Debug("running propagation",
				"formula", req.Formula, "variables", len(req.Variables))

			resp, err := propagate.Do(req)
			if err != nil {
				return fail(cmd, propagate.ErrorKind(err), err)
			}

			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the request from a file instead of stdin")

	return cmd
}

// newZScoreCmd builds the "zscore" subcommand.
func newZScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zscore <confidence>",
		Short: "Print the two-sided z-score for a confidence level in percent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fail(cmd, "input", err)
			}

			z, err := confidence.Sigma(level)
			if err != nil {
				return fail(cmd, "validation", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", z)

			return nil
		},
	}
}

// sheetRequest is the wire form of a formula-generation call.
type sheetRequest struct {
	Formula          string           `json:"formula"`
	Variables        []sheet.Variable `json:"variables"`
	OutputConfidence float64          `json:"outputConfidence"`
}

// newSheetCmd builds the "sheet" subcommand: spreadsheet formula generation.
func newSheetCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Generate per-row spreadsheet formulas (JSON in, JSON out)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(file, cmd.InOrStdin())
			if err != nil {
				return fail(cmd, "input", err)
			}

			var req sheetRequest
			if err = json.Unmarshal(data, &req); err != nil {
				return fail(cmd, "input", err)
			}
			if req.OutputConfidence == 0 {
				req.OutputConfidence = 95
			}

			gen, err := sheet.Formulas(req.Formula, req.Variables, req.OutputConfidence)
			if err != nil {
				return fail(cmd, sheetErrorKind(err), err)
			}

			return writeJSON(cmd.OutOrStdout(), gen)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the request from a file instead of stdin")

	return cmd
}

// sheetErrorKind extends propagate.ErrorKind with the range sentinels
// specific to formula generation.
func sheetErrorKind(err error) string {
	switch {
	case errors.Is(err, sheet.ErrBadRange),
		errors.Is(err, sheet.ErrRowOutOfRange),
		errors.Is(err, sheet.ErrUnboundName):
		return "validation"
	default:
		return propagate.ErrorKind(err)
	}
}

// readInput loads the request body from a file or the given reader.
func readInput(file string, stdin io.Reader) ([]byte, error) {
	if file != "" {
		return os.ReadFile(file)
	}

	return io.ReadAll(stdin)
}

// writeJSON pretty-prints v to w.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// fail prints the structured error record on stderr and returns a
// non-nil error so cobra exits with status 1.
func fail(cmd *cobra.Command, kind string, err error) error {
	record := struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}{Kind: kind, Message: err.Error()}

	out, merr := json.Marshal(record)
	if merr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)

		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), string(out))

	return err
}
