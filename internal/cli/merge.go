// SPDX-License-Identifier: MIT
package cli

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlist/internal/config"
	"github.com/katalvlaran/lvlist/linkedlist"
)

// mergeInput is the document accepted by --input. JSON is valid YAML, so
// both {"a": [1], "b": [2]} and a YAML mapping work.
type mergeInput struct {
	A []string `yaml:"a"`
	B []string `yaml:"b"`
}

// mergeOutput is the json rendering of a merge.
type mergeOutput[T any] struct {
	Merged *linkedlist.List[T] `json:"merged"`
	Length int                 `json:"length"`
}

// NewMergeCommand creates the merge command.
func NewMergeCommand() *cobra.Command {
	var (
		inputPath string
		listA     []string
		listB     []string
	)

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge two ascending lists",
		Long: `Merge two lists that are each sorted ascending into one ascending list.

Values come from --a/--b (comma-separated) or from --input, a YAML or JSON
file with keys "a" and "b". Flags override the file.`,
		Example: `  listmerge merge --a 1,3,5,7 --b 2,4,6,8
  listmerge merge --kind string --a ant,cat --b bee -o json
  listmerge merge --input lists.yaml --validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := mergeInput{}
			if inputPath != "" {
				var err error
				if in, err = readInput(inputPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("a") {
				in.A = listA
			}
			if cmd.Flags().Changed("b") {
				in.B = listB
			}

			ctx := cmd.Context()
			cfg := configFrom(ctx)
			logger := loggerFrom(ctx)
			out := cmd.OutOrStdout()

			switch cfg.Kind {
			case config.KindFloat:
				return runMerge(in, parseFloat, cfg, logger, out)
			case config.KindString:
				return runMerge(in, parseString, cfg, logger, out)
			default:
				return runMerge(in, parseInt, cfg, logger, out)
			}
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "YAML/JSON file with lists \"a\" and \"b\"")
	cmd.Flags().StringSliceVar(&listA, "a", nil, "First list, comma-separated (wins ties)")
	cmd.Flags().StringSliceVar(&listB, "b", nil, "Second list, comma-separated")

	return cmd
}

// readInput decodes the --input document.
func readInput(path string) (mergeInput, error) {
	var in mergeInput
	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("failed to read input: %w", err)
	}
	if err := yaml.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("failed to parse input %s: %w", path, err)
	}
	return in, nil
}

// runMerge parses both raw lists, merges them and renders the result.
func runMerge[T cmp.Ordered](in mergeInput, parse func(string) (T, error), cfg *config.Config, logger *slog.Logger, w io.Writer) error {
	// Blank tokens carry no number, but "" is a valid string element.
	skipBlank := cfg.Kind != config.KindString
	a, err := buildList(in.A, parse, skipBlank)
	if err != nil {
		return fmt.Errorf("list a: %w", err)
	}
	b, err := buildList(in.B, parse, skipBlank)
	if err != nil {
		return fmt.Errorf("list b: %w", err)
	}
	logger.Debug("merging", slog.Int("len_a", a.Len()), slog.Int("len_b", b.Len()), slog.Bool("validate", cfg.Strict))

	var merged *linkedlist.List[T]
	if cfg.Strict {
		if merged, err = linkedlist.MergeChecked(a, b); err != nil {
			return err
		}
	} else {
		if !linkedlist.IsSorted(a) || !linkedlist.IsSorted(b) {
			logger.Warn("input is not sorted ascending; result order is not guaranteed")
		}
		merged = linkedlist.Merge(a, b)
	}
	logger.Debug("merged", slog.Int("length", merged.Len()))

	if cfg.Output == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(mergeOutput[T]{Merged: merged, Length: merged.Len()})
	}
	_, err = fmt.Fprintln(w, merged)
	return err
}

// buildList parses each trimmed raw value and appends it. Blank values are
// dropped when skipBlank is set and kept as "" otherwise.
func buildList[T any](raw []string, parse func(string) (T, error), skipBlank bool) (*linkedlist.List[T], error) {
	l := linkedlist.New[T]()
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" && skipBlank {
			continue
		}
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		l.Append(v)
	}
	return l, nil
}

func parseInt(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func parseString(s string) (string, error) { return s, nil }
