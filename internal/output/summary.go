package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/privateer-tools/glycam2pdb/internal/batch"
)

// WriteBatchSummary writes the outcome of a conversion run: totals, files
// with unsupported sugars and failed files with their errors.
func WriteBatchSummary(w io.Writer, s *batch.Summary) {
	warn := color.New(color.FgYellow)
	fail := color.New(color.FgRed)

	failures := s.Failures()
	fmt.Fprintf(w, "\nConversion Summary:\n")
	fmt.Fprintf(w, "  Input:      %s\n", s.Input)
	fmt.Fprintf(w, "  Output:     %s\n", s.Output)
	fmt.Fprintf(w, "  Converted:  %d\n", s.Converted())
	if n := s.Skipped(); n > 0 {
		fmt.Fprintf(w, "  Unchanged:  %d\n", n)
	}
	fmt.Fprintf(w, "  Failed:     %d\n", len(failures))

	for _, f := range s.Files {
		if f.Result == nil || len(f.Result.Unsupported) == 0 {
			continue
		}
		pairs := make([]string, len(f.Result.Unsupported))
		for i, sub := range f.Result.Unsupported {
			pairs[i] = sub.String()
		}
		warn.Fprintf(w, "  Warning: %s contains sugars unsupported by the validation engine: %s\n",
			f.Input, strings.Join(pairs, ", "))
	}
	for _, f := range s.Files {
		if f.ValidationErr != nil {
			warn.Fprintf(w, "  Validation failed for %s: %v\n", f.Output, f.ValidationErr)
		}
	}
	for _, f := range failures {
		fail.Fprintf(w, "  Error: %v\n", f.Err)
	}
}
