package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"ugc-mapper/internal/diagnostic"
	"ugc-mapper/internal/store"
)

// printSummaries prints an id/name table, or a note when it is empty.
func printSummaries(w io.Writer, what string, list []store.Summary) {
	if len(list) == 0 {
		fmt.Fprintf(w, "no %s\n", what)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")

	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s\n", s.ID, s.Name)
	}

	_ = tw.Flush()
}

// printDiagnostics prints one line per finding, errors first.
func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	all := diags.All()
	if len(all) == 0 {
		fmt.Fprintln(w, "ok")
		return
	}

	for _, d := range all {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
