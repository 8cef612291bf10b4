// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// render writes v as indented JSON when the json output was requested, otherwise it
// prints the rows through a tabwriter.
func render(out io.Writer, format string, v any, header string, rows func(w io.Writer)) error {
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if header != "" {
		fmt.Fprintln(w, header)
	}
	rows(w)

	return w.Flush()
}
