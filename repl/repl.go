// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"tsgoc/internal/config"
	diag "tsgoc/internal/errors"
	"tsgoc/internal/fixture"
	"tsgoc/internal/pipeline"
)

const PROMPT = ">> "

// Start runs a read-eval-print loop over in: each line is parsed with
// fixture as a standalone module, descended through the pipeline under the
// default strategy, and the emitted Go source (or diagnostics) printed back.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	p := pipeline.New(config.Default(), nil)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		mod, err := fixture.ParseSource("<repl>", line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		result, err := p.Run(context.Background(), mod)
		if result.Diagnostics != nil {
			reporter := diag.NewReporter("<repl>", line)
			for _, d := range result.Diagnostics.All() {
				fmt.Fprint(out, reporter.FormatDiagnostic(d))
			}
		}
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		fmt.Fprint(out, result.Emitted.Source)
	}
}
