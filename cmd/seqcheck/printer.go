package main

import (
	"fmt"
	"io"

	"github.com/mgutz/ansi"

	"github.com/geofduf/text-sequence/internal/scenario"
)

// printer writes scenario reports in the form:
//
//	== insert before
//	PASS: empty sequence
//	FAIL: beyond capacity (step 18)
//	      got:  {Nicolas, >Trueba} (capacity = 7)
//	      want: {Nicolas, Pablo, >Trueba} (capacity = 7)
//
// Passing assertions are only printed in verbose mode.
type printer struct {
	w       io.Writer
	color   bool
	verbose bool

	scenarios int
	results   int
	failed    int
}

func (p *printer) report(r scenario.Report) {
	p.scenarios++
	p.results += len(r.Results)
	p.failed += r.Failed()
	if !p.verbose && r.Failed() == 0 {
		return
	}
	fmt.Fprintf(p.w, "== %s\n", p.paint(r.Scenario, "white+b"))
	for _, res := range r.Results {
		if res.Passed {
			if p.verbose {
				fmt.Fprintf(p.w, "%s: %s\n", p.paint("PASS", "green+b"), res.Label)
			}
			continue
		}
		fmt.Fprintf(p.w, "%s: %s (step %d)\n", p.paint("FAIL", "red+b"), res.Label, res.Step)
		fmt.Fprintf(p.w, "      got:  %s\n", res.Got)
		fmt.Fprintf(p.w, "      want: %s\n", res.Want)
	}
	if r.Aborted {
		fmt.Fprintf(p.w, "%s\n", p.paint("remaining steps skipped", "yellow"))
	}
}

func (p *printer) summary() {
	status := p.paint("ok", "green+b")
	if p.failed > 0 {
		status = p.paint("FAILED", "red+b")
	}
	fmt.Fprintf(p.w, "%s: %d scenarios, %d assertions, %d failed\n", status, p.scenarios, p.results, p.failed)
}

func (p *printer) paint(s, style string) string {
	if !p.color {
		return s
	}
	return ansi.Color(s, style)
}
