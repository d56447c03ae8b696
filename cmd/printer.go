// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

import "fmt"

// OutputPrinter routes user-facing output so tests can capture it.
type OutputPrinter interface {
	Printf(format string, a ...any)
	Println(a ...any)
}

// Printer is the process-wide output sink for command feedback.
var Printer OutputPrinter = stdoutPrinter{}

type stdoutPrinter struct{}

func (stdoutPrinter) Printf(format string, a ...any) { fmt.Printf(format, a...) }
func (stdoutPrinter) Println(a ...any)               { fmt.Println(a...) }
