// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

// RunCleanup removes the pins the OS naming scheme would reproduce unaided.
// Run after the environment transition, once naming has stabilized.
func RunCleanup(opts PassOptions) error {
	if err := newEngine(opts).CleanUp(opts.DryRun); err != nil {
		return err
	}
	if opts.DryRun {
		Printer.Println("Dry run: no changes were made.")
	}
	return nil
}
