// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package cmd wires the persist and cleanup passes to the command line.
package cmd

import (
	"grimm.is/nicpin/internal/persist"
)

// PassOptions carry the flags shared by the persist and cleanup commands.
type PassOptions struct {
	// Root of the filesystem tree to reconcile; "/" for the live system.
	Root string
	// KargsFile optionally receives the ifname= kernel arguments of a pass.
	KargsFile string
	// DryRun logs intended actions without touching the filesystem.
	DryRun bool
}

func newEngine(opts PassOptions) *persist.Engine {
	return persist.NewEngine(persist.Options{
		Root:      opts.Root,
		KargsFile: opts.KargsFile,
	})
}

// RunPersist pins the current Ethernet interface names to their hardware
// addresses. Run before the environment transition, ahead of boot-time
// naming resolution.
func RunPersist(opts PassOptions) error {
	if err := newEngine(opts).Save(opts.DryRun); err != nil {
		return err
	}
	if opts.DryRun {
		Printer.Println("Dry run: no changes were made.")
	}
	return nil
}
