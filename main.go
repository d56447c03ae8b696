// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// nicpin pins Ethernet interface names across an OS image transition and
// later reconciles the pins it created.
package main

import (
	"flag"
	"fmt"
	"os"

	"grimm.is/nicpin/cmd"
	"grimm.is/nicpin/internal/logging"
)

const version = "0.2.0"

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: nicpin <command> [flags]

Commands:
  persist    Pin current Ethernet interface names to their hardware addresses
  cleanup    Remove pins the OS naming scheme would reproduce unaided
  version    Print the version

Flags:
  -root string        filesystem root to reconcile (default "/")
  -kargs-file string  file receiving the pass's ifname= kernel arguments
  -dry-run            log intended actions without touching the filesystem
  -verbose            enable debug logging
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var run func(cmd.PassOptions) error
	switch os.Args[1] {
	case "persist":
		run = cmd.RunPersist
	case "cleanup":
		run = cmd.RunCleanup
	case "version":
		fmt.Println(version)
		return
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	root := fs.String("root", "/", "filesystem root to reconcile")
	kargsFile := fs.String("kargs-file", "", "file receiving the pass's ifname= kernel arguments")
	dryRun := fs.Bool("dry-run", false, "log intended actions without touching the filesystem")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	fs.Parse(os.Args[2:])

	if *verbose {
		logging.SetDefault(logging.New(logging.Config{
			Output: os.Stderr,
			Level:  logging.LevelDebug,
		}))
	}

	if err := run(cmd.PassOptions{Root: *root, KargsFile: *kargsFile, DryRun: *dryRun}); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
