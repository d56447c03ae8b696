// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package persist

import (
	"os"
	"sort"
	"strings"

	"grimm.is/nicpin/internal/errors"
	"grimm.is/nicpin/internal/inventory"
	"grimm.is/nicpin/internal/kernel"
	"grimm.is/nicpin/internal/logging"
)

// Options configure a reconciliation engine.
type Options struct {
	// Root is the filesystem tree being reconciled; "/" means the live
	// system, anything else an offline/alternate image.
	Root string

	// KargsFile, when non-empty, receives the space-joined ifname= tokens a
	// pass produces. Each pass fully overwrites the file; content does not
	// accumulate across Save and CleanUp.
	KargsFile string
}

// Engine drives the Save and CleanUp passes. Passes are single-threaded and
// synchronous; the completion stamp is the only cross-invocation safeguard
// and is not a lock, so concurrent invocations must be serialized by the
// caller.
type Engine struct {
	inv     inventory.Inventory
	cmdline kernel.CmdlineReader
	store   *Store
	oracle  *Oracle
	opts    Options
	logger  *logging.Logger
}

// NewEngine wires an engine against the live system.
func NewEngine(opts Options) *Engine {
	return NewEngineWithDeps(inventory.Netlink{}, kernel.RealCmdline{}, ExecRunner{}, opts)
}

// NewEngineWithDeps builds an engine with injected collaborators.
func NewEngineWithDeps(inv inventory.Inventory, cmdline kernel.CmdlineReader, runner CommandRunner, opts Options) *Engine {
	return &Engine{
		inv:     inv,
		cmdline: cmdline,
		store:   NewStore(opts.Root),
		oracle:  NewOracle(runner),
		opts:    opts,
		logger:  logging.WithComponent("persist"),
	}
}

func formatIfnameKarg(iface, mac string) string {
	return "ifname=" + iface + ":" + mac
}

// Save pins every Ethernet interface with a resolvable hardware address to
// its current name. The pass is terminal on return and runs at most once per
// environment: an existing completion stamp short-circuits it, as does
// administratively disabled predictable naming. With dryRun set the pass
// only reads, logging the actions a real pass would take.
func (e *Engine) Save(dryRun bool) error {
	if kernel.PredictableNamingDisabled(e.cmdline) {
		e.logger.Info("Predictable interface naming is disabled by net.ifnames=0, nothing to persist")
		return nil
	}
	if e.store.StampExists() {
		e.logger.Info("Stamp exists, nothing to do", "path", e.store.StampPath())
		return nil
	}

	ifaces, err := e.inv.Interfaces()
	if err != nil {
		return err
	}

	var kargs []string
	changed := false
	pinnedBy := make(map[string]string)
	for _, iface := range ifaces {
		if iface.Type != inventory.TypeEthernet {
			continue
		}
		mac, ok := iface.PinMAC()
		if !ok {
			e.logger.Info("Interface has no hardware address, skipping", "interface", iface.Name)
			continue
		}
		if first, dup := pinnedBy[mac]; dup {
			e.logger.Warn("Duplicate hardware address, earlier interface wins the pin",
				"mac", mac, "first", first, "interface", iface.Name)
		} else {
			pinnedBy[mac] = iface.Name
		}
		karg := formatIfnameKarg(iface.Name, mac)
		e.logger.Info("Will persist interface name via link file and kernel argument",
			"interface", iface.Name, "mac", mac, "karg", karg)
		if dryRun {
			continue
		}
		wrote, err := e.store.Write(iface.Name, mac)
		if err != nil {
			return err
		}
		changed = changed || wrote
		kargs = append(kargs, karg)
	}

	if !changed {
		e.logger.Info("No changes")
	}

	if dryRun {
		return nil
	}
	if err := e.store.WriteStamp(); err != nil {
		return err
	}
	if len(kargs) > 0 {
		return e.writeKargs(kargs)
	}
	return nil
}

// CleanUp removes every pin the naming scheme would reproduce unaided. It is
// a no-op without a completion stamp. Oracle failures skip the affected
// interface and the loop continues; I/O failures abort the pass. With dryRun
// set nothing on disk changes.
func (e *Engine) CleanUp(dryRun bool) error {
	if !e.store.DirExists() {
		// Not a short-circuit: the stamp check below gates correctness.
		e.logger.Info("Link directory does not exist", "dir", e.store.Dir())
	}
	if !e.store.StampExists() {
		e.logger.Info("No stamp, no prior persisted state, nothing to clean up", "path", e.store.StampPath())
		return nil
	}

	pinned, err := e.store.ListPinned()
	if err != nil {
		return err
	}
	if len(pinned) == 0 {
		e.logger.Info("No pinned interfaces found")
		if dryRun {
			return nil
		}
		return e.store.RemoveStamp()
	}

	ifaces, err := e.inv.Interfaces()
	if err != nil {
		return err
	}
	macs := make(map[string]string)
	for _, iface := range ifaces {
		if iface.Type != inventory.TypeEthernet {
			continue
		}
		if mac, ok := iface.PinMAC(); ok {
			macs[iface.Name] = mac
		}
	}

	names := make([]string, 0, len(pinned))
	for name := range pinned {
		names = append(names, name)
	}
	sort.Strings(names)

	var kargs []string
	for _, name := range names {
		path := pinned[name]
		if !e.store.IsGenerated(path) {
			e.logger.Info("Link file was not generated by us, ignoring", "path", path)
			continue
		}
		preferred, err := e.oracle.PreferredName(e.opts.Root, name)
		if err != nil {
			e.logger.WithError(err).Error("Failed to resolve preferred interface name", "interface", name)
			continue
		}
		if preferred != name {
			e.logger.Info("Preferred name differs from pinned name, keeping link file",
				"pinned", name, "preferred", preferred, "path", path)
			continue
		}
		e.logger.Info("Interface name is unchanged, pin is unnecessary", "interface", name)
		mac, ok := macs[name]
		if !ok {
			e.logger.Error("Interface has no hardware address, keeping link file", "interface", name)
			continue
		}
		karg := formatIfnameKarg(name, mac)
		e.logger.Info("Will remove link file and kernel argument", "path", path, "karg", karg)
		if dryRun {
			continue
		}
		if err := e.store.Remove(path); err != nil {
			return err
		}
		kargs = append(kargs, karg)
	}

	if dryRun {
		return nil
	}
	if err := e.store.RemoveStamp(); err != nil {
		return err
	}
	if len(kargs) > 0 {
		// Overwrites whatever Save wrote; callers expecting accumulation
		// across passes must merge externally.
		return e.writeKargs(kargs)
	}
	return nil
}

func (e *Engine) writeKargs(kargs []string) error {
	if e.opts.KargsFile == "" {
		return nil
	}
	line := strings.Join(kargs, " ")
	if err := os.WriteFile(e.opts.KargsFile, []byte(line), 0o644); err != nil {
		return errors.Wrapf(err, errors.KindIO, "writing kernel argument file %s", e.opts.KargsFile)
	}
	e.logger.Info("Kernel argument file written", "path", e.opts.KargsFile, "kargs", line)
	return nil
}
