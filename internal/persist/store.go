// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package persist pins Ethernet interface names across an environment
// transition. The Save pass records a MAC-to-name binding per interface as a
// systemd .link override plus an ifname= kernel argument; the CleanUp pass
// later removes every pin the naming scheme would reproduce unaided.
package persist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"grimm.is/nicpin/internal/errors"
	"grimm.is/nicpin/internal/logging"
)

const (
	// generatedMarker opens every link file this tool writes. It is the sole
	// authority for "eligible for automatic deletion": a file not starting
	// with it is treated as operator-authored and never touched.
	generatedMarker = "# Generated by nmstate"

	// linkFilePrefix orders our overrides in systemd's lexical rule
	// application: after vendor and admin rules, before 99-default.link.
	linkFilePrefix = "98-nmstate"

	linkFileSuffix = ".link"

	networkDir = "etc/systemd/network"

	// stampFile marks that the Save pass has run for this environment. Its
	// absence makes CleanUp a no-op.
	stampFile = ".nmstate-persist.stamp"
)

// Store owns the link-file directory under a configurable filesystem root.
type Store struct {
	root   string
	logger *logging.Logger
}

// NewStore returns a store rooted at root ("/" for the live system).
func NewStore(root string) *Store {
	return &Store{
		root:   root,
		logger: logging.WithComponent("link-store"),
	}
}

// Dir returns the link-file directory.
func (s *Store) Dir() string {
	return filepath.Join(s.root, networkDir)
}

// DirExists reports whether the link-file directory is present.
func (s *Store) DirExists() bool {
	info, err := os.Stat(s.Dir())
	return err == nil && info.IsDir()
}

// LinkPath returns the deterministic path of the artifact pinning iface.
func (s *Store) LinkPath(iface string) string {
	return filepath.Join(s.Dir(), linkFilePrefix+"-"+iface+linkFileSuffix)
}

// Write creates the link file pinning iface to mac and reports whether a
// file was created. An existing file at the target path is never
// overwritten, which makes per-interface writes idempotent.
func (s *Store) Write(iface, mac string) (bool, error) {
	path := s.LinkPath(iface)
	if _, err := os.Stat(path); err == nil {
		s.logger.Info("Link file already exists", "path", path)
		return false, nil
	}
	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		return false, errors.Wrapf(err, errors.KindIO, "creating directory %s", s.Dir())
	}
	body := fmt.Sprintf("%s\n[Match]\nMACAddress=%s\n\n[Link]\nName=%s\n",
		generatedMarker, mac, iface)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return false, errors.Wrapf(err, errors.KindIO, "writing link file %s", path)
	}
	s.logger.Info("Link file created", "path", path)
	return true, nil
}

// IsGenerated reports whether the file at path starts with the generated
// marker. Any read failure counts as "not ours": a file that cannot be
// positively attributed is never a deletion candidate.
func (s *Store) IsGenerated(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, len(generatedMarker))
	if _, err := io.ReadFull(f, buf); err != nil {
		return false
	}
	return string(buf) == generatedMarker
}

// ListPinned scans the link directory and maps each pinned interface name to
// its link file path, recovering the name from the filename.
func (s *Store) ListPinned() (map[string]string, error) {
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindIO, "reading directory %s", s.Dir())
	}
	pinned := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := pinnedName(entry.Name())
		if !ok {
			continue
		}
		s.logger.Info("Found pinned interface", "interface", name, "file", entry.Name())
		pinned[name] = filepath.Join(s.Dir(), entry.Name())
	}
	return pinned, nil
}

// pinnedName recovers the interface name from a link filename, or reports
// that the file does not follow the pin naming scheme.
func pinnedName(filename string) (string, bool) {
	rest, ok := strings.CutPrefix(filename, linkFilePrefix+"-")
	if !ok {
		return "", false
	}
	name, ok := strings.CutSuffix(rest, linkFileSuffix)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Remove deletes the artifact at path.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Wrapf(err, errors.KindIO, "removing link file %s", path)
	}
	s.logger.Info("Link file removed", "path", path)
	return nil
}

// StampPath returns the completion-stamp path.
func (s *Store) StampPath() string {
	return filepath.Join(s.Dir(), stampFile)
}

// StampExists reports whether the Save pass already ran for this environment.
func (s *Store) StampExists() bool {
	_, err := os.Stat(s.StampPath())
	return err == nil
}

// WriteStamp records pass completion as a zero-byte marker.
func (s *Store) WriteStamp() error {
	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		return errors.Wrapf(err, errors.KindIO, "creating directory %s", s.Dir())
	}
	if err := os.WriteFile(s.StampPath(), nil, 0o644); err != nil {
		return errors.Wrapf(err, errors.KindIO, "writing stamp %s", s.StampPath())
	}
	return nil
}

// RemoveStamp deletes the completion marker, ending the Save/CleanUp pair.
func (s *Store) RemoveStamp() error {
	if err := os.Remove(s.StampPath()); err != nil {
		return errors.Wrapf(err, errors.KindIO, "removing stamp %s", s.StampPath())
	}
	return nil
}
