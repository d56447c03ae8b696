// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/nicpin/internal/errors"
)

func TestMarshal(t *testing.T) {
	data, err := Marshal(Settings{Root: "/mnt/sysimage", KargsFile: "/tmp/kargs"})
	require.NoError(t, err)

	assert.Contains(t, string(data), "root: /mnt/sysimage")
	assert.Contains(t, string(data), "kargs_file: /tmp/kargs")
	assert.NotContains(t, string(data), "log_level")
}

func TestUnmarshal(t *testing.T) {
	s, err := Unmarshal([]byte("root: /\nlog_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, Settings{Root: "/", LogLevel: "debug"}, s)
}

func TestUnmarshalInvalid(t *testing.T) {
	_, err := Unmarshal([]byte("root: [unclosed"))
	require.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "/", s.Root)
	assert.Equal(t, "info", s.LogLevel)
}
