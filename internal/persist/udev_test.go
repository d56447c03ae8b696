// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package persist

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"grimm.is/nicpin/internal/errors"
)

// MockRunner substitutes canned resolver output for a real udevadm.
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(name string, args ...string) ([]byte, error) {
	called := m.Called(name, args)
	var out []byte
	if v := called.Get(0); v != nil {
		out = v.([]byte)
	}
	return out, called.Error(1)
}

func TestPreferredNameKeyPriority(t *testing.T) {
	cases := []struct {
		name   string
		output string
		want   string
	}{
		{
			name:   "onboard wins over slot and path",
			output: "ID_NET_NAME_PATH=enp0s3\nID_NET_NAME_SLOT=ens3\nID_NET_NAME_ONBOARD=eno1\n",
			want:   "eno1",
		},
		{
			name:   "slot wins over path",
			output: "ID_NET_NAME_PATH=enp0s3\nID_NET_NAME_SLOT=ens3\n",
			want:   "ens3",
		},
		{
			name:   "path alone",
			output: "ID_NET_NAME_MAC=enxaabbccddee01\nID_NET_NAME_PATH=enp0s3\n",
			want:   "enp0s3",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner := new(MockRunner)
			runner.On("Run", "udevadm", []string{"test-builtin", "net_id", "/sys/class/net/eth0"}).
				Return([]byte(tc.output), nil).Once()

			name, err := NewOracle(runner).PreferredName("/", "eth0")
			assert.NoError(t, err)
			assert.Equal(t, tc.want, name)
			runner.AssertExpectations(t)
		})
	}
}

func TestPreferredNameOfflineRootUsesChroot(t *testing.T) {
	runner := new(MockRunner)
	runner.On("Run", "chroot", []string{"/mnt/sysimage", "udevadm", "test-builtin", "net_id", "/sys/class/net/eth0"}).
		Return([]byte("ID_NET_NAME_PATH=enp0s3\n"), nil).Once()

	name, err := NewOracle(runner).PreferredName("/mnt/sysimage", "eth0")
	assert.NoError(t, err)
	assert.Equal(t, "enp0s3", name)
	runner.AssertExpectations(t)
}

func TestPreferredNameToolFailure(t *testing.T) {
	runner := new(MockRunner)
	runner.On("Run", "udevadm", mock.Anything).
		Return(nil, goerrors.New("exit status 4")).Once()

	_, err := NewOracle(runner).PreferredName("/", "eth0")
	assert.Error(t, err)
	assert.Equal(t, errors.KindToolInvocation, errors.GetKind(err))
}

func TestPreferredNameNoRecognizedKey(t *testing.T) {
	runner := new(MockRunner)
	runner.On("Run", "udevadm", mock.Anything).
		Return([]byte("ID_NET_DRIVER=e1000e\nsome diagnostic line\n"), nil).Once()

	_, err := NewOracle(runner).PreferredName("/", "eth0")
	assert.Error(t, err)
	assert.Equal(t, errors.KindParse, errors.GetKind(err))
}

func TestPreferredNameFirstOccurrenceOfKeyWins(t *testing.T) {
	runner := new(MockRunner)
	runner.On("Run", "udevadm", mock.Anything).
		Return([]byte("ID_NET_NAME_SLOT=ens3\nID_NET_NAME_SLOT=ens9\n"), nil).Once()

	name, err := NewOracle(runner).PreferredName("/", "eth0")
	assert.NoError(t, err)
	assert.Equal(t, "ens3", name)
}
