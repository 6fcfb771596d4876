package sulidd

import (
	"testing"

	"github.com/sulidio/sulid"
	"github.com/sulidio/sulid/internal/test"
)

func TestNewBadDataCenterID(t *testing.T) {
	opts := NewOptions()
	opts.Logger = test.NewTestLogger(t)
	opts.HTTPAddress = "127.0.0.1:0"
	opts.IDVersion = 1
	opts.DataCenterID = 32

	_, err := New(opts)
	test.Equal(t, sulid.ErrDataCenterIDRange, err)
}

func TestNewBadMachineID(t *testing.T) {
	opts := NewOptions()
	opts.Logger = test.NewTestLogger(t)
	opts.HTTPAddress = "127.0.0.1:0"
	opts.IDVersion = 1
	opts.MachineID = -1

	_, err := New(opts)
	test.Equal(t, sulid.ErrMachineIDRange, err)
}

func TestNewBadWorkerID(t *testing.T) {
	opts := NewOptions()
	opts.Logger = test.NewTestLogger(t)
	opts.HTTPAddress = "127.0.0.1:0"
	opts.IDVersion = 2
	opts.WorkerID = 1024

	_, err := New(opts)
	test.Equal(t, sulid.ErrWorkerIDRange, err)
}

func TestNewBadIDVersion(t *testing.T) {
	opts := NewOptions()
	opts.Logger = test.NewTestLogger(t)
	opts.HTTPAddress = "127.0.0.1:0"
	opts.IDVersion = 3

	_, err := New(opts)
	test.Equal(t, ErrIDVersion, err)
}
