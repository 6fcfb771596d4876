package sulidd

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"sync"

	"github.com/sulidio/sulid"
	"github.com/sulidio/sulid/internal/http_api"
	"github.com/sulidio/sulid/internal/lg"
	"github.com/sulidio/sulid/internal/util"
	"github.com/sulidio/sulid/internal/version"
)

var ErrIDVersion = errors.New("id-version must be 1 or 2")

// SULIDd is the id-serving daemon: one generator with a fixed worker
// identity behind a small HTTP API. It coordinates with nothing and
// persists nothing; restarting it is always safe.
type SULIDd struct {
	opts *Options

	generator *sulid.Generator

	httpListener net.Listener
	waitGroup    util.WaitGroupWrapper
}

func New(opts *Options) (*SULIDd, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, opts.LogPrefix, log.Ldate|log.Ltime|log.Lmicroseconds)
	}

	var err error
	opts.logLevel, err = lg.ParseLogLevel(opts.LogLevel, opts.Verbose)
	if err != nil {
		return nil, err
	}

	generator, err := newGenerator(opts)
	if err != nil {
		return nil, err
	}

	s := &SULIDd{
		opts:      opts,
		generator: generator,
	}

	s.httpListener, err = net.Listen("tcp", opts.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("listen (%s) failed - %s", opts.HTTPAddress, err)
	}

	s.logf(lg.INFO, version.String("sulidd"))
	switch generator.Version() {
	case sulid.V1:
		s.logf(lg.INFO, "identity: V1 data_center_id=%d machine_id=%d",
			generator.DataCenterID(), generator.MachineID())
	case sulid.V2:
		s.logf(lg.INFO, "identity: V2 worker_id=%d", generator.WorkerID())
	}

	return s, nil
}

func newGenerator(opts *Options) (*sulid.Generator, error) {
	switch sulid.Version(opts.IDVersion) {
	case sulid.V1:
		if opts.DataCenterID < 0 || opts.DataCenterID > int64(sulid.MaxDataCenterID) {
			return nil, sulid.ErrDataCenterIDRange
		}
		if opts.MachineID < 0 || opts.MachineID > int64(sulid.MaxMachineID) {
			return nil, sulid.ErrMachineIDRange
		}
		return sulid.NewGenerator(uint8(opts.DataCenterID), uint8(opts.MachineID))
	case sulid.V2:
		if opts.WorkerID < 0 || opts.WorkerID > int64(sulid.MaxWorkerID) {
			return nil, sulid.ErrWorkerIDRange
		}
		return sulid.NewGeneratorV2(uint16(opts.WorkerID))
	}
	return nil, ErrIDVersion
}

// Main starts the HTTP server and blocks until Exit is called or the
// server fails.
func (s *SULIDd) Main() error {
	exitCh := make(chan error)
	var once sync.Once
	exitFunc := func(err error) {
		once.Do(func() {
			if err != nil {
				s.logf(lg.FATAL, "%s", err)
			}
			exitCh <- err
		})
	}

	httpServer := newHTTPServer(s)
	s.waitGroup.Wrap(func() {
		exitFunc(http_api.Serve(s.httpListener, httpServer, "HTTP", s.logf))
	})

	return <-exitCh
}

// Exit closes the HTTP listener and waits for in-flight requests.
func (s *SULIDd) Exit() {
	if s.httpListener != nil {
		s.httpListener.Close()
	}
	s.waitGroup.Wait()
	s.logf(lg.INFO, "SULIDd: exited")
}

// RealHTTPAddr returns the bound address, useful when the configured
// port is 0.
func (s *SULIDd) RealHTTPAddr() *net.TCPAddr {
	return s.httpListener.Addr().(*net.TCPAddr)
}
