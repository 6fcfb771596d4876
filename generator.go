package sulid

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	"math/rand"
	"sync"
	"time"
)

var ErrDataCenterIDRange = errors.New("data center id must be in the range 0-31")
var ErrMachineIDRange = errors.New("machine id must be in the range 0-31")
var ErrWorkerIDRange = errors.New("worker id must be in the range 0-1023")

// Version selects the identity layout a Generator packs into the low 10
// bits. It is fixed at generator construction.
type Version int

const (
	// V1 splits the identity suffix into a 5-bit data center id and a
	// 5-bit machine id.
	V1 Version = 1
	// V2 carries a single 10-bit worker id.
	V2 Version = 2
)

func (v Version) String() string {
	switch v {
	case V1:
		return "V1"
	case V2:
		return "V2"
	}
	panic("invalid Version")
}

// Generator produces SULIDs for one fixed worker identity. The entropy
// reader is the only mutable state; concurrent Generate calls serialize
// on it briefly, and nothing else is shared.
//
// A Generator does not track previously issued values: uniqueness within
// a millisecond is probabilistic (70 random bits), and no monotonicity is
// guaranteed when the clock ties or steps backward. Callers that need a
// strictly increasing sequence can hold their own last value and use
// SULID.Increment.
type Generator struct {
	version      Version
	dataCenterID uint8
	machineID    uint8
	workerID     uint16

	mtx     sync.Mutex
	entropy io.Reader
}

// NewGenerator creates a V1 Generator with its own entropy source.
func NewGenerator(dataCenterID uint8, machineID uint8) (*Generator, error) {
	return NewGeneratorWithEntropy(newEntropy(), dataCenterID, machineID)
}

// NewGeneratorWithEntropy creates a V1 Generator drawing random bits from
// entropy. Reads are serialized by the generator's mutex, so the reader
// itself need not be safe for concurrent use.
func NewGeneratorWithEntropy(entropy io.Reader, dataCenterID uint8, machineID uint8) (*Generator, error) {
	if dataCenterID > MaxDataCenterID {
		return nil, ErrDataCenterIDRange
	}
	if machineID > MaxMachineID {
		return nil, ErrMachineIDRange
	}
	return &Generator{
		version:      V1,
		dataCenterID: dataCenterID,
		machineID:    machineID,
		entropy:      entropy,
	}, nil
}

// NewGeneratorV2 creates a V2 Generator with its own entropy source.
func NewGeneratorV2(workerID uint16) (*Generator, error) {
	return NewGeneratorV2WithEntropy(newEntropy(), workerID)
}

// NewGeneratorV2WithEntropy creates a V2 Generator drawing random bits
// from entropy.
func NewGeneratorV2WithEntropy(entropy io.Reader, workerID uint16) (*Generator, error) {
	if workerID > MaxWorkerID {
		return nil, ErrWorkerIDRange
	}
	return &Generator{
		version:  V2,
		workerID: workerID,
		entropy:  entropy,
	}, nil
}

// Generate returns a new SULID for the current wall clock time.
func (g *Generator) Generate() SULID {
	return g.GenerateFromTime(time.Now())
}

// GenerateFromTime returns a new SULID for a caller-supplied time, useful
// for deterministic tests and for backdating identifiers when migrating
// legacy data. Times at or before the Unix epoch clamp to timestamp zero.
func (g *Generator) GenerateFromTime(t time.Time) SULID {
	g.mtx.Lock()
	random := readRandom(g.entropy)
	g.mtx.Unlock()

	if g.version == V2 {
		return FromPartsV2(timestamp(t), random, g.workerID)
	}
	return FromParts(timestamp(t), random, g.dataCenterID, g.machineID)
}

// Version returns the layout this Generator packs.
func (g *Generator) Version() Version { return g.version }

// DataCenterID returns the V1 data center id given at construction.
func (g *Generator) DataCenterID() uint8 { return g.dataCenterID }

// MachineID returns the V1 machine id given at construction.
func (g *Generator) MachineID() uint8 { return g.machineID }

// WorkerID returns the V2 worker id given at construction.
func (g *Generator) WorkerID() uint16 { return g.workerID }

// New returns a SULID for the current time using the shared process-wide
// entropy source. Identity fields are masked, not validated; use a
// Generator when construction should fail on bad identity.
func New(dataCenterID uint8, machineID uint8) SULID {
	return FromTime(time.Now(), dataCenterID, machineID)
}

// NewV2 is New for the V2 layout.
func NewV2(workerID uint16) SULID {
	return FromTimeV2(time.Now(), workerID)
}

// FromTime returns a V1 SULID for the given time using the shared
// process-wide entropy source.
func FromTime(t time.Time, dataCenterID uint8, machineID uint8) SULID {
	return FromTimeWithEntropy(t, defaultEntropy(), dataCenterID, machineID)
}

// FromTimeV2 is FromTime for the V2 layout.
func FromTimeV2(t time.Time, workerID uint16) SULID {
	return FromTimeWithEntropyV2(t, defaultEntropy(), workerID)
}

// FromTimeWithEntropy returns a V1 SULID for the given time, drawing
// random bits from entropy. A failed read panics: entropy exhaustion is
// not an expected condition and there is no retry.
func FromTimeWithEntropy(t time.Time, entropy io.Reader, dataCenterID uint8, machineID uint8) SULID {
	return FromParts(timestamp(t), readRandom(entropy), dataCenterID, machineID)
}

// FromTimeWithEntropyV2 is FromTimeWithEntropy for the V2 layout.
func FromTimeWithEntropyV2(t time.Time, entropy io.Reader, workerID uint16) SULID {
	return FromPartsV2(timestamp(t), readRandom(entropy), workerID)
}

// timestamp converts t to SULID milliseconds, clamping pre-epoch times to
// zero. Truncation to 48 bits happens at packing.
func timestamp(t time.Time) uint64 {
	ms := t.UnixNano() / int64(time.Millisecond)
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}

// readRandom draws 70 random bits from r.
func readRandom(r io.Reader) Uint128 {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		panic("sulid: entropy source failed: " + err.Error())
	}
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[0:8]) & maxRandomHi,
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// newEntropy returns a fresh pseudo-random source seeded from the
// operating system. Each Generator owns one, guarded by its mutex.
func newEntropy() io.Reader {
	return rand.New(rand.NewSource(cryptoSeed()))
}

func cryptoSeed() int64 {
	var b [8]byte
	if _, err := io.ReadFull(cryptorand.Reader, b[:]); err != nil {
		panic("sulid: cannot seed entropy: " + err.Error())
	}
	return int64(binary.BigEndian.Uint64(b[:]))
}

type lockedReader struct {
	mtx sync.Mutex
	r   io.Reader
}

func (lr *lockedReader) Read(p []byte) (int, error) {
	lr.mtx.Lock()
	n, err := lr.r.Read(p)
	lr.mtx.Unlock()
	return n, err
}

var (
	defaultEntropyOnce sync.Once
	defaultEntropyRdr  io.Reader
)

// defaultEntropy is the process-wide source behind New and FromTime,
// shared across goroutines via a lock.
func defaultEntropy() io.Reader {
	defaultEntropyOnce.Do(func() {
		defaultEntropyRdr = &lockedReader{r: rand.New(rand.NewSource(cryptoSeed()))}
	})
	return defaultEntropyRdr
}
