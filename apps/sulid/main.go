package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sulidio/sulid"
	"github.com/sulidio/sulid/internal/app"
	"github.com/sulidio/sulid/internal/version"
)

var (
	showVersion = flag.Bool("version", false, "print version string")

	count        = flag.Int("n", 1, "number of ids to generate")
	idVersion    = flag.Int("id-version", 2, "id layout version (1 or 2)")
	dataCenterID = flag.Uint("data-center-id", 0, "data center id for V1 ids (0-31)")
	machineID    = flag.Uint("machine-id", 0, "machine id for V1 ids (0-31)")
	workerID     = flag.Uint("worker-id", 0, "worker id for V2 ids (0-1023)")

	decodeIDs = app.StringArray{}
)

var errIDVersion = errors.New("id-version must be 1 or 2")

func init() {
	flag.Var(&decodeIDs, "decode", "id to decode instead of generating (may be given multiple times)")
}

func decode(raw string) error {
	id, err := sulid.Parse(raw)
	if err != nil {
		return err
	}
	random := id.Random()
	fmt.Printf("%s\n", id)
	fmt.Printf("  timestamp:      %d (%s)\n",
		id.Timestamp(), id.Time().UTC().Format(time.RFC3339Nano))
	fmt.Printf("  random:         %#x %#016x\n", random.Hi, random.Lo)
	fmt.Printf("  data center id: %d\n", id.DataCenterID())
	fmt.Printf("  machine id:     %d\n", id.MachineID())
	fmt.Printf("  worker id:      %d\n", id.WorkerID())
	return nil
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("sulid"))
		os.Exit(0)
	}

	if len(decodeIDs) > 0 {
		for _, raw := range decodeIDs {
			if err := decode(raw); err != nil {
				log.Fatalf("ERROR: failed to decode %q - %s", raw, err)
			}
		}
		return
	}

	generator, err := newGenerator(*idVersion, *dataCenterID, *machineID, *workerID)
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}

	for i := 0; i < *count; i++ {
		fmt.Println(generator.Generate())
	}
}

// newGenerator range-checks the flag values before narrowing them so an
// out-of-range id errors instead of silently wrapping.
func newGenerator(version int, dataCenterID uint, machineID uint, workerID uint) (*sulid.Generator, error) {
	switch version {
	case 1:
		if dataCenterID > uint(sulid.MaxDataCenterID) {
			return nil, sulid.ErrDataCenterIDRange
		}
		if machineID > uint(sulid.MaxMachineID) {
			return nil, sulid.ErrMachineIDRange
		}
		return sulid.NewGenerator(uint8(dataCenterID), uint8(machineID))
	case 2:
		if workerID > uint(sulid.MaxWorkerID) {
			return nil, sulid.ErrWorkerIDRange
		}
		return sulid.NewGeneratorV2(uint16(workerID))
	}
	return nil, errIDVersion
}
