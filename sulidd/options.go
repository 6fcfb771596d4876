package sulidd

import (
	"crypto/md5"
	"hash/crc32"
	"io"
	"log"
	"os"

	"github.com/sulidio/sulid/internal/lg"
)

type Options struct {
	LogLevel  string `flag:"log-level"`
	LogPrefix string `flag:"log-prefix"`
	Verbose   bool   `flag:"verbose"` // for backwards compatibility
	Logger    Logger
	logLevel  lg.LogLevel // private, not really an option

	HTTPAddress string `flag:"http-address"`

	// identity layout: 1 packs data-center-id + machine-id, 2 packs worker-id
	IDVersion    int64 `flag:"id-version" cfg:"id_version"`
	DataCenterID int64 `flag:"data-center-id" cfg:"data_center_id"`
	MachineID    int64 `flag:"machine-id" cfg:"machine_id"`
	WorkerID     int64 `flag:"worker-id" cfg:"worker_id"`

	MaxBatchSize int64 `flag:"max-batch-size"`
}

func NewOptions() *Options {
	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal(err)
	}

	h := md5.New()
	io.WriteString(h, hostname)
	defaultWorkerID := int64(crc32.ChecksumIEEE(h.Sum(nil)) % 1024)

	return &Options{
		LogPrefix: "[sulidd] ",
		LogLevel:  "info",

		HTTPAddress: "0.0.0.0:4190",

		IDVersion:    2,
		DataCenterID: defaultWorkerID >> 5,
		MachineID:    defaultWorkerID & 31,
		WorkerID:     defaultWorkerID,

		MaxBatchSize: 1000,
	}
}
