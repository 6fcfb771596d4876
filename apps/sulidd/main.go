package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"syscall"

	"github.com/BurntSushi/toml"
	"github.com/judwhite/go-svc/svc"
	"github.com/mreiferson/go-options"
	"github.com/sulidio/sulid/internal/version"
	"github.com/sulidio/sulid/sulidd"
)

var (
	flagSet = flag.NewFlagSet("sulidd", flag.ExitOnError)

	config      = flagSet.String("config", "", "path to config file")
	showVersion = flagSet.Bool("version", false, "print version string")
	verbose     = flagSet.Bool("verbose", false, "deprecated in favor of log-level")
	logLevel    = flagSet.String("log-level", "info", "set log verbosity: debug, info, warn, error, or fatal")
	logPrefix   = flagSet.String("log-prefix", "[sulidd] ", "log message prefix")

	httpAddress = flagSet.String("http-address", "0.0.0.0:4190", "<addr>:<port> to listen on for HTTP clients")

	idVersion    = flagSet.Int64("id-version", 2, "id layout version (1 or 2)")
	dataCenterID = flagSet.Int64("data-center-id", -1, "data center id for V1 ids (0-31, default derived from hostname)")
	machineID    = flagSet.Int64("machine-id", -1, "machine id for V1 ids (0-31, default derived from hostname)")
	workerID     = flagSet.Int64("worker-id", -1, "worker id for V2 ids (0-1023, default derived from hostname)")

	maxBatchSize = flagSet.Int64("max-batch-size", 1000, "maximum number of ids returned per request")
)

type program struct {
	sulidd *sulidd.SULIDd
}

func main() {
	prg := &program{}
	if err := svc.Run(prg, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGINT); err != nil {
		log.Fatal(err)
	}
}

func (p *program) Init(env svc.Environment) error {
	if env.IsWindowsService() {
		dir := filepath.Dir(os.Args[0])
		return os.Chdir(dir)
	}
	return nil
}

func (p *program) Start() error {
	flagSet.Parse(os.Args[1:])

	if *showVersion {
		fmt.Println(version.String("sulidd"))
		os.Exit(0)
	}

	var cfg map[string]interface{}
	if *config != "" {
		_, err := toml.DecodeFile(*config, &cfg)
		if err != nil {
			log.Fatalf("ERROR: failed to load config file %s - %s", *config, err)
		}
	}

	opts := sulidd.NewOptions()
	options.Resolve(opts, flagSet, cfg)

	daemon, err := sulidd.New(opts)
	if err != nil {
		log.Fatalf("ERROR: failed to instantiate sulidd - %s", err)
	}
	p.sulidd = daemon

	go func() {
		err := p.sulidd.Main()
		if err != nil {
			p.Stop()
			os.Exit(1)
		}
	}()

	return nil
}

func (p *program) Stop() error {
	if p.sulidd != nil {
		p.sulidd.Exit()
	}
	return nil
}
