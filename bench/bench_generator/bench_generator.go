package main

import (
	"flag"
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bitly/timer_metrics"
	"github.com/sulidio/sulid"
)

var (
	runfor      = flag.Duration("runfor", 10*time.Second, "duration of time to run")
	idVersion   = flag.Int("id-version", 2, "id layout version (1 or 2)")
	statusEvery = flag.Int("status-every", 100000, "the # of generations between logging status")
)

var totalIDCount int64

func main() {
	flag.Parse()
	var wg sync.WaitGroup

	log.SetPrefix("[bench_generator] ")

	goChan := make(chan int)
	rdyChan := make(chan int)
	for j := 0; j < runtime.GOMAXPROCS(0); j++ {
		wg.Add(1)
		go func(id int) {
			genWorker(*runfor, *idVersion, id, rdyChan, goChan)
			wg.Done()
		}(j)
		<-rdyChan
	}

	start := time.Now()
	close(goChan)
	wg.Wait()
	duration := time.Since(start)
	tic := atomic.LoadInt64(&totalIDCount)
	log.Printf("duration: %s - %.03fops/s - %.03fns/op",
		duration,
		float64(tic)/duration.Seconds(),
		float64(duration/time.Nanosecond)/float64(tic))
}

func genWorker(td time.Duration, version int, workerID int, rdyChan chan int, goChan chan int) {
	var generator *sulid.Generator
	var err error
	switch version {
	case 1:
		generator, err = sulid.NewGenerator(uint8(workerID>>5), uint8(workerID&31))
	case 2:
		generator, err = sulid.NewGeneratorV2(uint16(workerID))
	default:
		log.Fatalf("ERROR: --id-version must be 1 or 2")
	}
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}

	metrics := timer_metrics.NewTimerMetrics(*statusEvery, "[gen]:")
	rdyChan <- 1
	<-goChan
	var idCount int64
	endTime := time.Now().Add(td)
	for {
		start := time.Now()
		generator.Generate()
		metrics.Status(start)
		idCount++
		if time.Now().After(endTime) {
			break
		}
	}
	log.Printf("%s", metrics.Stats())
	atomic.AddInt64(&totalIDCount, idCount)
}
