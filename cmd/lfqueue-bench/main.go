// Command lfqueue-bench drives the producers x consumers x items load
// shape from the queue's test matrix and renders a throughput chart.
// It is an external collaborator of the core — it imports the queue
// through its public surface only (New, Push, Pop, Close).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/avbrk/lfqueue"
)

func main() {
	var (
		capacity  = flag.Int("capacity", 1<<16, "queue capacity, including sentinel (must be a multiple of 64)")
		producers = flag.Int("producers", 2, "number of producer goroutines")
		consumers = flag.Int("consumers", 2, "number of consumer goroutines")
		perProd   = flag.Int("items", 1000, "items pushed per producer")
		repeats   = flag.Int("repeats", 100, "number of iterations to average over")
		out       = flag.String("out", "lfqueue-bench.html", "chart output path")
	)
	flag.Parse()

	if _, err := maxprocs.Set(maxprocs.Logger(log.Printf)); err != nil {
		log.Printf("lfqueue-bench: maxprocs.Set: %v (continuing with default GOMAXPROCS)", err)
	}

	durations := make([]time.Duration, 0, *repeats)
	for i := 0; i < *repeats; i++ {
		d, err := runOnce(*capacity, *producers, *consumers, *perProd)
		if err != nil {
			log.Fatalf("lfqueue-bench: iteration %d: %v", i, err)
		}
		durations = append(durations, d)
	}

	total := time.Duration(0)
	for _, d := range durations {
		total += d
	}
	mean := total / time.Duration(len(durations))
	fmt.Printf("producers=%d consumers=%d items/producer=%d repeats=%d mean=%s\n",
		*producers, *consumers, *perProd, *repeats, mean)

	if err := renderChart(*out, durations); err != nil {
		log.Fatalf("lfqueue-bench: render chart: %v", err)
	}
}

// runOnce pushes producers*perProd items and drains them with
// consumers goroutines, returning the wall-clock time for the whole
// run. It returns an error if the total popped doesn't match the total
// pushed once producers are done and consumers have drained.
func runOnce(capacity, producers, consumers, perProd int) (time.Duration, error) {
	q, err := lfqueue.New[int](capacity)
	if err != nil {
		return 0, err
	}
	defer q.Close()

	start := time.Now()

	var producerGroup errgroup.Group
	for p := 0; p < producers; p++ {
		base := p * perProd
		producerGroup.Go(func() error {
			for i := 0; i < perProd; i++ {
				for !q.Push(base + i) {
				}
			}
			return nil
		})
	}

	done := make(chan struct{})
	var consumerGroup errgroup.Group
	popped := make(chan int64, consumers)
	for c := 0; c < consumers; c++ {
		consumerGroup.Go(func() error {
			var n int64
			var v int
			for {
				if q.Pop(&v) {
					n++
					continue
				}
				select {
				case <-done:
					popped <- n
					return nil
				default:
				}
			}
		})
	}

	if err := producerGroup.Wait(); err != nil {
		return 0, err
	}
	close(done)
	if err := consumerGroup.Wait(); err != nil {
		return 0, err
	}

	elapsed := time.Since(start)

	var total int64
	for c := 0; c < consumers; c++ {
		total += <-popped
	}
	if want := int64(producers * perProd); total != want {
		return 0, fmt.Errorf("popped %d, want %d", total, want)
	}
	return elapsed, nil
}

func renderChart(path string, durations []time.Duration) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "lfqueue push/pop throughput",
			Subtitle: "wall-clock time per iteration",
		}),
	)

	xAxis := make([]string, len(durations))
	items := make([]opts.BarData, len(durations))
	for i, d := range durations {
		xAxis[i] = fmt.Sprintf("%d", i+1)
		items[i] = opts.BarData{Value: d.Microseconds()}
	}
	bar.SetXAxis(xAxis).AddSeries("microseconds", items)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bar.Render(f)
}
