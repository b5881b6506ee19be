// Command ordbench measures insert, rank-access and find latencies of
// ordered bags across scales. Results go to a CSV file and a latency plot.
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/npillmayer/ordbag"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

type benchResult struct {
	Operation string
	Scale     int
	LatencyNs int64
	MemMB     uint64
	Objects   uint64
}

type memoryStats struct {
	AllocMB     uint64
	HeapObjects uint64
}

// getDetailedMem forces a GC so we measure live data, not garbage.
func getDetailedMem() memoryStats {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return memoryStats{
		AllocMB:     m.Alloc / 1024 / 1024,
		HeapObjects: m.HeapObjects,
	}
}

func record(w *csv.Writer, res benchResult) {
	w.Write([]string{
		res.Operation,
		strconv.Itoa(res.Scale),
		strconv.FormatInt(res.LatencyNs, 10),
		strconv.FormatUint(res.MemMB, 10),
		strconv.FormatUint(res.Objects, 10),
	})
}

func main() {
	f, err := os.Create("ordbench_results.csv")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write([]string{"Operation", "Scale", "LatencyNs", "MemMB", "HeapObjects"})

	scales := []int{10_000, 100_000, 1_000_000}
	rng := rand.New(rand.NewSource(0x5eed))

	var insertXYs, atXYs, findXYs plotter.XYs
	for _, scale := range scales {
		fmt.Printf("Benchmarking scale %d\n", scale)
		insertNs, atNs, findNs := runSuite(w, scale, rng)
		insertXYs = append(insertXYs, plotter.XY{X: float64(scale), Y: insertNs})
		atXYs = append(atXYs, plotter.XY{X: float64(scale), Y: atNs})
		findXYs = append(findXYs, plotter.XY{X: float64(scale), Y: findNs})
	}
	w.Flush()

	if err := renderPlot(insertXYs, atXYs, findXYs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Benchmark complete. Results in ordbench_results.csv, plot in ordbench.png.")
}

// runSuite benchmarks one scale and returns per-operation ns/op averages.
func runSuite(w *csv.Writer, scale int, rng *rand.Rand) (insertNs, atNs, findNs float64) {
	values := rng.Perm(scale)

	bag := ordbag.New[int]()
	start := time.Now()
	for _, v := range values {
		bag.Insert(v)
	}
	insertNs = float64(time.Since(start).Nanoseconds()) / float64(scale)
	mem := getDetailedMem()
	record(w, benchResult{"Insert", scale, int64(insertNs), mem.AllocMB, mem.HeapObjects})

	start = time.Now()
	for range scale {
		bag.At(rng.Intn(scale))
	}
	atNs = float64(time.Since(start).Nanoseconds()) / float64(scale)
	record(w, benchResult{"At", scale, int64(atNs), mem.AllocMB, mem.HeapObjects})

	start = time.Now()
	for range scale {
		bag.Find(rng.Intn(scale))
	}
	findNs = float64(time.Since(start).Nanoseconds()) / float64(scale)
	record(w, benchResult{"Find", scale, int64(findNs), mem.AllocMB, mem.HeapObjects})
	return insertNs, atNs, findNs
}

func renderPlot(insertXYs, atXYs, findXYs plotter.XYs) error {
	p := plot.New()
	p.Title.Text = "ordbag latency"
	p.X.Label.Text = "values"
	p.X.Scale = plot.LogScale{}
	p.Y.Label.Text = "ns/op"
	if err := plotutil.AddLinePoints(p,
		"Insert", insertXYs,
		"At", atXYs,
		"Find", findXYs,
	); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, "ordbench.png")
}
