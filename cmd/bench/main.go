package main

import (
	"fmt"
	"math/bits"
	"os"
	"sort"
	"time"

	"github.com/pkg/profile"
	"github.com/renproject/lfsr"
	"github.com/renproject/lfsr/xoroshiro"
)

const (
	words   = 1 << 20
	seeds   = 8
	rngSeed = 0x5eed
	// Upper bound on the steps discarded before timing each seed.
	warmup = 1024
)

func main() {
	defer profile.Start().Stop()

	rng := xoroshiro.New(rngSeed)

	configs := []config{
		{variant: lfsr.VariantRight, width: 16, taps: []uint32{16, 14, 13, 11}},
		{variant: lfsr.VariantRight, width: 32, taps: []uint32{32, 22, 2, 1}},
		{variant: lfsr.VariantLeft, width: 64, taps: []uint32{64, 63, 61, 60}},
		{variant: lfsr.VariantInverted, width: 8, taps: []uint32{8, 5}},
	}

	results := make([]metrics, len(configs))
	for i, cfg := range configs {
		results[i] = runThroughput(cfg, rng)
	}

	cycles := cycleCensus(config{variant: lfsr.VariantInverted, width: 8, taps: []uint32{8, 5}})

	filename := fmt.Sprintf("%v-%v.metrics", words, seeds)
	reportMetrics(results, cycles, filename)
}

type config struct {
	variant lfsr.Variant
	width   uint32
	taps    []uint32
}

func (cfg config) String() string {
	return fmt.Sprintf("%v/%v", cfg.variant, cfg.width)
}

type metrics struct {
	cfg       config
	steps     uint64
	ones      uint64
	totalTime time.Duration
}

func (m *metrics) recordWord(w uint64, d time.Duration) {
	m.steps += 64
	m.ones += uint64(bits.OnesCount64(w))
	m.totalTime += d
}

func runThroughput(cfg config, rng *xoroshiro.Rng) metrics {
	m := metrics{cfg: cfg}
	for s := 0; s < seeds; s++ {
		e, err := seededEngine(cfg, rng)
		if err != nil {
			panic(err)
		}

		for i := 0; i < words; i++ {
			start := time.Now()
			w := e.Next64()
			m.recordWord(w, time.Since(start))
		}
	}
	return m
}

// seededEngine builds the register from a random seed and advances it a
// random number of steps below warmup, so that runs do not all start at the
// seed itself.
func seededEngine(cfg config, rng *xoroshiro.Rng) (lfsr.Engine, error) {
	e, err := lfsr.Build(cfg.variant, cfg.width, cfg.taps, rng.Uint64())
	if err != nil {
		return nil, err
	}
	e.StepN(rng.Uint32n(warmup))
	return e, nil
}

// cycleCensus steps every seed of the register and groups seeds by the
// length of the cycle they lie on.
func cycleCensus(cfg config) map[uint64]int {
	census := make(map[uint64]int)
	for seed := uint64(0); seed < 1<<cfg.width; seed++ {
		e, err := lfsr.Build(cfg.variant, cfg.width, cfg.taps, seed)
		if err != nil {
			panic(err)
		}
		period, ok := lfsr.Period(e, 1<<cfg.width)
		if !ok {
			period = 0
		}
		census[period]++
	}
	return census
}

func reportMetrics(results []metrics, cycles map[uint64]int, filename string) {
	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	columns := "Register     |       Steps |        Ones |         Time |  ns/bit\n"
	separator := "-----------------------------------------------------------------\n"
	resultStr := "%-12v | %11v | %11v | %12v | %7.3f\n"

	fmt.Fprint(file, columns)
	fmt.Fprint(file, separator)
	for _, m := range results {
		nsPerBit := float64(m.totalTime.Nanoseconds()) / float64(m.steps)
		fmt.Fprintf(file, resultStr, m.cfg, m.steps, m.ones, m.totalTime.Round(time.Microsecond), nsPerBit)
	}

	periods := make([]uint64, 0, len(cycles))
	for period := range cycles {
		periods = append(periods, period)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i] < periods[j] })

	fmt.Fprintf(file, "\ninverted/8 taps 8,5 cycles:\n")
	for _, period := range periods {
		fmt.Fprintf(file, "  period %4v: %4v seeds\n", period, cycles[period])
	}
}
