// Command spanbench times the per-label apply variant against the bulk
// reduction variant over both axes of a randomly generated table, and
// verifies the two agree. The gap on the rows axis shows what per-row
// callback dispatch costs over column-major storage.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	pb "gopkg.in/cheggaaa/pb.v1"

	"tabspan/span"
)

func main() {
	rows := flag.Int("rows", 2000, "rows in the generated table")
	cols := flag.Int("cols", 50, "columns in the generated table")
	trials := flag.Int("trials", 20, "timed repetitions per variant")
	seed := flag.Int64("seed", 1, "random seed for the table contents")
	flag.Parse()

	if *rows <= 0 || *cols <= 0 || *trials <= 0 {
		log.Fatal("rows, cols and trials must all be positive")
	}

	df := randomTable(*rows, *cols, *seed)

	variants := []struct {
		name string
		run  func() (span.Result, error)
	}{
		{"bulk/columns", func() (span.Result, error) { return span.ReduceSpan(df, span.Columns) }},
		{"apply/columns", func() (span.Result, error) { return span.SpanByApply(df, span.Columns) }},
		{"bulk/rows", func() (span.Result, error) { return span.ReduceSpan(df, span.Rows) }},
		{"apply/rows", func() (span.Result, error) { return span.SpanByApply(df, span.Rows) }},
	}

	bar := pb.StartNew(len(variants) * *trials)
	means := make([]time.Duration, len(variants))
	results := make([]span.Result, len(variants))
	for i, v := range variants {
		var total time.Duration
		for trial := 0; trial < *trials; trial++ {
			start := time.Now()
			res, err := v.run()
			total += time.Since(start)
			if err != nil {
				log.Fatalf("%s: %v", v.name, err)
			}
			results[i] = res
			bar.Increment()
		}
		means[i] = total / time.Duration(*trials)
	}
	bar.Finish()

	// bulk and apply must agree pairwise before any timing is worth reading
	for i := 0; i < len(variants); i += 2 {
		if !agree(results[i], results[i+1]) {
			log.Fatalf("%s and %s disagree", variants[i].name, variants[i+1].name)
		}
	}

	fmt.Printf("table %dx%d, %d trials\n", *rows, *cols, *trials)
	for i, v := range variants {
		fmt.Printf("  %-14s %12v\n", v.name, means[i])
	}
	fmt.Printf("columns: apply/bulk = %.1fx\n", ratio(means[1], means[0]))
	fmt.Printf("rows:    apply/bulk = %.1fx\n", ratio(means[3], means[2]))
}

func randomTable(rows, cols int, seed int64) dataframe.DataFrame {
	rng := rand.New(rand.NewSource(seed))
	ss := make([]series.Series, cols)
	for j := range ss {
		vals := make([]float64, rows)
		for i := range vals {
			vals[i] = rng.NormFloat64() * 100
		}
		ss[j] = series.New(vals, series.Float, fmt.Sprintf("c%d", j))
	}
	return dataframe.New(ss...)
}

func agree(a, b span.Result) bool {
	if a.Len() != b.Len() {
		return false
	}
	av, bv := a.Values(), b.Values()
	for i := range av {
		if math.Abs(av[i]-bv[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func ratio(num, den time.Duration) float64 {
	if den == 0 {
		return math.Inf(1)
	}
	return float64(num) / float64(den)
}
