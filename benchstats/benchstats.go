package benchstats

import (
	"bufio"
	"io"
	"math"
	"regexp"
	"strconv"

	"github.com/daac-tools/vaporetto-wasm/errors"
)

// DefaultCorpusChars is the character count of the benchmark corpus the
// timing lines refer to.
const DefaultCorpusChars = 16318893

// engines are matched in this order against each input line; the first
// match wins. Vaporetto's own harness prints a bare "Elapsed:" prefix,
// the others tag theirs with the engine name.
var engines = []struct {
	name string
	re   *regexp.Regexp
}{
	{"kytea", regexp.MustCompile(`^Elapsed-kytea: ([0-9.]+) \[sec\]`)},
	{"vaporetto", regexp.MustCompile(`^Elapsed: ([0-9.]+) \[sec\]`)},
	{"mecab", regexp.MustCompile(`^Elapsed-mecab: ([0-9.]+) \[sec\]`)},
	{"kuromoji", regexp.MustCompile(`^Elapsed-kuromoji: ([0-9.]+) \[sec\]`)},
	{"lindera", regexp.MustCompile(`^Elapsed-lindera: ([0-9.]+) \[sec\]`)},
	{"sudachi", regexp.MustCompile(`^Elapsed-sudachi: ([0-9.]+) \[sec\]`)},
	{"sudachi.rs", regexp.MustCompile(`^Elapsed-sudachi.rs: ([0-9.]+) \[sec\]`)},
}

// Result is the aggregated throughput of one engine, in characters per
// second over all of its samples.
type Result struct {
	Engine string
	Mean   float64
	StdDev float64
}

// Collector accumulates per-engine elapsed times from benchmark output.
type Collector struct {
	times map[string][]float64
	chars float64
}

// New returns a Collector for a corpus of the given character count.
func New(corpusChars int) *Collector {
	return &Collector{
		times: make(map[string][]float64),
		chars: float64(corpusChars),
	}
}

// AddLine records the line's elapsed time if it matches any engine's
// timing format. Unrecognized lines are skipped; the benchmark harness
// interleaves timing lines with arbitrary tool output.
func (c *Collector) AddLine(line string) {
	for _, e := range engines {
		m := e.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		secs, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		c.times[e.name] = append(c.times[e.name], secs)
		return
	}
}

// Collect consumes all lines from r.
func (c *Collector) Collect(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		c.AddLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(errors.PhaseStats, errors.KindIOFailure, err, "read benchmark output")
	}
	return nil
}

// Results returns one entry per engine that produced at least one
// sample, in the fixed engine order. Elapsed times are converted to
// throughputs before averaging; StdDev is the population standard
// deviation of those throughputs.
func (c *Collector) Results() []Result {
	var results []Result
	for _, e := range engines {
		times := c.times[e.name]
		if len(times) == 0 {
			continue
		}
		mean, std := meanStdDev(times, c.chars)
		results = append(results, Result{Engine: e.name, Mean: mean, StdDev: std})
	}
	return results
}

func meanStdDev(times []float64, chars float64) (mean, std float64) {
	speeds := make([]float64, len(times))
	for i, t := range times {
		speeds[i] = chars / t
	}
	for _, s := range speeds {
		mean += s
	}
	mean /= float64(len(speeds))
	var dist float64
	for _, s := range speeds {
		dist += (s - mean) * (s - mean)
	}
	dist /= float64(len(speeds))
	return mean, math.Sqrt(dist)
}
