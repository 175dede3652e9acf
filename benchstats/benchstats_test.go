package benchstats

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

func TestCollector_AddLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		engine string
		want   float64
	}{
		{name: "vaporetto bare prefix", line: "Elapsed: 1.25 [sec]", engine: "vaporetto", want: 1.25},
		{name: "kytea", line: "Elapsed-kytea: 3.5 [sec]", engine: "kytea", want: 3.5},
		{name: "mecab", line: "Elapsed-mecab: 0.75 [sec]", engine: "mecab", want: 0.75},
		{name: "sudachi.rs", line: "Elapsed-sudachi.rs: 2.0 [sec]", engine: "sudachi.rs", want: 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultCorpusChars)
			c.AddLine(tt.line)

			got := c.times[tt.engine]
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("times[%q] = %v, want [%v]", tt.engine, got, tt.want)
			}
		})
	}
}

func TestCollector_IgnoresUnrelatedLines(t *testing.T) {
	c := New(DefaultCorpusChars)
	c.AddLine("loading dictionary...")
	c.AddLine("  Elapsed: 1.0 [sec]") // not at line start
	c.AddLine("")

	if len(c.times) != 0 {
		t.Errorf("unrelated lines were recorded: %v", c.times)
	}
}

func TestCollector_Results(t *testing.T) {
	const chars = 1000
	c := New(chars)
	c.AddLine("Elapsed: 2.0 [sec]")       // 500 chars/sec
	c.AddLine("Elapsed: 4.0 [sec]")       // 250 chars/sec
	c.AddLine("Elapsed-kytea: 1.0 [sec]") // 1000 chars/sec

	results := c.Results()
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// Fixed engine order puts kytea first.
	if results[0].Engine != "kytea" || results[1].Engine != "vaporetto" {
		t.Fatalf("unexpected order: %s, %s", results[0].Engine, results[1].Engine)
	}

	ky := results[0]
	if !almostEqual(ky.Mean, 1000) || ky.StdDev != 0 {
		t.Errorf("kytea = (%v, %v), want (1000, 0)", ky.Mean, ky.StdDev)
	}

	vp := results[1]
	if !almostEqual(vp.Mean, 375) {
		t.Errorf("vaporetto mean = %v, want 375", vp.Mean)
	}
	// Population std dev of {500, 250} is 125.
	if !almostEqual(vp.StdDev, 125) {
		t.Errorf("vaporetto stddev = %v, want 125", vp.StdDev)
	}
}

func TestCollector_Collect(t *testing.T) {
	input := strings.Join([]string{
		"starting benchmark",
		"Elapsed: 1.0 [sec]",
		"Elapsed-lindera: 5.0 [sec]",
		"done",
	}, "\n")

	c := New(DefaultCorpusChars)
	if err := c.Collect(strings.NewReader(input)); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	results := c.Results()
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestCollector_NoSamples(t *testing.T) {
	c := New(DefaultCorpusChars)

	if results := c.Results(); len(results) != 0 {
		t.Errorf("empty input should yield no results, got %v", results)
	}
}
