// Package benchstats aggregates tokenizer benchmark timings into
// throughput statistics.
//
// It parses "Elapsed" timing lines from benchmark harness output, one
// format per engine, converts each elapsed time to a characters-per-
// second throughput over the benchmark corpus, and reports the mean and
// population standard deviation per engine.
//
// It is an independent sibling of the bundle pipeline and shares no
// state or data model with it.
package benchstats
