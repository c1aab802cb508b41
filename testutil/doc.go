// Package testutil provides deterministic corpus fixtures for tests and
// benchmarks: a seeded thread-safe RNG and a random sparse-corpus
// generator.
package testutil
