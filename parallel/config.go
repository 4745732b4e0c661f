package parallel

import "runtime"

// DefaultMinChunk is the smallest range handed to one goroutine by For.
const DefaultMinChunk = 1

// Config controls how For splits a range.
type Config struct {
	Workers  int // goroutines to use; values < 1 mean runtime.GOMAXPROCS(0)
	MinChunk int // minimum indices per goroutine; values < 1 mean DefaultMinChunk
}

// DefaultConfig returns one worker per schedulable CPU.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		MinChunk: DefaultMinChunk,
	}
}

// normalize resolves non-positive fields to their defaults.
func (c Config) normalize() Config {
	if c.Workers < 1 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.MinChunk < 1 {
		c.MinChunk = DefaultMinChunk
	}
	return c
}
