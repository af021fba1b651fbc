//go:build race

package persist

// The race detector makes sync.Pool drop items at random.
const raceEnabled = true
