package world

import "github.com/cespare/xxhash/v2"

// Luck maps a key to a reproducible pseudo-random value in [0,1).
// The top 53 bits of the key's xxhash are used so the result is exact in a float64.
func Luck(key string) float64 {
	return float64(xxhash.Sum64String(key)>>11) / (1 << 53)
}
