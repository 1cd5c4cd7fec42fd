// Package world implements the game state of World of Bits: a grid laid over
// latitude/longitude space in which tokens spawn deterministically per cell,
// and a single-slot hand that picks tokens up, puts them down and merges
// equal tokens until one reaches the win value.
//
// Nothing in this package renders or blocks. A Session is owned by a single
// goroutine; hosts that deliver events concurrently must serialize calls.
package world
