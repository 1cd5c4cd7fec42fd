package world

import "github.com/vovakirdan/worldofbits/internal/core"

// Reachable reports whether cell lies inside the square neighborhood of
// radius around player. With inclusive unset both axis distances must be
// strictly less than radius.
func Reachable(cell, player Cell, radius int, inclusive bool) bool {
	di := core.Abs(cell.I - player.I)
	dj := core.Abs(cell.J - player.J)
	if inclusive {
		return di <= radius && dj <= radius
	}
	return di < radius && dj < radius
}
