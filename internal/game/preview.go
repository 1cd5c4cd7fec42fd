package game

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/worldofbits/internal/config"
	"github.com/vovakirdan/worldofbits/internal/world"
)

// Preview renders the tokens a fresh world holds within radius cells of
// center, northernmost row first. Empty cells show as dots and the centre
// cell is bracketed.
func Preview(rules config.Rules, center world.Cell, radius int) string {
	spawner := world.NewSpawner(rules)
	width := len(strconv.Itoa(1<<rules.ValueExponentRange)) + 3

	var sb strings.Builder
	for i := center.I + radius; i >= center.I-radius; i-- {
		for j := center.J - radius; j <= center.J+radius; j++ {
			c := world.Cell{I: i, J: j}
			text := "."
			if v, ok := spawner.Peek(c); ok {
				text = strconv.Itoa(v)
			}
			if c == center {
				text = "[" + text + "]"
			}
			sb.WriteString(strings.Repeat(" ", width-len(text)))
			sb.WriteString(text)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
