package allocation

import (
	"fmt"
	"strings"
)

// Render produces a plain-text layout of one room's arrangement, bench by
// bench, for console inspection and the plan preview endpoint.  Occupied
// seats show program and roll; empty seats show "Empty".
func Render(g *Grid) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Room %d Seating Layout\n", g.Room.RoomNo)
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")

	spb := g.Room.seatsPerBench()
	for side := 0; side < g.Room.sides(); side++ {
		if g.Room.sides() > 1 {
			fmt.Fprintf(&b, "%s SECTION:\n", strings.ToUpper(SideName(side)))
			b.WriteString(strings.Repeat("-", 30))
			b.WriteString("\n")
		}
		for row := 0; row < g.Room.NumRows; row++ {
			fmt.Fprintf(&b, "Row %d: ", row+1)
			for bench := 0; bench < g.Room.NumBenchCols; bench++ {
				b.WriteString("[")
				for pos := 0; pos < spb; pos++ {
					if s, ok := g.At(side, row, bench*spb+pos); ok {
						fmt.Fprintf(&b, "P%d-R%d", s.ProgramCode, s.Roll)
					} else {
						b.WriteString("Empty")
					}
					if pos < spb-1 {
						b.WriteString("|")
					}
				}
				b.WriteString("] ")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
