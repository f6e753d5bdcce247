package board

import (
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chesscore/position"
)

var (
	drawLabel      = color.New(color.Bold)
	drawLightCell  = color.New(38, 5, 233, 48, 5, 194)
	drawDarkCell   = color.New(38, 5, 233, 48, 5, 77)
	drawMarkedCell = color.New(38, 5, 233, 48, 5, 221)
)

// Draw renders the board with unicode pieces on colored squares. Squares in
// marked are highlighted. Colors follow color.NoColor.
func (b *Board) Draw(marked ...position.Pos) string {
	highlight := map[position.Pos]bool{}
	for _, pos := range marked {
		highlight[pos] = true
	}

	builder := strings.Builder{}
	for row := 0; row < position.MaxComponentScalar; row++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %d ", position.MaxComponentScalar-row))
		for col := 0; col < position.MaxComponentScalar; col++ {
			pos := position.NewPos(row, col)
			s, p := b.At(pos)
			sym := p.SymbolUnicode(s, false)
			if p == PieceUnknown {
				sym = " "
			}
			c := drawLightCell
			switch {
			case highlight[pos]:
				c = drawMarkedCell
			case (row+col)%2 == 1:
				c = drawDarkCell
			}
			_, _ = builder.WriteString(c.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for col := 0; col < position.MaxComponentScalar; col++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", position.NotationComponentX(col)))
	}
	return builder.String()
}
