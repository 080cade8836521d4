package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const emptySymbol = "-"

// Renderer draws a game board as box-drawing text, the frame players see
// between prompts.
type Renderer struct {
	colors bool
	markX  *color.Color
	markO  *color.Color
}

func NewRenderer(colors bool) *Renderer {
	return &Renderer{
		colors: colors,
		markX:  color.New(color.FgRed, color.Bold),
		markO:  color.New(color.FgBlue, color.Bold),
	}
}

// RenderBoard returns the framed board with 1-based row and column headers.
func (that *Renderer) RenderBoard(game *entity.Game) string {
	size := game.Size

	var board strings.Builder

	board.WriteString("   ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(&board, " %d  ", col+1)
	}
	board.WriteString("\n")

	board.WriteString("  ┌" + strings.Repeat("───┬", size-1) + "───┐\n")

	for row := 0; row < size; row++ {
		fmt.Fprintf(&board, "%d │", row+1)
		for col := 0; col < size; col++ {
			fmt.Fprintf(&board, " %s │", that.symbol(game.At(row, col)))
		}
		board.WriteString("\n")

		if row < size-1 {
			board.WriteString("  ├" + strings.Repeat("───┼", size-1) + "───┤\n")
		}
	}

	board.WriteString("  └" + strings.Repeat("───┴", size-1) + "───┘\n")

	return board.String()
}

func (that *Renderer) symbol(mark string) string {
	if mark == entity.EmptyCell {
		return emptySymbol
	}

	if !that.colors {
		return mark
	}

	if mark == entity.PlayerX {
		return that.markX.Sprint(mark)
	}

	return that.markO.Sprint(mark)
}
