// Package render draws a game with pixel, and maps window positions back onto
// the board. It only reads engine state; every change goes through the
// engine's operations.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/gosweep/game"
)

const (
	DefaultCellSize = 32
	headerHeight    = 50
	minWindowWidth  = 200
	borderWidth     = 2
)

var (
	BackgroundColor = colornames.White
	coveredColor    = color.RGBA{R: 150, G: 100, B: 100, A: 255}
	revealedColor   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	flagColor       = color.RGBA{R: 255, G: 200, A: 255}
	mineColor       = colornames.Red
	borderColor     = colornames.Black
)

// Context holds everything needed to draw a board of fixed size. Build one per
// window with NewContext.
type Context struct {
	rows, cols int
	cellSize   float64
	bounds     pixel.Rect
	atlas      *text.Atlas
}

func NewContext(rows, cols int, cellSize float64) *Context {
	width := math.Max(float64(cols)*cellSize, minWindowWidth)
	height := float64(rows)*cellSize + headerHeight

	return &Context{
		rows:     rows,
		cols:     cols,
		cellSize: cellSize,
		bounds:   pixel.R(0, 0, width, height),
		atlas:    text.NewAtlas(basicfont.Face7x13, text.ASCII),
	}
}

// Bounds is the window size needed to show the header and the whole board
func (ctx *Context) Bounds() pixel.Rect {
	return ctx.bounds
}

func (ctx *Context) boardTop() float64 {
	return ctx.bounds.Max.Y - headerHeight
}

// CellRect returns the on-screen rectangle of a cell. Row 0 is at the top.
func (ctx *Context) CellRect(row, col int) pixel.Rect {
	top := ctx.boardTop() - float64(row)*ctx.cellSize
	left := float64(col) * ctx.cellSize
	return pixel.R(left, top-ctx.cellSize, left+ctx.cellSize, top)
}

// CellAt maps a window position onto the board. Positions in the header or
// beyond the last row or column are not on any cell.
func (ctx *Context) CellAt(pos pixel.Vec) (row, col int, ok bool) {
	col = int(math.Floor(pos.X / ctx.cellSize))
	row = int(math.Floor((ctx.boardTop() - pos.Y) / ctx.cellSize))

	if row < 0 || col < 0 || row >= ctx.rows || col >= ctx.cols {
		return 0, 0, false
	}
	return row, col, true
}

// NumberColor is the color a revealed count is drawn in
func NumberColor(value int) color.RGBA {
	switch value {
	case 1:
		return colornames.Black
	case 2:
		return color.RGBA{G: 150, A: 255}
	case 3:
		return color.RGBA{R: 200, A: 255}
	case 4:
		return color.RGBA{B: 200, A: 255}
	case 5:
		return colornames.Yellow
	case 6:
		return colornames.Orange
	case 7:
		return colornames.Violet
	case 8:
		return colornames.Pink
	default:
		return colornames.Black
	}
}

type cellLook struct {
	fill       color.RGBA
	mine       bool
	glyph      string
	glyphColor color.RGBA
}

func lookAt(g *game.Game, row, col int) cellLook {
	value, visible := g.CellValue(row, col)

	switch g.CellState(row, col) {
	case game.Flagged:
		look := cellLook{fill: flagColor}
		if g.Status() == game.Lost && visible && value != game.MineValue {
			look.glyph, look.glyphColor = "X", mineColor
		}
		return look
	case game.Revealed:
		look := cellLook{fill: revealedColor}
		switch {
		case value == game.MineValue:
			look.mine = true
		case value > 0:
			look.glyph, look.glyphColor = fmt.Sprint(value), NumberColor(value)
		}
		return look
	default:
		return cellLook{fill: coveredColor}
	}
}

// StatusLine is the header text: the remaining flags, then the outcome once
// the game is over.
func StatusLine(g *game.Game) (string, color.RGBA) {
	line := fmt.Sprintf("%03d", g.RemainingFlags())

	switch g.Status() {
	case game.Won:
		return line + "   WIN!", colornames.Green
	case game.Lost:
		return line + "   LOSE :(  click to reset", colornames.Red
	default:
		return line, colornames.Black
	}
}

// Draw renders the header and every cell of g onto target
func Draw(ctx *Context, target pixel.Target, g *game.Game) {
	type label struct {
		txt *text.Text
		at  pixel.Vec
	}

	imd := imdraw.New(nil)
	labels := make([]label, 0)

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			rect := ctx.CellRect(row, col)
			look := lookAt(g, row, col)

			imd.Color = look.fill
			imd.Push(rect.Min, rect.Max)
			imd.Rectangle(0) // 0 = filled

			imd.Color = borderColor
			imd.Push(rect.Min, rect.Max)
			imd.Rectangle(borderWidth)

			center := rect.Center()
			if look.mine {
				imd.Color = mineColor
				imd.Push(center)
				imd.Circle((ctx.cellSize-4)/2, 0)
				imd.Color = look.fill
				imd.Push(center)
				imd.Circle((ctx.cellSize-10)/2, 0)
				imd.Color = mineColor
				imd.Push(center)
				imd.Circle(math.Max((ctx.cellSize-20)/2, 1), 0)
			}

			if look.glyph != "" {
				txt := text.New(pixel.ZV, ctx.atlas)
				txt.Color = look.glyphColor
				fmt.Fprint(txt, look.glyph)
				labels = append(labels, label{txt, center.Sub(txt.Bounds().Center())})
			}
		}
	}

	imd.Draw(target)

	for _, l := range labels {
		l.txt.Draw(target, pixel.IM.Moved(l.at))
	}

	status, statusColor := StatusLine(g)
	header := text.New(pixel.V(20, ctx.bounds.Max.Y-30), ctx.atlas)
	header.Color = statusColor
	fmt.Fprint(header, status)
	header.Draw(target, pixel.IM)
}
