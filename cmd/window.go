package cmd

import (
	"fmt"
	"time"

	"github.com/faiface/pixel/pixelgl"

	"github.com/they4kman/gosweep/director"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/render"
)

const (
	windowTitle   = "gosweep"
	directorDelay = 500 * time.Millisecond
)

// Must be called from within pixelgl.Run
func runWindow(g *game.Game, d director.Director, ctx *render.Context) error {
	cfg := pixelgl.WindowConfig{
		Title:  windowTitle,
		Bounds: ctx.Bounds(),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	var (
		frames = 0
		second = time.Tick(time.Second)
		act    = time.Tick(directorDelay)
	)

	for !win.Closed() {
		win.Update()
		win.Clear(render.BackgroundColor)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		render.Draw(ctx, win, g)

		if d != nil {
			select {
			case <-act:
				if g.Status() == game.InProgress {
					d.Act(g)
				}
			default:
			}
		}

		pos := win.MousePosition()
		switch {
		case win.JustPressed(pixelgl.MouseButtonLeft):
			render.Click(ctx, g, pos, render.ButtonLeft)
		case win.JustPressed(pixelgl.MouseButtonRight):
			render.Click(ctx, g, pos, render.ButtonRight)
		case win.JustPressed(pixelgl.MouseButtonMiddle):
			render.Click(ctx, g, pos, render.ButtonMiddle)
		}

		if win.JustPressed(pixelgl.KeyEnter) && g.Status() != game.InProgress {
			g.Reset()
		}
	}

	return nil
}
