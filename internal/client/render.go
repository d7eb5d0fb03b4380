//go:build js && wasm

package client

import (
	"fmt"
	"math"
	"syscall/js"
)

const (
	wordColor     = "#00FFFF"
	particleColor = "#8aff8a"
	particleCount = 15
)

// canvasMeasurer measures text with the 2D context's measureText.
type canvasMeasurer struct {
	ctx js.Value
}

func (m canvasMeasurer) Measure(text string, fontSize float64) float64 {
	m.ctx.Set("font", cssFont(fontSize))
	return m.ctx.Call("measureText", text).Get("width").Float()
}

func cssFont(size float64) string {
	return fmt.Sprintf("%dpx sans-serif", int(math.Round(size)))
}

type particle struct {
	x, y   float64
	vx, vy float64
	alpha  float64
}

// draw repaints the canvas: falling words, then any live particles.
func (c *Client) draw() {
	width, height := c.game.Size()
	c.ctx.Call("clearRect", 0, 0, width, height)

	for _, w := range c.game.Words() {
		if !w.Active {
			continue
		}
		c.ctx.Call("save")
		c.ctx.Set("font", cssFont(w.FontSize))
		c.ctx.Set("fillStyle", wordColor)
		c.ctx.Set("textBaseline", "top")
		c.ctx.Call("fillText", w.Text, w.X, w.Y)
		c.ctx.Call("restore")
	}
	c.drawParticles()
}

func (c *Client) launchParticles(x, y float64) {
	rnd := c.win.Get("Math")
	for range particleCount {
		c.particles = append(c.particles, particle{
			x:     x,
			y:     y,
			vx:    (rnd.Call("random").Float() - 0.5) * 4,
			vy:    -rnd.Call("random").Float() * 3,
			alpha: 1,
		})
	}
}

// drawParticles advances each particle one frame under gravity and fades it.
func (c *Client) drawParticles() {
	if len(c.particles) == 0 {
		return
	}
	live := c.particles[:0]
	c.ctx.Set("fillStyle", particleColor)
	for _, p := range c.particles {
		p.x += p.vx
		p.y += p.vy
		p.vy += 0.1
		p.alpha -= 0.02
		if p.alpha <= 0 {
			continue
		}
		c.ctx.Set("globalAlpha", p.alpha)
		c.ctx.Call("fillRect", p.x, p.y, 3, 3)
		live = append(live, p)
	}
	c.ctx.Set("globalAlpha", 1)
	c.particles = live
}
