//go:build js && wasm

package client

import (
	"fmt"
	"math"
)

const (
	viewportHeightShare = 0.85 // rest of the viewport is left for controls and status
	aspectRatio         = 0.75 // canvas height / width
	bucketHeightShare   = 0.12 // bucket row height / canvas height
)

// resizeCanvas fits a 4:3 canvas into the viewport, sizes the bucket row and
// scales the backing store for the device pixel ratio.
func (c *Client) resizeCanvas() {
	ratio := c.win.Get("devicePixelRatio").Float()
	if ratio <= 0 || math.IsNaN(ratio) {
		ratio = 1
	}
	availableWidth := c.win.Get("innerWidth").Float()
	availableHeight := c.win.Get("innerHeight").Float() * viewportHeightShare

	width := availableWidth
	height := width * aspectRatio
	if height > availableHeight {
		height = availableHeight
		width = height / aspectRatio
	}
	bucketHeight := math.Round(height * bucketHeightShare)

	c.wrapper.Get("style").Call("setProperty", "--bucket-height", px(bucketHeight))
	c.container.Get("style").Set("width", px(width))
	c.container.Get("style").Set("height", px(height+bucketHeight))
	c.bucketRow.Get("style").Set("height", px(bucketHeight))

	c.canvas.Get("style").Set("width", px(width))
	c.canvas.Get("style").Set("height", px(height))
	c.canvas.Set("width", math.Floor(width*ratio))
	c.canvas.Set("height", math.Floor(height*ratio))
	c.ctx.Call("setTransform", ratio, 0, 0, ratio, 0, 0)

	c.game.Resize(width, height)
}

func px(v float64) string {
	return fmt.Sprintf("%gpx", v)
}
