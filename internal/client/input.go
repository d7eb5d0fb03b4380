//go:build js && wasm

package client

import "syscall/js"

const swipeThreshold = 30

// bindInput wires arrow keys, the on-screen buttons and horizontal swipes to
// steering of the active word.
func (c *Client) bindInput() {
	c.on(c.win, "keydown", func(ev js.Value) {
		switch {
		case isKey(ev, "ArrowLeft"):
			ev.Call("preventDefault")
			c.move(-1)
		case isKey(ev, "ArrowRight"):
			ev.Call("preventDefault")
			c.move(1)
		}
	})

	if btn := c.byID("left-btn"); btn.Truthy() {
		c.on(btn, "click", func(js.Value) { c.move(-1) })
	}
	if btn := c.byID("right-btn"); btn.Truthy() {
		c.on(btn, "click", func(js.Value) { c.move(1) })
	}

	c.on(c.canvas, "touchstart", func(ev js.Value) {
		c.touchStartX = touchX(ev)
	})
	c.on(c.canvas, "touchmove", func(ev js.Value) {
		x := touchX(ev)
		dx := x - c.touchStartX
		if dx > swipeThreshold {
			c.move(1)
		}
		if dx < -swipeThreshold {
			c.move(-1)
		}
		c.touchStartX = x
	})
}

func isKey(ev js.Value, name string) bool {
	return ev.Get("key").String() == name || ev.Get("code").String() == name
}

func touchX(ev js.Value) float64 {
	touches := ev.Get("touches")
	if !touches.Truthy() || touches.Length() == 0 {
		return 0
	}
	return touches.Index(0).Get("clientX").Float()
}
