//go:build js && wasm

package client

import (
	"fmt"

	"negatris/internal/game"
)

const (
	bucketFlashMs = 300
	extraLifeMs   = 1200
)

// flashBucket briefly marks the bucket a word landed in.
func (c *Client) flashBucket(prefix game.Prefix, correct bool) {
	bucket, ok := c.buckets[prefix]
	if !ok {
		c.log.Warnf("No bucket element for %s", prefix)
		return
	}
	cls := "incorrect"
	if correct {
		cls = "correct"
	}
	bucket.Get("classList").Call("add", cls)
	c.after(bucketFlashMs, func() {
		bucket.Get("classList").Call("remove", cls)
	})
}

// animateWordEffect overlays a popping (correct) or shaking (incorrect) copy
// of the word where it landed.
func (c *Client) animateWordEffect(out game.Outcome) {
	rect := c.container.Call("getBoundingClientRect")
	div := c.doc.Call("createElement", "div")
	cls := "word-effect incorrect"
	if out.Correct {
		cls = "word-effect correct"
	}
	div.Set("className", cls)
	div.Set("textContent", out.Word)
	style := div.Get("style")
	style.Set("left", fmt.Sprintf("%fpx", rect.Get("left").Float()+out.X))
	style.Set("top", fmt.Sprintf("%fpx", rect.Get("top").Float()+out.Y))
	style.Set("fontSize", fmt.Sprintf("%fpx", out.FontSize))
	c.doc.Get("body").Call("appendChild", div)
	c.once(div, "animationend", func() { div.Call("remove") })
}

// burstAtBucket launches particles just above the middle of a bucket.
func (c *Client) burstAtBucket(prefix game.Prefix) {
	bucket, ok := c.buckets[prefix]
	if !ok {
		return
	}
	b := bucket.Call("getBoundingClientRect")
	cv := c.canvas.Call("getBoundingClientRect")
	x := (b.Get("left").Float()+b.Get("right").Float())/2 - cv.Get("left").Float()
	y := b.Get("top").Float() - cv.Get("top").Float() + 10
	c.launchParticles(x, y)
}

func (c *Client) showExtraLife() {
	badge := c.doc.Call("createElement", "div")
	badge.Set("id", "extra-life")
	badge.Set("textContent", "❤️ +1 life!")
	c.wrapper.Call("appendChild", badge)
	c.after(extraLifeMs, func() { badge.Call("remove") })
}
