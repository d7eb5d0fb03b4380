//go:build js && wasm

// Package client runs the game in the browser. It owns the canvas, the
// animation-frame loop, the spawn timer and all DOM input, and drives
// internal/game from the single JS event loop.
package client

import (
	"errors"
	"syscall/js"

	"go.uber.org/zap"

	"negatris/internal/game"
	"negatris/internal/scores"
)

var errMissingElement = errors.New("required element missing from page")

type Client struct {
	log   *zap.SugaredLogger
	game  *game.Game
	store *scores.Store

	win, doc  js.Value
	wrapper   js.Value
	container js.Value
	bucketRow js.Value
	canvas    js.Value
	ctx       js.Value
	buckets   map[game.Prefix]js.Value

	frameID js.Value
	spawnID js.Value
	frameCb js.Func
	spawnCb js.Func

	callbacks []js.Func
	particles []particle

	touchStartX float64
}

// New looks up the page elements rendered by the server and prepares the game.
func New(log *zap.SugaredLogger, lex *game.Lexicon, rng game.Rand, store *scores.Store) (*Client, error) {
	c := &Client{
		log:     log,
		store:   store,
		win:     js.Global(),
		doc:     js.Global().Get("document"),
		buckets: make(map[game.Prefix]js.Value),
		frameID: js.Null(),
		spawnID: js.Null(),
	}
	for id, dst := range map[string]*js.Value{
		"game-wrapper":   &c.wrapper,
		"game-container": &c.container,
		"canvas-buckets": &c.bucketRow,
		"game-canvas":    &c.canvas,
	} {
		el := c.byID(id)
		if !el.Truthy() {
			return nil, errMissingElement
		}
		*dst = el
	}
	c.ctx = c.canvas.Call("getContext", "2d")

	nodes := c.doc.Call("querySelectorAll", ".bucket")
	for i := 0; i < nodes.Length(); i++ {
		el := nodes.Index(i)
		c.buckets[game.Prefix(el.Get("dataset").Get("prefix").String())] = el
	}

	c.game = game.New(game.DefaultConfig(), lex, canvasMeasurer{ctx: c.ctx}, rng)
	c.frameCb = js.FuncOf(c.onFrame)
	c.spawnCb = js.FuncOf(func(_ js.Value, _ []js.Value) any {
		c.game.Spawn()
		return nil
	})
	return c, nil
}

// Run wires input, loads the high scores and shows the start screen.
func (c *Client) Run() {
	c.resizeCanvas()
	c.on(c.win, "resize", func(js.Value) { c.resizeCanvas() })
	c.bindInput()

	if err := c.store.Load(); err != nil {
		c.log.Warnf("High scores unreadable, starting fresh: %v", err)
	}
	c.updateHUD()
	c.showStartScreen()
	c.win.Call("focus")
}

// Release stops the loop and frees every registered callback.
func (c *Client) Release() {
	c.stopTimers()
	c.frameCb.Release()
	c.spawnCb.Release()
	for _, cb := range c.callbacks {
		cb.Release()
	}
	c.callbacks = nil
}

func (c *Client) byID(id string) js.Value {
	return c.doc.Call("getElementById", id)
}

// on registers a DOM event listener whose callback lives as long as the client.
func (c *Client) on(target js.Value, event string, fn func(ev js.Value)) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	c.callbacks = append(c.callbacks, cb)
	target.Call("addEventListener", event, cb)
}

// after runs fn once after ms milliseconds and releases its callback.
func (c *Client) after(ms int, fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(_ js.Value, _ []js.Value) any {
		fn()
		cb.Release()
		return nil
	})
	c.win.Call("setTimeout", cb, ms)
}

// once registers a listener that releases itself after the first event.
func (c *Client) once(target js.Value, event string, fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(_ js.Value, _ []js.Value) any {
		target.Call("removeEventListener", event, cb)
		fn()
		cb.Release()
		return nil
	})
	target.Call("addEventListener", event, cb)
}
