//go:build js && wasm

package client

import (
	"strconv"
	"syscall/js"

	"negatris/internal/game"
)

// startGame resets the session and (re)creates the spawn timer and the
// animation loop. Any previous timer or frame request is cancelled first.
func (c *Client) startGame() {
	c.stopTimers()
	c.particles = nil
	c.game.Start()
	c.updateHUD()

	interval := int(c.game.Config().SpawnInterval.Milliseconds())
	c.spawnID = c.win.Call("setInterval", c.spawnCb, interval)
	c.frameID = c.win.Call("requestAnimationFrame", c.frameCb)
	c.log.Infof("Game started with %d lives", c.game.Stats().Lives)
}

func (c *Client) stopTimers() {
	if !c.frameID.IsNull() {
		c.win.Call("cancelAnimationFrame", c.frameID)
		c.frameID = js.Null()
	}
	if !c.spawnID.IsNull() {
		c.win.Call("clearInterval", c.spawnID)
		c.spawnID = js.Null()
	}
}

// onFrame is the requestAnimationFrame callback.
func (c *Client) onFrame(_ js.Value, args []js.Value) any {
	c.frameID = js.Null()
	if len(args) == 0 {
		return nil
	}
	res := c.game.Frame(args[0].Float())
	for _, out := range res.Outcomes {
		c.handleResult(out)
	}
	if res.Over {
		c.gameOver()
		return nil
	}
	c.draw()
	c.frameID = c.win.Call("requestAnimationFrame", c.frameCb)
	return nil
}

// handleResult plays the feedback for one landed word and refreshes the HUD.
func (c *Client) handleResult(out game.Outcome) {
	c.flashBucket(out.Chosen, out.Correct)
	c.animateWordEffect(out)
	if out.Correct {
		c.burstAtBucket(out.Chosen)
	}
	if out.BonusLife {
		c.showExtraLife()
	}
	c.log.Debugf("%s%s landed in %s (correct: %v)", out.Want, out.Word, out.Chosen, out.Correct)
	c.updateHUD()
}

func (c *Client) gameOver() {
	c.stopTimers()
	score := c.game.Stats().Score
	list, err := c.store.Record(score)
	if err != nil {
		c.log.Warnf("Failed to save high score %d: %v", score, err)
	}
	c.log.Infof("Game over with score %d, high scores: %s", score, list)
	c.draw()
	c.updateHUD()
	c.showGameOver(score)
}

func (c *Client) move(dir int) {
	if c.game.Move(dir) {
		c.draw()
	}
}

func (c *Client) updateHUD() {
	stats := c.game.Stats()
	c.setText("score", strconv.Itoa(stats.Score))
	c.setText("lives", strconv.Itoa(stats.Lives))
	c.setText("top-score", strconv.Itoa(c.store.List().Top()))
}

func (c *Client) setText(id, text string) {
	if el := c.byID(id); el.Truthy() {
		el.Set("textContent", text)
	}
}
