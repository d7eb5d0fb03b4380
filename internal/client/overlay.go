//go:build js && wasm

package client

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"negatris/internal/scores"
)

func highScoresHTML(list scores.List) string {
	if len(list) == 0 {
		return "<p>No high scores yet.</p>"
	}
	items := lo.Map(list, func(s int, _ int) string {
		return fmt.Sprintf("<li>%d</li>", s)
	})
	return "<ol>" + strings.Join(items, "") + "</ol>"
}

// showOverlay adds a full-screen panel whose button removes it and starts a
// new game.
func (c *Client) showOverlay(id, body, buttonID string) {
	overlay := c.doc.Call("createElement", "div")
	overlay.Set("id", id)
	overlay.Set("innerHTML", body)
	c.wrapper.Call("appendChild", overlay)

	btn := c.byID(buttonID)
	if !btn.Truthy() {
		c.log.Warnf("Overlay %s has no #%s button", id, buttonID)
		return
	}
	c.once(btn, "click", func() {
		overlay.Call("remove")
		c.startGame()
	})
}

func (c *Client) showStartScreen() {
	c.showOverlay("start-screen", fmt.Sprintf(`
    <h1>Negatris</h1>
    <section id="high-scores">
      <h2>High Scores</h2>
      %s
    </section>
    <button id="start-btn">Start Game</button>`, highScoresHTML(c.store.List())), "start-btn")
}

func (c *Client) showGameOver(score int) {
	c.showOverlay("game-over", fmt.Sprintf(`
    <h1>Game Over</h1>
    <p>Your score: <strong>%d</strong></p>
    <section id="high-scores-end">
      <h2>Top Scores</h2>
      %s
    </section>
    <button id="restart-btn">Play Again</button>`, score, highScoresHTML(c.store.List())), "restart-btn")
}
