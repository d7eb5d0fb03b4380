package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/skip2/go-qrcode"

	"negatris/internal/game"
)

// homeHandler renders the game page. The page is a shell; the wasm client
// builds the overlays and runs the game.
func (app *App) homeHandler(c *gin.Context) {
	cfg := game.DefaultConfig()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":      AppTitle,
		"buckets":    lo.Map(game.Buckets, func(p game.Prefix, _ int) string { return p.String() }),
		"startLives": cfg.StartLives,
		"wasm":       RouteStatic + "/" + wasmFile,
		"version":    releaseVersion,
	})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status:      "ok",
		Env:         app.Config.env(),
		WordsLoaded: app.Lexicon.Len(),
		Uptime:      formatUptime(time.Since(app.StartTime)),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

func versionHandler(c *gin.Context) {
	c.String(http.StatusOK, "negatris v%s\n", releaseVersion)
}

// qrHandler serves a PNG QR code pointing at the game so it can be opened on
// a phone.
func qrHandler(c *gin.Context) {
	png, err := qrcode.Encode(gameURL(c.Request), qrcode.Medium, qrSize)
	if err != nil {
		logWarn("[request_id=%v] QR generation failed: %v", requestID(c.Request.Context()), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": ErrorQRFailed})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// gameURL derives the public URL of the game page, respecting TLS and
// X-Forwarded-Proto.
func gameURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	path := strings.TrimSuffix(r.URL.Path, RouteQR)
	if path == "" {
		path = RouteHome
	}
	return scheme + "://" + r.Host + path
}
