package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"negatris/internal/game"
)

func main() {
	_ = godotenv.Load()

	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

// newApp loads the word table and resolves where assets are served from.
func newApp(cfg *Config) (*App, error) {
	logInfo("Starting %s in %s mode", AppTitle, cfg.env())

	lex, err := game.DefaultLexicon()
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	logInfo("Loaded %d words across %d buckets", lex.Len(), len(game.Buckets))

	root := cfg.assetRoot
	if cfg.production && dirExists(filepath.Join(root, distDir)) {
		logInfo("Serving assets from %s/ directory", distDir)
		root = filepath.Join(root, distDir)
	} else {
		logInfo("Serving development assets from source directories")
	}

	return &App{
		Config:       cfg,
		Lexicon:      lex,
		IsProduction: cfg.production,
		AssetRoot:    root,
		StartTime:    time.Now(),
		LimiterMap:   make(map[string]*rate.Limiter),
	}, nil
}

func (app *App) setupRouter() *gin.Engine {
	if app.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), app.accessLogMiddleware())

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif"}),
		ginGzip.WithExcludedPaths([]string{RouteQR})))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(func(c *gin.Context) {
		applyCacheHeaders(c, app.IsProduction, app.Config.staticCacheAge)
	})

	router.LoadHTMLGlob(filepath.Join(app.AssetRoot, templatesGlob))
	router.Static(RouteStatic, filepath.Join(app.AssetRoot, staticDir))

	router.GET(RouteHome, app.homeHandler)
	router.GET(RouteHealthz, app.healthzHandler)
	router.GET(RouteVersion, versionHandler)
	router.GET(RouteQR, app.rateLimitMiddleware(), qrHandler)

	return router
}

// accessLogMiddleware logs each request through the package logger.
func (app *App) accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logDebug("[request_id=%v] %s %s %d %s", requestID(c.Request.Context()),
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Microsecond))
	}
}

func (app *App) startServer(ctx context.Context, router *gin.Engine) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(app.Config.bind, strconv.Itoa(app.Config.port)),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logInfo("Server starting on http://%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logInfo("Shutting down server gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	logInfo("Server shutdown complete")
	return nil
}

// applyCacheHeaders sets long-lived caching for static assets in production and
// disables caching for everything else.
func applyCacheHeaders(c *gin.Context, production bool, staticAge time.Duration) {
	if production && strings.HasPrefix(c.Request.URL.Path, RouteStatic+"/") {
		cachecontrol.New(cachecontrol.Config{
			Public: true,
			MaxAge: cachecontrol.Duration(staticAge),
		})(c)
		c.Header("Vary", "Accept-Encoding")
		return
	}
	cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	})(c)
}
