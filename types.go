package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"negatris/internal/game"
)

// App holds the state shared by every request handler.
type App struct {
	Config       *Config
	Lexicon      *game.Lexicon
	IsProduction bool
	AssetRoot    string // directory holding templates/ and static/
	StartTime    time.Time

	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex
}

// HealthStatus is the JSON body served on /healthz.
type HealthStatus struct {
	Status      string `json:"status"`
	Env         string `json:"env"`
	WordsLoaded int    `json:"words_loaded"`
	Uptime      string `json:"uptime"`
	Timestamp   string `json:"timestamp"`
}
