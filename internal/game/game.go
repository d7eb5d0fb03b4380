package game

import (
	"math"
	"time"

	"github.com/samber/lo"
)

// FrameRateScale converts a per-frame speed into a per-second one. Speeds are
// calibrated as pixels per frame at 60 fps and then multiplied by real elapsed
// seconds, so the effective rate is speed*60 px/s regardless of frame rate.
const FrameRateScale = 60

// Rand is the subset of *math/rand/v2.Rand the game draws from.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

type Config struct {
	StartLives    int
	PointsPerHit  int
	StreakForLife int
	SpawnInterval time.Duration

	FontScale      float64 // font size as a fraction of canvas height
	SpawnLift      float64 // spawn y above the top, as a fraction of canvas height
	BaseSpeedScale float64 // px/frame as a fraction of canvas height
	SpeedPerPoint  float64 // relative speed increase per point scored
	StepScale      float64 // steering step as a fraction of canvas width
}

func DefaultConfig() Config {
	return Config{
		StartLives:     3,
		PointsPerHit:   10,
		StreakForLife:  5,
		SpawnInterval:  2 * time.Second,
		FontScale:      0.06,
		SpawnLift:      0.08,
		BaseSpeedScale: 0.004,
		SpeedPerPoint:  0.005,
		StepScale:      0.09,
	}
}

// Outcome describes one word landing in a bucket zone.
type Outcome struct {
	Word      string
	Zone      int
	Chosen    Prefix
	Want      Prefix
	Correct   bool
	BonusLife bool
	X, Y      float64
	FontSize  float64
}

// FrameResult is everything that happened during one Frame call.
type FrameResult struct {
	Outcomes []Outcome
	Over     bool
}

// Game is the simulation: falling words, bucket hit testing and the
// score/lives/streak bookkeeping. It is not safe for concurrent use; the
// browser drives it from a single event loop.
type Game struct {
	cfg     Config
	lex     *Lexicon
	measure Measurer
	rng     Rand

	width, height float64

	phase    Phase
	stats    Stats
	words    []*FallingWord
	last     float64
	clockSet bool
}

func New(cfg Config, lex *Lexicon, m Measurer, rng Rand) *Game {
	return &Game{
		cfg:     cfg,
		lex:     lex,
		measure: m,
		rng:     rng,
		stats:   Stats{Lives: cfg.StartLives},
	}
}

func (g *Game) Config() Config { return g.cfg }

func (g *Game) Lexicon() *Lexicon { return g.lex }

func (g *Game) Phase() Phase { return g.phase }

func (g *Game) Stats() Stats { return g.stats }

// Words returns the words still on screen.
func (g *Game) Words() []*FallingWord { return g.words }

func (g *Game) Size() (float64, float64) { return g.width, g.height }

// Resize sets the logical canvas dimensions.
func (g *Game) Resize(width, height float64) {
	g.width, g.height = width, height
}

// Start resets the session and drops the first word so the player is not
// staring at an empty canvas.
func (g *Game) Start() {
	g.stats = Stats{Lives: g.cfg.StartLives}
	g.words = nil
	g.clockSet = false
	g.last = 0
	g.phase = PhasePlaying
	g.Spawn()
}

// FontSize is the word font size for the current canvas height.
func (g *Game) FontSize() float64 {
	return math.Round(g.height * g.cfg.FontScale)
}

// Speed is the fall speed for the current score.
func (g *Game) Speed() float64 {
	base := g.height * g.cfg.BaseSpeedScale
	return base * (1 + float64(g.stats.Score)*g.cfg.SpeedPerPoint)
}

// Spawn drops a random word at a random x where it fits fully on the canvas.
// It does nothing unless a game is in progress.
func (g *Game) Spawn() *FallingWord {
	if g.phase != PhasePlaying {
		return nil
	}
	text := g.lex.Random(g.rng)
	fontSize := g.FontSize()
	width := g.measure.Measure(text, fontSize) + fontSize*0.4
	w := &FallingWord{
		Text:     text,
		X:        g.rng.Float64() * math.Max(0, g.width-width),
		Y:        -g.height * g.cfg.SpawnLift,
		Speed:    g.Speed(),
		FontSize: fontSize,
		Width:    width,
		Height:   fontSize + 6,
		Active:   true,
	}
	g.words = append(g.words, w)
	return w
}

// Frame advances the simulation to timestamp (milliseconds, as passed to
// requestAnimationFrame callbacks). The first frame after Start only
// records the clock.
func (g *Game) Frame(timestamp float64) FrameResult {
	if g.phase != PhasePlaying {
		return FrameResult{Over: g.phase == PhaseOver}
	}
	if !g.clockSet {
		g.last = timestamp
		g.clockSet = true
		return FrameResult{}
	}
	dt := math.Max(0, (timestamp-g.last)/1000)
	g.last = timestamp

	var res FrameResult
	for _, w := range g.words {
		if !w.Active || !w.advance(dt, g.height) {
			continue
		}
		w.Active = false
		if g.phase != PhasePlaying {
			continue
		}
		out := g.land(w)
		res.Outcomes = append(res.Outcomes, out)
		if g.stats.Lives <= 0 {
			g.phase = PhaseOver
		}
	}
	g.words = lo.Filter(g.words, func(w *FallingWord, _ int) bool {
		return w.Active
	})
	res.Over = g.phase == PhaseOver
	return res
}

// land scores a word whose bottom edge reached the floor.
func (g *Game) land(w *FallingWord) Outcome {
	zone, chosen := BucketAt(w.CenterX(), g.width)
	want, _ := g.lex.PrefixOf(w.Text)
	correct := want == chosen
	bonus := record(&g.stats, correct, g.cfg)
	return Outcome{
		Word:      w.Text,
		Zone:      zone,
		Chosen:    chosen,
		Want:      want,
		Correct:   correct,
		BonusLife: bonus,
		X:         w.X,
		Y:         w.Y,
		FontSize:  w.FontSize,
	}
}

// Active returns the steerable word: the lowest active one on screen.
func (g *Game) Active() *FallingWord {
	var active *FallingWord
	for _, w := range g.words {
		if w.Active && (active == nil || w.Y > active.Y) {
			active = w
		}
	}
	return active
}

// Move steers the active word one step left (dir < 0) or right (dir > 0).
func (g *Game) Move(dir int) bool {
	if g.phase != PhasePlaying || dir == 0 {
		return false
	}
	w := g.Active()
	if w == nil {
		return false
	}
	step := math.Round(g.width * g.cfg.StepScale)
	if dir < 0 {
		step = -step
	}
	w.wrap(step, g.width)
	return true
}
