package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"negatris/internal/game"
)

// Autoplayer strategies for headless runs.
const (
	strategyPerfect = "perfect"
	strategyRandom  = "random"
	strategyIdle    = "idle"
)

type simulateOptions struct {
	seed       uint64
	strategy   string
	width      float64
	height     float64
	fps        float64
	maxSeconds float64
}

type simulationResult struct {
	Stats    game.Stats
	Landed   int
	Correct  int
	Missed   int
	Bonuses  int
	Seconds  float64
	GameOver bool
}

func (o simulateOptions) validate() error {
	if !lo.Contains([]string{strategyPerfect, strategyRandom, strategyIdle}, o.strategy) {
		return fmt.Errorf("unknown strategy %q (want %s, %s or %s)", o.strategy, strategyPerfect, strategyRandom, strategyIdle)
	}
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("invalid canvas size %vx%v", o.width, o.height)
	}
	if o.fps <= 0 {
		return fmt.Errorf("invalid frame rate %v", o.fps)
	}
	return nil
}

// runSimulation plays one game without a browser: frames arrive at a fixed
// rate, words spawn on the configured interval and an autoplayer steers.
func runSimulation(lex *game.Lexicon, m game.Measurer, opts simulateOptions) simulationResult {
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	g := game.New(game.DefaultConfig(), lex, m, rng)
	g.Resize(opts.width, opts.height)
	g.Start()

	frameMs := 1000 / opts.fps
	spawnMs := float64(g.Config().SpawnInterval.Milliseconds())
	nextSpawn := spawnMs

	var res simulationResult
	for ts := 0.0; ts <= opts.maxSeconds*1000; ts += frameMs {
		if ts >= nextSpawn {
			g.Spawn()
			nextSpawn += spawnMs
		}
		steer(g, opts.strategy, rng)

		frame := g.Frame(ts)
		for _, out := range frame.Outcomes {
			res.Landed++
			if out.Correct {
				res.Correct++
			} else {
				res.Missed++
			}
			if out.BonusLife {
				res.Bonuses++
			}
		}
		res.Seconds = ts / 1000
		if frame.Over {
			res.GameOver = true
			break
		}
	}
	res.Stats = g.Stats()
	return res
}

// steer makes at most one move per frame.
func steer(g *game.Game, strategy string, rng *rand.Rand) {
	switch strategy {
	case strategyPerfect:
		w := g.Active()
		if w == nil {
			return
		}
		want, ok := g.Lexicon().PrefixOf(w.Text)
		if !ok {
			return
		}
		width, _ := g.Size()
		target := lo.IndexOf(game.Buckets, want)
		current := game.ZoneIndex(w.CenterX(), width, len(game.Buckets))
		switch {
		case current < target:
			g.Move(1)
		case current > target:
			g.Move(-1)
		}
	case strategyRandom:
		if rng.IntN(10) == 0 {
			g.Move(rng.IntN(3) - 1)
		}
	}
}

func newSimulateCmd(v *viper.Viper) *cobra.Command {
	opts := simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a headless game with an autoplayer and print the result.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			lex, err := game.DefaultLexicon()
			if err != nil {
				return err
			}
			m, err := game.NewFontMeasurer()
			if err != nil {
				return err
			}
			res := runSimulation(lex, m, opts)
			logDebug("Simulation finished: %+v", res)
			printSimulation(cmd.OutOrStdout(), opts, res)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.Uint64Var(&opts.seed, "seed", 1, "random seed (env: NEGATRIS_SEED)")
	fs.StringVar(&opts.strategy, "strategy", strategyPerfect, "autoplayer: perfect, random or idle (env: NEGATRIS_STRATEGY)")
	fs.Float64Var(&opts.width, "width", 800, "logical canvas width (env: NEGATRIS_WIDTH)")
	fs.Float64Var(&opts.height, "height", 600, "logical canvas height (env: NEGATRIS_HEIGHT)")
	fs.Float64Var(&opts.fps, "fps", 60, "simulated frame rate (env: NEGATRIS_FPS)")
	fs.Float64Var(&opts.maxSeconds, "max-seconds", 300, "stop after this much game time (env: NEGATRIS_MAX_SECONDS)")
	bindEnv(v, fs)
	return cmd
}

func printSimulation(w io.Writer, opts simulateOptions, res simulationResult) {
	status := "time limit reached"
	if res.GameOver {
		status = "game over"
	}
	fmt.Fprintf(w, "strategy %s, seed %d: %s after %.1fs\n", opts.strategy, opts.seed, status, res.Seconds)
	fmt.Fprintf(w, "score %d, lives %d, landed %d (%d correct, %d missed), bonus lives %d\n",
		res.Stats.Score, res.Stats.Lives, res.Landed, res.Correct, res.Missed, res.Bonuses)
}

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "List the word table grouped by prefix.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := game.DefaultLexicon()
			if err != nil {
				return err
			}
			printWords(cmd.OutOrStdout(), lex)
			return nil
		},
	}
}

func printWords(w io.Writer, lex *game.Lexicon) {
	grouped := lex.ByPrefix()
	for _, p := range game.Buckets {
		words := grouped[p]
		fmt.Fprintf(w, "%-5s (%2d): %s\n", p, len(words), strings.Join(words, ", "))
	}
}
