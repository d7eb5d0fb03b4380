//go:build js && wasm

package main

import (
	"fmt"
	"math/rand/v2"
	"runtime/debug"
	"syscall/js"
	"time"

	"go.uber.org/zap"

	"negatris/internal/client"
	"negatris/internal/game"
	"negatris/internal/scores"
)

func main() {
	defer handleCrash()

	l, err := zap.NewDevelopment()
	if err != nil {
		js.Global().Get("console").Call("error", fmt.Sprintf("logger: %v", err))
		return
	}
	log := l.Sugar()

	lex, err := game.DefaultLexicon()
	if err != nil {
		log.Errorf("Failed to load words: %v", err)
		return
	}

	store, err := scores.Open("negatris")
	if err != nil {
		log.Warnf("High scores will not persist: %v", err)
	}
	log.Debugf("High score store persistent: %v", store.Persistent())

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	c, err := client.New(log, lex, rng, store)
	if err != nil {
		log.Errorf("Failed to start: %v", err)
		return
	}
	c.Run()

	select {}
}

// handleCrash reports a panic to the browser console before re-panicking.
func handleCrash() {
	r := recover()
	if r == nil {
		return
	}
	console := js.Global().Get("console")
	console.Call("error", fmt.Sprintf("CRASH: %v", r))
	console.Call("error", fmt.Sprintf("Stack:\n%s", debug.Stack()))
	panic(r)
}
