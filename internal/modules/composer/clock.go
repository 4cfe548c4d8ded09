package composer

import (
	"math/rand/v2"
	"time"
)

type realClock struct{}

func (realClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (rt *realTicker) C() <-chan time.Time { return rt.t.C }
func (rt *realTicker) Stop()               { rt.t.Stop() }

// randomStep draws the per-tick progress increment, 5-19 inclusive.
func randomStep() int {
	return uploadStepMin + rand.IntN(uploadStepMax-uploadStepMin+1)
}
