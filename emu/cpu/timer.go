package cpu

import "time"

// TimerMode selects what drives the delay and sound timers.
type TimerMode int

const (
	// TimerTick decrements the timers once per Tick.
	TimerTick TimerMode = iota

	// TimerRealtime decrements the timers at 60Hz of elapsed time fed
	// through AdvanceTimers.
	TimerRealtime
)

const timerPeriod = time.Second / 60

type timers struct {
	delay uint8
	sound uint8

	// elapsed time not yet turned into a decrement
	acc time.Duration
}

func (t *timers) decrement() {
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
}

func (t *timers) advance(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	t.acc += elapsed
	for t.acc >= timerPeriod {
		t.acc -= timerPeriod
		t.decrement()
	}
}
