package session

import (
	"sync"
	"time"
)

// Ticker is a handle to a repeating scheduled task.
type Ticker interface {
	// Stop cancels the task. It is safe to call more than once and from within
	// the task itself.
	Stop()
}

// Scheduler runs fn every d until the returned Ticker is stopped.
type Scheduler interface {
	Every(d time.Duration, fn func()) Ticker
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, fn func()) Ticker

func (f SchedulerFunc) Every(d time.Duration, fn func()) Ticker {
	return f(d, fn)
}

type clockTicker struct {
	done chan struct{}
	once sync.Once
}

func (t *clockTicker) Stop() {
	t.once.Do(func() {
		close(t.done)
	})
}

// ClockScheduler schedules ticks on the wall clock.
var ClockScheduler Scheduler = SchedulerFunc(every)

func every(d time.Duration, fn func()) Ticker {
	t := &clockTicker{
		done: make(chan struct{}),
	}

	ticker := time.NewTicker(d)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				select {
				case <-t.done:
					return
				default:
				}

				fn()
			}
		}
	}()

	return t
}
