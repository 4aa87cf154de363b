package finbrief

import (
	"log"
	"time"
)

const limiterDoc = "ratelimit"

// Limiter is a token bucket gating outbound data-source calls. Tokens
// accumulate at a fixed rate up to the capacity; each permitted call
// consumes one. There is no blocking variant: callers must handle denial
// through the cache's stale-fallback path.
//
// When backed by a Store the bucket state survives across CLI invocations,
// so consecutive runs share the same call budget. With a nil store the
// bucket lives only for the current process.
type Limiter struct {
	store      Store
	capacity   float64
	refillRate float64 // tokens per second
	now        func() time.Time

	loaded bool
	state  limiterState
}

type limiterState struct {
	Tokens     float64   `json:"tokens"`
	LastRefill time.Time `json:"last_refill"`
}

// NewLimiter returns a limiter allowing calls permits per period.
// The bucket starts full.
func NewLimiter(store Store, calls int, period time.Duration) *Limiter {
	return &Limiter{
		store:      store,
		capacity:   float64(calls),
		refillRate: float64(calls) / period.Seconds(),
		now:        time.Now,
	}
}

// TryAcquire refills the bucket for the elapsed time and consumes one token
// if at least 1.0 is available. It never blocks; a denial is immediate.
func (l *Limiter) TryAcquire() bool {
	now := l.now()
	st := l.load(now)

	if elapsed := now.Sub(st.LastRefill).Seconds(); elapsed > 0 {
		st.Tokens = min(l.capacity, st.Tokens+elapsed*l.refillRate)
	}
	st.LastRefill = now

	ok := st.Tokens >= 1
	if ok {
		st.Tokens--
	}
	l.save(st)
	return ok
}

// Tokens reports the currently available tokens without consuming any.
func (l *Limiter) Tokens() float64 {
	now := l.now()
	st := l.load(now)
	if elapsed := now.Sub(st.LastRefill).Seconds(); elapsed > 0 {
		return min(l.capacity, st.Tokens+elapsed*l.refillRate)
	}
	return st.Tokens
}

func (l *Limiter) load(now time.Time) limiterState {
	if l.loaded {
		return l.state
	}
	l.loaded = true
	l.state = limiterState{Tokens: l.capacity, LastRefill: now}
	if l.store != nil {
		var st limiterState
		if err := l.store.Load(limiterDoc, &st); err == nil && st.Tokens >= 0 && st.Tokens <= l.capacity {
			l.state = st
		}
	}
	return l.state
}

func (l *Limiter) save(st limiterState) {
	l.state = st
	if l.store == nil {
		return
	}
	if err := l.store.Save(limiterDoc, st); err != nil {
		log.Printf("rate limiter state write err (ignored): %v", err)
	}
}
