// File: core/concurrency/gate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Gate is a reusable counting barrier. A fixed set of parties rendezvous at
// the gate, a controller observes that they all arrived, publishes a value
// and releases them together. A generation counter guarded by the gate mutex
// makes every release visible to each party that arrived before it.

package concurrency

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Gate synchronizes parties with a single controller.
// The controller side (Publish, AwaitReady, AwaitAll, Release) must be driven
// by one goroutine at a time.
type Gate[S comparable] struct {
	mu       sync.Mutex
	allReady *sync.Cond
	opened   *sync.Cond

	parties    int
	ready      int
	waiting    int
	generation uint64
	value      S
	released   S

	_    cpu.CacheLinePad
	hint atomic.Pointer[S]
}

// NewGate creates a gate for the given number of parties holding initial.
func NewGate[S comparable](parties int, initial S) *Gate[S] {
	if parties <= 0 {
		panic("concurrency: gate requires at least one party")
	}
	g := &Gate[S]{parties: parties}
	g.allReady = sync.NewCond(&g.mu)
	g.opened = sync.NewCond(&g.mu)
	g.setValue(initial)
	g.released = initial
	return g
}

// setValue requires g.mu.
func (g *Gate[S]) setValue(v S) {
	g.value = v
	g.hint.Store(&v)
}

// Arrive parks the caller until the next Release and returns the value passed
// to that Release. Values published afterwards, before the caller wakes, are
// not observed here.
func (g *Gate[S]) Arrive() S {
	g.mu.Lock()
	defer g.mu.Unlock()

	gen := g.generation
	g.ready++
	g.allReady.Signal()
	for gen == g.generation {
		g.opened.Wait()
	}
	return g.released
}

// AwaitReady blocks until at least n parties are parked at the gate.
func (g *Gate[S]) AwaitReady(n int) {
	g.mu.Lock()
	for g.ready < n {
		g.allReady.Wait()
	}
	g.mu.Unlock()
}

// AwaitAll blocks until every party is parked at the gate.
func (g *Gate[S]) AwaitAll() {
	g.AwaitReady(g.parties)
}

// Release publishes v and opens the gate for every parked party.
func (g *Gate[S]) Release(v S) {
	g.mu.Lock()
	g.setValue(v)
	g.released = v
	g.ready = 0
	g.generation++
	g.opened.Broadcast()
	g.mu.Unlock()
}

// Publish stores v without opening the gate and returns the number of parties
// currently between BeginWait and EndWait. The caller owes each of them a wake.
func (g *Gate[S]) Publish(v S) int {
	g.mu.Lock()
	g.setValue(v)
	w := g.waiting
	g.mu.Unlock()
	return w
}

// BeginWait registers the caller as about to block outside the gate and
// returns the published value.
func (g *Gate[S]) BeginWait() S {
	g.mu.Lock()
	g.waiting++
	v := g.value
	g.mu.Unlock()
	return v
}

// EndWait undoes BeginWait and returns the published value.
func (g *Gate[S]) EndWait() S {
	g.mu.Lock()
	g.waiting--
	v := g.value
	g.mu.Unlock()
	return v
}

// Waiting returns the number of parties between BeginWait and EndWait.
func (g *Gate[S]) Waiting() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.waiting
}

// Ready returns the number of parties parked at the gate.
func (g *Gate[S]) Ready() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ready
}

// Generation returns the number of releases so far.
func (g *Gate[S]) Generation() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generation
}

// Value returns the published value.
func (g *Gate[S]) Value() S {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.value
}

// Hint returns the published value without taking the mutex. It carries no
// ordering guarantee and must only be used to decide whether to keep spinning
// on work that is re-validated through the gate.
func (g *Gate[S]) Hint() S {
	return *g.hint.Load()
}

// Parties returns the party count fixed at construction.
func (g *Gate[S]) Parties() int {
	return g.parties
}
