// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulsetest provides utility functions for testing pulse networks.
//
package pulsetest

import (
	"testing"

	"github.com/db47h/pulsenet"
)

// Event is a pulse observed during a given press.
//
type Event struct {
	Press uint64
	pulsenet.Pulse
}

// Recorder records every pulse delivered in a network.
//
type Recorder struct {
	Events []Event
	remove func()
}

// Record attaches a new Recorder to n.
//
func Record(n *pulsenet.Network) *Recorder {
	r := new(Recorder)
	r.remove = n.AddProbe(func(press uint64, p pulsenet.Pulse) {
		r.Events = append(r.Events, Event{press, p})
	})
	return r
}

// Stop detaches the recorder from its network.
//
func (r *Recorder) Stop() {
	if r.remove != nil {
		r.remove()
		r.remove = nil
	}
}

// Reset clears recorded events.
//
func (r *Recorder) Reset() { r.Events = r.Events[:0] }

// Sent returns the recorded pulses sent by the named module.
//
func (r *Recorder) Sent(from string) []Event {
	var es []Event
	for _, e := range r.Events {
		if e.From == from {
			es = append(es, e)
		}
	}
	return es
}

// Received returns the recorded pulses delivered to the named module.
//
func (r *Recorder) Received(to string) []Event {
	var es []Event
	for _, e := range r.Events {
		if e.To == to {
			es = append(es, e)
		}
	}
	return es
}

// FirstPress returns the index of the first press during which a pulse
// matching fn was delivered, or 0 if there is none.
//
func (r *Recorder) FirstPress(fn func(pulsenet.Pulse) bool) uint64 {
	for _, e := range r.Events {
		if fn(e.Pulse) {
			return e.Press
		}
	}
	return 0
}

// CompareNetworks presses the button of both networks the given number of
// times and checks that they deliver the same pulses in the same order.
//
func CompareNetworks(t *testing.T, presses int, n1, n2 *pulsenet.Network) {
	t.Helper()

	r1, r2 := Record(n1), Record(n2)
	defer r1.Stop()
	defer r2.Stop()

	for i := 0; i < presses; i++ {
		c1, c2 := n1.Press(), n2.Press()
		if c1 != c2 {
			t.Fatalf("press %d: counts %v != %v", i+1, c1, c2)
		}
		if len(r1.Events) != len(r2.Events) {
			t.Fatalf("press %d: %d pulses != %d pulses", i+1, len(r1.Events), len(r2.Events))
		}
		for k := range r1.Events {
			if r1.Events[k] != r2.Events[k] {
				t.Fatalf("press %d, pulse %d: %v != %v", i+1, k, r1.Events[k].Pulse, r2.Events[k].Pulse)
			}
		}
		r1.Reset()
		r2.Reset()
	}
}
