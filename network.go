// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"strings"

	"go.uber.org/zap"
)

// Network is a runnable pulse network simulation.
//
// Module records live in a single arena indexed by integers. Index 0 is the
// synthesized button; declared modules follow in declaration order, then the
// implicit sinks in order of first reference.
//
// A Network is not safe for concurrent use.
//
type Network struct {
	mods     []module
	index    map[string]int
	bcast    int // broadcaster index
	declared int // mods[:declared] are the button and the declared modules

	presses uint64
	queue   []pulse
	probes  []probeEntry
	probeID int

	log   *zap.Logger
	limit uint64
}

// Size returns the number of modules in the network, button and sinks
// included.
//
func (n *Network) Size() int { return len(n.mods) }

// Presses returns the number of presses run since the network was built or
// last reset.
//
func (n *Network) Presses() uint64 { return n.presses }

// Reset restores every module to its initial state and clears the press
// counter. Probes are kept.
//
func (n *Network) Reset() {
	for i := range n.mods {
		n.mods[i].reset()
	}
	n.presses = 0
}

// Labels returns all module labels in arena order, starting with the button.
//
func (n *Network) Labels() []string {
	ls := make([]string, len(n.mods))
	for i := range n.mods {
		ls[i] = n.mods[i].label
	}
	return ls
}

func (n *Network) lookup(label string) *module {
	i, ok := n.index[label]
	if !ok {
		return nil
	}
	return &n.mods[i]
}

// Kind returns the kind of the named module.
//
func (n *Network) Kind(label string) (Kind, bool) {
	m := n.lookup(label)
	if m == nil {
		return 0, false
	}
	return m.kind, true
}

// Outputs returns the output labels of the named module in declaration order.
//
func (n *Network) Outputs(label string) []string {
	m := n.lookup(label)
	if m == nil {
		return nil
	}
	return n.labels(m.outs)
}

// Inputs returns the labels of all distinct modules listing the named module
// as an output.
//
func (n *Network) Inputs(label string) []string {
	m := n.lookup(label)
	if m == nil {
		return nil
	}
	return n.labels(m.ins)
}

func (n *Network) labels(idx []int) []string {
	if len(idx) == 0 {
		return nil
	}
	ls := make([]string, len(idx))
	for i, k := range idx {
		ls[i] = n.mods[k].label
	}
	return ls
}

// FlipFlopOn returns the state of the named flip-flop. ok is false if there is
// no such flip-flop.
//
func (n *Network) FlipFlopOn(label string) (on bool, ok bool) {
	m := n.lookup(label)
	if m == nil || m.kind != KindFlipFlop {
		return false, false
	}
	return m.on, true
}

// Memory returns a copy of the input memory of the named conjunction, or nil
// if there is no such conjunction.
//
func (n *Network) Memory(label string) map[string]bool {
	m := n.lookup(label)
	if m == nil || m.kind != KindConjunction {
		return nil
	}
	mem := make(map[string]bool, len(m.mem))
	for i, s := range m.ins {
		mem[n.mods[s].label] = m.mem[i]
	}
	return mem
}

// Parts returns the parts the network was built from.
//
func (n *Network) Parts() []Part {
	ps := make([]Part, 0, n.declared-1)
	for i := 1; i < n.declared; i++ {
		m := &n.mods[i]
		ps = append(ps, Part{Kind: m.kind, Label: m.label, Outputs: strings.Join(n.labels(m.outs), ", ")})
	}
	return ps
}

// String returns the network wiring in text format, one declaration per
// line. Loading the result yields an identical topology.
//
func (n *Network) String() string {
	var b strings.Builder
	for _, p := range n.Parts() {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String()
}
