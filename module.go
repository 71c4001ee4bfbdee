// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import "strconv"

// Kind is the behavioral variant of a module.
//
type Kind uint8

// Module kinds.
const (
	// KindSink is a label referenced as an output but never declared. It absorbs
	// every pulse.
	KindSink Kind = iota
	// KindBroadcast forwards every pulse unchanged.
	KindBroadcast
	// KindFlipFlop ignores high pulses and toggles on low ones.
	KindFlipFlop
	// KindConjunction remembers the last level received from each input and emits
	// the NAND of its memory.
	KindConjunction
	// KindButton is the synthesized press origin.
	KindButton
)

var kindNames = [...]string{
	KindSink:        "sink",
	KindBroadcast:   "broadcast",
	KindFlipFlop:    "flip-flop",
	KindConjunction: "conjunction",
	KindButton:      "button",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// module is a module record in the network arena. Wiring is resolved to arena
// indices at build time.
//
type module struct {
	label string
	kind  Kind
	outs  []int // destinations, in declaration order
	ins   []int // distinct senders, in discovery order

	// FlipFlop state.
	on bool

	// Conjunction state. slot maps a sender index to its position in ins and
	// mem.
	slot  map[int]int
	mem   []bool
	highs int // number of true values in mem
}

// addInput registers sender as an input of m. Duplicate senders are recorded
// once.
//
func (m *module) addInput(sender int) {
	if m.slot == nil {
		m.slot = make(map[int]int)
	}
	if _, ok := m.slot[sender]; ok {
		return
	}
	m.slot[sender] = len(m.ins)
	m.ins = append(m.ins, sender)
	if m.kind == KindConjunction {
		m.mem = append(m.mem, false)
	}
}

// receive delivers a pulse from sender to m and returns the level m emits to
// each of its outputs. ok is false if m emits nothing.
//
func (m *module) receive(sender int, high bool) (out bool, ok bool) {
	switch m.kind {
	case KindBroadcast, KindButton:
		return high, true
	case KindFlipFlop:
		if high {
			return false, false
		}
		m.on = !m.on
		return m.on, true
	case KindConjunction:
		i, known := m.slot[sender]
		if !known {
			// reverse scan covers every edge of the network.
			panic("pulse from " + strconv.Itoa(sender) + " not wired to conjunction " + m.label)
		}
		if m.mem[i] != high {
			if high {
				m.highs++
			} else {
				m.highs--
			}
			m.mem[i] = high
		}
		return m.highs != len(m.mem), true
	}
	return false, false
}

// reset restores the initial state: flip-flops off, conjunction memory low.
//
func (m *module) reset() {
	m.on = false
	for i := range m.mem {
		m.mem[i] = false
	}
	m.highs = 0
}
