// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import "strconv"

// A Pulse is a single low or high signal sent by module From to module To.
//
type Pulse struct {
	From string
	To   string
	High bool
}

func (p Pulse) String() string {
	lvl := "low"
	if p.High {
		lvl = "high"
	}
	return p.From + " -" + lvl + "-> " + p.To
}

// pulse is a queued pulse between arena indices.
//
type pulse struct {
	from, to int
	high     bool
}

// Counts tallies delivered pulses by level.
//
type Counts struct {
	Low  uint64
	High uint64
}

// Add returns the sum of c and o.
//
func (c Counts) Add(o Counts) Counts {
	return Counts{Low: c.Low + o.Low, High: c.High + o.High}
}

// Total returns the total number of pulses.
//
func (c Counts) Total() uint64 { return c.Low + c.High }

// Product returns Low * High.
//
func (c Counts) Product() uint64 { return c.Low * c.High }

func (c Counts) String() string {
	return "low=" + strconv.FormatUint(c.Low, 10) + " high=" + strconv.FormatUint(c.High, 10)
}

// A Probe observes every pulse delivered during a press. press is the 1-based
// index of the current press. Probes must not modify the network.
//
type Probe func(press uint64, p Pulse)

type probeEntry struct {
	id int
	fn Probe
}

// AddProbe registers a probe and returns a function that removes it.
//
func (n *Network) AddProbe(p Probe) (remove func()) {
	n.probeID++
	id := n.probeID
	n.probes = append(n.probes, probeEntry{id, p})
	return func() {
		for i := range n.probes {
			if n.probes[i].id == id {
				n.probes = append(n.probes[:i], n.probes[i+1:]...)
				return
			}
		}
	}
}

// Press pushes the button once and delivers pulses breadth first until none
// remain. It returns the number of low and high pulses delivered.
//
func (n *Network) Press() Counts {
	return n.press(nil)
}

// Run presses the button count times and returns the cumulative pulse counts.
//
func (n *Network) Run(count uint64) Counts {
	var c Counts
	for i := uint64(0); i < count; i++ {
		c = c.Add(n.press(nil))
	}
	return c
}

// press runs one press. hook, if not nil, sees each pulse before delivery.
//
func (n *Network) press(hook func(pulse)) Counts {
	n.presses++
	var c Counts
	q := append(n.queue[:0], pulse{from: 0, to: n.bcast})
	for h := 0; h < len(q); h++ {
		p := q[h]
		if p.high {
			c.High++
		} else {
			c.Low++
		}
		if hook != nil {
			hook(p)
		}
		if len(n.probes) > 0 {
			n.notify(p)
		}
		dst := &n.mods[p.to]
		lvl, ok := dst.receive(p.from, p.high)
		if !ok {
			continue
		}
		for _, o := range dst.outs {
			q = append(q, pulse{from: p.to, to: o, high: lvl})
		}
	}
	n.queue = q[:0]
	return c
}

func (n *Network) notify(p pulse) {
	pp := Pulse{From: n.mods[p.from].label, To: n.mods[p.to].label, High: p.high}
	for _, e := range n.probes {
		e.fn(n.presses, pp)
	}
}
