// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Graph returns the wiring topology as a directed graph. Node IDs are arena
// indices: the ID of the module labeled l is the position of l in Labels().
// Self loops are omitted.
//
func (n *Network) Graph() *simple.DirectedGraph {
	return n.graph(false)
}

func (n *Network) graph(reverse bool) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for i := range n.mods {
		g.AddNode(simple.Node(i))
	}
	for i := range n.mods {
		for _, o := range n.mods[i].outs {
			if o == i {
				continue
			}
			from, to := simple.Node(i), simple.Node(o)
			if reverse {
				from, to = to, from
			}
			g.SetEdge(simple.Edge{F: from, T: to})
		}
	}
	return g
}

// Upstream returns the labels of all modules from which the named module can
// be reached, the module itself included, in breadth first order.
//
func (n *Network) Upstream(label string) []string {
	i, ok := n.index[label]
	if !ok {
		return nil
	}
	return n.labels(n.cones(n.graph(true), i))
}

func (n *Network) cones(rg *simple.DirectedGraph, from int) []int {
	var cone []int
	bf := traverse.BreadthFirst{
		Visit: func(v graph.Node) { cone = append(cone, int(v.ID())) },
	}
	bf.Walk(rg, simple.Node(from), nil)
	return cone
}

// checkIndependent verifies that the upstream cones of the given modules do
// not overlap, ignoring the button and the broadcaster which feed everything.
//
func (n *Network) checkIndependent(watched []int) error {
	rg := n.graph(true)
	owner := make(map[int]int, len(n.mods))
	for _, w := range watched {
		for _, m := range n.cones(rg, w) {
			if m == 0 || m == n.bcast {
				continue
			}
			if o, seen := owner[m]; seen && o != w {
				return preconditionError("upstream sub-circuits share module "+n.mods[m].label,
					n.mods[o].label, n.mods[w].label)
			}
			owner[m] = w
		}
	}
	return nil
}
