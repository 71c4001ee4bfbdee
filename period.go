// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"math/bits"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// WatchedInputs returns the inputs of the single conjunction feeding sink.
// These are the labels whose activation periods determine when sink first
// receives a low pulse.
//
func (n *Network) WatchedInputs(sink string) ([]string, error) {
	s := n.lookup(sink)
	if s == nil {
		return nil, errors.New("unknown module " + strconv.Quote(sink))
	}
	if len(s.ins) != 1 {
		return nil, preconditionError("fed by "+strconv.Itoa(len(s.ins))+" modules, expected a single conjunction", sink)
	}
	c := &n.mods[s.ins[0]]
	if c.kind != KindConjunction {
		return nil, preconditionError("fed by "+c.kind.String()+" "+c.label+", expected a conjunction", sink)
	}
	return n.labels(c.ins), nil
}

// FindActivationPeriods presses the button until each watched module has
// emitted a high pulse, and returns for each label the index of the first
// press during which it did. Press indices start at 1 with the first press
// run by FindActivationPeriods, regardless of earlier presses.
//
// The recorded indices are only meaningful as periods if the network
// decomposes into independent sub-circuits, one per watched label (see the
// package documentation). FindActivationPeriods verifies this: the upstream
// cones of the watched labels must be disjoint, and each label must emit
// high again exactly at twice its first index. Pressing therefore continues
// past the first activations. If verification fails, or the press limit is
// reached, a *PreconditionError is returned.
//
// The network is left in the state reached by the last press.
//
func (n *Network) FindActivationPeriods(watched []string) (map[string]uint64, error) {
	if len(watched) == 0 {
		return nil, errors.New("no watched modules")
	}
	idx := make([]int, 0, len(watched))
	slot := make(map[int]int, len(watched))
	for _, l := range watched {
		i, ok := n.index[l]
		if !ok {
			return nil, errors.New("unknown module " + strconv.Quote(l))
		}
		if _, dup := slot[i]; dup {
			continue
		}
		slot[i] = len(idx)
		idx = append(idx, i)
	}
	if err := n.checkIndependent(idx); err != nil {
		n.log.Warn("period analysis aborted", zap.Error(err))
		return nil, err
	}

	first := make([]uint64, len(idx))
	second := make([]uint64, len(idx))
	start := n.presses
	var rel uint64
	hook := func(p pulse) {
		if !p.high {
			return
		}
		k, ok := slot[p.from]
		if !ok {
			return
		}
		switch {
		case first[k] == 0:
			first[k] = rel
			n.log.Debug("first activation", zap.String("module", n.mods[p.from].label), zap.Uint64("press", rel))
		case second[k] == 0 && rel > first[k]:
			second[k] = rel
		}
	}

	for {
		if rel >= n.limit {
			err := preconditionError("no verified period within "+strconv.FormatUint(n.limit, 10)+" presses",
				n.unverified(idx, first, second)...)
			n.log.Warn("period analysis aborted", zap.Error(err))
			return nil, err
		}
		rel = n.presses - start + 1
		n.press(hook)

		done := true
		for k := range idx {
			switch {
			case second[k] != 0:
				if second[k] != 2*first[k] {
					err := preconditionError("first activation at press "+strconv.FormatUint(first[k], 10)+
						", next at press "+strconv.FormatUint(second[k], 10), n.mods[idx[k]].label)
					n.log.Warn("period analysis aborted", zap.Error(err))
					return nil, err
				}
			case first[k] != 0 && rel >= 2*first[k]:
				err := preconditionError("no activation at press "+strconv.FormatUint(2*first[k], 10), n.mods[idx[k]].label)
				n.log.Warn("period analysis aborted", zap.Error(err))
				return nil, err
			default:
				done = false
			}
		}
		if done {
			break
		}
	}

	ps := make(map[string]uint64, len(idx))
	for k, i := range idx {
		ps[n.mods[i].label] = first[k]
	}
	n.log.Debug("activation periods verified", zap.Uint64("presses", rel), zap.Any("periods", ps))
	return ps, nil
}

func (n *Network) unverified(idx []int, first, second []uint64) []string {
	var ls []string
	for k, i := range idx {
		if first[k] == 0 || second[k] == 0 {
			ls = append(ls, n.mods[i].label)
		}
	}
	return ls
}

// ActivationPress returns the index of the first press at which the single
// conjunction feeding sink sees all of its inputs high, computed as the least
// common multiple of the activation periods of its inputs. The periods are
// returned as well.
//
func (n *Network) ActivationPress(sink string) (uint64, map[string]uint64, error) {
	ws, err := n.WatchedInputs(sink)
	if err != nil {
		return 0, nil, err
	}
	ps, err := n.FindActivationPeriods(ws)
	if err != nil {
		return 0, nil, err
	}
	vs := make([]uint64, 0, len(ws))
	for _, w := range ws {
		vs = append(vs, ps[w])
	}
	l, err := LCM(vs...)
	if err != nil {
		return 0, ps, err
	}
	return l, ps, nil
}

// LCM returns the least common multiple of the given values. It fails if any
// value is zero or if the result overflows an uint64. The LCM of no values is
// 1.
//
func LCM(values ...uint64) (uint64, error) {
	l := uint64(1)
	for _, v := range values {
		if v == 0 {
			return 0, errors.New("lcm of zero")
		}
		hi, lo := bits.Mul64(l/gcd(l, v), v)
		if hi != 0 {
			return 0, errors.Errorf("lcm overflows uint64 at %d", v)
		}
		l = lo
	}
	return l, nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
