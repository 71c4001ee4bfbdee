// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"io"
	"strings"

	"github.com/db47h/pulsenet/internal/netlist"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Reserved labels.
const (
	ButtonLabel      = "button"
	BroadcasterLabel = netlist.Broadcaster
)

// A Part is the blueprint of a declared module: its kind, label and a comma
// separated list of output labels.
//
// Parts are usually created with Broadcaster, FlipFlop or Conjunction:
//
//	n, err := pulsenet.New([]pulsenet.Part{
//		pulsenet.Broadcaster("a"),
//		pulsenet.FlipFlop("a", "inv, con"),
//		pulsenet.Conjunction("inv", "b"),
//		pulsenet.FlipFlop("b", "con"),
//		pulsenet.Conjunction("con", "output"),
//	})
//
type Part struct {
	Kind    Kind
	Label   string
	Outputs string

	line int
}

// Broadcaster returns the broadcaster part.
//
func Broadcaster(outputs string) Part {
	return Part{Kind: KindBroadcast, Label: BroadcasterLabel, Outputs: outputs}
}

// FlipFlop returns a flip-flop part.
//
func FlipFlop(label, outputs string) Part {
	return Part{Kind: KindFlipFlop, Label: label, Outputs: outputs}
}

// Conjunction returns a conjunction part.
//
func Conjunction(label, outputs string) Part {
	return Part{Kind: KindConjunction, Label: label, Outputs: outputs}
}

// String returns p in wiring text format.
//
func (p Part) String() string {
	var prefix string
	switch p.Kind {
	case KindFlipFlop:
		prefix = string(rune(netlist.FlipFlop))
	case KindConjunction:
		prefix = string(rune(netlist.Conjunction))
	}
	return prefix + p.Label + " " + netlist.Separator + " " + p.Outputs
}

// Load builds a network from its wiring description.
//
func Load(text string, opts ...Option) (*Network, error) {
	return Read(strings.NewReader(text), opts...)
}

// Read builds a network from the wiring description read from r.
//
func Read(r io.Reader, opts ...Option) (*Network, error) {
	rs, err := netlist.Parse(r)
	if err != nil {
		if se, ok := errors.Cause(err).(*netlist.SyntaxError); ok {
			return nil, configError(se.Line, se.Input, errors.New(se.Msg))
		}
		return nil, err
	}
	parts := make([]Part, len(rs))
	for i, rec := range rs {
		k := KindBroadcast
		switch rec.Prefix {
		case netlist.FlipFlop:
			k = KindFlipFlop
		case netlist.Conjunction:
			k = KindConjunction
		}
		parts[i] = Part{Kind: k, Label: rec.Label, Outputs: strings.Join(rec.Outputs, ", "), line: rec.Line}
	}
	return New(parts, opts...)
}

// New builds a network from the given parts. Output labels that are not
// declared by any part become sinks, unless the Strict option is set.
//
// Conjunction memories are fully populated before New returns: each
// conjunction has one low entry per distinct module listing it as an output.
//
func New(parts []Part, opts ...Option) (*Network, error) {
	cfg := newConfig(opts)
	n := &Network{
		mods:  make([]module, 1, len(parts)+1),
		index: make(map[string]int, len(parts)+1),
		log:   cfg.log,
		limit: cfg.limit,
	}
	n.mods[0] = module{label: ButtonLabel, kind: KindButton}
	n.index[ButtonLabel] = 0

	outs := make([][]string, len(parts))
	n.bcast = -1
	for i, p := range parts {
		switch p.Kind {
		case KindBroadcast:
			if p.Label != BroadcasterLabel {
				return nil, configError(p.line, p.String(), errors.New("broadcast module must be labeled "+BroadcasterLabel))
			}
		case KindFlipFlop, KindConjunction:
			if p.Label == BroadcasterLabel {
				return nil, configError(p.line, p.String(), errors.New(BroadcasterLabel+" cannot be a "+p.Kind.String()))
			}
		default:
			return nil, configError(p.line, p.String(), errors.Errorf("cannot declare a %s module", p.Kind))
		}
		if p.Label == ButtonLabel {
			return nil, configError(p.line, p.String(), errors.New("label "+ButtonLabel+" is reserved"))
		}
		if _, dup := n.index[p.Label]; dup {
			return nil, configError(p.line, p.String(), errors.New("duplicate declaration of "+p.Label))
		}
		if !netlist.ValidLabel(p.Label) {
			return nil, configError(p.line, p.String(), errors.New("invalid label"))
		}
		labels, err := netlist.SplitLabels(p.Outputs)
		if err != nil {
			return nil, configError(p.line, p.String(), err)
		}
		if len(labels) == 0 {
			return nil, configError(p.line, p.String(), errors.New("empty output list"))
		}
		outs[i] = labels
		n.index[p.Label] = len(n.mods)
		if p.Kind == KindBroadcast {
			n.bcast = len(n.mods)
		}
		n.mods = append(n.mods, module{label: p.Label, kind: p.Kind})
	}
	if n.bcast < 0 {
		return nil, configError(0, "", errors.New("no "+BroadcasterLabel+" declared"))
	}
	n.declared = len(n.mods)

	// resolve outputs, adding sinks in order of first reference.
	n.mods[0].outs = []int{n.bcast}
	for i, labels := range outs {
		m := i + 1
		dst := make([]int, len(labels))
		for j, o := range labels {
			if o == ButtonLabel {
				return nil, configError(parts[i].line, parts[i].String(), errors.New("cannot output to "+ButtonLabel))
			}
			k, ok := n.index[o]
			if !ok {
				if cfg.strict {
					return nil, errors.WithStack(&UnknownDestinationError{Label: o, From: parts[i].Label})
				}
				k = len(n.mods)
				n.index[o] = k
				n.mods = append(n.mods, module{label: o, kind: KindSink})
			}
			dst[j] = k
		}
		n.mods[m].outs = dst
	}

	// reverse scan: record every sender of every module. This fills
	// conjunction memories with one low entry per input.
	for i := range n.mods {
		for _, o := range n.mods[i].outs {
			n.mods[o].addInput(i)
		}
	}

	n.log.Debug("network built",
		zap.Int("declared", n.declared-1),
		zap.Int("sinks", len(n.mods)-n.declared))
	return n, nil
}
