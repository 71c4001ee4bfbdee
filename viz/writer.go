// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package viz renders pulse networks with Graphviz.
//
package viz

import (
	"io"
	"strconv"

	"github.com/db47h/pulsenet"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/pkg/errors"
)

// Font is a Graphviz font name.
//
type Font string

// Fonts.
const (
	Helvetica Font = "Helvetica"
	Courier   Font = "Courier"
	SansSerif Font = "sans-serif"
)

// RankDir is the Graphviz layout direction.
//
type RankDir string

// Layout directions.
const (
	LeftToRight RankDir = "LR"
	TopToBottom RankDir = "TB"
)

// Output formats.
const (
	DOT = graphviz.XDOT
	SVG = graphviz.SVG
	PNG = graphviz.PNG
)

// ParseFormat returns the output format named s: dot, svg or png.
//
func ParseFormat(s string) (graphviz.Format, error) {
	switch s {
	case "dot", "":
		return DOT, nil
	case "svg":
		return SVG, nil
	case "png":
		return PNG, nil
	}
	return "", errors.Errorf("unsupported output format %q", s)
}

// Config configures a Writer. The zero value renders top to bottom DOT with
// the default font.
//
type Config struct {
	Font
	RankDir
	Format graphviz.Format
}

// Writer renders networks.
//
type Writer struct {
	*Config
	g     *cgraph.Graph
	nodes []*cgraph.Node
}

// New returns a new Writer. A nil config is equivalent to an empty one.
//
func New(config *Config) *Writer {
	if config == nil {
		config = &Config{}
	}
	if config.Format == "" {
		config.Format = DOT
	}
	if config.RankDir == "" {
		config.RankDir = TopToBottom
	}
	return &Writer{Config: config}
}

var shapes = map[pulsenet.Kind]cgraph.Shape{
	pulsenet.KindButton:      cgraph.EllipseShape,
	pulsenet.KindBroadcast:   cgraph.DoubleCircleShape,
	pulsenet.KindFlipFlop:    cgraph.BoxShape,
	pulsenet.KindConjunction: cgraph.DiamondShape,
	pulsenet.KindSink:        cgraph.PlainTextShape,
}

func (w *Writer) writeModule(n *pulsenet.Network, label string) error {
	node, err := w.g.CreateNode(label)
	if err != nil {
		return errors.Wrap(err, "create node "+label)
	}
	k, _ := n.Kind(label)
	node.SetShape(shapes[k])
	node.SetLabel(label)
	if w.Font != "" {
		node.Set("fontname", string(w.Font))
	}
	w.nodes = append(w.nodes, node)
	return nil
}

// Flush renders n to out.
//
func (w *Writer) Flush(out io.Writer, n *pulsenet.Network) error {
	gv := graphviz.New()
	defer func() {
		_ = gv.Close()
	}()
	g, err := gv.Graph()
	if err != nil {
		return errors.Wrap(err, "new graph")
	}
	defer func() {
		_ = g.Close()
	}()
	g.SetRankDir(cgraph.RankDir(w.RankDir))
	w.g = g
	w.nodes = w.nodes[:0]

	labels := n.Labels()
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		pos[l] = i
		if err := w.writeModule(n, l); err != nil {
			return err
		}
	}
	e := 0
	for i, l := range labels {
		for _, o := range n.Outputs(l) {
			if _, err := g.CreateEdge("e"+strconv.Itoa(e), w.nodes[i], w.nodes[pos[o]]); err != nil {
				return errors.Wrap(err, "create edge "+l+" -> "+o)
			}
			e++
		}
	}
	if err := gv.Render(g, w.Format, out); err != nil {
		return errors.Wrap(err, "render")
	}
	return nil
}
