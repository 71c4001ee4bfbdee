package pulsenet_test

import (
	"strings"
	"testing"

	pn "github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/pulsetest"
	"github.com/pkg/errors"
)

// Two independent counters feeding hf. The a-chain is a 2 bit counter that
// resets at 3, followed by a 3 stage inverter delay line. The b-chain is a 3
// bit counter that resets at 4.
const wiringCounters = `broadcaster -> a1, b1
%a1 -> a2, ca
%a2 -> ca
&ca -> a1, na
&na -> da
&da -> ia
&ia -> hf
%b1 -> b2
%b2 -> b3
%b3 -> cb
&cb -> b1, b2, b1, ib
&ib -> hf
&hf -> rx
`

func TestWatchedInputs(t *testing.T) {
	n := load(t, wiringCounters)
	ws, err := n.WatchedInputs("rx")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if strings.Join(ws, ",") != "ia,ib" {
		t.Fatalf("expected ia,ib got %v", ws)
	}

	td := []struct {
		name   string
		wiring string
		sink   string
	}{
		{"two feeders", "broadcaster -> a, b\n&a -> rx\n&b -> rx\n", "rx"},
		{"flip-flop feeder", "broadcaster -> a\n%a -> rx\n", "rx"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := load(t, d.wiring).WatchedInputs(d.sink)
			if !errors.Is(err, pn.ErrPreconditionViolated) {
				t.Fatalf("expected precondition error, got %v", err)
			}
			if _, ok := errors.Cause(err).(*pn.PreconditionError); !ok {
				t.Fatalf("expected *PreconditionError, got %T", errors.Cause(err))
			}
		})
	}
	if _, err := n.WatchedInputs("nope"); err == nil || errors.Is(err, pn.ErrPreconditionViolated) {
		t.Fatalf("expected unknown module error, got %v", err)
	}
}

func TestFindActivationPeriods(t *testing.T) {
	n := load(t, wiringCounters)
	ps, err := n.FindActivationPeriods([]string{"ia", "ib"})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(ps) != 2 || ps["ia"] != 3 || ps["ib"] != 4 {
		t.Fatalf("bad periods %v", ps)
	}
	// verification runs up to the second activation of the slowest input.
	if n.Presses() != 8 {
		t.Fatalf("expected 8 presses, got %d", n.Presses())
	}

	// indices are relative to the start of the analysis: 6 presses bring the
	// a-chain back to its initial state, 5 presses leave it out of phase.
	n.Reset()
	n.Run(6)
	ps, err = n.FindActivationPeriods([]string{"ia"})
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if ps["ia"] != 3 {
		t.Fatalf("expected period 3, got %v", ps)
	}
	n.Reset()
	n.Run(5)
	if _, err = n.FindActivationPeriods([]string{"ia"}); !errors.Is(err, pn.ErrPreconditionViolated) {
		t.Fatalf("expected precondition error out of phase, got %v", err)
	}
}

func TestActivationPress(t *testing.T) {
	n := load(t, wiringCounters)
	p, ps, err := n.ActivationPress("rx")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if p != 12 {
		t.Fatalf("expected 12, got %d (%v)", p, ps)
	}

	// compare with direct simulation on a fresh network.
	n = load(t, wiringCounters)
	r := pulsetest.Record(n)
	n.Run(p)
	first := r.FirstPress(func(p pn.Pulse) bool { return p.To == "rx" && !p.High })
	if first != p {
		t.Fatalf("direct simulation: rx first low at press %d, expected %d", first, p)
	}
}

func TestFindActivationPeriods_violations(t *testing.T) {
	td := []struct {
		name    string
		wiring  string
		watched []string
		limit   uint64
		reason  string
	}{
		{"shared sub-circuit", "broadcaster -> a\n%a -> c\n&c -> x, y\n&x -> hf\n&y -> hf\n&hf -> rx\n",
			[]string{"x", "y"}, 0, "share module c"},
		{"not periodic", "broadcaster -> a\n%a -> out\n", []string{"a"}, 0, "no activation at press 2"},
		{"never active", "broadcaster -> a\n%a -> out\n", []string{"broadcaster"}, 10, "within 10 presses"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			n := load(t, d.wiring, pn.WithPressLimit(d.limit))
			_, err := n.FindActivationPeriods(d.watched)
			if !errors.Is(err, pn.ErrPreconditionViolated) {
				t.Fatalf("expected precondition error, got %v", err)
			}
			if !strings.Contains(err.Error(), d.reason) {
				t.Fatalf("expected %q in %q", d.reason, err)
			}
		})
	}

	n := load(t, wiringCounters)
	if _, err := n.FindActivationPeriods(nil); err == nil {
		t.Fatal("expected error for empty watch list")
	}
	if _, err := n.FindActivationPeriods([]string{"nope"}); err == nil {
		t.Fatal("expected error for unknown label")
	}
}

func TestUpstream(t *testing.T) {
	n := load(t, wiringCounters)
	up := n.Upstream("ib")
	if up[0] != "ib" {
		t.Fatalf("cone must start with the module itself: %v", up)
	}
	in := make(map[string]bool)
	for _, l := range up {
		in[l] = true
	}
	for _, l := range []string{"cb", "b1", "b2", "b3", "broadcaster", "button"} {
		if !in[l] {
			t.Fatalf("%s missing from %v", l, up)
		}
	}
	for _, l := range []string{"a1", "ca", "ia", "hf"} {
		if in[l] {
			t.Fatalf("%s in %v", l, up)
		}
	}
	if g := n.Graph(); g.Nodes().Len() != n.Size() {
		t.Fatalf("graph has %d nodes, network %d", g.Nodes().Len(), n.Size())
	}
}

func TestLCM(t *testing.T) {
	td := []struct {
		in  []uint64
		out uint64
	}{
		{nil, 1},
		{[]uint64{3, 4}, 12},
		{[]uint64{4, 6}, 12},
		{[]uint64{3907, 3911, 3929, 4057}, 243566897206981},
	}
	for _, d := range td {
		l, err := pn.LCM(d.in...)
		if err != nil {
			t.Fatal(err)
		}
		if l != d.out {
			t.Fatalf("LCM(%v) = %d, expected %d", d.in, l, d.out)
		}
	}
	if _, err := pn.LCM(3, 0); err == nil {
		t.Fatal("expected error for zero")
	}
	if _, err := pn.LCM(1<<63, 3); err == nil {
		t.Fatal("expected overflow error")
	}
}
