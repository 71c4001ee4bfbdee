package pulsenet

import "testing"

func conj(inputs int) *module {
	m := &module{label: "c", kind: KindConjunction}
	for i := 0; i < inputs; i++ {
		m.addInput(i + 1)
	}
	return m
}

func TestFlipFlop_roundTrip(t *testing.T) {
	for _, initial := range []bool{false, true} {
		m := &module{kind: KindFlipFlop, on: initial}
		if _, ok := m.receive(1, true); ok {
			t.Fatal("flip-flop emitted on high pulse")
		}
		if m.on != initial {
			t.Fatal("high pulse toggled flip-flop")
		}
		out, ok := m.receive(1, false)
		if !ok || out != !initial || m.on != !initial {
			t.Fatalf("first low: out=%v ok=%v on=%v", out, ok, m.on)
		}
		out, ok = m.receive(1, false)
		if !ok || out != initial || m.on != initial {
			t.Fatalf("second low: out=%v ok=%v on=%v", out, ok, m.on)
		}
	}
}

func TestBroadcast_forwards(t *testing.T) {
	m := &module{kind: KindBroadcast, outs: []int{1, 2, 3}}
	for _, lvl := range []bool{false, true, true, false} {
		out, ok := m.receive(0, lvl)
		if !ok || out != lvl {
			t.Fatalf("received %v, emitted %v (ok=%v)", lvl, out, ok)
		}
	}
}

func TestSink_absorbs(t *testing.T) {
	m := &module{kind: KindSink}
	for _, lvl := range []bool{false, true} {
		if _, ok := m.receive(1, lvl); ok {
			t.Fatalf("sink emitted on %v pulse", lvl)
		}
	}
}

// Drive every memory content of a 4 input conjunction and check that it emits
// low iff all remembered inputs are high.
func TestConjunction_nand(t *testing.T) {
	const inputs = 4
	m := conj(inputs)
	for v := 0; v < 1<<inputs; v++ {
		var out, ok bool
		for i := 0; i < inputs; i++ {
			out, ok = m.receive(i+1, v&(1<<uint(i)) != 0)
			if !ok {
				t.Fatal("conjunction did not emit")
			}
		}
		all := v == 1<<inputs-1
		if out == all {
			t.Fatalf("memory %04b: emitted %v", v, out)
		}
		for i := 0; i < inputs; i++ {
			if m.mem[i] != (v&(1<<uint(i)) != 0) {
				t.Fatalf("memory %04b: slot %d is %v", v, i, m.mem[i])
			}
		}
	}
}

func TestConjunction_duplicateInput(t *testing.T) {
	m := conj(2)
	m.addInput(1)
	if len(m.mem) != 2 || len(m.ins) != 2 {
		t.Fatalf("duplicate sender added: %d slots", len(m.mem))
	}
	m.receive(1, true)
	m.receive(2, true)
	m.reset()
	if m.highs != 0 || m.mem[0] || m.mem[1] {
		t.Fatal("reset did not clear memory")
	}
	if out, _ := m.receive(1, true); !out {
		t.Fatal("expected high after reset")
	}
}

func TestConjunction_unwired(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on pulse from unknown sender")
		}
	}()
	conj(1).receive(7, true)
}

func TestKind_String(t *testing.T) {
	for k, s := range map[Kind]string{KindSink: "sink", KindFlipFlop: "flip-flop", KindConjunction: "conjunction", Kind(42): "unknown"} {
		if k.String() != s {
			t.Fatalf("%d: got %q, expected %q", k, k.String(), s)
		}
	}
}
