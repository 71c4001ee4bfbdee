package pulsetest_test

import (
	"testing"

	pn "github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/pulsetest"
)

const loop = "broadcaster -> a, b, c\n%a -> b\n%b -> c\n%c -> inv\n&inv -> a\n"

func TestCompareNetworks(t *testing.T) {
	n1, err := pn.Load(loop)
	if err != nil {
		t.Fatal(err)
	}
	n2, err := pn.New([]pn.Part{
		pn.Broadcaster("a, b, c"),
		pn.FlipFlop("a", "b"),
		pn.FlipFlop("b", "c"),
		pn.FlipFlop("c", "inv"),
		pn.Conjunction("inv", "a"),
	})
	if err != nil {
		t.Fatal(err)
	}
	pulsetest.CompareNetworks(t, 4, n1, n2)
}

func TestRecorder(t *testing.T) {
	n, err := pn.Load(loop)
	if err != nil {
		t.Fatal(err)
	}
	r := pulsetest.Record(n)
	n.Press()
	if len(r.Events) != 12 {
		t.Fatalf("recorded %d pulses, expected 12", len(r.Events))
	}
	if s := r.Sent("broadcaster"); len(s) != 3 {
		t.Fatalf("broadcaster sent %d pulses, expected 3", len(s))
	}
	rc := r.Received("inv")
	if len(rc) != 2 || !rc[0].High || rc[1].High || rc[0].Press != 1 || rc[1].Press != 1 {
		t.Fatalf("inv received %v, expected a high then a low pulse in press 1", rc)
	}
	if rc[0].From != "c" || rc[1].From != "c" {
		t.Fatalf("inv received %v, expected pulses from c", rc)
	}
	if p := r.FirstPress(func(p pn.Pulse) bool { return p.To == "a" && p.High }); p != 0 {
		t.Fatalf("a received a high pulse during press %d", p)
	}
	r.Reset()
	r.Stop()
	n.Press()
	if len(r.Events) != 0 {
		t.Fatalf("stopped recorder got %d events", len(r.Events))
	}
}
