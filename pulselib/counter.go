// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulselib provides a library of reusable sub-circuits for pulsenet.
//
package pulselib

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
)

// Hub is the label of the conjunction created by Machine to collect the
// counter outputs.
const Hub = "hub"

// Bit returns the label of bit i of the named counter.
//
func Bit(name string, i int) string {
	return name + "_" + strconv.Itoa(i)
}

// Input returns the label of the flip-flop that must receive the counter's
// clock pulses, usually from the broadcaster.
//
func Input(name string) string {
	return Bit(name, 0)
}

// Inverter returns a conjunction meant to have a single input. It emits the
// opposite of the last pulse received.
//
func Inverter(label, outputs string) pulsenet.Part {
	return pulsenet.Conjunction(label, outputs)
}

// Counter returns the parts of a ripple counter of flip-flops that resets
// itself every period low pulses received on Input(name).
//
//	Parts: %name_0 ... %name_k, &name
//	Function: &name sends a low pulse to out once every period clock pulses,
//	          and a high pulse on every other clock pulse.
//
// The counter has one flip-flop per significant bit of period. Bits set in
// period feed the conjunction, which in turn feeds the unset bits and bit 0
// so that the counter wraps to zero on reaching period.
//
// period must be odd and greater than 1.
//
func Counter(name string, period uint64, out string) ([]pulsenet.Part, error) {
	if name == "" {
		return nil, errors.New("empty counter name")
	}
	if period < 3 || period&1 == 0 {
		return nil, errors.Errorf("counter %s: period %d is not an odd number greater than 1", name, period)
	}
	n := bits.Len64(period)
	parts := make([]pulsenet.Part, 0, n+1)
	feedback := []string{Bit(name, 0)}
	for i := 0; i < n; i++ {
		var outs []string
		if i+1 < n {
			outs = append(outs, Bit(name, i+1))
		}
		if period&(1<<uint(i)) != 0 {
			outs = append(outs, name)
		} else {
			feedback = append(feedback, Bit(name, i))
		}
		parts = append(parts, pulsenet.FlipFlop(Bit(name, i), strings.Join(outs, ", ")))
	}
	feedback = append(feedback, out)
	parts = append(parts, pulsenet.Conjunction(name, strings.Join(feedback, ", ")))
	return parts, nil
}

// Machine returns the parts of a complete network made of one counter per
// period, all clocked by the broadcaster. Counter k is named "k<k>" and drives
// the inverter "i<k>". Every inverter feeds Hub, which outputs to sink.
//
// The inverters emit a high pulse every period presses, so the first press at
// which sink receives a low pulse is the least common multiple of the
// periods. Network.ActivationPress finds it without simulating every press.
//
func Machine(sink string, periods ...uint64) ([]pulsenet.Part, error) {
	if len(periods) == 0 {
		return nil, errors.New("no periods")
	}
	inputs := make([]string, len(periods))
	parts := []pulsenet.Part{{}}
	for k, p := range periods {
		name, inv := "k"+strconv.Itoa(k), "i"+strconv.Itoa(k)
		cp, err := Counter(name, p, inv)
		if err != nil {
			return nil, err
		}
		inputs[k] = Input(name)
		parts = append(parts, cp...)
		parts = append(parts, Inverter(inv, Hub))
	}
	parts[0] = pulsenet.Broadcaster(strings.Join(inputs, ", "))
	parts = append(parts, pulsenet.Conjunction(Hub, sink))
	return parts, nil
}

// Text returns the wiring text of parts, one record per line.
//
func Text(parts []pulsenet.Part) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
