/*
Package pulsenet simulates networks of pulse driven logic modules.

A network is described by newline separated wiring records:

	broadcaster -> a, b, c
	%a -> b
	%b -> c
	&inv -> a

The % prefix declares a flip-flop, & a conjunction, and the unprefixed
broadcaster forwards every pulse it receives. Labels that appear only as
outputs become sinks. A synthesized button module feeds the broadcaster.

Each call to Network.Press sends a low pulse from the button to the
broadcaster and delivers the resulting pulses in breadth first order until the
queue is empty:

	n, err := pulsenet.Load(wiring)
	if err != nil {
		// *ConfigError
	}
	c := n.Run(1000)
	fmt.Println(c.Low * c.High)

Period analysis

Some questions, such as the first press at which a sink receives a low pulse,
take far too many presses to answer by simulation. FindActivationPeriods and
ActivationPress answer them under the following assumption: the sink is fed
by a single conjunction, and each input of that conjunction is driven by an
independent sub-circuit that emits a high pulse periodically, first at press
p then every p presses. The first press at which the conjunction sees all its
inputs high is then the least common multiple of the periods.

This is a property of specific wirings, not of networks in general. The
analyzer checks it before returning a result: the upstream sub-circuits of
the watched labels must not share any module other than the button and the
broadcaster, and every watched label must emit high again exactly at twice
its first activation press. When the check fails a *PreconditionError is
returned and only direct simulation gives a correct answer, which may be
intractable.
*/
package pulsenet
