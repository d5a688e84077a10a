// Package led projects an Alp duration onto a 19-lamp virtual LED panel.
//
// State computation (which lamps are lit) and presentation (how a lamp is
// drawn) are separate layers: Project only produces booleans, StyleTable
// and Markup turn them into template markup.
package led

import (
	"github.com/cloudposse/alp/pkg/alptime"
)

// ID names one LED position, 'a' through 's'.
type ID byte

// LED positions.
const (
	A ID = 'a' + iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
)

// Count is the number of LEDs on the panel.
const Count = 19

// IDs lists every LED in order.
var IDs = []ID{A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P, Q, R, S}

// Lamps driven by the binary digits of each unit, most significant bit first.
var (
	hexalpLamps = []ID{A, B, C, D}
	qvalpLamps  = []ID{E, F}
	salpLamps   = []ID{G, H, I, J}
	talpLamps   = []ID{K, L, M, N}
)

// String returns the single-letter name of the LED.
func (id ID) String() string {
	return string(rune(id))
}

// Valid reports whether id is one of the 19 panel positions.
func (id ID) Valid() bool {
	return id >= A && id <= S
}

// State records which LEDs are lit.
type State struct {
	lit [Count]bool
}

// Lit reports whether the LED is lit. Unknown IDs are never lit.
func (s State) Lit(id ID) bool {
	if !id.Valid() {
		return false
	}
	return s.lit[id-A]
}

func (s *State) set(id ID, on bool) {
	s.lit[id-A] = on
}

// Project computes the LED state for d.
func Project(d alptime.Duration) State {
	var s State
	setBits(&s, hexalpLamps, d.Hexalp)
	setBits(&s, qvalpLamps, d.Qvalp)
	setBits(&s, salpLamps, d.Salp)
	setBits(&s, talpLamps, d.Talp)

	ring := SecondsRing(d.Second)
	for i, id := range []ID{O, P, Q, R, S} {
		s.set(id, ring[i])
	}
	return s
}

// setBits lights lamps[i] when bit (len-1-i) of value is set.
func setBits(s *State, lamps []ID, value int) {
	for i, id := range lamps {
		bit := len(lamps) - 1 - i
		s.set(id, value>>bit&1 == 1)
	}
}

// SecondsRing returns the lamps o, p, q, r, s for a 4-bit second value.
// The five lamps form a rotating indicator across the 16 seconds of a talp.
func SecondsRing(second int) [5]bool {
	q0 := second&1 != 0
	q1 := second&2 != 0
	q2 := second&4 != 0
	q3 := second&8 != 0

	o := q0 || q1
	p := q2 != q3
	r := !q2 && !q3

	valA := q3 || (q2 && o)
	valB := (!o && q2 && !q3) || (q3 && (o || q2))
	valC := (q3 && (q2 || !o)) || (q0 && q1 && r)
	valD := q1 && ((!q0 && !p) || (q0 && ((!q2 && q3) || q2)))
	valE := (!q0 && q1 && p) || (q0 && ((q2 && q3) || (!q1 && !q2 && !q3)))

	return [5]bool{valE, valD, valC, valB, valA}
}
