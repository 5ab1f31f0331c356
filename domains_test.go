package enumdex_test

import (
	"github.com/vk/enumdex"
)

// Test fixtures. status and flavor are hand-written the same way enumgen
// emits sum-type domains, so the library tests double as a semantic check
// of the generated code shape.

// note is a three-value iota enum.
type note int

const (
	noteDo note = iota
	noteRe
	noteMi
)

var noteDomain = enumdex.Ordinal[note](3)

// status = {idle (unit), busy(Urgent bool)}; the worked example with
// cardinality 1 + 2 = 3.
type status interface{ isStatus() }

type idle struct{}

type busy struct{ Urgent bool }

func (idle) isStatus() {}
func (busy) isStatus() {}

const statusLen = 1 + 2

type statusDomain struct{}

func (statusDomain) Len() int { return statusLen }

func (statusDomain) Index(k status) int {
	switch k := k.(type) {
	case idle:
		return 0
	case busy:
		return 1 + enumdex.Bool.Index(k.Urgent)
	}
	panic("enumdex: invalid status value")
}

func (statusDomain) Value(i int) status {
	switch {
	case i < 1:
		return idle{}
	case i < 1+2:
		r := i - 1
		f0 := enumdex.Bool.Value(r)
		return busy{Urgent: f0}
	}
	panic("enumdex: index out of range for status")
}

// flavor = {plain (unit), mixed(N note, B bool)}; cardinality 1 + 3*2 = 7,
// with the last field varying fastest.
type flavor interface{ isFlavor() }

type plain struct{}

type mixed struct {
	N note
	B bool
}

func (plain) isFlavor() {}
func (mixed) isFlavor() {}

const flavorLen = 1 + 3*2

type flavorDomain struct{}

func (flavorDomain) Len() int { return flavorLen }

func (flavorDomain) Index(k flavor) int {
	switch k := k.(type) {
	case plain:
		return 0
	case mixed:
		return 1 + noteDomain.Index(k.N)*2 + enumdex.Bool.Index(k.B)
	}
	panic("enumdex: invalid flavor value")
}

func (flavorDomain) Value(i int) flavor {
	switch {
	case i < 1:
		return plain{}
	case i < 1+3*2:
		r := i - 1
		f1 := enumdex.Bool.Value(r % 2)
		r /= 2
		f0 := noteDomain.Value(r)
		return mixed{N: f0, B: f1}
	}
	panic("enumdex: index out of range for flavor")
}
