package ids

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestGeneratorSequence(tst *testing.T) {
	chk.PrintTitle("GeneratorSequence")

	g := NewGenerator()
	chk.Int(tst, "current before any Next", int(g.Current()), 1)

	a := g.Next()
	b := g.Next()
	c := g.Next()
	chk.Int(tst, "a", int(a), 1)
	chk.Int(tst, "b", int(b), 2)
	chk.Int(tst, "c", int(c), 3)
	chk.Int(tst, "current after three Next", int(g.Current()), 4)
}

func TestGeneratorResetAndUnset(tst *testing.T) {
	chk.PrintTitle("GeneratorResetAndUnset")

	if Unset.Valid() {
		tst.Errorf("Unset must not be Valid")
	}
	id := ID(7)
	if !id.Valid() {
		tst.Errorf("non-zero ID must be Valid")
	}

	g := NewGenerator()
	g.Next()
	g.Next()
	g.Reset()
	chk.Int(tst, "current after reset", int(g.Current()), 1)
	chk.Int(tst, "first id after reset", int(g.Next()), 1)
}
