package algebra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tuneinsight/lattigo/v4/utils"

	"qacode/internal/kfield"
	"qacode/numtheory"
	"qacode/prof"
)

// ErrWitnessTooLarge is returned when a residue field exceeds the requested degree.
var ErrWitnessTooLarge = errors.New("algebra: residue field degree exceeds witness limit")

// Witness pairs a local algebra with an explicit model of its residue field
// GF(p^T) = F_p[x]/(chi).
type Witness struct {
	Algebra *GroupAlgebra
	Field   *kfield.Field
}

// ResidueField finds a monic irreducible polynomial of degree g.T over F_p and
// returns the field it defines. The search is seeded by g's fingerprint, so the
// same algebra always yields the same polynomial.
func ResidueField(g *GroupAlgebra, maxDegree int) (*kfield.Field, error) {
	defer prof.Track(time.Now(), "residueField")
	if !g.IsLocal {
		return nil, fmt.Errorf("algebra: %s is not local", g)
	}
	if !numtheory.IsPrime(g.P) {
		return nil, &DomainError{Field: "p", Value: fmt.Sprint(g.P), Err: ErrNotPrime}
	}
	if g.T > uint64(maxDegree) {
		return nil, fmt.Errorf("%w: degree %d > %d", ErrWitnessTooLarge, g.T, maxDegree)
	}
	prng, err := utils.NewKeyedPRNG(g.Key().digest(32))
	if err != nil {
		return nil, fmt.Errorf("algebra: seed witness search: %w", err)
	}
	chi, err := kfield.FindIrreducible(g.P, int(g.T), prng)
	if err != nil {
		return nil, fmt.Errorf("algebra: witness for %s: %w", g, err)
	}
	f, err := kfield.New(g.P, chi)
	if err != nil {
		return nil, fmt.Errorf("algebra: witness for %s: %w", g, err)
	}
	// X must generate the whole residue field
	if deg := f.ElementDegree(f.X()); uint64(deg) != g.T {
		return nil, &InternalInvariantError{
			Op:     "witness",
			Detail: fmt.Sprintf("%s: x generates GF(%d^%d), want degree %d", g, g.P, deg, g.T),
		}
	}
	return f, nil
}

// Witnesses returns a residue field model for every component of g, in
// component order, or for g itself when g is local.
func Witnesses(ctx context.Context, g *GroupAlgebra, maxDegree int) ([]Witness, error) {
	targets := []*GroupAlgebra{g}
	if !g.IsLocal {
		targets = targets[:0]
		for _, c := range g.Components {
			targets = append(targets, c.Algebra)
		}
	}
	out := make([]Witness, 0, len(targets))
	for _, a := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := ResidueField(a, maxDegree)
		if err != nil {
			return nil, err
		}
		log.Debugw("witness", "algebra", a.String(), "chi", f.String())
		out = append(out, Witness{Algebra: a, Field: f})
	}
	return out, nil
}
