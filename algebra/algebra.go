// Package algebra computes the Wedderburn decomposition of the group algebra
// F_q[G] of a finite abelian group G over a finite field F_q, q = p^t.
//
// The group is given by its invariant factors, G = Z/n_1 + ... + Z/n_k. Each n_i
// splits into a p-coprime part and a p-power part. The coprime parts govern how
// F_q[G] breaks into simple components (through the q-cyclotomic cosets of their
// divisors), while the p-power parts survive unchanged inside every component as a
// local algebra. If no n_i is divisible by p the algebra is semisimple; if every
// n_i is a power of p it is local and Analyze stops there.
package algebra

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"

	"qacode/numtheory"
	"qacode/prof"
)

var log = logging.Logger("algebra")

// GroupAlgebra is the analyzed algebra F_q[G]. It is immutable once returned.
type GroupAlgebra struct {
	P     uint64
	T     uint64
	Param []uint64

	Dim            *big.Int
	RadicalParam   []uint64
	LocalizedParam []uint64
	IsLocal        bool
	IsSemisimple   bool

	// Complexity counts the simple components with multiplicity; 1 when local.
	Complexity *big.Int
	// Components is nil when IsLocal.
	Components []Component
}

// Component is one distinct simple factor together with its multiplicity.
type Component struct {
	Algebra *GroupAlgebra
	Count   *big.Int
	// Degree is [GF(p^Algebra.T) : GF(p^parent.T)].
	Degree uint64
}

// Dim is the dimension of one copy of the component over the parent's field.
func (c Component) Dim() *big.Int {
	return new(big.Int).Mul(c.Algebra.Dim, new(big.Int).SetUint64(c.Degree))
}

// Analyze decomposes F_q[G] for q = p^t and G = Z/param[0] + ... + Z/param[k-1].
func Analyze(ctx context.Context, p, t int64, param []int64, opts ...Option) (*GroupAlgebra, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	if p < 2 {
		return nil, &DomainError{Field: "p", Value: strconv.FormatInt(p, 10), Err: ErrBadCharacteristic}
	}
	if t < 1 {
		return nil, &DomainError{Field: "t", Value: strconv.FormatInt(t, 10), Err: ErrBadDegree}
	}
	factors := make([]uint64, len(param))
	for i, n := range param {
		if n < 1 {
			return nil, &DomainError{Field: fmt.Sprintf("param[%d]", i), Value: strconv.FormatInt(n, 10), Err: ErrBadFactor}
		}
		factors[i] = uint64(n)
	}
	if !numtheory.IsPrime(uint64(p)) {
		if o.validatePrime {
			return nil, &DomainError{Field: "p", Value: strconv.FormatInt(p, 10), Err: ErrNotPrime}
		}
		log.Warnf("characteristic %d is not prime; GF(%d^%d) is not a field", p, p, t)
	}
	return analyze(ctx, &o, uint64(p), uint64(t), factors)
}

func analyze(ctx context.Context, o *options, p, t uint64, param []uint64) (*GroupAlgebra, error) {
	defer prof.Track(time.Now(), "analyze")

	g := &GroupAlgebra{
		P:     p,
		T:     t,
		Param: append([]uint64(nil), param...),
		Dim:   product(param),
	}
	g.RadicalParam, g.LocalizedParam = splitParam(p, param)
	g.IsLocal = isTrivial(g.RadicalParam)
	g.IsSemisimple = isTrivial(g.LocalizedParam)

	if g.IsLocal {
		g.Complexity = big.NewInt(1)
		return g, nil
	}

	pairs, err := cyclotomicPairs(ctx, g.qModRadical(), g.RadicalParam)
	if err != nil {
		return nil, g.wrap(err)
	}
	g.Complexity = new(big.Int)
	for _, pr := range pairs {
		g.Complexity.Add(g.Complexity, pr.Eta)
	}

	comps, err := g.components(ctx, o, pairs)
	if err != nil {
		return nil, err
	}
	g.Components = comps

	log.Debugw("decomposed", "algebra", g.String(), "vectors", len(pairs),
		"complexity", g.Complexity.String(), "distinct", len(comps))
	return g, nil
}

// components builds one sub-algebra per distinct nu and merges the multiplicities.
func (g *GroupAlgebra) components(ctx context.Context, o *options, pairs []Pair) ([]Component, error) {
	defer prof.Track(time.Now(), "components")

	// distinct degrees in first-appearance order
	var degrees []uint64
	slot := make(map[uint64]int)
	for _, pr := range pairs {
		if _, ok := slot[pr.Nu]; !ok {
			slot[pr.Nu] = len(degrees)
			degrees = append(degrees, pr.Nu)
		}
	}

	subs := make([]*GroupAlgebra, len(degrees))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.parallelism)
	for i, nu := range degrees {
		i, nu := i, nu
		eg.Go(func() error {
			tnu, err := numtheory.MulChecked(g.T, nu)
			if err != nil {
				return &DomainError{Field: "t", Value: strconv.FormatUint(g.T, 10), Err: ErrOverflow}
			}
			sub, err := analyze(egctx, o, g.P, tnu, g.LocalizedParam)
			if err != nil {
				return err
			}
			subs[i] = sub
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []Component
	index := make(map[Key]int)
	for _, pr := range pairs {
		sub := subs[slot[pr.Nu]]
		k := sub.Key()
		if j, ok := index[k]; ok {
			out[j].Count.Add(out[j].Count, pr.Eta)
			continue
		}
		index[k] = len(out)
		out = append(out, Component{Algebra: sub, Count: new(big.Int).Set(pr.Eta), Degree: pr.Nu})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count.Cmp(out[j].Count) > 0 })
	return out, nil
}

// wrap maps order failures caused by a composite characteristic, and lcm overflow,
// onto DomainError.
func (g *GroupAlgebra) wrap(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, numtheory.ErrNotCoprime):
		return &DomainError{Field: "p", Value: strconv.FormatUint(g.P, 10), Err: fmt.Errorf("%w: %v", ErrNotPrime, err)}
	case errors.Is(err, numtheory.ErrOverflow):
		return &DomainError{Field: "param", Value: g.paramString(), Err: fmt.Errorf("%w: %v", ErrOverflow, err)}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("algebra: analyze %s: %w", g, err)
	}
	return err
}

// Q returns the field size p^t.
func (g *GroupAlgebra) Q() *big.Int {
	return new(big.Int).Exp(new(big.Int).SetUint64(g.P), new(big.Int).SetUint64(g.T), nil)
}

// qModRadical reduces q modulo the product of the radical factors. Every divisor
// vector coordinate divides that product, so orders computed from it agree with
// orders of q itself while t stays unbounded.
func (g *GroupAlgebra) qModRadical() *big.Int {
	m := g.RadicalOrder()
	return new(big.Int).Exp(new(big.Int).SetUint64(g.P), new(big.Int).SetUint64(g.T), m)
}

// Key returns the structural identity of g.
func (g *GroupAlgebra) Key() Key {
	return keyOf(g.P, g.T, g.Param)
}

// Equal reports whether g and other describe the same algebra.
func (g *GroupAlgebra) Equal(other *GroupAlgebra) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.Key() == other.Key()
}

// RadicalOrder is the product of the p-coprime parts of the invariant factors.
func (g *GroupAlgebra) RadicalOrder() *big.Int {
	return product(g.RadicalParam)
}

// String renders g as GF(p^t)[n_1, ..., n_k].
func (g *GroupAlgebra) String() string {
	return fmt.Sprintf("GF(%d^%d)[%s]", g.P, g.T, g.paramString())
}

func (g *GroupAlgebra) paramString() string {
	parts := make([]string, len(g.Param))
	for i, n := range g.Param {
		parts[i] = strconv.FormatUint(n, 10)
	}
	return strings.Join(parts, ", ")
}

// splitParam returns the p-coprime and p-power parts of every factor, dropping
// trivial entries; an empty result becomes [1].
func splitParam(p uint64, param []uint64) (radical, localized []uint64) {
	for _, n := range param {
		c, pp := numtheory.SplitPadic(p, n)
		if c > 1 {
			radical = append(radical, c)
		}
		if pp > 1 {
			localized = append(localized, pp)
		}
	}
	if len(radical) == 0 {
		radical = []uint64{1}
	}
	if len(localized) == 0 {
		localized = []uint64{1}
	}
	return radical, localized
}

func isTrivial(param []uint64) bool {
	return len(param) == 1 && param[0] == 1
}

func product(xs []uint64) *big.Int {
	out := big.NewInt(1)
	for _, x := range xs {
		out.Mul(out, new(big.Int).SetUint64(x))
	}
	return out
}
