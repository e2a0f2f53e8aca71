package algebra

import (
	"fmt"
	"math/big"
)

// DimensionSum returns sum(c.Dim() * c.Count) over the components of g, or
// g.Dim when g is local.
func (g *GroupAlgebra) DimensionSum() *big.Int {
	if g.IsLocal {
		return new(big.Int).Set(g.Dim)
	}
	sum := new(big.Int)
	for _, c := range g.Components {
		sum.Add(sum, new(big.Int).Mul(c.Dim(), c.Count))
	}
	return sum
}

// Verify checks the bookkeeping of a decomposition:
//
//   - the component dimensions add up to Dim,
//   - sum(Count * Degree) equals the product of the radical factors,
//   - sum(Count) equals Complexity,
//   - every component is local, and has trivial group part when g is semisimple.
func (g *GroupAlgebra) Verify() error {
	if g.IsLocal {
		if g.Components != nil || g.Complexity.Cmp(big.NewInt(1)) != 0 {
			return g.violation("local algebra carries a decomposition")
		}
		return nil
	}
	if s := g.DimensionSum(); s.Cmp(g.Dim) != 0 {
		return g.violation(fmt.Sprintf("component dimensions sum to %s, want %s", s, g.Dim))
	}
	weighted, count := new(big.Int), new(big.Int)
	for _, c := range g.Components {
		weighted.Add(weighted, new(big.Int).Mul(c.Count, new(big.Int).SetUint64(c.Degree)))
		count.Add(count, c.Count)
		if !c.Algebra.IsLocal {
			return g.violation(fmt.Sprintf("component %s is not local", c.Algebra))
		}
		if g.IsSemisimple && !isTrivial(c.Algebra.Param) {
			return g.violation(fmt.Sprintf("semisimple algebra has component %s", c.Algebra))
		}
	}
	if r := g.RadicalOrder(); weighted.Cmp(r) != 0 {
		return g.violation(fmt.Sprintf("sum(count*degree)=%s, want %s", weighted, r))
	}
	if count.Cmp(g.Complexity) != 0 {
		return g.violation(fmt.Sprintf("sum(count)=%s, want complexity %s", count, g.Complexity))
	}
	return nil
}

func (g *GroupAlgebra) violation(detail string) error {
	return &InternalInvariantError{Op: "verify " + g.String(), Detail: detail}
}
