package algebra

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"qacode/numtheory"
	"qacode/prof"
)

// Pair holds the cyclotomic data of one divisor vector d.
// Nu is the common degree of the simple components attached to d and Eta
// the number of such components.
type Pair struct {
	Nu  uint64
	Eta *big.Int
}

// Nu returns lcm_i ord_{d_i}(q), with coordinates d_i = 1 contributing 1.
func Nu(q *big.Int, d []uint64) (uint64, error) {
	orders := make([]uint64, len(d))
	for i, di := range d {
		if di <= 1 {
			orders[i] = 1
			continue
		}
		o, err := numtheory.MultiplicativeOrder(q, di)
		if err != nil {
			return 0, err
		}
		orders[i] = o
	}
	return numtheory.LCM(orders...)
}

// CyclotomicPair computes (nu(d), eta(d)) where eta(d) = prod phi(d_i) / nu(d).
// A non-exact quotient is reported as *InternalInvariantError.
func CyclotomicPair(q *big.Int, d []uint64) (Pair, error) {
	nu, err := Nu(q, d)
	if err != nil {
		return Pair{}, err
	}
	num := big.NewInt(1)
	for _, di := range d {
		num.Mul(num, new(big.Int).SetUint64(numtheory.EulerTotient(di)))
	}
	return newPair(nu, num, d)
}

// newPair divides the totient product num by nu.
func newPair(nu uint64, num *big.Int, d []uint64) (Pair, error) {
	eta, rem := new(big.Int).QuoRem(num, new(big.Int).SetUint64(nu), new(big.Int))
	if rem.Sign() != 0 || eta.Sign() <= 0 {
		return Pair{}, &InternalInvariantError{
			Op:     "eta",
			Vector: append([]uint64(nil), d...),
			Detail: fmt.Sprintf("%s is not a positive multiple of nu=%d", num, nu),
		}
	}
	return Pair{Nu: nu, Eta: eta}, nil
}

// Eta returns only the multiplicity part of CyclotomicPair.
func Eta(q *big.Int, d []uint64) (*big.Int, error) {
	pr, err := CyclotomicPair(q, d)
	if err != nil {
		return nil, err
	}
	return pr.Eta, nil
}

// DivisorVectors enumerates the cartesian product of the divisor sets of
// radical. The first coordinate varies slowest.
func DivisorVectors(radical []uint64) [][]uint64 {
	sets, err := divisorSets(context.Background(), radical)
	if err != nil {
		panic(err)
	}
	var out [][]uint64
	_ = odometer(sets, func(idx []int) error {
		out = append(out, vectorAt(sets, idx))
		return nil
	})
	return out
}

// divisorSets factors every radical entry once and lists its divisors.
func divisorSets(ctx context.Context, radical []uint64) ([][]numtheory.Divisor, error) {
	sets := make([][]numtheory.Divisor, len(radical))
	for i, n := range radical {
		fs, err := numtheory.FactorizeContext(ctx, n)
		if err != nil {
			return nil, err
		}
		sets[i] = numtheory.DivisorsOf(fs)
	}
	return sets, nil
}

// odometer calls visit on every index vector into sets, last coordinate fastest,
// and stops at the first error.
func odometer(sets [][]numtheory.Divisor, visit func(idx []int) error) error {
	idx := make([]int, len(sets))
	for {
		if err := visit(idx); err != nil {
			return err
		}
		k := len(idx) - 1
		for k >= 0 {
			idx[k]++
			if idx[k] < len(sets[k]) {
				break
			}
			idx[k] = 0
			k--
		}
		if k < 0 {
			return nil
		}
	}
}

func vectorAt(sets [][]numtheory.Divisor, idx []int) []uint64 {
	vec := make([]uint64, len(idx))
	for i, j := range idx {
		vec[i] = sets[i][j].N
	}
	return vec
}

// cyclotomicPairs computes the pair of every divisor vector of radical in
// enumeration order. Orders and totients are taken from the factorizations of
// the radical entries, so each entry is factored once per call.
func cyclotomicPairs(ctx context.Context, q *big.Int, radical []uint64) ([]Pair, error) {
	defer prof.Track(time.Now(), "cyclotomicPairs")
	sets, err := divisorSets(ctx, radical)
	if err != nil {
		return nil, err
	}
	orders := numtheory.NewOrderTable(q)
	var pairs []Pair
	err = odometer(sets, func(idx []int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		ords := make([]uint64, len(idx))
		num := big.NewInt(1)
		for i, j := range idx {
			d := sets[i][j]
			o, err := orders.Order(ctx, d)
			if err != nil {
				return err
			}
			ords[i] = o
			num.Mul(num, new(big.Int).SetUint64(d.Totient()))
		}
		nu, err := numtheory.LCM(ords...)
		if err != nil {
			return err
		}
		pr, err := newPair(nu, num, vectorAt(sets, idx))
		if err != nil {
			return err
		}
		pairs = append(pairs, pr)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}
