package numtheory

// Package numtheory implements the small integer routines behind the group algebra
// decomposition: p-adic splitting, divisors, Euler's totient, multiplicative orders
// and least common multiples. All routines work on uint64 inputs; products that can
// outgrow a machine word are reported as ErrOverflow instead of wrapping.

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"sort"

	"github.com/tuneinsight/lattigo/v4/ring"
)

var (
	// ErrNotCoprime is returned by MultiplicativeOrder when gcd(q, n) != 1.
	ErrNotCoprime = errors.New("numtheory: base and modulus are not coprime")
	// ErrOverflow is returned when a result does not fit in a uint64.
	ErrOverflow = errors.New("numtheory: uint64 overflow")
	// ErrZeroModulus is returned when a modulus of zero is supplied.
	ErrZeroModulus = errors.New("numtheory: modulus must be positive")
)

// PrimePower is a single factor p^e of an integer factorization.
type PrimePower struct {
	Prime    uint64
	Exponent int
}

// PadicValuation returns the exponent of p in n. It returns 0 when p does not divide n.
// n must be at least 1 and p at least 2.
func PadicValuation(p, n uint64) int {
	if p < 2 {
		panic("numtheory: valuation base must be >= 2")
	}
	if n == 0 {
		panic("numtheory: valuation of zero")
	}
	v := 0
	for n%p == 0 {
		n /= p
		v++
	}
	return v
}

// SplitPadic separates n into its p-coprime part and its p-power part, so that
// n == coprime * ppart and ppart == p^{v_p(n)}.
func SplitPadic(p, n uint64) (coprime, ppart uint64) {
	v := PadicValuation(p, n)
	ppart = 1
	for i := 0; i < v; i++ {
		ppart *= p
	}
	return n / ppart, ppart
}

// Divisor is a positive divisor together with its factorization.
type Divisor struct {
	N       uint64
	Factors []PrimePower
}

// Totient returns phi(d.N) from the factorization.
func (d Divisor) Totient() uint64 {
	phi := d.N
	for _, pp := range d.Factors {
		phi = phi / pp.Prime * (pp.Prime - 1)
	}
	return phi
}

// trialBound is the largest trial divisor; cofactors left after it are split with
// Pollard's rho.
const trialBound = 1 << 10

// Factorize returns the prime factorization of n in increasing prime order.
// Factorize(1) is empty.
func Factorize(n uint64) []PrimePower {
	fs, err := FactorizeContext(context.Background(), n)
	if err != nil {
		panic(err)
	}
	return fs
}

// FactorizeContext is Factorize with ctx checked between splitting rounds.
func FactorizeContext(ctx context.Context, n uint64) ([]PrimePower, error) {
	if n == 0 {
		panic("numtheory: factorization of zero")
	}
	counts := make(map[uint64]int)
	if e := trailingTwos(&n); e > 0 {
		counts[2] = e
	}
	for f := uint64(3); f <= trialBound && f <= n/f; f += 2 {
		for n%f == 0 {
			n /= f
			counts[f]++
		}
	}
	// a composite left here has only prime factors above trialBound
	stack := []uint64{n}
	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case m == 1:
			continue
		case m <= trialBound*trialBound || IsPrime(m):
			counts[m]++
			continue
		}
		d, err := pollardRho(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("numtheory: factorize %d: %w", m, err)
		}
		stack = append(stack, d, m/d)
	}
	return sortedPowers(counts), nil
}

func sortedPowers(counts map[uint64]int) []PrimePower {
	out := make([]PrimePower, 0, len(counts))
	for p, e := range counts {
		out = append(out, PrimePower{Prime: p, Exponent: e})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prime < out[j].Prime })
	return out
}

func trailingTwos(n *uint64) int {
	e := bits.TrailingZeros64(*n)
	*n >>= uint(e)
	return e
}

// pollardRho returns a non-trivial factor of the odd composite n using Brent's
// cycle detection, moving to the next polynomial x^2 + c when a round fails.
func pollardRho(ctx context.Context, n uint64) (uint64, error) {
	for c := uint64(1); ; c++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		d, err := brent(ctx, n, c%n)
		if err != nil {
			return 0, err
		}
		if d != 1 && d != n {
			return d, nil
		}
	}
}

func brent(ctx context.Context, n, c uint64) (uint64, error) {
	const batch = 128
	f := func(x uint64) uint64 { return addMod(mulMod(x, x, n), c, n) }
	y, r, q, g := uint64(2), uint64(1), uint64(1), uint64(1)
	var x, ys uint64
	for g == 1 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		x = y
		for i := uint64(0); i < r; i++ {
			y = f(y)
		}
		for k := uint64(0); k < r && g == 1; k += batch {
			ys = y
			for i := uint64(0); i < min(batch, r-k); i++ {
				y = f(y)
				q = mulMod(q, absDiff(x, y), n)
			}
			g = GCD(q, n)
		}
		r <<= 1
	}
	if g == n {
		// the batch overshot; replay it one step at a time
		for {
			ys = f(ys)
			if g = GCD(absDiff(x, ys), n); g > 1 {
				break
			}
		}
	}
	return g, nil
}

func mulMod(a, b, n uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, n)
	return rem
}

func addMod(a, b, n uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= n {
		s -= n
	}
	return s
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// DivisorsOf lists the divisors of the number factored as fs, sorted, each with
// its own factorization.
func DivisorsOf(fs []PrimePower) []Divisor {
	divs := []Divisor{{N: 1}}
	for _, pp := range fs {
		cur := len(divs)
		mult := uint64(1)
		for e := 1; e <= pp.Exponent; e++ {
			mult *= pp.Prime
			for i := 0; i < cur; i++ {
				base := divs[i]
				factors := append(append([]PrimePower(nil), base.Factors...), PrimePower{Prime: pp.Prime, Exponent: e})
				divs = append(divs, Divisor{N: base.N * mult, Factors: factors})
			}
		}
	}
	sort.Slice(divs, func(i, j int) bool { return divs[i].N < divs[j].N })
	return divs
}

// Divisors returns the sorted positive divisors of n, including 1 and n.
func Divisors(n uint64) []uint64 {
	ds := DivisorsOf(Factorize(n))
	out := make([]uint64, len(ds))
	for i, d := range ds {
		out[i] = d.N
	}
	return out
}

// EulerTotient counts the integers in [1, n] coprime to n.
func EulerTotient(n uint64) uint64 {
	return Divisor{N: n, Factors: Factorize(n)}.Totient()
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM reduces xs with the least common multiple, starting from 1.
func LCM(xs ...uint64) (uint64, error) {
	acc := uint64(1)
	for _, x := range xs {
		if x == 0 {
			return 0, fmt.Errorf("numtheory: lcm of zero")
		}
		step := x / GCD(acc, x)
		hi, lo := bits.Mul64(acc, step)
		if hi != 0 {
			return 0, fmt.Errorf("numtheory: lcm(%d, %d): %w", acc, x, ErrOverflow)
		}
		acc = lo
	}
	return acc, nil
}

// MulChecked returns a*b or ErrOverflow.
func MulChecked(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("numtheory: %d*%d: %w", a, b, ErrOverflow)
	}
	return lo, nil
}

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	return ring.IsPrime(n)
}

// barrettLimit bounds the moduli handed to lattigo's Barrett-reduced exponentiation.
const barrettLimit = 1 << 61

// PowMod returns x^e mod m.
func PowMod(x, e, m uint64) uint64 {
	if m == 0 {
		panic("numtheory: PowMod with zero modulus")
	}
	if m == 1 {
		return 0
	}
	if m < barrettLimit {
		return ring.ModExp(x%m, e, m)
	}
	r := new(big.Int).Exp(new(big.Int).SetUint64(x), new(big.Int).SetUint64(e), new(big.Int).SetUint64(m))
	return r.Uint64()
}

// ReduceBig returns q mod n for an arbitrary-precision q.
func ReduceBig(q *big.Int, n uint64) uint64 {
	if n == 0 {
		panic("numtheory: reduction modulo zero")
	}
	return new(big.Int).Mod(q, new(big.Int).SetUint64(n)).Uint64()
}

// MultiplicativeOrder returns the smallest k >= 1 with q^k = 1 (mod n).
// By convention the order modulo 1 is 1.
func MultiplicativeOrder(q *big.Int, n uint64) (uint64, error) {
	if n == 0 {
		return 0, ErrZeroModulus
	}
	ctx := context.Background()
	fs, err := FactorizeContext(ctx, n)
	if err != nil {
		return 0, err
	}
	return NewOrderTable(q).Order(ctx, Divisor{N: n, Factors: fs})
}

// OrderTable computes multiplicative orders of one base modulo many factored
// moduli. phi(d) is factored from d's primes, and each p-1 is factored once.
type OrderTable struct {
	q       *big.Int
	pMinus1 map[uint64][]PrimePower
	orders  map[uint64]uint64
}

// NewOrderTable returns an empty table for base q.
func NewOrderTable(q *big.Int) *OrderTable {
	return &OrderTable{
		q:       q,
		pMinus1: make(map[uint64][]PrimePower),
		orders:  make(map[uint64]uint64),
	}
}

// Order returns ord_{d.N}(q), or ErrNotCoprime when gcd(q, d.N) != 1.
func (t *OrderTable) Order(ctx context.Context, d Divisor) (uint64, error) {
	if d.N == 1 {
		return 1, nil
	}
	if o, ok := t.orders[d.N]; ok {
		return o, nil
	}
	r := ReduceBig(t.q, d.N)
	if GCD(r, d.N) != 1 {
		return 0, fmt.Errorf("numtheory: order of %s mod %d: %w", t.q, d.N, ErrNotCoprime)
	}
	phiFactors, err := t.totientFactors(ctx, d)
	if err != nil {
		return 0, err
	}
	// The order divides phi(n); strip prime factors while the power stays 1.
	order := d.Totient()
	for _, pp := range phiFactors {
		for e := 0; e < pp.Exponent; e++ {
			if PowMod(r, order/pp.Prime, d.N) != 1 {
				break
			}
			order /= pp.Prime
		}
	}
	t.orders[d.N] = order
	return order, nil
}

// totientFactors factors phi(d) = prod p^(e-1) (p-1).
func (t *OrderTable) totientFactors(ctx context.Context, d Divisor) ([]PrimePower, error) {
	counts := make(map[uint64]int)
	for _, pp := range d.Factors {
		counts[pp.Prime] += pp.Exponent - 1
		fs, ok := t.pMinus1[pp.Prime]
		if !ok {
			var err error
			if fs, err = FactorizeContext(ctx, pp.Prime-1); err != nil {
				return nil, err
			}
			t.pMinus1[pp.Prime] = fs
		}
		for _, f := range fs {
			counts[f.Prime] += f.Exponent
		}
	}
	for p, e := range counts {
		if e == 0 {
			delete(counts, p)
		}
	}
	return sortedPowers(counts), nil
}
