package kfield

// Package kfield models the finite field GF(p^m) as F_p[X]/(chi(X)) over a power
// basis. It is used to exhibit the residue field of each simple component: a monic
// irreducible chi of degree m is searched for and the arithmetic needed to check it
// (products, powers, Frobenius orbits) is provided.

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"math/bits"
	"strings"
)

// ErrNoIrreducible is returned when the search budget is exhausted.
var ErrNoIrreducible = errors.New("kfield: failed to find irreducible polynomial")

// Field describes GF(p^m) = F_p[X]/(Chi(X)).
type Field struct {
	P      uint64
	Degree int
	Chi    []uint64 // monic, len Degree+1, lowest coefficient first
}

// Elem is a field element given by its Degree coordinates in the power basis.
type Elem struct {
	Limb []uint64
}

// New builds GF(p^m) from chi. chi must be monic irreducible of degree m over F_p.
func New(p uint64, chi []uint64) (*Field, error) {
	if p < 2 {
		return nil, fmt.Errorf("kfield: characteristic must be >= 2")
	}
	if len(chi) < 2 {
		return nil, fmt.Errorf("kfield: chi must have positive degree")
	}
	norm := make([]uint64, len(chi))
	for i := range chi {
		norm[i] = chi[i] % p
	}
	if norm[len(norm)-1] != 1 {
		return nil, fmt.Errorf("kfield: chi must be monic")
	}
	if !isIrreducible(p, norm) {
		return nil, fmt.Errorf("kfield: chi is reducible")
	}
	return &Field{P: p, Degree: len(norm) - 1, Chi: norm}, nil
}

// FindIrreducible samples monic polynomials of degree m over F_p until an
// irreducible one is found. rnd drives the search; nil means crypto/rand.
func FindIrreducible(p uint64, m int, rnd io.Reader) ([]uint64, error) {
	if p < 2 || m <= 0 {
		return nil, fmt.Errorf("kfield: invalid p=%d or degree=%d", p, m)
	}
	if rnd == nil {
		rnd = rand.Reader
	}
	const maxTries = 1 << 16
	for try := 0; try < maxTries; try++ {
		chi := make([]uint64, m+1)
		chi[m] = 1
		// a zero constant term would leave X as a factor
		chi[0] = 1 + randU64(rnd)%(p-1)
		for i := 1; i < m; i++ {
			chi[i] = randU64(rnd) % p
		}
		if isIrreducible(p, chi) {
			return chi, nil
		}
	}
	return nil, ErrNoIrreducible
}

// Order returns p^m.
func (f *Field) Order() *big.Int {
	return new(big.Int).Exp(new(big.Int).SetUint64(f.P), big.NewInt(int64(f.Degree)), nil)
}

// Zero returns the additive identity.
func (f *Field) Zero() Elem {
	return Elem{Limb: make([]uint64, f.Degree)}
}

// One returns the multiplicative identity.
func (f *Field) One() Elem {
	e := f.Zero()
	e.Limb[0] = 1
	return e
}

// X returns the class of X, a generator of GF(p^m) over F_p.
func (f *Field) X() Elem {
	if f.Degree == 1 {
		// X = -chi_0 in F_p[X]/(X + chi_0)
		return f.Embed(modSub(0, f.Chi[0], f.P))
	}
	e := f.Zero()
	e.Limb[1] = 1
	return e
}

// Embed lifts an F_p element into the field.
func (f *Field) Embed(x uint64) Elem {
	e := f.Zero()
	e.Limb[0] = x % f.P
	return e
}

// Add returns a + b.
func (f *Field) Add(a, b Elem) Elem {
	out := f.Zero()
	for i := 0; i < f.Degree; i++ {
		out.Limb[i] = modAdd(a.Limb[i], b.Limb[i], f.P)
	}
	return out
}

// Mul multiplies schoolbook style and reduces modulo Chi.
func (f *Field) Mul(a, b Elem) Elem {
	prod := polyMul(poly(a.Limb), poly(b.Limb), f.P)
	rem := polyMod(prod, poly(f.Chi), f.P)
	out := f.Zero()
	copy(out.Limb, rem)
	return out
}

// Pow returns base^exp by square-and-multiply.
func (f *Field) Pow(base Elem, exp *big.Int) Elem {
	result := f.One()
	if exp == nil || exp.Sign() == 0 {
		return result
	}
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = f.Mul(result, result)
		if exp.Bit(i) == 1 {
			result = f.Mul(result, base)
		}
	}
	return result
}

// Frobenius returns e^p.
func (f *Field) Frobenius(e Elem) Elem {
	return f.Pow(e, new(big.Int).SetUint64(f.P))
}

// IsZero reports whether every coordinate of e vanishes.
func (f *Field) IsZero(e Elem) bool {
	for _, limb := range e.Limb {
		if limb%f.P != 0 {
			return false
		}
	}
	return true
}

// Equal compares two elements coordinate-wise.
func (f *Field) Equal(a, b Elem) bool {
	for i := 0; i < f.Degree; i++ {
		if a.Limb[i]%f.P != b.Limb[i]%f.P {
			return false
		}
	}
	return true
}

// ElementDegree returns the smallest k >= 1 with e^{p^k} = e, the degree of the
// subfield generated by e.
func (f *Field) ElementDegree(e Elem) int {
	cur := f.Frobenius(e)
	k := 1
	for !f.Equal(cur, e) {
		cur = f.Frobenius(cur)
		k++
	}
	return k
}

// String renders Chi as a polynomial in x, highest degree first.
func (f *Field) String() string {
	var terms []string
	for i := len(f.Chi) - 1; i >= 0; i-- {
		c := f.Chi[i]
		if c == 0 {
			continue
		}
		var mono string
		switch i {
		case 0:
			mono = ""
		case 1:
			mono = "x"
		default:
			mono = fmt.Sprintf("x^%d", i)
		}
		switch {
		case mono == "":
			terms = append(terms, fmt.Sprintf("%d", c))
		case c == 1:
			terms = append(terms, mono)
		default:
			terms = append(terms, fmt.Sprintf("%d*%s", c, mono))
		}
	}
	return strings.Join(terms, " + ")
}

// randU64 reads 8 bytes from r as a little-endian uint64.
func randU64(r io.Reader) uint64 {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		panic(err)
	}
	return uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
}

func modAdd(a, b, q uint64) uint64 {
	a %= q
	b %= q
	sum := a + b
	if sum >= q || sum < a {
		sum -= q
	}
	return sum
}

func modSub(a, b, q uint64) uint64 {
	a %= q
	b %= q
	if a >= b {
		return a - b
	}
	return a + q - b
}

func modMul(a, b, q uint64) uint64 {
	hi, lo := bits.Mul64(a%q, b%q)
	_, rem := bits.Div64(hi, lo, q)
	return rem
}

func modPow(a, e, q uint64) uint64 {
	result := uint64(1 % q)
	base := a % q
	for e > 0 {
		if e&1 == 1 {
			result = modMul(result, base, q)
		}
		e >>= 1
		base = modMul(base, base, q)
	}
	return result
}

// modInv relies on q being prime.
func modInv(a, q uint64) uint64 {
	if a%q == 0 {
		panic("kfield: inverse of zero")
	}
	return modPow(a, q-2, q)
}
