package kfield

// Dense F_p[X] helpers, lowest coefficient first. Results are trimmed so the
// zero polynomial is poly{0}.

type poly []uint64

func polyTrim(p poly, q uint64) poly {
	if len(p) == 0 {
		return poly{0}
	}
	idx := len(p) - 1
	for idx > 0 && p[idx]%q == 0 {
		idx--
	}
	out := make(poly, idx+1)
	for i := 0; i <= idx; i++ {
		out[i] = p[i] % q
	}
	return out
}

func polyIsZero(p poly) bool {
	return len(p) == 1 && p[0] == 0
}

func polySub(a, b poly, q uint64) poly {
	n := max(len(a), len(b))
	out := make(poly, n)
	for i := 0; i < n; i++ {
		var ai, bi uint64
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		out[i] = modSub(ai, bi, q)
	}
	return polyTrim(out, q)
}

func polyMul(a, b poly, q uint64) poly {
	if len(a) == 0 || len(b) == 0 {
		return poly{0}
	}
	out := make(poly, len(a)+len(b)-1)
	for i := range a {
		if a[i]%q == 0 {
			continue
		}
		for j := range b {
			if b[j]%q == 0 {
				continue
			}
			out[i+j] = modAdd(out[i+j], modMul(a[i], b[j], q), q)
		}
	}
	return polyTrim(out, q)
}

func polyDivMod(a, b poly, q uint64) (poly, poly) {
	A := polyTrim(a, q)
	B := polyTrim(b, q)
	if polyIsZero(B) {
		panic("kfield: divide by zero polynomial")
	}
	if len(A) < len(B) {
		return poly{0}, A
	}
	rem := make(poly, len(A))
	copy(rem, A)
	quotient := make(poly, len(A)-len(B)+1)
	invLead := modInv(B[len(B)-1], q)
	for i := len(A) - 1; i >= len(B)-1; i-- {
		coeff := rem[i]
		if coeff != 0 {
			coeff = modMul(coeff, invLead, q)
			quotient[i-(len(B)-1)] = coeff
			for j := 0; j < len(B); j++ {
				rem[i-j] = modSub(rem[i-j], modMul(coeff, B[len(B)-1-j], q), q)
			}
		}
	}
	if len(B) == 1 {
		return polyTrim(quotient, q), poly{0}
	}
	return polyTrim(quotient, q), polyTrim(rem[:len(B)-1], q)
}

func polyMod(a, b poly, q uint64) poly {
	_, r := polyDivMod(a, b, q)
	return r
}

func polyGCD(a, b poly, q uint64) poly {
	A := polyTrim(a, q)
	B := polyTrim(b, q)
	for !polyIsZero(B) {
		A, B = B, polyMod(A, B, q)
	}
	inv := modInv(A[len(A)-1], q)
	for i := range A {
		A[i] = modMul(A[i], inv, q)
	}
	return A
}

func polyPowMod(base poly, exp uint64, modulus poly, q uint64) poly {
	result := poly{1}
	b := polyMod(base, modulus, q)
	for exp > 0 {
		if exp&1 == 1 {
			result = polyMod(polyMul(result, b, q), modulus, q)
		}
		exp >>= 1
		if exp > 0 {
			b = polyMod(polyMul(b, b, q), modulus, q)
		}
	}
	return polyMod(result, modulus, q)
}

// isIrreducible runs Ben-Or's test: f of degree n over F_q is irreducible iff
// gcd(X^{q^i} - X, f) = 1 for i <= n/2 and X^{q^n} = X mod f.
func isIrreducible(q uint64, f poly) bool {
	f = polyTrim(f, q)
	if len(f) <= 1 {
		return false
	}
	n := len(f) - 1
	x := polyMod(poly{0, 1}, f, q)
	xp := x
	for i := 1; i <= n/2; i++ {
		xp = polyPowMod(xp, q, f, q)
		if g := polyGCD(polySub(xp, x, q), f, q); len(g) > 1 {
			return false
		}
	}
	xp = x
	for i := 0; i < n; i++ {
		xp = polyPowMod(xp, q, f, q)
	}
	return polyIsZero(polySub(xp, x, q))
}
