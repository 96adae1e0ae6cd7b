package cryptography

import (
	"fmt"
	"math/big"
)

// Shared small constants. Treated as read-only by every function in this
// package.
var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
	big4 = big.NewInt(4)
)

// Gcd returns the greatest common divisor of a and b using the iterative
// Euclidean algorithm. The arguments are not modified. Gcd(0, 0) is 0.
func Gcd(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// ModularInverse returns the multiplicative inverse of a modulo m, computed
// with the iterative extended Euclidean algorithm and normalized into [0, m).
// The inverse exists exactly when Gcd(a, m) is 1; otherwise an error is
// returned. For m equal to 1 every integer is congruent, so the result is 0.
func ModularInverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil {
		return nil, fmt.Errorf("arguments cannot be nil")
	}
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("modulus must be positive, got %s", m)
	}
	if m.Cmp(big1) == 0 {
		return big.NewInt(0), nil
	}

	aa := new(big.Int).Mod(a, m)
	if g := Gcd(aa, m); g.Cmp(big1) != 0 {
		return nil, fmt.Errorf("no inverse of %s modulo %s: gcd is %s", a, m, g)
	}

	mm := new(big.Int).Set(m)
	x0 := big.NewInt(0)
	x1 := big.NewInt(1)
	q := new(big.Int)
	r := new(big.Int)
	t := new(big.Int)

	for aa.Cmp(big1) > 0 {
		q.QuoRem(aa, mm, r)
		aa.Set(mm)
		mm.Set(r)

		t.Mul(q, x0)
		t.Sub(x1, t)
		x1.Set(x0)
		x0.Set(t)
	}

	if x1.Sign() < 0 {
		x1.Add(x1, m)
	}
	return x1, nil
}
