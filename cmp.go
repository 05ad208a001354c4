package bigint

// Cmp compares x and n, returning -1 if x < n, 0 if x == n, or 1 if x > n.
// Signed layouts compare in two's complement order.
func (x Int[W]) Cmp(n Int[W]) int {
	x.check(n)
	if x.signed {
		xn, nn := x.IsNeg(), n.IsNeg()
		if xn != nn {
			if xn {
				return -1
			}
			return 1
		}
	}
	return x.ucmp(n)
}

// Equal reports whether x and n hold the same value.
func (x Int[W]) Equal(n Int[W]) bool {
	x.check(n)
	for i := range x.words {
		if x.words[i] != n.words[i] {
			return false
		}
	}
	return true
}

func (x Int[W]) GreaterThan(n Int[W]) bool      { return x.Cmp(n) > 0 }
func (x Int[W]) GreaterOrEqualTo(n Int[W]) bool { return x.Cmp(n) >= 0 }
func (x Int[W]) LessThan(n Int[W]) bool         { return x.Cmp(n) < 0 }
func (x Int[W]) LessOrEqualTo(n Int[W]) bool    { return x.Cmp(n) <= 0 }
