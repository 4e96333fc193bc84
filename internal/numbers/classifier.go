package numbers

import (
	"math/big"

	"github.com/Veraticus/number-classifier/internal/model"
)

// Classifier exposes the package functions as methods so callers can hold
// a classifier as a dependency. The zero value is ready to use.
type Classifier struct{}

// Classify returns the full classification of n. FunFact is left empty;
// it is filled in by whoever owns the fact fetcher.
func (Classifier) Classify(n int64) model.Classification {
	return Classify(n)
}

// Classify returns the full classification of n with an empty FunFact.
func Classify(n int64) model.Classification {
	return model.Classification{
		Number:     n,
		IsPrime:    IsPrime(n),
		IsPerfect:  IsPerfect(n),
		Properties: Properties(n),
		DigitSum:   DigitSum(n),
	}
}

// IsEven reports whether n is even. Go's % truncates toward zero, so the
// remainder of a negative odd number is -1 and the check holds for all n.
func IsEven(n int64) bool {
	return n%2 == 0
}

// IsPerfect reports whether n equals the sum of its proper divisors.
// Odd numbers are rejected without searching; no odd perfect number is known.
func IsPerfect(n int64) bool {
	if n <= 1 || !IsEven(n) {
		return false
	}
	return divisorSum(n) == n
}

// divisorSum returns the sum of the proper divisors of n, for n > 1.
func divisorSum(n int64) int64 {
	total := int64(1)
	for d := int64(2); d <= n/d; d++ {
		if n%d != 0 {
			continue
		}
		total += d
		if pair := n / d; pair != d {
			total += pair
		}
	}
	return total
}

// DigitSum returns the sum of the base-10 digits of |n|.
func DigitSum(n int64) int {
	sum := 0
	for m := magnitude(n); m != 0; m /= 10 {
		sum += int(m % 10)
	}
	return sum
}

// IsPrime reports whether n is prime using deterministic trial division
// over candidates of the form 6k±1.
func IsPrime(n int64) bool {
	switch {
	case n <= 1:
		return false
	case n == 2 || n == 3:
		return true
	case IsEven(n) || n%3 == 0:
		return false
	}

	for d := int64(5); d <= n/d; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}

// IsArmstrong reports whether n equals the sum of its digits each raised to
// the number of digits. The sign is not counted as a digit, so a negative n
// never qualifies.
func IsArmstrong(n int64) bool {
	if n < 0 {
		return false
	}

	digits := digitsOf(uint64(n))
	exp := big.NewInt(int64(len(digits)))

	sum := new(big.Int)
	term := new(big.Int)
	for _, d := range digits {
		term.Exp(big.NewInt(int64(d)), exp, nil)
		sum.Add(sum, term)
	}

	return sum.IsInt64() && sum.Int64() == n
}

// Properties returns the ordered property labels of n: the parity label
// first, followed by "armstrong" when it applies.
func Properties(n int64) []string {
	props := make([]string, 0, 2)
	if IsEven(n) {
		props = append(props, model.PropertyEven)
	} else {
		props = append(props, model.PropertyOdd)
	}
	if IsArmstrong(n) {
		props = append(props, model.PropertyArmstrong)
	}
	return props
}

// magnitude returns |n| as a uint64, which also covers math.MinInt64.
func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

// digitsOf returns the base-10 digits of m, least significant first.
// Zero has the single digit 0.
func digitsOf(m uint64) []uint8 {
	if m == 0 {
		return []uint8{0}
	}
	digits := make([]uint8, 0, 20)
	for ; m != 0; m /= 10 {
		digits = append(digits, uint8(m%10))
	}
	return digits
}
