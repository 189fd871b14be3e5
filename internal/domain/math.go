package domain

import (
	"fmt"
	"math"
	"math/big"
)

// Input caps so a single request cannot burn unbounded CPU or memory.
const (
	factorialMaxInput = 100000
	primeMaxInput     = 100000000000000
	sieveMaxLimit     = 10000000
)

// Factorial returns n! as an arbitrary-precision integer.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: factorial is not defined for negative numbers", ErrMathOperation)
	}
	if n > factorialMaxInput {
		return nil, fmt.Errorf("%w: factorial input must not exceed %d", ErrMathOperation, factorialMaxInput)
	}

	result := big.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		result.Mul(result, big.NewInt(i))
	}
	return result, nil
}

// IsPrime reports whether n is prime using trial division by odd candidates.
// The cap bounds the division loop at ten million candidates and keeps i*i
// well away from integer overflow.
func IsPrime(n int) (bool, error) {
	if n > primeMaxInput {
		return false, fmt.Errorf("%w: prime check input must not exceed %d", ErrMathOperation, primeMaxInput)
	}
	if n < 2 {
		return false, nil
	}
	if n == 2 {
		return true, nil
	}
	if n%2 == 0 {
		return false, nil
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false, nil
		}
	}
	return true, nil
}

// Power returns base raised to exponent. Results outside the representable
// float64 range (NaN, ±Inf) are rejected as domain errors.
func Power(base, exponent float64) (float64, error) {
	result := math.Pow(base, exponent)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("%w: result of %g^%g is not a finite number", ErrMathOperation, base, exponent)
	}
	return result, nil
}

// PrimesUpTo returns all primes <= limit in ascending order using the
// Sieve of Eratosthenes. The limit must be at least 1; a limit of 1 yields
// an empty list.
func PrimesUpTo(limit int) ([]int, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1", ErrMathOperation)
	}
	if limit > sieveMaxLimit {
		return nil, fmt.Errorf("%w: limit must not exceed %d", ErrMathOperation, sieveMaxLimit)
	}

	composite := make([]bool, limit+1)
	primes := []int{}
	for i := 2; i <= limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return primes, nil
}
