package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathgate/internal/domain"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "1"},
		{1, "1"},
		{5, "120"},
		{10, "3628800"},
		{20, "2432902008176640000"},
		{25, "15511210043330985984000000"},
	}

	for _, tt := range tests {
		result, err := domain.Factorial(tt.n)
		require.NoError(t, err, "factorial(%d)", tt.n)
		assert.Equal(t, tt.want, result.String(), "factorial(%d)", tt.n)
	}
}

func TestFactorial_Negative(t *testing.T) {
	_, err := domain.Factorial(-5)
	require.ErrorIs(t, err, domain.ErrMathOperation)
}

func TestFactorial_TooLarge(t *testing.T) {
	_, err := domain.Factorial(100001)
	require.ErrorIs(t, err, domain.ErrMathOperation)
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{15, false},
		{17, true},
		{25, false},
		{7919, true},
		{7921, false},
	}

	for _, tt := range tests {
		got, err := domain.IsPrime(tt.n)
		require.NoError(t, err, "is_prime(%d)", tt.n)
		assert.Equal(t, tt.want, got, "is_prime(%d)", tt.n)
	}
}

func TestIsPrime_InputCap(t *testing.T) {
	// At the cap the check still completes; the boundary value itself is even.
	got, err := domain.IsPrime(100000000000000)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = domain.IsPrime(100000000000001)
	require.ErrorIs(t, err, domain.ErrMathOperation)

	// A Mersenne prime far beyond the cap must be rejected, not ground
	// through billions of trial divisions.
	_, err = domain.IsPrime(2305843009213693951)
	require.ErrorIs(t, err, domain.ErrMathOperation)
}

func TestPower(t *testing.T) {
	result, err := domain.Power(9.0, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, result, 1e-9)

	result, err = domain.Power(2.0, 10.0)
	require.NoError(t, err)
	assert.InDelta(t, 1024.0, result, 1e-9)

	result, err = domain.Power(0.0, 0.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result, 1e-9)
}

func TestPower_DomainErrors(t *testing.T) {
	// 0 to a negative power diverges.
	_, err := domain.Power(0.0, -1.0)
	require.ErrorIs(t, err, domain.ErrMathOperation)

	// Negative base with fractional exponent has no real result.
	_, err = domain.Power(-8.0, 0.5)
	require.ErrorIs(t, err, domain.ErrMathOperation)

	// Overflow past float64 range.
	_, err = domain.Power(10.0, 400.0)
	require.ErrorIs(t, err, domain.ErrMathOperation)
}

func TestPrimesUpTo(t *testing.T) {
	primes, err := domain.PrimesUpTo(20)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19}, primes)

	primes, err = domain.PrimesUpTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, primes)

	primes, err = domain.PrimesUpTo(1)
	require.NoError(t, err)
	assert.Empty(t, primes)
	assert.NotNil(t, primes)
}

func TestPrimesUpTo_InvalidLimit(t *testing.T) {
	_, err := domain.PrimesUpTo(0)
	require.ErrorIs(t, err, domain.ErrMathOperation)

	_, err = domain.PrimesUpTo(-10)
	require.ErrorIs(t, err, domain.ErrMathOperation)
}
