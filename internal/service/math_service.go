package service

import (
	"math/big"

	"mathgate/internal/domain"
)

// MathService exposes the stateless math operations.
type MathService interface {
	Factorial(n int) (*big.Int, error)
	IsPrime(n int) (bool, error)
	Power(base, exponent float64) (float64, error)
	PrimesUpTo(limit int) ([]int, error)
}

type mathService struct{}

func NewMathService() MathService {
	return &mathService{}
}

func (s *mathService) Factorial(n int) (*big.Int, error) {
	return domain.Factorial(n)
}

func (s *mathService) IsPrime(n int) (bool, error) {
	return domain.IsPrime(n)
}

func (s *mathService) Power(base, exponent float64) (float64, error) {
	return domain.Power(base, exponent)
}

func (s *mathService) PrimesUpTo(limit int) ([]int, error) {
	return domain.PrimesUpTo(limit)
}
