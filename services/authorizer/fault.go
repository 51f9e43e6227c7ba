package authorizer

import (
	// Go Internal Packages
	"math/rand"
)

// FaultDecider decides whether the simulated downstream bank is reachable
// for one mutation. Pluggable so tests can force either answer.
type FaultDecider interface {
	BankAvailable() bool
}

// RandomFault models an unreliable bank: each mutation draws a uniform
// integer in [0,100) and fails when the draw is at or below FailureRate.
// With the default rate of 30 roughly a third of otherwise-valid
// transactions fail here.
type RandomFault struct {
	FailureRate int
}

func NewRandomFault(failureRate int) *RandomFault {
	return &RandomFault{FailureRate: failureRate}
}

func (f *RandomFault) BankAvailable() bool {
	return rand.Intn(100) > f.FailureRate
}
