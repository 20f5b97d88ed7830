package order

import (
	"math/rand/v2"
	"strconv"
)

// generateOtp returns a 6-digit handover code. It guards a physical exchange
// between two people who already know each other's phone numbers, so
// crypto-grade randomness is not required.
func generateOtp() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}
