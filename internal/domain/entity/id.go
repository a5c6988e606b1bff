package entity

import (
	"crypto/rand"
	"math/big"
)

var idSpace = big.NewInt(1_000_000_000)

// newID generates a random positive identifier at creation time. Ids are
// assigned by the domain, not the database, so a restored entity round-trips
// byte for byte.
func newID() int64 {
	n, err := rand.Int(rand.Reader, idSpace)
	if err != nil {
		// crypto/rand failing means the process is in no state to continue
		panic(err)
	}
	return n.Int64() + 1
}
