package di

import (
	"math/rand"
	"time"
)

// provideRandSource seeds the reservation code generator once per
// process.
func provideRandSource() rand.Source {
	return rand.NewSource(time.Now().UnixNano())
}
