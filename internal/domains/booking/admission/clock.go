package admission

import (
	"time"

	"carrent/shared/timezone"
)

// Clock supplies the current calendar day to range validation. Services
// hold the wall clock; tests inject a fixed day.
type Clock interface {
	Today() time.Time
}

type wallClock struct{}

func (wallClock) Today() time.Time {
	return Day(timezone.Now())
}

func NewClock() Clock {
	return wallClock{}
}
