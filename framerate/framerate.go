// Package framerate converts frames-per-unit rates into the
// inter-frame duration that gifplot.Save expects.
package framerate

import (
	"fmt"
	"time"
)

type Unit uint8

const (
	UnitSecond Unit = iota
	UnitMinute
	UnitHour
)

type T struct {
	Value int
	Unit  Unit
}

// PerSecond is the common case: n frames per second.
func PerSecond(n int) T { return T{Value: n, Unit: UnitSecond} }

func PerMinute(n int) T { return T{Value: n, Unit: UnitMinute} }

func PerHour(n int) T { return T{Value: n, Unit: UnitHour} }

func (rate T) String() string {
	unitStr := "second"
	switch rate.Unit {
	case UnitSecond:
		unitStr = "second"
	case UnitMinute:
		unitStr = "minute"
	case UnitHour:
		unitStr = "hour"
	}

	return fmt.Sprintf("%v frames per %v", rate.Value, unitStr)
}

// Duration is the time between consecutive frames, or 0 for a
// non-positive rate.
func (rate T) Duration() time.Duration {
	if rate.Value <= 0 {
		return 0
	}

	span := time.Second
	switch rate.Unit {
	case UnitMinute:
		span = time.Minute
	case UnitHour:
		span = time.Hour
	}
	return span / time.Duration(rate.Value)
}
