// Package daynight tracks in-game time and derives the lighting for it.
package daynight

import (
	"fmt"
	"math"
)

// Clock is the in-game time of day. Hours stays in [0, 24); Day starts at 1.
type Clock struct {
	Hours float64
	Day   int
}

// NewClock returns a clock at the given hour of day 1.
func NewClock(startHour float64) Clock {
	c := Clock{Day: 1}
	c.Hours = startHour
	c.normalize()
	return c
}

// Advance moves the clock forward by dtMillis of real time. At one game
// hour per real minute a full day takes 24 minutes.
func (c *Clock) Advance(dtMillis, hoursPerMinute float64) {
	c.Hours += (dtMillis / 1000) * (1.0 / 60) * hoursPerMinute
	c.normalize()
}

func (c *Clock) normalize() {
	for c.Hours >= 24 {
		c.Hours -= 24
		c.Day++
	}
	if c.Hours < 0 {
		c.Hours = 0
	}
}

// IsNight reports whether the hour is before 06:00 or from 18:00 on.
func (c Clock) IsNight() bool {
	return c.Hours < 6 || c.Hours >= 18
}

// Display is the clock broken down for presentation.
type Display struct {
	Day    int
	Hour   int
	Minute int
	Night  bool
}

// Display breaks the clock into whole hours and minutes.
func (c Clock) Display() Display {
	return Display{
		Day:    c.Day,
		Hour:   int(math.Floor(c.Hours)),
		Minute: int(math.Floor(math.Mod(c.Hours, 1) * 60)),
		Night:  c.IsNight(),
	}
}

// String formats the display as "Day N - HH:MM".
func (d Display) String() string {
	return fmt.Sprintf("Day %d - %02d:%02d", d.Day, d.Hour, d.Minute)
}
