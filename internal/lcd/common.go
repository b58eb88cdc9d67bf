// Package lcd drives the 16x2 character display next to the button, showing
// the most recent button activity.
package lcd

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

type Line byte

func (l Line) String() string {
	switch l {
	case Line1:
		return "L1"
	case Line2:
		return "L2"
	}
	return "N/A"
}

const (
	registerSelectionPin = "GPIO4"
	clockEdgePin         = "GPIO17"
	data4Pin             = "GPIO25"
	data5Pin             = "GPIO22"
	data6Pin             = "GPIO23"
	data7Pin             = "GPIO24"

	Line1 Line = 0x80
	Line2 Line = 0xC0

	lineWidth   = 16
	character   = gpio.High
	command     = gpio.Low
	signalPulse = 500000 * time.Nanosecond
	signalDelay = 500000 * time.Nanosecond
)

// Reset puts the idle banner back on the display.
func Reset() {
	PrintLine(Line1, "     buttond")
	Clear(Line2)
}

// Clear blanks a single line.
func Clear(l Line) {
	PrintLine(l, "")
}
