//go:build pi

package lcd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// The display is wired in 4 bit mode: a register select pin, a clock pin and
// four data pins.
type display struct {
	registerSelection gpio.PinIO
	clockEdge         gpio.PinIO
	data              [4]gpio.PinIO
}

var lcd display

// InitLCD claims the display pins and runs the init sequence for 4 bit, two
// line mode.
func InitLCD() {
	logrus.Infoln("Initializing LCD")

	if _, err := host.Init(); err != nil {
		logrus.Fatalln("Unable to initialize periph:", err)
	}

	lcd.registerSelection = gpioreg.ByName(registerSelectionPin)
	lcd.clockEdge = gpioreg.ByName(clockEdgePin)
	lcd.data[0] = gpioreg.ByName(data4Pin)
	lcd.data[1] = gpioreg.ByName(data5Pin)
	lcd.data[2] = gpioreg.ByName(data6Pin)
	lcd.data[3] = gpioreg.ByName(data7Pin)

	lcd.sendByte(0x33, command)
	lcd.sendByte(0x32, command)
	lcd.sendByte(0x28, command)
	lcd.sendByte(0x0C, command)
	lcd.sendByte(0x06, command)
	lcd.sendByte(0x01, command)
}

// PrintLine writes a full line to the display, padding with spaces.
func PrintLine(l Line, msg string) {
	lcd.sendByte(byte(l), command)
	m := fmt.Sprintf("%-16s", msg)
	for i := 0; i < lineWidth; i++ {
		lcd.sendByte(m[i], character)
	}
}

func (d *display) sendByte(bits byte, mode gpio.Level) {
	d.registerSelection.Out(mode)
	d.pulseByte(bits, 0x10)
	d.pulseByte(bits, 0x01)
}

func (d *display) pulseByte(bits, mask byte) {
	for i, pin := range d.data {
		pin.Out(gpio.Low)
		if bits&(mask<<uint(i)) != 0 {
			pin.Out(gpio.High)
		}
	}
	time.Sleep(signalDelay)
	d.clockEdge.Out(gpio.High)
	time.Sleep(signalPulse)
	d.clockEdge.Out(gpio.Low)
	time.Sleep(signalDelay)
}
