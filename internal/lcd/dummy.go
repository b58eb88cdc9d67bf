//go:build !pi

package lcd

import (
	log "github.com/sirupsen/logrus"
)

// InitLCD is a no-op off the Pi; lines are echoed to the log instead.
func InitLCD() {
	log.Infoln("Starting the dummy LCD")
}

func PrintLine(l Line, msg string) {
	log.Infof("lcd %v: %q", l, msg)
}
