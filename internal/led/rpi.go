//go:build pi

package led

import (
	ws "github.com/rpi-ws281x/rpi-ws281x-go"
)

func NewController() *Controller {
	opt := ws.DefaultOptions
	opt.Channels[0].Brightness = brightness
	opt.Channels[0].LedCount = ledCount

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		panic(err)
	}
	if err := dev.Init(); err != nil {
		panic(err)
	}

	return &Controller{ws: dev}
}
