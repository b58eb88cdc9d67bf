//go:build !pi

package led

import (
	log "github.com/sirupsen/logrus"
)

type mockEngine struct {
	colors []uint32
}

func (m mockEngine) Init() error {
	return nil
}

func (m mockEngine) Render() error {
	log.Debugf("led: render %06x", m.colors[0])
	return nil
}

func (m mockEngine) Wait() error {
	return nil
}

func (m mockEngine) Fini() {
	log.Debug("led: fini")
}

func (m mockEngine) Leds(_ int) []uint32 {
	return m.colors
}

func NewController() *Controller {
	return &Controller{
		ws: mockEngine{
			colors: make([]uint32, 1),
		},
	}
}
