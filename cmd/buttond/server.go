package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/skaland/buttond/internal/bus"
	"github.com/skaland/buttond/internal/button"
	"github.com/skaland/buttond/internal/lcd"
	"github.com/skaland/buttond/internal/led"
	"github.com/skaland/buttond/internal/mqtt"
)

func startServer(configFile string) error {
	conf, err := readConfig(configFile)
	if err != nil {
		return err
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	lcd.InitLCD()
	lcd.Reset()

	ring := led.NewController()
	events := bus.New()

	if conf.MQTT.Broker != "" {
		pub, err := mqtt.Connect(conf.MQTT.Broker, conf.MQTT.Topic)
		if err != nil {
			return fmt.Errorf("unable to set up MQTT: %w", err)
		}
		defer pub.Close()
		go mqtt.Forward(events.Subscribe(), pub)
	}

	go feedback(events.Subscribe(), ring, conf)

	// The pin has to be fully set up before the edge triggers are armed, so
	// keep these two calls in this order.
	watcher, err := button.NewWatcher(conf.Button.Pin, conf.Button.ActiveHigh, events)
	if err != nil {
		return err
	}
	if err := watcher.EnableInterrupts(); err != nil {
		return err
	}

	<-signalChan

	events.Close()
	lcd.PrintLine(lcd.Line1, "  Sleeping...")
	lcd.Clear(lcd.Line2)
	ring.Close()

	log.Info("Done...")
	return nil
}

func feedback(events <-chan button.Event, ring *led.Controller, conf *Config) {
	for e := range events {
		log.Infof("Event: %v", e)
		switch e {
		case button.Pressed:
			lcd.PrintLine(lcd.Line1, "Button down")
			ring.Blink(conf.Colors.Press)
		case button.Released:
			lcd.Reset()
		case button.LongPress:
			lcd.PrintLine(lcd.Line1, "Long press!")
			ring.Flash(conf.Colors.LongPress)
			lcd.Reset()
		}
	}
}
