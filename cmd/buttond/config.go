package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultPin            = "GPIO20"
	defaultPressColor     = 0x00ff00
	defaultLongPressColor = 0xff0000
)

type Config struct {
	Button struct {
		Pin        string `yaml:"pin"`
		ActiveHigh bool   `yaml:"activeHigh"`
	} `yaml:"button"`
	Colors struct {
		Press     uint32 `yaml:"press"`
		LongPress uint32 `yaml:"longPress"`
	} `yaml:"colors"`
	MQTT struct {
		Broker string `yaml:"broker"`
		Topic  string `yaml:"topic"`
	} `yaml:"mqtt"`
}

func readConfig(file string) (*Config, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.Button.Pin == "" {
		c.Button.Pin = defaultPin
	}
	if c.Colors.Press == 0 {
		c.Colors.Press = defaultPressColor
	}
	if c.Colors.LongPress == 0 {
		c.Colors.LongPress = defaultLongPressColor
	}
	if c.MQTT.Topic != "" && c.MQTT.Broker == "" {
		return nil, fmt.Errorf("an MQTT topic is configured but no broker is")
	}

	return c, nil
}
