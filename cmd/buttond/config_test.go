package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	conf, err := parseConfig([]byte(``))

	require.NoError(t, err)
	assert.Equal(t, "GPIO20", conf.Button.Pin)
	assert.False(t, conf.Button.ActiveHigh)
	assert.Equal(t, uint32(0x00ff00), conf.Colors.Press)
	assert.Equal(t, uint32(0xff0000), conf.Colors.LongPress)
	assert.Empty(t, conf.MQTT.Broker)
}

func TestParseConfig(t *testing.T) {
	content := `
button:
  pin: GPIO26
  activeHigh: true
colors:
  press: 0x0000ff
  longPress: 0xffa500
mqtt:
  broker: tcp://broker.local:1883
  topic: home/button
`
	conf, err := parseConfig([]byte(content))

	require.NoError(t, err)
	assert.Equal(t, "GPIO26", conf.Button.Pin)
	assert.True(t, conf.Button.ActiveHigh)
	assert.Equal(t, uint32(0x0000ff), conf.Colors.Press)
	assert.Equal(t, uint32(0xffa500), conf.Colors.LongPress)
	assert.Equal(t, "tcp://broker.local:1883", conf.MQTT.Broker)
	assert.Equal(t, "home/button", conf.MQTT.Topic)
}

func TestParseConfigTopicWithoutBroker(t *testing.T) {
	content := `
mqtt:
  topic: home/button
`
	_, err := parseConfig([]byte(content))

	assert.Error(t, err)
}

func TestParseConfigGarbage(t *testing.T) {
	_, err := parseConfig([]byte(`{{{`))

	assert.Error(t, err)
}
