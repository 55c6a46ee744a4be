package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	ov64a40 "github.com/swdee/go-ov64a40"
)

// Default values applied when a setting is missing from the file
const (
	DefaultBusType   = "i2c"
	DefaultDevice    = "/dev/i2c-0"
	DefaultBaudRate  = 115200
	DefaultWidth     = 1920
	DefaultHeight    = 1080
	DefaultDuration  = 5 * time.Second
	DefaultSettle    = 5 * time.Millisecond
	DefaultTopic     = "ov64a40"
	DefaultClientID  = "ov64a40"
	DefaultLogLevel  = "INFO"
	DefaultDataLanes = ov64a40.DataLanes
)

// Config holds the configuration of a sensor deployment
type Config struct {
	Bus    BusConfig    `yaml:"bus"`
	Sensor SensorConfig `yaml:"sensor"`
	Power  PowerConfig  `yaml:"power"`
	Stream StreamConfig `yaml:"stream"`
	MQTT   MQTTConfig   `yaml:"mqtt"`
	Log    LogConfig    `yaml:"log"`
}

// BusConfig selects the transport to the sensor
type BusConfig struct {
	Type       string   `yaml:"type"`        // i2c, serial
	Device     string   `yaml:"device"`      // /dev/i2c-0, /dev/ttyACM0
	Address    uint8    `yaml:"address"`     // I2C address of the sensor
	BaudRate   int      `yaml:"baud_rate"`   // serial bridge only
	VendorID   string   `yaml:"vendor_id"`   // serial bridge autodetection
	ProductIDs []string `yaml:"product_ids"` // serial bridge autodetection
}

// SensorConfig describes the CSI-2 endpoint the sensor is connected to
type SensorConfig struct {
	DataLanes       int     `yaml:"data_lanes"`
	LinkFrequencies []int64 `yaml:"link_frequencies"` // Hz
	XclkFrequency   int64   `yaml:"xclk_frequency"`   // Hz
}

// PowerConfig configures the reset line
type PowerConfig struct {
	ResetPin string        `yaml:"reset_pin"` // empty for sensors without reset line
	Settle   time.Duration `yaml:"settle"`    // wait after releasing reset
}

// StreamConfig holds the format and controls applied before streaming
type StreamConfig struct {
	Width    int              `yaml:"width"`
	Height   int              `yaml:"height"`
	Duration time.Duration    `yaml:"duration"`
	Controls map[string]int64 `yaml:"controls"`
}

// MQTTConfig configures publishing of sensor state
type MQTTConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Broker   string `yaml:"broker"` // tcp://host:1883
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
}

// LogConfig configures logging
type LogConfig struct {
	Level string `yaml:"level"` // DEBUG, INFO, WARNING, ERROR
}

// Endpoint returns the sensor endpoint described by the configuration
func (c *Config) Endpoint() ov64a40.Endpoint {

	return ov64a40.Endpoint{
		DataLanes:       c.Sensor.DataLanes,
		LinkFrequencies: append([]int64(nil), c.Sensor.LinkFrequencies...),
		XclkFrequency:   c.Sensor.XclkFrequency,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, fills defaults and validates it
func Parse(data []byte) (*Config, error) {

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {

	if c.Bus.Type == "" {
		c.Bus.Type = DefaultBusType
	}

	if c.Bus.Type == "i2c" && c.Bus.Device == "" {
		c.Bus.Device = DefaultDevice
	}

	if c.Bus.Address == 0 {
		c.Bus.Address = ov64a40.Address
	}

	if c.Bus.BaudRate == 0 {
		c.Bus.BaudRate = DefaultBaudRate
	}

	if c.Sensor.DataLanes == 0 {
		c.Sensor.DataLanes = DefaultDataLanes
	}

	if len(c.Sensor.LinkFrequencies) == 0 {
		c.Sensor.LinkFrequencies = []int64{ov64a40.LinkFreq456M}
	}

	if c.Sensor.XclkFrequency == 0 {
		c.Sensor.XclkFrequency = ov64a40.XclkFrequency
	}

	if c.Power.Settle == 0 {
		c.Power.Settle = DefaultSettle
	}

	if c.Stream.Width == 0 {
		c.Stream.Width = DefaultWidth
	}

	if c.Stream.Height == 0 {
		c.Stream.Height = DefaultHeight
	}

	if c.Stream.Duration == 0 {
		c.Stream.Duration = DefaultDuration
	}

	if c.MQTT.Topic == "" {
		c.MQTT.Topic = DefaultTopic
	}

	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = DefaultClientID
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}

	c.Log.Level = strings.ToUpper(strings.TrimSpace(c.Log.Level))
}

// Validate checks the settings that can be checked without hardware
func (c *Config) Validate() error {

	switch c.Bus.Type {
	case "i2c", "serial":
	default:
		return fmt.Errorf("config: unknown bus type %q", c.Bus.Type)
	}

	if c.Bus.Type == "serial" && c.Bus.Device == "" && c.Bus.VendorID == "" {
		return fmt.Errorf("config: serial bus needs a device or a vendor_id to detect it")
	}

	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return fmt.Errorf("config: mqtt enabled without broker")
	}

	for name := range c.Stream.Controls {
		if _, err := ov64a40.ParseControlID(name); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	if err := c.Endpoint().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}
