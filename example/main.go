package main

import (
	"flag"
	"log"
	"os"
	"time"

	ov64a40 "github.com/swdee/go-ov64a40"
	"github.com/swdee/go-ov64a40/config"
	"github.com/swdee/go-ov64a40/gpiopower"
	"github.com/swdee/go-ov64a40/serialbus"
	"github.com/swdee/go-ov64a40/status"
)

func main() {

	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)

	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := newLogger(cfg.Log.Level)

	// open the register transport
	bus, closeBus, err := openBus(cfg)

	if err != nil {
		log.Fatal(err)
	}

	defer closeBus()

	power, err := openPower(cfg)

	if err != nil {
		log.Fatal(err)
	}

	sensor, err := ov64a40.NewWithLog(ov64a40.NewCCI(bus), power, cfg.Endpoint(), logger)

	if err != nil {
		log.Fatalf("Failed to create sensor: %v", err)
	}

	var publisher *status.Publisher

	if cfg.MQTT.Enabled {
		publisher, err = status.Connect(status.Options{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Topic:    cfg.MQTT.Topic,
		})

		if err != nil {
			log.Printf("WARNING: status publishing disabled: %v", err)
		} else {
			defer publisher.Close()
		}
	}

	mode, code, err := sensor.NegotiateFormat(cfg.Stream.Width, cfg.Stream.Height)

	if err != nil {
		log.Fatalf("Failed to set format: %v", err)
	}

	log.Printf("Selected mode %dx%d (%s)", mode.Width, mode.Height, code)

	applyControls(sensor, cfg.Stream.Controls)

	if err := sensor.Start(); err != nil {
		log.Fatalf("Start streaming failed: %v", err)
	}

	publish(publisher, sensor)

	delay, err := sensor.SettleDelay()

	if err != nil {
		log.Printf("WARNING: settle delay: %v", err)
	} else {
		log.Printf("Streaming, settle delay %s", delay)
	}

	time.Sleep(cfg.Stream.Duration)

	if err := sensor.Stop(); err != nil {
		log.Printf("ERROR: stop streaming: %v", err)
	}

	publish(publisher, sensor)
}

// openBus opens the I2C device or serial bridge named in the config
func openBus(cfg *config.Config) (ov64a40.Bus, func(), error) {

	switch cfg.Bus.Type {
	case "serial":
		name := cfg.Bus.Device

		if name == "" {
			detected, err := serialbus.Detect(cfg.Bus.VendorID, cfg.Bus.ProductIDs)

			if err != nil {
				return nil, nil, err
			}

			name = detected
		}

		bridge, err := serialbus.Open(name, cfg.Bus.BaudRate)

		if err != nil {
			return nil, nil, err
		}

		return bridge, func() { bridge.Close() }, nil

	default:
		i2c, err := ov64a40.OpenI2C(cfg.Bus.Address, cfg.Bus.Device)

		if err != nil {
			return nil, nil, err
		}

		return i2c, func() { i2c.Close() }, nil
	}
}

// openPower returns the reset line driver, or an always on supply when the
// sensor has no reset line
func openPower(cfg *config.Config) (ov64a40.Power, error) {

	if cfg.Power.ResetPin == "" {
		return ov64a40.AlwaysOn{}, nil
	}

	return gpiopower.New(cfg.Power.ResetPin, cfg.Power.Settle)
}

// applyControls sets the configured controls, names are checked by the config
func applyControls(sensor *ov64a40.Sensor, controls map[string]int64) {

	for name, val := range controls {

		id, err := ov64a40.ParseControlID(name)

		if err != nil {
			log.Printf("WARNING: %v", err)
			continue
		}

		if err := sensor.SetControl(id, val); err != nil {
			log.Printf("WARNING: set %s: %v", name, err)
		}
	}
}

func publish(p *status.Publisher, sensor *ov64a40.Sensor) {

	if p == nil {
		return
	}

	if err := p.Publish(sensor.Snapshot()); err != nil {
		log.Printf("WARNING: publish status: %v", err)
	}
}

// newLogger returns the sensor debug logger, output is discarded unless the
// log level is DEBUG
func newLogger(level string) *log.Logger {

	if level != "DEBUG" {
		return nil
	}

	return log.New(os.Stderr, "DEBUG ov64a40 ",
		log.Ldate|log.Ltime|log.Lmicroseconds|log.Lmsgprefix)
}
