// Package serialbus tunnels sensor I2C transfers through a USB-serial bridge
// speaking a framed text protocol.
package serialbus

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

const (
	cmdWrite = "WI2C"
	cmdRead  = "RI2C"

	framePrefix = "   #"
	// checksum placeholder, the bridge does not verify it
	crcPlaceholder = "XXXX"
)

// Bridge is a connection to the serial I2C bridge. It implements the byte
// level Bus used by ov64a40.CCI.
type Bridge struct {
	port io.ReadWriteCloser
	mu   sync.Mutex
}

// Open opens the bridge on the named serial port
func Open(portName string, baudRate int) (*Bridge, error) {

	p, err := serial.Open(portName, &serial.Mode{BaudRate: baudRate})

	if err != nil {
		return nil, fmt.Errorf("failed to open bridge %s: %w", portName, err)
	}

	return New(p), nil
}

// Detect returns the name of the first serial port matching the USB vendor id
// and one of the product ids
func Detect(vendorID string, productIDs []string) (string, error) {

	ports, err := enumerator.GetDetailedPortsList()

	if err != nil {
		return "", fmt.Errorf("failed to list serial ports: %w", err)
	}

	for _, port := range ports {
		if !port.IsUSB {
			continue
		}

		if strings.EqualFold(port.VID, vendorID) &&
			(len(productIDs) == 0 || slices.ContainsFunc(productIDs, func(pid string) bool {
				return strings.EqualFold(pid, port.PID)
			})) {
			return port.Name, nil
		}
	}

	return "", fmt.Errorf("no serial bridge with vendor id %s found", vendorID)
}

// New returns a bridge on an already opened port
func New(port io.ReadWriteCloser) *Bridge {
	return &Bridge{port: port}
}

// WriteBytes sends buf to the sensor
func (b *Bridge) WriteBytes(buf []byte) (int, error) {

	if _, err := b.sendCommand(cmdWrite, strings.ToUpper(hex.EncodeToString(buf))); err != nil {
		return 0, err
	}

	return len(buf), nil
}

// ReadBytes reads len(buf) bytes from the sensor
func (b *Bridge) ReadBytes(buf []byte) (int, error) {

	data, err := b.sendCommand(cmdRead, fmt.Sprintf("%04X", len(buf)))

	if err != nil {
		return 0, err
	}

	raw, err := hex.DecodeString(string(data))

	if err != nil {
		return 0, fmt.Errorf("failed to decode read data: %w", err)
	}

	return copy(buf, raw), nil
}

// Close closes the serial port
func (b *Bridge) Close() error {
	return b.port.Close()
}

func (b *Bridge) sendCommand(cmdType, payload string) ([]byte, error) {

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.port.Write(encodeFrame(cmdType, payload)); err != nil {
		return nil, fmt.Errorf("failed to write to serial port: %w", err)
	}

	for {
		packetType, data, err := readPacket(b.port)

		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if packetType == cmdType {
			return data, nil
		}
	}
}

// encodeFrame builds a request frame, the length covers command, payload and
// checksum
func encodeFrame(cmdType, payload string) []byte {
	cmd := cmdType + payload + crcPlaceholder

	return []byte(fmt.Sprintf("%s%04X%s", framePrefix, len(cmd), cmd))
}

// readPacket reads one response frame
func readPacket(r io.Reader) (packetType string, data []byte, err error) {

	header := make([]byte, 12)

	for string(header[:4]) != framePrefix {
		if _, err = io.ReadFull(r, header); err != nil {
			return "", nil, fmt.Errorf("failed to read header from serial port: %w", err)
		}
	}

	packetType = string(header[8:])

	length, err := hex.DecodeString(string(header[4:8]))

	if err != nil {
		return "", nil, fmt.Errorf("failed to decode packet length: %w", err)
	}

	total := binary.BigEndian.Uint16(length)
	if total < 8 {
		return "", nil, fmt.Errorf("invalid packet length %d", total)
	}

	data = make([]byte, total-8)
	if _, err = io.ReadFull(r, data); err != nil {
		return "", nil, fmt.Errorf("failed to read data from serial port: %w", err)
	}

	crc := make([]byte, 4)
	if _, err = io.ReadFull(r, crc); err != nil {
		return "", nil, fmt.Errorf("failed to read CRC from serial port: %w", err)
	}

	return packetType, data, nil
}
