// Package smartcube feeds moves from a GoCube-compatible Bluetooth
// smart cube into the engine, so a physical 3×3 can drive the on-screen
// cube.
package smartcube

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Nordic UART service UUIDs used by GoCube hardware.
const (
	serviceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	notifyUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e"
)

// Message type bytes.
const (
	msgRotation    byte = 0x01
	msgOrientation byte = 0x03
)

// Frame bytes: [0x2A] [length] [type] [payload...] [checksum] [0x0D 0x0A]
const (
	framePrefix  byte = 0x2A
	frameSuffix1 byte = 0x0D
	frameSuffix2 byte = 0x0A
)

var (
	errBadFrame    = errors.New("smartcube: malformed frame")
	errBadChecksum = errors.New("smartcube: checksum mismatch")
)

// frame is one parsed notification from the cube.
type frame struct {
	msgType byte
	payload []byte
}

// parseFrame validates and unwraps a raw notification buffer. The length
// byte counts everything after itself; the checksum is the byte sum of
// the frame up to the checksum position.
func parseFrame(data []byte) (*frame, error) {
	if len(data) < 6 || data[0] != framePrefix {
		return nil, errBadFrame
	}

	length := int(data[1])
	if len(data) < 2+length {
		return nil, errBadFrame
	}
	checksumIdx := length - 1
	if checksumIdx < 2 || data[checksumIdx+1] != frameSuffix1 || data[checksumIdx+2] != frameSuffix2 {
		return nil, errBadFrame
	}

	var sum byte
	for i := 0; i < checksumIdx; i++ {
		sum += data[i]
	}
	if sum != data[checksumIdx] {
		return nil, fmt.Errorf("%w: want 0x%02X, got 0x%02X", errBadChecksum, data[checksumIdx], sum)
	}

	return &frame{msgType: data[2], payload: data[3:checksumIdx]}, nil
}

// faceTurn is one physical quarter turn: which side, which way.
type faceTurn struct {
	side      byte // 0..5 in GoCube side order: B, G, W, Y, R, O centers
	clockwise bool
}

// decodeRotation unpacks a rotation payload: pairs of
// [side+direction code] [center orientation]. Even codes are clockwise.
func decodeRotation(payload []byte) ([]faceTurn, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("smartcube: odd rotation payload length %d", len(payload))
	}

	var turns []faceTurn
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		if code > 0x0B {
			return nil, fmt.Errorf("smartcube: unknown face code 0x%02X", code)
		}
		turns = append(turns, faceTurn{
			side:      code / 2,
			clockwise: code%2 == 0,
		})
	}
	return turns, nil
}

// decodeOrientation parses the ASCII quaternion payload "x#y#z#w", where
// the final component may carry a trailing checksum byte.
func decodeOrientation(payload []byte) (x, y, z, w float64, err error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("smartcube: orientation payload has %d parts", len(parts))
	}

	vals := make([]float64, 4)
	for i, part := range parts {
		part = strings.TrimRight(part, "\r\n")
		// Strip any non-numeric trailing byte.
		end := len(part)
		for end > 0 {
			c := part[end-1]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				break
			}
			end--
		}
		v, perr := strconv.ParseFloat(part[:end], 64)
		if perr != nil {
			return 0, 0, 0, 0, fmt.Errorf("smartcube: bad orientation component %q: %w", part, perr)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}
