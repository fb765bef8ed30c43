package smartcube

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"

	"github.com/seamusw/cubelab"
)

var (
	ErrNotFound     = errors.New("smartcube: no cube found")
	ErrNotConnected = errors.New("smartcube: not connected")
)

// sideMoves maps the GoCube side order (blue, green, white, yellow, red,
// orange centers) to engine moves on a 3×3: clockwise as seen looking at
// that side. Blue is the back face, white the top, red the right.
var sideMoves = [6]cubelab.Move{
	{Axis: cubelab.AxisZ, Layer: 0, Dir: 1},  // B
	{Axis: cubelab.AxisZ, Layer: 2, Dir: -1}, // F (green)
	{Axis: cubelab.AxisY, Layer: 2, Dir: -1}, // U (white)
	{Axis: cubelab.AxisY, Layer: 0, Dir: 1},  // D (yellow)
	{Axis: cubelab.AxisX, Layer: 2, Dir: -1}, // R (red)
	{Axis: cubelab.AxisX, Layer: 0, Dir: 1},  // L (orange)
}

// Source is a connected smart cube acting as a move producer. Physical
// quarter turns arrive as engine moves on the move callback; orientation
// samples stream separately so hosts can run shake detection.
type Source struct {
	adapter *bluetooth.Adapter
	device  bluetooth.Device

	mu        sync.Mutex
	connected bool
	name      string

	onMove        func(cubelab.Move)
	onOrientation func(x, y, z, w float64)
}

// Connect scans for the first GoCube-compatible device and subscribes to
// its notification stream.
func Connect(ctx context.Context, timeout time.Duration) (*Source, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("smartcube: failed to enable BLE adapter: %w", err)
	}

	s := &Source{adapter: adapter}

	addr, name, err := s.scan(ctx, timeout)
	if err != nil {
		return nil, err
	}

	device, err := adapter.Connect(addr, bluetooth.ConnectionParams{})
	if err != nil {
		return nil, fmt.Errorf("smartcube: connect failed: %w", err)
	}
	s.device = device
	s.name = name

	if err := s.subscribe(); err != nil {
		device.Disconnect()
		return nil, err
	}

	s.mu.Lock()
	s.connected = true
	s.mu.Unlock()
	return s, nil
}

// scan looks for an advertisement whose local name marks a GoCube.
func (s *Source) scan(ctx context.Context, timeout time.Duration) (bluetooth.Address, string, error) {
	type hit struct {
		addr bluetooth.Address
		name string
	}
	found := make(chan hit, 1)

	go func() {
		s.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			name := result.LocalName()
			if strings.HasPrefix(strings.ToLower(name), "gocube") {
				select {
				case found <- hit{addr: result.Address, name: name}:
				default:
				}
				adapter.StopScan()
			}
		})
	}()

	select {
	case h := <-found:
		return h.addr, h.name, nil
	case <-time.After(timeout):
		s.adapter.StopScan()
		return bluetooth.Address{}, "", ErrNotFound
	case <-ctx.Done():
		s.adapter.StopScan()
		return bluetooth.Address{}, "", ctx.Err()
	}
}

// subscribe enables notifications on the UART notify characteristic and
// routes decoded frames to the callbacks.
func (s *Source) subscribe() error {
	svcUUID, err := bluetooth.ParseUUID(serviceUUID)
	if err != nil {
		return fmt.Errorf("smartcube: bad service uuid: %w", err)
	}
	chrUUID, err := bluetooth.ParseUUID(notifyUUID)
	if err != nil {
		return fmt.Errorf("smartcube: bad characteristic uuid: %w", err)
	}

	services, err := s.device.DiscoverServices([]bluetooth.UUID{svcUUID})
	if err != nil || len(services) == 0 {
		return fmt.Errorf("smartcube: service discovery failed: %w", err)
	}
	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{chrUUID})
	if err != nil || len(chars) == 0 {
		return fmt.Errorf("smartcube: characteristic discovery failed: %w", err)
	}

	return chars[0].EnableNotifications(func(buf []byte) {
		s.handleNotification(buf)
	})
}

func (s *Source) handleNotification(buf []byte) {
	f, err := parseFrame(buf)
	if err != nil {
		return // garbled frames are dropped, the next one resyncs
	}

	switch f.msgType {
	case msgRotation:
		turns, err := decodeRotation(f.payload)
		if err != nil {
			return
		}
		s.mu.Lock()
		cb := s.onMove
		s.mu.Unlock()
		if cb == nil {
			return
		}
		for _, t := range turns {
			m := sideMoves[t.side]
			if !t.clockwise {
				m = m.Inverse()
			}
			cb(m)
		}

	case msgOrientation:
		x, y, z, w, err := decodeOrientation(f.payload)
		if err != nil {
			return
		}
		s.mu.Lock()
		cb := s.onOrientation
		s.mu.Unlock()
		if cb != nil {
			cb(x, y, z, w)
		}
	}
}

// Name returns the connected device's advertised name.
func (s *Source) Name() string {
	return s.name
}

// OnMove sets the callback receiving physical turns as engine moves.
func (s *Source) OnMove(cb func(cubelab.Move)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMove = cb
}

// OnOrientation sets the callback receiving raw orientation samples.
func (s *Source) OnOrientation(cb func(x, y, z, w float64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onOrientation = cb
}

// Close disconnects from the cube.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return ErrNotConnected
	}
	s.connected = false
	return s.device.Disconnect()
}
