package smartcube

import "testing"

// buildFrame wraps a type byte and payload in the wire framing with a
// valid checksum.
func buildFrame(msgType byte, payload []byte) []byte {
	length := byte(1 + len(payload) + 1 + 2) // type + payload + checksum + CRLF
	frame := []byte{framePrefix, length, msgType}
	frame = append(frame, payload...)

	var sum byte
	for _, b := range frame {
		sum += b
	}
	return append(frame, sum, frameSuffix1, frameSuffix2)
}

func TestParseFrameRoundTrip(t *testing.T) {
	raw := buildFrame(msgRotation, []byte{0x08, 0x00})
	f, err := parseFrame(raw)
	if err != nil {
		t.Fatal(err)
	}
	if f.msgType != msgRotation {
		t.Errorf("type = 0x%02X, want 0x%02X", f.msgType, msgRotation)
	}
	if len(f.payload) != 2 || f.payload[0] != 0x08 {
		t.Errorf("payload = %v", f.payload)
	}
}

func TestParseFrameRejectsCorruption(t *testing.T) {
	good := buildFrame(msgRotation, []byte{0x00, 0x00})

	bad := append([]byte(nil), good...)
	bad[0] = 0x00
	if _, err := parseFrame(bad); err == nil {
		t.Error("wrong prefix accepted")
	}

	bad = append([]byte(nil), good...)
	bad[len(bad)-3] ^= 0xFF
	if _, err := parseFrame(bad); err == nil {
		t.Error("wrong checksum accepted")
	}

	if _, err := parseFrame([]byte{framePrefix, 0x02}); err == nil {
		t.Error("truncated frame accepted")
	}
}

func TestDecodeRotation(t *testing.T) {
	// 0x08 = red side clockwise, 0x0B = orange side counter-clockwise.
	turns, err := decodeRotation([]byte{0x08, 0x12, 0x0B, 0x12})
	if err != nil {
		t.Fatal(err)
	}
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want 2", len(turns))
	}
	if turns[0].side != 4 || !turns[0].clockwise {
		t.Errorf("turn 0 = %+v, want side 4 clockwise", turns[0])
	}
	if turns[1].side != 5 || turns[1].clockwise {
		t.Errorf("turn 1 = %+v, want side 5 counter-clockwise", turns[1])
	}

	if _, err := decodeRotation([]byte{0x08}); err == nil {
		t.Error("odd payload accepted")
	}
	if _, err := decodeRotation([]byte{0x0C, 0x00}); err == nil {
		t.Error("out-of-range face code accepted")
	}
}

func TestDecodeOrientation(t *testing.T) {
	x, y, z, w, err := decodeOrientation([]byte("0.12#-0.34#0.56#0.78"))
	if err != nil {
		t.Fatal(err)
	}
	if x != 0.12 || y != -0.34 || z != 0.56 || w != 0.78 {
		t.Errorf("got (%v,%v,%v,%v)", x, y, z, w)
	}

	if _, _, _, _, err := decodeOrientation([]byte("1#2#3")); err == nil {
		t.Error("three-part payload accepted")
	}
}

func TestSideMovesInvertCleanly(t *testing.T) {
	for side, m := range sideMoves {
		if m.Dir != 1 && m.Dir != -1 {
			t.Errorf("side %d move %v has bad direction", side, m)
		}
		if m.Inverse().Inverse() != m {
			t.Errorf("side %d move %v does not round-trip through inverse", side, m)
		}
	}
}
