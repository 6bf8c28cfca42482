package osdbuf

import "testing"

func TestLineCapOf(t *testing.T) {
	tests := []struct {
		code uint8
		want LineCap
	}{
		{0, LineCapButt},
		{1, LineCapRound},
		{2, LineCapSquare},
		{3, LineCapButt},
		{255, LineCapButt},
	}
	for _, tt := range tests {
		if got := LineCapOf(tt.code); got != tt.want {
			t.Errorf("LineCapOf(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestLineJoinOf(t *testing.T) {
	tests := []struct {
		code uint8
		want LineJoin
	}{
		{0, LineJoinMiter},
		{1, LineJoinRound},
		{2, LineJoinBevel},
		{7, LineJoinMiter},
	}
	for _, tt := range tests {
		if got := LineJoinOf(tt.code); got != tt.want {
			t.Errorf("LineJoinOf(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestDashCloneNil(t *testing.T) {
	var d *Dash
	if d.Clone() != nil {
		t.Error("nil dash should clone to nil")
	}
}

func TestStrokeCloneDeep(t *testing.T) {
	s := DefaultStroke()
	s.Dash = NewDash([]float64{3, 1}, 0.5)

	c := s.Clone()
	c.Dash.Intervals[0] = 99

	if s.Dash.Intervals[0] != 3 {
		t.Error("clone must not share dash intervals")
	}
	if c.Dash.Phase != 0.5 {
		t.Error("clone should keep the phase")
	}
}

func TestBlendModeOf(t *testing.T) {
	if got := BlendModeOf(17); got != BlendSource {
		t.Errorf("code 17 = %v, want BlendSource", got)
	}
	for _, code := range []uint8{0, 1, 5, 16, 18, 255} {
		if got := BlendModeOf(code); got != BlendOver {
			t.Errorf("code %d = %v, want BlendOver", code, got)
		}
	}
}

func TestColorAccessors(t *testing.T) {
	c := Color(0x11223344)
	if c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 || c.A() != 0x44 {
		t.Errorf("channel accessors wrong for %08X", uint32(c))
	}
	if got := RGBA(0x11, 0x22, 0x33, 0x44); got != c {
		t.Errorf("RGBA packed %08X, want %08X", uint32(got), uint32(c))
	}
	if got := c.WithAlpha(0xFF); got != 0x112233FF {
		t.Errorf("WithAlpha = %08X", uint32(got))
	}
	if got := c.scaleAlpha(0.5); got.A() != 0x22 {
		t.Errorf("scaleAlpha(0.5) alpha = %02X, want 22", got.A())
	}
}
