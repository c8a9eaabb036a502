package wide

import (
	"testing"
	"unsafe"
)

func TestLaneBitPatterns(t *testing.T) {
	if got := SplatM8x16(true); got[3] != -1 {
		t.Errorf("true 8-bit lane = %#x, want all ones", got[3])
	}
	if got := SplatM16x8(false); got[7] != 0 {
		t.Errorf("false 16-bit lane = %#x, want 0", got[7])
	}
	if got := NewM32x4FromBool(false, true, false, false); got != (M32x4{0, -1, 0, 0}) {
		t.Errorf("NewM32x4FromBool = %v", got)
	}
	if got := NewM64x2FromBool(true, false); got != (M64x2{-1, 0}) {
		t.Errorf("NewM64x2FromBool = %v", got)
	}
	full := Lane128{Lo: ^uint64(0), Hi: ^uint64(0)}
	if got := NewM128x2FromBool(false, true); got != (M128x2{{}, full}) {
		t.Errorf("NewM128x2FromBool = %v", got)
	}
	if got := SplatMSizex4(true); got[0] != ^uintptr(0) {
		t.Errorf("true pointer-width lane = %#x", got[0])
	}
}

func TestSizes(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"M8x8", unsafe.Sizeof(M8x8{}), 8},
		{"M8x64", unsafe.Sizeof(M8x64{}), 64},
		{"M16x32", unsafe.Sizeof(M16x32{}), 64},
		{"M32x16", unsafe.Sizeof(M32x16{}), 64},
		{"M64x8", unsafe.Sizeof(M64x8{}), 64},
		{"M128x4", unsafe.Sizeof(M128x4{}), 64},
		{"MSizex8", unsafe.Sizeof(MSizex8{}), 8 * unsafe.Sizeof(uintptr(0))},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("sizeof %s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestTestAndLanes(t *testing.T) {
	m := NewM16x4FromBool(true, false, false, true)
	if m.Lanes() != 4 {
		t.Fatalf("Lanes() = %d", m.Lanes())
	}
	want := []bool{true, false, false, true}
	for i, w := range want {
		if m.Test(i) != w {
			t.Errorf("Test(%d) = %v, want %v", i, m.Test(i), w)
		}
	}
	if NewM128x4FromBool(false, false, true, false).Test(2) != true {
		t.Error("128-bit lane 2 not set")
	}
}
