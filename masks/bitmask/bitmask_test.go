package bitmask

import (
	"testing"
	"unsafe"
)

func TestPacking(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"M8x8 alternating", uint64(NewM8x8FromBool(true, false, true, false, true, false, true, false)), 0x55},
		{"M16x4 splat", uint64(SplatM16x4(true)), 0xf},
		{"M32x2 lane 1", uint64(NewM32x2FromBool(false, true)), 0x2},
		{"M128x2 splat", uint64(SplatM128x2(true)), 0x3},
		{"M8x64 splat", uint64(SplatM8x64(true)), 0xffffffffffffffff},
		{"M8x32 splat", uint64(SplatM8x32(true)), 0xffffffff},
		{"MSizex8 splat false", uint64(SplatMSizex8(false)), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}

func TestHighLaneOf64(t *testing.T) {
	var v [64]bool
	v[63] = true
	m := NewM8x64FromBool(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7],
		v[8], v[9], v[10], v[11], v[12], v[13], v[14], v[15],
		v[16], v[17], v[18], v[19], v[20], v[21], v[22], v[23],
		v[24], v[25], v[26], v[27], v[28], v[29], v[30], v[31],
		v[32], v[33], v[34], v[35], v[36], v[37], v[38], v[39],
		v[40], v[41], v[42], v[43], v[44], v[45], v[46], v[47],
		v[48], v[49], v[50], v[51], v[52], v[53], v[54], v[55],
		v[56], v[57], v[58], v[59], v[60], v[61], v[62], v[63])
	if m != 1<<63 {
		t.Errorf("lane 63 only = %#x", uint64(m))
	}
	if !m.Test(63) || m.Test(62) {
		t.Error("Test disagrees with packed bits")
	}
}

func TestSizes(t *testing.T) {
	if unsafe.Sizeof(M16x4(0)) != 1 || unsafe.Sizeof(M8x16(0)) != 2 ||
		unsafe.Sizeof(M16x32(0)) != 4 || unsafe.Sizeof(M8x64(0)) != 8 {
		t.Error("bitmask storage is not the smallest unsigned type")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	// M16x4 has spare storage bits; they must not read as lanes.
	m := SplatM16x4(true)
	for _, i := range []int{-1, 4, 7} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Test(%d) did not panic", i)
				}
			}()
			m.Test(i)
		}()
	}
	if m.Lanes() != 4 {
		t.Errorf("Lanes() = %d", m.Lanes())
	}
}
