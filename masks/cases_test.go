package masks

// cases lists every mask type with its constructors, so the property tests
// can run over the whole family through reflection.
var cases = []maskCase{
	{"Mask8x8", 8, SplatMask8x8, NewMask8x8, func(m any) laneReader { return m.(Mask8x8).m }},
	{"Mask8x16", 16, SplatMask8x16, NewMask8x16, func(m any) laneReader { return m.(Mask8x16).m }},
	{"Mask8x32", 32, SplatMask8x32, NewMask8x32, func(m any) laneReader { return m.(Mask8x32).m }},
	{"Mask8x64", 64, SplatMask8x64, NewMask8x64, func(m any) laneReader { return m.(Mask8x64).m }},
	{"Mask16x4", 4, SplatMask16x4, NewMask16x4, func(m any) laneReader { return m.(Mask16x4).m }},
	{"Mask16x8", 8, SplatMask16x8, NewMask16x8, func(m any) laneReader { return m.(Mask16x8).m }},
	{"Mask16x16", 16, SplatMask16x16, NewMask16x16, func(m any) laneReader { return m.(Mask16x16).m }},
	{"Mask16x32", 32, SplatMask16x32, NewMask16x32, func(m any) laneReader { return m.(Mask16x32).m }},
	{"Mask32x2", 2, SplatMask32x2, NewMask32x2, func(m any) laneReader { return m.(Mask32x2).m }},
	{"Mask32x4", 4, SplatMask32x4, NewMask32x4, func(m any) laneReader { return m.(Mask32x4).m }},
	{"Mask32x8", 8, SplatMask32x8, NewMask32x8, func(m any) laneReader { return m.(Mask32x8).m }},
	{"Mask32x16", 16, SplatMask32x16, NewMask32x16, func(m any) laneReader { return m.(Mask32x16).m }},
	{"Mask64x2", 2, SplatMask64x2, NewMask64x2, func(m any) laneReader { return m.(Mask64x2).m }},
	{"Mask64x4", 4, SplatMask64x4, NewMask64x4, func(m any) laneReader { return m.(Mask64x4).m }},
	{"Mask64x8", 8, SplatMask64x8, NewMask64x8, func(m any) laneReader { return m.(Mask64x8).m }},
	{"Mask128x2", 2, SplatMask128x2, NewMask128x2, func(m any) laneReader { return m.(Mask128x2).m }},
	{"Mask128x4", 4, SplatMask128x4, NewMask128x4, func(m any) laneReader { return m.(Mask128x4).m }},
	{"MaskSizex2", 2, SplatMaskSizex2, NewMaskSizex2, func(m any) laneReader { return m.(MaskSizex2).m }},
	{"MaskSizex4", 4, SplatMaskSizex4, NewMaskSizex4, func(m any) laneReader { return m.(MaskSizex4).m }},
	{"MaskSizex8", 8, SplatMaskSizex8, NewMaskSizex8, func(m any) laneReader { return m.(MaskSizex8).m }},
}
