package model

// Channel offsets follow the strand's GRB wire order.
const (
	GREEN_OFFSET uint8 = 0x10
	RED_OFFSET   uint8 = 0x08
	BLUE_OFFSET  uint8 = 0x0
)

// ColorVal is a packed 24-bit color: green in bits 16-23, red in 8-15, blue in 0-7.
type ColorVal uint32

// Single-channel masks, also used as "full brightness" colors for that channel.
const (
	Black     ColorVal = 0
	RedMask   ColorVal = 0xFF << RED_OFFSET
	GreenMask ColorVal = 0xFF << GREEN_OFFSET
	BlueMask  ColorVal = 0xFF << BLUE_OFFSET
	WhiteMask ColorVal = RedMask | GreenMask | BlueMask
)

// NewColor packs c, dropping anything above the 24 color bits.
func NewColor(c uint32) ColorVal {
	return ColorVal(c) & WhiteMask
}

// RGB builds a packed color from separate channel values.
func RGB(r, g, b uint8) ColorVal {
	var c ColorVal
	c.SetR(r)
	c.SetG(g)
	c.SetB(b)
	return c
}

// Gray sets every channel to v.
func Gray(v uint8) ColorVal {
	return RGB(v, v, v)
}

func (c ColorVal) Color() uint32 {
	return uint32(c)
}

func setcolor(c uint32, n uint8, off uint8) uint32 {
	var val uint32 = uint32(n) << off
	var mask uint32 = 0xFF << off
	return (c & (^mask)) | val
}

func getcolor(c uint32, off uint8) uint8 {
	var mask uint32 = 0xFF << off
	return uint8((c & (mask)) >> off)
}

func (c *ColorVal) SetR(r uint8) {
	*c = ColorVal(setcolor(uint32(*c), r, RED_OFFSET))
}
func (c *ColorVal) SetG(g uint8) {
	*c = ColorVal(setcolor(uint32(*c), g, GREEN_OFFSET))
}
func (c *ColorVal) SetB(b uint8) {
	*c = ColorVal(setcolor(uint32(*c), b, BLUE_OFFSET))
}

func (c ColorVal) GetR() uint8 {
	return getcolor(uint32(c), RED_OFFSET)
}
func (c ColorVal) GetG() uint8 {
	return getcolor(uint32(c), GREEN_OFFSET)
}
func (c ColorVal) GetB() uint8 {
	return getcolor(uint32(c), BLUE_OFFSET)
}

// Offsets lists the channel offsets fully covered by mask, blue first.
func (c ColorVal) Offsets() []uint8 {
	offs := make([]uint8, 0, 3)
	for _, off := range []uint8{BLUE_OFFSET, RED_OFFSET, GREEN_OFFSET} {
		if getcolor(uint32(c), off) == 0xFF {
			offs = append(offs, off)
		}
	}
	return offs
}

// Channel returns the channel at bit offset off.
func (c ColorVal) Channel(off uint8) uint8 {
	return getcolor(uint32(c), off)
}

// SetChannel overwrites the channel at bit offset off.
func (c *ColorVal) SetChannel(off uint8, v uint8) {
	*c = ColorVal(setcolor(uint32(*c), v, off))
}

// Scale multiplies every channel by f, which is clamped to [0,1].
func (c ColorVal) Scale(f float64) ColorVal {
	if f <= 0 {
		return Black
	}
	if f >= 1 {
		return c
	}
	return RGB(
		uint8(float64(c.GetR())*f),
		uint8(float64(c.GetG())*f),
		uint8(float64(c.GetB())*f),
	)
}

// Serialize appends the color as R, G, B bytes.
func (c ColorVal) Serialize(buf []byte) []byte {
	return append(buf, c.GetR(), c.GetG(), c.GetB())
}
