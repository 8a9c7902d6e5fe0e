package model_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/coreman2200/funtimes-strandfx/model"
)

var TestRGBIsExpectedColor = []struct {
	G      uint8
	R      uint8
	B      uint8
	Expect uint32
}{
	{0x11, 0x22, 0x33, 0x112233},
	{0x2A, 0x44, 0x34, 0x2A4434},
	{0x3B, 0x88, 0x35, 0x3B8835},
	{0x00, 0xFF, 0x00, 0x00FF00},
	{0xFF, 0x00, 0x00, 0xFF0000},
}

var TestChannelOffsetsCases = []struct {
	Mask   ColorVal
	Expect []uint8
}{
	{RedMask, []uint8{RED_OFFSET}},
	{GreenMask, []uint8{GREEN_OFFSET}},
	{BlueMask, []uint8{BLUE_OFFSET}},
	{WhiteMask, []uint8{BLUE_OFFSET, RED_OFFSET, GREEN_OFFSET}},
	{NewColor(0x0080FF), []uint8{BLUE_OFFSET}},
	{Black, []uint8{}},
}

func TestColorsRGB(t *testing.T) {
	for k, v := range TestRGBIsExpectedColor {
		t.Run("Given GRB"+strconv.Itoa(k), func(t *testing.T) {
			col := RGB(v.R, v.G, v.B)
			assert.Equal(t, v.Expect, col.Color(), "packed value")
			assert.Equal(t, v.R, col.GetR())
			assert.Equal(t, v.G, col.GetG())
			assert.Equal(t, v.B, col.GetB())
		})
	}
}

func TestNewColorDropsHighByte(t *testing.T) {
	assert.Equal(t, uint32(0x112233), NewColor(0xFF112233).Color())
}

func TestChannelOffsets(t *testing.T) {
	for k, v := range TestChannelOffsetsCases {
		t.Run("Mask"+strconv.Itoa(k), func(t *testing.T) {
			assert.Equal(t, v.Expect, v.Mask.Offsets())
		})
	}
}

func TestSetChannelLeavesOthers(t *testing.T) {
	c := RGB(10, 20, 30)
	c.SetChannel(RED_OFFSET, 200)
	assert.Equal(t, uint8(200), c.GetR())
	assert.Equal(t, uint8(20), c.GetG())
	assert.Equal(t, uint8(30), c.GetB())
	assert.Equal(t, uint8(20), c.Channel(GREEN_OFFSET))
}

func TestScale(t *testing.T) {
	c := RGB(200, 100, 50)
	assert.Equal(t, RGB(100, 50, 25), c.Scale(0.5))
	assert.Equal(t, c, c.Scale(1.5))
	assert.Equal(t, Black, c.Scale(-1))
}

func TestRedUnionBlueIsMagenta(t *testing.T) {
	m := RedMask | BlueMask
	assert.Equal(t, uint8(0xFF), m.GetR())
	assert.Equal(t, uint8(0x00), m.GetG())
	assert.Equal(t, uint8(0xFF), m.GetB())
}

func TestStrandGetSetClear(t *testing.T) {
	s := NewStrand(4)
	require.Equal(t, 4, s.Len())

	s.SetPixel(2, RGB(1, 2, 3))
	assert.Equal(t, RGB(1, 2, 3), s.GetPixel(2))

	s.SetPixel(1, ColorVal(0xAB123456))
	assert.Equal(t, ColorVal(0x123456), s.GetPixel(1), "bits above the color are dropped")

	s.Clear()
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, Black, s.GetPixel(i))
	}
}

func TestStrandSerialize(t *testing.T) {
	s := NewStrand(2)
	s.SetPixel(0, RGB(1, 2, 3))
	s.SetPixel(1, RedMask)

	buf := s.Serialize(make([]byte, 0, 16))
	assert.Equal(t, []byte{1, 2, 3, 0xFF, 0, 0}, buf)

	// reuse keeps the same backing array
	again := s.Serialize(buf)
	assert.Same(t, &buf[0], &again[0])
}
