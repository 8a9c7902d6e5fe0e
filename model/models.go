package model

// Strand is the drawing buffer for a linear run of addressable LEDs.
// Pixel indices are 0..Len()-1; callers keep indices in range.
type Strand struct {
	pixels []ColorVal
}

func NewStrand(n int) *Strand {
	if n < 0 {
		n = 0
	}
	return &Strand{pixels: make([]ColorVal, n)}
}

func (s *Strand) Len() int {
	return len(s.pixels)
}

func (s *Strand) GetPixel(i int) ColorVal {
	return s.pixels[i]
}

func (s *Strand) SetPixel(i int, c ColorVal) {
	s.pixels[i] = c & WhiteMask
}

// Fill sets every pixel to c.
func (s *Strand) Fill(c ColorVal) {
	for i := range s.pixels {
		s.pixels[i] = c & WhiteMask
	}
}

// Clear blanks the strand.
func (s *Strand) Clear() {
	s.Fill(Black)
}

// Pixels returns a copy of the buffer.
func (s *Strand) Pixels() []ColorVal {
	out := make([]ColorVal, len(s.pixels))
	copy(out, s.pixels)
	return out
}

// Serialize writes the strand as packed RGB triplets, reusing buf when it is large enough.
func (s *Strand) Serialize(buf []byte) []byte {
	buf = buf[:0]
	for _, v := range s.pixels {
		buf = v.Serialize(buf)
	}
	return buf
}
