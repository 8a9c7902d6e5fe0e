package led

import (
	"fmt"
	"image"
	"io"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
)

// Drawer adapts a periph display.Drawer (an NRZ strand, the console) to
// Driver. Frames are drawn as a single row image.
type Drawer struct {
	d      display.Drawer
	img    *image.NRGBA
	closer io.Closer
}

func NewDrawer(d display.Drawer, count int) *Drawer {
	return &Drawer{d: d, img: image.NewNRGBA(image.Rect(0, 0, count, 1))}
}

func (r *Drawer) String() string { return r.d.String() }

func (r *Drawer) Write(rgb []byte) error {
	n := r.img.Rect.Dx()
	if len(rgb) != n*3 {
		return fmt.Errorf("%s: frame has %d bytes, want %d", r.d, len(rgb), n*3)
	}
	for i := 0; i < n; i++ {
		p := r.img.Pix[i*4 : i*4+4]
		p[0], p[1], p[2], p[3] = rgb[i*3], rgb[i*3+1], rgb[i*3+2], 0xFF
	}
	if err := r.d.Draw(r.d.Bounds(), r.img, image.Point{}); err != nil {
		return fmt.Errorf("%s: draw: %w", r.d, err)
	}
	return nil
}

func (r *Drawer) Close() error {
	err := r.d.Halt()
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// NewNRZ drives a WS2812 style strand of count LEDs on an SPI port. freq is
// the NRZ bit rate, typically 800kHz.
func NewNRZ(p spi.Port, count int, freq physic.Frequency) (*Drawer, error) {
	o := nrzled.Opts{NumPixels: count, Channels: 3, Freq: freq}
	d, err := nrzled.NewSPI(p, &o)
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	if err := d.Halt(); err != nil {
		return nil, fmt.Errorf("nrzled: blank strand: %w", err)
	}
	return NewDrawer(d, count), nil
}

// OpenNRZ opens the SPI port named dev ("" picks the first one) and returns
// an NRZ driver on it. The port is closed with the driver.
func OpenNRZ(dev string, count int, freq physic.Frequency) (*Drawer, error) {
	p, err := spireg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", dev, err)
	}
	r, err := NewNRZ(p, count, freq)
	if err != nil {
		p.Close()
		return nil, err
	}
	r.closer = p
	return r, nil
}

// NewConsole prints frames as colored blocks on the terminal.
func NewConsole(count int) *Drawer {
	return NewDrawer(screen.New(count), count)
}
