//go:build !baremetal

package hal

import "sync"

// hostFramebuffer is an in-memory RGB565 (little-endian) Surface.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Size() (w, h int) { return f.width, f.height }

func (f *hostFramebuffer) FillScreen(c uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()

	lo := byte(c)
	hi := byte(c >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *hostFramebuffer) DrawPixel(x, y int, c uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setPixel(x, y, c)
}

func (f *hostFramebuffer) DrawLine(x0, y0, x1, y1 int, c uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()

	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, f.width, f.height)
	if !ok {
		return
	}
	plotLine(x0, y0, x1, y1, func(x, y int) { f.setPixel(x, y, c) })
}

func (f *hostFramebuffer) setPixel(x, y int, c uint16) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	off := y*f.stride + x*2
	if off < 0 || off+1 >= len(f.buf) {
		return
	}
	f.buf[off] = byte(c)
	f.buf[off+1] = byte(c >> 8)
}

func (f *hostFramebuffer) pixel(x, y int) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	off := y*f.stride + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
