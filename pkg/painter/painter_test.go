package painter

import (
	"image"
	"image/color"
	"testing"
)

// recordingCanvas 记录绘制调用，用于断言
type recordingCanvas struct {
	circles []circleCall
	images  []imageCall
}

type circleCall struct {
	cx, cy, r float64
	clr       color.Color
}

type imageCall struct {
	x, y, sx, sy float64
	tint         color.Color
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	c.circles = append(c.circles, circleCall{cx, cy, r, clr})
}

func (c *recordingCanvas) DrawImage(src image.Image, x, y, sx, sy float64, tint color.Color) {
	c.images = append(c.images, imageCall{x, y, sx, sy, tint})
}

func TestCirclePainter(t *testing.T) {
	c := &recordingCanvas{}
	red := color.NRGBA{R: 255, A: 255}

	if _, ok := Circle.IntrinsicSize(); ok {
		t.Error("circle should have no intrinsic size")
	}

	Circle.Draw(c, 10, 20, Size{W: 8, H: 8}, red)
	if len(c.circles) != 1 {
		t.Fatalf("got %d circles, want 1", len(c.circles))
	}
	got := c.circles[0]
	if got.cx != 14 || got.cy != 24 || got.r != 4 || got.clr != red {
		t.Errorf("circle = %+v, want center (14,24) r=4", got)
	}

	// 尺寸为 0 时不绘制
	Circle.Draw(c, 0, 0, Size{}, red)
	if len(c.circles) != 1 {
		t.Errorf("zero-size draw produced a circle")
	}
}

func TestImagePainter(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	p := NewImagePainter(img)

	size, ok := p.IntrinsicSize()
	if !ok || size.W != 16 || size.H != 8 {
		t.Fatalf("IntrinsicSize = %+v, %v; want 16x8", size, ok)
	}

	c := &recordingCanvas{}
	p.Draw(c, 2, 3, Size{W: 8, H: 8}, color.White)
	if len(c.images) != 1 {
		t.Fatalf("got %d images, want 1", len(c.images))
	}
	if got := c.images[0]; got.x != 2 || got.y != 3 || got.sx != 0.5 || got.sy != 1 {
		t.Errorf("image call = %+v, want (2,3) scale (0.5,1)", got)
	}
}

func TestImagePainterNil(t *testing.T) {
	p := NewImagePainter(nil)
	if _, ok := p.IntrinsicSize(); ok {
		t.Error("nil image should have no intrinsic size")
	}
	c := &recordingCanvas{}
	p.Draw(c, 0, 0, Size{W: 4, H: 4}, color.White)
	if len(c.images) != 0 {
		t.Error("nil image painter should not draw")
	}
}
