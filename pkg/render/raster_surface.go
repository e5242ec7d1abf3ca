package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
)

// RasterSurface 基于 *image.RGBA 的软件绘制表面
//
// 用于无窗口环境下导出帧（cmd/pagerdots-render）以及像素级测试。
// 以像素中心采样判断覆盖，按 source-over 混合。
type RasterSurface struct {
	img  *image.RGBA
	clip image.Rectangle
}

// NewRasterSurface 创建 width x height 的透明画布
func NewRasterSurface(width, height int) *RasterSurface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &RasterSurface{img: img, clip: img.Bounds()}
}

// Image 返回底层图片
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

// Fill 用纯色填充整个画布
func (s *RasterSurface) Fill(clr color.Color) {
	c := color.RGBAModel.Convert(clr).(color.RGBA)
	b := s.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s.img.SetRGBA(x, y, c)
		}
	}
}

// SetClip 限制后续绘制区域（与画布边界求交）
func (s *RasterSurface) SetClip(rect image.Rectangle) {
	s.clip = rect.Intersect(s.img.Bounds())
}

// WithClip 返回共享同一画布、只在 rect 范围内绘制的表面
func (s *RasterSurface) WithClip(rect image.Rectangle) Surface {
	return &RasterSurface{img: s.img, clip: rect.Intersect(s.clip)}
}

// FillCircle 填充圆
func (s *RasterSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	c := toNRGBA(clr)
	r2 := r * r
	s.scan(cx-r, cy-r, cx+r, cy+r, func(px, py float64) bool {
		dx, dy := px-cx, py-cy
		return dx*dx+dy*dy <= r2
	}, c)
}

// StrokeLine 绘制圆头线段（胶囊形）
func (s *RasterSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if width <= 0 {
		return
	}
	c := toNRGBA(clr)
	r := width / 2
	r2 := r * r
	vx, vy := x1-x0, y1-y0
	l2 := vx*vx + vy*vy

	s.scan(math.Min(x0, x1)-r, math.Min(y0, y1)-r, math.Max(x0, x1)+r, math.Max(y0, y1)+r, func(px, py float64) bool {
		t := 0.0
		if l2 > 0 {
			t = ((px-x0)*vx + (py-y0)*vy) / l2
			t = math.Max(0, math.Min(1, t))
		}
		dx := px - (x0 + t*vx)
		dy := py - (y0 + t*vy)
		return dx*dx+dy*dy <= r2
	}, c)
}

// DrawImage 最近邻缩放绘制图片，颜色按通道与 tint 相乘
func (s *RasterSurface) DrawImage(src image.Image, x, y, scaleX, scaleY float64, tint color.Color) {
	if src == nil || scaleX <= 0 || scaleY <= 0 {
		return
	}
	t := toNRGBA(tint)
	sb := src.Bounds()
	w := float64(sb.Dx()) * scaleX
	h := float64(sb.Dy()) * scaleY

	minX, minY, maxX, maxY := s.pixelRange(x, y, x+w, y+h)
	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			sx := sb.Min.X + int((float64(px)+0.5-x)/scaleX)
			sy := sb.Min.Y + int((float64(py)+0.5-y)/scaleY)
			if !image.Pt(sx, sy).In(sb) {
				continue
			}
			c := color.NRGBAModel.Convert(src.At(sx, sy)).(color.NRGBA)
			c.R = mul8(c.R, t.R)
			c.G = mul8(c.G, t.G)
			c.B = mul8(c.B, t.B)
			c.A = mul8(c.A, t.A)
			s.blend(px, py, c)
		}
	}
}

// WritePNG 将画布编码为 PNG
func (s *RasterSurface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG 将画布保存为 PNG 文件
func (s *RasterSurface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// scan 遍历包围盒内的像素，inside 返回 true 的像素以 c 混合
func (s *RasterSurface) scan(x0, y0, x1, y1 float64, inside func(px, py float64) bool, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	minX, minY, maxX, maxY := s.pixelRange(x0, y0, x1, y1)
	for py := minY; py < maxY; py++ {
		fy := float64(py) + 0.5
		for px := minX; px < maxX; px++ {
			if inside(float64(px)+0.5, fy) {
				s.blend(px, py, c)
			}
		}
	}
}

// pixelRange 将浮点包围盒转换为裁剪后的像素范围 [min, max)
func (s *RasterSurface) pixelRange(x0, y0, x1, y1 float64) (minX, minY, maxX, maxY int) {
	minX = max(s.clip.Min.X, int(math.Floor(x0)))
	minY = max(s.clip.Min.Y, int(math.Floor(y0)))
	maxX = min(s.clip.Max.X, int(math.Ceil(x1)))
	maxY = min(s.clip.Max.Y, int(math.Ceil(y1)))
	return minX, minY, maxX, maxY
}

// blend source-over 混合（目标为预乘 RGBA）
func (s *RasterSurface) blend(x, y int, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	d := s.img.RGBAAt(x, y)
	a := uint32(c.A)
	inv := 255 - a
	s.img.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(c.R)*a + uint32(d.R)*inv) / 255),
		G: uint8((uint32(c.G)*a + uint32(d.G)*inv) / 255),
		B: uint8((uint32(c.B)*a + uint32(d.B)*inv) / 255),
		A: uint8((255*a + uint32(d.A)*inv) / 255),
	})
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func mul8(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}
