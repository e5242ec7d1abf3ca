package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface 基于 *ebiten.Image 的绘制表面
type EbitenSurface struct {
	dst *ebiten.Image
	// 非 ebiten 图片转换后的缓存，避免每帧重复上传纹理
	images map[image.Image]*ebiten.Image
}

// NewEbitenSurface 创建绘制表面
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{
		dst:    dst,
		images: make(map[image.Image]*ebiten.Image),
	}
}

// Clip 返回一个只在 rect 范围内绘制的表面（共享图片缓存）
// SubImage 保留父图片坐标系，因此调用方仍使用屏幕坐标
func (s *EbitenSurface) Clip(rect image.Rectangle) *EbitenSurface {
	sub, ok := s.dst.SubImage(rect).(*ebiten.Image)
	if !ok {
		return s
	}
	return &EbitenSurface{dst: sub, images: s.images}
}

// WithClip 实现 ClipSurface
func (s *EbitenSurface) WithClip(rect image.Rectangle) Surface {
	return s.Clip(rect)
}

// FillCircle 填充圆
func (s *EbitenSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), clr, true)
}

// StrokeLine 绘制圆头线段
// vector.StrokeLine 为平头，两端各补一个半径为线宽一半的圆
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if width <= 0 {
		return
	}
	if x0 != x1 || y0 != y1 {
		vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
	}
	r := float32(width / 2)
	vector.DrawFilledCircle(s.dst, float32(x0), float32(y0), r, clr, true)
	vector.DrawFilledCircle(s.dst, float32(x1), float32(y1), r, clr, true)
}

// DrawImage 缩放并着色绘制图片
func (s *EbitenSurface) DrawImage(src image.Image, x, y, scaleX, scaleY float64, tint color.Color) {
	img := s.ebitenImage(src)
	if img == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(tint)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

func (s *EbitenSurface) ebitenImage(src image.Image) *ebiten.Image {
	if src == nil {
		return nil
	}
	if img, ok := src.(*ebiten.Image); ok {
		return img
	}
	if img, ok := s.images[src]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(src)
	s.images[src] = img
	return img
}
