// Package painter 定义圆点形状的绘制能力
//
// 指示器本身只关心“在位置 P 以尺寸 S、颜色 C 画一个形状”，
// 具体形状由 DotPainter 实现。默认实现是实心圆 CirclePainter，
// 也可以用 ImagePainter 把任意图片当作圆点。
package painter

import (
	"image"
	"image/color"
	"math"
)

// Size 二维尺寸
type Size struct {
	W float64
	H float64
}

// Canvas 是 DotPainter 可以使用的最小绘制接口
// 由 render 包的 Ebitengine / 光栅表面实现
type Canvas interface {
	// FillCircle 以 (cx, cy) 为圆心填充半径 r 的圆
	FillCircle(cx, cy, r float64, clr color.Color)
	// DrawImage 把 src 缩放 (scaleX, scaleY) 后绘制到 (x, y)，并以 tint 着色
	DrawImage(src image.Image, x, y, scaleX, scaleY float64, tint color.Color)
}

// DotPainter 圆点形状绘制能力
type DotPainter interface {
	// IntrinsicSize 返回形状的固有尺寸，第二个返回值为 false 表示未指定
	IntrinsicSize() (Size, bool)
	// Draw 在左上角 (x, y) 处绘制尺寸为 size、颜色为 tint 的形状
	Draw(dst Canvas, x, y float64, size Size, tint color.Color)
}

// CirclePainter 默认的实心圆
type CirclePainter struct{}

// Circle 默认圆点绘制器
var Circle DotPainter = CirclePainter{}

// IntrinsicSize 圆没有固有尺寸，总是填满目标区域
func (CirclePainter) IntrinsicSize() (Size, bool) {
	return Size{}, false
}

// Draw 在目标区域内绘制内切圆
func (CirclePainter) Draw(dst Canvas, x, y float64, size Size, tint color.Color) {
	r := math.Min(size.W, size.H) / 2
	if r <= 0 {
		return
	}
	dst.FillCircle(x+size.W/2, y+size.H/2, r, tint)
}

// ImagePainter 使用图片作为圆点形状
//
// 图片按 tint 着色（通道相乘），白色图片即得到纯 tint 颜色。
// 固有尺寸为图片像素尺寸，绘制时按目标尺寸缩放。
type ImagePainter struct {
	Image image.Image
}

// NewImagePainter 创建图片绘制器
func NewImagePainter(img image.Image) *ImagePainter {
	return &ImagePainter{Image: img}
}

// IntrinsicSize 返回图片尺寸
func (p *ImagePainter) IntrinsicSize() (Size, bool) {
	if p.Image == nil {
		return Size{}, false
	}
	b := p.Image.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return Size{}, false
	}
	return Size{W: float64(b.Dx()), H: float64(b.Dy())}, true
}

// Draw 将图片缩放到 size 后绘制
func (p *ImagePainter) Draw(dst Canvas, x, y float64, size Size, tint color.Color) {
	intrinsic, ok := p.IntrinsicSize()
	if !ok || size.W <= 0 || size.H <= 0 {
		return
	}
	dst.DrawImage(p.Image, x, y, size.W/intrinsic.W, size.H/intrinsic.H, tint)
}
