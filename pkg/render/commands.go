// Package render 将指示器布局转换为绘制命令并在具体表面上执行
//
// 每帧的流程：
//
//	Pull(FrameInput) → Frame{Geometry, Commands} → Execute(Surface, Commands, originX, originY)
//
// Surface 有两个实现：EbitenSurface（运行时）和 RasterSurface（无窗口导出 / 测试）。
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/decker502/pagerdots/pkg/painter"
)

// Surface 绘制表面
type Surface interface {
	painter.Canvas
	// StrokeLine 绘制圆头线段
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// ClipSurface 可以派生出裁剪子表面的 Surface
// 子表面与父表面共享像素，坐标系不变
type ClipSurface interface {
	Surface
	WithClip(rect image.Rectangle) Surface
}

// ClipTo 将绘制限制在 rect 内；dst 不支持裁剪时原样返回
func ClipTo(dst Surface, rect image.Rectangle) Surface {
	if c, ok := dst.(ClipSurface); ok {
		return c.WithClip(rect)
	}
	return dst
}

// Bounds 返回原点在 (originX, originY) 的布局包围盒（向外取整到像素）
func Bounds(geom indicator.Geometry, originX, originY float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(originX)),
		int(math.Floor(originY)),
		int(math.Ceil(originX+geom.Width)),
		int(math.Ceil(originY+geom.Height)),
	)
}

// CommandKind 绘制命令类型
type CommandKind int

const (
	// CommandDot 用 DotPainter 绘制一个圆点
	CommandDot CommandKind = iota
	// CommandLine 绘制蠕虫连线
	CommandLine
)

// DrawCommand 单条绘制命令，坐标均为指示器局部坐标
type DrawCommand struct {
	Kind    CommandKind
	Painter painter.DotPainter
	Index   int // 圆点索引（连线为 -1）

	X    float64
	Y    float64
	Size float64

	// 仅 CommandLine 使用
	X1    float64
	Y1    float64
	Width float64

	Color color.NRGBA
}

// BuildCommands 按布局顺序为每个可见圆点生成绘制命令
// p 为 nil 时使用默认圆形
func BuildCommands(geom indicator.Geometry, p painter.DotPainter) []DrawCommand {
	if p == nil {
		p = painter.Circle
	}
	cmds := make([]DrawCommand, 0, len(geom.Dots)+1)
	for _, d := range geom.Dots {
		cmds = append(cmds, DrawCommand{
			Kind:    CommandDot,
			Painter: p,
			Index:   d.Index,
			X:       d.X,
			Y:       d.Y,
			Size:    d.Size,
			Color:   d.Color,
		})
	}
	return cmds
}

// AppendWorm 在命令列表末尾追加蠕虫连线
func AppendWorm(cmds []DrawCommand, geom indicator.Geometry, line indicator.WormLine, clr color.NRGBA) []DrawCommand {
	x0, y0, x1, y1, width := indicator.WormSegment(geom, line)
	return append(cmds, DrawCommand{
		Kind:  CommandLine,
		Index: -1,
		X:     x0,
		Y:     y0,
		X1:    x1,
		Y1:    y1,
		Width: width,
		Color: clr,
	})
}

// Execute 在 dst 上依次执行绘制命令，(originX, originY) 为指示器左上角
func Execute(dst Surface, cmds []DrawCommand, originX, originY float64) {
	for _, c := range cmds {
		switch c.Kind {
		case CommandDot:
			if c.Size <= 0 || c.Painter == nil {
				continue
			}
			c.Painter.Draw(dst, originX+c.X, originY+c.Y, painter.Size{W: c.Size, H: c.Size}, c.Color)
		case CommandLine:
			dst.StrokeLine(originX+c.X, originY+c.Y, originX+c.X1, originY+c.Y1, c.Width, c.Color)
		}
	}
}
