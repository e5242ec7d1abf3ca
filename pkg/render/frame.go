package render

import (
	"fmt"
	"strings"

	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/decker502/pagerdots/pkg/painter"
)

// Variant 指示器变体
type Variant int

const (
	// VariantDots 普通圆点
	VariantDots Variant = iota
	// VariantWorm 蠕虫连线
	VariantWorm
)

// String 返回变体名称
func (v Variant) String() string {
	if v == VariantWorm {
		return "worm"
	}
	return "dots"
}

// ParseVariant 解析变体名称（"dots" / "worm"，不区分大小写）
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dots":
		return VariantDots, nil
	case "worm":
		return VariantWorm, nil
	default:
		return VariantDots, fmt.Errorf("unknown indicator variant %q", s)
	}
}

// FrameInput 一帧所需的全部输入
type FrameInput struct {
	Fraction  float64
	PageCount int
	Style     indicator.Style
	Variant   Variant
	Painter   painter.DotPainter
	// Worm 为蠕虫变体的锚点状态，由调用方持有并在帧之间复用
	// 为 nil 时蠕虫变体按无锚点（起止重合）处理
	Worm *indicator.WormTracker
}

// Frame 一帧的计算结果
type Frame struct {
	Geometry indicator.Geometry
	Commands []DrawCommand
	Worm     indicator.WormLine
}

// Pull 每帧调用一次，从输入重新计算布局和绘制命令
//
// 除 Worm 锚点外不缓存任何状态。
func Pull(in FrameInput) Frame {
	fraction := indicator.ClampFraction(in.Fraction, in.PageCount)

	if in.Variant != VariantWorm {
		geom := indicator.Layout(fraction, in.PageCount, in.Style)
		return Frame{
			Geometry: geom,
			Commands: BuildCommands(geom, in.Painter),
		}
	}

	geom := indicator.Layout(fraction, in.PageCount, indicator.WormStyle(in.Style))
	line := indicator.WormLine{Start: fraction, End: fraction}
	if in.Worm != nil {
		line = in.Worm.Update(fraction)
	}

	cmds := BuildCommands(geom, in.Painter)
	if in.PageCount > 0 {
		cmds = AppendWorm(cmds, geom, line, in.Style.Colors.Active)
	}
	return Frame{
		Geometry: geom,
		Commands: cmds,
		Worm:     line,
	}
}
