package indicator

import (
	"image/color"
	"math"
)

// DotPlacement 单个圆点在指示器局部坐标系中的绘制信息
// X/Y 为圆点外接正方形的左上角
type DotPlacement struct {
	Index int
	X     float64
	Y     float64
	Size  float64
	Color color.NRGBA
	State DotState // floor(fraction) 参考页上的状态
}

// Geometry 一帧的布局结果
type Geometry struct {
	Width       float64 // 包围盒宽度
	Height      float64 // 包围盒高度
	Scroll      float64 // 主轴滚动偏移
	Pitch       float64 // 相邻槽位间距（activeSize + spacing）
	ActiveSize  float64
	DotCount    int  // 实际圆点数
	Window      Span // 本帧遍历的圆点区间（已向两侧各扩展一个）
	Orientation Orientation
	Dots        []DotPlacement
}

// MainExtent 返回主轴方向的长度
func (g Geometry) MainExtent() float64 {
	if g.Orientation == Vertical {
		return g.Height
	}
	return g.Width
}

// SlotCenter 返回连续页位置 page 对应槽位中心的局部坐标（已包含滚动偏移）
func (g Geometry) SlotCenter(page float64) (x, y float64) {
	main := page*g.Pitch + g.Scroll + g.ActiveSize/2
	cross := g.ActiveSize / 2
	return g.axes(main, cross)
}

func (g Geometry) axes(main, cross float64) (x, y float64) {
	if g.Orientation == Vertical {
		return cross, main
	}
	return main, cross
}

// Size 返回指示器包围盒尺寸
func Size(pageCount int, style Style) (width, height float64) {
	if pageCount < 1 {
		return 0, 0
	}
	n := EffectiveDotCount(style.DotCount, pageCount)
	main := style.Sizes.Active*float64(n) + style.Spacing*float64(n-1)
	cross := style.Sizes.Active
	if style.Orientation == Vertical {
		return cross, main
	}
	return main, cross
}

// Layout 计算连续页码 fraction 下所有可见圆点的位置、尺寸和颜色
//
// 所有槽位都按 activeSize 等距排列，圆点缩放不会推动相邻圆点。
// 页数多于圆点数时，视口以当前连续位置为中心滚动，
// 并被限制在第一个和最后一个圆点之间，不会滚出边界。
func Layout(fraction float64, pageCount int, style Style) Geometry {
	geom := Geometry{
		Orientation: style.Orientation,
		ActiveSize:  style.Sizes.Active,
		Pitch:       style.Sizes.Active + style.Spacing,
		Window:      Span{First: 0, Last: -1},
	}
	if pageCount < 1 {
		return geom
	}

	n := EffectiveDotCount(style.DotCount, pageCount)
	fraction = ClampFraction(fraction, pageCount)

	geom.DotCount = n
	geom.Width, geom.Height = Size(pageCount, style)
	geom.Scroll = scrollOffset(fraction, pageCount, n, geom.MainExtent(), geom.Pitch, style.Sizes.Active)

	rounded := int(math.Round(fraction))
	geom.Window = Window(n, rounded, pageCount).Pad(1, pageCount)

	ref, _ := SplitFraction(fraction)
	geom.Dots = make([]DotPlacement, 0, geom.Window.Len())
	for i := geom.Window.First; i <= geom.Window.Last; i++ {
		v := Visual(i, fraction, pageCount, n, style.Sizes, style.Colors)
		if v.Size <= 0 {
			continue
		}

		inset := (style.Sizes.Active - v.Size) / 2
		main := float64(i)*geom.Pitch + geom.Scroll + inset
		x, y := geom.axes(main, inset)

		geom.Dots = append(geom.Dots, DotPlacement{
			Index: i,
			X:     x,
			Y:     y,
			Size:  v.Size,
			Color: v.Color,
			State: Classify(i, ref, pageCount, n),
		})
	}
	return geom
}

// scrollOffset 计算主轴滚动偏移
//
// 视口中心对齐当前连续位置所在槽位的中心，位置被限制在 [half, pageCount-1-half]，
// 因此首尾圆点始终贴合视口边缘。页数为偶数时当前圆点同样保持居中。
func scrollOffset(fraction float64, pageCount, dotCount int, extent, pitch, activeSize float64) float64 {
	if dotCount >= pageCount {
		return 0
	}
	half := float64(dotCount / 2)
	focus := clamp(fraction, half, float64(pageCount-1)-half)
	return extent/2 - (focus*pitch + activeSize/2)
}
