package indicator

import "math"

// HitTest 将主轴方向归一化的点击位置 tapFraction ∈ [0,1] 映射为目标页
// 在窗口首尾索引之间线性插值并四舍五入
func HitTest(tapFraction float64, window Span) int {
	if math.IsNaN(tapFraction) {
		tapFraction = 0
	}
	t := clamp(tapFraction, 0, 1)
	return int(math.Round(lerp(float64(window.First), float64(window.Last), t)))
}

// HitTestPoint 将指示器局部坐标 (x, y) 的点击映射为目标页
// 使用与布局相同的窗口规则（以四舍五入后的当前页为参考页）
func HitTestPoint(x, y float64, geom Geometry, fraction float64, pageCount int) int {
	extent := geom.MainExtent()
	if pageCount < 1 || extent <= 0 {
		return 0
	}

	pos := x
	if geom.Orientation == Vertical {
		pos = y
	}

	fraction = ClampFraction(fraction, pageCount)
	window := Window(geom.DotCount, int(math.Round(fraction)), pageCount)
	return HitTest(pos/extent, window)
}
