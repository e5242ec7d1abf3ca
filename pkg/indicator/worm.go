package indicator

import "math"

// WormLine 蠕虫连线的起止位置（页单位，可为小数）
type WormLine struct {
	Start float64
	End   float64
}

// Len 返回连线长度（页单位）
func (l WormLine) Len() float64 {
	return math.Abs(l.End - l.Start)
}

// WormTracker 跟踪蠕虫连线的锚点
//
// 锚点是连线尾端当前停留的页。每次 Update 根据连续页码计算连线：
// 前半段滑动时头部从锚点伸向滑动方向，后半段尾部追上，
// 越过一整页后锚点跳到新的页。连线长度不会超过一页。
//
// WormTracker 不是并发安全的，一个指示器实例持有一个，
// 只能在同一个帧更新循环中调用。
type WormTracker struct {
	anchor int
}

// NewWormTracker 以 floor(fraction) 作为初始锚点创建跟踪器
func NewWormTracker(fraction float64) *WormTracker {
	w := &WormTracker{}
	w.Reset(fraction)
	return w
}

// Reset 重新初始化锚点（页数变化或重新绑定分页器时调用）
func (w *WormTracker) Reset(fraction float64) {
	w.anchor = int(math.Floor(math.Max(fraction, 0)))
}

// Anchor 返回当前锚点页
func (w *WormTracker) Anchor() int {
	return w.anchor
}

// Update 根据当前连续页码计算连线位置
//
// 方向由进入时 cur 相对锚点的位置决定，越过一整页时锚点跳到 round(cur)，
// 之后仍按该方向的公式计算（单帧跳过多页时连线可能领先于 cur）。
// 跳转后 cur 恰好等于锚点时连线退化为一点。
func (w *WormTracker) Update(cur float64) WormLine {
	anchor := float64(w.anchor)
	_, t := SplitFraction(cur)

	switch {
	case cur > anchor:
		if cur >= anchor+1 {
			w.anchor = int(math.Round(cur))
			anchor = float64(w.anchor)
			if cur == anchor {
				return WormLine{Start: anchor, End: anchor}
			}
		}
		return WormLine{
			Start: anchor + clamp(2*t-1, 0, 1),
			End:   anchor + clamp(2*t, 0, 1),
		}
	case cur < anchor:
		if cur <= anchor-1 {
			w.anchor = int(math.Round(cur))
			anchor = float64(w.anchor)
			if cur == anchor {
				return WormLine{Start: anchor, End: anchor}
			}
		}
		return WormLine{
			Start: anchor - clamp(1-2*t, 0, 1),
			End:   anchor - clamp(2-2*t, 0, 1),
		}
	default:
		return WormLine{Start: anchor, End: anchor}
	}
}

// WormStyle 由普通样式派生蠕虫变体使用的圆点样式
// 所有圆点统一使用 activeSize 和未选中颜色，选中态由连线表达
func WormStyle(style Style) Style {
	s := style
	s.Sizes.Normal = style.Sizes.Active
	s.Colors.Active = style.Colors.Inactive
	return s
}

// WormSegment 将连线换算为指示器局部坐标
// 线宽为 activeSize，端点为圆头
func WormSegment(geom Geometry, line WormLine) (x0, y0, x1, y1, width float64) {
	x0, y0 = geom.SlotCenter(line.Start)
	x1, y1 = geom.SlotCenter(line.End)
	return x0, y0, x1, y1, geom.ActiveSize
}
