package indicator

import (
	"image/color"
	"math"
)

// Orientation 指示器主轴方向
type Orientation int

const (
	// Horizontal 水平排列（默认）
	Horizontal Orientation = iota
	// Vertical 垂直排列
	Vertical
)

// String 返回方向名称
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Sizes 各状态对应的圆点尺寸（像素）
type Sizes struct {
	Active float64 // 选中圆点尺寸，同时作为每个槽位的间距基准
	Normal float64 // 普通圆点尺寸
	Min    float64 // 边缘圆点尺寸
}

// Of 返回某个状态的尺寸，Invisible 为 0
func (s Sizes) Of(state DotState) float64 {
	switch state {
	case DotSelected:
		return s.Active
	case DotNormal:
		return s.Normal
	case DotSmallEdge:
		return s.Min
	default:
		return 0
	}
}

// Colors 选中 / 未选中圆点颜色
type Colors struct {
	Active   color.NRGBA
	Inactive color.NRGBA
}

// Of 返回某个状态的颜色
func (c Colors) Of(state DotState) color.NRGBA {
	if state == DotSelected {
		return c.Active
	}
	return c.Inactive
}

// Style 指示器的静态配置
type Style struct {
	DotCount    int
	Sizes       Sizes
	Spacing     float64
	Orientation Orientation
	Colors      Colors
}

// DefaultStyle 返回默认样式：5 个圆点，6/8/4 尺寸，间距 8，水平方向
func DefaultStyle() Style {
	return Style{
		DotCount: 5,
		Sizes: Sizes{
			Active: 8,
			Normal: 6,
			Min:    4,
		},
		Spacing:     8,
		Orientation: Horizontal,
		Colors: Colors{
			Active:   color.NRGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF},
			Inactive: color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF},
		},
	}
}

// DotVisual 插值后的圆点外观
type DotVisual struct {
	Size  float64
	Color color.NRGBA
}

// ClampFraction 将连续页码限制在 [0, pageCount-1]
// NaN 视为 0
func ClampFraction(fraction float64, pageCount int) float64 {
	if math.IsNaN(fraction) || fraction < 0 || pageCount < 1 {
		return 0
	}
	if last := float64(pageCount - 1); fraction > last {
		return last
	}
	return fraction
}

// SplitFraction 拆分连续页码为参考页和滑动进度 t ∈ [0,1)
func SplitFraction(fraction float64) (referencePage int, t float64) {
	floor := math.Floor(fraction)
	return int(floor), fraction - floor
}

// Visual 计算第 index 个圆点在连续页码 fraction 下的外观
//
// 在 floor(fraction) 与 floor(fraction)+1 两个参考页的状态之间线性插值，
// t=0 时严格等于当前参考页的外观。最后一页不再向后查看。
func Visual(index int, fraction float64, pageCount, dotCount int, sizes Sizes, colors Colors) DotVisual {
	fraction = ClampFraction(fraction, pageCount)
	ref, t := SplitFraction(fraction)

	next := ref + 1
	if next >= pageCount {
		next = ref
	}

	now := Classify(index, ref, pageCount, dotCount)
	future := Classify(index, next, pageCount, dotCount)

	return DotVisual{
		Size:  lerp(sizes.Of(now), sizes.Of(future), t),
		Color: LerpColor(colors.Of(now), colors.Of(future), t),
	}
}

// LerpColor 按通道线性插值两个颜色
func LerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return color.NRGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(lerp(float64(a), float64(b), t)))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
