package components

import (
	"github.com/decker502/pagerdots/pkg/ecs"
	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/decker502/pagerdots/pkg/painter"
	"github.com/decker502/pagerdots/pkg/render"
)

// IndicatorComponent 圆点指示器组件
// 绑定到一个分页器实体，每帧由 IndicatorRenderSystem 拉取分页器状态并绘制。
type IndicatorComponent struct {
	// Pager 被观察的分页器实体
	Pager ecs.EntityID

	Style   indicator.Style
	Variant render.Variant

	// Painter 自定义圆点绘制器，nil 使用实心圆
	Painter painter.DotPainter

	// Worm 蠕虫变体的连线状态，普通变体为 nil
	Worm *indicator.WormTracker

	// Geometry 最近一帧的布局结果，点击测试使用
	Geometry indicator.Geometry

	// Fraction 计算 Geometry 时使用的连续页码
	Fraction float64
}

// NewIndicatorComponent 创建指示器组件，蠕虫变体会以分页器当前位置初始化连线
func NewIndicatorComponent(pager ecs.EntityID, style indicator.Style, variant render.Variant, fraction float64) *IndicatorComponent {
	c := &IndicatorComponent{
		Pager:    pager,
		Style:    style,
		Variant:  variant,
		Fraction: fraction,
	}
	if variant == render.VariantWorm {
		c.Worm = indicator.NewWormTracker(fraction)
	}
	return c
}
