package components

import (
	"image/color"
	"math"

	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/decker502/pagerdots/pkg/utils"
)

// PagerComponent 分页器组件
// 宿主分页器的状态：连续页码、翻页动画和拖动状态。
// 指示器每帧从这里读取 Fraction，不持有分页器的副本。
type PagerComponent struct {
	// PageCount 页数（>= 1）
	PageCount int

	// Fraction 当前连续页码 ∈ [0, PageCount-1]
	Fraction float64

	// Orientation 翻页方向
	Orientation indicator.Orientation

	// 视口尺寸（拖动翻页阈值按该尺寸计算）
	Width  float64
	Height float64

	// PageColors 每页卡片颜色（演示用，可为空）
	PageColors []color.NRGBA

	// 翻页动画
	Animating    bool
	AnimFrom     float64
	AnimTo       float64
	AnimElapsed  float64 // 已播放时间（秒）
	AnimDuration float64 // 动画时长（秒），0 表示立即跳转
	Easing       utils.EasingFunc

	// 拖动
	Dragging          bool
	DragStartFraction float64

	// LastPage 上次通知的页码，PagerScrollSystem 用于检测页码变化
	LastPage int

	// OnPageChanged 整数页码变化时的回调（可选）
	OnPageChanged func(page int)
}

// NewPagerComponent 创建分页器，startPage 会被限制在有效范围内
func NewPagerComponent(pageCount, startPage int, orientation indicator.Orientation) *PagerComponent {
	if pageCount < 1 {
		pageCount = 1
	}
	page := clampPage(startPage, pageCount)
	return &PagerComponent{
		PageCount:    pageCount,
		Fraction:     float64(page),
		Orientation:  orientation,
		AnimDuration: 0.3,
		Easing:       utils.EaseOutCubic,
		LastPage:     page,
	}
}

// CurrentPage 返回离当前位置最近的整数页
func (p *PagerComponent) CurrentPage() int {
	return clampPage(int(math.Round(p.Fraction)), p.PageCount)
}

// ScrollToPage 以动画滚动到目标页（越界时限制到首页或末页）
// 调用后立即返回，动画由 PagerScrollSystem 推进；新的调用会打断进行中的动画。
func (p *PagerComponent) ScrollToPage(page int) {
	target := float64(clampPage(page, p.PageCount))
	p.Dragging = false
	if p.AnimDuration <= 0 || target == p.Fraction {
		p.Animating = false
		p.Fraction = target
		return
	}
	p.Animating = true
	p.AnimFrom = p.Fraction
	p.AnimTo = target
	p.AnimElapsed = 0
}

// JumpTo 立即移动到连续页码（限制到有效范围），并取消进行中的动画
func (p *PagerComponent) JumpTo(fraction float64) {
	p.Animating = false
	p.Fraction = indicator.ClampFraction(fraction, p.PageCount)
}

// ViewExtent 返回视口在翻页方向上的尺寸
func (p *PagerComponent) ViewExtent() float64 {
	if p.Orientation == indicator.Vertical {
		return p.Height
	}
	return p.Width
}

func clampPage(page, pageCount int) int {
	if page < 0 {
		return 0
	}
	if page > pageCount-1 {
		return pageCount - 1
	}
	return page
}
