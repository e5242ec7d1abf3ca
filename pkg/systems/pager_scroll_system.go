package systems

import (
	"log"
	"math"

	"github.com/decker502/pagerdots/pkg/components"
	"github.com/decker502/pagerdots/pkg/config"
	"github.com/decker502/pagerdots/pkg/ecs"
	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/decker502/pagerdots/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PagerScrollSystem 分页器滚动系统
// 负责推进分页器的连续页码
//
// 职责：
//   - 推进 ScrollToPage 发起的翻页动画
//   - 视口内拖动跟手，松开后吸附到整数页
//   - 方向键和滚轮翻页
//   - 整数页变化时调用 OnPageChanged
type PagerScrollSystem struct {
	entityManager *ecs.EntityManager
	input         PointerInput

	drag       utils.DragTracker
	dragTarget ecs.EntityID
}

// NewPagerScrollSystem 创建分页器滚动系统
func NewPagerScrollSystem(em *ecs.EntityManager) *PagerScrollSystem {
	return NewPagerScrollSystemWithInput(em, defaultPointerInput)
}

// NewPagerScrollSystemWithInput 创建带自定义输入的分页器滚动系统（用于测试）
func NewPagerScrollSystemWithInput(em *ecs.EntityManager, input PointerInput) *PagerScrollSystem {
	return &PagerScrollSystem{
		entityManager: em,
		input:         input,
		dragTarget:    ecs.InvalidEntity,
	}
}

// Update 更新所有分页器
// 参数:
//   - deltaTime: 时间增量（秒）
func (s *PagerScrollSystem) Update(deltaTime float64) {
	s.handleDrag()
	s.handleKeys()
	s.handleWheel()

	for _, id := range ecs.GetEntitiesWith1[*components.PagerComponent](s.entityManager) {
		pager, _ := ecs.GetComponent[*components.PagerComponent](s.entityManager, id)
		advanceAnimation(pager, deltaTime)
		notifyPageChange(id, pager)
	}
}

// advanceAnimation 推进翻页动画
func advanceAnimation(pager *components.PagerComponent, deltaTime float64) {
	if !pager.Animating {
		return
	}

	pager.AnimElapsed += deltaTime
	if pager.AnimDuration <= 0 || pager.AnimElapsed >= pager.AnimDuration {
		pager.Fraction = pager.AnimTo
		pager.Animating = false
		return
	}

	easing := pager.Easing
	if easing == nil {
		easing = utils.EaseOutCubic
	}
	t := easing(pager.AnimElapsed / pager.AnimDuration)
	pager.Fraction = utils.Lerp(pager.AnimFrom, pager.AnimTo, t)
}

func notifyPageChange(id ecs.EntityID, pager *components.PagerComponent) {
	page := pager.CurrentPage()
	if page == pager.LastPage {
		return
	}
	pager.LastPage = page
	log.Printf("[PagerScroll] Pager %d page changed to %d", id, page)
	if pager.OnPageChanged != nil {
		pager.OnPageChanged(page)
	}
}

// handleDrag 视口内拖动
func (s *PagerScrollSystem) handleDrag() {
	pressed, x, y := s.input.PointerState()
	s.drag.Update(pressed, x, y)

	switch s.drag.GetState() {
	case utils.DragStateStarted:
		id, pager := s.pagerAt(float64(x), float64(y))
		if pager == nil {
			s.dragTarget = ecs.InvalidEntity
			return
		}
		s.dragTarget = id
		pager.Animating = false
		pager.Dragging = true
		pager.DragStartFraction = pager.Fraction

	case utils.DragStateDragging:
		pager := s.dragPager()
		if pager == nil || !pager.Dragging {
			return
		}
		pager.Fraction = indicator.ClampFraction(pager.DragStartFraction-s.dragPages(pager), pager.PageCount)

	case utils.DragStateEnded:
		pager := s.dragPager()
		s.dragTarget = ecs.InvalidEntity
		if pager == nil || !pager.Dragging {
			return
		}
		pager.Dragging = false
		pager.ScrollToPage(snapPage(pager.DragStartFraction, s.dragPages(pager)))
	}
}

// dragPages 拖动距离换算成页数（向右/向下拖动为正）
func (s *PagerScrollSystem) dragPages(pager *components.PagerComponent) float64 {
	extent := pager.ViewExtent()
	if extent <= 0 {
		return 0
	}
	dx, dy := s.drag.GetDragDistance()
	delta := float64(dx)
	if pager.Orientation == indicator.Vertical {
		delta = float64(dy)
	}
	return delta / extent
}

// snapPage 松手后的目标页
// 拖动超过阈值时至少翻一页，否则吸附到最近页
func snapPage(startFraction, draggedPages float64) int {
	startPage := int(math.Round(startFraction))
	target := int(math.Round(startFraction - draggedPages))
	if target == startPage && math.Abs(draggedPages) >= config.SwipeThreshold {
		if draggedPages > 0 {
			target--
		} else {
			target++
		}
	}
	return target
}

func (s *PagerScrollSystem) dragPager() *components.PagerComponent {
	if s.dragTarget == ecs.InvalidEntity {
		return nil
	}
	pager, _ := ecs.GetComponent[*components.PagerComponent](s.entityManager, s.dragTarget)
	return pager
}

// pageKeys 方向键与翻页方向的对应关系
var pageKeys = []struct {
	key         ebiten.Key
	orientation indicator.Orientation
	delta       int
}{
	{ebiten.KeyArrowLeft, indicator.Horizontal, -1},
	{ebiten.KeyArrowRight, indicator.Horizontal, 1},
	{ebiten.KeyArrowUp, indicator.Vertical, -1},
	{ebiten.KeyArrowDown, indicator.Vertical, 1},
}

// handleKeys 左右键翻水平分页器，上下键翻垂直分页器
func (s *PagerScrollSystem) handleKeys() {
	for _, step := range pageKeys {
		if !s.input.IsKeyJustPressed(step.key) {
			continue
		}
		for _, id := range ecs.GetEntitiesWith1[*components.PagerComponent](s.entityManager) {
			pager, _ := ecs.GetComponent[*components.PagerComponent](s.entityManager, id)
			if pager.Orientation != step.orientation || pager.Dragging {
				continue
			}
			pager.ScrollToPage(targetPage(pager) + step.delta)
		}
	}
}

// handleWheel 指针所在分页器按滚轮方向翻页
func (s *PagerScrollSystem) handleWheel() {
	_, dy := s.input.Wheel()
	if dy == 0 {
		return
	}
	_, x, y := s.input.PointerState()
	_, pager := s.pagerAt(float64(x), float64(y))
	if pager == nil || pager.Dragging {
		return
	}

	// 向上滚动（dy > 0）回到上一页
	delta := config.WheelPagesPerNotch
	if dy > 0 {
		delta = -delta
	}
	pager.ScrollToPage(targetPage(pager) + delta)
}

// targetPage 动画中以动画终点为基准，连续按键可以叠加
func targetPage(pager *components.PagerComponent) int {
	if pager.Animating {
		return int(math.Round(pager.AnimTo))
	}
	return pager.CurrentPage()
}

// pagerAt 返回视口包含 (x, y) 的分页器
func (s *PagerScrollSystem) pagerAt(x, y float64) (ecs.EntityID, *components.PagerComponent) {
	for _, id := range ecs.GetEntitiesWith2[*components.PagerComponent, *components.PositionComponent](s.entityManager) {
		pager, _ := ecs.GetComponent[*components.PagerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if x >= pos.X && x < pos.X+pager.Width && y >= pos.Y && y < pos.Y+pager.Height {
			return id, pager
		}
	}
	return ecs.InvalidEntity, nil
}
