package systems

import (
	"log"

	"github.com/decker502/pagerdots/pkg/components"
	"github.com/decker502/pagerdots/pkg/ecs"
	"github.com/decker502/pagerdots/pkg/indicator"
)

// IndicatorInputSystem 指示器点击系统
// 点击指示器包围盒内的位置时，换算出目标页并让分页器以动画滚动过去
type IndicatorInputSystem struct {
	entityManager *ecs.EntityManager
	input         PointerInput
}

// NewIndicatorInputSystem 创建指示器点击系统
func NewIndicatorInputSystem(em *ecs.EntityManager) *IndicatorInputSystem {
	return NewIndicatorInputSystemWithInput(em, defaultPointerInput)
}

// NewIndicatorInputSystemWithInput 创建带自定义输入的指示器点击系统（用于测试）
func NewIndicatorInputSystemWithInput(em *ecs.EntityManager, input PointerInput) *IndicatorInputSystem {
	return &IndicatorInputSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 处理点击
func (s *IndicatorInputSystem) Update(deltaTime float64) {
	pressed, x, y := s.input.JustPressed()
	if !pressed {
		return
	}

	entities := ecs.GetEntitiesWith3[*components.IndicatorComponent, *components.PositionComponent, *components.ClickableComponent](s.entityManager)
	for _, id := range entities {
		ind, _ := ecs.GetComponent[*components.IndicatorComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)

		localX := float64(x) - pos.X
		localY := float64(y) - pos.Y
		if !clickable.Contains(localX, localY) {
			continue
		}

		pager, ok := ecs.GetComponent[*components.PagerComponent](s.entityManager, ind.Pager)
		if !ok || pager == nil {
			continue
		}

		page := indicator.HitTestPoint(localX, localY, ind.Geometry, ind.Fraction, pager.PageCount)
		log.Printf("[IndicatorInput] Tap at (%.0f, %.0f) on indicator %d -> page %d", localX, localY, id, page)
		pager.ScrollToPage(page)
		return
	}
}
