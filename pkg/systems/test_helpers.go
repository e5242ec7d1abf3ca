package systems

import (
	"github.com/decker502/pagerdots/pkg/components"
	"github.com/decker502/pagerdots/pkg/ecs"
	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/decker502/pagerdots/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockPointerInput 用于测试的 mock 输入
// 每次调用 next() 后清空单帧事件
type mockPointerInput struct {
	pressed     bool
	x, y        int
	justPressed bool
	keys        map[ebiten.Key]bool
	wheelY      float64
}

func (m *mockPointerInput) PointerState() (bool, int, int) {
	return m.pressed, m.x, m.y
}

func (m *mockPointerInput) JustPressed() (bool, int, int) {
	return m.justPressed, m.x, m.y
}

func (m *mockPointerInput) IsKeyJustPressed(key ebiten.Key) bool {
	return m.keys[key]
}

func (m *mockPointerInput) Wheel() (float64, float64) {
	return 0, m.wheelY
}

// next 清空单帧事件
func (m *mockPointerInput) next() {
	m.justPressed = false
	m.keys = nil
	m.wheelY = 0
}

// createTestPager 创建测试用的分页器实体
func createTestPager(em *ecs.EntityManager, pageCount, startPage int, orientation indicator.Orientation, x, y, w, h float64) (ecs.EntityID, *components.PagerComponent) {
	id := em.CreateEntity()
	pager := components.NewPagerComponent(pageCount, startPage, orientation)
	pager.Width = w
	pager.Height = h
	em.AddComponent(id, pager)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	return id, pager
}

// createTestIndicator 创建绑定到 pager 的指示器实体
func createTestIndicator(em *ecs.EntityManager, pager ecs.EntityID, variant render.Variant, x, y float64) (ecs.EntityID, *components.IndicatorComponent) {
	p, _ := ecs.GetComponent[*components.PagerComponent](em, pager)
	id := em.CreateEntity()
	ind := components.NewIndicatorComponent(pager, indicator.DefaultStyle(), variant, p.Fraction)
	em.AddComponent(id, ind)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.ClickableComponent{IsEnabled: true})
	return id, ind
}
