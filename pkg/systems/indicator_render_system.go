package systems

import (
	"github.com/decker502/pagerdots/pkg/components"
	"github.com/decker502/pagerdots/pkg/ecs"
	"github.com/decker502/pagerdots/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// IndicatorRenderSystem 圆点指示器渲染系统
//
// 每帧从绑定的分页器拉取连续页码，重新计算布局（蠕虫变体同时推进连线），
// 生成绘制命令并在实体位置执行，绘制裁剪到指示器包围盒。布局结果写回 IndicatorComponent 供点击测试使用。
type IndicatorRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewIndicatorRenderSystem 创建指示器渲染系统
func NewIndicatorRenderSystem(em *ecs.EntityManager) *IndicatorRenderSystem {
	return &IndicatorRenderSystem{entityManager: em}
}

// Draw 绘制所有指示器到屏幕
func (s *IndicatorRenderSystem) Draw(screen *ebiten.Image) {
	s.DrawTo(render.NewEbitenSurface(screen))
}

// DrawTo 绘制所有指示器到任意表面
func (s *IndicatorRenderSystem) DrawTo(dst render.Surface) {
	entities := ecs.GetEntitiesWith2[*components.IndicatorComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		ind, _ := ecs.GetComponent[*components.IndicatorComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pager, ok := ecs.GetComponent[*components.PagerComponent](s.entityManager, ind.Pager)
		if !ok || pager == nil {
			continue
		}

		frame := render.Pull(render.FrameInput{
			Fraction:  pager.Fraction,
			PageCount: pager.PageCount,
			Style:     ind.Style,
			Variant:   ind.Variant,
			Painter:   ind.Painter,
			Worm:      ind.Worm,
		})

		ind.Geometry = frame.Geometry
		ind.Fraction = pager.Fraction

		// 可点击区域跟随包围盒
		if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
			clickable.Width = frame.Geometry.Width
			clickable.Height = frame.Geometry.Height
		}

		// 滑动中两侧预取的圆点会越出包围盒，裁掉
		clipped := render.ClipTo(dst, render.Bounds(frame.Geometry, pos.X, pos.Y))
		render.Execute(clipped, frame.Commands, pos.X, pos.Y)
	}
}
