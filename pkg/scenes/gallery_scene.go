package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/pagerdots/pkg/components"
	"github.com/decker502/pagerdots/pkg/config"
	"github.com/decker502/pagerdots/pkg/ecs"
	"github.com/decker502/pagerdots/pkg/game"
	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/decker502/pagerdots/pkg/painter"
	"github.com/decker502/pagerdots/pkg/systems"
	"github.com/decker502/pagerdots/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// 分页器名称（用作存档键）
const (
	pagerHorizontal = "horizontal"
	pagerVertical   = "vertical"
)

var backgroundColor = color.NRGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF}

// GalleryScene 指示器演示场景
//
// 一个水平分页器和一个垂直分页器，各自绑定普通圆点和蠕虫两种指示器。
// 拖动、方向键、滚轮或点击圆点都可以翻页，离开时记住每个分页器的页码。
type GalleryScene struct {
	entityManager *ecs.EntityManager
	settings      *game.SettingsManager

	pagerScrollSystem     *systems.PagerScrollSystem
	pagerRenderSystem     *systems.PagerRenderSystem
	indicatorInputSystem  *systems.IndicatorInputSystem
	indicatorRenderSystem *systems.IndicatorRenderSystem

	pagers map[string]ecs.EntityID
}

// NewGalleryScene 创建演示场景
//
// 参数：
//   - cfg: 指示器配置（样式、页数、动画）
//   - settings: 设置管理器，可为 nil（不记忆页码）
//   - variant: 只显示某种变体（"dots" / "worm"），空字符串显示全部
func NewGalleryScene(cfg *config.IndicatorConfig, settings *game.SettingsManager, variant string) (*GalleryScene, error) {
	return newGalleryScene(cfg, settings, variant, nil)
}

// newGalleryScene input 为 nil 时使用 Ebitengine 输入
func newGalleryScene(cfg *config.IndicatorConfig, settings *game.SettingsManager, variant string, input systems.PointerInput) (*GalleryScene, error) {
	dots, err := cfg.Dots.ToStyle()
	if err != nil {
		return nil, fmt.Errorf("invalid dots style: %w", err)
	}
	worm, err := cfg.Worm.ToStyle()
	if err != nil {
		return nil, fmt.Errorf("invalid worm style: %w", err)
	}
	easing, err := utils.EasingByName(cfg.Animation.Easing)
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	s := &GalleryScene{
		entityManager:         em,
		settings:              settings,
		pagerRenderSystem:     systems.NewPagerRenderSystem(em),
		indicatorRenderSystem: systems.NewIndicatorRenderSystem(em),
		pagers:                make(map[string]ecs.EntityID),
	}
	if input == nil {
		s.pagerScrollSystem = systems.NewPagerScrollSystem(em)
		s.indicatorInputSystem = systems.NewIndicatorInputSystem(em)
	} else {
		s.pagerScrollSystem = systems.NewPagerScrollSystemWithInput(em, input)
		s.indicatorInputSystem = systems.NewIndicatorInputSystemWithInput(em, input)
	}

	custom := painter.NewImagePainter(diamondImage(16))
	rows := rowsFor(variant, dots, worm)

	// 水平分页器，指示器在视口下方
	hID, hPager := s.createPager(pagerHorizontal, cfg, easing, indicator.Horizontal,
		config.PageViewX, config.PageViewY, config.PageViewWidth, config.PageViewHeight)
	for i, row := range rows {
		row.Style.Orientation = indicator.Horizontal
		w, _ := indicator.Size(hPager.PageCount, row.Style)
		x, y := horizontalIndicatorPos(i, w)
		var p painter.DotPainter
		if row.Custom {
			p = custom
		}
		s.createIndicator(hID, hPager, row, p, x, y)
	}

	// 垂直分页器，指示器在视口右侧（自定义图案只在水平分页器下展示）
	vID, vPager := s.createPager(pagerVertical, cfg, easing, indicator.Vertical,
		config.VerticalViewX, config.VerticalViewY, config.VerticalViewWidth, config.VerticalViewHeight)
	col := 0
	for _, row := range rows {
		if row.Custom {
			continue
		}
		row.Style.Orientation = indicator.Vertical
		_, h := indicator.Size(vPager.PageCount, row.Style)
		x, y := verticalIndicatorPos(col, h)
		s.createIndicator(vID, vPager, row, nil, x, y)
		col++
	}

	log.Printf("[GalleryScene] Created %d pagers with %d indicators (variant filter %q)",
		len(s.pagers), len(ecs.GetEntitiesWith1[*components.IndicatorComponent](em)), variant)
	return s, nil
}

func (s *GalleryScene) createPager(name string, cfg *config.IndicatorConfig, easing utils.EasingFunc, orientation indicator.Orientation, x, y, w, h float64) (ecs.EntityID, *components.PagerComponent) {
	start := cfg.InitialPage()
	if s.settings != nil {
		start = s.settings.LastPage(name, cfg.PageCount, start)
	}

	pager := components.NewPagerComponent(cfg.PageCount, start, orientation)
	pager.Width = w
	pager.Height = h
	pager.AnimDuration = cfg.AnimationDuration().Seconds()
	pager.Easing = easing
	pager.PageColors = pageColors(cfg.PageCount)
	pager.OnPageChanged = func(page int) {
		if s.settings != nil {
			s.settings.SetLastPage(name, page)
		}
	}

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, pager)
	s.entityManager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	s.pagers[name] = id
	return id, pager
}

func (s *GalleryScene) createIndicator(pagerID ecs.EntityID, pager *components.PagerComponent, row indicatorRow, p painter.DotPainter, x, y float64) ecs.EntityID {
	ind := components.NewIndicatorComponent(pagerID, row.Style, row.Variant, pager.Fraction)
	ind.Painter = p

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, ind)
	s.entityManager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	s.entityManager.AddComponent(id, &components.ClickableComponent{IsEnabled: true})
	return id
}

// Pager 返回指定名称的分页器组件
func (s *GalleryScene) Pager(name string) (*components.PagerComponent, bool) {
	id, ok := s.pagers[name]
	if !ok {
		return nil, false
	}
	return ecs.GetComponent[*components.PagerComponent](s.entityManager, id)
}

// Update 更新场景
func (s *GalleryScene) Update(deltaTime float64) {
	// 点击指示器优先于拖动分页器（两者区域不重叠）
	s.indicatorInputSystem.Update(deltaTime)
	s.pagerScrollSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *GalleryScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.pagerRenderSystem.Draw(screen)
	s.indicatorRenderSystem.Draw(screen)

	ebitenutil.DebugPrintAt(screen, helpText(), 10, config.GameWindowHeight-20)
}

// helpText 底部操作提示
func helpText() string {
	if utils.IsMobile() {
		return "Swipe a page or tap a dot to change page"
	}
	return "Drag, wheel, arrow keys or click a dot to change page. F11: fullscreen"
}

// SaveOnExit 保存每个分页器的页码
func (s *GalleryScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	for name := range s.pagers {
		if pager, ok := s.Pager(name); ok {
			s.settings.SetLastPage(name, pager.CurrentPage())
		}
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[GalleryScene] Failed to save settings: %v", err)
		return false
	}
	return true
}
