package systems

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/decker502/pagerdots/pkg/components"
	"github.com/decker502/pagerdots/pkg/ecs"
	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 卡片缺省颜色（PageColors 为空时使用）
var defaultCardColor = color.NRGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF}

// PagerRenderSystem 分页器内容渲染系统
// 在视口内按连续页码绘制页卡片，视口外的部分被裁剪
type PagerRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewPagerRenderSystem 创建分页器渲染系统
func NewPagerRenderSystem(em *ecs.EntityManager) *PagerRenderSystem {
	return &PagerRenderSystem{entityManager: em}
}

// Draw 绘制所有分页器
func (s *PagerRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PagerComponent, *components.PositionComponent](s.entityManager) {
		pager, _ := ecs.GetComponent[*components.PagerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		view := image.Rect(int(pos.X), int(pos.Y), int(pos.X+pager.Width), int(pos.Y+pager.Height))
		dst, ok := screen.SubImage(view).(*ebiten.Image)
		if !ok {
			continue
		}

		for _, card := range visibleCards(pager) {
			x := pos.X + card.X
			y := pos.Y + card.Y
			vector.DrawFilledRect(dst, float32(x), float32(y), float32(pager.Width), float32(pager.Height), card.Color, false)
			vector.StrokeRect(dst, float32(x), float32(y), float32(pager.Width), float32(pager.Height), 2, color.NRGBA{A: 0x40}, false)
			ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Page %d", card.Page+1), int(x)+8, int(y)+8)
		}
	}
}

// pageCard 一张页卡片相对视口左上角的位置
type pageCard struct {
	Page  int
	X     float64
	Y     float64
	Color color.NRGBA
}

// visibleCards 返回与视口相交的页卡片（最多两张）
func visibleCards(pager *components.PagerComponent) []pageCard {
	if pager.PageCount < 1 {
		return nil
	}

	extent := pager.ViewExtent()
	fraction := indicator.ClampFraction(pager.Fraction, pager.PageCount)
	first := int(math.Floor(fraction))
	last := int(math.Ceil(fraction))

	cards := make([]pageCard, 0, 2)
	for page := first; page <= last; page++ {
		offset := (float64(page) - fraction) * extent
		card := pageCard{Page: page, Color: defaultCardColor}
		if page < len(pager.PageColors) {
			card.Color = pager.PageColors[page]
		}
		if pager.Orientation == indicator.Vertical {
			card.Y = offset
		} else {
			card.X = offset
		}
		cards = append(cards, card)
	}
	return cards
}
