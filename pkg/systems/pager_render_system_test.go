package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/pagerdots/pkg/components"
	"github.com/decker502/pagerdots/pkg/indicator"
)

func TestVisibleCards(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	pager := components.NewPagerComponent(3, 0, indicator.Horizontal)
	pager.Width, pager.Height = 200, 100
	pager.PageColors = []color.NRGBA{red}

	cards := visibleCards(pager)
	if len(cards) != 1 || cards[0].Page != 0 || cards[0].X != 0 || cards[0].Color != red {
		t.Fatalf("cards at page 0 = %+v", cards)
	}

	pager.Fraction = 1.25
	cards = visibleCards(pager)
	if len(cards) != 2 {
		t.Fatalf("len(cards) = %d, want 2", len(cards))
	}
	if cards[0].Page != 1 || cards[0].X != -50 {
		t.Errorf("first card = %+v, want page 1 at x=-50", cards[0])
	}
	if cards[1].Page != 2 || cards[1].X != 150 || cards[1].Color != defaultCardColor {
		t.Errorf("second card = %+v, want page 2 at x=150 with default color", cards[1])
	}

	pager.Orientation = indicator.Vertical
	cards = visibleCards(pager)
	if cards[1].Y != 75 || cards[1].X != 0 {
		t.Errorf("vertical second card = %+v, want y=75", cards[1])
	}
}
