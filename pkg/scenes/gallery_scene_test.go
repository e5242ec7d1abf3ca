package scenes

import (
	"strings"
	"testing"

	"github.com/decker502/pagerdots/pkg/components"
	"github.com/decker502/pagerdots/pkg/config"
	"github.com/decker502/pagerdots/pkg/ecs"
	"github.com/decker502/pagerdots/pkg/game"
	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/decker502/pagerdots/pkg/render"
	"github.com/decker502/pagerdots/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// idleInput 没有任何输入事件
type idleInput struct{}

func (idleInput) PointerState() (bool, int, int)       { return false, 0, 0 }
func (idleInput) JustPressed() (bool, int, int)        { return false, 0, 0 }
func (idleInput) IsKeyJustPressed(key ebiten.Key) bool { return false }
func (idleInput) Wheel() (float64, float64)            { return 0, 0 }

func TestNewGalleryScene(t *testing.T) {
	tests := []struct {
		name           string
		variant        string
		wantIndicators int
		wantWorms      int
	}{
		{"all variants", "", 5, 2},
		{"dots only", "dots", 3, 0},
		{"worm only", "worm", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewGalleryScene(config.DefaultIndicatorConfig(), nil, tt.variant)
			if err != nil {
				t.Fatalf("NewGalleryScene() error: %v", err)
			}

			ids := ecs.GetEntitiesWith1[*components.IndicatorComponent](s.entityManager)
			if len(ids) != tt.wantIndicators {
				t.Errorf("indicators = %d, want %d", len(ids), tt.wantIndicators)
			}

			worms := 0
			for _, id := range ids {
				ind, _ := ecs.GetComponent[*components.IndicatorComponent](s.entityManager, id)
				if ind.Variant == render.VariantWorm {
					worms++
					if ind.Worm == nil {
						t.Errorf("worm indicator %d has no tracker", id)
					}
				}
			}
			if worms != tt.wantWorms {
				t.Errorf("worm indicators = %d, want %d", worms, tt.wantWorms)
			}
		})
	}
}

// TestGalleryScene_StartsAtMiddlePage 默认从中间页开始
func TestGalleryScene_StartsAtMiddlePage(t *testing.T) {
	s, err := NewGalleryScene(config.DefaultIndicatorConfig(), nil, "")
	if err != nil {
		t.Fatalf("NewGalleryScene() error: %v", err)
	}

	for _, name := range []string{pagerHorizontal, pagerVertical} {
		pager, ok := s.Pager(name)
		if !ok {
			t.Fatalf("pager %q not found", name)
		}
		if pager.PageCount != 11 || pager.CurrentPage() != 5 {
			t.Errorf("%s pager = %d pages at %d, want 11 at 5", name, pager.PageCount, pager.CurrentPage())
		}
	}

	vertical, _ := s.Pager(pagerVertical)
	if vertical.Orientation != indicator.Vertical {
		t.Errorf("vertical pager orientation = %v", vertical.Orientation)
	}
}

// TestGalleryScene_RestoresAndSavesPages 从设置恢复页码，页码变化写回设置
func TestGalleryScene_RestoresAndSavesPages(t *testing.T) {
	settings := game.NewSettingsManager(nil)
	settings.SetLastPage(pagerHorizontal, 2)

	s, err := newGalleryScene(config.DefaultIndicatorConfig(), settings, "", idleInput{})
	if err != nil {
		t.Fatalf("NewGalleryScene() error: %v", err)
	}

	horizontal, _ := s.Pager(pagerHorizontal)
	if horizontal.CurrentPage() != 2 {
		t.Errorf("restored page = %d, want 2", horizontal.CurrentPage())
	}

	horizontal.AnimDuration = 0
	horizontal.ScrollToPage(8)
	s.Update(1.0 / 60)

	if got := settings.LastPage(pagerHorizontal, 11, -1); got != 8 {
		t.Errorf("saved page after change = %d, want 8", got)
	}
	if !s.SaveOnExit() {
		t.Error("SaveOnExit() in degraded mode should succeed")
	}
	if got := settings.LastPage(pagerVertical, 11, -1); got != 5 {
		t.Errorf("vertical page saved on exit = %d, want 5", got)
	}
}

func TestGalleryScene_InvalidStyle(t *testing.T) {
	cfg := config.DefaultIndicatorConfig()
	cfg.Worm.ActiveColor = "nope"

	if _, err := NewGalleryScene(cfg, nil, ""); err == nil {
		t.Error("NewGalleryScene() with invalid worm color should fail")
	}
}

// TestGalleryLayout 指示器全部落在窗口内
func TestGalleryLayout(t *testing.T) {
	style, _ := config.DefaultIndicatorConfig().Dots.ToStyle()
	style.Sizes.Active = 12

	for row := 0; row < 3; row++ {
		w, h := indicator.Size(11, style)
		x, y := horizontalIndicatorPos(row, w)
		if x < 0 || x+w > config.GameWindowWidth || y+h > config.GameWindowHeight {
			t.Errorf("horizontal row %d at (%v,%v) size %vx%v outside window", row, x, y, w, h)
		}
	}

	style.Orientation = indicator.Vertical
	for col := 0; col < 2; col++ {
		w, h := indicator.Size(11, style)
		x, y := verticalIndicatorPos(col, h)
		if x+w > config.GameWindowWidth || y < 0 || y+h > config.GameWindowHeight {
			t.Errorf("vertical column %d at (%v,%v) size %vx%v outside window", col, x, y, w, h)
		}
	}
}

func TestPageColors(t *testing.T) {
	colors := pageColors(11)
	if len(colors) != 11 {
		t.Fatalf("len(colors) = %d, want 11", len(colors))
	}
	seen := make(map[[3]uint8]bool)
	for i, c := range colors {
		if c.A != 0xFF {
			t.Errorf("color %d alpha = %d, want 255", i, c.A)
		}
		seen[[3]uint8{c.R, c.G, c.B}] = true
	}
	if len(seen) != 11 {
		t.Errorf("distinct colors = %d, want 11", len(seen))
	}
}

func TestDiamondImage(t *testing.T) {
	img := diamondImage(16)
	if img.RGBAAt(8, 8).A != 0xFF {
		t.Error("diamond centre should be opaque")
	}
	if img.RGBAAt(0, 0).A != 0 {
		t.Error("diamond corner should be transparent")
	}
}

func TestHelpText(t *testing.T) {
	t.Setenv(utils.MobileEmulateEnv, "1")
	if !strings.Contains(helpText(), "tap") {
		t.Errorf("mobile help text = %q", helpText())
	}

	t.Setenv(utils.MobileEmulateEnv, "")
	if !strings.Contains(helpText(), "F11") {
		t.Errorf("desktop help text = %q", helpText())
	}
}
