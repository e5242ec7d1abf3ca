package systems

import (
	"math"
	"testing"

	"github.com/decker502/pagerdots/pkg/ecs"
	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/decker502/pagerdots/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestPagerScrollSystem_Animation 翻页动画按时长推进并精确落在目标页
func TestPagerScrollSystem_Animation(t *testing.T) {
	em := ecs.NewEntityManager()
	input := &mockPointerInput{}
	system := NewPagerScrollSystemWithInput(em, input)

	_, pager := createTestPager(em, 11, 5, indicator.Horizontal, 0, 0, 200, 100)
	pager.Easing = utils.EaseLinear

	var changes []int
	pager.OnPageChanged = func(page int) { changes = append(changes, page) }

	pager.ScrollToPage(9)
	if !pager.Animating || pager.AnimFrom != 5 || pager.AnimTo != 9 {
		t.Fatalf("ScrollToPage did not start animation: %+v", pager)
	}

	system.Update(0.15)
	if math.Abs(pager.Fraction-7) > 1e-9 {
		t.Errorf("fraction at half time = %v, want 7", pager.Fraction)
	}

	system.Update(0.2)
	if pager.Animating || pager.Fraction != 9 {
		t.Errorf("after animation: animating=%v fraction=%v, want false / 9", pager.Animating, pager.Fraction)
	}

	// 动画途中经过 7 和 9 两次通知
	if len(changes) != 2 || changes[0] != 7 || changes[1] != 9 {
		t.Errorf("OnPageChanged calls = %v, want [7 9]", changes)
	}
}

func TestPagerComponent_ScrollToPageClamps(t *testing.T) {
	em := ecs.NewEntityManager()
	_, pager := createTestPager(em, 4, 1, indicator.Horizontal, 0, 0, 100, 100)
	pager.AnimDuration = 0

	pager.ScrollToPage(10)
	if pager.Fraction != 3 {
		t.Errorf("ScrollToPage(10) fraction = %v, want 3", pager.Fraction)
	}
	pager.ScrollToPage(-2)
	if pager.Fraction != 0 {
		t.Errorf("ScrollToPage(-2) fraction = %v, want 0", pager.Fraction)
	}
}

// TestPagerScrollSystem_Keys 方向键只作用于对应方向的分页器
func TestPagerScrollSystem_Keys(t *testing.T) {
	em := ecs.NewEntityManager()
	input := &mockPointerInput{}
	system := NewPagerScrollSystemWithInput(em, input)

	_, horizontal := createTestPager(em, 11, 5, indicator.Horizontal, 0, 0, 100, 100)
	_, vertical := createTestPager(em, 11, 5, indicator.Vertical, 200, 0, 100, 100)

	input.keys = map[ebiten.Key]bool{ebiten.KeyArrowRight: true}
	system.Update(0)
	input.next()

	if horizontal.AnimTo != 6 || !horizontal.Animating {
		t.Errorf("horizontal pager target = %v, want 6", horizontal.AnimTo)
	}
	if vertical.Animating {
		t.Error("vertical pager should not react to ArrowRight")
	}

	// 动画中再次按键在终点基础上叠加
	input.keys = map[ebiten.Key]bool{ebiten.KeyArrowRight: true}
	system.Update(0)
	if horizontal.AnimTo != 7 {
		t.Errorf("second ArrowRight target = %v, want 7", horizontal.AnimTo)
	}
}

func TestPagerScrollSystem_Wheel(t *testing.T) {
	em := ecs.NewEntityManager()
	input := &mockPointerInput{x: 50, y: 50, wheelY: -1}
	system := NewPagerScrollSystemWithInput(em, input)

	_, pager := createTestPager(em, 11, 5, indicator.Vertical, 0, 0, 100, 100)
	pager.AnimDuration = 0

	system.Update(0)
	if pager.Fraction != 6 {
		t.Errorf("wheel down fraction = %v, want 6", pager.Fraction)
	}

	// 指针不在视口内时忽略
	input.x = 500
	input.wheelY = 1
	system.Update(0)
	if pager.Fraction != 6 {
		t.Errorf("wheel outside view fraction = %v, want 6", pager.Fraction)
	}
}

// TestPagerScrollSystem_Drag 拖动跟手，松开后超过阈值翻到下一页
func TestPagerScrollSystem_Drag(t *testing.T) {
	em := ecs.NewEntityManager()
	input := &mockPointerInput{}
	system := NewPagerScrollSystemWithInput(em, input)

	_, pager := createTestPager(em, 5, 2, indicator.Horizontal, 0, 0, 100, 50)
	pager.AnimDuration = 0

	input.pressed, input.x, input.y = true, 50, 25
	system.Update(1.0 / 60)
	if !pager.Dragging {
		t.Fatal("pager should be dragging after press inside view")
	}

	input.x = 20
	system.Update(1.0 / 60)
	if math.Abs(pager.Fraction-2.3) > 1e-9 {
		t.Errorf("dragging fraction = %v, want 2.3", pager.Fraction)
	}

	input.pressed = false
	system.Update(1.0 / 60)
	if pager.Dragging || pager.Fraction != 3 {
		t.Errorf("after release: dragging=%v fraction=%v, want false / 3", pager.Dragging, pager.Fraction)
	}
}

func TestPagerScrollSystem_DragClampsAtEdge(t *testing.T) {
	em := ecs.NewEntityManager()
	input := &mockPointerInput{}
	system := NewPagerScrollSystemWithInput(em, input)

	_, pager := createTestPager(em, 5, 0, indicator.Horizontal, 0, 0, 100, 50)
	pager.AnimDuration = 0

	input.pressed, input.x, input.y = true, 10, 25
	system.Update(0)
	input.x = 90
	system.Update(0)
	if pager.Fraction != 0 {
		t.Errorf("dragging before first page fraction = %v, want 0", pager.Fraction)
	}

	input.pressed = false
	system.Update(0)
	if pager.Fraction != 0 {
		t.Errorf("release before first page fraction = %v, want 0", pager.Fraction)
	}
}

func TestSnapPage(t *testing.T) {
	tests := []struct {
		name    string
		start   float64
		dragged float64
		want    int
	}{
		{"small drag stays", 3, 0.1, 3},
		{"threshold forward", 3, -0.2, 4},
		{"threshold backward", 3, 0.25, 2},
		{"long drag rounds", 3, -1.6, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := snapPage(tt.start, tt.dragged); got != tt.want {
				t.Errorf("snapPage(%v, %v) = %d, want %d", tt.start, tt.dragged, got, tt.want)
			}
		})
	}
}
