package systems

import (
	"github.com/decker502/pagerdots/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput 指针与键盘输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	// PointerState 返回指针是否按下及其位置（触摸优先）
	PointerState() (pressed bool, x, y int)
	// JustPressed 返回本帧是否刚按下及按下位置
	JustPressed() (pressed bool, x, y int)
	// IsKeyJustPressed 本帧是否刚按下某个键
	IsKeyJustPressed(key ebiten.Key) bool
	// Wheel 本帧滚轮偏移
	Wheel() (dx, dy float64)
}

// ebitenPointerInput Ebitengine 默认实现
type ebitenPointerInput struct{}

func (e *ebitenPointerInput) PointerState() (bool, int, int) {
	return utils.GetPointerState()
}

func (e *ebitenPointerInput) JustPressed() (bool, int, int) {
	return utils.IsPointerJustPressed()
}

func (e *ebitenPointerInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (e *ebitenPointerInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

// defaultPointerInput 默认输入实例
var defaultPointerInput PointerInput = &ebitenPointerInput{}
