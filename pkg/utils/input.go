// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置，优先检测触摸
func IsPointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// ============================================================================
// 拖拽状态跟踪 - 用于分页内容的滑动手势
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// DragInfo 拖拽信息
type DragInfo struct {
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
}

// DragTracker 根据每帧的指针采样推进拖拽状态机
// 不直接读取 ebiten 输入，调用方传入采样结果，便于测试
type DragTracker struct {
	info DragInfo
}

// Update 推进一帧
//
//	None --按下--> Started --> Dragging --释放--> Ended --> None
func (d *DragTracker) Update(pressed bool, x, y int) {
	switch d.info.State {
	case DragStateNone:
		if pressed {
			d.info = DragInfo{
				State:    DragStateStarted,
				StartX:   x,
				StartY:   y,
				CurrentX: x,
				CurrentY: y,
			}
		}

	case DragStateStarted, DragStateDragging:
		if !pressed {
			// 释放帧保留最后位置
			d.info.State = DragStateEnded
			return
		}
		d.info.State = DragStateDragging
		d.info.CurrentX, d.info.CurrentY = x, y

	case DragStateEnded:
		// 结束状态只持续一帧
		d.Reset()
		d.Update(pressed, x, y)
	}
}

// Reset 重置拖拽状态
func (d *DragTracker) Reset() {
	d.info = DragInfo{State: DragStateNone}
}

// GetState 获取当前拖拽状态
func (d *DragTracker) GetState() DragState {
	return d.info.State
}

// GetInfo 获取完整拖拽信息
func (d *DragTracker) GetInfo() DragInfo {
	return d.info
}

// IsActive 是否处于按下状态（开始或拖拽中）
func (d *DragTracker) IsActive() bool {
	return d.info.State == DragStateStarted || d.info.State == DragStateDragging
}

// JustEnded 是否刚结束拖拽（本帧）
func (d *DragTracker) JustEnded() bool {
	return d.info.State == DragStateEnded
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (d *DragTracker) GetDragDistance() (dx, dy int) {
	return d.info.CurrentX - d.info.StartX, d.info.CurrentY - d.info.StartY
}
