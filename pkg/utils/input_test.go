package utils

import "testing"

func TestDragTrackerInitialState(t *testing.T) {
	var d DragTracker

	if d.GetState() != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", d.GetState())
	}
	if d.IsActive() || d.JustEnded() {
		t.Error("Expected idle tracker")
	}
}

// TestDragTrackerLifecycle 按下 → 移动 → 释放 → 空闲
func TestDragTrackerLifecycle(t *testing.T) {
	var d DragTracker

	d.Update(true, 100, 50)
	if d.GetState() != DragStateStarted {
		t.Fatalf("state after press = %v, want Started", d.GetState())
	}

	d.Update(true, 80, 52)
	if d.GetState() != DragStateDragging {
		t.Fatalf("state after move = %v, want Dragging", d.GetState())
	}
	if dx, dy := d.GetDragDistance(); dx != -20 || dy != 2 {
		t.Errorf("drag distance = (%d, %d), want (-20, 2)", dx, dy)
	}

	d.Update(false, 0, 0)
	if !d.JustEnded() {
		t.Fatalf("state after release = %v, want Ended", d.GetState())
	}
	// 释放帧保留最后位置
	if info := d.GetInfo(); info.CurrentX != 80 {
		t.Errorf("CurrentX after release = %d, want 80", info.CurrentX)
	}

	d.Update(false, 0, 0)
	if d.GetState() != DragStateNone {
		t.Errorf("state one frame after release = %v, want None", d.GetState())
	}
}

// TestDragTrackerRepress 结束帧后立即再次按下
func TestDragTrackerRepress(t *testing.T) {
	var d DragTracker
	d.Update(true, 0, 0)
	d.Update(false, 0, 0)
	d.Update(true, 30, 40)

	if d.GetState() != DragStateStarted {
		t.Fatalf("state = %v, want Started", d.GetState())
	}
	if info := d.GetInfo(); info.StartX != 30 || info.StartY != 40 {
		t.Errorf("start = (%d, %d), want (30, 40)", info.StartX, info.StartY)
	}
}

func TestDragTrackerReset(t *testing.T) {
	var d DragTracker
	d.Update(true, 10, 10)
	d.Reset()
	if d.GetState() != DragStateNone {
		t.Error("Reset should return to None")
	}
}
