package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.LastPages == nil || len(settings.LastPages) != 0 {
		t.Errorf("LastPages: got %v, want empty map", settings.LastPages)
	}
	if settings.Variant != "" {
		t.Errorf("Variant: got %q, want empty", settings.Variant)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSettingsManagerSaveLoad 保存后重新加载得到相同设置
func TestSettingsManagerSaveLoad(t *testing.T) {
	m := openTestGdata(t, "test_pagerdots_settings")

	sm := NewSettingsManager(m)
	sm.SetLastPage("horizontal", 7)
	sm.SetVariant("worm")
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(m)
	settings := reloaded.GetSettings()
	if settings.LastPages["horizontal"] != 7 {
		t.Errorf("LastPages[horizontal]: got %d, want 7", settings.LastPages["horizontal"])
	}
	if settings.Variant != "worm" || !settings.Fullscreen {
		t.Errorf("reloaded settings = %+v", settings)
	}
}

// TestSettingsManagerCorruptData 损坏的数据回退到默认设置
func TestSettingsManagerCorruptData(t *testing.T) {
	m := openTestGdata(t, "test_pagerdots_corrupt")
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("lastPages: [1, 2")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(m)
	if len(sm.GetSettings().LastPages) != 0 {
		t.Errorf("corrupt data should fall back to defaults, got %+v", sm.GetSettings())
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() on corrupt data should return error")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetLastPage("vertical", 3)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if sm.LastPage("vertical", 11, 5) != 3 {
		t.Errorf("in-memory LastPage lost")
	}
}

func TestLastPageFallback(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetLastPage("horizontal", 12)

	tests := []struct {
		name  string
		pager string
		want  int
	}{
		{"missing pager", "vertical", 5},
		{"out of range", "horizontal", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sm.LastPage(tt.pager, 11, 5); got != tt.want {
				t.Errorf("LastPage(%q) = %d, want %d", tt.pager, got, tt.want)
			}
		})
	}
}
