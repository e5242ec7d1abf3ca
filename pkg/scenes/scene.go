package scenes

import (
	"github.com/decker502/pagerdots/pkg/game"
)

// Scene 是 game.Scene 的别名
type Scene = game.Scene

// 场景名称（SceneManager.Load 使用）
const (
	SceneGallery = "gallery"
)
