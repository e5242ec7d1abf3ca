package config

// 布局配置常量
// 本文件定义了演示窗口和画廊场景中的布局参数

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑窗口宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑窗口高度（像素）
	GameWindowHeight = 600
)

// Gallery Layout (画廊场景布局)
// 所有坐标为屏幕坐标
const (
	// PageViewX 水平分页器视口左上角 X
	PageViewX = 60.0

	// PageViewY 水平分页器视口左上角 Y
	PageViewY = 60.0

	// PageViewWidth 水平分页器视口宽度
	PageViewWidth = 520.0

	// PageViewHeight 水平分页器视口高度
	PageViewHeight = 320.0

	// VerticalViewX 垂直分页器视口左上角 X
	VerticalViewX = 620.0

	// VerticalViewY 垂直分页器视口左上角 Y
	VerticalViewY = 60.0

	// VerticalViewWidth 垂直分页器视口宽度
	VerticalViewWidth = 120.0

	// VerticalViewHeight 垂直分页器视口高度
	VerticalViewHeight = 320.0

	// IndicatorMargin 指示器与视口边缘的间距
	IndicatorMargin = 16.0

	// IndicatorRowGap 同一分页器下多个指示器之间的行距
	IndicatorRowGap = 24.0

	// SwipeThreshold 拖动距离超过视口尺寸的该比例时翻页
	SwipeThreshold = 0.2

	// WheelPagesPerNotch 滚轮每格翻页数
	WheelPagesPerNotch = 1
)
