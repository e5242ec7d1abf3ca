package components

// ClickableComponent 标记实体可以被鼠标点击
// 定义了可点击区域的尺寸和是否启用点击
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(像素)，指示器每帧按布局结果更新
	Height    float64 // 可点击区域的高度(像素)
	IsEnabled bool    // 是否可以被点击
}

// Contains 判断相对实体左上角的坐标是否落在可点击区域内
func (c *ClickableComponent) Contains(localX, localY float64) bool {
	return c.IsEnabled && localX >= 0 && localY >= 0 && localX < c.Width && localY < c.Height
}
