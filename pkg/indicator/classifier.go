package indicator

// DotState 圆点在某个整数参考页上的离散状态
type DotState int

const (
	// DotSelected 当前页对应的圆点
	DotSelected DotState = iota
	// DotNormal 普通圆点
	DotNormal
	// DotSmallEdge 窗口边缘缩小的圆点，提示两侧还有更多页
	DotSmallEdge
	// DotInvisible 窗口之外，不绘制
	DotInvisible
)

// String 返回状态名称（用于日志和测试输出）
func (s DotState) String() string {
	switch s {
	case DotSelected:
		return "Selected"
	case DotNormal:
		return "Normal"
	case DotSmallEdge:
		return "SmallEdge"
	case DotInvisible:
		return "Invisible"
	default:
		return "Unknown"
	}
}

// Classify 计算第 index 个圆点在参考页 referencePage 下的状态
//
// dotCount 必须是 EffectiveDotCount 的结果（少于页数时为奇数）。
// 判定顺序（先匹配者优先）：
//
//	[• ○ ● ○ •]   ● 选中  ○ 普通  • 边缘
//
//  1. index == referencePage → Selected
//  2. 中心两侧 half-1 个圆点 → Normal
//  3. 靠近末尾、窗口无法继续向右延伸时，左侧多出的圆点 → Normal
//  4. 靠近开头、窗口无法继续向左延伸时，右侧多出的圆点 → Normal
//  5. 刚好是最后一页且位于 referencePage+half → Normal
//  6. 圆点数等于页数时不缩小 → Normal
//  7. 位于窗口内的其余圆点 → SmallEdge
//  8. 其他 → Invisible
func Classify(index, referencePage, pageCount, dotCount int) DotState {
	half := dotCount / 2
	delta := referencePage - index

	switch {
	case index == referencePage:
		return DotSelected

	case delta >= -(half-1) && delta <= half-1:
		return DotNormal

	// [• ○ ● ○ ○]
	case referencePage+half >= pageCount &&
		index > referencePage-(dotCount-(pageCount-referencePage-1)-1):
		return DotNormal

	// [○ ○ ● ○ •]
	case referencePage-half <= 0 &&
		index < referencePage+(dotCount-referencePage-1):
		return DotNormal

	case index == referencePage+half && index == pageCount-1:
		return DotNormal

	case dotCount == pageCount:
		return DotNormal

	case Window(dotCount, referencePage, pageCount).Contains(index):
		return DotSmallEdge

	default:
		return DotInvisible
	}
}
