// Package indicator 实现分页指示器（圆点 / 蠕虫）的核心计算
//
// 本包只包含纯函数与一个有状态的 WormTracker，不依赖任何渲染后端：
//   - EffectiveDotCount / Window：可见窗口计算
//   - Classify：单个圆点在某个整数参考页上的离散状态
//   - Visual：在 floor(fraction) 与 floor(fraction)+1 之间线性插值尺寸和颜色
//   - Layout：计算每个圆点的绝对位置、包围盒和滚动偏移
//   - WormTracker：蠕虫连线的起止位置（保存锚点状态）
//   - HitTest：点击位置 → 目标页
//
// 除 WormTracker 外，所有函数都可以被多个指示器实例并发调用。
package indicator

// Span 是一段闭区间的圆点索引 [First, Last]
type Span struct {
	First int
	Last  int
}

// Len 返回区间内的索引数量
func (s Span) Len() int {
	if s.Last < s.First {
		return 0
	}
	return s.Last - s.First + 1
}

// Contains 判断索引是否落在区间内
func (s Span) Contains(i int) bool {
	return i >= s.First && i <= s.Last
}

// Pad 向两侧各扩展 n 个索引，并限制在 [0, pageCount-1]
// 布局遍历时使用，为插值预留前后各一个圆点
func (s Span) Pad(n, pageCount int) Span {
	return Span{
		First: max(0, s.First-n),
		Last:  min(pageCount-1, s.Last+n),
	}
}

// EffectiveDotCount 计算实际绘制的圆点数量
//
// 规则：
//   - 不超过页数
//   - 少于页数时强制为奇数（保证有唯一的中心圆点），偶数时减一
//   - 最少为 1
func EffectiveDotCount(configured, pageCount int) int {
	n := min(configured, pageCount)
	if n < 1 {
		return 1
	}
	if n < pageCount && n%2 == 0 {
		n--
	}
	return n
}

// Window 计算参考页 referencePage 下可能可见（非 Invisible）的圆点区间
//
// 参数 dotCount 应为 EffectiveDotCount 的结果。
// 左半区以起点为锚点向后展开，右半区以终点为锚点向前展开，
// 窗口跨度固定为 dotCount-1，仅在序列两端被截断。
func Window(dotCount, referencePage, pageCount int) Span {
	if pageCount < 1 {
		return Span{First: 0, Last: -1}
	}
	if dotCount < 1 {
		dotCount = 1
	}

	half := dotCount / 2

	var first, last int
	if referencePage < pageCount/2 {
		first = max(0, referencePage-half)
		last = min(pageCount-1, first+dotCount-1)
	} else {
		last = min(pageCount-1, referencePage+half)
		first = max(0, last-(dotCount-1))
	}
	return Span{First: first, Last: last}
}
