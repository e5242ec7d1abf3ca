package utils

import (
	"fmt"
	"math"
)

// Easing Functions (缓动函数)
//
// 用于宿主分页器的翻页动画（点击圆点后滚动到目标页）。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EasingByName 根据配置名称返回缓动函数
// 支持 "linear"、"outCubic"、"inOutCubic"，空字符串默认 outCubic
func EasingByName(name string) (EasingFunc, error) {
	switch name {
	case "", "outCubic":
		return EaseOutCubic, nil
	case "linear":
		return EaseLinear, nil
	case "inOutCubic":
		return EaseInOutCubic, nil
	default:
		return nil, fmt.Errorf("unknown easing %q", name)
	}
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
