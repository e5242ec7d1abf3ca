package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/decker502/pagerdots/pkg/utils"
	"gopkg.in/yaml.v3"
)

// IndicatorConfig 指示器演示配置
//
// 配置文件位置: data/indicator.yaml
// 未出现在文件中的字段保留 DefaultIndicatorConfig 的默认值。
type IndicatorConfig struct {
	// PageCount 演示分页器的页数
	PageCount int `yaml:"pageCount"`

	// StartPage 初始页（没有存档时使用），-1 表示中间页
	StartPage int `yaml:"startPage"`

	// Animation 点击圆点后分页器的翻页动画
	Animation AnimationConfig `yaml:"animation"`

	// Dots 普通圆点变体样式
	Dots StyleConfig `yaml:"dots"`

	// Worm 蠕虫变体样式（normalSize 被忽略，统一使用 activeSize）
	Worm StyleConfig `yaml:"worm"`
}

// AnimationConfig 翻页动画配置
type AnimationConfig struct {
	// DurationMs 动画时长（毫秒）
	DurationMs int `yaml:"durationMs"`

	// Easing 缓动函数名称: linear / outCubic / inOutCubic
	Easing string `yaml:"easing"`
}

// StyleConfig 单个指示器的样式
type StyleConfig struct {
	DotCount      int     `yaml:"dotCount"`
	NormalSize    float64 `yaml:"normalSize"`
	ActiveSize    float64 `yaml:"activeSize"`
	MinSize       float64 `yaml:"minSize"`
	Spacing       float64 `yaml:"spacing"`
	Orientation   string  `yaml:"orientation"`
	ActiveColor   string  `yaml:"activeColor"`
	InactiveColor string  `yaml:"inactiveColor"`
}

// DefaultStyleConfig 返回默认样式：5 个圆点，6/8/4 尺寸，间距 8，水平方向
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		DotCount:      5,
		NormalSize:    6,
		ActiveSize:    8,
		MinSize:       4,
		Spacing:       8,
		Orientation:   "horizontal",
		ActiveColor:   "#0000FF",
		InactiveColor: "#888888",
	}
}

// DefaultIndicatorConfig 返回默认配置
func DefaultIndicatorConfig() *IndicatorConfig {
	return &IndicatorConfig{
		PageCount: 11,
		StartPage: -1,
		Animation: AnimationConfig{
			DurationMs: 300,
			Easing:     "outCubic",
		},
		Dots: DefaultStyleConfig(),
		Worm: DefaultStyleConfig(),
	}
}

// ParseIndicatorConfig 从 YAML 数据解析配置并验证
func ParseIndicatorConfig(data []byte) (*IndicatorConfig, error) {
	cfg := DefaultIndicatorConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse indicator config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid indicator config: %w", err)
	}

	return cfg, nil
}

// LoadIndicatorConfig 从文件加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/indicator.yaml"）
func LoadIndicatorConfig(path string) (*IndicatorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read indicator config: %w", err)
	}
	return ParseIndicatorConfig(data)
}

// Validate 验证配置有效性
func (c *IndicatorConfig) Validate() error {
	if c.PageCount < 1 {
		return fmt.Errorf("pageCount must be >= 1, got %d", c.PageCount)
	}
	if c.StartPage < -1 || c.StartPage >= c.PageCount {
		return fmt.Errorf("startPage %d out of range [-1, %d)", c.StartPage, c.PageCount)
	}
	if c.Animation.DurationMs < 0 {
		return fmt.Errorf("animation durationMs must be >= 0, got %d", c.Animation.DurationMs)
	}
	if _, err := utils.EasingByName(c.Animation.Easing); err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	if err := c.Dots.Validate(); err != nil {
		return fmt.Errorf("dots: %w", err)
	}
	if err := c.Worm.Validate(); err != nil {
		return fmt.Errorf("worm: %w", err)
	}
	return nil
}

// InitialPage 返回初始页，StartPage 为 -1 时取中间页
func (c *IndicatorConfig) InitialPage() int {
	if c.StartPage < 0 {
		return c.PageCount / 2
	}
	return c.StartPage
}

// AnimationDuration 返回翻页动画时长
func (c *IndicatorConfig) AnimationDuration() time.Duration {
	return time.Duration(c.Animation.DurationMs) * time.Millisecond
}

// Validate 验证样式
func (s StyleConfig) Validate() error {
	if s.DotCount < 1 {
		return fmt.Errorf("dotCount must be >= 1, got %d", s.DotCount)
	}
	if s.ActiveSize <= 0 {
		return fmt.Errorf("activeSize must be > 0, got %.1f", s.ActiveSize)
	}
	if s.NormalSize < 0 || s.NormalSize > s.ActiveSize {
		return fmt.Errorf("normalSize must be in [0, activeSize], got %.1f", s.NormalSize)
	}
	if s.MinSize < 0 || s.MinSize > s.ActiveSize {
		return fmt.Errorf("minSize must be in [0, activeSize], got %.1f", s.MinSize)
	}
	if s.Spacing < 0 {
		return fmt.Errorf("spacing must be >= 0, got %.1f", s.Spacing)
	}
	if _, err := ParseOrientation(s.Orientation); err != nil {
		return err
	}
	if _, err := utils.ParseHexColor(s.ActiveColor); err != nil {
		return fmt.Errorf("activeColor: %w", err)
	}
	if _, err := utils.ParseHexColor(s.InactiveColor); err != nil {
		return fmt.Errorf("inactiveColor: %w", err)
	}
	return nil
}

// ToStyle 转换为核心样式
func (s StyleConfig) ToStyle() (indicator.Style, error) {
	if err := s.Validate(); err != nil {
		return indicator.Style{}, err
	}

	orientation, _ := ParseOrientation(s.Orientation)
	active, _ := utils.ParseHexColor(s.ActiveColor)
	inactive, _ := utils.ParseHexColor(s.InactiveColor)

	return indicator.Style{
		DotCount: s.DotCount,
		Sizes: indicator.Sizes{
			Active: s.ActiveSize,
			Normal: s.NormalSize,
			Min:    s.MinSize,
		},
		Spacing:     s.Spacing,
		Orientation: orientation,
		Colors: indicator.Colors{
			Active:   active,
			Inactive: inactive,
		},
	}, nil
}

// ParseOrientation 解析方向名称（horizontal / vertical，不区分大小写，空字符串为水平）
func ParseOrientation(s string) (indicator.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return indicator.Horizontal, nil
	case "vertical":
		return indicator.Vertical, nil
	default:
		return indicator.Horizontal, fmt.Errorf("unknown orientation %q", s)
	}
}
