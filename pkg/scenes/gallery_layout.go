package scenes

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/pagerdots/pkg/config"
	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/decker502/pagerdots/pkg/render"
)

// indicatorRow 画廊中一个指示器的摆放
type indicatorRow struct {
	Variant render.Variant
	Style   indicator.Style
	Custom  bool // 使用图片绘制器
}

// rowsFor 按变体过滤返回要显示的指示器行
//
//	"" 显示全部，"dots" 只显示普通圆点（含图片圆点），"worm" 只显示蠕虫
func rowsFor(filter string, dots, worm indicator.Style) []indicatorRow {
	all := []indicatorRow{
		{Variant: render.VariantDots, Style: dots},
		{Variant: render.VariantWorm, Style: worm},
		{Variant: render.VariantDots, Style: dots, Custom: true},
	}
	if filter == "" {
		return all
	}

	variant, err := render.ParseVariant(filter)
	if err != nil {
		return all
	}
	rows := make([]indicatorRow, 0, len(all))
	for _, r := range all {
		if r.Variant == variant {
			rows = append(rows, r)
		}
	}
	return rows
}

// horizontalIndicatorPos 水平分页器下方第 row 个指示器的位置（水平居中）
func horizontalIndicatorPos(row int, width float64) (x, y float64) {
	x = config.PageViewX + (config.PageViewWidth-width)/2
	y = config.PageViewY + config.PageViewHeight + config.IndicatorMargin + float64(row)*config.IndicatorRowGap
	return x, y
}

// verticalIndicatorPos 垂直分页器右侧第 row 个指示器的位置（垂直居中）
func verticalIndicatorPos(row int, height float64) (x, y float64) {
	x = config.VerticalViewX + config.VerticalViewWidth + config.IndicatorMargin + float64(row)*config.IndicatorRowGap
	y = config.VerticalViewY + (config.VerticalViewHeight-height)/2
	return x, y
}

// pageColors 为每页生成色相均匀分布的卡片颜色
func pageColors(n int) []color.NRGBA {
	colors := make([]color.NRGBA, n)
	for i := range colors {
		colors[i] = hsvColor(float64(i)/float64(max(n, 1))*360, 0.35, 0.95)
	}
	return colors
}

func hsvColor(h, s, v float64) color.NRGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.NRGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 0xFF,
	}
}

// diamondImage 生成白色菱形图片，作为自定义圆点的图案（由 tint 着色）
func diamondImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if math.Abs(float64(x)+0.5-c)+math.Abs(float64(y)+0.5-c) <= c {
				img.SetRGBA(x, y, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
			}
		}
	}
	return img
}
