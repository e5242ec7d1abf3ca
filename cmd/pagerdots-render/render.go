package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/decker502/pagerdots/pkg/config"
	"github.com/decker502/pagerdots/pkg/indicator"
	"github.com/decker502/pagerdots/pkg/render"
	"github.com/decker502/pagerdots/pkg/utils"
	"github.com/spf13/cobra"
)

// renderOptions 一次渲染任务的参数
type renderOptions struct {
	ConfigPath string
	Variant    string
	Pages      int
	From       float64
	To         float64
	Step       float64
	Scale      float64
	Padding    int
	Background string
	OutDir     string
}

var opts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render indicator frames for a range of scroll positions",
	Long: `Renders one PNG per scroll position from --from to --to (inclusive) in
increments of --step. The worm variant keeps its anchor across frames, so the
sequence shows the line stretching and snapping the way it does on screen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := renderFrames(opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", len(files), opts.OutDir)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Indicator config YAML (default: built-in defaults)")
	renderCmd.Flags().StringVar(&opts.Variant, "variant", "dots", "Indicator variant: dots, worm")
	renderCmd.Flags().IntVar(&opts.Pages, "pages", 0, "Page count (default: from config)")
	renderCmd.Flags().Float64Var(&opts.From, "from", 0, "First scroll position")
	renderCmd.Flags().Float64Var(&opts.To, "to", 4, "Last scroll position")
	renderCmd.Flags().Float64Var(&opts.Step, "step", 0.25, "Scroll position increment")
	renderCmd.Flags().Float64Var(&opts.Scale, "scale", 4, "Pixel scale factor")
	renderCmd.Flags().IntVar(&opts.Padding, "padding", 8, "Padding around the indicator in output pixels")
	renderCmd.Flags().StringVar(&opts.Background, "background", "#FFFFFF", "Background color (#RRGGBB or #RRGGBBAA)")
	renderCmd.Flags().StringVar(&opts.OutDir, "out", "frames", "Output directory")

	rootCmd.AddCommand(renderCmd)
}

// renderFrames 渲染并写出帧，返回写出的文件路径
func renderFrames(o renderOptions) ([]string, error) {
	if o.Step <= 0 {
		return nil, fmt.Errorf("step must be > 0, got %v", o.Step)
	}
	if o.To < o.From {
		return nil, fmt.Errorf("to (%v) must be >= from (%v)", o.To, o.From)
	}
	if o.Scale <= 0 {
		return nil, fmt.Errorf("scale must be > 0, got %v", o.Scale)
	}

	variant, err := render.ParseVariant(o.Variant)
	if err != nil {
		return nil, err
	}
	background, err := utils.ParseHexColor(o.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	cfg := config.DefaultIndicatorConfig()
	if o.ConfigPath != "" {
		if cfg, err = config.LoadIndicatorConfig(o.ConfigPath); err != nil {
			return nil, err
		}
	}

	pageCount := cfg.PageCount
	if o.Pages != 0 {
		pageCount = o.Pages
	}

	styleConfig := cfg.Dots
	if variant == render.VariantWorm {
		styleConfig = cfg.Worm
	}
	style, err := styleConfig.ToStyle()
	if err != nil {
		return nil, err
	}
	style = scaleStyle(style, o.Scale)
	if err := indicator.Validate(pageCount, style.DotCount); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(o.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	w, h := indicator.Size(pageCount, style)
	width := int(math.Ceil(w)) + 2*o.Padding
	height := int(math.Ceil(h)) + 2*o.Padding

	slog.Info("Rendering frames",
		"variant", variant.String(),
		"pages", pageCount,
		"from", o.From, "to", o.To, "step", o.Step,
		"size", fmt.Sprintf("%dx%d", width, height))

	var worm *indicator.WormTracker
	if variant == render.VariantWorm {
		worm = newFrameWorm(o.From, pageCount)
	}

	count := int(math.Floor((o.To-o.From)/o.Step+1e-9)) + 1
	files := make([]string, 0, count)
	for i := 0; i < count; i++ {
		fraction := o.From + float64(i)*o.Step

		frame := render.Pull(render.FrameInput{
			Fraction:  fraction,
			PageCount: pageCount,
			Style:     style,
			Variant:   variant,
			Worm:      worm,
		})

		surface := render.NewRasterSurface(width, height)
		surface.Fill(background)
		render.Execute(surface, frame.Commands, float64(o.Padding), float64(o.Padding))

		path := filepath.Join(o.OutDir, fmt.Sprintf("frame_%03d.png", i))
		if err := surface.SavePNG(path); err != nil {
			return files, err
		}
		slog.Debug("Wrote frame", "path", path, "fraction", fraction, "worm", frame.Worm)
		files = append(files, path)
	}

	return files, nil
}

// newFrameWorm 以夹到 [0, pageCount-1] 的起始位置创建蠕虫锚点
func newFrameWorm(from float64, pageCount int) *indicator.WormTracker {
	return indicator.NewWormTracker(indicator.ClampFraction(from, pageCount))
}

// scaleStyle 按像素倍率放大尺寸和间距
func scaleStyle(style indicator.Style, scale float64) indicator.Style {
	style.Sizes.Active *= scale
	style.Sizes.Normal *= scale
	style.Sizes.Min *= scale
	style.Spacing *= scale
	return style
}
