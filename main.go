package main

import (
	"flag"
	"log"

	"github.com/decker502/pagerdots/pkg/app"
	"github.com/decker502/pagerdots/pkg/config"
	"github.com/decker502/pagerdots/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "指示器配置文件路径（默认使用内置 data/indicator.yaml）")
	variant    = flag.String("variant", "", "只显示某种指示器变体: dots / worm")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Variant:    *variant,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Pager Dots")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	gameApp.Shutdown()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
