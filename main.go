package main

import (
	"flag"
	"log"

	"github.com/gonewx/aqua/pkg/app"
	"github.com/gonewx/aqua/pkg/config"
	"github.com/gonewx/aqua/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	flag.Parse()

	// 初始化嵌入资源，必须在创建应用之前完成
	embedded.Init(assetsFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		log.Fatalf("failed to initialize game: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Aqua Adventure")
	ebiten.SetTPS(config.GameTPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
