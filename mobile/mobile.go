//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.aqua -o build/android/aqua.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Aqua.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/aqua/pkg/app"
	"github.com/gonewx/aqua/pkg/embedded"
)

func init() {
	// 初始化嵌入资源，assetsFS 在 embed.go 中声明
	embedded.Init(assetsFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: true, // 移动端保留日志便于调试
	})
	if err != nil {
		log.Fatalf("failed to initialize game: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
