// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量声明在项目根目录（embed.go），本包提供包装函数
// 让其他包访问嵌入的资源。
//
// 以 "assets/" 开头的路径从 embed.FS 读取；其他路径回退到
// 操作系统文件系统，这也让测试可以用临时目录中的配置文件。
package embedded

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	assetsFS    embed.FS
	initialized bool
)

// Init 初始化 embed.FS 变量
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets embed.FS) {
	assetsFS = assets
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// ReadFile 读取资源文件内容
// 已初始化且路径以 "assets/" 开头时走 embed.FS，否则走操作系统文件系统
func ReadFile(path string) ([]byte, error) {
	normalized := strings.TrimPrefix(filepath.ToSlash(path), "./")
	if initialized && strings.HasPrefix(normalized, "assets/") {
		return fs.ReadFile(assetsFS, normalized)
	}
	return os.ReadFile(path)
}

// Exists 检查资源文件是否存在
func Exists(path string) bool {
	normalized := strings.TrimPrefix(filepath.ToSlash(path), "./")
	if initialized && strings.HasPrefix(normalized, "assets/") {
		f, err := assetsFS.Open(normalized)
		if err != nil {
			return false
		}
		f.Close()
		return true
	}
	_, err := os.Stat(path)
	return err == nil
}
