//go:build !mobile

// stub.go - pagerdots 桌面构建时 mobile 包的占位文件
//
// 画廊的 ebitenmobile 绑定（mobile.go、embed.go）只在 -tags mobile 时编译，
// 桌面构建只剩本文件，go build ./... 不会因构建标签排除全部文件而失败。

package mobile
