// pagerdots-render 在无窗口环境下把指示器渲染为 PNG 帧序列
//
// 用法：
//
//	pagerdots-render render --variant worm --from 0 --to 4 --step 0.25 --out frames/
package main

import (
	"log"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
