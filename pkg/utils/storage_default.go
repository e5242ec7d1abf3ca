//go:build !android

package utils

// EnsureStorageDir 非 Android 平台由 gdata 自行创建目录，无需处理
func EnsureStorageDir() error {
	return nil
}
