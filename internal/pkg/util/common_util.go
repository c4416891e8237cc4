package util

import (
	"fmt"
	"io"
	"net/http"
)

// GetSafeContentType 通过嗅探文件头识别真实的内容类型，读取后回退到文件开头
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file header: %w", err)
	}

	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind file: %w", err)
	}

	return http.DetectContentType(buf[:n]), nil
}

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}
