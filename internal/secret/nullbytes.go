package secret

import "strings"

// stripNullBytes 去掉 Windows Credential Manager 返回值中字符间的 null 字节（UTF-16 遗留问题）。
func stripNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
