// Package rewrite 实现行级的行尾空白清理。
// 该层只处理字节切片，不涉及文件读写。
package rewrite

import (
	"bytes"

	"prehooks/internal/model"
)

var (
	crlf      = []byte("\r\n")
	lf        = []byte("\n")
	hardBreak = []byte("  ")
)

// splitEOL 拆出行尾标记。
// 先匹配 \r\n 再匹配 \n，适配 Windows 与 Unix 两种换行。
func splitEOL(line []byte) model.Line {
	switch {
	case bytes.HasSuffix(line, crlf):
		return model.Line{Content: line[:len(line)-2], EOL: crlf}
	case bytes.HasSuffix(line, lf):
		return model.Line{Content: line[:len(line)-1], EOL: lf}
	default:
		return model.Line{Content: line}
	}
}

// isBlank 判断内容是否全部由空白组成。空内容不算空白行。
func isBlank(body []byte) bool {
	if len(body) == 0 {
		return false
	}
	for _, b := range body {
		if !model.IsSpace(b) {
			return false
		}
	}
	return true
}

// stripRight 按策略删除末尾字节，返回原切片的前缀。
func stripRight(body []byte, policy model.StripPolicy) []byte {
	end := len(body)
	for end > 0 && policy.Strips(body[end-1]) {
		end--
	}
	return body[:end]
}

// Rewrite 清理单行行尾字符并保留原始行尾标记。
//
// 约束说明：
// - Markdown 文件中非空白行若以两个空格结尾，两个空格保留，其余前缀照常清理
// - 全空白行即使位于 Markdown 文件也会被完全清理
// - 返回值是新分配的切片，不修改入参
func Rewrite(line []byte, kind model.FileKind, policy model.StripPolicy) []byte {
	parsed := splitEOL(line)
	body := parsed.Content

	var kept []byte
	var suffix []byte
	if kind == model.KindMarkdown && !isBlank(body) && bytes.HasSuffix(body, hardBreak) {
		kept = stripRight(body[:len(body)-2], policy)
		suffix = hardBreak
	} else {
		kept = stripRight(body, policy)
	}

	out := make([]byte, 0, len(kept)+len(suffix)+len(parsed.EOL))
	out = append(out, kept...)
	out = append(out, suffix...)
	out = append(out, parsed.EOL...)
	return out
}

// SplitLines 在每个 \n 之后切分内容，行尾标记保留在行内。
// 末尾没有换行的残余部分作为最后一行保留；单独的 \r 不视为换行。
func SplitLines(content []byte) [][]byte {
	lines := make([][]byte, 0, bytes.Count(content, lf)+1)
	for len(content) > 0 {
		idx := bytes.IndexByte(content, '\n')
		if idx < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:idx+1])
		content = content[idx+1:]
	}
	return lines
}

// Content 逐行改写整个文件内容并拼接结果。
func Content(content []byte, kind model.FileKind, policy model.StripPolicy) []byte {
	var buf bytes.Buffer
	buf.Grow(len(content))
	for _, line := range SplitLines(content) {
		buf.Write(Rewrite(line, kind, policy))
	}
	return buf.Bytes()
}
