// Package model 定义 prehooks 的核心数据模型。
// 这些结构会被改写层、修复服务、输出层和命令层共同使用。
package model

import (
	"fmt"
	"strings"
)

// FileKind 表示文件类别，决定是否适用 Markdown 硬换行豁免。
type FileKind int

const (
	// KindOther 表示普通文本文件。
	KindOther FileKind = iota
	// KindMarkdown 表示 Markdown 文件，行尾两个空格会被保留。
	KindMarkdown
)

// String 返回类别名称，用于列表展示和 JSON 报告。
func (k FileKind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	default:
		return "other"
	}
}

// MarshalText 让 FileKind 在 JSON 中以名称形式输出。
func (k FileKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText 解析 JSON 报告中的类别名称。
func (k *FileKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "markdown":
		*k = KindMarkdown
	case "other":
		*k = KindOther
	default:
		return fmt.Errorf("unknown file kind %q", text)
	}
	return nil
}

// defaultWhitespace 与 bytes.TrimSpace 使用的 ASCII 空白一致。
const defaultWhitespace = " \t\n\r\v\f"

// StripPolicy 描述允许从行尾删除的字节集合。
//
// 注意：
// - 零值等价于默认策略（删除全部 ASCII 空白）
// - 自定义集合按字节匹配，多字节 UTF-8 字符会拆成独立字节
type StripPolicy struct {
	custom bool
	set    [256]bool
}

// DefaultPolicy 返回删除全部空白字符的默认策略。
func DefaultPolicy() StripPolicy {
	return StripPolicy{}
}

// CharsPolicy 根据 --chars 参数构造自定义策略。
// 空字符串表示空集合，即不删除任何字符。
func CharsPolicy(chars string) StripPolicy {
	policy := StripPolicy{custom: true}
	for i := 0; i < len(chars); i++ {
		policy.set[chars[i]] = true
	}
	return policy
}

// IsDefault 判断是否为默认空白策略。
func (p StripPolicy) IsDefault() bool {
	return !p.custom
}

// Strips 判断某个字节是否属于可删除集合。
func (p StripPolicy) Strips(b byte) bool {
	if !p.custom {
		return IsSpace(b)
	}
	return p.set[b]
}

// IsSpace 判断字节是否为 ASCII 空白。
// 空行判定始终使用该集合，与删除策略无关。
func IsSpace(b byte) bool {
	return strings.IndexByte(defaultWhitespace, b) >= 0
}

// Line 表示一行内容及其行尾标记。
type Line struct {
	Content []byte
	EOL     []byte
}

// FileResult 表示单文件处理结果。
type FileResult struct {
	Path    string   `json:"path"`
	Kind    FileKind `json:"kind"`
	Changed bool     `json:"changed"`
	Staged  bool     `json:"staged"`
}

// 错误阶段标识。
const (
	StageProcess = "process"
	StageStage   = "stage"
)

// FixError 记录单文件失败信息。
// 设计为“错误不阻断整批处理”，与扫描器的容错方式一致。
type FixError struct {
	Path  string `json:"path"`
	Stage string `json:"stage"`
	Error string `json:"error"`
}

// FixReport 是 trailing-whitespace 命令的完整输出模型。
type FixReport struct {
	Files  []FileResult `json:"files"`
	Errors []FixError   `json:"errors"`
	Fixed  int          `json:"fixed"`
	// Failed 仅在暂存失败时为 true，读写失败不影响退出码。
	Failed bool `json:"failed"`
}
