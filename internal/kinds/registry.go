// Package kinds 负责根据文件后缀判定文件类别。
package kinds

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"prehooks/internal/model"
)

// Wildcard 表示所有文件都按 Markdown 处理。
const Wildcard = "*"

// DefaultMarkdownExtensions 是默认的 Markdown 后缀集合。
var DefaultMarkdownExtensions = []string{".md"}

// KindDescriptor 用于对外展示类别及后缀信息。
type KindDescriptor struct {
	Kind       model.FileKind
	Extensions []string
}

// Registry 管理 Markdown 后缀映射。
type Registry struct {
	markdownByExt map[string]struct{}
	allMarkdown   bool
}

// NewRegistry 根据给定后缀列表创建注册表。
// 后缀大小写不敏感，缺少点号时自动补齐；列表为空时使用默认集合。
func NewRegistry(markdownExts []string) (*Registry, error) {
	if len(markdownExts) == 0 {
		markdownExts = DefaultMarkdownExtensions
	}

	registry := &Registry{
		markdownByExt: make(map[string]struct{}),
	}

	for _, raw := range markdownExts {
		ext := strings.TrimSpace(raw)
		if ext == "" {
			continue
		}
		if ext == Wildcard {
			registry.allMarkdown = true
			continue
		}
		if strings.ContainsAny(ext, `/\`) || strings.ContainsRune(ext, filepath.Separator) {
			return nil, fmt.Errorf("bad markdown extension: %q (no path separators allowed)", raw)
		}
		ext = "." + strings.TrimPrefix(strings.ToLower(ext), ".")
		registry.markdownByExt[ext] = struct{}{}
	}

	return registry, nil
}

// KindForFile 根据文件后缀判定类别。
func (r *Registry) KindForFile(path string) model.FileKind {
	if r.allMarkdown {
		return model.KindMarkdown
	}
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := r.markdownByExt[ext]; ok {
		return model.KindMarkdown
	}
	return model.KindOther
}

// Kinds 返回已注册类别清单。
func (r *Registry) Kinds() []KindDescriptor {
	extensions := make([]string, 0, len(r.markdownByExt)+1)
	if r.allMarkdown {
		extensions = append(extensions, Wildcard)
	}
	for ext := range r.markdownByExt {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)

	return []KindDescriptor{
		{Kind: model.KindMarkdown, Extensions: extensions},
		{Kind: model.KindOther, Extensions: []string{Wildcard}},
	}
}
