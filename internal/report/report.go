// Package report 提供 prehooks 的输出能力。
// 当前实现支持逐文件提示（lipgloss 着色）和 JSON 报告。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"prehooks/internal/kinds"
	"prehooks/internal/model"
)

// Printer 负责把修复过程输出到 writer。
// 输出目标不是终端时 lipgloss 会自动去掉颜色。
type Printer struct {
	writer    io.Writer
	fixStyle  lipgloss.Style
	errStyle  lipgloss.Style
	pathStyle lipgloss.Style
}

// NewPrinter 创建绑定到 writer 的输出器。
func NewPrinter(writer io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(writer)
	return &Printer{
		writer:    writer,
		fixStyle:  renderer.NewStyle().Foreground(lipgloss.Color("2")),
		errStyle:  renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		pathStyle: renderer.NewStyle().Bold(true),
	}
}

// Fixed 输出 “Fixing <path>”。
func (p *Printer) Fixed(path string) {
	_, _ = fmt.Fprintf(p.writer, "%s %s\n", p.fixStyle.Render("Fixing"), p.pathStyle.Render(path))
}

// Failure 按错误阶段输出失败信息。
func (p *Printer) Failure(item model.FixError) {
	verb := "Error processing"
	if item.Stage == model.StageStage {
		verb = "Error staging"
	}
	_, _ = fmt.Fprintf(p.writer, "%s %s: %s\n", p.errStyle.Render(verb), p.pathStyle.Render(item.Path), item.Error)
}

// BumpFailure 输出版本递增失败信息。
func (p *Printer) BumpFailure(err error) {
	_, _ = fmt.Fprintf(p.writer, "%s %v\n", p.errStyle.Render("Error during version bump:"), err)
}

// PrintJSON 把修复报告按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.FixReport) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// PrintKinds 使用表格展示文件类别及后缀。
func PrintKinds(writer io.Writer, descriptors []kinds.KindDescriptor) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "KIND\tEXTENSIONS"); err != nil {
		return err
	}
	for _, item := range descriptors {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", item.Kind, joinOrDash(item.Extensions)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
