package cmd

import (
	"prehooks/internal/config"
	"prehooks/internal/kinds"
	"prehooks/internal/report"

	"github.com/spf13/cobra"
)

// newKindsCmd 创建 kinds 子命令。
// 命令用于展示当前生效的 Markdown 后缀，便于核对 --markdown-linebreak-ext 与环境变量。
func newKindsCmd() *cobra.Command {
	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "展示文件类别及后缀",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.New(cmd.Flags(), config.FixOptions())
			if err != nil {
				return err
			}
			registry, err := kinds.NewRegistry(config.MarkdownExtensions(v))
			if err != nil {
				return err
			}
			return report.PrintKinds(cmd.OutOrStdout(), registry.Kinds())
		},
	}

	kindsCmd.Flags().String(config.KeyMarkdownExt, "md", "逗号分隔的 Markdown 后缀，* 表示全部文件")

	return kindsCmd
}
