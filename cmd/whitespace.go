package cmd

import (
	"fmt"

	"prehooks/internal/config"
	"prehooks/internal/fixer"
	"prehooks/internal/kinds"
	"prehooks/internal/report"
	"prehooks/internal/runner"
	"prehooks/internal/stage"

	"github.com/spf13/cobra"
)

// newWhitespaceCmd 创建 trailing-whitespace 子命令。
// 示例：
//
//	prehooks trailing-whitespace README.md main.go
//	prehooks trailing-whitespace --chars "x" notes.txt
//	prehooks trailing-whitespace --markdown-linebreak-ext md,markdown docs/*.markdown
func newWhitespaceCmd(commandRunner runner.CommandRunner) *cobra.Command {
	whitespaceCmd := &cobra.Command{
		Use:     "trailing-whitespace [file...]",
		Aliases: []string{"trailing-whitespace-fixer"},
		Short:   "清理行尾空白并暂存修改过的文件",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.New(cmd.Flags(), config.FixOptions())
			if err != nil {
				return err
			}
			settings, err := config.LoadFixSettings(v)
			if err != nil {
				return err
			}

			registry, err := kinds.NewRegistry(settings.MarkdownExts)
			if err != nil {
				return err
			}

			logger := newLogger(cmd, settings.Verbose)
			logger.Printf("files=%d workers=%d default-policy=%t markdown=%v",
				len(args), settings.Workers, settings.Policy.IsDefault(), settings.MarkdownExts)

			printer := report.NewPrinter(cmd.OutOrStdout())
			service := fixer.NewService(
				registry,
				settings.Policy,
				stage.NewStager(commandRunner, settings.GitBinary),
				settings.Workers,
			)
			service.OnFixed = printer.Fixed
			service.OnError = printer.Failure

			result := service.Run(cmd.Context(), args)
			logger.Printf("fixed=%d errors=%d failed=%t", result.Fixed, len(result.Errors), result.Failed)

			if settings.Format == config.FormatJSON {
				if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			}

			if result.Failed {
				return fmt.Errorf("%w: %w", ErrReported, fixer.ErrStageFailed)
			}
			return nil
		},
	}

	whitespaceCmd.Flags().String(config.KeyChars, "", "需要从行尾删除的字符集合，默认删除全部空白字符")
	whitespaceCmd.Flags().String(config.KeyMarkdownExt, "md", "逗号分隔的 Markdown 后缀，* 表示全部文件")
	whitespaceCmd.Flags().Int(config.KeyWorkers, 1, "并发 worker 数量")
	whitespaceCmd.Flags().String(config.KeyFormat, config.FormatText, "输出格式: text 或 json")
	whitespaceCmd.Flags().String(config.KeyGit, stage.DefaultGitBinary, "git 可执行文件")

	return whitespaceCmd
}
