// Package cmd 提供 prehooks 的命令行入口与子命令编排。
package cmd

import (
	"errors"
	"io"
	"log"
	"os"

	"prehooks/internal/runner"

	"github.com/spf13/cobra"
)

// ErrReported 表示失败信息已经输出过，main 只需设置退出码。
var ErrReported = errors.New("failure already reported")

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	rootCmd := newRootCmd(version, runner.NewExecRunner(os.Stdout, os.Stderr))
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
// commandRunner 用于执行 git 与版本号工具，测试中替换为假实现。
func newRootCmd(version string, commandRunner runner.CommandRunner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prehooks",
		Short: "pre-commit 钩子工具集",
		Long: "prehooks 提供两个 pre-commit 钩子：\n" +
			"trailing-whitespace 清理行尾空白并暂存修改后的文件（保留 Markdown 硬换行），\n" +
			"bump-version 调用 bump-my-version 递增版本号。",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "在 stderr 输出调试日志")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newKindsCmd())
	rootCmd.AddCommand(newWhitespaceCmd(commandRunner))
	rootCmd.AddCommand(newBumpCmd(commandRunner))

	return rootCmd
}

// newLogger 根据 verbose 开关返回调试日志器。
func newLogger(cmd *cobra.Command, verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "prehooks: ", log.Ltime)
}
