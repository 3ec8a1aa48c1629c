package cmd

import (
	"fmt"

	"prehooks/internal/bump"
	"prehooks/internal/config"
	"prehooks/internal/report"
	"prehooks/internal/runner"

	"github.com/spf13/cobra"
)

// newBumpCmd 创建 bump-version 子命令。
// 命令示例：prehooks bump-version
func newBumpCmd(commandRunner runner.CommandRunner) *cobra.Command {
	bumpCmd := &cobra.Command{
		Use:   "bump-version",
		Short: "调用 bump-my-version 递增版本号",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.New(cmd.Flags(), config.BumpOptions())
			if err != nil {
				return err
			}
			settings, err := config.LoadBumpSettings(v)
			if err != nil {
				return err
			}

			newLogger(cmd, v.GetBool(config.KeyVerbose)).Printf("running %s bump %s", settings.Binary, settings.Part)

			bumper := bump.NewBumper(commandRunner, settings.Binary)
			if err := bumper.Bump(cmd.Context(), settings.Part); err != nil {
				report.NewPrinter(cmd.OutOrStdout()).BumpFailure(err)
				return fmt.Errorf("%w: %w", ErrReported, err)
			}
			return nil
		},
	}

	bumpCmd.Flags().String(config.KeyPart, bump.DefaultPart, "递增的版本段: major, minor 或 patch")
	bumpCmd.Flags().String(config.KeyBin, bump.DefaultBinary, "版本号工具可执行文件")

	return bumpCmd
}
