// Package stage 负责把修复后的文件加入版本控制暂存区。
package stage

import (
	"context"
	"fmt"

	"prehooks/internal/runner"
)

// DefaultGitBinary 是默认的 git 可执行文件名。
const DefaultGitBinary = "git"

// Stager 通过 git add 暂存文件。
type Stager struct {
	runner    runner.CommandRunner
	gitBinary string
}

// NewStager 创建暂存器，gitBinary 为空时使用 git。
func NewStager(r runner.CommandRunner, gitBinary string) *Stager {
	if gitBinary == "" {
		gitBinary = DefaultGitBinary
	}
	return &Stager{runner: r, gitBinary: gitBinary}
}

// Stage 执行 git add <path>。
func (s *Stager) Stage(ctx context.Context, path string) error {
	argv := []string{s.gitBinary, "add", path}
	status, err := s.runner.Run(ctx, argv)
	if err != nil {
		return fmt.Errorf("git add %s: %w", path, err)
	}
	if !status.Success() {
		return fmt.Errorf("command %v returned non-zero exit status %d", argv, status)
	}
	return nil
}
