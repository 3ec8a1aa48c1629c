// Package runner 封装外部命令执行，便于在测试中替换为假实现。
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// ExitStatus 是外部命令的退出码。
type ExitStatus int

// Success 判断命令是否成功退出。
func (s ExitStatus) Success() bool {
	return s == 0
}

// CommandRunner 定义外部命令执行接口。
//
// 约定：
// - 命令正常结束（无论退出码）时 error 为 nil
// - 命令无法启动时返回 -1 与具体错误
type CommandRunner interface {
	Run(ctx context.Context, argv []string) (ExitStatus, error)
}

// ExecRunner 使用 os/exec 执行真实命令。
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
}

// NewExecRunner 创建输出直通到给定 writer 的执行器。
func NewExecRunner(stdout io.Writer, stderr io.Writer) *ExecRunner {
	return &ExecRunner{Stdout: stdout, Stderr: stderr}
}

// Run 执行 argv 并返回退出码。
func (r *ExecRunner) Run(ctx context.Context, argv []string) (ExitStatus, error) {
	if len(argv) == 0 {
		return -1, errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Dir = r.Dir

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return ExitStatus(exitErr.ExitCode()), nil
	}
	return -1, fmt.Errorf("run %s: %w", argv[0], err)
}
