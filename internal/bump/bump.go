// Package bump 调用外部版本号工具完成版本递增。
package bump

import (
	"context"
	"fmt"
	"strings"

	"prehooks/internal/runner"
)

// DefaultBinary 是默认调用的版本号工具。
const DefaultBinary = "bump-my-version"

// DefaultPart 是默认递增的版本段。
const DefaultPart = "patch"

var validParts = []string{"major", "minor", "patch"}

// Bumper 通过外部工具递增版本号。
type Bumper struct {
	runner runner.CommandRunner
	binary string
}

// NewBumper 创建版本递增器，binary 为空时使用 bump-my-version。
func NewBumper(r runner.CommandRunner, binary string) *Bumper {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Bumper{runner: r, binary: binary}
}

// ValidatePart 校验版本段名称，空值视为 patch。
func ValidatePart(part string) (string, error) {
	part = strings.ToLower(strings.TrimSpace(part))
	if part == "" {
		return DefaultPart, nil
	}
	for _, valid := range validParts {
		if part == valid {
			return part, nil
		}
	}
	return "", fmt.Errorf("unsupported part %q, allowed values: %s", part, strings.Join(validParts, ", "))
}

// Bump 执行 <binary> bump <part>。
func (b *Bumper) Bump(ctx context.Context, part string) error {
	part, err := ValidatePart(part)
	if err != nil {
		return err
	}

	argv := []string{b.binary, "bump", part}
	status, err := b.runner.Run(ctx, argv)
	if err != nil {
		return err
	}
	if !status.Success() {
		return fmt.Errorf("command %v returned non-zero exit status %d", argv, status)
	}
	return nil
}
