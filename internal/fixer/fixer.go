// Package fixer 提供文件级修复调度能力。
// 该层负责文件读写、并发修复、结果汇总与暂存，不负责行级改写细节。
package fixer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"prehooks/internal/kinds"
	"prehooks/internal/model"
	"prehooks/internal/rewrite"
)

// ErrStageFailed 表示至少一个文件暂存失败。
var ErrStageFailed = errors.New("one or more files could not be staged")

// Stager 定义暂存接口。
type Stager interface {
	Stage(ctx context.Context, path string) error
}

// Service 是修复服务对象。
type Service struct {
	registry *kinds.Registry
	policy   model.StripPolicy
	stager   Stager
	workers  int

	// OnFixed 在文件被修改后、暂存前调用。
	OnFixed func(path string)
	// OnError 在记录失败时调用。
	OnError func(item model.FixError)
}

// fixTask 表示一个待修复文件任务。
type fixTask struct {
	index int
	path  string
	kind  model.FileKind
}

// workerResult 表示 worker 的执行产物。
type workerResult struct {
	index   int
	changed bool
	err     error
}

// NewService 创建修复服务。workers 不大于 0 时按顺序处理。
func NewService(registry *kinds.Registry, policy model.StripPolicy, stager Stager, workers int) *Service {
	if workers <= 0 {
		workers = 1
	}
	return &Service{
		registry: registry,
		policy:   policy,
		stager:   stager,
		workers:  workers,
	}
}

// FixFile 读取文件、逐行改写，仅在内容变化时写回。
func FixFile(path string, kind model.FileKind, policy model.StripPolicy) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, errors.New("is a directory")
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	fixed := rewrite.Content(original, kind, policy)
	if bytes.Equal(fixed, original) {
		return false, nil
	}

	if err := os.WriteFile(path, fixed, info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}

// Run 修复并暂存给定文件。
//
// 约束说明：
// - 读写失败只记录错误，不影响 Failed
// - 暂存失败记录错误并置 Failed，继续处理剩余文件
// - 提示与暂存按参数顺序执行，输出稳定
func (s *Service) Run(ctx context.Context, paths []string) model.FixReport {
	paths = dedupe(paths)

	report := model.FixReport{
		Files:  make([]model.FileResult, len(paths)),
		Errors: make([]model.FixError, 0),
	}
	for i, path := range paths {
		report.Files[i] = model.FileResult{Path: path, Kind: s.registry.KindForFile(path)}
	}

	tasks := make(chan fixTask, s.workers*4)
	results := make(chan workerResult, s.workers*4)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, results)
		}()
	}

	go func() {
		defer close(tasks)
		for i, file := range report.Files {
			select {
			case tasks <- fixTask{index: i, path: file.Path, kind: file.Kind}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	outcomes := make([]*workerResult, len(paths))
	for item := range results {
		item := item
		outcomes[item.index] = &item
	}

	for i, outcome := range outcomes {
		if outcome == nil {
			s.recordError(&report, model.FixError{
				Path:  paths[i],
				Stage: model.StageProcess,
				Error: fmt.Sprintf("skipped: %v", ctx.Err()),
			})
			continue
		}

		if outcome.err != nil {
			s.recordError(&report, model.FixError{
				Path:  paths[i],
				Stage: model.StageProcess,
				Error: outcome.err.Error(),
			})
			continue
		}

		if !outcome.changed {
			continue
		}

		report.Files[i].Changed = true
		report.Fixed++
		if s.OnFixed != nil {
			s.OnFixed(paths[i])
		}

		if err := s.stager.Stage(ctx, paths[i]); err != nil {
			report.Failed = true
			s.recordError(&report, model.FixError{
				Path:  paths[i],
				Stage: model.StageStage,
				Error: err.Error(),
			})
			continue
		}
		report.Files[i].Staged = true
	}

	return report
}

// runWorker 执行真实的文件读取与改写。
func (s *Service) runWorker(tasks <-chan fixTask, results chan<- workerResult) {
	for task := range tasks {
		changed, err := FixFile(task.path, task.kind, s.policy)
		results <- workerResult{
			index:   task.index,
			changed: changed,
			err:     err,
		}
	}
}

func (s *Service) recordError(report *model.FixReport, item model.FixError) {
	report.Errors = append(report.Errors, item)
	if s.OnError != nil {
		s.OnError(item)
	}
}

// dedupe 去掉重复路径和空路径，保留首次出现的顺序。
func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	result := make([]string, 0, len(paths))
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		result = append(result, path)
	}
	return result
}
