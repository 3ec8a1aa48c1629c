package runner

import (
	"context"
	"strings"
	"sync"
)

// FakeRunner 记录调用参数并按命令行返回预设结果，供测试使用。
type FakeRunner struct {
	mu       sync.Mutex
	Calls    [][]string
	Statuses map[string]ExitStatus
	Errors   map[string]error
}

// NewFakeRunner 创建默认全部成功的假执行器。
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Statuses: make(map[string]ExitStatus),
		Errors:   make(map[string]error),
	}
}

// Key 返回 argv 的查表键，参数以空格拼接。
func Key(argv ...string) string {
	return strings.Join(argv, " ")
}

// Run 记录 argv 并返回预设结果。
func (f *FakeRunner) Run(_ context.Context, argv []string) (ExitStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, append([]string(nil), argv...))

	key := Key(argv...)
	if err, ok := f.Errors[key]; ok {
		return -1, err
	}
	return f.Statuses[key], nil
}

// CallKeys 返回已记录调用的查表键列表。
func (f *FakeRunner) CallKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	keys := make([]string, 0, len(f.Calls))
	for _, call := range f.Calls {
		keys = append(keys, Key(call...))
	}
	return keys
}
