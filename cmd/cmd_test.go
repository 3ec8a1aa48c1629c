package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prehooks/internal/fixer"
	"prehooks/internal/model"
	"prehooks/internal/runner"
)

// execute 是测试辅助函数，用假执行器运行根命令并返回标准输出。
func execute(t *testing.T, fake *runner.FakeRunner, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd := newRootCmd("test", fake)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFixtureFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, runner.NewFakeRunner(), "version")
	require.NoError(t, err)
	assert.Equal(t, "prehooks version test\n", out)
}

func TestWhitespaceFixesAndStages(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "README.md")
	code := filepath.Join(dir, "main.go")
	writeFixtureFile(t, doc, "Some text  \nother \r\n")
	writeFixtureFile(t, code, "Some text  \n")

	fake := runner.NewFakeRunner()
	out, err := execute(t, fake, "trailing-whitespace", doc, code)
	require.NoError(t, err)

	assert.Equal(t, "Fixing "+doc+"\nFixing "+code+"\n", out)
	assert.Equal(t, "Some text  \nother\r\n", readFile(t, doc))
	assert.Equal(t, "Some text\n", readFile(t, code))
	assert.Equal(t, []string{"git add " + doc, "git add " + code}, fake.CallKeys())
}

func TestWhitespaceUnchangedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.txt")
	writeFixtureFile(t, path, "clean\n")

	fake := runner.NewFakeRunner()
	out, err := execute(t, fake, "trailing-whitespace", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, fake.Calls)
}

func TestWhitespaceNoFiles(t *testing.T) {
	out, err := execute(t, runner.NewFakeRunner(), "trailing-whitespace")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestWhitespaceChars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	writeFixtureFile(t, path, "fooxx\nfoo  xx\n")

	_, err := execute(t, runner.NewFakeRunner(), "trailing-whitespace", "--chars", "x", path)
	require.NoError(t, err)
	assert.Equal(t, "foo\nfoo  \n", readFile(t, path))
}

func TestWhitespaceMarkdownExtFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	writeFixtureFile(t, path, "break  \n")

	fake := runner.NewFakeRunner()
	_, err := execute(t, fake, "trailing-whitespace", "--markdown-linebreak-ext", "*", path)
	require.NoError(t, err)
	assert.Equal(t, "break  \n", readFile(t, path))
	assert.Empty(t, fake.Calls)
}

func TestWhitespaceEnvChars(t *testing.T) {
	t.Setenv("PREHOOKS_CHARS", "-")
	path := filepath.Join(t.TempDir(), "a.txt")
	writeFixtureFile(t, path, "rule---\n")

	_, err := execute(t, runner.NewFakeRunner(), "trailing-whitespace", path)
	require.NoError(t, err)
	assert.Equal(t, "rule\n", readFile(t, path))
}

func TestWhitespaceStageFailure(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	writeFixtureFile(t, first, "a \n")
	writeFixtureFile(t, second, "b \n")

	fake := runner.NewFakeRunner()
	fake.Statuses[runner.Key("git", "add", first)] = 1

	out, err := execute(t, fake, "trailing-whitespace", first, second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReported))
	assert.True(t, errors.Is(err, fixer.ErrStageFailed))
	assert.Contains(t, out, "Error staging "+first)
	assert.Contains(t, out, "Fixing "+second)
	assert.Len(t, fake.Calls, 2)
}

func TestWhitespaceProcessErrorKeepsExitZero(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	out, err := execute(t, runner.NewFakeRunner(), "trailing-whitespace", missing)
	require.NoError(t, err)
	assert.Contains(t, out, "Error processing "+missing)
}

func TestWhitespaceJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.md")
	writeFixtureFile(t, path, "x \n")

	out, err := execute(t, runner.NewFakeRunner(), "trailing-whitespace", "--format", "json", path)
	require.NoError(t, err)

	prefix := "Fixing " + path + "\n"
	require.True(t, len(out) > len(prefix))
	assert.Equal(t, prefix, out[:len(prefix)])

	var result model.FixReport
	require.NoError(t, json.Unmarshal([]byte(out[len(prefix):]), &result))
	assert.Equal(t, 1, result.Fixed)
	require.Len(t, result.Files, 1)
	assert.True(t, result.Files[0].Staged)
}

func TestWhitespaceInvalidWorkers(t *testing.T) {
	_, err := execute(t, runner.NewFakeRunner(), "trailing-whitespace", "--workers", "0")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrReported))
}

func TestBumpVersion(t *testing.T) {
	fake := runner.NewFakeRunner()
	_, err := execute(t, fake, "bump-version")
	require.NoError(t, err)
	assert.Equal(t, []string{"bump-my-version bump patch"}, fake.CallKeys())
}

func TestBumpVersionFailure(t *testing.T) {
	fake := runner.NewFakeRunner()
	fake.Statuses[runner.Key("bump-my-version", "bump", "patch")] = 1

	out, err := execute(t, fake, "bump-version")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReported))
	assert.Contains(t, out, "Error during version bump:")
}

func TestBumpVersionRunnerError(t *testing.T) {
	fake := runner.NewFakeRunner()
	fake.Errors[runner.Key("bump-my-version", "bump", "minor")] = errors.New("not found")

	out, err := execute(t, fake, "bump-version", "--part", "minor")
	require.Error(t, err)
	assert.Contains(t, out, "not found")
}

func TestKindsCmd(t *testing.T) {
	out, err := execute(t, runner.NewFakeRunner(), "kinds", "--markdown-linebreak-ext", "md,markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "markdown  .markdown, .md")
	assert.Contains(t, out, "other")
}
