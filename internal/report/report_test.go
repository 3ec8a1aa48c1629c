package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prehooks/internal/kinds"
	"prehooks/internal/model"
)

// 写入 bytes.Buffer 时不是终端，输出不带颜色。
func TestPrinterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.Fixed("README.md")
	printer.Failure(model.FixError{Path: "a.txt", Stage: model.StageProcess, Error: "permission denied"})
	printer.Failure(model.FixError{Path: "b.txt", Stage: model.StageStage, Error: "exit status 1"})
	printer.BumpFailure(errors.New("boom"))

	assert.Equal(t,
		"Fixing README.md\n"+
			"Error processing a.txt: permission denied\n"+
			"Error staging b.txt: exit status 1\n"+
			"Error during version bump: boom\n",
		buf.String())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	result := model.FixReport{
		Files:  []model.FileResult{{Path: "a.md", Kind: model.KindMarkdown, Changed: true, Staged: true}},
		Errors: []model.FixError{},
		Fixed:  1,
	}
	require.NoError(t, PrintJSON(&buf, result))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	files := decoded["files"].([]any)
	require.Len(t, files, 1)
	assert.Equal(t, "markdown", files[0].(map[string]any)["kind"])
	assert.Equal(t, float64(1), decoded["fixed"])
}

func TestPrintKinds(t *testing.T) {
	registry, err := kinds.NewRegistry([]string{"md", "mdx"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PrintKinds(&buf, registry.Kinds()))

	out := buf.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, ".md, .mdx")
	assert.Contains(t, out, "other")
}
