// Package config 负责合并命令行参数与环境变量。
// 优先级：命令行参数 > PREHOOKS_* 环境变量 > 默认值。不读取配置文件。
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"prehooks/internal/bump"
	"prehooks/internal/kinds"
	"prehooks/internal/model"
	"prehooks/internal/stage"
)

// EnvPrefix 是环境变量前缀。
const EnvPrefix = "prehooks"

// 配置键，与命令行参数同名。
const (
	KeyChars       = "chars"
	KeyMarkdownExt = "markdown-linebreak-ext"
	KeyWorkers     = "workers"
	KeyFormat      = "format"
	KeyGit         = "git"
	KeyPart        = "part"
	KeyBin         = "bin"
	KeyVerbose     = "verbose"
)

// 输出格式。
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Option 描述一个配置项的默认值与说明。
type Option struct {
	Key     string
	Default any
	Comment string
}

// FixOptions 返回 trailing-whitespace 命令的配置项。
// --chars 没有默认值，未设置时使用空白策略。
func FixOptions() []Option {
	return []Option{
		{Key: KeyMarkdownExt, Default: strings.Join(trimDots(kinds.DefaultMarkdownExtensions), ","), Comment: "逗号分隔的 Markdown 后缀，* 表示全部文件"},
		{Key: KeyWorkers, Default: 1, Comment: "并发 worker 数量"},
		{Key: KeyFormat, Default: FormatText, Comment: "输出格式: text 或 json"},
		{Key: KeyGit, Default: stage.DefaultGitBinary, Comment: "git 可执行文件"},
	}
}

// BumpOptions 返回 bump-version 命令的配置项。
func BumpOptions() []Option {
	return []Option{
		{Key: KeyPart, Default: bump.DefaultPart, Comment: "递增的版本段: major, minor 或 patch"},
		{Key: KeyBin, Default: bump.DefaultBinary, Comment: "版本号工具可执行文件"},
	}
}

// New 创建绑定了命令行参数与环境变量的 viper 实例。
func New(flags *pflag.FlagSet, options []Option) (*viper.Viper, error) {
	v := viper.New()
	for _, o := range options {
		v.SetDefault(o.Key, o.Default)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}
	return v, nil
}

// FixSettings 是 trailing-whitespace 命令的最终配置。
type FixSettings struct {
	Policy       model.StripPolicy
	MarkdownExts []string
	Workers      int
	Format       string
	GitBinary    string
	Verbose      bool
}

// LoadFixSettings 从 viper 读取并校验修复配置。
func LoadFixSettings(v *viper.Viper) (FixSettings, error) {
	settings := FixSettings{
		Policy:    model.DefaultPolicy(),
		Workers:   v.GetInt(KeyWorkers),
		Format:    strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat))),
		GitBinary: strings.TrimSpace(v.GetString(KeyGit)),
		Verbose:   v.GetBool(KeyVerbose),
	}

	// IsSet 对显式传入的空字符串同样返回 true。
	if v.IsSet(KeyChars) {
		settings.Policy = model.CharsPolicy(v.GetString(KeyChars))
	}

	settings.MarkdownExts = MarkdownExtensions(v)

	if settings.Workers <= 0 {
		return settings, errors.New("workers must be greater than 0")
	}
	if settings.Format != FormatText && settings.Format != FormatJSON {
		return settings, errors.New("unsupported format, allowed values: text, json")
	}
	if settings.GitBinary == "" {
		settings.GitBinary = stage.DefaultGitBinary
	}
	return settings, nil
}

// MarkdownExtensions 拆分逗号分隔的 Markdown 后缀列表。
func MarkdownExtensions(v *viper.Viper) []string {
	var exts []string
	for _, ext := range strings.Split(v.GetString(KeyMarkdownExt), ",") {
		if ext = strings.TrimSpace(ext); ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

// BumpSettings 是 bump-version 命令的最终配置。
type BumpSettings struct {
	Part   string
	Binary string
}

// LoadBumpSettings 从 viper 读取并校验版本递增配置。
func LoadBumpSettings(v *viper.Viper) (BumpSettings, error) {
	part, err := bump.ValidatePart(v.GetString(KeyPart))
	if err != nil {
		return BumpSettings{}, err
	}

	binary := strings.TrimSpace(v.GetString(KeyBin))
	if binary == "" {
		binary = bump.DefaultBinary
	}
	return BumpSettings{Part: part, Binary: binary}, nil
}

func trimDots(exts []string) []string {
	result := make([]string, 0, len(exts))
	for _, ext := range exts {
		result = append(result, strings.TrimPrefix(ext, "."))
	}
	return result
}
