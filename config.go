package simplemarkdown

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/riverfjs/simplemarkdown-go/internal/types"
	"github.com/riverfjs/simplemarkdown-go/internal/yamlutil"
)

// 导出类型别名
type (
	Symbol        = types.Symbol
	SymbolKind    = types.SymbolKind
	Tag           = types.Tag
	TagKind       = types.TagKind
	ProcessedTag  = types.ProcessedTag
	Span          = types.Span
	ExtractMode   = types.ExtractMode
	RenderConfig  = types.RenderConfig
	PreviewConfig = types.PreviewConfig
)

const (
	TagParagraph            = types.TagParagraph
	TagHeader               = types.TagHeader
	TagList                 = types.TagList
	TagLine                 = types.TagLine
	TagSectionSpacer        = types.TagSectionSpacer
	TagOrderedItem          = types.TagOrderedItem
	TagUnorderedItem        = types.TagUnorderedItem
	TagLink                 = types.TagLink
	TagTextStyle            = types.TagTextStyle
	TagAlternativeTextStyle = types.TagAlternativeTextStyle
)

const (
	StartToNext        = types.StartToNext
	IntermediateToNext = types.IntermediateToNext
	IntermediateToEnd  = types.IntermediateToEnd
)

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
// The returned value is shared and must not be modified.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// LoadConfig 从 YAML 文件读取渲染配置
//
// 未出现在文件中的字段保留默认值，未知字段视为错误。
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *RenderConfig: 合并后的配置
//   - error: ErrConfigRead、ErrConfigParse 或 ErrInvalidConfig
func LoadConfig(path string) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigRead, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data over the defaults and validates the result.
func ParseConfig(data []byte) (*RenderConfig, error) {
	cfg := types.DefaultRenderConfig()
	if err := yamlutil.DecodeConfig(data, cfg); err != nil {
		if errors.Is(err, yamlutil.ErrInvalid) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	return cfg, nil
}
