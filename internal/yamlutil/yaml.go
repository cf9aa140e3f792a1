// Package yamlutil decodes and encodes render configs with goccy/go-yaml.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits config input (default 256KB).
var MaxInputSize = 256 << 10

var (
	ErrEmptyInput     = errors.New("yamlutil: empty input")
	ErrNilDestination = errors.New("yamlutil: nil destination")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrSyntax         = errors.New("yamlutil: cannot decode")
	ErrInvalid        = errors.New("yamlutil: invalid value")
)

// Validator is implemented by configs that check their own fields after decoding.
type Validator interface {
	Validate() error
}

// DecodeConfig 将 YAML 严格解码到 v 上，未出现的字段保留 v 中原有的默认值
//
// 未知字段会报错，错误信息附带出错行的源码片段。
// 如果 v 实现了 Validator，解码后会调用 Validate。
//
// 返回:
//   - ErrEmptyInput / ErrInputTooLarge / ErrNilDestination: 输入检查失败
//   - ErrSyntax: 语法错误、类型不匹配或未知字段
//   - ErrInvalid: Validate 返回的错误
func DecodeConfig(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("%w: %s", ErrSyntax, yaml.FormatError(err, false, true))
	}
	if validator, ok := v.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// Marshal encodes a config as YAML with indented sequences, the layout DecodeConfig reads back.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
