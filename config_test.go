package simplemarkdown

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig_Singleton 测试默认配置为单例且有效
func TestDefaultConfig_Singleton(t *testing.T) {
	if DefaultConfig() != DefaultConfig() {
		t.Error("DefaultConfig() returned different instances")
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestParseConfig_KeepsDefaults 测试未设置的字段保留默认值
func TestParseConfig_KeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("section_spacing: 4"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SectionSpacing != 4 {
		t.Errorf("SectionSpacing = %d, want 4", cfg.SectionSpacing)
	}
	if cfg.HeaderSpacing != DefaultConfig().HeaderSpacing {
		t.Errorf("HeaderSpacing = %d, want default %d", cfg.HeaderSpacing, DefaultConfig().HeaderSpacing)
	}
	if cfg == DefaultConfig() {
		t.Error("ParseConfig() returned the shared default")
	}
}

// TestParseConfig_Errors 测试错误分类
func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown key", "unknown: 1", ErrConfigParse},
		{"bad syntax", "bullet_tokens: [", ErrConfigParse},
		{"empty", "", ErrConfigParse},
		{"negative spacing", "section_spacing: -1", ErrInvalidConfig},
		{"zero header scale", "header_scale: [1.5, 0]", ErrInvalidConfig},
		{"two verbs", "ordered_format: \"%d.%d \"", ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseConfig(%q) error = %v, want %v", tt.data, err, tt.want)
			}
		})
	}
}

// TestLoadConfig 测试从文件读取配置
func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	if err := os.WriteFile(path, []byte("header_spacing: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HeaderSpacing != 20 {
		t.Errorf("HeaderSpacing = %d, want 20", cfg.HeaderSpacing)
	}
}

// TestLoadConfig_Missing 测试文件不存在
func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigRead) {
		t.Errorf("LoadConfig(missing) error = %v, want ErrConfigRead", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig(missing) error = %v, want os.ErrNotExist", err)
	}
}
