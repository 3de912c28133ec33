package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Benchmark BenchmarkConfig `yaml:"benchmark"`
	Native    NativeConfig    `yaml:"native"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

type BenchmarkConfig struct {
	Size     int   `yaml:"size"`
	Trials   int   `yaml:"trials"`
	SeedBase int64 `yaml:"seed_base"`
	// 数据取值范围 [0, max_value]
	MaxValue int `yaml:"max_value"`
	// 超过该规模时跳过插入/冒泡/选择排序
	QuadraticThreshold int `yaml:"quadratic_threshold"`
	BucketWidth        int `yaml:"bucket_width"`
	// 计数排序是否从输入推断最大值；false 时使用 max_value
	InferCountingMax bool `yaml:"infer_counting_max"`
}

type NativeConfig struct {
	// builtin:<name> 或 Go 插件 (.so) 路径
	Library string `yaml:"library"`
	// 报告中显示的算法名
	Name string `yaml:"name"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	// debug/info/warn/error
	Level string `yaml:"level"`
	// console/json
	Format string `yaml:"format"`
}

// DefaultConfig 与原始基准脚本一致的常量
func DefaultConfig() *Config {
	return &Config{
		Benchmark: BenchmarkConfig{
			Size:               100_000,
			Trials:             25,
			SeedBase:           420,
			MaxValue:           1_000_000,
			QuadraticThreshold: 10_000,
			BucketWidth:        1000,
		},
		Native: NativeConfig{
			Library: "builtin:maxwell-mean",
			Name:    "MaxwellMean (native)",
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig 读取 yaml 并覆盖到默认配置上，缺省字段保留默认值
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate 一次性汇总所有字段错误
func (c *Config) Validate() error {
	var err error
	b := c.Benchmark
	if b.Size < 0 {
		err = multierr.Append(err, fmt.Errorf("benchmark.size must be non-negative, got %d", b.Size))
	}
	if b.Trials <= 0 {
		err = multierr.Append(err, fmt.Errorf("benchmark.trials must be positive, got %d", b.Trials))
	}
	if b.MaxValue < 0 {
		err = multierr.Append(err, fmt.Errorf("benchmark.max_value must be non-negative, got %d", b.MaxValue))
	}
	// 原生排序走 int32 缓冲区
	if b.MaxValue > 1<<31-1 {
		err = multierr.Append(err, fmt.Errorf("benchmark.max_value %d overflows the native int32 buffer", b.MaxValue))
	}
	if b.QuadraticThreshold < 0 {
		err = multierr.Append(err, fmt.Errorf("benchmark.quadratic_threshold must be non-negative, got %d", b.QuadraticThreshold))
	}
	if b.BucketWidth <= 0 {
		err = multierr.Append(err, fmt.Errorf("benchmark.bucket_width must be positive, got %d", b.BucketWidth))
	}
	if c.Native.Library == "" {
		err = multierr.Append(err, errors.New("native.library is required"))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
