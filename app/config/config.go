package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type BatchCfg struct {
	Workers int `yaml:"workers" json:"workers"`
}

type CacheCfg struct {
	ParseCacheSize int `yaml:"parse_cache_size" json:"parse_cache_size"`
}

type ExportCfg struct {
	OutputDir string `yaml:"output_dir" json:"output_dir"`
	WriteCSV  bool   `yaml:"write_csv" json:"write_csv"`
}

type PipelineCfg struct {
	Batch  BatchCfg  `yaml:"batch" json:"batch"`
	Cache  CacheCfg  `yaml:"cache" json:"cache"`
	Export ExportCfg `yaml:"export" json:"export"`
}

var C = Defaults()

// Defaults returns the tuning values used when no config file is given.
func Defaults() PipelineCfg {
	return PipelineCfg{
		Batch:  BatchCfg{Workers: 4},
		Cache:  CacheCfg{ParseCacheSize: 1024},
		Export: ExportCfg{OutputDir: "data"},
	}
}

// Load reads pipeline tuning from a YAML file into C, starting from the
// defaults so a partial file only overrides what it names.
func Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg := Defaults()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return err
	}
	C = cfg

	// ENV overrides
	if v := os.Getenv("PIPELINE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			C.Batch.Workers = n
		}
	}
	if v := os.Getenv("PIPELINE_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			C.Cache.ParseCacheSize = n
		}
	}
	return nil
}
