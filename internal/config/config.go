package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName 项目配置文件名
const FileName = "jrust.toml"

// Config jrust 项目配置
type Config struct {
	Package PackageConfig `toml:"package"`
}

// PackageConfig 包配置
type PackageConfig struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Edition     string   `toml:"edition"`
	Authors     []string `toml:"authors"`
	Description string   `toml:"description,omitempty"`
}

// DefaultConfig 返回给定项目名的默认配置
func DefaultConfig(name string) *Config {
	return &Config{
		Package: PackageConfig{
			Name:        name,
			Version:     "0.0.1",
			Edition:     "2021",
			Authors:     []string{"Your Name"},
			Description: "A jRust project",
		},
	}
}

// FindConfigFile 从指定目录向上查找 jrust.toml
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// FindAndLoad 从指定目录向上查找 jrust.toml 并加载
// 没找到时返回空路径和 nil 配置
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		return nil, "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}

	// 缺省字段补默认值
	if config.Package.Version == "" {
		config.Package.Version = "0.0.1"
	}
	if config.Package.Edition == "" {
		config.Package.Edition = "2021"
	}

	return &config, nil
}

// Save 把配置写入指定目录下的 jrust.toml
func (c *Config) Save(dir string) error {
	f, err := os.Create(filepath.Join(dir, FileName))
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// ProjectRoot 获取项目根目录 (jrust.toml 所在目录)
func ProjectRoot(configPath string) string {
	if configPath == "" {
		return ""
	}
	return filepath.Dir(configPath)
}
