// File: configinit/example/main.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"configinit"
)

// AppConfig is the configuration an application would bootstrap on first run.
type AppConfig struct {
	Server struct {
		Host string `toml:"host" json:"host" yaml:"host"`
		Port int64  `toml:"port" json:"port" yaml:"port"`
	} `toml:"server" json:"server" yaml:"server"`
	Debug bool `toml:"debug" json:"debug" yaml:"debug"`
}

// DefaultConfig returns the canonical defaults written on first run.
func (AppConfig) DefaultConfig() AppConfig {
	var cfg AppConfig
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 8080
	cfg.Debug = false
	return cfg
}

func main() {
	base, err := os.MkdirTemp("", "configinit-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(base)

	configDir := filepath.Join(base, "myapp")

	// First run: the directory does not exist yet.
	if err := configinit.CreateConfigDir(configDir); err != nil {
		log.Fatalf("create config dir: %v", err)
	}
	log.Printf("created %s", configDir)

	// Second run: the already-exists error tells us initialization is done.
	if err := configinit.CreateConfigDir(configDir); errors.Is(err, configinit.ErrConfigDirExists) {
		log.Println("config dir already initialized")
	}

	// Write the defaults once, in TOML.
	configPath := filepath.Join(configDir, "config.toml")
	if err := configinit.Initialize[AppConfig](configPath, configinit.FormatTOML); err != nil {
		log.Fatalf("initialize config file: %v", err)
	}

	content, err := configinit.ReadConfiguration(configPath)
	if err != nil {
		log.Fatalf("read back: %v", err)
	}
	fmt.Printf("wrote %s:\n%s", configPath, content)

	// A registry with a limited set of backends rejects everything else.
	registry := configinit.NewBuilder().WithJSON().MustBuild()
	err = registry.InitializeConfigFile(AppConfig{}.DefaultConfig(), filepath.Join(configDir, "config.yaml"), configinit.FormatYAML)
	if errors.Is(err, configinit.ErrUnsupportedFormat) {
		log.Println("YAML backend not enabled in this registry")
	}
}
