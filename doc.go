// File: configinit/doc.go

// Package configinit bootstraps application configuration on first run.
// It creates the configuration directory and writes a default configuration
// value to disk in one of several serialization formats, guarding against
// accidental overwrite of anything that already exists.
//
// Features:
//   - Pluggable serialization backends: JSON, HJSON, TOML, YAML
//   - Registry/builder pattern to enable only the backends an application wants
//   - Exclusive file and directory creation, never truncating existing state
//   - Typed error kinds, comparable with errors.Is, wrapping the underlying cause
//   - Read-back helpers for verifying what an initializer wrote
//
// Quick Start:
//
//	type Config struct {
//	    Host string `toml:"host" json:"host" yaml:"host"`
//	    Port int    `toml:"port" json:"port" yaml:"port"`
//	}
//
//	func (Config) DefaultConfig() Config {
//	    return Config{Host: "localhost", Port: 8080}
//	}
//
//	dir := filepath.Join(userConfigDir, "myapp")
//	if err := configinit.CreateConfigDir(dir); err != nil &&
//	    !errors.Is(err, configinit.ErrConfigDirExists) {
//	    log.Fatal(err)
//	}
//
//	path := filepath.Join(dir, "config.toml")
//	err := configinit.Initialize[Config](path, configinit.FormatTOML)
//	if errors.Is(err, configinit.ErrConfigFileExists) {
//	    // already initialized, nothing to do
//	} else if err != nil {
//	    log.Fatal(err)
//	}
//
// Both operations are one-shot: nothing is retried, nothing existing is ever
// modified, and a second call on the same path fails with the corresponding
// already-exists error. Reading, merging, and validating configuration at
// runtime is left to the host application.
package configinit
