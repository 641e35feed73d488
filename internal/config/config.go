// Package config provides configuration for the uprev tool, including
// reading the optional per-repository config file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the optional per-repository config file, looked up in
// the output root.
const ConfigFileName = ".uprev.json"

// ToolsDirName is the directory holding uprev itself and its patch series
// inside the output repository. It is never cleaned or imported over.
const ToolsDirName = "uprev_tools"

// DefaultBlacklist lists paths tracked by the output repository that must
// never be imported from the upstream checkout. Entries may use `*`
// wildcards; matching is anchored to the full relative path from the
// repository root and `*` crosses directory separators.
var DefaultBlacklist = []string{
	// Files maintained locally in the output repository.
	"Android.bp",
	"MODULE_LICENSE_BSD",
	"NOTICE",
	"OWNERS",
	"SConstruct",
	"testrunner.cc",

	// The tool and its patches are outside the update target.
	ToolsDirName + "/*",

	// Generated headers; see buildflag_header.patch.
	"base/allocator/features.h",
	"base/debug/debugging_flags.h",

	// Bundled third party trees replaced by system libraries.
	"base/third_party/libevent/*",
	"base/third_party/symbolize/*",
	"testing/gmock/*",
	"testing/gtest/*",
	"third_party/*",
}

// DefaultPreserved lists the top-level directory names the cleaner keeps.
var DefaultPreserved = []string{".git", ToolsDirName}

// Config represents the effective tool configuration
type Config struct {
	Blacklist []string `json:"blacklist,omitempty"`
	Preserved []string `json:"preserved,omitempty"`
	PatchDir  string   `json:"patchDir,omitempty"`
}

// Default returns the compiled-in configuration for an output root.
func Default(outputRoot string) *Config {
	return &Config{
		Blacklist: DefaultBlacklist,
		Preserved: DefaultPreserved,
		PatchDir:  filepath.Join(outputRoot, ToolsDirName, "patches"),
	}
}

// Load reads the configuration for an output root. A missing config file is
// not an error; compiled-in defaults are returned. Fields absent from the
// file keep their default values.
func Load(outputRoot string) (*Config, error) {
	cfg := Default(outputRoot)

	data, err := os.ReadFile(filepath.Join(outputRoot, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(file.Blacklist) > 0 {
		cfg.Blacklist = file.Blacklist
	}
	if len(file.Preserved) > 0 {
		cfg.Preserved = file.Preserved
	}
	if file.PatchDir != "" {
		cfg.PatchDir = file.PatchDir
		if !filepath.IsAbs(cfg.PatchDir) {
			cfg.PatchDir = filepath.Join(outputRoot, cfg.PatchDir)
		}
	}

	return cfg, nil
}
