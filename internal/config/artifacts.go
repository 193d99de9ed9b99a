// Build artifact detection from language build files. Output directories
// named in package.json, tsconfig.json, Cargo.toml or pyproject.toml hold
// generated copies of source files; renaming symbols inside them is wasted
// work at best and corruption of a build at worst, so batch resolution
// excludes them.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultExclusions are glob patterns batch resolution always skips.
func DefaultExclusions() []string {
	return []string{
		"**/.*/**",
		"**/node_modules/**",
		"**/vendor/**",
		"**/dist/**",
		"**/build/**",
		"**/target/**",
		"**/__pycache__/**",
		"**/bin/**",
		"**/obj/**",
	}
}

// DetectBuildArtifacts returns extra exclusion globs for output directories
// declared in the project's build configuration files.
func DetectBuildArtifacts(projectRoot string) []string {
	var patterns []string
	patterns = append(patterns, tsOutputDirs(projectRoot)...)
	patterns = append(patterns, cargoOutputDirs(projectRoot)...)
	patterns = append(patterns, pythonOutputDirs(projectRoot)...)
	return dedupePatterns(patterns)
}

// tsOutputDirs reads outDir settings from tsconfig.json and package.json.
func tsOutputDirs(root string) []string {
	var patterns []string

	if data, err := os.ReadFile(filepath.Join(root, "tsconfig.json")); err == nil {
		var tsconfig map[string]interface{}
		if json.Unmarshal(data, &tsconfig) == nil {
			if opts, ok := tsconfig["compilerOptions"].(map[string]interface{}); ok {
				if outDir, ok := opts["outDir"].(string); ok && outDir != "" {
					patterns = append(patterns, dirPattern(outDir))
				}
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join(root, "package.json")); err == nil {
		var pkg map[string]interface{}
		if json.Unmarshal(data, &pkg) == nil {
			if build, ok := pkg["build"].(map[string]interface{}); ok {
				if outDir, ok := build["outDir"].(string); ok && outDir != "" {
					patterns = append(patterns, dirPattern(outDir))
				}
			}
		}
	}

	return patterns
}

// cargoOutputDirs reads a custom target-dir from Cargo.toml.
func cargoOutputDirs(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, "Cargo.toml"))
	if err != nil {
		return nil
	}
	var cargo map[string]interface{}
	if toml.Unmarshal(data, &cargo) != nil {
		return nil
	}

	var patterns []string
	if profile, ok := cargo["profile"].(map[string]interface{}); ok {
		for _, v := range profile {
			if section, ok := v.(map[string]interface{}); ok {
				if targetDir, ok := section["target-dir"].(string); ok && targetDir != "" {
					patterns = append(patterns, dirPattern(targetDir))
				}
			}
		}
	}
	return patterns
}

// pythonOutputDirs reads a poetry build target-dir from pyproject.toml.
func pythonOutputDirs(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, "pyproject.toml"))
	if err != nil {
		return nil
	}
	var pyproject map[string]interface{}
	if toml.Unmarshal(data, &pyproject) != nil {
		return nil
	}

	var patterns []string
	if tool, ok := pyproject["tool"].(map[string]interface{}); ok {
		if poetry, ok := tool["poetry"].(map[string]interface{}); ok {
			if build, ok := poetry["build"].(map[string]interface{}); ok {
				if targetDir, ok := build["target-dir"].(string); ok && targetDir != "" {
					patterns = append(patterns, dirPattern(targetDir))
				}
			}
		}
	}
	return patterns
}

func dirPattern(dir string) string {
	return "**/" + filepath.ToSlash(filepath.Clean(dir)) + "/**"
}

func dedupePatterns(patterns []string) []string {
	seen := make(map[string]bool, len(patterns))
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
