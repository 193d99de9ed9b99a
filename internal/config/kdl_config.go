package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// ConfigFileName is the per-project configuration file.
const ConfigFileName = ".lcr.kdl"

// LoadKDL loads configuration from the project's .lcr.kdl file.
// Returns (nil, nil) when the file does not exist.
func LoadKDL(projectRoot string) (*Config, error) {
	kdlPath := filepath.Join(projectRoot, ConfigFileName)

	if _, err := os.Stat(kdlPath); os.IsNotExist(err) {
		return nil, nil
	}

	content, err := os.ReadFile(kdlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	return parseKDL(string(content))
}

func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "retry":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "max_retries":
					if v, ok := firstIntArg(cn); ok && v >= 0 {
						cfg.MaxRetries = uint(v)
					}
				case "retry_delay_ms":
					if v, ok := firstIntArg(cn); ok && v >= 0 {
						cfg.RetryDelay = time.Duration(v) * time.Millisecond
					}
				case "read_retries":
					if v, ok := firstIntArg(cn); ok && v >= 0 {
						cfg.ReadRetries = uint(v)
					}
				}
			}
		case "batch":
			for _, cn := range n.Children {
				if nodeName(cn) == "max_workers" {
					if v, ok := firstIntArg(cn); ok && v > 0 {
						cfg.MaxWorkers = v
					}
				}
			}
		case "verify":
			for _, cn := range n.Children {
				if nodeName(cn) == "enabled" {
					if b, ok := firstBoolArg(cn); ok {
						cfg.VerifyAfterWrite = b
					}
				}
			}
		case "exclude":
			cfg.Exclude = append(cfg.Exclude, collectStringArgs(n)...)
		}
	}

	return cfg, nil
}

// DefaultKDL is the file written by "lcr config init".
const DefaultKDL = `// lcr project configuration
retry {
    max_retries 3
    retry_delay_ms 100
    read_retries 3
}

batch {
    max_workers 4
}

verify {
    enabled true
}

exclude {
    "**/testdata/**"
}
`

// WriteDefault creates a .lcr.kdl with default settings in projectRoot.
// Refuses to overwrite an existing file.
func WriteDefault(projectRoot string) (string, error) {
	path := filepath.Join(projectRoot, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(DefaultKDL), 0644); err != nil {
		return path, err
	}
	return path, nil
}

// Helper functions built on the kdl-go document model.

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

// collectStringArgs accepts both inline arguments (exclude "a" "b") and
// block form, where each child node's name or first argument is the value.
func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 && len(n.Children) > 0 {
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
