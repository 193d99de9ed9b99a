package rewrite

import (
	"path/filepath"
	"strings"
)

// Language identifies a source language for backend selection.
type Language string

const (
	LangGo         Language = "go"
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangJava       Language = "java"
	LangCSharp     Language = "csharp"
	LangCPP        Language = "cpp"
	LangRust       Language = "rust"
	LangPHP        Language = "php"
	LangZig        Language = "zig"
	LangUnknown    Language = ""
)

var extLanguages = map[string]Language{
	".go":   LangGo,
	".py":   LangPython,
	".pyw":  LangPython,
	".js":   LangJavaScript,
	".jsx":  LangJavaScript,
	".mjs":  LangJavaScript,
	".cjs":  LangJavaScript,
	".ts":   LangTypeScript,
	".tsx":  LangTypeScript,
	".java": LangJava,
	".cs":   LangCSharp,
	".cpp":  LangCPP,
	".cc":   LangCPP,
	".cxx":  LangCPP,
	".hpp":  LangCPP,
	".hh":   LangCPP,
	".h":    LangCPP,
	".c":    LangCPP,
	".rs":   LangRust,
	".php":  LangPHP,
	".zig":  LangZig,
}

// DetectLanguage maps a file path to its Language by extension.
// Unknown extensions get LangUnknown, which routes to the text backend.
func DetectLanguage(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extLanguages[ext]; ok {
		return lang
	}
	return LangUnknown
}
