package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/git-l10n/po-stats/data"
)

// Exist check if path is exist.
func Exist(name string) bool {
	if _, err := os.Stat(name); err == nil {
		return true
	}
	return false
}

// IsFile returns true if path is exist and is a file.
func IsFile(name string) bool {
	fi, err := os.Stat(name)
	if err != nil || fi.IsDir() {
		return false
	}
	return true
}

// IsDir returns true if path is exist and is a directory.
func IsDir(name string) bool {
	fi, err := os.Stat(name)
	if err != nil || !fi.IsDir() {
		return false
	}
	return true
}

// GetPrettyLocaleName shows full language name and location of a
// catalog language such as "pt_BR", "zh-CN" or "sr@latin".
func GetPrettyLocaleName(locale string) (string, error) {
	var (
		langName string
		locName  string
	)
	if locale == PotLanguage {
		return "Template", nil
	}
	if idx := strings.Index(locale, "@"); idx >= 0 {
		locale = locale[:idx]
	}
	items := strings.FieldsFunc(locale, func(r rune) bool {
		return r == '_' || r == '-'
	})
	if len(items) == 0 {
		return "", fmt.Errorf("invalid language code for locale \"%s\"", locale)
	}
	langName = data.GetLanguageName(items[0])
	if langName == "" {
		return "", fmt.Errorf("invalid language code for locale \"%s\"", locale)
	}
	if len(items) > 1 && items[1] != "" {
		locName = data.GetLocationName(items[1])
		if locName == "" {
			return "", fmt.Errorf(`invalid country or location code for locale "%s"`, locale)
		}
	}
	if locName != "" {
		return fmt.Sprintf("%s - %s", langName, locName), nil
	}
	return langName, nil
}
