package messages

import (
	"strings"

	"golang.org/x/text/language"
)

// localeVars are consulted in order, like setlocale(3) does for LC_MESSAGES
var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// ResolveLocale returns the requested locale name, or the one from the
// environment when explicit is empty. The result may be empty.
func ResolveLocale(explicit string, getenv func(string) string) string {
	if explicit != "" {
		return normalize(explicit)
	}

	for _, name := range localeVars {
		value := normalize(getenv(name))
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		return value
	}

	return ""
}

// normalize strips the encoding and modifier: fr_FR.UTF-8@euro -> fr_FR
func normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return locale
}

// Match picks the closest available locale, falling back to def
func Match(requested string, available []string, def string) string {
	if requested == "" {
		return def
	}

	tag, err := language.Parse(strings.ReplaceAll(requested, "_", "-"))
	if err != nil {
		return def
	}

	// The first supported tag is the matcher's fallback
	names := []string{def}
	for _, name := range available {
		if name != def {
			names = append(names, name)
		}
	}

	supported := make([]language.Tag, 0, len(names))
	for _, name := range names {
		supported = append(supported, language.Make(strings.ReplaceAll(name, "_", "-")))
	}

	_, index, confidence := language.NewMatcher(supported).Match(tag)
	if confidence == language.No {
		return def
	}
	return names[index]
}
