package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// localeVars are inspected in order; all of them get a say. A later
// variable naming a Chinese locale wins even when an earlier one names
// a non-Chinese locale, because the catalog only distinguishes Chinese
// from everything-else.
var localeVars = []string{"LANG", "LC_ALL", "LC_MESSAGES"}

// Both script variants are listed; otherwise traditional-script
// locales such as zh-TW match bare "zh" with too little confidence.
var chineseMatcher = language.NewMatcher([]language.Tag{
	language.SimplifiedChinese,
	language.TraditionalChinese,
})

// Detect inspects the process locale variables via lookup (normally
// os.LookupEnv) and returns the message language: language.Chinese if
// any of LANG, LC_ALL or LC_MESSAGES names a Chinese locale in either
// script, otherwise language.English.
func Detect(lookup func(string) (string, bool)) language.Tag {
	for _, name := range localeVars {
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		if isChineseLocale(value) {
			return language.Chinese
		}
	}
	return language.English
}

func isChineseLocale(value string) bool {
	tag, err := language.Parse(normalizeLocale(value))
	if err != nil {
		return false
	}
	_, _, conf := chineseMatcher.Match(tag)
	return conf >= language.High
}

// normalizeLocale converts a POSIX locale name such as "zh_CN.UTF-8"
// or "sr_RS@latin" into a BCP 47 candidate ("zh-CN", "sr-RS").
func normalizeLocale(value string) string {
	v := value
	if i := strings.IndexByte(v, '.'); i >= 0 {
		v = v[:i]
	}
	if i := strings.IndexByte(v, '@'); i >= 0 {
		v = v[:i]
	}
	return strings.ReplaceAll(v, "_", "-")
}
