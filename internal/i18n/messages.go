package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key, so an untranslated
// language still renders something sensible.
const (
	keyConflictWarning = "Warning: Both -f (full) and -s (simple) format flags specified."
	keyUsingFull       = "Using -f (full format) based on argument order."
	keyUsingSimple     = "Using -s (simple format) based on argument order."
	keyInvalidVersion  = "Invalid UUID version: %s. Valid values: 4, 7"
	keyInvalidCount    = "Invalid count: %d. Must be a positive integer."
)

var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	set := func(tag language.Tag, key, text string) {
		if err := b.SetString(tag, key, text); err != nil {
			panic(fmt.Sprintf("i18n: building message catalog: %v", err))
		}
	}

	for _, key := range []string{
		keyConflictWarning,
		keyUsingFull,
		keyUsingSimple,
		keyInvalidVersion,
		keyInvalidCount,
	} {
		set(language.English, key, key)
	}

	set(language.Chinese, keyConflictWarning, "警告：同时指定了 -f（完整）和 -s（简单）格式标志。")
	set(language.Chinese, keyUsingFull, "根据参数顺序使用 -f（完整格式）。")
	set(language.Chinese, keyUsingSimple, "根据参数顺序使用 -s（简单格式）。")
	set(language.Chinese, keyInvalidVersion, "无效的 UUID 版本：%s。有效值：4、7")
	set(language.Chinese, keyInvalidCount, "无效的数量：%d。必须为正整数。")

	return b
}

// Messages resolves user-facing text for one selected language.
type Messages struct {
	tag     language.Tag
	printer *message.Printer
}

// NewMessages returns the message set for the given language. Tags
// without a translation fall back to English.
func NewMessages(tag language.Tag) *Messages {
	return &Messages{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

// Tag reports the language the messages resolve to.
func (m *Messages) Tag() language.Tag { return m.tag }

// ConflictWarning announces that both format families were given.
func (m *Messages) ConflictWarning() string {
	return m.printer.Sprintf(keyConflictWarning)
}

// UsingFull announces that the full format won the conflict.
func (m *Messages) UsingFull() string {
	return m.printer.Sprintf(keyUsingFull)
}

// UsingSimple announces that the simple format won the conflict.
func (m *Messages) UsingSimple() string {
	return m.printer.Sprintf(keyUsingSimple)
}

// InvalidVersion describes a rejected --uuid-version value.
func (m *Messages) InvalidVersion(raw string) string {
	return m.printer.Sprintf(keyInvalidVersion, raw)
}

// InvalidCount describes a rejected --count value.
func (m *Messages) InvalidCount(n int) string {
	return m.printer.Sprintf(keyInvalidCount, n)
}
