// Package i18n selects the user-facing message language from the
// process environment and resolves message keys against a static
// bilingual catalog (English, Chinese). The catalog is built once at
// package load; callers receive an immutable Messages value and pass
// it explicitly to anything that prints user-facing text. Diagnostic
// logging and help text are intentionally not localized.
package i18n
