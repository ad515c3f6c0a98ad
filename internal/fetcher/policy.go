package fetcher

import (
	"weblatedl/internal/ui"
	"weblatedl/internal/weblate"
)

// Policy decides which translations are worth shipping.
type Policy struct {
	// SourceLanguage is never downloaded; it is the language strings are written in.
	SourceLanguage       string
	MinTranslatedPercent float64
}

// Qualifies reports whether record should be downloaded.
func (p Policy) Qualifies(record weblate.TranslationRecord) bool {
	return p.classify(record) == ui.StatusDownloaded
}

func (p Policy) classify(record weblate.TranslationRecord) ui.LanguageStatus {
	if record.LanguageCode == p.SourceLanguage {
		return ui.StatusSkippedSource
	}
	if record.TranslatedPercent < p.MinTranslatedPercent {
		return ui.StatusSkippedIncomplete
	}
	return ui.StatusDownloaded
}
