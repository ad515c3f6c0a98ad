package weblate

// Language is the nested language object Weblate attaches to each translation.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TranslationRecord is one entry of a component's translation listing.
type TranslationRecord struct {
	LanguageCode      string    `json:"language_code"`
	TranslatedPercent float64   `json:"translated_percent"`
	Filename          string    `json:"filename"`
	Language          *Language `json:"language,omitempty"`
}

// LanguageName returns the human readable name Weblate reported, if any.
func (r TranslationRecord) LanguageName() string {
	if r.Language == nil {
		return ""
	}
	return r.Language.Name
}

// Manifest is the first page of GET /api/components/{project}/{component}/translations/.
type Manifest struct {
	Count   int                 `json:"count"`
	Next    string              `json:"next"`
	Results []TranslationRecord `json:"results"`
}

// Paginated reports whether Weblate holds more records than this page carries.
func (m *Manifest) Paginated() bool {
	return m.Next != ""
}
