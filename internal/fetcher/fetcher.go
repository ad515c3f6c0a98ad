package fetcher

import (
	"context"
	"path/filepath"

	"weblatedl/internal/downloader"
	apperrors "weblatedl/internal/errors"
	"weblatedl/internal/logger"
	"weblatedl/internal/ui"
	"weblatedl/internal/weblate"
)

const module = "fetcher"

// ManifestSource lists a component's translations and locates their files.
type ManifestSource interface {
	FetchManifest(ctx context.Context) (*weblate.Manifest, error)
	DownloadURL(languageCode string) string
}

// Downloader writes a single remote file to disk.
type Downloader interface {
	Download(ctx context.Context, target downloader.Target) error
}

// StatusPrinter renders the outcome for each manifest record.
type StatusPrinter interface {
	PrintLanguageStatus(code, name string, percent float64, status ui.LanguageStatus)
}

type noopPrinter struct{}

func (noopPrinter) PrintLanguageStatus(string, string, float64, ui.LanguageStatus) {}

// Fetcher mirrors the qualifying translations of one component into a directory.
type Fetcher struct {
	source     ManifestSource
	downloader Downloader
	printer    StatusPrinter
	logger     logger.Logger
	policy     Policy
}

// New constructs a Fetcher. A nil printer disables status lines.
func New(source ManifestSource, dl Downloader, printer StatusPrinter, log logger.Logger, policy Policy) *Fetcher {
	if printer == nil {
		printer = noopPrinter{}
	}
	return &Fetcher{
		source:     source,
		downloader: dl,
		printer:    printer,
		logger:     log,
		policy:     policy,
	}
}

// Run fetches the manifest once and downloads every qualifying translation in
// manifest order into outputDir ("" meaning the working directory). The first
// failure stops the run; files already written stay in place.
func (f *Fetcher) Run(ctx context.Context, outputDir string) error {
	manifest, err := f.source.FetchManifest(ctx)
	if err != nil {
		return err
	}

	f.logger.InfoContext(ctx, "Fetched translation manifest",
		logger.Int("records", len(manifest.Results)),
		logger.Float("min_translated_percent", f.policy.MinTranslatedPercent),
	)
	if manifest.Paginated() {
		f.logger.WarnContext(ctx, "Manifest is paginated, only the first page is processed",
			logger.Int("count", manifest.Count),
			logger.String("next", manifest.Next),
		)
	}

	for _, record := range manifest.Results {
		status := f.policy.classify(record)
		if status != ui.StatusDownloaded {
			f.logger.Debug("Skipping %s (%.1f%%): %s", record.LanguageCode, record.TranslatedPercent, status)
			f.printer.PrintLanguageStatus(record.LanguageCode, record.LanguageName(), record.TranslatedPercent, status)
			continue
		}

		if err := f.fetch(ctx, outputDir, record); err != nil {
			f.printer.PrintLanguageStatus(record.LanguageCode, record.LanguageName(), record.TranslatedPercent, ui.StatusFailed)
			return err
		}

		f.printer.PrintLanguageStatus(record.LanguageCode, record.LanguageName(), record.TranslatedPercent, status)
	}

	return nil
}

func (f *Fetcher) fetch(ctx context.Context, outputDir string, record weblate.TranslationRecord) error {
	if record.LanguageCode == "" {
		return apperrors.ValidationError(apperrors.CodeValidationGeneric, "manifest record has no language code", nil).
			WithModule(module).
			WithOperation("Run").
			WithField("filename", record.Filename)
	}
	if !filepath.IsLocal(record.Filename) {
		return apperrors.ValidationError(apperrors.CodeValidationGeneric, "manifest filename must be a relative path inside the output directory", nil).
			WithModule(module).
			WithOperation("Run").
			WithFields(apperrors.Metadata{
				"language": record.LanguageCode,
				"filename": record.Filename,
			})
	}

	target := downloader.Target{
		Name:      record.LanguageCode,
		URL:       f.source.DownloadURL(record.LanguageCode),
		LocalPath: filepath.Join(outputDir, record.Filename),
	}

	if err := f.downloader.Download(ctx, target); err != nil {
		if appErr, ok := apperrors.As(err); ok {
			return appErr.WithField("language", record.LanguageCode)
		}
		return apperrors.New(apperrors.ErrCategorySystem, apperrors.CodeSystemGeneric, "failed to download translation", err).
			WithModule(module).
			WithOperation("Run").
			WithField("language", record.LanguageCode)
	}

	return nil
}
