package weblate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "weblatedl/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioManifest = `{"count":3,"next":null,"results":[` +
	`{"language_code":"en","translated_percent":100,"filename":"en.po"},` +
	`{"language_code":"fr","translated_percent":95,"filename":"fr.po","language":{"code":"fr","name":"French"}},` +
	`{"language_code":"de","translated_percent":50,"filename":"de.po"}]}`

func TestURLs(t *testing.T) {
	c := NewClient("https://hosted.weblate.org/", "tor", "rdsys")

	assert.Equal(t, "https://hosted.weblate.org/api/components/tor/rdsys/translations/", c.ManifestURL())
	assert.Equal(t, "https://hosted.weblate.org/download/tor/rdsys/fr/", c.DownloadURL("fr"))
	assert.Equal(t, "https://hosted.weblate.org/download/tor/rdsys/zh_Hant/", c.DownloadURL("zh_Hant"))
}

func TestFetchManifest(t *testing.T) {
	var gotPath, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scenarioManifest))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tor", "rdsys", WithUserAgent("weblatedl-test"))
	m, err := c.FetchManifest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/components/tor/rdsys/translations/", gotPath)
	assert.Equal(t, "weblatedl-test", gotAgent)
	assert.False(t, m.Paginated())
	require.Len(t, m.Results, 3)
	assert.Equal(t, "en", m.Results[0].LanguageCode)
	assert.Equal(t, 95.0, m.Results[1].TranslatedPercent)
	assert.Equal(t, "fr.po", m.Results[1].Filename)
	assert.Equal(t, "French", m.Results[1].LanguageName())
	assert.Equal(t, "", m.Results[2].LanguageName())
}

func TestFetchManifestIgnoresContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(`{"results":[{"language_code":"fr","translated_percent":91.5,"filename":"fr.po"}],"next":"https://example/?page=2"}`))
	}))
	defer srv.Close()

	m, err := NewClient(srv.URL, "tor", "rdsys").FetchManifest(context.Background())
	require.NoError(t, err)
	require.Len(t, m.Results, 1)
	assert.Equal(t, 91.5, m.Results[0].TranslatedPercent)
	assert.True(t, m.Paginated())
}

func TestFetchManifestMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "tor", "rdsys").FetchManifest(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.HasCategory(err, apperrors.ErrCategoryDecode))
}

func TestFetchManifestMissingResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"detail":"Not found."}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "tor", "rdsys").FetchManifest(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.HasCategory(err, apperrors.ErrCategoryDecode))
}

func TestFetchManifestNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Not found."}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "tor", "missing").FetchManifest(context.Background())
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeManifestStatus, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.Metadata["status"])
}

func TestFetchManifestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "tor", "rdsys").FetchManifest(context.Background())
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeManifestRequest, appErr.Code)
	assert.Equal(t, apperrors.ErrCategoryNetwork, appErr.Category)
}
