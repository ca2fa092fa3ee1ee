package releases

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func tagServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestList_FetchesAndSorts(t *testing.T) {
	srv := tagServer(t, `[
		{"name": "v3.5.1"},
		{"name": "v4.2.0"},
		{"name": "v3.6.2"},
		{"name": "not-a-version"}
	]`, http.StatusOK)
	defer srv.Close()

	c := NewClient("blender/blender", t.TempDir(), WithAPIBase(srv.URL))

	got, err := c.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	want := []string{"4.2.0", "3.6.2", "3.5.1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestList_ServesFreshCache(t *testing.T) {
	cacheDir := t.TempDir()
	if err := SaveCache(cacheDir, &TagCache{
		Versions:  []string{"3.5.1"},
		CheckedAt: time.Now(),
	}); err != nil {
		t.Fatalf("SaveCache error: %v", err)
	}

	// The server would fail the test if hit.
	srv := tagServer(t, `[]`, http.StatusInternalServerError)
	defer srv.Close()

	c := NewClient("blender/blender", cacheDir, WithAPIBase(srv.URL))

	got, err := c.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 1 || got[0] != "3.5.1" {
		t.Errorf("List() = %v, want cached [3.5.1]", got)
	}
}

func TestList_StaleCacheOnFetchFailure(t *testing.T) {
	cacheDir := t.TempDir()
	if err := SaveCache(cacheDir, &TagCache{
		Versions:  []string{"3.4.0"},
		CheckedAt: time.Now().Add(-48 * time.Hour),
	}); err != nil {
		t.Fatalf("SaveCache error: %v", err)
	}

	srv := tagServer(t, `boom`, http.StatusInternalServerError)
	defer srv.Close()

	c := NewClient("blender/blender", cacheDir, WithAPIBase(srv.URL))

	got, err := c.List()
	if err != nil {
		t.Fatalf("List() should fall back to stale cache, got error: %v", err)
	}
	if len(got) != 1 || got[0] != "3.4.0" {
		t.Errorf("List() = %v, want stale [3.4.0]", got)
	}
}

func TestList_ErrorWithoutCache(t *testing.T) {
	srv := tagServer(t, `boom`, http.StatusInternalServerError)
	defer srv.Close()

	c := NewClient("blender/blender", t.TempDir(), WithAPIBase(srv.URL))

	if _, err := c.List(); err == nil {
		t.Fatal("expected error when fetch fails and no cache exists, got nil")
	}
}

func TestLoadCache_Missing(t *testing.T) {
	cache, err := LoadCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache != nil {
		t.Error("expected nil cache for missing file")
	}
}

func TestSaveAndLoadCache(t *testing.T) {
	dir := t.TempDir()

	checked := time.Now().Truncate(time.Second)
	original := &TagCache{
		Versions:  []string{"4.2.0", "3.6.2"},
		CheckedAt: checked,
	}

	if err := SaveCache(dir, original); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	loaded, err := LoadCache(dir)
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}

	if !reflect.DeepEqual(loaded.Versions, original.Versions) {
		t.Errorf("Versions = %v, want %v", loaded.Versions, original.Versions)
	}
}

func TestIsCacheStale(t *testing.T) {
	if !IsCacheStale(nil, DefaultCacheMaxAge) {
		t.Error("nil cache should be stale")
	}
	fresh := &TagCache{CheckedAt: time.Now()}
	if IsCacheStale(fresh, DefaultCacheMaxAge) {
		t.Error("fresh cache should not be stale")
	}
	old := &TagCache{CheckedAt: time.Now().Add(-25 * time.Hour)}
	if !IsCacheStale(old, DefaultCacheMaxAge) {
		t.Error("25h old cache should be stale")
	}
}
