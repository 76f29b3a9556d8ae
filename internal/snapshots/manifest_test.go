package snapshots

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadManifestReturnsDefaultOnDecodeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	m, err := readManifest(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if m.Version != 1 || len(m.Seasons.Years) != 0 {
		t.Fatalf("expected default manifest, got %+v", m)
	}
}

func TestWriteManifestFailsWhenPathMissing(t *testing.T) {
	if err := writeManifest(filepath.Join("does-not-exist", "missing"), defaultManifest()); err == nil {
		t.Fatal("expected error when base path missing")
	}
}

func TestWriteManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := defaultManifest()
	m.Seasons.Years = []int{2014, 2015}
	if err := writeManifest(dir, m); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	got, err := readManifest(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("failed to read manifest back: %v", err)
	}
	if len(got.Seasons.Years) != 2 || got.Seasons.Years[1] != 2015 {
		t.Fatalf("unexpected manifest: %+v", got)
	}
	if got.GeneratedAt.IsZero() {
		t.Fatal("expected generatedAt to be stamped")
	}
}
