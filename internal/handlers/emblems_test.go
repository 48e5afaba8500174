package handlers

import (
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
)

func TestStateEmblemLookup(t *testing.T) {
	cfg := defaultTestBuilderConfig(t)
	t.Cleanup(withTestBuilderConfig(t, cfg))

	emblemDir := filepath.Join(cfg.AssetRoot, "emblems", "states")
	if err := os.MkdirAll(emblemDir, 0o755); err != nil {
		t.Fatalf("failed to create emblem dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(emblemDir, "TX.svg"), []byte("<svg/>"), 0o644); err != nil {
		t.Fatalf("failed to write emblem: %v", err)
	}

	form := url.Values{}
	form.Set("state", "tx")
	rr := httptest.NewRecorder()
	StateEmblem(rr, postForm(t, "/api/emblems/state", form))

	data := successData(t, decodeEnvelope(t, rr))
	if data["state_name"] != "Texas" {
		t.Fatalf("expected Texas, got %v", data["state_name"])
	}
	if data["emblem_exists"] != true {
		t.Fatalf("expected emblem to exist, got %v", data["emblem_exists"])
	}
}

func TestStateEmblemUnknownState(t *testing.T) {
	t.Cleanup(withTestBuilderConfig(t, defaultTestBuilderConfig(t)))

	form := url.Values{}
	form.Set("state", "ZZ")
	rr := httptest.NewRecorder()
	StateEmblem(rr, postForm(t, "/api/emblems/state", form))

	if message := failureMessage(t, decodeEnvelope(t, rr)); message != "Unknown state." {
		t.Fatalf("unexpected message %q", message)
	}
}

func TestStateEmblemMissingAssetStillResolves(t *testing.T) {
	cfg := defaultTestBuilderConfig(t)
	t.Cleanup(withTestBuilderConfig(t, cfg))

	form := url.Values{}
	form.Set("state", "OR")
	rr := httptest.NewRecorder()
	StateEmblem(rr, postForm(t, "/api/emblems/state", form))

	data := successData(t, decodeEnvelope(t, rr))
	if data["emblem_exists"] != false {
		t.Fatalf("expected missing emblem flag, got %v", data["emblem_exists"])
	}
	if data["emblem_url"] == "" {
		t.Fatal("expected a candidate emblem url even when the asset is absent")
	}
}
