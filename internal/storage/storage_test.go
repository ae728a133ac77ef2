package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
)

func openTemp(t *testing.T) (*Storage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "db")
	s, err := Open(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s, dir
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	if prefs.Flipped {
		t.Error("Expected unflipped board by default")
	}
	if !prefs.ShowCoordinates {
		t.Error("Expected coordinates shown by default")
	}
	if prefs.GlyphFont != "" {
		t.Errorf("Expected no glyph font override, got %q", prefs.GlyphFont)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	s, dir := openTemp(t)

	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences on empty store: %v", err)
	}
	if diff := cmp.Diff(DefaultPreferences(), prefs, cmpopts.IgnoreFields(Preferences{}, "LastOpened")); diff != "" {
		t.Errorf("empty store should yield defaults (-want +got):\n%s", diff)
	}

	prefs.Flipped = true
	prefs.ShowCoordinates = false
	prefs.GlyphFont = "/usr/share/fonts/DejaVuSans.ttf"
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopen to make sure the values hit disk.
	s2, err := Open(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, err := s2.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if diff := cmp.Diff(prefs, got, cmpopts.IgnoreFields(Preferences{}, "LastOpened")); diff != "" {
		t.Errorf("preferences mismatch (-want +got):\n%s", diff)
	}
}

func TestFirstLaunch(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	first, err := s.IsFirstLaunch()
	if err != nil {
		t.Fatal(err)
	}
	if !first {
		t.Error("Expected first launch on a fresh store")
	}

	if err := s.MarkFirstLaunchComplete(); err != nil {
		t.Fatal(err)
	}
	first, err = s.IsFirstLaunch()
	if err != nil {
		t.Fatal(err)
	}
	if first {
		t.Error("Expected first launch to be recorded")
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if filepath.Base(dbDir) != "db" {
		t.Errorf("GetDatabaseDir = %s, want a db directory", dbDir)
	}
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}
}
