package util

import (
	"bytes"
	"testing"
)

func TestMustParseUint(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected uint
	}{
		{"plain number", "42", 42},
		{"zero", "0", 0},
		{"empty string", "", 0},
		{"garbage", "abc", 0},
		{"negative", "-5", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MustParseUint(tc.input); got != tc.expected {
				t.Errorf("MustParseUint(%q) = %d, want %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestValidateMimeType(t *testing.T) {
	// PNG 魔数
	pngHeader := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	t.Run("image accepted by image prefix", func(t *testing.T) {
		mimeType, err := ValidateMimeType(bytes.NewReader(pngHeader), []string{MimeImage})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mimeType != "image/png" {
			t.Errorf("expected image/png, got %q", mimeType)
		}
	})

	t.Run("image rejected by video prefix", func(t *testing.T) {
		_, err := ValidateMimeType(bytes.NewReader(pngHeader), []string{MimeVideo})
		if err == nil {
			t.Fatal("expected error for mismatched mime type")
		}
	})

	t.Run("empty reader detects text", func(t *testing.T) {
		_, err := ValidateMimeType(bytes.NewReader(nil), []string{MimeImage})
		if err == nil {
			t.Fatal("expected error for empty content")
		}
	})
}

func TestIsImageIsVideo(t *testing.T) {
	if !IsImage("image/jpeg") {
		t.Error("image/jpeg should be an image")
	}
	if IsImage("video/mp4") {
		t.Error("video/mp4 is not an image")
	}
	if !IsVideo("video/mp4") {
		t.Error("video/mp4 should be a video")
	}
	if !IsVideo("application/x-mpegURL") {
		t.Error("HLS playlist should count as video")
	}
	if IsVideo("image/png") {
		t.Error("image/png is not a video")
	}
}
