package domain

import (
	"errors"
	"testing"
)

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"track.mp3", true},
		{"clip.mp4", true},
		{"TRACK.MP3", true},
		{"archive.tar.mp3", true},
		{"evil.exe", false},
		{"noext", false},
		{"mp3", false},
		{"song.mp3.exe", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := AllowedExtension(tt.name); got != tt.want {
			t.Errorf("AllowedExtension(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"track.mp3", "track.mp3"},
		{"Track Name.mp3", "Track_Name.mp3"},
		{"../../etc/passwd.mp3", "passwd.mp3"},
		{`C:\Users\x\song.mp3`, "song.mp3"},
		{"UPPER.MP3", "UPPER.mp3"},
		// имя целиком из недопустимых символов не должно терять расширение
		{"моя песня.mp3", "file.mp3"},
		{"...mp3", "file.mp3"},
		{"a..b.mp3", "a..b.mp3"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMimeForFilename(t *testing.T) {
	if got := MimeForFilename("a.mp4"); got != "video/mp4" {
		t.Errorf("mp4: %q", got)
	}
	if got := MimeForFilename("a.MP4"); got != "video/mp4" {
		t.Errorf("MP4: %q", got)
	}
	if got := MimeForFilename("a.mp3"); got != "audio/mpeg" {
		t.Errorf("mp3: %q", got)
	}
}

func TestValidateUpload(t *testing.T) {
	content := []byte{1, 2, 3}

	if err := ValidateUpload("track.mp3", content); err != nil {
		t.Fatalf("valid upload rejected: %v", err)
	}
	for _, tt := range []struct {
		name     string
		filename string
		content  []byte
	}{
		{"empty content", "track.mp3", nil},
		{"empty filename", "", content},
		{"bad extension", "track.wav", content},
		{"no extension", "track", content},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.filename, tt.content)
			if !errors.Is(err, ErrBadParams) {
				t.Fatalf("expected ErrBadParams, got %v", err)
			}
		})
	}
}
