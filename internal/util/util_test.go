// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// STRING TESTS
// =============================================================================

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than limit", "halo", 10, "halo"},
		{"exactly at limit", "halo", 4, "halo"},
		{"truncated with ellipsis", "halo dunia", 7, "halo..."},
		{"tiny limit", "halo", 2, "ha"},
		{"zero limit", "halo", 0, ""},
		{"multibyte safe", "héllo wörld", 8, "héllo..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateRunes(tc.input, tc.maxRunes); got != tc.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q",
					tc.input, tc.maxRunes, got, tc.want)
			}
		})
	}
}

func TestTruncateWidth_DoubleWidth(t *testing.T) {
	// CJK characters occupy two terminal cells each.
	s := "你好世界"
	got := TruncateWidth(s, 4)
	if StringWidth(got) > 4 {
		t.Errorf("TruncateWidth left width %d, want <= 4", StringWidth(got))
	}
}

func TestPadWidth(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 5, "ab   "},
		{"abcde", 5, "abcde"},
		{"abcdefgh", 5, "ab..."},
	}

	for _, tc := range tests {
		got := PadWidth(tc.input, tc.width)
		if got != tc.want {
			t.Errorf("PadWidth(%q, %d) = %q, want %q", tc.input, tc.width, got, tc.want)
		}
		if StringWidth(got) != tc.width {
			t.Errorf("PadWidth(%q, %d) has width %d", tc.input, tc.width, StringWidth(got))
		}
	}
}

func TestSanitizeControl(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "halo dunia", "halo dunia"},
		{"newline and tab survive", "a\nb\tc", "a\nb\tc"},
		{"escape sequence stripped", "merah\x1b[31mteks\x1b[0m", "merah[31mteks[0m"},
		{"bell and backspace stripped", "a\x07b\x08c", "abc"},
		{"delete stripped", "a\x7fb", "ab"},
		{"c1 controls stripped", "abc", "abc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeControl(tc.input); got != tc.want {
				t.Errorf("SanitizeControl(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeLine(t *testing.T) {
	got := SanitizeLine("baris satu\nbaris dua\tselesai")
	want := "baris satu baris dua selesai"
	if got != want {
		t.Errorf("SanitizeLine = %q, want %q", got, want)
	}
}

// =============================================================================
// CONVERSION TESTS
// =============================================================================

func TestFloatToStringPrec(t *testing.T) {
	tests := []struct {
		f    float64
		prec int
		want string
	}{
		{0.4126, 3, "0.413"},
		{60.199999999999996, 1, "60.2"},
		{0.01234, 4, "0.0123"},
		{-1.98765, 4, "-1.9877"},
	}

	for _, tc := range tests {
		if got := FloatToStringPrec(tc.f, tc.prec); got != tc.want {
			t.Errorf("FloatToStringPrec(%v, %d) = %q, want %q", tc.f, tc.prec, got, tc.want)
		}
	}
}

func TestFloatToStringCompact(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{87.3, "87.3"},
		{72, "72"},
		{0.5, "0.5"},
		{100, "100"},
	}

	for _, tc := range tests {
		if got := FloatToStringCompact(tc.f); got != tc.want {
			t.Errorf("FloatToStringCompact(%v) = %q, want %q", tc.f, got, tc.want)
		}
	}
}

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := AtomicWriteFile(path, []byte("pertama"), 0600); err != nil {
		t.Fatalf("AtomicWriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "pertama" {
		t.Errorf("content = %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("permissions = %v, want 0600", info.Mode().Perm())
	}

	// Overwrite replaces the content in one step.
	if err := AtomicWriteFile(path, []byte("kedua"), 0600); err != nil {
		t.Fatalf("AtomicWriteFile overwrite: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "kedua" {
		t.Errorf("content after overwrite = %q", data)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}
