package text

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTokenizeSplitsOnWhitespaceRuns(t *testing.T) {
	words, err := Tokenize("  Hello\tworld.\n\n  Foo  ")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	want := []string{"Hello", "world.", "Foo"}
	if len(words) != len(want) {
		t.Fatalf("expected %d words, got %d: %v", len(want), len(words), words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("word %d: expected %q, got %q", i, want[i], words[i])
		}
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	for _, in := range []string{"", " ", "\n\t  \r\n"} {
		words, err := Tokenize(in)
		if !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput for %q, got %v", in, err)
		}
		if len(words) != 0 {
			t.Fatalf("expected no words for %q, got %v", in, words)
		}
	}
}

func TestFocusIndexBands(t *testing.T) {
	cases := []struct {
		length int
		want   int
	}{
		{1, 0}, {2, 1}, {5, 1}, {6, 2}, {9, 2}, {10, 3}, {13, 3}, {14, 4}, {20, 4},
	}
	for _, tc := range cases {
		word := strings.Repeat("a", tc.length)
		if got := FocusIndex(word); got != tc.want {
			t.Fatalf("length %d: expected %d, got %d", tc.length, tc.want, got)
		}
	}
}

func TestFocusIndexCountsRunes(t *testing.T) {
	// Five runes, ten bytes.
	if got := FocusIndex("привет"[:10]); got != 1 {
		t.Fatalf("expected rune-based index 1, got %d", got)
	}
	if got := FocusIndex("naïveté"); got != 2 {
		t.Fatalf("expected index 2 for 7-rune word, got %d", got)
	}
}

func TestSplitFocus(t *testing.T) {
	before, focus, after := SplitFocus("reading")
	if before != "re" || focus != "a" || after != "ding" {
		t.Fatalf("unexpected split: %q %q %q", before, focus, after)
	}
	before, focus, after = SplitFocus("é")
	if before != "" || focus != "é" || after != "" {
		t.Fatalf("unexpected split for single rune: %q %q %q", before, focus, after)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	if err := os.WriteFile(path, []byte("one two\nthree\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	content, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	words, err := Tokenize(content)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(words) != 3 || words[2] != "three" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReadAcceptsVeryLongLine(t *testing.T) {
	input := strings.Repeat("word ", 1<<20)
	content, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(content) != len(input) {
		t.Fatalf("expected %d bytes, got %d", len(input), len(content))
	}
	words, err := Tokenize(content)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(words) != 1<<20 {
		t.Fatalf("expected %d words, got %d", 1<<20, len(words))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestReadWrapsError(t *testing.T) {
	_, err := Read(failingReader{})
	if err == nil || !strings.Contains(err.Error(), "failed to read input") {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}
