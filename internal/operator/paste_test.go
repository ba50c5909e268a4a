package operator

import (
	"testing"

	"github.com/dshills/vikey/internal/buffer"
)

func TestPasteAfterCharwise(t *testing.T) {
	b := buffer.NewMemoryBuffer("abc")
	if ok := PasteAfter(b, 0, "XY"); !ok {
		t.Fatalf("PasteAfter should succeed")
	}
	if got := b.Text(); got != "aXYbc" {
		t.Fatalf("text = %q, want %q", got, "aXYbc")
	}
	if got := b.Selection(); got.Start != 2 {
		t.Fatalf("cursor = %d, want 2 (last inserted unit)", got.Start)
	}
}

func TestPasteAfterLinewise(t *testing.T) {
	b := buffer.NewMemoryBuffer("line1\nline2\n")
	if ok := PasteAfter(b, 0, "  new\n"); !ok {
		t.Fatalf("PasteAfter should succeed")
	}
	if got := b.Text(); got != "line1\n  new\nline2\n" {
		t.Fatalf("text = %q, want %q", got, "line1\n  new\nline2\n")
	}
	if got := b.Selection(); got.Start != 8 {
		t.Fatalf("cursor = %d, want 8 (first non-blank of pasted line)", got.Start)
	}
}

func TestPasteBeforeCharwise(t *testing.T) {
	b := buffer.NewMemoryBuffer("abc")
	if ok := PasteBefore(b, 1, "XY"); !ok {
		t.Fatalf("PasteBefore should succeed")
	}
	if got := b.Text(); got != "aXYbc" {
		t.Fatalf("text = %q, want %q", got, "aXYbc")
	}
}

func TestPasteBeforeLinewise(t *testing.T) {
	b := buffer.NewMemoryBuffer("line1\nline2\n")
	if ok := PasteBefore(b, 7, "new\n"); !ok {
		t.Fatalf("PasteBefore should succeed")
	}
	if got := b.Text(); got != "line1\nnew\nline2\n" {
		t.Fatalf("text = %q, want %q", got, "line1\nnew\nline2\n")
	}
}

func TestPasteEmptyClipboardIsNoOp(t *testing.T) {
	b := buffer.NewMemoryBuffer("abc")
	if ok := PasteAfter(b, 0, ""); ok {
		t.Fatalf("PasteAfter with empty clipboard should be a no-op")
	}
}

func TestPasteRejectedByHost(t *testing.T) {
	b := buffer.NewMemoryBuffer("abc")
	b.RejectEdits = true
	if ok := PasteAfter(b, 0, "X"); ok {
		t.Fatalf("PasteAfter should fail when host rejects the edit")
	}
	if got := b.Text(); got != "abc" {
		t.Fatalf("text mutated despite rejection: %q", got)
	}
}

func TestYankThenPasteRoundTrip(t *testing.T) {
	b := buffer.NewMemoryBuffer("line1\nline2\n")
	res := Apply(b, Yank, buffer.Range{Start: 0, End: 6}, true)
	if !res.Applied {
		t.Fatalf("yank failed")
	}
	clip, _ := b.ReadClipboard()
	if clip != "line1\n" {
		t.Fatalf("clipboard = %q, want %q", clip, "line1\n")
	}
	if ok := PasteAfter(b, 0, clip); !ok {
		t.Fatalf("paste failed")
	}
	if got := b.Text(); got != "line1\nline1\nline2\n" {
		t.Fatalf("text = %q, want %q", got, "line1\nline1\nline2\n")
	}
}
