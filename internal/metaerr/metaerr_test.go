package metaerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWithMetadata(t *testing.T) {
	if err := WithMetadata(nil, "key", "value"); err != nil {
		t.Errorf("WithMetadata(nil) = %v, want nil", err)
	}

	base := errors.New("boom")
	err := WithMetadata(base, "url", "https://example.com")
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
	if !errors.Is(err, base) {
		t.Error("annotated error does not unwrap to the base error")
	}
}

func TestGetMetadata(t *testing.T) {
	inner := WithMetadata(errors.New("boom"), "name", "fldctl")
	outer := WithMetadata(fmt.Errorf("install: %w", inner), "url", "https://example.com")

	got := GetMetadata(outer)
	want := []any{"url", "https://example.com", "name", "fldctl"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("GetMetadata() mismatch (-want/+got): %v", d)
	}

	if got := GetMetadata(errors.New("plain")); got != nil {
		t.Errorf("GetMetadata(plain) = %v, want nil", got)
	}
}
