package segment_test

import (
	"strings"
	"testing"

	"reviewlens/internal/adapters/segment"
)

func TestSegment(t *testing.T) {
	seg, err := segment.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if out := seg.Segment(""); out != nil {
		t.Fatalf("empty input must segment to nothing, got %v", out)
	}

	// Mixed CJK/Latin: CJK carries no spaces, so any useful output must
	// contain more than one CJK term.
	out := seg.Segment("电池续航很好 battery life")
	if len(out) < 3 {
		t.Fatalf("expected several terms, got %v", out)
	}
	joined := strings.Join(out, "|")
	if !strings.Contains(joined, "battery") {
		t.Fatalf("latin term lost: %v", out)
	}
	if !strings.Contains(joined, "电池") {
		t.Fatalf("expected dictionary cut to isolate 电池: %v", out)
	}
}
