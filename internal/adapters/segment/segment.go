// Package segment implements the domain.Segmenter port with gse, a
// jieba-style dictionary segmenter. Latin runs split on whitespace as
// usual; CJK runs are cut on dictionary words, which is what makes the
// keyword pipeline work on review text that carries no spaces.
package segment

import (
	"fmt"

	"github.com/go-ego/gse"
)

type Segmenter struct {
	seg gse.Segmenter
}

// New loads the embedded Chinese dictionary. Loading is the expensive
// part, so one Segmenter is built at startup and shared; Segment is
// safe for concurrent use.
func New() (*Segmenter, error) {
	s := &Segmenter{}
	if err := s.seg.LoadDict(); err != nil {
		return nil, fmt.Errorf("load segmenter dict: %w", err)
	}
	return s, nil
}

func (s *Segmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	return s.seg.Cut(text, true)
}
