package gemini

import (
	"errors"
	"io"
	"iter"
)

// Stream is a finite, non-restartable sequence of text fragments.
//
// Next returns the next fragment, io.EOF once the stream is exhausted, or the
// error that broke it. After an error Next keeps returning that error.
// Close releases the underlying request and may be called at any time.
type Stream interface {
	Next() (string, error)
	Close() error
}

type seqStream struct {
	next func() (string, error, bool)
	stop func()
	err  error

	head    string
	hasHead bool
}

// FromSeq turns a push sequence of fragments into a Stream. Nothing is pulled
// from seq until the first call to Next.
func FromSeq(seq iter.Seq2[string, error]) Stream {
	next, stop := iter.Pull2(seq)
	return &seqStream{next: next, stop: stop}
}

// Begin is FromSeq that pulls the first item right away. An error in that
// item is returned instead of a Stream, so a rejected request fails before
// anyone acts on the stream. The first fragment is held for the first Next.
func Begin(seq iter.Seq2[string, error]) (Stream, error) {
	s := FromSeq(seq).(*seqStream)
	text, err := s.Next()
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, err
	default:
		s.head, s.hasHead = text, true
	}
	return s, nil
}

func (s *seqStream) Next() (string, error) {
	if s.hasHead {
		s.hasHead = false
		return s.head, nil
	}
	if s.err != nil {
		return "", s.err
	}
	text, err, ok := s.next()
	if !ok {
		s.err = io.EOF
		return "", io.EOF
	}
	if err != nil {
		s.err = err
		s.stop()
		return "", err
	}
	return text, nil
}

func (s *seqStream) Close() error {
	s.stop()
	return nil
}
