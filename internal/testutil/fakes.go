package testutil

import (
	"context"
	"sync"

	"github.com/vk/maichartgen/internal/apperr"
	"github.com/vk/maichartgen/internal/chart"
	"github.com/vk/maichartgen/internal/gemini"
	"github.com/vk/maichartgen/internal/prompt"
)

// Cancel, used as a scripted answer, makes the prompter report cancellation.
const Cancel = "\x00cancel"

// ScriptedPrompter answers questions from a fixed list. Rejected answers are
// recorded and the next answer is tried, as an operator would retype. Running
// out of answers counts as cancellation.
type ScriptedPrompter struct {
	Answers    []string
	Asked      []string
	Rejections []string
}

// Ask implements prompt.Prompter.
func (p *ScriptedPrompter) Ask(_ context.Context, f prompt.Field) (string, error) {
	p.Asked = append(p.Asked, f.Message)
	for len(p.Answers) > 0 {
		answer := p.Answers[0]
		p.Answers = p.Answers[1:]
		if answer == Cancel {
			return "", apperr.ErrCancelled
		}

		value := f.Resolve(answer)
		if err := f.Check(value); err != nil {
			p.Rejections = append(p.Rejections, err.Error())
			continue
		}
		return value, nil
	}
	return "", apperr.ErrCancelled
}

// FakeService is an in-memory gemini.Service.
type FakeService struct {
	ProbeErr error
	StartErr error
	// Fragments are streamed in order; StreamErr, if set, follows them. With
	// no fragments StreamErr fails GenerateStream itself, like a rejected request.
	Fragments []string
	StreamErr error

	mu          sync.Mutex
	ProbeCalls  int
	StreamCalls int
	Requests    []*chart.Request
}

// Probe implements gemini.Prober.
func (s *FakeService) Probe(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ProbeCalls++
	return s.ProbeErr
}

// GenerateStream implements gemini.Service.
func (s *FakeService) GenerateStream(_ context.Context, req *chart.Request) (gemini.Stream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.StreamCalls++
	s.Requests = append(s.Requests, req)
	if s.StartErr != nil {
		return nil, s.StartErr
	}

	fragments := append([]string(nil), s.Fragments...)
	streamErr := s.StreamErr
	return gemini.Begin(func(yield func(string, error) bool) {
		for _, f := range fragments {
			if !yield(f, nil) {
				return
			}
		}
		if streamErr != nil {
			yield("", streamErr)
		}
	})
}

// Dialer returns a gemini.Dialer handing out s and recording the API keys.
func (s *FakeService) Dialer(keys *[]string) gemini.Dialer {
	return func(_ context.Context, apiKey string) (gemini.Service, error) {
		if keys != nil {
			*keys = append(*keys, apiKey)
		}
		return s, nil
	}
}

// RecordingProgress records every call made to a progress sink.
type RecordingProgress struct {
	Started int
	Stopped int
	// Totals holds the cumulative count after each Add.
	Totals []int
	total  int
}

func (p *RecordingProgress) Start() { p.Started++ }

func (p *RecordingProgress) Add(n int) {
	p.total += n
	p.Totals = append(p.Totals, p.total)
}

func (p *RecordingProgress) Stop() { p.Stopped++ }

// Total returns the final cumulative count.
func (p *RecordingProgress) Total() int { return p.total }
