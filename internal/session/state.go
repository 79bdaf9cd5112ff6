// Package session holds the state a single front end keeps between user actions:
// the generator options, the current password and its latest strength result.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

var (
	ErrNoPassword       = errors.New("generate a password first to analyze its strength")
	ErrAnalysisInFlight = errors.New("an analysis is already in progress")
	ErrNoAnalyzer       = errors.New("strength analysis is not configured")
)

// StrengthAnalyzer scores a password.
type StrengthAnalyzer interface {
	Analyze(ctx context.Context, password string) (model.StrengthResult, error)
}

// State is owned by one front end. It is safe for concurrent use so that an analysis
// can run while the caller keeps handling input.
type State struct {
	mu        sync.Mutex
	opts      crypto.GeneratorOptions
	password  string
	result    *model.StrengthResult
	analyzing bool
	analyzer  StrengthAnalyzer
}

// New returns a State with the default options and no password. analyzer may be nil,
// in which case Analyze fails with ErrNoAnalyzer.
func New(analyzer StrengthAnalyzer) *State {
	return &State{opts: crypto.DefaultOptions(), analyzer: analyzer}
}

func (s *State) Options() crypto.GeneratorOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

func (s *State) SetLength(n int) {
	s.mu.Lock()
	s.opts.Length = n
	s.mu.Unlock()
}

func (s *State) SetUppercase(on bool) {
	s.mu.Lock()
	s.opts.Uppercase = on
	s.mu.Unlock()
}

func (s *State) SetLowercase(on bool) {
	s.mu.Lock()
	s.opts.Lowercase = on
	s.mu.Unlock()
}

func (s *State) SetNumbers(on bool) {
	s.mu.Lock()
	s.opts.Numbers = on
	s.mu.Unlock()
}

func (s *State) SetSymbols(on bool) {
	s.mu.Lock()
	s.opts.Symbols = on
	s.mu.Unlock()
}

// Password returns the current password, empty if none.
func (s *State) Password() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.password
}

// Result returns the strength result for the current password, if any.
func (s *State) Result() (model.StrengthResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return model.StrengthResult{}, false
	}
	return *s.result, true
}

// Analyzing reports whether an analysis request is outstanding.
func (s *State) Analyzing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyzing
}

// Regenerate replaces the password using the current options and drops any strength
// result. On a validation error both the password and the result are cleared.
func (s *State) Regenerate() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = nil
	password, err := crypto.Generate(s.opts)
	if err != nil {
		s.password = ""
		return "", err
	}
	s.password = password
	return password, nil
}

// Analyze scores the current password. Only one analysis may be outstanding at a time.
// A failure keeps the password and leaves the result cleared.
func (s *State) Analyze(ctx context.Context) (model.StrengthResult, error) {
	s.mu.Lock()
	switch {
	case s.password == "":
		s.mu.Unlock()
		return model.StrengthResult{}, ErrNoPassword
	case s.analyzing:
		s.mu.Unlock()
		return model.StrengthResult{}, ErrAnalysisInFlight
	case s.analyzer == nil:
		s.mu.Unlock()
		return model.StrengthResult{}, ErrNoAnalyzer
	}
	s.analyzing = true
	s.result = nil
	password := s.password
	s.mu.Unlock()

	result, err := s.analyzer.Analyze(ctx, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyzing = false
	if err != nil {
		return model.StrengthResult{}, err
	}
	// The password may have been regenerated while the request was outstanding.
	if s.password != password {
		return result, nil
	}
	s.result = &result
	return result, nil
}
