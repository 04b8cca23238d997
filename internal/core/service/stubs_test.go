package service

import (
	"context"
	"errors"
)

// ---------------------------------------------------------------------------
// In-memory stub key-value store
// ---------------------------------------------------------------------------

type stubKV struct {
	data      map[string]string
	getErr    error
	setErr    error
	removeErr error
	sets      int
}

func newStubKV() *stubKV {
	return &stubKV{data: make(map[string]string)}
}

func (s *stubKV) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *stubKV) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.sets++
	s.data[key] = value
	return nil
}

func (s *stubKV) Remove(_ context.Context, key string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	delete(s.data, key)
	return nil
}

var errDiskFull = errors.New("disk full")
