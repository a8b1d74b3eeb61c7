package stateful_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/stateful"
	"github.com/gogpu/stateful/trace"
)

func TestRegistryTraceSurface(t *testing.T) {
	if !slices.Contains(stateful.Surfaces(), "trace") {
		t.Fatalf("Surfaces() = %v, want trace registered", stateful.Surfaces())
	}
	s, err := stateful.NewSurface("trace", 10, 10)
	if err != nil {
		t.Fatalf("NewSurface(trace) = %v", err)
	}
	if _, ok := s.(*trace.Surface); !ok {
		t.Errorf("NewSurface(trace) returned %T", s)
	}
}

func TestRegistryUnknown(t *testing.T) {
	_, err := stateful.NewSurface("nonexistent", 10, 10)
	if err == nil || !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("NewSurface(nonexistent) error = %v, want forgotten import hint", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustSurface(nonexistent) did not panic")
		}
	}()
	stateful.MustSurface("nonexistent", 10, 10)
}

func TestRegistryFactoryError(t *testing.T) {
	errBoom := errors.New("boom")
	stateful.RegisterSurface("failing", func(int, int) (stateful.Surface, error) { return nil, errBoom })
	t.Cleanup(func() { stateful.UnregisterSurface("failing") })

	if _, err := stateful.NewSurface("failing", 1, 1); !errors.Is(err, errBoom) {
		t.Errorf("NewSurface error = %v, want wrapped boom", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name    string
		factory stateful.SurfaceFactory
	}{
		{"trace", func(w, h int) (stateful.Surface, error) { return trace.New(w, h), nil }},
		{"nil-factory", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("RegisterSurface did not panic")
				}
			}()
			stateful.RegisterSurface(tt.name, tt.factory)
		})
	}
}

func TestSurfacesSorted(t *testing.T) {
	stateful.RegisterSurface("zz-test", func(w, h int) (stateful.Surface, error) { return trace.New(w, h), nil })
	stateful.RegisterSurface("aa-test", func(w, h int) (stateful.Surface, error) { return trace.New(w, h), nil })
	t.Cleanup(func() {
		stateful.UnregisterSurface("zz-test")
		stateful.UnregisterSurface("aa-test")
	})
	if names := stateful.Surfaces(); !slices.IsSorted(names) {
		t.Errorf("Surfaces() = %v, want sorted", names)
	}
}
