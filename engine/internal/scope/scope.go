package scope

import (
	"iter"
	"maps"
)

type Scope struct {
	keys map[string]int32
	// count entries are never removed, a value may sit at zero
	counts map[int32]int
}

func New() *Scope {
	return &Scope{
		keys:   make(map[string]int32),
		counts: make(map[int32]int),
	}
}

func (s *Scope) Set(key string, value int32) {
	if old, ok := s.keys[key]; ok {
		if _, ok := s.counts[old]; ok {
			s.counts[old]--
		}
	}
	s.keys[key] = value
	s.counts[value]++
}

func (s *Scope) Unset(key string) {
	old, ok := s.keys[key]
	if !ok {
		return
	}
	delete(s.keys, key)
	if _, ok := s.counts[old]; ok {
		s.counts[old]--
	}
}

func (s *Scope) Get(key string) (int32, bool) {
	value, ok := s.keys[key]
	return value, ok
}

func (s *Scope) Count(value int32) int {
	return s.counts[value]
}

func (s *Scope) Len() int {
	return len(s.keys)
}

func (s *Scope) All() iter.Seq2[string, int32] {
	return maps.All(s.keys)
}

func (s *Scope) Clone() *Scope {
	return &Scope{
		keys:   maps.Clone(s.keys),
		counts: maps.Clone(s.counts),
	}
}
