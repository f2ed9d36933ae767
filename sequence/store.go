package sequence

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Statement types.
const (
	StatementInsertBefore uint8 = iota
	StatementInsertAfter
	StatementAppendAll
	StatementAdvance
	StatementStart
	StatementRemoveCurrent
	StatementReserve
	StatementTrimToFit
	statementUnknown
)

// A Statement represents an operation to perform on a sequence of a store.
// Value is used by insertions, Capacity by StatementReserve and Source, the
// key of another sequence of the store, by StatementAppendAll.
type Statement struct {
	Key                string
	Type               uint8
	Value              string
	Capacity           int
	Source             string
	CreateIfNotExists  bool
	CreateWithCapacity int
}

// A Store represents a collection of Sequences. A Store can be used simultaneously
// from multiple goroutines.
type Store struct {
	m  map[string]*Sequence
	mu sync.RWMutex
}

// NewStore creates and intializes a new Store.
func NewStore() *Store {
	return &Store{m: make(map[string]*Sequence)}
}

// New creates and adds a new empty Sequence with capacity n to the store using
// key as its identifier. If a Sequence already exists for the identifier it is
// silently replaced. It returns an error if n is negative.
func (s *Store) New(key string, n int) error {
	x, err := NewSequenceWithCapacity(n)
	if err != nil {
		return errors.Wrapf(err, "sequence %q", key)
	}
	s.mu.Lock()
	s.m[key] = x
	s.mu.Unlock()
	return nil
}

// Add adds a copy of x to the store using key as its identifier.
// If a Sequence already exists for the identifier it is silently replaced with the new
// Sequence.
func (s *Store) Add(key string, x *Sequence) {
	s.mu.Lock()
	s.m[key] = x.clone()
	s.mu.Unlock()
}

// Get returns a copy of the Sequence associated to key. The second return value is
// true if the key exists in the store and false if not.
func (s *Store) Get(key string) (*Sequence, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	x, ok := s.m[key]
	if !ok {
		return nil, false
	}
	return x.clone(), true
}

// Delete removes the Sequence associated to key, if any.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

// Clone stores a copy of the Sequence associated to src under dst.
func (s *Store) Clone(dst, src string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	x, ok := s.m[src]
	if !ok {
		return errors.Wrapf(ErrKeyNotFound, "sequence %q", src)
	}
	s.m[dst] = x.Clone()
	return nil
}

// Concatenate stores under dst the concatenation of the sequences associated
// to a and b.
func (s *Store) Concatenate(dst, a, b string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	x, ok := s.m[a]
	if !ok {
		return errors.Wrapf(ErrKeyNotFound, "sequence %q", a)
	}
	y, ok := s.m[b]
	if !ok {
		return errors.Wrapf(ErrKeyNotFound, "sequence %q", b)
	}
	s.m[dst] = Concatenate(x, y)
	return nil
}

// Execute executes a statement against the store, returning an error if the
// statement cannot be executed or if the underlying operation returned an error.
func (s *Store) Execute(statement Statement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executeUnsafe(statement)
}

// Batch executes multiple statements against the store. Individual errors are non
// blocking but if one or more statements could not be executed or induced an error
// the method will return a global error and a slice holding information about each
// individual error.
func (s *Store) Batch(statements []Statement) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var report []string
	for i, v := range statements {
		if err := s.executeUnsafe(v); err != nil {
			report = append(report, fmt.Sprintf("%s, at index %d", err, i))
		}
	}
	if len(report) > 0 {
		return report, errors.Errorf("%d of %d operations could not be completed", len(report), len(statements))
	}
	return report, nil
}

// Keys returns the identifiers known in the store in lexical order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// executeUnsafe executes a statement against the store, returning an error if the
// statement cannot be executed or if the underlying operation returned an error.
// This method is not goroutine-safe. The caller is responsible for properly
// acquiring / releasing the lock on the store.
func (s *Store) executeUnsafe(statement Statement) error {
	if statement.Type >= statementUnknown {
		return errors.Wrapf(ErrUnknownStatement, "type %d", statement.Type)
	}
	var source *Sequence
	if statement.Type == StatementAppendAll {
		y, ok := s.m[statement.Source]
		if !ok {
			return errors.Wrapf(ErrKeyNotFound, "sequence %q", statement.Source)
		}
		source = y
	}
	x, ok := s.m[statement.Key]
	if !ok {
		if !statement.CreateIfNotExists {
			return errors.Wrapf(ErrKeyNotFound, "sequence %q", statement.Key)
		}
		var err error
		x, err = NewSequenceWithCapacity(statement.CreateWithCapacity)
		if err != nil {
			return errors.Wrapf(err, "sequence %q", statement.Key)
		}
		s.m[statement.Key] = x
	}
	switch statement.Type {
	case StatementInsertBefore:
		x.InsertBefore(statement.Value)
	case StatementInsertAfter:
		x.InsertAfter(statement.Value)
	case StatementAppendAll:
		x.AppendAll(source)
	case StatementAdvance:
		if err := x.Advance(); err != nil {
			return errors.Wrapf(err, "sequence %q", statement.Key)
		}
	case StatementStart:
		x.Start()
	case StatementRemoveCurrent:
		x.RemoveCurrent()
	case StatementReserve:
		x.Reserve(statement.Capacity)
	case StatementTrimToFit:
		x.TrimToFit()
	}
	return nil
}
