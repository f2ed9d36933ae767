package sequence

import "github.com/pkg/errors"

// DefaultCapacity is the capacity of a sequence created by NewSequence.
const DefaultCapacity = 10

// A Sequence represents an ordered list of strings with a cursor identifying
// the current element. Values occupy data[0:count] with no gaps, and slots
// past count are always empty strings. When there is no current element the
// cursor is equal to count.
type Sequence struct {
	data   []string
	count  int
	cursor int
}

// NewSequence creates and initializes an empty Sequence with a capacity of
// DefaultCapacity.
func NewSequence() *Sequence {
	return &Sequence{data: make([]string, DefaultCapacity)}
}

// NewSequenceWithCapacity creates and initializes an empty Sequence with a
// capacity of n, returning an error matching ErrInvalidArgument if n is
// negative.
func NewSequenceWithCapacity(n int) (*Sequence, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "initial capacity is negative: %d", n)
	}
	return &Sequence{data: make([]string, n)}, nil
}

// NewSequenceFromValues creates a new Sequence with a capacity of
// DefaultCapacity and inserts values one after the other. The buffer grows
// as it would for individual insertions and the last value, if any, is the
// current element.
func NewSequenceFromValues(values []string) *Sequence {
	s := NewSequence()
	for _, v := range values {
		s.InsertAfter(v)
	}
	return s
}

// InsertBefore adds value before the current element, or at the start of the
// sequence if there is no current element. The new value becomes the current
// element.
func (s *Sequence) InsertBefore(value string) {
	s.growIfFull()
	if !s.HasCurrent() {
		s.cursor = 0
	}
	s.insert(s.cursor, value)
}

// InsertAfter adds value after the current element, or at the end of the
// sequence if there is no current element. The new value becomes the current
// element.
func (s *Sequence) InsertAfter(value string) {
	s.growIfFull()
	if s.HasCurrent() {
		s.cursor++
	} else {
		s.cursor = s.count
	}
	s.insert(s.cursor, value)
}

// AppendAll adds a copy of the values of other after the last value of the
// sequence, growing the buffer if needed. The cursor index is left unchanged.
// A sequence may be appended to itself.
func (s *Sequence) AppendAll(other *Sequence) {
	n := other.count
	s.Reserve(s.count + n)
	copy(s.data[s.count:], other.data[:n])
	s.count += n
}

// Advance moves the cursor to the next element. Advancing from the last
// element leaves the sequence without a current element. It returns an error
// matching ErrInvalidState if there is no current element.
func (s *Sequence) Advance() error {
	if !s.HasCurrent() {
		return errors.Wrap(ErrInvalidState, "cannot advance without a current element")
	}
	s.cursor++
	return nil
}

// Start moves the cursor to the first element. An empty sequence has no
// current element afterwards.
func (s *Sequence) Start() {
	s.cursor = 0
}

// Current returns the current element. The second return value is false if
// there is no current element.
func (s *Sequence) Current() (string, bool) {
	if !s.HasCurrent() {
		return "", false
	}
	return s.data[s.cursor], true
}

// HasCurrent reports whether the sequence has a current element.
func (s *Sequence) HasCurrent() bool {
	return s.cursor >= 0 && s.cursor < s.count
}

// Index returns the position of the current element. The second return
// value is false if there is no current element.
func (s *Sequence) Index() (int, bool) {
	if !s.HasCurrent() {
		return 0, false
	}
	return s.cursor, true
}

// RemoveCurrent removes the current element. The following element, if any,
// becomes the current element. It does nothing if there is no current element.
func (s *Sequence) RemoveCurrent() {
	if !s.HasCurrent() {
		return
	}
	copy(s.data[s.cursor:], s.data[s.cursor+1:s.count])
	s.count--
	s.data[s.count] = ""
}

// Reserve grows the buffer to a capacity of n if it is smaller. Values and
// the cursor are preserved.
func (s *Sequence) Reserve(n int) {
	if len(s.data) >= n {
		return
	}
	s.resize(n)
}

// TrimToFit reduces the capacity of the sequence to its length.
func (s *Sequence) TrimToFit() {
	s.resize(s.count)
}

// Len returns the number of values in the sequence.
func (s *Sequence) Len() int {
	return s.count
}

// Cap returns the capacity of the sequence.
func (s *Sequence) Cap() int {
	return len(s.data)
}

// All returns a copy of the values stored in the sequence.
func (s *Sequence) All() []string {
	values := make([]string, s.count)
	copy(values, s.data)
	return values
}

// Clone returns a copy of s with the same values, cursor and capacity.
func (s *Sequence) Clone() *Sequence {
	return s.clone()
}

// Equal reports whether s and other hold the same values in the same order
// with the same current element. Capacity is ignored and two empty
// sequences are always equal.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	if s.count == 0 && other.count == 0 {
		return true
	}
	if s.cursor != other.cursor || s.count != other.count {
		return false
	}
	for i := 0; i < s.count; i++ {
		if s.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Concatenate returns a new Sequence holding the values of a followed by the
// values of b, with a capacity equal to the sum of their capacities and no
// current element. Neither a nor b is modified.
func Concatenate(a, b *Sequence) *Sequence {
	s := Sequence{
		data:  make([]string, len(a.data)+len(b.data)),
		count: a.count + b.count,
	}
	copy(s.data, a.data[:a.count])
	copy(s.data[a.count:], b.data[:b.count])
	s.clearCurrent()
	return &s
}

// clone returns a copy of s.
func (s *Sequence) clone() *Sequence {
	clone := Sequence{
		data:   make([]string, len(s.data)),
		count:  s.count,
		cursor: s.cursor,
	}
	copy(clone.data, s.data[:s.count])
	return &clone
}

// clearCurrent leaves the sequence without a current element.
func (s *Sequence) clearCurrent() {
	s.cursor = s.count
}

// growIfFull makes room for one more value using a growth of 2n+1.
func (s *Sequence) growIfFull() {
	if s.count == len(s.data) {
		s.Reserve(2*s.count + 1)
	}
}

// insert shifts data[i:count] one slot right and stores value at i.
// The caller guarantees a free slot.
func (s *Sequence) insert(i int, value string) {
	copy(s.data[i+1:s.count+1], s.data[i:s.count])
	s.data[i] = value
	s.count++
}

// resize replaces the buffer with one of capacity n holding the first
// count values.
func (s *Sequence) resize(n int) {
	data := make([]string, n)
	copy(data, s.data[:s.count])
	s.data = data
}
