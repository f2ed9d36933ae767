/*
Package sequence implements an ordered, resizable sequence of strings with a
movable cursor. It defines the type Sequence, with methods for inserting,
removing and inspecting values relative to the current element, and the type
Store, with methods for interacting with a collection of sequences.

A Sequence owns a contiguous buffer whose capacity is always at least the
number of values it holds. Insertions grow a full buffer to twice its length
plus one; TrimToFit is the only operation that shrinks it. Clone and
Concatenate always allocate a fresh buffer, so mutating a copy never affects
its source.

The cursor has two states. Either a current element exists, or it does not,
in which case the cursor sits one past the last value:

	s := sequence.NewSequence()
	s.InsertAfter("A")
	s.InsertAfter("B")
	fmt.Println(s) // {A, >B} (capacity = 10)
	s.Advance()
	fmt.Println(s) // {A, B} (capacity = 10)

A Sequence is not safe for concurrent use. A Store is essentially a wrapper
around a map of sequences that provides convenience methods safe to use from
multiple goroutines.
*/
package sequence
