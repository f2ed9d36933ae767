package sequence

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestStoreNew(t *testing.T) {
	store := NewStore()
	if err := store.New("s1", 5); err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	got, ok := store.m["s1"]
	if !ok {
		t.Fatalf("key should exist in store")
	}
	want := newTestSequence(t, 5)
	if !assertSequencesEqual(got, want) {
		t.Fatalf("\ngot  %+v\nwant %+v", got, want)
	}
	if err := store.New("s2", -1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got error %v, want %v", err, ErrInvalidArgument)
	}
	if _, ok := store.m["s2"]; ok {
		t.Fatalf("key should not exist in store")
	}
}

func TestStoreAdd(t *testing.T) {
	store := NewStore()
	want := NewSequenceFromValues(testValues)
	store.Add("s1", want)
	got, ok := store.m["s1"]
	if !ok {
		t.Fatalf("key should exist in store")
	}
	if got == want {
		t.Fatalf("pointer values should not be equal")
	}
	if !assertSequencesEqual(got, want) {
		t.Fatalf("\ngot  %+v\nwant %+v", got, want)
	}
	want.RemoveCurrent()
	if assertSequencesEqual(got, want) {
		t.Fatalf("stored sequence should not change with its source")
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	store.Add("s1", NewSequence())
	store.Delete("s1")
	if _, ok := store.m["s1"]; ok {
		t.Fatalf("key should not exist in store")
	}
}

func TestStoreGet(t *testing.T) {
	store := NewStore()
	want := NewSequenceFromValues(testValues)
	store.Add("s1", want)
	got, ok := store.Get("s1")
	if !ok {
		t.Fatalf("got %t, want true", ok)
	}
	if got == store.m["s1"] {
		t.Fatalf("pointer values should not be equal")
	}
	if !assertSequencesEqual(got, want) {
		t.Fatalf("\ngot  %+v\nwant %+v", got, want)
	}
	got.InsertAfter("M")
	if !assertSequencesEqual(store.m["s1"], want) {
		t.Fatalf("stored sequence should not change with a copy")
	}
	_, ok = store.Get("s2")
	if ok {
		t.Fatalf("got %t, want false", ok)
	}
}

func TestStoreKeys(t *testing.T) {
	store := NewStore()
	store.Add("k2", NewSequence())
	store.Add("k1", NewSequence())
	store.Add("k11", NewSequence())
	want := []string{"k1", "k11", "k2"}
	got := store.Keys()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestStoreClone(t *testing.T) {
	store := NewStore()
	store.Add("src", NewSequenceFromValues([]string{"A", "B"}))
	if err := store.Clone("dst", "src"); err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	if store.m["dst"] == store.m["src"] {
		t.Fatalf("pointer values should not be equal")
	}
	if !store.m["dst"].Equal(store.m["src"]) {
		t.Fatalf("clone should be equal to its source")
	}
	if err := store.Clone("dst", "missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("got error %v, want %v", err, ErrKeyNotFound)
	}
}

func TestStoreConcatenate(t *testing.T) {
	store := NewStore()
	store.Add("a", NewSequenceFromValues([]string{"A", "B"}))
	store.Add("b", NewSequenceFromValues([]string{"C", "D"}))
	if err := store.Concatenate("c", "a", "b"); err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	assertDisplay(t, store.m["c"], "{A, B, C, D} (capacity = 20)")
	if err := store.Concatenate("c", "a", "missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("got error %v, want %v", err, ErrKeyNotFound)
	}
	if err := store.Concatenate("c", "missing", "b"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("got error %v, want %v", err, ErrKeyNotFound)
	}
}

func TestStoreExecute(t *testing.T) {
	store := NewStore()
	store.Add("src", NewSequenceFromValues([]string{"X", "Y"}))
	tests := []struct {
		id        int
		statement Statement
		want      string
	}{
		{1, Statement{Key: "s1", Type: StatementInsertAfter, Value: "B", CreateIfNotExists: true, CreateWithCapacity: 2}, "{>B} (capacity = 2)"},
		{2, Statement{Key: "s1", Type: StatementInsertBefore, Value: "A"}, "{>A, B} (capacity = 2)"},
		{3, Statement{Key: "s1", Type: StatementAdvance}, "{A, >B} (capacity = 2)"},
		{4, Statement{Key: "s1", Type: StatementInsertAfter, Value: "C"}, "{A, B, >C} (capacity = 5)"},
		{5, Statement{Key: "s1", Type: StatementStart}, "{>A, B, C} (capacity = 5)"},
		{6, Statement{Key: "s1", Type: StatementRemoveCurrent}, "{>B, C} (capacity = 5)"},
		{7, Statement{Key: "s1", Type: StatementAppendAll, Source: "src"}, "{>B, C, X, Y} (capacity = 5)"},
		{8, Statement{Key: "s1", Type: StatementReserve, Capacity: 12}, "{>B, C, X, Y} (capacity = 12)"},
		{9, Statement{Key: "s1", Type: StatementTrimToFit}, "{>B, C, X, Y} (capacity = 4)"},
	}
	for _, tt := range tests {
		if err := store.Execute(tt.statement); err != nil {
			t.Fatalf("test %d: got error %s, want error nil", tt.id, err)
		}
		if got := store.m["s1"].String(); got != tt.want {
			t.Fatalf("test %d:\ngot  %s\nwant %s", tt.id, got, tt.want)
		}
	}
}

func TestStoreExecuteErrors(t *testing.T) {
	store := NewStore()
	store.Add("s1", NewSequence())
	tests := []struct {
		id        int
		statement Statement
		want      error
	}{
		{1, Statement{Key: "s2", Type: StatementStart}, ErrKeyNotFound},
		{2, Statement{Key: "s1", Type: statementUnknown}, ErrUnknownStatement},
		{3, Statement{Key: "s1", Type: StatementAdvance}, ErrInvalidState},
		{4, Statement{Key: "s1", Type: StatementAppendAll, Source: "s3"}, ErrKeyNotFound},
		{5, Statement{Key: "s4", Type: StatementStart, CreateIfNotExists: true, CreateWithCapacity: -1}, ErrInvalidArgument},
		{6, Statement{Key: "s5", Type: StatementAppendAll, Source: "s3", CreateIfNotExists: true}, ErrKeyNotFound},
	}
	for _, tt := range tests {
		if err := store.Execute(tt.statement); !errors.Is(err, tt.want) {
			t.Fatalf("test %d: got error %v, want %v", tt.id, err, tt.want)
		}
	}
	for _, key := range []string{"s2", "s4", "s5"} {
		if _, ok := store.m[key]; ok {
			t.Fatalf("key %s should not exist in store", key)
		}
	}
}

func TestStoreBatch(t *testing.T) {
	store := NewStore()
	statements := []Statement{
		{Key: "s1", Type: StatementInsertAfter, Value: "A", CreateIfNotExists: true, CreateWithCapacity: 10},
		{Key: "s1", Type: StatementAdvance},
		{Key: "s1", Type: StatementAdvance},
		{Key: "s2", Type: StatementStart},
		{Key: "s1", Type: StatementInsertAfter, Value: "B"},
	}
	report, err := store.Batch(statements)
	if err == nil {
		t.Fatalf("got error nil, want error")
	}
	if len(report) != 2 {
		t.Fatalf("got %d, want 2", len(report))
	}
	for i, index := range []int{2, 3} {
		suffix := fmt.Sprintf(", at index %d", index)
		if n := len(report[i]); n < len(suffix) || report[i][n-len(suffix):] != suffix {
			t.Fatalf("got %q, want suffix %q", report[i], suffix)
		}
	}
	assertDisplay(t, store.m["s1"], "{A, >B} (capacity = 10)")

	report, err = store.Batch(statements[:2])
	if err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	if len(report) != 0 {
		t.Fatalf("got %v, want empty report", report)
	}
}

func TestStoreConcurrentExecute(t *testing.T) {
	store := NewStore()
	if err := store.New("s1", 0); err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.Execute(Statement{Key: "s1", Type: StatementInsertAfter, Value: "x"})
				store.Get("s1")
			}
		}()
	}
	wg.Wait()
	if n := store.m["s1"].Len(); n != 800 {
		t.Fatalf("got %d, want 800", n)
	}
}
