package sequence

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreNew(t *testing.T) {
	store := NewStore[int](WithSequenceOptions(WithShiftMode(ShiftFront)))
	store.New("s1")
	got, ok := store.m["s1"]
	require.True(t, ok, "key should exist in store")
	assert.Zero(t, got.Len())
	assert.Equal(t, ShiftFront, got.shift)
}

func TestStoreAdd(t *testing.T) {
	store := NewStore[int]()
	want := NewFromValues(testValues)
	store.Add("s1", want)
	got, ok := store.m["s1"]
	require.True(t, ok, "key should exist in store")
	assert.NotSame(t, want, got)
	assert.Equal(t, want.Values(), got.Values())
}

func TestStoreDelete(t *testing.T) {
	store := NewStore[int]()
	store.New("s1")
	store.Delete("s1")
	_, ok := store.m["s1"]
	assert.False(t, ok, "key should not exist in store")
	store.Delete("s2")
}

func TestStoreGet(t *testing.T) {
	store := NewStore[int]()
	store.Add("s1", NewFromValues(testValues))
	got, ok := store.Get("s1")
	require.True(t, ok)
	assert.NotSame(t, store.m["s1"], got)
	assert.Equal(t, testValues, got.Values())

	got.Push(60)
	assert.Equal(t, 5, store.m["s1"].Len(), "returned copy should not alias the store")

	_, ok = store.Get("s2")
	assert.False(t, ok)
}

func TestStoreKeys(t *testing.T) {
	store := NewStore[int]()
	for _, k := range []string{"k3", "k1", "k2"} {
		store.New(k)
	}
	assert.Equal(t, []string{"k1", "k2", "k3"}, store.Keys())
}

func TestStoreExecute(t *testing.T) {
	store := NewStore[int]()
	tests := []struct {
		id        int
		statement Statement[int]
		x         int
		want      []int
	}{
		{1, Statement[int]{Key: "s1", Op: OpPush, Value: 1, CreateIfNotExists: true}, 0, []int{1}},
		{2, Statement[int]{Key: "s1", Op: OpPush, Value: 2}, 0, []int{1, 2}},
		{3, Statement[int]{Key: "s1", Op: OpUnshift, Value: 0}, 0, []int{0, 1, 2}},
		{4, Statement[int]{Key: "s1", Op: OpInsert, Index: 3, Value: 3}, 0, []int{0, 1, 2, 3}},
		{5, Statement[int]{Key: "s1", Op: OpDelete, Index: 1}, 0, []int{0, 2, 3}},
		{6, Statement[int]{Key: "s1", Op: OpPop}, 3, []int{0, 2}},
		{7, Statement[int]{Key: "s1", Op: OpShift}, 0, []int{0}},
	}
	for _, tt := range tests {
		x, err := store.Execute(tt.statement)
		require.NoError(t, err, "test %d", tt.id)
		assert.Equal(t, tt.x, x, "test %d", tt.id)
		assert.Equal(t, tt.want, store.m["s1"].Values(), "test %d", tt.id)
	}
}

func TestStoreExecuteErrors(t *testing.T) {
	store := NewStore[int]()
	store.New("s1")
	tests := []struct {
		id        int
		statement Statement[int]
		want      error
	}{
		{1, Statement[int]{Key: "s2", Op: OpPush, Value: 1}, ErrKeyNotFound},
		{2, Statement[int]{Key: "s1", Op: 42}, ErrUnknownOp},
		{3, Statement[int]{Key: "s1", Op: OpPop}, ErrEmptyContainer},
		{4, Statement[int]{Key: "s1", Op: OpShift}, ErrEmptyContainer},
		{5, Statement[int]{Key: "s1", Op: OpInsert, Index: 3}, ErrIndexOutOfRange},
		{6, Statement[int]{Key: "s1", Op: OpDelete, Index: 0}, ErrIndexOutOfRange},
		{7, Statement[int]{Key: "s3", Op: OpPop, CreateIfNotExists: true}, ErrEmptyContainer},
		{8, Statement[int]{Key: "s4", Op: OpShift, CreateIfNotExists: true}, ErrEmptyContainer},
		{9, Statement[int]{Key: "s5", Op: OpInsert, Index: 5, CreateIfNotExists: true}, ErrIndexOutOfRange},
		{10, Statement[int]{Key: "s6", Op: OpDelete, Index: 5, CreateIfNotExists: true}, ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		_, err := store.Execute(tt.statement)
		assert.True(t, errors.Is(err, tt.want), "test %d: got %v, want %v", tt.id, err, tt.want)
		if tt.statement.Key != "s1" {
			_, ok := store.m[tt.statement.Key]
			assert.False(t, ok, "test %d: failed statement should not create the key", tt.id)
		}
	}
	assert.Equal(t, []string{"s1"}, store.Keys())
}

func TestStoreExecuteCreate(t *testing.T) {
	store := NewStore[int]()
	_, err := store.Execute(Statement[int]{Key: "s1", Op: OpInsert, Index: 0, Value: 7, CreateIfNotExists: true})
	require.NoError(t, err)
	got, ok := store.Get("s1")
	require.True(t, ok, "successful statement should create the key")
	assert.Equal(t, []int{7}, got.Values())
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "push", OpPush.String())
	assert.Equal(t, "delete", OpDelete.String())
	assert.Equal(t, "unknown", Op(42).String())
}

func TestStoreBatch(t *testing.T) {
	var buf bytes.Buffer
	store := NewStore[string](WithLogger(zerolog.New(&buf)))
	statements := []Statement[string]{
		{Key: "s1", Op: OpPush, Value: "a", CreateIfNotExists: true},
		{Key: "s2", Op: OpPush, Value: "b"},
		{Key: "s1", Op: OpPush, Value: "c"},
		{Key: "s1", Op: OpDelete, Index: 9},
		{Key: "s3", Op: OpPop, CreateIfNotExists: true},
	}
	err, report := store.Batch(statements)
	require.Error(t, err)
	require.Len(t, report, 3)
	assert.Equal(t, `key "s2": key does not exist, at index 1`, report[0])
	assert.Equal(t, "delete: index 9, length 2: index out of range, at index 3", report[1])
	assert.Equal(t, "pop: sequence is empty, at index 4", report[2])
	assert.Equal(t, []string{"a", "c"}, store.m["s1"].Values())
	assert.Equal(t, []string{"s1"}, store.Keys())
	assert.Contains(t, buf.String(), `"op":"push"`)
	assert.Contains(t, buf.String(), `"op":"delete"`)

	err, report = store.Batch(statements[:1])
	assert.NoError(t, err)
	assert.Empty(t, report)
}

func TestStoreConcurrentExecute(t *testing.T) {
	store := NewStore[int]()
	const workers, n = 8, 500
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				_, err := store.Execute(Statement[int]{Key: "shared", Op: OpPush, Value: i, CreateIfNotExists: true})
				if err != nil {
					t.Error(err)
					return
				}
				if _, ok := store.Get("shared"); !ok {
					t.Error("key should exist in store")
					return
				}
			}
		}(w)
	}
	wg.Wait()
	got, ok := store.Get("shared")
	require.True(t, ok)
	assert.Equal(t, workers*n, got.Len())
}

func TestStoreDumpLoad(t *testing.T) {
	src := NewStore[int]()
	src.Add("k1", NewFromValues([]int{1, 2, 3}))
	src.Add("k11", New[int]())
	dump, err := src.Dump()
	require.NoError(t, err)
	assert.JSONEq(t, `{"k1":[1,2,3],"k11":[]}`, string(dump))

	dst := NewStore[int](WithSequenceOptions(WithShiftMode(ShiftFront)))
	dst.New("stale")
	require.NoError(t, dst.Load(dump))
	assert.Equal(t, []string{"k1", "k11"}, dst.Keys())
	for _, k := range src.Keys() {
		want, _ := src.Get(k)
		got, ok := dst.Get(k)
		require.True(t, ok, "key %s", k)
		assert.Equal(t, want.Values(), got.Values(), "key %s", k)
		assert.Equal(t, ShiftFront, got.shift, "key %s", k)
	}
}

func TestStoreLoadInvalid(t *testing.T) {
	store := NewStore[int]()
	store.Add("k1", NewFromValues([]int{1}))
	for i, data := range []string{`[1,2]`, `{"k1":["a"]}`, `{`} {
		err := store.Load([]byte(data))
		assert.Error(t, err, fmt.Sprintf("input %d", i))
	}
	assert.Equal(t, []string{"k1"}, store.Keys(), "store should be unchanged on error")
}
