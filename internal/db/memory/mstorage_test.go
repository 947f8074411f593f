package memory

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	type args[T any] struct {
		key  string
		val  *T
		m    *MStorage
		opts []func(*SetOptions)
	}
	type testCase[T any] struct {
		name    string
		args    args[T]
		wantErr error
	}
	type target struct {
		Key string
		Val int
	}
	ms := NewMemStorage()
	tests := []testCase[target]{
		{
			name: "default",
			args: args[target]{
				key:  "key1",
				val:  &target{Key: "key1", Val: 1},
				m:    ms,
				opts: nil,
			},
		}, {
			name: "duplicate records",
			args: args[target]{
				key:  "key1",
				val:  &target{Key: "key1", Val: 2},
				m:    ms,
				opts: nil,
			},
			wantErr: ErrDuplicateKey,
		}, {
			name: "overwrite",
			args: args[target]{
				key:  "key1",
				val:  &target{Key: "key1", Val: 3},
				m:    ms,
				opts: []func(*SetOptions){WithOverwrite()},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Set[target](t.Context(), tt.args.key, tt.args.val, tt.args.m, tt.args.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("%s: Set() error = %+v, wantErr %+v", tt.name, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("%s: Set() unexpected error = %+v", tt.name, err)
			}

			val, getErr := Get[target](t.Context(), tt.args.key, tt.args.m)
			if getErr != nil {
				t.Fatal(getErr)
			}
			if val.Key != tt.args.val.Key || val.Val != tt.args.val.Val {
				t.Errorf("%s: Set() Val = %+v, want %+v", tt.name, val, tt.args.val)
			}
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	ms := NewMemStorage()
	_, err := Get[int](t.Context(), "missing", ms)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Из множества конкурентных вставок одного ключа должна пройти ровно одна.
func TestSet_ConcurrentSameKey(t *testing.T) {
	ms := NewMemStorage()

	const writers = 64
	var (
		wg       sync.WaitGroup
		inserted atomic.Int32
		dup      atomic.Int32
	)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			val := fmt.Sprintf("writer-%d", i)
			err := Set[string](t.Context(), "same", &val, ms)
			switch {
			case err == nil:
				inserted.Add(1)
			case errors.Is(err, ErrDuplicateKey):
				dup.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), inserted.Load())
	assert.Equal(t, int32(writers-1), dup.Load())
	assert.Equal(t, 1, ms.Len())
}

func TestGetAll(t *testing.T) {
	ms := NewMemStorage()
	for i := range 3 {
		v := i
		require.NoError(t, Set[int](t.Context(), fmt.Sprint(i), &v, ms))
	}
	all, err := GetAll[int](t.Context(), ms)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, all)
}
