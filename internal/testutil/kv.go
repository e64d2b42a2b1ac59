package testutil

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/football-players-service/internal/kv"
)

// FlakyKV wraps a kv.Store and injects errors per operation.
type FlakyKV struct {
	Inner     kv.Store
	GetErr    error
	SetErr    error
	RemoveErr error
	Sets      atomic.Int32
}

// NewFlakyKV wraps a fresh in-memory store.
func NewFlakyKV() *FlakyKV {
	return &FlakyKV{Inner: kv.NewMemoryStore()}
}

func (f *FlakyKV) Get(ctx context.Context, key string) (string, error) {
	if f.GetErr != nil {
		return "", f.GetErr
	}
	return f.Inner.Get(ctx, key)
}

func (f *FlakyKV) Set(ctx context.Context, key, value string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.Sets.Add(1)
	return f.Inner.Set(ctx, key, value)
}

func (f *FlakyKV) Remove(ctx context.Context, key string) error {
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	return f.Inner.Remove(ctx, key)
}
