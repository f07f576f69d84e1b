package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGetDelete(t *testing.T) {
	ctx := t.Context()
	store := NewStore(time.Minute)

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatal("empty store must miss")
	}

	store.Set(ctx, "k1", "v1")
	value, ok := store.Get(ctx, "k1")
	if !ok || value != "v1" {
		t.Fatalf("expected v1, got %v (ok=%v)", value, ok)
	}

	store.Delete(ctx, "k1")
	if _, ok := store.Get(ctx, "k1"); ok {
		t.Fatal("deleted key must miss")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	ctx := t.Context()
	store := NewStore(10 * time.Millisecond)

	store.Set(ctx, "k1", "v1")
	if _, ok := store.Get(ctx, "k1"); !ok {
		t.Fatal("fresh entry must hit")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := store.Get(ctx, "k1"); ok {
		t.Fatal("expired entry must miss")
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	ctx := t.Context()
	store := NewStore(0)

	store.Set(ctx, "k1", "v1")
	time.Sleep(5 * time.Millisecond)
	if _, ok := store.Get(ctx, "k1"); !ok {
		t.Fatal("zero TTL entries must not expire")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	ctx := t.Context()
	store := NewStore(time.Minute)

	store.Set(ctx, "player:list", 1)
	store.Set(ctx, "player:id:p1", 2)
	store.Set(ctx, "match:id:m1", 3)

	store.DeletePrefix(ctx, "player:")

	if _, ok := store.Get(ctx, "player:list"); ok {
		t.Fatal("prefixed key must be gone")
	}
	if _, ok := store.Get(ctx, "player:id:p1"); ok {
		t.Fatal("prefixed key must be gone")
	}
	if _, ok := store.Get(ctx, "match:id:m1"); !ok {
		t.Fatal("other keys must survive")
	}
}

func TestGetOrLoad_CachesResult(t *testing.T) {
	ctx := t.Context()
	store := NewStore(time.Minute)

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		value, err := store.GetOrLoad(ctx, "k1", loader)
		if err != nil {
			t.Fatalf("get or load: %v", err)
		}
		if value != "loaded" {
			t.Fatalf("unexpected value: %v", value)
		}
	}
	if calls != 1 {
		t.Fatalf("expected a single loader call, got %d", calls)
	}
}

func TestGetOrLoad_ErrorNotCached(t *testing.T) {
	ctx := t.Context()
	store := NewStore(time.Minute)

	calls := 0
	failing := func(context.Context) (any, error) {
		calls++
		return nil, fmt.Errorf("load failed")
	}

	if _, err := store.GetOrLoad(ctx, "k1", failing); err == nil {
		t.Fatal("expected loader error")
	}
	if _, err := store.GetOrLoad(ctx, "k1", failing); err == nil {
		t.Fatal("expected loader error on retry")
	}
	if calls != 2 {
		t.Fatalf("failures must not be cached, got %d calls", calls)
	}

	value, err := store.GetOrLoad(ctx, "k1", func(context.Context) (any, error) {
		return "recovered", nil
	})
	if err != nil || value != "recovered" {
		t.Fatalf("recovery failed: %v %v", value, err)
	}
}

func TestGetOrLoad_DeduplicatesConcurrentMisses(t *testing.T) {
	ctx := t.Context()
	store := NewStore(time.Minute)

	var calls atomic.Int64
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	}

	const workers = 16
	var wg sync.WaitGroup
	results := make([]any, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.GetOrLoad(ctx, "k1", loader)
		}(i)
	}

	// give every goroutine a chance to reach the inflight gate
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one loader call under contention, got %d", got)
	}
	for i := 0; i < workers; i++ {
		if errs[i] != nil || results[i] != "shared" {
			t.Fatalf("worker %d: got %v, %v", i, results[i], errs[i])
		}
	}
}

func TestGetOrLoad_EmptyKeyBypassesCache(t *testing.T) {
	ctx := t.Context()
	store := NewStore(time.Minute)

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}

	if _, err := store.GetOrLoad(ctx, "", loader); err != nil {
		t.Fatalf("get or load: %v", err)
	}
	if _, err := store.GetOrLoad(ctx, "", loader); err != nil {
		t.Fatalf("get or load: %v", err)
	}
	if calls != 2 {
		t.Fatalf("empty key must always load, got %d calls", calls)
	}
}
