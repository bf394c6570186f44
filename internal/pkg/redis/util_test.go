package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func setupTestClient(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	old := Rdb
	Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		Rdb.Close()
		Rdb = old
	})
	return mr
}

func TestTryLockAcquiresWithoutRetry(t *testing.T) {
	mr := setupTestClient(t)
	ctx := context.Background()

	// retryTimes 0 表示只尝试一次，但这一次必须真的发出去
	ok, err := TryLock(ctx, "lock:test", "owner-a", time.Minute, 0)
	if err != nil {
		t.Fatalf("TryLock: %v", err)
	}
	if !ok {
		t.Fatal("free lock not acquired on first attempt")
	}
	if got, _ := mr.Get("lock:test"); got != "owner-a" {
		t.Fatalf("lock value = %q, want owner-a", got)
	}

	ok, err = TryLock(ctx, "lock:test", "owner-b", time.Minute, 0)
	if err != nil {
		t.Fatalf("TryLock: %v", err)
	}
	if ok {
		t.Fatal("held lock acquired by a second owner")
	}
}

func TestUnLockOnlyReleasesOwnValue(t *testing.T) {
	mr := setupTestClient(t)
	ctx := context.Background()

	if ok, err := TryLock(ctx, "lock:test", "owner-a", time.Minute, 0); err != nil || !ok {
		t.Fatalf("TryLock: ok=%v err=%v", ok, err)
	}

	UnLock(ctx, "lock:test", "owner-b")
	if !mr.Exists("lock:test") {
		t.Fatal("lock released by a non-owner value")
	}

	UnLock(ctx, "lock:test", "owner-a")
	if mr.Exists("lock:test") {
		t.Fatal("lock still held after owner released it")
	}
}
