package rollup

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// memStore 同时充当快照来源与提交端，模拟真实的读写闭环
type memStore struct {
	snapshots  map[string]Totals // "articleID/day"
	deltas     map[uint64]Deltas
	batchSizes []int
}

func newMemStore() *memStore {
	return &memStore{
		snapshots: make(map[string]Totals),
		deltas:    make(map[uint64]Deltas),
	}
}

func snapKey(articleID uint64, day string) string {
	return fmt.Sprintf("%d/%s", articleID, day)
}

func (s *memStore) GetTotals(_ context.Context, articleID uint64, day string) (*Totals, error) {
	if t, ok := s.snapshots[snapKey(articleID, day)]; ok {
		return &t, nil
	}
	return nil, nil
}

func (s *memStore) CommitBatch(_ context.Context, ops []Op) error {
	s.batchSizes = append(s.batchSizes, len(ops))
	for _, op := range ops {
		switch o := op.(type) {
		case SnapshotUpsert:
			s.snapshots[snapKey(o.ArticleID, o.Day)] = o.Totals
		case ArticleDeltaUpdate:
			s.deltas[o.ArticleID] = o.Deltas
		}
	}
	return nil
}

type sliceCatalog struct {
	items []Item
	calls int
}

func (c *sliceCatalog) ListPublished(_ context.Context, limit, offset int) ([]Item, error) {
	c.calls++
	if offset >= len(c.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(c.items) {
		end = len(c.items)
	}
	return c.items[offset:end], nil
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 0, 30, 0, 0, time.UTC)
}

func newTestEngine(catalog Catalog, store *memStore, threshold, pageSize int) *Engine {
	e := NewEngine(catalog, store, store, threshold, pageSize)
	e.Now = fixedNow
	return e
}

func TestEngine_FreshItem(t *testing.T) {
	store := newMemStore()
	catalog := &sliceCatalog{items: []Item{
		{ID: 1, Totals: Totals{Views: 500, Likes: 20}},
	}}
	engine := newTestEngine(catalog, store, 0, 0)

	summary, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.Updated != 1 || summary.Today != "20260301" {
		t.Errorf("summary = %+v", summary)
	}

	if d := store.deltas[1]; d != (Deltas{}) {
		t.Errorf("fresh item deltas = %+v, want all zero", d)
	}

	snap, ok := store.snapshots[snapKey(1, "20260301")]
	if !ok {
		t.Fatal("today snapshot missing")
	}
	if snap.Views != 500 || snap.Likes != 20 {
		t.Errorf("today snapshot = %+v", snap)
	}
}

func TestEngine_GrowthAgainstBaselines(t *testing.T) {
	store := newMemStore()
	store.snapshots[snapKey(1, "20260222")] = Totals{Views: 100, Likes: 10}
	store.snapshots[snapKey(1, "20260130")] = Totals{Views: 40, Likes: 4}

	catalog := &sliceCatalog{items: []Item{
		{ID: 1, Totals: Totals{Views: 180, Likes: 12}},
	}}
	engine := newTestEngine(catalog, store, 0, 0)

	if _, err := engine.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := Deltas{Views7d: 80, Likes7d: 2, Views30d: 140, Likes30d: 8}
	if got := store.deltas[1]; got != want {
		t.Errorf("deltas = %+v, want %+v", got, want)
	}
}

func TestEngine_SameDayRerunIsIdempotent(t *testing.T) {
	store := newMemStore()
	catalog := &sliceCatalog{items: []Item{
		{ID: 1, Totals: Totals{Views: 300, Likes: 9}},
		{ID: 2, Totals: Totals{Views: 50, Likes: 1}},
	}}
	engine := newTestEngine(catalog, store, 0, 0)

	first, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	firstDeltas := map[uint64]Deltas{1: store.deltas[1], 2: store.deltas[2]}
	firstSnapCount := len(store.snapshots)

	second, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	if first.Updated != second.Updated || first.Today != second.Today {
		t.Errorf("summaries differ: %+v vs %+v", first, second)
	}
	// 同日重跑覆盖当日快照而非新增
	if len(store.snapshots) != firstSnapCount {
		t.Errorf("snapshot count changed: %d -> %d", firstSnapCount, len(store.snapshots))
	}
	for id, want := range firstDeltas {
		if got := store.deltas[id]; got != want {
			t.Errorf("article %d deltas changed: %+v -> %+v", id, want, got)
		}
	}
}

func TestEngine_PaginatesCatalog(t *testing.T) {
	store := newMemStore()
	items := make([]Item, 0, 5)
	for i := uint64(1); i <= 5; i++ {
		items = append(items, Item{ID: i, Totals: Totals{Views: int64(i) * 10}})
	}
	catalog := &sliceCatalog{items: items}
	engine := newTestEngine(catalog, store, 4, 2)

	summary, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.Updated != 5 {
		t.Errorf("Updated = %d, want 5", summary.Updated)
	}
	if catalog.calls < 3 {
		t.Errorf("catalog queried %d times, want at least 3 pages", catalog.calls)
	}
	if summary.Committed != 10 || summary.Staged != 10 {
		t.Errorf("summary = %+v, want 10 staged and committed", summary)
	}
	for _, size := range store.batchSizes {
		if size > 4 {
			t.Errorf("batch size %d exceeds threshold 4", size)
		}
	}
	for i := uint64(1); i <= 5; i++ {
		if _, ok := store.snapshots[snapKey(i, "20260301")]; !ok {
			t.Errorf("article %d missing today snapshot", i)
		}
	}
}

func TestEngine_EmptyCatalog(t *testing.T) {
	store := newMemStore()
	engine := newTestEngine(&sliceCatalog{}, store, 0, 0)

	summary, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Updated != 0 || summary.Batches != 0 {
		t.Errorf("summary = %+v, want empty run", summary)
	}
}
