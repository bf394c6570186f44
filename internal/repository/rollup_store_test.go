package repository

import (
	"Masthead/internal/pkg/consts"
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockStore(t *testing.T) (*RollupStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return NewRollupStore(gdb), mock
}

func TestListPublishedFiltersDrafts(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "total_views", "total_likes"}).
		AddRow(3, 120, 8).
		AddRow(7, 55, 4)
	mock.ExpectQuery("SELECT .+ FROM `articles` WHERE status = \\? ORDER BY id ASC LIMIT \\?").
		WithArgs(consts.ArticleStatusPublished, 200).
		WillReturnRows(rows)

	items, err := store.ListPublished(context.Background(), 200, 0)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].ID != 3 || items[0].Totals.Views != 120 || items[0].Totals.Likes != 8 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet query expectations: %v", err)
	}
}

func TestListPublishedEmptyWhenNothingPublished(t *testing.T) {
	store, mock := newMockStore(t)

	// 表里只有草稿时谓词命中零行，目录不产出任何条目
	mock.ExpectQuery("SELECT .+ FROM `articles` WHERE status = \\?").
		WithArgs(consts.ArticleStatusPublished, 200).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total_views", "total_likes"}))

	items, err := store.ListPublished(context.Background(), 200, 0)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %d, want none", len(items))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet query expectations: %v", err)
	}
}
