package runindex

import (
	"context"
	"testing"

	"github.com/edulab/atividades/dbopen"

	_ "modernc.org/sqlite"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	db := dbopen.OpenMemory(t)
	ix := New(db)
	if err := ix.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return ix
}

func TestRecordAndGet(t *testing.T) {
	ix := testIndex(t)
	ctx := context.Background()

	err := ix.Record(ctx, "run_1", "doc_1", "generated/activity_run_1.html",
		[]string{"apresentacao", "atividades"})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	run, err := ix.Get(ctx, "run_1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if run.FileID != "doc_1" {
		t.Errorf("FileID = %q", run.FileID)
	}
	if run.NavPath != "generated/activity_run_1.html" {
		t.Errorf("NavPath = %q", run.NavPath)
	}
	if len(run.SectionKeys) != 2 || run.SectionKeys[0] != "apresentacao" {
		t.Errorf("SectionKeys = %v", run.SectionKeys)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestRecord_Upsert(t *testing.T) {
	ix := testIndex(t)
	ctx := context.Background()

	if err := ix.Record(ctx, "run_1", "doc_1", "old.html", nil); err != nil {
		t.Fatal(err)
	}
	if err := ix.Record(ctx, "run_1", "doc_2", "new.html", []string{"mergulhando"}); err != nil {
		t.Fatal(err)
	}

	run, err := ix.Get(ctx, "run_1")
	if err != nil {
		t.Fatal(err)
	}
	if run.FileID != "doc_2" || run.NavPath != "new.html" {
		t.Errorf("re-record did not overwrite: %+v", run)
	}

	runs, err := ix.List(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("List len = %d, want 1", len(runs))
	}
}

func TestGet_NotFound(t *testing.T) {
	ix := testIndex(t)
	if _, err := ix.Get(context.Background(), "nunca"); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestList(t *testing.T) {
	ix := testIndex(t)
	ctx := context.Background()

	for _, id := range []string{"run_a", "run_b", "run_c"} {
		if err := ix.Record(ctx, id, "doc_1", "nav.html", nil); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := ix.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("List len = %d, want 2", len(runs))
	}

	runs, err = ix.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Errorf("List len = %d, want 3 with default limit", len(runs))
	}

	// Keys stored empty stay empty, not [""].
	if runs[0].SectionKeys != nil {
		t.Errorf("SectionKeys = %v, want nil", runs[0].SectionKeys)
	}
}
