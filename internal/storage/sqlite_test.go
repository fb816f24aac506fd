package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func setupSQLite(t *testing.T) *SQLiteKV {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flowmate-test.db")
	kv, err := OpenSQLite(path, time.Now)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestSQLiteSetGetDelete(t *testing.T) {
	kv := setupSQLite(t)

	if _, ok := kv.Get("fm_counter_v1"); ok {
		t.Fatal("expected missing key")
	}
	if err := kv.Set("fm_counter_v1", `{"n":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := kv.Get("fm_counter_v1")
	if !ok || got != `{"n":1}` {
		t.Fatalf("get = %q, %v", got, ok)
	}

	if err := kv.Set("fm_counter_v1", `{"n":2}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = kv.Get("fm_counter_v1")
	if got != `{"n":2}` {
		t.Fatalf("after overwrite got %q", got)
	}

	if err := kv.Delete("fm_counter_v1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := kv.Get("fm_counter_v1"); ok {
		t.Fatal("key survived delete")
	}
}

func TestSQLiteKeysSorted(t *testing.T) {
	kv := setupSQLite(t)
	for _, k := range []string{"fm_b_v1", "fm_a_v1", "fm_c_v1"} {
		if err := kv.Set(k, "{}"); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	keys := kv.Keys()
	want := []string{"fm_a_v1", "fm_b_v1", "fm_c_v1"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}

func TestBoltSetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowmate-test.bolt")
	kv, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	if err := kv.Set("fm_counter_v1", `{"n":3}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := kv.Get("fm_counter_v1")
	if !ok || got != `{"n":3}` {
		t.Fatalf("get = %q, %v", got, ok)
	}
	if err := kv.Delete("fm_counter_v1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := kv.Get("fm_counter_v1"); ok {
		t.Fatal("key survived delete")
	}
}
