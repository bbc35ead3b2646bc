package repository

import "testing"

func TestDayBucketExprByDialectSQLite(t *testing.T) {
	got := dayBucketExprByDialect("sqlite", "created_at")
	want := "strftime('%Y-%m-%d', created_at)"
	if got != want {
		t.Fatalf("sqlite day expr mismatch, want %s got %s", want, got)
	}
}

func TestDayBucketExprByDialectPostgres(t *testing.T) {
	got := dayBucketExprByDialect("postgres", "created_at")
	want := "to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD')"
	if got != want {
		t.Fatalf("postgres day expr mismatch, want %s got %s", want, got)
	}
}

func TestDayBucketExprUnknownDialectFallsBack(t *testing.T) {
	got := dayBucketExprByDialect("", "paid_at")
	want := "strftime('%Y-%m-%d', paid_at)"
	if got != want {
		t.Fatalf("fallback day expr mismatch, want %s got %s", want, got)
	}
}
