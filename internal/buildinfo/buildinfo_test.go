package buildinfo

import "testing"

func TestString_Defaults(t *testing.T) {
	want := "querylab dev (commit=none, date=unknown)"
	if got := String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestString_Overridden(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v1.2.0", "abc1234", "2026-01-02"
	want := "querylab v1.2.0 (commit=abc1234, date=2026-01-02)"
	if got := String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
