package buildinfo

import "testing"

func TestGet(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	defer func() { Version, Commit, Date = oldV, oldC, oldD }()

	Version, Commit, Date = "v0.3.0", "0123456789abcdef0123", "2026-01-02T03:04:05Z"
	info := Get()
	if info.Commit != "0123456789ab" {
		t.Errorf("Commit = %q, want shortened", info.Commit)
	}
	if got, want := info.String(), "v0.3.0 (0123456789ab, 2026-01-02T03:04:05Z)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := Template(), "{{.Name}} "+info.String()+"\n"; got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
}

func TestGetDefaults(t *testing.T) {
	if info := Get(); info.Commit != "none" || info.Version != "dev" {
		t.Errorf("development build = %+v", info)
	}
}
