package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plinyoo/starfield/pkg/cache"
	"github.com/plinyoo/starfield/pkg/config"
	"github.com/plinyoo/starfield/pkg/galaxy"
	"github.com/plinyoo/starfield/pkg/leads"
)

// newTestCLI returns a CLI with an in-memory config and no cache.
func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	c := New(io.Discard, LogInfo)
	c.cfg = config.Default()
	c.cfg.Cache.Backend = config.CacheNone
	return c
}

func run(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,PNG, pdf", []string{"svg", "png", "pdf"}},
		{"json,", []string{"json"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, fallback, want string
	}{
		{"", "stars-42", "stars-42"},
		{"", "sky.json", "sky"},
		{"out/sky.svg", "stars-42", "out/sky"},
		{"out/sky", "stars-42", "out/sky"},
		{"sky.backup", "stars-42", "sky.backup"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.fallback); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.fallback, got, tt.want)
		}
	}
}

func TestParseStarCount(t *testing.T) {
	for _, s := range []string{"abc", "-1", "1000001", "4.5"} {
		if _, err := parseStarCount(s); err == nil {
			t.Errorf("parseStarCount(%q) succeeded", s)
		}
	}
	if n, err := parseStarCount("247"); err != nil || n != 247 {
		t.Errorf("parseStarCount(247) = %d, %v", n, err)
	}
}

func TestStructureCommand(t *testing.T) {
	out, err := run(t, newTestCLI(t), "structure", "247")
	if err != nil {
		t.Fatalf("structure: %v", err)
	}
	for _, want := range []string{"247 stars", "Galaxies", "Large systems", "Small systems", "9 elements"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLayoutThenVisualize(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "sky.layout.json")

	c := newTestCLI(t)
	if _, err := run(t, c, "layout", "57", "-o", layoutPath, "--width", "400"); err != nil {
		t.Fatalf("layout: %v", err)
	}
	l, err := galaxy.ReadLayoutFile(layoutPath)
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	if l.Width != 400 || l.UnitCount() != 57 {
		t.Errorf("layout width %v units %d, want 400 and 57", l.Width, l.UnitCount())
	}

	if _, err := run(t, c, "visualize", layoutPath, "--orbits", "--title", "Fifty-seven"); err != nil {
		t.Fatalf("visualize: %v", err)
	}
	svg, err := os.ReadFile(filepath.Join(dir, "sky.svg"))
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	for _, want := range []string{"<svg", "Fifty-seven", `class="orbit"`} {
		if !bytes.Contains(svg, []byte(want)) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestVisualizeRefusesToOverwriteInput(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "sky.json")
	c := newTestCLI(t)
	if _, err := run(t, c, "layout", "12", "-o", layoutPath); err != nil {
		t.Fatalf("layout: %v", err)
	}
	_, err := run(t, c, "visualize", layoutPath, "-f", "json")
	if err == nil || !strings.Contains(err.Error(), "refusing to overwrite") {
		t.Errorf("visualize error = %v, want refusal", err)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "community")

	c := newTestCLI(t)
	if _, err := run(t, c, "render", "1234", "-f", "svg,json", "-o", base, "--style", "glow"); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !bytes.Contains(svg, []byte(`id="halo"`)) {
		t.Error("glow svg missing halo gradient")
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	l, err := galaxy.UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("json artifact is not a layout: %v", err)
	}
	if len(l.Galaxies) != 12 || len(l.LargeSystems) != 3 || len(l.Stars) != 4 {
		t.Errorf("structure = %+v", l.Structure)
	}
}

func TestRenderRejectsBadFlags(t *testing.T) {
	c := newTestCLI(t)
	tests := [][]string{
		{"render", "10", "-f", "gif"},
		{"render", "10", "--style", "neon"},
		{"render", "10", "-t", "pie"},
		{"render", "10", "--width", "-5"},
		{"render", "many"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := run(t, c, append(args, "-o", filepath.Join(t.TempDir(), "x"))...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCachePath(t *testing.T) {
	c := newTestCLI(t)
	c.cfg.Cache.Dir = filepath.Join(t.TempDir(), "sf-cache")
	out, err := run(t, c, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != c.cfg.Cache.Dir {
		t.Errorf("cache path = %q, want %q", out, c.cfg.Cache.Dir)
	}
}

func TestCacheDirDefault(t *testing.T) {
	dir, err := cacheDir(config.CacheConfig{})
	if err != nil {
		t.Skipf("no user cache dir: %v", err)
	}
	if filepath.Base(dir) != appName {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, newTestCLI(t), "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[server]", `addr = ":8080"`, "[rate_limit]", "[leads]"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestLeadsListEmpty(t *testing.T) {
	if _, err := run(t, newTestCLI(t), "leads", "list"); err != nil {
		t.Fatalf("leads list: %v", err)
	}
	if _, err := run(t, newTestCLI(t), "leads", "list", "--form", "spam"); err == nil {
		t.Error("leads list --form spam succeeded")
	}
}

func TestCompletion(t *testing.T) {
	out, err := run(t, newTestCLI(t), "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "starfield") {
		t.Error("bash completion does not mention starfield")
	}
}

func TestCacheClear(t *testing.T) {
	dir := t.TempDir()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{cache.Hash([]byte("a")), cache.Hash([]byte("b"))} {
		if err := fc.Set(ctx, key, []byte("x"), 0); err != nil {
			t.Fatal(err)
		}
	}

	c := newTestCLI(t)
	c.cfg.Cache.Backend = config.CacheFile
	c.cfg.Cache.Dir = dir
	if _, err := run(t, c, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, ok, _ := fc.Get(ctx, cache.Hash([]byte("a"))); ok {
		t.Error("entry survived cache clear")
	}
}

func TestLeadDetail(t *testing.T) {
	tests := []struct {
		name string
		lead leads.Lead
		want string
	}{
		{
			name: "join",
			lead: leads.Lead{Submission: leads.Submission{FormType: leads.FormJoin, Role: "engineer", Availability: "weekends"}},
			want: "engineer · weekends",
		},
		{
			name: "invest with message",
			lead: leads.Lead{Submission: leads.Submission{FormType: leads.FormInvest, InvestmentRange: "10k-50k", Message: "hello\n  there"}},
			want: "10k-50k · hello there",
		},
		{
			name: "contact without message",
			lead: leads.Lead{Submission: leads.Submission{FormType: leads.FormContact}},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := leadDetail(tt.lead); got != tt.want {
				t.Errorf("leadDetail() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("ünïcödé text", 5); got != "ünïc…" {
		t.Errorf("truncate(unicode) = %q, want %q", got, "ünïc…")
	}
}
