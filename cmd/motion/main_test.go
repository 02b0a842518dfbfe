package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/layer"
	"github.com/gogpu/motion/scenefile"
	"github.com/gogpu/motion/text"
)

const titleScene = "../../scenefile/testdata/title.yaml"

var idPattern = regexp.MustCompile(`#\d+`)

func loadTitle(t *testing.T) *scenefile.Document {
	t.Helper()
	doc, err := scenefile.Load(titleScene)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return doc
}

func TestPrintTree(t *testing.T) {
	root, err := loadScene(titleScene)
	if err != nil {
		t.Fatalf("loadScene() error = %v", err)
	}
	defer root.Release()

	var buf bytes.Buffer
	printTree(&buf, root)
	got := idPattern.ReplaceAllString(buf.String(), "#")
	want := `# composition "title" start=0 duration=2000000 rate=60
  # solid "bg" start=0 duration=2000000 rate=60
  # text "caption" start=0 duration=2000000 rate=60 matte=#(alpha)
    matte # solid "mask" start=0 duration=2000000 rate=60
  # composition "inset" start=500000 duration=1000000 rate=30
    # solid "dot" start=0 duration=1000000 rate=60
`
	if got != want {
		t.Errorf("printTree() =\n%s\nwant\n%s", got, want)
	}
}

func TestSampleFrames(t *testing.T) {
	doc := loadTitle(t)
	opts := sampleOptions{From: 0, To: 100000, Step: 2, Workers: 1, Sink: "commands"}

	serial, err := sampleFrames(context.Background(), doc, opts)
	if err != nil {
		t.Fatalf("sampleFrames() error = %v", err)
	}
	if len(serial) != 3 {
		t.Fatalf("sampleFrames() = %d lines, want 3: %q", len(serial), serial)
	}
	for i, prefix := range []string{"frame=0 time=0 ", "frame=2 ", "frame=4 "} {
		if !strings.HasPrefix(serial[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, serial[i], prefix)
		}
	}
	// The caption is transparent at frame 0, so only the background fills.
	if !strings.Contains(serial[0], "FillRect=1") || strings.Contains(serial[0], "BeginMatte") {
		t.Errorf("line 0 = %q, want a single fill and no matte", serial[0])
	}

	opts.Workers = 3
	parallel, err := sampleFrames(context.Background(), doc, opts)
	if err != nil {
		t.Fatalf("sampleFrames() with workers error = %v", err)
	}
	if strings.Join(parallel, "\n") != strings.Join(serial, "\n") {
		t.Errorf("parallel lines = %q, want %q", parallel, serial)
	}
}

func TestSampleFramesDefaults(t *testing.T) {
	doc := loadTitle(t)
	lines, err := sampleFrames(context.Background(), doc, sampleOptions{To: -1, Step: 30, Workers: 4, Sink: "discard"})
	if err != nil {
		t.Fatalf("sampleFrames() error = %v", err)
	}
	// Two seconds at 60 fps, every 30th frame.
	if len(lines) != 4 {
		t.Fatalf("sampleFrames() = %d lines, want 4: %q", len(lines), lines)
	}
	if !strings.HasSuffix(lines[3], "frame=90 time=1500000 drawn") {
		t.Errorf("last line = %q, want frame 90 drawn", lines[3])
	}
}

func TestSampleFramesErrors(t *testing.T) {
	doc := loadTitle(t)
	tests := []struct {
		name string
		opts sampleOptions
	}{
		{"zero step", sampleOptions{To: -1, Step: 0, Workers: 1, Sink: "commands"}},
		{"unknown sink", sampleOptions{To: -1, Step: 1, Workers: 1, Sink: "png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sampleFrames(context.Background(), doc, tt.opts); err == nil {
				t.Error("sampleFrames() error = nil, want error")
			}
		})
	}

	lines, err := sampleFrames(context.Background(), doc, sampleOptions{From: 5000000, To: -1, Step: 1, Sink: "commands"})
	if err != nil || len(lines) != 0 {
		t.Errorf("sampleFrames() past the end = %q, %v, want no lines", lines, err)
	}
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { motion.SetLogger(nil) })
	for _, level := range []string{"debug", "INFO", " warn ", "error"} {
		if err := setupLogging(level); err != nil {
			t.Errorf("setupLogging(%q) error = %v", level, err)
		}
	}
	if err := setupLogging("loud"); err == nil {
		t.Error("setupLogging(loud) error = nil, want error")
	}
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, b *syncBuffer, substr string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(b.String(), substr) {
		if time.Now().After(deadline) {
			t.Fatalf("output %q never contained %q", b.String(), substr)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWatchScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	write := func(name string) {
		t.Helper()
		doc := "width: 10\nheight: 10\nduration: 1000000\nlayers:\n  - name: " + name + "\n    kind: solid\n"
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("first")

	ctx, cancel := context.WithCancel(context.Background())
	var out, errOut syncBuffer
	done := make(chan error, 1)
	go func() { done <- watchScene(ctx, path, &out, &errOut) }()

	waitFor(t, &out, `"first"`)
	write("second")
	waitFor(t, &out, `"second"`)

	cancel()
	if err := <-done; err != nil {
		t.Errorf("watchScene() error = %v", err)
	}
}

func TestLoadSceneShaper(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "shaped.yaml")
	src := `width: 100
height: 100
duration: 1000000
layers:
  - {name: plain, kind: text, text: AV, fontSize: 40}
  - {name: file, kind: text, text: AV, fontSize: 40, font: go.ttf}
`
	if err := os.WriteFile(scene, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "go.ttf"), goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	shaper, err := text.NewGoTextLayouter()
	if err != nil {
		t.Fatalf("NewGoTextLayouter() error = %v", err)
	}
	shaped := shaper.Layout("AV", 40)
	cluster := text.NewClusterLayouter().Layout("AV", 40)

	tests := []struct {
		shaper string
		plain  []text.Glyph
	}{
		{"", cluster},
		{scenefile.LayouterCluster, cluster},
		{scenefile.LayouterShaped, shaped},
	}
	for _, tt := range tests {
		t.Run("shaper="+tt.shaper, func(t *testing.T) {
			viper.Set("shaper", tt.shaper)
			defer viper.Set("shaper", nil)

			root, err := loadScene(scene)
			if err != nil {
				t.Fatalf("loadScene() error = %v", err)
			}
			defer root.Release()
			for i, want := range [][]text.Glyph{tt.plain, shaped} {
				got := root.LayerAt(i).(*layer.TextLayer).GlyphStates(0)
				if len(got) != len(want) {
					t.Fatalf("layer %d: len(GlyphStates()) = %d, want %d", i, len(got), len(want))
				}
				for j := range got {
					if got[j].Position.X != want[j].X {
						t.Errorf("layer %d glyph %d: X = %v, want %v", i, j, got[j].Position.X, want[j].X)
					}
				}
			}
		})
	}

	viper.Set("shaper", "fancy")
	defer viper.Set("shaper", nil)
	if _, err := loadScene(scene); !errors.Is(err, scenefile.ErrUnknownLayouter) {
		t.Errorf("loadScene(shaper=fancy) error = %v, want ErrUnknownLayouter", err)
	}
}
