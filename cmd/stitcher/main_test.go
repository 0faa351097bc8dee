package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/imageworks/stitcher/internal/imaging"
)

func writeTile(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	if err := run(out, nil); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Error("expected usage text on stdout")
	}
}

func TestRun_ParseError(t *testing.T) {
	err := run(&bytes.Buffer{}, []string{"--top-left", "only.png"})
	if err == nil {
		t.Fatal("expected an error for a partial corner set")
	}
}

func TestRun_StitchesConventionSet(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "artwork")
	writeTile(t, base+"-tl.png", 2, 2, color.NRGBA{255, 0, 0, 255})
	writeTile(t, base+"-tr.png", 2, 2, color.NRGBA{0, 255, 0, 255})
	writeTile(t, base+"-bl.png", 2, 2, color.NRGBA{0, 0, 255, 255})
	writeTile(t, base+"-br.png", 2, 2, color.NRGBA{255, 255, 0, 255})

	if err := run(&bytes.Buffer{}, []string{"--using", base}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(base + "-out.png"); err != nil {
		t.Errorf("expected %s-out.png to exist: %v", base, err)
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()

	err := run(&bytes.Buffer{}, []string{"--using", filepath.Join(dir, "nope")})
	if !errors.Is(err, imaging.ErrDecode) {
		t.Errorf("got %v, want decode error", err)
	}
}
