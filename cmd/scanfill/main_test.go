package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"seehuhn.de/go/scanfill/testcases"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	old := stdout
	stdout = buf
	t.Cleanup(func() { stdout = old })
	return buf
}

func readPNG(t *testing.T, name string) image.Image {
	t.Helper()
	f, err := os.Open(name)
	test.Error(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	test.Error(t, err)
	return img
}

func TestList(t *testing.T) {
	buf := captureStdout(t)
	test.Error(t, (&List{}).Run())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	test.T(t, lines, testcases.Names())
}

func TestRenderFixture(t *testing.T) {
	buf := captureStdout(t)
	out := filepath.Join(t.TempDir(), "triangle.png")
	cmd := &Render{
		Fixture: "fill_triangle",
		Workers: 3,
		Verbose: true,
		Output:  out,
	}
	test.Error(t, cmd.Run())

	// two edges, the base is horizontal
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	test.T(t, len(lines), 2)
	test.That(t, strings.HasSuffix(lines[0], "true") != strings.HasSuffix(lines[1], "true"), buf.String())

	img, ok := readPNG(t, out).(*image.Gray)
	test.That(t, ok, "not a grayscale image")
	test.T(t, img.Bounds(), image.Rect(0, 0, 256, 256))
	test.T(t, img.GrayAt(110, 100).Y, uint8(255))
	test.T(t, img.GrayAt(10, 10).Y, uint8(0))
}

func TestRenderEdges(t *testing.T) {
	captureStdout(t)
	out := filepath.Join(t.TempDir(), "star.png")
	cmd := &Render{
		Edges:  true,
		Output: out,
	}
	test.Error(t, cmd.Run())

	img := readPNG(t, out)
	test.T(t, img.Bounds(), image.Rect(0, 0, 256, 256))

	// the top point of the star is drawn in blue
	r, g, b, _ := img.At(128, 20).RGBA()
	test.T(t, [3]uint32{r, g, b}, [3]uint32{0, 0, 0xffff})
}

func TestRenderInput(t *testing.T) {
	captureStdout(t)
	dir := t.TempDir()

	tc, _ := testcases.Lookup("fill_rectangle")
	data, err := json.Marshal(testcases.ToJSON("fill_rectangle", tc))
	test.Error(t, err)
	in := filepath.Join(dir, "rect.json")
	test.Error(t, os.WriteFile(in, data, 0o644))

	out := filepath.Join(dir, "rect.png")
	cmd := &Render{
		Input:     in,
		Width:     50,
		Height:    40,
		Subsample: 2,
		Output:    out,
	}
	test.Error(t, cmd.Run())

	img := readPNG(t, out).(*image.Gray)
	test.T(t, img.Bounds(), image.Rect(0, 0, 50, 40))
	test.T(t, img.GrayAt(20, 20).Y, uint8(254))
	test.T(t, img.GrayAt(45, 20).Y, uint8(0))
}

func TestRenderErrors(t *testing.T) {
	captureStdout(t)
	dir := t.TempDir()

	err := (&Render{Fixture: "fill_nothing", Output: filepath.Join(dir, "a.png")}).Run()
	test.That(t, err != nil, "unknown fixture accepted")

	err = (&Render{Fixture: "fill_star", Input: "x.json", Output: filepath.Join(dir, "b.png")}).Run()
	test.That(t, err != nil, "fixture and input accepted together")

	err = (&Render{Input: filepath.Join(dir, "missing.json"), Output: filepath.Join(dir, "c.png")}).Run()
	test.That(t, err != nil, "missing input accepted")

	err = (&Render{Output: filepath.Join(dir, "d.jpg")}).Run()
	test.That(t, err != nil, "unknown output format accepted")
}
