// seehuhn.de/go/scanfill - scanline polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command scanfill fills a polygon and writes the coverage as an image.
//
// The polygon is either one of the built-in test cases (see "scanfill
// list") or a JSON file as written by testcases/export.
package main

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/tdewolff/argp"

	"seehuhn.de/go/scanfill"
	"seehuhn.de/go/scanfill/encode"
	"seehuhn.de/go/scanfill/testcases"
)

// defaultFixture is the polygon rendered when no input is given.
const defaultFixture = "fill_star"

var stdout io.Writer = os.Stdout

type Render struct {
	Fixture   string `short:"f" desc:"Built-in test case, e.g. fill_triangle"`
	Width     int    `desc:"Canvas width (default: from input)"`
	Height    int    `desc:"Canvas height (default: from input)"`
	Subsample int    `short:"s" desc:"Sub-scanlines per row (default: from input)"`
	Workers   int    `short:"j" default:"1" desc:"Row groups filled in parallel"`
	Edges     bool   `short:"e" desc:"Draw the edges in blue over the fill"`
	Verbose   bool   `short:"v" desc:"Print the edge list"`
	Output    string `short:"o" default:"scanline.png" desc:"Output file (.png, .tif, .bmp)"`
	Input     string `index:"0" desc:"Polygon JSON file"`
}

type List struct{}

func main() {
	root := argp.NewCmd(&Render{}, "Scanline polygon filling with the nonzero winding rule")
	root.AddCmd(&List{}, "list", "List the built-in test cases")
	root.Parse()
	root.PrintHelp()
}

func (cmd *List) Run() error {
	for _, name := range testcases.Names() {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

func (cmd *Render) Run() error {
	tc, err := cmd.load()
	if err != nil {
		return err
	}
	if cmd.Width != 0 {
		tc.Width = cmd.Width
	}
	if cmd.Height != 0 {
		tc.Height = cmd.Height
	}
	if cmd.Subsample != 0 {
		tc.Subsample = cmd.Subsample
	}

	r, err := scanfill.NewRasteriser(tc.Width, tc.Height)
	if err != nil {
		return err
	}
	r.Transform = scanfill.ExampleTransform(tc)
	r.Workers = cmd.Workers

	edges := r.Edges(tc.Polygon)
	if cmd.Verbose {
		for i := range edges {
			e := &edges[i]
			fmt.Fprintf(stdout, "(%f, %f) - (%f, %f) - %t\n", e.X0, e.Y0, e.X1, e.Y1, e.Invert)
		}
	}

	canvas, err := scanfill.NewCanvas(tc.Width, tc.Height)
	if err != nil {
		return err
	}
	rep, err := r.FillSorted(edges, canvas.SetRow)
	if err != nil {
		return err
	}
	if rep.SkippedEdges > 0 {
		fmt.Fprintf(stdout, "warning: %d of %d edges skipped\n", rep.SkippedEdges, rep.Edges)
	}

	if !cmd.Edges {
		return encode.WriteFile(cmd.Output, canvas.Gray())
	}

	rgb, err := scanfill.NewRGBCanvas(tc.Width, tc.Height)
	if err != nil {
		return err
	}
	for y := range tc.Height {
		for x := range tc.Width {
			c := canvas.At(x, y)
			rgb.SetRGB(x, y, color.RGBA{R: c, G: c, B: c, A: 255})
		}
	}
	rgb.DrawEdges(edges, r.Subsample, scanfill.Blue)
	return encode.WriteFile(cmd.Output, rgb.Image())
}

// load returns the polygon selected by the command line.
func (cmd *Render) load() (testcases.TestCase, error) {
	if cmd.Input != "" {
		if cmd.Fixture != "" {
			return testcases.TestCase{}, fmt.Errorf("give either a fixture or an input file, not both")
		}
		f, err := os.Open(cmd.Input)
		if err != nil {
			return testcases.TestCase{}, err
		}
		defer f.Close()
		return testcases.ReadJSON(f)
	}

	name := cmd.Fixture
	if name == "" {
		name = defaultFixture
	}
	tc, ok := testcases.Lookup(name)
	if !ok {
		return testcases.TestCase{}, fmt.Errorf("unknown test case %q", name)
	}
	return tc, nil
}
