// seehuhn.de/go/glyphmap - glyph maps for font files
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

// Glyphmap writes an HTML page which shows all characters of a font.
//
// Hovering over a character on the page shows the glyph name, clicking on
// a character copies it to the clipboard.  The font is embedded into the
// page, so the output file can be viewed on its own.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/glyphmap"
	"seehuhn.de/go/glyphmap/fontfile"
	"seehuhn.de/go/glyphmap/listing"
	"seehuhn.de/go/glyphmap/tools/internal/buildinfo"
	"seehuhn.de/go/glyphmap/tools/internal/profile"
)

const (
	defaultFont   = "CozetteVector.ttf"
	defaultOutput = "glyphmap.html"
)

var (
	outArg     = flag.String("o", defaultOutput, "write the glyph map to `file`")
	sizeArg    = flag.Int("size", glyphmap.DefaultFontSize, "glyph size in CSS `pixels`")
	familyArg  = flag.String("family", glyphmap.DefaultFontFamily, "CSS font family `name` for the embedded font")
	titleArg   = flag.String("title", glyphmap.DefaultTitle, "page title")
	minifyArg  = flag.Bool("minify", false, "minify the HTML output")
	listArg    = flag.Bool("list", false, "print the character map instead of writing HTML")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "glyphmap \u2014 show the characters of a font on a web page\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("glyphmap"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  glyphmap [options] [font.ttf]\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font.ttf   TrueType or OpenType font (default %s)\n\n", defaultFont)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  glyphmap\n")
		fmt.Fprintf(os.Stderr, "  glyphmap -o cozette.html -size 32 CozetteVector.ttf\n")
		fmt.Fprintf(os.Stderr, "  glyphmap -list NotoSans-Regular.ttf\n")
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	fontPath := defaultFont
	if flag.NArg() == 1 {
		fontPath = flag.Arg(0)
	}

	if *listArg {
		return list(os.Stdout, fontPath)
	}

	opt := &glyphmap.Options{
		FontSize:   *sizeArg,
		FontFamily: *familyArg,
		Title:      *titleArg,
		Minify:     *minifyArg,
	}
	return generate(os.Stdout, fontPath, *outArg, opt)
}

// generate writes the glyph map for fontPath to outPath and reports the
// output file on w.
func generate(w io.Writer, fontPath, outPath string, opt *glyphmap.Options) error {
	_, err := fontfile.Generate(fontPath, outPath, opt)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Wrote", outPath)
	return nil
}

func list(w io.Writer, fontPath string) error {
	font, _, err := fontfile.Load(fontPath)
	if err != nil {
		return err
	}
	sel, err := glyphmap.SelectCMap(font)
	if err != nil {
		return &glyphmap.GenerationError{Stage: glyphmap.StageSelect, Path: fontPath, Err: err}
	}

	opt := &listing.Options{
		Header: fmt.Sprintf("%s: %s, using %s", fontPath, font.Describe(), sel),
	}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		width, _, err := term.GetSize(fd)
		if err == nil {
			opt.Width = width
		}
	}
	return listing.Write(w, sel.Mapping, opt)
}
