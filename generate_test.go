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

package glyphmap

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	tileRegexp = regexp.MustCompile(`<button class="cell" onclick="copyCP\(0x([0-9A-F]+)\)" title="([^"]*)">`)
	fontRegexp = regexp.MustCompile(`url\("?data:font/ttf;base64,([A-Za-z0-9+/=]*)"?\)`)
)

type tile struct {
	Codepoint rune
	Title     string
}

// tiles extracts the tiles from a rendered page.
func tiles(t *testing.T, page []byte) []tile {
	t.Helper()
	var res []tile
	for _, m := range tileRegexp.FindAllSubmatch(page, -1) {
		cp, err := strconv.ParseInt(string(m[1]), 16, 32)
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, tile{Codepoint: rune(cp), Title: string(m[2])})
	}
	return res
}

var fakeFont = []byte("\x00\x01\x00\x00 not really a font \xff\xfe")

func TestBuildFormat4(t *testing.T) {
	src := &testSource{subtables: []testSubtable{
		sub(4, 3, 1, Mapping{0x41: "A", 0x1F600: "emoji"}),
	}}
	doc, err := Build(src, fakeFont, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []tile{
		{0x41, "A"},
		{0x1F600, "emoji"},
	}
	if d := cmp.Diff(want, tiles(t, doc.HTML)); d != "" {
		t.Errorf("wrong tiles (-want +got):\n%s", d)
	}
	if doc.Tiles != 2 {
		t.Errorf("doc.Tiles = %d, want 2", doc.Tiles)
	}
	if !bytes.Contains(doc.HTML, []byte(`&#x1F600;`)) {
		t.Error("glyph for U+1F600 not found")
	}
	wantSub := SubtableInfo{Format: 4, PlatformID: 3, EncodingID: 1}
	if doc.Selection.Subtable != wantSub {
		t.Errorf("selected %v, want %v", doc.Selection.Subtable, wantSub)
	}
}

func TestBuildSurrogates(t *testing.T) {
	src := &testSource{subtables: []testSubtable{
		sub(12, 3, 10, Mapping{0xD800: "x", 0x41: ""}),
	}}
	doc, err := Build(src, fakeFont, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []tile{{0x41, "U+0041"}}
	if d := cmp.Diff(want, tiles(t, doc.HTML)); d != "" {
		t.Errorf("wrong tiles (-want +got):\n%s", d)
	}
	if bytes.Contains(doc.HTML, []byte("D800")) {
		t.Error("surrogate code point included in output")
	}
}

func TestBuildEscaping(t *testing.T) {
	src := &testSource{subtables: []testSubtable{
		sub(4, 3, 1, Mapping{'<': `<a&b>"'`}),
	}}
	opt := &Options{Title: "Fish & Chips <3"}
	doc, err := Build(src, fakeFont, opt)
	if err != nil {
		t.Fatal(err)
	}

	want := []tile{{'<', "&lt;a&amp;b&gt;&#34;&#39;"}}
	if d := cmp.Diff(want, tiles(t, doc.HTML)); d != "" {
		t.Errorf("wrong tiles (-want +got):\n%s", d)
	}
	if !bytes.Contains(doc.HTML, []byte("<title>Fish &amp; Chips &lt;3</title>")) {
		t.Error("title not escaped")
	}
}

func TestBuildEmbedsFont(t *testing.T) {
	src := &testSource{subtables: []testSubtable{
		sub(4, 3, 1, Mapping{'A': "A"}),
	}}
	doc, err := Build(src, fakeFont, nil)
	if err != nil {
		t.Fatal(err)
	}

	if n := bytes.Count(doc.HTML, []byte("base64,")); n != 1 {
		t.Fatalf("found %d data URLs, want 1", n)
	}
	m := fontRegexp.FindSubmatch(doc.HTML)
	if m == nil {
		t.Fatal("font data URL not found")
	}
	data, err := base64.StdEncoding.DecodeString(string(m[1]))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, fakeFont) {
		t.Error("embedded font data differs from input")
	}
}

func TestBuildDefaults(t *testing.T) {
	src := &testSource{subtables: []testSubtable{
		sub(4, 3, 1, Mapping{'A': "A"}),
	}}
	doc, err := Build(src, fakeFont, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"<title>" + DefaultTitle + "</title>",
		`font-family: "` + DefaultFontFamily + `";`,
		"font-size: " + strconv.Itoa(DefaultFontSize) + "px;",
		`format("truetype")`,
		"String.fromCodePoint",
		"textarea",
	} {
		if !bytes.Contains(doc.HTML, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	m1 := Mapping{}
	m2 := Mapping{}
	for cp := rune(0x20); cp < 0x300; cp++ {
		m1[cp] = "g" + strconv.Itoa(int(cp))
	}
	for cp := rune(0x2FF); cp >= 0x20; cp-- {
		m2[cp] = "g" + strconv.Itoa(int(cp))
	}

	var pages [][]byte
	for _, m := range []Mapping{m1, m2, m1} {
		src := &testSource{subtables: []testSubtable{
			sub(4, 0, 3, m),
			sub(4, 3, 1, Mapping{'A': "A"}),
		}}
		doc, err := Build(src, fakeFont, nil)
		if err != nil {
			t.Fatal(err)
		}
		pages = append(pages, doc.HTML)
	}
	for i := 1; i < len(pages); i++ {
		if !bytes.Equal(pages[0], pages[i]) {
			t.Errorf("output %d differs from output 0", i)
		}
	}
}

func TestBuildMinify(t *testing.T) {
	src := &testSource{subtables: []testSubtable{
		sub(4, 3, 1, Mapping{'A': "A", 'B': "B"}),
	}}
	plain, err := Build(src, fakeFont, nil)
	if err != nil {
		t.Fatal(err)
	}
	small, err := Build(src, fakeFont, &Options{Minify: true})
	if err != nil {
		t.Fatal(err)
	}

	if len(small.HTML) >= len(plain.HTML) {
		t.Errorf("minified output has %d bytes, plain output %d", len(small.HTML), len(plain.HTML))
	}
	if !bytes.Contains(small.HTML, []byte("copyCP")) {
		t.Error("minified output lost the copy function")
	}
	if small.Tiles != plain.Tiles {
		t.Errorf("tile count changed from %d to %d", plain.Tiles, small.Tiles)
	}
	m := fontRegexp.FindSubmatch(small.HTML)
	if m == nil {
		t.Fatal("font data URL not found in minified output")
	}
	data, err := base64.StdEncoding.DecodeString(string(m[1]))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, fakeFont) {
		t.Error("minified output changed the embedded font")
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(&testSource{}, fakeFont, nil)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Stage != StageSelect {
		t.Errorf("stage = %v, want %v", genErr.Stage, StageSelect)
	}
	if !errors.Is(err, ErrNoCMap) {
		t.Errorf("error %q does not wrap ErrNoCMap", err)
	}

	src := &testSource{subtables: []testSubtable{
		sub(4, 3, 1, Mapping{'A': "A"}),
	}}
	_, err = Build(src, nil, nil)
	if !errors.As(err, &genErr) || genErr.Stage != StageRender {
		t.Errorf("expected render error, got %v", err)
	}
}

func TestGenerationErrorMessage(t *testing.T) {
	cause := errors.New("boom")
	cases := []struct {
		err  *GenerationError
		want string
	}{
		{&GenerationError{Stage: StageLoad, Path: "a.ttf", Err: cause}, "cannot load font a.ttf: boom"},
		{&GenerationError{Stage: StageSelect, Err: cause}, "cannot select cmap: boom"},
		{&GenerationError{Stage: StageWrite, Path: "out.html"}, "cannot write output out.html"},
	}
	for _, test := range cases {
		if got := test.err.Error(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
		if test.err.Err != nil && !errors.Is(test.err, cause) {
			t.Errorf("%q does not wrap its cause", test.err)
		}
	}
}

func TestWriteFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.html")
	err := os.WriteFile(fname, []byte(strings.Repeat("old content\n", 1000)), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	doc := &Document{HTML: []byte("<!doctype html>\n")}
	err = doc.WriteFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, doc.HTML) {
		t.Errorf("file contains %q, want %q", got, doc.HTML)
	}

	err = doc.WriteFile(filepath.Join(t.TempDir(), "missing", "out.html"))
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Stage != StageWrite {
		t.Errorf("expected write error, got %v", err)
	}
}
