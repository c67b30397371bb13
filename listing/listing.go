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

// Package listing prints the contents of a character map as plain text.
//
// Each line shows a codepoint, the glyph name and the Unicode name of the
// character:
//
//	U+0041    A         LATIN CAPITAL LETTER A
//	U+00C5  ! Aring2    LATIN CAPITAL LETTER A WITH RING ABOVE
//
// A "!" marks glyph names which, following the rules of the Adobe Glyph
// List, denote a different character than the one they are mapped from.
package listing

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/glyphmap"
)

// Options control the layout of a listing.
type Options struct {
	// Width, if positive, is the maximal number of characters per line.
	// Longer lines are truncated.
	Width int

	// Header, if non-empty, is printed as the first line.
	Header string
}

// Entry is one line of a listing.
type Entry struct {
	Codepoint rune
	GlyphName string // empty if the glyph has no name
	CharName  string // the Unicode name of the character
	Mismatch  bool   // the glyph name denotes a different character
}

// Entries returns the listing entries for all renderable codepoints in m,
// in increasing order.
func Entries(m glyphmap.Mapping) []Entry {
	codes := glyphmap.Codepoints(m)
	res := make([]Entry, len(codes))
	for i, cp := range codes {
		name := m[cp]
		res[i] = Entry{
			Codepoint: cp,
			GlyphName: name,
			CharName:  runenames.Name(cp),
			Mismatch:  isMismatch(name, cp),
		}
	}
	return res
}

// isMismatch checks whether the glyph name refers to a single character
// other than cp.  Names which don't decode to exactly one character, for
// example ligatures or names like "g123", are never reported.
func isMismatch(name string, cp rune) bool {
	if name == "" || name == ".notdef" {
		return false
	}
	rr := []rune(names.ToUnicode(name, ""))
	if len(rr) != 1 || rr[0] == utf8.RuneError {
		return false
	}
	return rr[0] != cp
}

// Write prints a listing of the character map m to w.
func Write(w io.Writer, m glyphmap.Mapping, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}

	entries := Entries(m)
	nameWidth := 1
	for _, e := range entries {
		nameWidth = max(nameWidth, utf8.RuneCountInString(e.GlyphName))
	}

	out := bufio.NewWriter(w)
	if opt.Header != "" {
		fmt.Fprintln(out, clip(opt.Header, opt.Width))
	}
	numMismatch := 0
	for _, e := range entries {
		mark := " "
		if e.Mismatch {
			mark = "!"
			numMismatch++
		}
		name := e.GlyphName
		if name == "" {
			name = "-"
		}
		line := fmt.Sprintf("%-8s %s %-*s  %s",
			glyphmap.CodeLabel(e.Codepoint), mark, nameWidth, name, e.CharName)
		fmt.Fprintln(out, clip(line, opt.Width))
	}
	fmt.Fprintln(out, clip(fmt.Sprintf("%d characters, %d mismatched glyph names",
		len(entries), numMismatch), opt.Width))
	return out.Flush()
}

// clip truncates s to at most width runes.
func clip(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	n := 0
	for i := range s {
		if n == width {
			return s[:i]
		}
		n++
	}
	return s
}
