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

package sheet

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	return m
}

// fontURLMarker stands in for the font data URL while the page is
// minified.  The CSS minifier re-encodes data URLs, and the marker is
// left alone.
const fontURLMarker = "glyphmapfontdata"

// MinifiedBytes returns the HTML for the page, with redundant white space
// and syntax removed from the markup, the style sheet and the script.
// The font data URL is kept in base64 encoding.
func (s *Sheet) MinifiedBytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := s.render(buf, fontURLMarker)
	if err != nil {
		return nil, err
	}
	page, err := newMinifier().Bytes("text/html", buf.Bytes())
	if err != nil {
		return nil, err
	}
	if n := bytes.Count(page, []byte(fontURLMarker)); n != 1 {
		return nil, fmt.Errorf("sheet: font URL occurs %d times in minified page", n)
	}
	return bytes.Replace(page, []byte(fontURLMarker), []byte(s.FontURL()), 1), nil
}
