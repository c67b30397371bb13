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

// Package sheet renders glyph maps as standalone HTML pages.
//
// A page shows one tile for every character of a font.  Hovering over a
// tile shows the glyph name, clicking on a tile copies the character to the
// clipboard.  The font file is embedded in the page as a data URL, so that
// the page has no external dependencies.
package sheet

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"
	"text/template"
)

// Sheet describes a glyph map page.
type Sheet struct {
	Title      string
	FontFamily string // CSS font family name used for the embedded font

	// FontFormat is the CSS font format, either "truetype" or "opentype".
	FontFormat string
	FontData   []byte

	// FontSize is the size of the glyphs on the tiles, in CSS pixels.
	FontSize int

	Tiles []Tile
}

// Tile is a single cell of the glyph map.
type Tile struct {
	Codepoint rune
	Label     string // shown when hovering over the tile
}

// MediaType returns the media type used in the data URL for the font.
func (s *Sheet) MediaType() string {
	if s.FontFormat == "opentype" {
		return "font/otf"
	}
	return "font/ttf"
}

// FontURL returns the data URL which embeds the font into the page.
func (s *Sheet) FontURL() string {
	return "data:" + s.MediaType() + ";base64," + base64.StdEncoding.EncodeToString(s.FontData)
}

// Write renders the page as HTML.
func (s *Sheet) Write(w io.Writer) error {
	return s.render(w, s.FontURL())
}

// Bytes returns the HTML for the page.
func (s *Sheet) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := s.Write(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Sheet) render(w io.Writer, fontURL string) error {
	if len(s.FontData) == 0 {
		return errNoFontData
	}
	if s.FontSize <= 0 {
		return errFontSize
	}

	format := s.FontFormat
	switch format {
	case "":
		format = "truetype"
	case "truetype", "opentype":
		// pass
	default:
		return &FontFormatError{Format: format}
	}
	args := &pageArgs{
		Sheet:   s,
		Format:  format,
		FontURL: fontURL,
	}
	return pageTmpl.Execute(w, args)
}

type pageArgs struct {
	*Sheet
	Format  string
	FontURL string
}

// FontFormatError is returned when a [Sheet] has a font format other than
// "truetype" or "opentype".
type FontFormatError struct {
	Format string
}

func (err *FontFormatError) Error() string {
	return fmt.Sprintf("sheet: unsupported font format %q", err.Format)
}

var (
	errNoFontData = errors.New("sheet: missing font data")
	errFontSize   = errors.New("sheet: font size must be positive")
)

// cssString quotes s for use as a CSS string.
func cssString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `, "<", `\3c `)
	return `"` + r.Replace(s) + `"`
}

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"attr": html.EscapeString,
	"css":  cssString,
}).Parse(pageHTML))

const pageHTML = `<!doctype html>
<meta charset="utf-8">
<title>{{attr .Title}}</title>
<style>
@font-face {
  font-family: {{css .FontFamily}};
  src: url("{{.FontURL}}") format("{{.Format}}");
}
:root {
  --bg: #121212;
  --fg: #d0d0d0;
  --tile: #e5e5e5;
  --tile-hover: #d6d6d6;
  --border: #2a2a2a;
}
* { box-sizing: border-box; }
body {
  margin: 10px;
  background: var(--bg);
  color: var(--fg);
  font-family: system-ui, -apple-system, Segoe UI, Roboto, Ubuntu, "Noto Sans", Arial, sans-serif;
}
.wrap {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(40px, 1fr));
  gap: 6px;
}
.cell {
  display: flex;
  align-items: center;
  justify-content: center;
  height: 44px;
  border: 1px solid var(--border);
  border-radius: 8px;
  background: var(--tile);
  cursor: pointer;
  padding: 0;
  outline: none;
}
.cell:hover { background: var(--tile-hover); }
.cell:active { filter: brightness(0.95); }
.glyph {
  font-family: {{css .FontFamily}};
  font-size: {{.FontSize}}px;
  line-height: 1;
  color: #000;
}
.header {
  margin: 0 0 10px 0;
  font-size: 12px;
  color: #9aa0a6;
}
</style>
<div class="header">Hover shows glyph name. Click copies the character.</div>
<div class="wrap">
{{- range .Tiles}}
<button class="cell" onclick="copyCP(0x{{printf "%X" .Codepoint}})" title="{{attr .Label}}">
  <span class="glyph">&#x{{printf "%X" .Codepoint}};</span>
</button>
{{- end}}
</div>
<script>
async function copy(txt) {
  try {
    await navigator.clipboard.writeText(txt);
  } catch (e) {
    const ta = document.createElement('textarea');
    ta.value = txt;
    ta.setAttribute('readonly', '');
    ta.style.position = 'fixed';
    ta.style.opacity = '0';
    document.body.appendChild(ta);
    try {
      ta.select();
      document.execCommand('copy');
    } catch (e2) {
      // nothing we can do
    } finally {
      ta.remove();
    }
  }
}
function copyCP(cp) {
  copy(String.fromCodePoint(cp));
}
</script>
`
