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

// Stage identifies a step of the glyph map generation.
type Stage int

// These are the stages reported in a [GenerationError].
const (
	StageLoad   Stage = iota + 1 // reading and parsing the font file
	StageSelect                  // choosing a character map
	StageRender                  // assembling the HTML page
	StageWrite                   // writing the output file
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "cannot load font"
	case StageSelect:
		return "cannot select cmap"
	case StageRender:
		return "cannot render page"
	case StageWrite:
		return "cannot write output"
	default:
		return "glyph map generation failed"
	}
}

// GenerationError is returned when a glyph map cannot be generated.
type GenerationError struct {
	Stage Stage
	Path  string // the file being read or written, if known
	Err   error
}

func (err *GenerationError) Error() string {
	msg := err.Stage.String()
	if err.Path != "" {
		msg += " " + err.Path
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *GenerationError) Unwrap() error {
	return err.Err
}
