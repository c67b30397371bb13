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

// Package profile implements the -cpuprofile and -memprofile options of
// the command line tools.
package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Start begins CPU profiling if cpuprofile is non-empty.
//
// The returned function stops CPU profiling and, if memprofile is
// non-empty, writes an allocation profile.  Problems during stop are
// reported on stderr.
func Start(cpuprofile, memprofile string) (stop func(), err error) {
	var cpuFile *os.File
	if cpuprofile != "" {
		cpuFile, err = os.Create(cpuprofile)
		if err != nil {
			return nil, fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err = pprof.StartCPUProfile(cpuFile); err != nil {
			cpuFile.Close()
			return nil, fmt.Errorf("could not start CPU profile: %w", err)
		}
	}

	stop = func() {
		if cpuFile != nil {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}
		if memprofile == "" {
			return
		}
		if err := writeAllocs(memprofile); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return stop, nil
}

func writeAllocs(fname string) error {
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		return fmt.Errorf("could not look up memory profile")
	}

	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	runtime.GC()
	err = allocs.WriteTo(f, 0)
	if err != nil {
		f.Close()
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	return f.Close()
}
