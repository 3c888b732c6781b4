/*
 * plot_test.go, part of goBasis.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package basisplot

import (
	"fmt"
	"math"
	"os"
	"testing"

	basis "github.com/rmera/gobasis"
	"github.com/rmera/gobasis/nwchem"
)

func TestRadial(Te *testing.T) {
	s, err := basis.NewShell("Na", "D")
	if err != nil {
		Te.Fatal(err)
	}
	if err := s.AddPrimitive(0.175, 1.0); err != nil {
		Te.Fatal(err)
	}
	//for L>0 the radial function vanishes at the origin
	if v := Radial(s, 0); v != 0 {
		Te.Errorf("D function at r=0: %v", v)
	}
	//a single primitive at r=1 is just N * r^2 * exp(-a)
	want := basis.PrimNorm(0.175, 2) * math.Exp(-0.175)
	if v := Radial(s, 1.0); math.Abs(v-want) > 1e-12 {
		Te.Errorf("Radial(s,1) = %v, want %v", v, want)
	}
}

func TestRadialPlot(Te *testing.T) {
	b, err := nwchem.FileRead("../test/pople-fragment.dat")
	if err != nil {
		Te.Fatal(err)
	}
	shells, err := b.ShellsOf("C")
	if err != nil {
		Te.Fatal(err)
	}
	name := "../test/carbon-radial"
	err = RadialPlot(shells, 8.0, "C 6-31G radial functions", name)
	if err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error("RadialPlot did not write the png file")
	}
	fmt.Println("Plot written to", name+".png")
}

func TestRadialPlotBadRange(Te *testing.T) {
	s, err := basis.NewShell("H", "S")
	if err != nil {
		Te.Fatal(err)
	}
	if err := s.AddPrimitive(1.3, 1.0); err != nil {
		Te.Fatal(err)
	}
	if err := RadialPlot([]*basis.Shell{s}, 0, "bad", "nope"); err == nil {
		Te.Error("RadialPlot accepted a non-positive rmax")
	}
}
