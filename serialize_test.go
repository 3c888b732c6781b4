/*
 * serialize_test.go, part of goBasis.
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

package basis

import (
	"fmt"
	"strings"
	"testing"
)

func TestNWChemString(Te *testing.T) {
	b := NewBasisSet("ao basis")
	b.AddShell(mustShell(Te, "Na", "D", [2]float64{0.175, 1.0}))
	out := b.NWChemString()
	fmt.Println(out)
	want := "BASIS \"ao basis\" PRINT\n" +
		"#BASIS SET: (1d) -> [1d]\n" +
		"Na    D\n" +
		"    0.175000000     1.000000000\n" +
		"END\n"
	if out != want {
		Te.Errorf("Wrong NWChem output.\nGot:\n%q\nWant:\n%q", out, want)
	}
}

func TestContractionSummary(Te *testing.T) {
	b := NewBasisSet("")
	b.AddShell(mustShell(Te, "C", "S",
		[2]float64{3047.5249, 0.0018347},
		[2]float64{457.36951, 0.0140373},
		[2]float64{103.94869, 0.0688426}))
	b.AddShell(mustShell(Te, "C", "S", [2]float64{0.1687144, 1.0}))
	b.AddShell(mustShell(Te, "C", "P", [2]float64{0.1687144, 1.0}))
	shells, err := b.ShellsOf("C")
	if err != nil {
		Te.Error(err)
	}
	got := contractionSummary(shells)
	if got != "(4s,1p) -> [2s,1p]" {
		Te.Errorf("Wrong summary: %q", got)
	}
}

func TestWriteNWChemDefaults(Te *testing.T) {
	b := NewBasisSet("") //an empty name falls back to the conventional one
	if b.Name != "ao basis" {
		Te.Errorf("Empty name not normalized: %q", b.Name)
	}
	b.AddShell(mustShell(Te, "H", "S", [2]float64{1.3, 1.0}))
	var sb strings.Builder
	if err := WriteNWChem(&sb, b); err != nil {
		Te.Error(err)
	}
	if !strings.HasPrefix(sb.String(), "BASIS \"ao basis\" PRINT\n") {
		Te.Errorf("Wrong header: %q", sb.String())
	}
	if !strings.HasSuffix(sb.String(), "END\n") {
		Te.Errorf("Missing terminator: %q", sb.String())
	}
}
