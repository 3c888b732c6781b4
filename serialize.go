/*
 * serialize.go, part of goBasis.
 *
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
 *
 * goBasis is currently developed at the Universidad de Tarapaca (UTA)
 *
 */

package basis

import (
	"fmt"
	"io"
	"os"
	"strings"
)

//Writing of basis sets in the NWChem text format. The output is canonical:
//shells come out in their stored order, numbers as %15.9f, and reading the
//output back yields a basis set Equal to the original.

//contractionSummary returns the conventional "(3s,2p) -> [2s,1p]" description
//of an element's shells: total primitives per angular momentum on the left,
//contracted functions per angular momentum on the right.
func contractionSummary(shells []*Shell) string {
	nprims := make([]int, MaxL+1)
	nctrs := make([]int, MaxL+1)
	for _, s := range shells {
		nprims[s.L] += len(s.Prims)
		nctrs[s.L]++
	}
	left := make([]string, 0, 3)
	right := make([]string, 0, 3)
	for l := 0; l <= MaxL; l++ {
		if nctrs[l] == 0 {
			continue
		}
		letter := strings.ToLower(LetterFromL(l))
		left = append(left, fmt.Sprintf("%d%s", nprims[l], letter))
		right = append(right, fmt.Sprintf("%d%s", nctrs[l], letter))
	}
	return fmt.Sprintf("(%s) -> [%s]", strings.Join(left, ","), strings.Join(right, ","))
}

//NWChemString returns the basis set in NWChem text format, as a string.
func (B *BasisSet) NWChemString() string {
	var b strings.Builder
	name := B.Name
	if name == "" {
		name = "ao basis"
	}
	fmt.Fprintf(&b, "BASIS \"%s\" PRINT\n", name)
	summarized := make(map[string]bool)
	for _, s := range B.Shells {
		if !summarized[s.Symbol] {
			summarized[s.Symbol] = true
			els, _ := B.ShellsOf(s.Symbol) //can't fail, s.Symbol is in B
			fmt.Fprintf(&b, "#BASIS SET: %s\n", contractionSummary(els))
		}
		fmt.Fprintf(&b, "%-2s    %s\n", s.Symbol, s.Letter())
		for _, p := range s.Prims {
			fmt.Fprintf(&b, "%15.9f %15.9f\n", p.Exp, p.Coeff)
		}
	}
	b.WriteString("END\n")
	return b.String()
}

//WriteNWChem writes the basis set in NWChem text format to w.
func WriteNWChem(w io.Writer, B *BasisSet) error {
	_, err := io.WriteString(w, B.NWChemString())
	if err != nil {
		err2 := new(CError)
		err2.msg = err.Error()
		err2.Decorate("WriteNWChem")
		return err2
	}
	return nil
}

//WriteFile writes the basis set in NWChem text format to the named file.
func (B *BasisSet) WriteFile(name string) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := WriteNWChem(out, B); err != nil {
		return errDecorate(err, "WriteFile")
	}
	return nil
}
