/*
 * basis.go, part of goBasis.
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
	"math"
	"sort"
)

//MaxL is the highest angular momentum supported, as an L quantum number.
//The letters go S, P, D, F, G, H, I, J, so MaxL corresponds to a J shell.
const MaxL = 7

var lLetters = [MaxL + 1]string{"S", "P", "D", "F", "G", "H", "I", "J"}

var letter2L = map[string]int{
	"S": 0,
	"P": 1,
	"D": 2,
	"F": 3,
	"G": 4,
	"H": 5,
	"I": 6,
	"J": 7,
}

//LFromLetter returns the L quantum number for an angular momentum letter
//(upper case), and whether the letter is a valid one.
func LFromLetter(letter string) (int, bool) {
	l, ok := letter2L[letter]
	return l, ok
}

//LetterFromL returns the angular momentum letter for the quantum number l.
//It panics if l is out of range, as that means the program is using the
//library wrong and should crash.
func LetterFromL(l int) string {
	if l < 0 || l > MaxL {
		panic(fmt.Sprintf("Angular momentum out of range: %d", l))
	}
	return lLetters[l]
}

//Primitive is a single Gaussian primitive, an (exponent, coefficient) pair
//belonging to one contracted shell. The coefficient is the contraction weight,
//it can be zero or negative. The exponent must be positive.
type Primitive struct {
	Exp   float64
	Coeff float64
}

//Copy returns a copy of the primitive.
func (P *Primitive) Copy() *Primitive {
	if P == nil {
		panic("Attempted to copy a nil primitive")
	}
	return &Primitive{Exp: P.Exp, Coeff: P.Coeff}
}

//Shell is one contraction group: the primitives sharing one angular momentum
//for one element. An element may own several shells of the same angular
//momentum (distinct contraction groups), so (Symbol, L) is not a unique key.
type Shell struct {
	Symbol string //chemical element symbol, case sensitive ("Na", not "NA")
	L      int
	Prims  []*Primitive
}

//NewShell returns a shell for the given element symbol and angular momentum
//letter, with no primitives. It fails if the symbol is not a known element
//or the letter is not a valid angular momentum.
func NewShell(symbol, letter string) (*Shell, error) {
	if !KnownElement(symbol) {
		return nil, NewInvalidSymbolError(symbol, "NewShell")
	}
	l, ok := LFromLetter(letter)
	if !ok {
		err := new(CError)
		err.msg = fmt.Sprintf("Not a valid angular momentum letter: %q", letter)
		err.Decorate("NewShell")
		return nil, err
	}
	return &Shell{Symbol: symbol, L: l}, nil
}

/*Shell methods*/

//Letter returns the angular momentum letter of the shell.
func (S *Shell) Letter() string {
	return LetterFromL(S.L)
}

//Len returns the number of primitives in the shell.
func (S *Shell) Len() int {
	return len(S.Prims)
}

//AddPrimitive appends an (exponent, coefficient) pair to the shell, in
//declaration order. The exponent must be a positive, finite number and the
//coefficient a finite number. Values are stored verbatim, no normalization
//or scaling is applied.
func (S *Shell) AddPrimitive(exp, coeff float64) error {
	if math.IsNaN(exp) || math.IsInf(exp, 0) || exp <= 0 {
		err := new(CError)
		err.msg = fmt.Sprintf("Exponent must be positive and finite, got %v", exp)
		err.Decorate("AddPrimitive")
		return err
	}
	if math.IsNaN(coeff) || math.IsInf(coeff, 0) {
		err := new(CError)
		err.msg = fmt.Sprintf("Coefficient must be finite, got %v", coeff)
		err.Decorate("AddPrimitive")
		return err
	}
	S.Prims = append(S.Prims, &Primitive{Exp: exp, Coeff: coeff})
	return nil
}

//Copy returns a deep copy of the shell.
func (S *Shell) Copy() *Shell {
	if S == nil {
		panic("Attempted to copy a nil shell")
	}
	ns := &Shell{Symbol: S.Symbol, L: S.L}
	ns.Prims = make([]*Primitive, 0, len(S.Prims))
	for _, p := range S.Prims {
		ns.Prims = append(ns.Prims, p.Copy())
	}
	return ns
}

//Equal returns true if both shells have the same element, angular momentum
//and primitives, with exactly equal numeric values, in the same order.
func (S *Shell) Equal(S2 *Shell) bool {
	if S == nil || S2 == nil {
		return S == S2
	}
	if S.Symbol != S2.Symbol || S.L != S2.L || len(S.Prims) != len(S2.Prims) {
		return false
	}
	for i, p := range S.Prims {
		if p.Exp != S2.Prims[i].Exp || p.Coeff != S2.Prims[i].Coeff {
			return false
		}
	}
	return true
}

//String returns a one-line description of the shell, mostly for diagnostics.
func (S *Shell) String() string {
	return fmt.Sprintf("%s %s shell, %d primitives", S.Symbol, S.Letter(), len(S.Prims))
}

//BasisSet is a named collection of shells read from one BASIS block, in
//declaration order. It is built once, during parsing or explicit construction,
//and read-only afterwards.
type BasisSet struct {
	Name   string //the quoted name in the BASIS line, e.g. "ao basis"
	Shells []*Shell
}

//NewBasisSet returns an empty basis set with the given name. An empty name is
//replaced by the conventional "ao basis", so an unnamed set survives a write
//and re-read unchanged.
func NewBasisSet(name string) *BasisSet {
	if name == "" {
		name = "ao basis"
	}
	return &BasisSet{Name: name, Shells: make([]*Shell, 0, 10)}
}

/*BasisSet methods*/

//Len returns the number of shells in the set.
func (B *BasisSet) Len() int {
	return len(B.Shells)
}

//AddShell appends a shell to the set, keeping declaration order.
func (B *BasisSet) AddShell(S *Shell) {
	B.Shells = append(B.Shells, S)
}

//ShellsOf returns the shells belonging to the given element, in declaration
//order. The returned slice is a view, not a copy. It returns an
//UnknownElementError if the set has no shells for the element, and an
//InvalidSymbolError if the symbol is not a chemical element at all.
func (B *BasisSet) ShellsOf(symbol string) ([]*Shell, error) {
	if !KnownElement(symbol) {
		return nil, NewInvalidSymbolError(symbol, "ShellsOf")
	}
	ret := make([]*Shell, 0, 3)
	for _, s := range B.Shells {
		if s.Symbol == symbol {
			ret = append(ret, s)
		}
	}
	if len(ret) == 0 {
		return nil, NewUnknownElementError(symbol, "ShellsOf")
	}
	return ret, nil
}

//Elements returns the element symbols present in the set, in order of first
//appearance.
func (B *BasisSet) Elements() []string {
	ret := make([]string, 0, 5)
	seen := make(map[string]bool)
	for _, s := range B.Shells {
		if !seen[s.Symbol] {
			seen[s.Symbol] = true
			ret = append(ret, s.Symbol)
		}
	}
	return ret
}

//SortShells orders the shells by element (order of first appearance) and,
//within each element, by increasing angular momentum. The sort is stable, so
//shells with equal (element, L) keep their declaration order. Some integral
//codes expect this ordering. Note that this mutates the set, so it should
//only be called before the set is put to use.
func (B *BasisSet) SortShells() {
	rank := make(map[string]int)
	for i, el := range B.Elements() {
		rank[el] = i
	}
	sort.SliceStable(B.Shells, func(i, j int) bool {
		si, sj := B.Shells[i], B.Shells[j]
		if si.Symbol != sj.Symbol {
			return rank[si.Symbol] < rank[sj.Symbol]
		}
		return si.L < sj.L
	})
}

//Copy returns a deep copy of the basis set.
func (B *BasisSet) Copy() *BasisSet {
	if B == nil {
		panic("Attempted to copy a nil basis set")
	}
	nb := NewBasisSet(B.Name)
	for _, s := range B.Shells {
		nb.AddShell(s.Copy())
	}
	return nb
}

//Equal returns true if both sets have the same name and equal shells in the
//same order.
func (B *BasisSet) Equal(B2 *BasisSet) bool {
	if B == nil || B2 == nil {
		return B == B2
	}
	if B.Name != B2.Name || len(B.Shells) != len(B2.Shells) {
		return false
	}
	for i, s := range B.Shells {
		if !s.Equal(B2.Shells[i]) {
			return false
		}
	}
	return true
}
