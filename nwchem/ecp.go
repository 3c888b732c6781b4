/*
 * ecp.go, part of goBasis.
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

package nwchem

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	basis "github.com/rmera/gobasis"
)

//Reading of effective core potential blocks:
//
//	ECP
//	Na nelec 10
//	Na ul
//	2     35.0516791            -47.4902024
//	Na S
//	0    243.3605846              3.0000000
//	END
//
//One ECP block can hold potentials for several elements; each header line
//carries the element it belongs to.

//parser states for an ECP read
const (
	awaitECP = iota
	inECP
	skipForeignBasis //inside a BASIS block of a mixed library file
)

//readAllECP is the state machine behind the ECP reading entry points.
func readAllECP(rd io.Reader, fname string) ([]*basis.ECP, error) {
	lines, err := tokenize(rd)
	if err != nil {
		return nil, err
	}
	state := awaitECP
	ecps := make([]*basis.ECP, 0, 1)
	index := make(map[string]*basis.ECP)
	var cur *basis.ECPChannel
	for _, l := range lines {
		f := strings.Fields(l.text)
		switch {
		case eqf(f[0], "END"):
			switch state {
			case inECP:
				cur = nil
				state = awaitECP
			case skipForeignBasis:
				state = awaitECP
			default:
				return nil, Error{StrayEnd, "", fname, l.num, l.text, nil}
			}
		case eqf(f[0], "ECP"):
			if state == inECP {
				return nil, Error{NestedBlock, "", fname, l.num, l.text, nil}
			}
			if state == skipForeignBasis {
				continue
			}
			state = inECP
		case eqf(f[0], "BASIS") && state == awaitECP:
			state = skipForeignBasis
		case state == skipForeignBasis:
			continue
		case state == awaitECP:
			if !leadsLetter(l.text) {
				return nil, Error{MalformedPrimitive, "potential data outside of an ECP block", fname, l.num, l.text, nil}
			}
			return nil, Error{StrayContent, "", fname, l.num, l.text, nil}
		case leadsLetter(l.text):
			e, c, err := ecpHeader(f, l, fname, index)
			if err != nil {
				return nil, err
			}
			if index[e.Symbol] == nil {
				index[e.Symbol] = e
				ecps = append(ecps, e)
			}
			cur = c
		default:
			if cur == nil {
				return nil, Error{MalformedPrimitive, "potential data with no open channel", fname, l.num, l.text, nil}
			}
			t, err := ecpTerm(f, l, fname)
			if err != nil {
				return nil, err
			}
			cur.Terms = append(cur.Terms, t)
		}
	}
	switch state {
	case inECP:
		return nil, UnterminatedError{"ECP", fname, nil}
	case skipForeignBasis:
		//the block left open is the foreign one
		return nil, UnterminatedError{"BASIS", fname, nil}
	}
	return ecps, nil
}

//ecpHeader classifies one ECP header line. The line either sets the core
//electron count (`Na nelec 10`) or opens a channel (`Na ul`, `Na S`). The
//returned channel is nil for a nelec line.
func ecpHeader(f []string, l line, fname string, index map[string]*basis.ECP) (*basis.ECP, *basis.ECPChannel, error) {
	symbol := f[0]
	e := index[symbol]
	if e == nil {
		var err error
		e, err = basis.NewECP(symbol)
		if err != nil {
			return nil, nil, errDecorate(err, fmt.Sprintf("readAllECP: %s line %d", fname, l.num))
		}
	}
	switch {
	case len(f) == 3 && eqf(f[1], "nelec"):
		n, err := strconv.Atoi(f[2])
		if err != nil || n < 0 {
			return nil, nil, Error{BadECPHeader, fmt.Sprintf("bad core electron count %q", f[2]), fname, l.num, l.text, nil}
		}
		e.NElec = n
		return e, nil, nil
	case len(f) == 2 && eqf(f[1], "ul"):
		c := &basis.ECPChannel{L: basis.ECPLocal}
		e.Channels = append(e.Channels, c)
		return e, c, nil
	case len(f) == 2:
		lq, ok := basis.LFromLetter(f[1])
		if !ok {
			return nil, nil, Error{BadECPHeader, fmt.Sprintf("not an angular momentum letter: %q", f[1]), fname, l.num, l.text, nil}
		}
		c := &basis.ECPChannel{L: lq}
		e.Channels = append(e.Channels, c)
		return e, c, nil
	}
	return nil, nil, Error{BadECPHeader, fmt.Sprintf("want element plus nelec/ul/letter, got %d fields", len(f)), fname, l.num, l.text, nil}
}

//ecpTerm parses one numeric row of a channel: r-power, exponent, coefficient.
func ecpTerm(f []string, l line, fname string) (*basis.ECPTerm, error) {
	if len(f) != 3 {
		return nil, Error{MalformedPrimitive, fmt.Sprintf("ECP rows need r-power, exponent and coefficient, got %d fields", len(f)), fname, l.num, l.text, nil}
	}
	rp, err := strconv.Atoi(f[0])
	if err != nil || rp < 0 {
		return nil, Error{MalformedPrimitive, fmt.Sprintf("bad r-power %q", f[0]), fname, l.num, l.text, nil}
	}
	exp, err := fortranFloat(f[1])
	if err != nil {
		return nil, Error{MalformedPrimitive, fmt.Sprintf("can't parse number %q", f[1]), fname, l.num, l.text, nil}
	}
	if math.IsNaN(exp) || math.IsInf(exp, 0) || exp <= 0 {
		return nil, Error{MalformedPrimitive, fmt.Sprintf("exponent must be positive and finite, got %v", exp), fname, l.num, l.text, nil}
	}
	coeff, err := fortranFloat(f[2])
	if err != nil {
		return nil, Error{MalformedPrimitive, fmt.Sprintf("can't parse number %q", f[2]), fname, l.num, l.text, nil}
	}
	if math.IsNaN(coeff) || math.IsInf(coeff, 0) {
		return nil, Error{MalformedPrimitive, fmt.Sprintf("coefficient must be finite, got %v", coeff), fname, l.num, l.text, nil}
	}
	return &basis.ECPTerm{RPower: rp, Exp: exp, Coeff: coeff}, nil
}

//ReadECP reads every ECP block from r. The returned ECPs are in order of
//first appearance of each element. BASIS blocks in the input are skipped.
func ReadECP(r io.Reader) ([]*basis.ECP, error) {
	return readAllECP(r, "")
}

//FileReadECP reads every ECP block from the named file, decompressing .gz,
//.zst, .zstd and .flate files transparently.
func FileReadECP(name string) ([]*basis.ECP, error) {
	r, closer, err := openBasisFile(name)
	if err != nil {
		return nil, err
	}
	defer closer()
	return readAllECP(r, name)
}

//FileReadElementECP reads the ECP of one element from the named file. It
//fails with an UnknownElementError if no ECP block declares the element.
func FileReadElementECP(name, symbol string) (*basis.ECP, error) {
	ecps, err := FileReadECP(name)
	if err != nil {
		return nil, err
	}
	if !basis.KnownElement(symbol) {
		return nil, basis.NewInvalidSymbolError(symbol, "FileReadElementECP")
	}
	for _, e := range ecps {
		if e.Symbol == symbol {
			return e, nil
		}
	}
	return nil, basis.NewUnknownElementError(symbol, "FileReadElementECP")
}
