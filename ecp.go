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

package basis

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

//ECPLocal is the L value of the local ("ul") channel of an effective core
//potential.
const ECPLocal = -1

//ECPTerm is one term of an ECP channel: r^RPower * Coeff * exp(-Exp r^2).
type ECPTerm struct {
	RPower int
	Exp    float64
	Coeff  float64
}

//Copy returns a copy of the term.
func (T *ECPTerm) Copy() *ECPTerm {
	return &ECPTerm{RPower: T.RPower, Exp: T.Exp, Coeff: T.Coeff}
}

//ECPChannel is one angular momentum channel of an effective core potential.
//L is ECPLocal (-1) for the local channel, otherwise a regular angular
//momentum. Terms keep declaration order.
type ECPChannel struct {
	L     int
	Terms []*ECPTerm
}

//Copy returns a deep copy of the channel.
func (C *ECPChannel) Copy() *ECPChannel {
	nc := &ECPChannel{L: C.L}
	nc.Terms = make([]*ECPTerm, 0, len(C.Terms))
	for _, t := range C.Terms {
		nc.Terms = append(nc.Terms, t.Copy())
	}
	return nc
}

//ECP is an effective core potential for one element: the number of core
//electrons it replaces and its channels, in declaration order.
type ECP struct {
	Symbol   string
	NElec    int
	Channels []*ECPChannel
}

//NewECP returns an empty ECP for the given element symbol.
func NewECP(symbol string) (*ECP, error) {
	if !KnownElement(symbol) {
		return nil, NewInvalidSymbolError(symbol, "NewECP")
	}
	return &ECP{Symbol: symbol, Channels: make([]*ECPChannel, 0, 4)}, nil
}

/*ECP methods*/

//Channel returns the channel with the given L (ECPLocal for the local one),
//or nil if the ECP has no such channel.
func (E *ECP) Channel(l int) *ECPChannel {
	for _, c := range E.Channels {
		if c.L == l {
			return c
		}
	}
	return nil
}

//SortChannels orders the channels with the local channel first, then by
//increasing angular momentum. The sort is stable.
func (E *ECP) SortChannels() {
	sort.SliceStable(E.Channels, func(i, j int) bool {
		return E.Channels[i].L < E.Channels[j].L
	})
}

//Copy returns a deep copy of the ECP.
func (E *ECP) Copy() *ECP {
	if E == nil {
		panic("Attempted to copy a nil ECP")
	}
	ne := &ECP{Symbol: E.Symbol, NElec: E.NElec}
	ne.Channels = make([]*ECPChannel, 0, len(E.Channels))
	for _, c := range E.Channels {
		ne.Channels = append(ne.Channels, c.Copy())
	}
	return ne
}

//Equal returns true if both ECPs have the same element, core electron count
//and exactly equal channels in the same order.
func (E *ECP) Equal(E2 *ECP) bool {
	if E == nil || E2 == nil {
		return E == E2
	}
	if E.Symbol != E2.Symbol || E.NElec != E2.NElec || len(E.Channels) != len(E2.Channels) {
		return false
	}
	for i, c := range E.Channels {
		c2 := E2.Channels[i]
		if c.L != c2.L || len(c.Terms) != len(c2.Terms) {
			return false
		}
		for j, t := range c.Terms {
			t2 := c2.Terms[j]
			if t.RPower != t2.RPower || t.Exp != t2.Exp || t.Coeff != t2.Coeff {
				return false
			}
		}
	}
	return true
}

//NWChemECPString returns the ECPs in NWChem text format, framed by ECP/END
//markers, as a string. Reading the output back yields ECPs Equal to the
//originals.
func NWChemECPString(ecps []*ECP) string {
	var b strings.Builder
	b.WriteString("ECP\n")
	for _, e := range ecps {
		fmt.Fprintf(&b, "%-2s nelec %d\n", e.Symbol, e.NElec)
		for _, c := range e.Channels {
			if c.L == ECPLocal {
				fmt.Fprintf(&b, "%-2s ul\n", e.Symbol)
			} else {
				fmt.Fprintf(&b, "%-2s %s\n", e.Symbol, LetterFromL(c.L))
			}
			for _, t := range c.Terms {
				fmt.Fprintf(&b, "%d %15.9f %15.9f\n", t.RPower, t.Exp, t.Coeff)
			}
		}
	}
	b.WriteString("END\n")
	return b.String()
}

//WriteNWChemECP writes the ECPs in NWChem text format to w.
func WriteNWChemECP(w io.Writer, ecps []*ECP) error {
	_, err := io.WriteString(w, NWChemECPString(ecps))
	if err != nil {
		err2 := new(CError)
		err2.msg = err.Error()
		err2.Decorate("WriteNWChemECP")
		return err2
	}
	return nil
}
