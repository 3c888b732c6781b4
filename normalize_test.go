/*
 * normalize_test.go, part of goBasis.
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
	"math"
	"testing"
)

func TestPrimNorm(Te *testing.T) {
	//reference values computed from 2(2a)^(l+3/2)/gamma(l+3/2)
	if got := PrimNorm(1.0, 0); math.Abs(got-2.5264751109842587) > 1e-12 {
		Te.Errorf("PrimNorm(1,0) = %v", got)
	}
	if got := PrimNorm(0.85, 2); math.Abs(got-1.9634168150005875) > 1e-12 {
		Te.Errorf("PrimNorm(0.85,2) = %v", got)
	}
}

func TestContractionNorm(Te *testing.T) {
	//a single normalized primitive with unit coefficient is already normalized
	s := mustShell(Te, "Na", "D", [2]float64{0.175, 1.0})
	n, err := s.ContractionNorm()
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(n-1.0) > 1e-12 {
		Te.Errorf("Single unit-coefficient primitive gave norm %v", n)
	}
	//two primitives, reference value computed by hand from the overlap formula
	s2 := mustShell(Te, "Na", "S", [2]float64{13.0, 0.3}, [2]float64{2.0, 0.8})
	n2, err := s2.ContractionNorm()
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(n2-1.0004609584733781) > 1e-10 {
		Te.Errorf("Two-primitive contraction gave norm %v", n2)
	}
}

func TestNormalized(Te *testing.T) {
	s := mustShell(Te, "C", "S",
		[2]float64{7.8682724, -0.1193324},
		[2]float64{1.8812885, -0.1608542},
		[2]float64{0.5442493, 1.1434564})
	ns, err := s.Normalized()
	if err != nil {
		Te.Error(err)
	}
	//the receiver must not change
	if s.Prims[0].Coeff != -0.1193324 {
		Te.Error("Normalized mutated the original shell")
	}
	//a normalized shell has contraction norm 1
	n, err := ns.ContractionNorm()
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(n-1.0) > 1e-12 {
		Te.Errorf("Normalized shell has norm %v", n)
	}
}

func TestContractionNormEmpty(Te *testing.T) {
	s := mustShell(Te, "Na", "S")
	if _, err := s.ContractionNorm(); err == nil {
		Te.Error("ContractionNorm accepted an empty shell")
	}
}
