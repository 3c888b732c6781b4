/*
 * normalize.go, part of goBasis.
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

	"gonum.org/v1/gonum/mat"
)

//Normalization of primitives and contractions. These are explicit operations:
//nothing in the parsing or registration path calls them, the values read from
//a basis file always stay as declared.

//PrimNorm returns the radial normalization constant of a primitive Gaussian
//r^l exp(-alpha r^2) with angular momentum l, such that the integral of
//(N r^l exp(-alpha r^2))^2 r^2 dr over [0,inf) is 1. The angular part is not
//included (spherical harmonics are normalized separately).
func PrimNorm(alpha float64, l int) float64 {
	lf := float64(l)
	return math.Sqrt(2.0 * math.Pow(2.0*alpha, lf+1.5) / math.Gamma(lf+1.5))
}

//primOverlap returns the radial overlap between the normalized primitives
//with exponents a1 and a2, both of angular momentum l.
func primOverlap(a1, a2 float64, l int) float64 {
	return math.Pow(2.0*math.Sqrt(a1*a2)/(a1+a2), float64(l)+1.5)
}

//ContractionNorm returns the normalization constant N of the contracted
//function represented by the shell, taking the stored coefficients as weights
//of normalized primitives: N = (c^T S c)^(-1/2), with S the overlap matrix of
//the normalized primitives.
func (S *Shell) ContractionNorm() (float64, error) {
	n := len(S.Prims)
	if n == 0 {
		err := new(CError)
		err.msg = fmt.Sprintf("Shell %s %s has no primitives", S.Symbol, S.Letter())
		err.Decorate("ContractionNorm")
		return 0, err
	}
	ov := mat.NewSymDense(n, nil)
	coeffs := make([]float64, n)
	for i := 0; i < n; i++ {
		coeffs[i] = S.Prims[i].Coeff
		for j := i; j < n; j++ {
			ov.SetSym(i, j, primOverlap(S.Prims[i].Exp, S.Prims[j].Exp, S.L))
		}
	}
	c := mat.NewVecDense(n, coeffs)
	self := mat.Inner(c, ov, c)
	if self <= 0 || math.IsNaN(self) || math.IsInf(self, 0) {
		err := new(CError)
		err.msg = fmt.Sprintf("Contraction of shell %s %s has non-positive self-overlap: %v", S.Symbol, S.Letter(), self)
		err.Decorate("ContractionNorm")
		return 0, err
	}
	return 1.0 / math.Sqrt(self), nil
}

//Normalized returns a copy of the shell whose coefficients are scaled by the
//contraction normalization constant, so the contracted function it represents
//(over normalized primitives) has unit norm. The receiver is not modified.
func (S *Shell) Normalized() (*Shell, error) {
	norm, err := S.ContractionNorm()
	if err != nil {
		return nil, errDecorate(err, "Normalized")
	}
	ns := S.Copy()
	for _, p := range ns.Prims {
		p.Coeff *= norm
	}
	return ns, nil
}
