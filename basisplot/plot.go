/*
 * plot.go, part of goBasis.
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

/*Package basisplot plots the radial part of contracted Gaussian shells,
using the Gonum plot library. Mostly meant for eyeballing a basis set, not
for publication-quality figures.*/
package basisplot

import (
	"fmt"
	"image/color"
	"math"

	basis "github.com/rmera/gobasis"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Radial evaluates the radial part of the contracted function of the shell at
//r (in bohr): the sum over primitives of c_i N_i r^L exp(-a_i r^2), with N_i
//the radial normalization of each primitive. Coefficients are taken as
//declared; normalize the shell first if that is what you want to look at.
func Radial(S *basis.Shell, r float64) float64 {
	ret := 0.0
	rl := math.Pow(r, float64(S.L))
	for _, p := range S.Prims {
		ret += p.Coeff * basis.PrimNorm(p.Exp, S.L) * rl * math.Exp(-p.Exp*r*r)
	}
	return ret
}

//a small fixed palette, cycled over when plotting several shells.
var palette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 200, G: 30, B: 30, A: 255},
	{R: 30, G: 30, B: 200, A: 255},
	{R: 30, G: 150, B: 30, A: 255},
	{R: 180, G: 120, B: 0, A: 255},
	{R: 140, G: 30, B: 180, A: 255},
}

const plotPoints = 300

//RadialPlot plots the radial functions of the given shells from r=0 to rmax
//(bohr) and saves the result as plotname.png. Shells are labeled by element
//and angular momentum letter.
func RadialPlot(shells []*basis.Shell, rmax float64, title, plotname string) error {
	if shells == nil {
		panic("Given nil shells")
	}
	if rmax <= 0 {
		return Error{fmt.Sprintf("rmax must be positive, got %v", rmax), []string{"RadialPlot"}}
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "r (bohr)"
	p.Y.Label.Text = "radial function"
	p.Add(plotter.NewGrid())
	for i, s := range shells {
		pts := make(plotter.XYs, plotPoints)
		for k := 0; k < plotPoints; k++ {
			r := rmax * float64(k) / float64(plotPoints-1)
			pts[k].X = r
			pts[k].Y = Radial(s, r)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = palette[i%len(palette)]
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s %s", s.Symbol, s.Letter()), line)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
}

//Error is the type for errors in this package. It fulfills basis.Error.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("goBasis/basisplot: %s", err.message)
}

func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
