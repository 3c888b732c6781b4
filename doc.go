/*
 * doc.go, part of goBasis.
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

/*Package basis is the main package of the goBasis library. It provides structures for
Gaussian basis-set definitions (primitives, contracted shells and named basis sets),
a registry to organize basis sets per chemical element, normalization of contracted
functions and writing of basis sets in the NWChem text format.



	**goBasis Capabilities**

    Represents contracted Gaussian basis functions as ordered lists of
	(exponent, coefficient) primitives grouped in per-element shells.

    Reads basis-set definition files in the NWChem dialect (see the nwchem
	sub-package), including combined SP shells, general contractions and
	Fortran-style exponents. Compressed files (gzip, zstd) are read transparently.

    Reads effective core potential (ECP) blocks in the NWChem dialect.

    Writes basis sets and ECPs back in canonical NWChem format, such that
	writing and re-reading yields the same in-memory structure.

    Keeps a per-element registry of shells with configurable collision policies
	(reject, overwrite, merge) and a construction-then-freeze lifecycle, so a
	frozen registry can be read concurrently without locking.

    Computes primitive and contraction normalization constants (using the
	Gonum library), as explicit operations. Parsed values are never altered
	implicitly, for numerical fidelity with the source file.

    Plots the radial part of contracted shells (see the basisplot sub-package).



All structures in this package are built once, during parsing or explicit
construction, and are meant to be treated as read-only afterwards. Downstream
integral evaluation depends on declaration order, so shells and primitives keep
the order in which they were declared.*/
package basis
