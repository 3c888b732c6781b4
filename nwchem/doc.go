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

/*
Nwchem reads basis-set definitions and effective core potentials in the
NWChem text dialect, the line-oriented format used by most downloadable
basis-set libraries:

	BASIS "ao basis" PRINT
	#comment
	Na    D
	      0.1750000              1.0000000
	END

Reading is strict and fails fast: unterminated blocks, primitive lines with no
open shell, unparsable numbers and unknown element symbols all abort the read
with a positional error. A malformed basis silently accepted would produce
physically meaningless results downstream, so no error is recovered
internally.

Combined SP shells, general contractions (several coefficient columns per
exponent) and Fortran-style "D" exponents are supported. Files compressed
with gzip or zstd are read transparently, based on the file name suffix.

Other dialects (Gaussian94, CP2K, etc.) would be separate front ends feeding
the same basis structures; only the NWChem one is implemented.
*/
package nwchem
