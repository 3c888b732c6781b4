/*
 * nwchem.go, part of goBasis.
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
	"bufio"
	"compress/flate"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/klauspost/compress/zstd"
	basis "github.com/rmera/gobasis"
)

var tl func(string) string = strings.ToLower

//A logical line of a basis file: the text with comments and surrounding
//whitespace removed, plus its 1-based line number in the source.
type line struct {
	text string
	num  int
}

//cleanLine strips the comment (everything from the first '#' on) and the
//surrounding whitespace from a raw line.
func cleanLine(s string) string {
	if i := strings.Index(s, "#"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

//tokenize splits the raw text from r into logical lines. Comment-only and
//blank lines are dropped, so the result holds only structural content.
//Tokenizing the same text always yields the same lines; the only possible
//error is an I/O failure from the reader itself.
func tokenize(r io.Reader) ([]line, error) {
	buf := bufio.NewReader(r)
	lines := make([]line, 0, 100)
	num := 0
	var err error
	var s string
	for s, err = buf.ReadString('\n'); err == nil; s, err = buf.ReadString('\n') {
		num++
		if c := cleanLine(s); c != "" {
			lines = append(lines, line{c, num})
		}
	}
	if errors.Is(err, io.EOF) {
		//the last line may lack a trailing newline
		num++
		if c := cleanLine(s); c != "" {
			lines = append(lines, line{c, num})
		}
		err = nil
	}
	return lines, err
}

//fortranFloat parses a float accepting the Fortran exponent markers D and d
//(0.175D+01) besides the standard E/e.
func fortranFloat(s string) (float64, error) {
	s = strings.Replace(s, "D", "E", 1)
	s = strings.Replace(s, "d", "e", 1)
	return strconv.ParseFloat(s, 64)
}

func leadsLetter(s string) bool {
	return len(s) > 0 && unicode.IsLetter(rune(s[0]))
}

func eqf(a, b string) bool {
	return strings.EqualFold(a, b)
}

//basisName extracts the quoted name from a BASIS marker line, e.g.
//`BASIS "ao basis" PRINT` gives `ao basis`. An unquoted BASIS line gives an
//empty name.
func basisName(text string) string {
	first := strings.Index(text, "\"")
	last := strings.LastIndex(text, "\"")
	if first < 0 || last <= first {
		return ""
	}
	return text[first+1 : last]
}

//parser states for a basis read
const (
	awaitBasis = iota
	inBasis
	skipForeign //inside a block of another kind (e.g. ECP), ignored until its END
)

//block accumulates one shell block (header plus numeric rows) before it is
//turned into shells. letter is "S".."J" or the combined "SP". rows hold the
//exponent followed by ncols coefficients.
type block struct {
	symbol string
	letter string
	ncols  int
	rows   [][]float64
	lineno int
}

//addRow parses and validates one numeric row of the block. The number of
//coefficient columns is fixed by the first row; an SP block must carry
//exactly two.
func (b *block) addRow(f []string, l line, fname string) error {
	vals := make([]float64, len(f))
	for i, field := range f {
		v, err := fortranFloat(field)
		if err != nil {
			return Error{MalformedPrimitive, fmt.Sprintf("can't parse number %q", field), fname, l.num, l.text, nil}
		}
		vals[i] = v
	}
	ncols := len(vals) - 1
	if ncols < 1 {
		return Error{MalformedPrimitive, "row needs an exponent and at least one coefficient", fname, l.num, l.text, nil}
	}
	if b.letter == "SP" && ncols != 2 {
		return Error{MalformedPrimitive, fmt.Sprintf("SP shell rows need exactly 2 coefficients, got %d", ncols), fname, l.num, l.text, nil}
	}
	if b.ncols == 0 {
		b.ncols = ncols
	} else if ncols != b.ncols {
		return Error{MalformedPrimitive, fmt.Sprintf("row has %d coefficients, previous rows had %d", ncols, b.ncols), fname, l.num, l.text, nil}
	}
	if vals[0] <= 0 {
		return Error{MalformedPrimitive, fmt.Sprintf("exponent must be positive, got %v", vals[0]), fname, l.num, l.text, nil}
	}
	b.rows = append(b.rows, vals)
	return nil
}

//flush turns the accumulated block into shells, appended to cur. An SP block
//becomes an S and a P shell sharing exponents; a block with k coefficient
//columns becomes k shells of the same angular momentum, one per column
//(the segmented view of a general contraction). A block with no rows is
//dropped silently.
func (b *block) flush(cur *basis.BasisSet, fname string) error {
	if b == nil || len(b.rows) == 0 {
		return nil
	}
	letters := make([]string, 0, 2)
	if b.letter == "SP" {
		letters = append(letters, "S", "P")
	} else {
		for j := 0; j < b.ncols; j++ {
			letters = append(letters, b.letter)
		}
	}
	for j, letter := range letters {
		s, err := basis.NewShell(b.symbol, letter)
		if err != nil {
			return errDecorate(err, fmt.Sprintf("flush: %s line %d", fname, b.lineno))
		}
		for _, row := range b.rows {
			if err := s.AddPrimitive(row[0], row[j+1]); err != nil {
				return errDecorate(err, fmt.Sprintf("flush: %s line %d", fname, b.lineno))
			}
		}
		cur.AddShell(s)
	}
	return nil
}

//readAll is the line-classification state machine behind all the basis
//reading entry points.
func readAll(rd io.Reader, fname string) ([]*basis.BasisSet, error) {
	lines, err := tokenize(rd)
	if err != nil {
		return nil, err
	}
	state := awaitBasis
	var cur *basis.BasisSet
	var blk *block
	sets := make([]*basis.BasisSet, 0, 1)
	for _, l := range lines {
		f := strings.Fields(l.text)
		switch {
		case eqf(f[0], "END"):
			switch state {
			case inBasis:
				if err := blk.flush(cur, fname); err != nil {
					return nil, err
				}
				blk = nil
				sets = append(sets, cur)
				cur = nil
				state = awaitBasis
			case skipForeign:
				state = awaitBasis
			default:
				return nil, Error{StrayEnd, "", fname, l.num, l.text, nil}
			}
		case eqf(f[0], "BASIS"):
			if state == inBasis {
				return nil, Error{NestedBlock, "", fname, l.num, l.text, nil}
			}
			if state == skipForeign {
				continue
			}
			cur = basis.NewBasisSet(basisName(l.text))
			state = inBasis
		case eqf(f[0], "ECP") && state == awaitBasis:
			//an ECP block in a mixed basis library file; not ours to read here
			state = skipForeign
		case state == skipForeign:
			continue
		case state == awaitBasis:
			if !leadsLetter(l.text) {
				return nil, Error{MalformedPrimitive, "primitive data outside of a BASIS block", fname, l.num, l.text, nil}
			}
			return nil, Error{StrayContent, "", fname, l.num, l.text, nil}
		case leadsLetter(l.text):
			//a shell header closes any open block
			if err := blk.flush(cur, fname); err != nil {
				return nil, err
			}
			blk = nil
			if len(f) != 2 {
				return nil, Error{BadShellHeader, fmt.Sprintf("want element and angular momentum, got %d fields", len(f)), fname, l.num, l.text, nil}
			}
			if !basis.KnownElement(f[0]) {
				serr := basis.NewInvalidSymbolError(f[0], "readAll")
				serr.Decorate(fmt.Sprintf("readAll: %s line %d", fname, l.num))
				return nil, serr
			}
			if _, ok := basis.LFromLetter(f[1]); !ok && f[1] != "SP" {
				return nil, Error{BadShellHeader, fmt.Sprintf("not an angular momentum letter: %q", f[1]), fname, l.num, l.text, nil}
			}
			blk = &block{symbol: f[0], letter: f[1], lineno: l.num}
		default:
			if blk == nil {
				return nil, Error{MalformedPrimitive, "primitive data with no open shell", fname, l.num, l.text, nil}
			}
			if err := blk.addRow(f, l, fname); err != nil {
				return nil, err
			}
		}
	}
	switch state {
	case inBasis:
		return nil, UnterminatedError{"BASIS", fname, nil}
	case skipForeign:
		//the block left open is the foreign one
		return nil, UnterminatedError{"ECP", fname, nil}
	}
	return sets, nil
}

//Read reads the first BASIS block from r. Blocks of other kinds (ECP) before
//it are skipped. It fails if r holds no BASIS block at all.
func Read(r io.Reader) (*basis.BasisSet, error) {
	sets, err := readAll(r, "")
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, Error{NoBasis, "", "", 0, "", nil}
	}
	return sets[0], nil
}

//ReadAll reads every BASIS block from r, in file order. Some basis library
//files concatenate several blocks.
func ReadAll(r io.Reader) ([]*basis.BasisSet, error) {
	return readAll(r, "")
}

//ReadElement reads the shells of one element from r, taken from the first
//BASIS block that declares it. It fails with an UnknownElementError if no
//block does.
func ReadElement(r io.Reader, symbol string) ([]*basis.Shell, error) {
	sets, err := readAll(r, "")
	if err != nil {
		return nil, err
	}
	return elementShells(sets, symbol)
}

//elementShells is the per-element extraction behind ReadElement and
//FileReadElement.
func elementShells(sets []*basis.BasisSet, symbol string) ([]*basis.Shell, error) {
	if !basis.KnownElement(symbol) {
		return nil, basis.NewInvalidSymbolError(symbol, "ReadElement")
	}
	for _, set := range sets {
		shells, err := set.ShellsOf(symbol)
		if err == nil {
			return shells, nil
		}
	}
	return nil, basis.NewUnknownElementError(symbol, "ReadElement")
}

//openBasisFile opens a basis file, transparently decompressing it if its name
//ends in .gz, .zst, .zstd or .flate. It returns the reader and a close
//function that releases both the decompressor and the file.
func openBasisFile(name string) (io.Reader, func() error, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	var r io.Reader = bufio.NewReader(f)
	closer := f.Close
	switch {
	case strings.HasSuffix(tl(name), ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		r = gz
		closer = func() error {
			gz.Close()
			return f.Close()
		}
	case strings.HasSuffix(tl(name), ".zst"), strings.HasSuffix(tl(name), ".zstd"):
		z, err := zstd.NewReader(r)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		r = z
		closer = func() error {
			z.Close()
			return f.Close()
		}
	case strings.HasSuffix(tl(name), ".flate"):
		fl := flate.NewReader(r)
		r = fl
		closer = func() error {
			fl.Close()
			return f.Close()
		}
	}
	return r, closer, nil
}

//FileRead reads the first BASIS block from the named file. Files compressed
//with gzip, zstd or raw deflate (suffixes .gz, .zst, .zstd, .flate) are read
//transparently.
func FileRead(name string) (*basis.BasisSet, error) {
	r, closer, err := openBasisFile(name)
	if err != nil {
		return nil, err
	}
	defer closer()
	sets, err := readAll(r, name)
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, Error{NoBasis, "", name, 0, "", nil}
	}
	return sets[0], nil
}

//FileReadAll reads every BASIS block from the named file, in file order.
func FileReadAll(name string) ([]*basis.BasisSet, error) {
	r, closer, err := openBasisFile(name)
	if err != nil {
		return nil, err
	}
	defer closer()
	return readAll(r, name)
}

//FileReadElement reads the shells of one element from the named basis library
//file, without the caller having to keep the whole library around.
func FileReadElement(name, symbol string) ([]*basis.Shell, error) {
	r, closer, err := openBasisFile(name)
	if err != nil {
		return nil, err
	}
	defer closer()
	sets, err := readAll(r, name)
	if err != nil {
		return nil, err
	}
	return elementShells(sets, symbol)
}

//Errors

//errDecorate is a helper function that asserts that the error implements
//basis.Error and decorates it with the caller's name before returning it.
//if used with an error not implementing basis.Error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(basis.Error)
	err2.Decorate(caller)
	return err2
}

//Error kinds. Kind() of an Error returned by this package is always one of
//these, so callers can tell failure modes apart without string matching.
const (
	MalformedPrimitive = "Malformed primitive line"
	BadShellHeader     = "Malformed shell header"
	BadECPHeader       = "Malformed ECP header"
	NestedBlock        = "Block marker inside an open block"
	StrayEnd           = "END with no open block"
	StrayContent       = "Content outside of any block"
	NoBasis            = "No BASIS block found"
)

//Error is the general type for structural errors in NWChem basis files. It
//fulfills basis.Error and basis.ParseError.
type Error struct {
	kind     string
	detail   string
	filename string //the input file that has problems, or empty string if none.
	line     int
	text     string
	deco     []string
}

func (err Error) Error() string {
	msg := fmt.Sprintf("goBasis/nwchem: %s", err.kind)
	if err.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, err.detail)
	}
	if err.line > 0 {
		msg = fmt.Sprintf("%s. File %q, line %d: %q", msg, err.filename, err.line, err.text)
	}
	return msg
}

//Kind returns which of the error kind constants this error is.
func (err Error) Kind() string { return err.kind }

func (err Error) FileName() string { return err.filename }

//Line returns the 1-based line number of the offending line, 0 if none.
func (err Error) Line() int { return err.line }

//Text returns the raw text of the offending line.
func (err Error) Text() string { return err.text }

func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//UnterminatedError means the input ended while a block was still open. The
//partially built structure is discarded, never returned.
type UnterminatedError struct {
	block    string //"BASIS" or "ECP"
	filename string
	deco     []string
}

func (err UnterminatedError) Error() string {
	return fmt.Sprintf("goBasis/nwchem: %s block not terminated by END. File: %q", err.block, err.filename)
}

//Block returns the kind of block left open, "BASIS" or "ECP".
func (err UnterminatedError) Block() string { return err.block }

func (err UnterminatedError) FileName() string { return err.filename }

func (err UnterminatedError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
