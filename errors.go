/*
 * errors.go, part of goBasis.
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

import "fmt"

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package). We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //This is the new thing for errors. It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strins resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// ParseError is the interface for errors produced while reading a basis file.
// It adds positional information to Error, so callers can point at the
// offending line.
type ParseError interface {
	Error
	FileName() string //the input file that has problems, or an empty string if none
	Line() int        //1-based line number of the offending line, 0 if not applicable
	Text() string     //the raw text of the offending line
}

// CError (Concrete Error) is the concrete type for errors that originate in
// this package and don't need a more specific type.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate is a helper function that asserts that the error
//implements Error and decorates it with the caller's name before returning it.
//if used with an error not implementing Error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//InvalidSymbolError means a string that should name a chemical element does
//not. It is never recovered internally, as basis-set correctness depends on
//exact element identity.
type InvalidSymbolError struct {
	symbol string
	deco   []string
}

//NewInvalidSymbolError returns an InvalidSymbolError for the given symbol,
//decorated with the caller's name.
func NewInvalidSymbolError(symbol string, caller string) *InvalidSymbolError {
	return &InvalidSymbolError{symbol: symbol, deco: []string{caller}}
}

func (err *InvalidSymbolError) Error() string {
	return fmt.Sprintf("goBasis: Not a known chemical element symbol: %q", err.symbol)
}

//Symbol returns the offending string.
func (err *InvalidSymbolError) Symbol() string { return err.symbol }

func (err *InvalidSymbolError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//UnknownElementError means a lookup for an element that was never registered
//or declared.
type UnknownElementError struct {
	symbol string
	deco   []string
}

//NewUnknownElementError returns an UnknownElementError for the given symbol,
//decorated with the caller's name.
func NewUnknownElementError(symbol string, caller string) *UnknownElementError {
	return &UnknownElementError{symbol: symbol, deco: []string{caller}}
}

func (err *UnknownElementError) Error() string {
	return fmt.Sprintf("goBasis: No shells for element: %s", err.symbol)
}

//Symbol returns the element that was looked up.
func (err *UnknownElementError) Symbol() string { return err.symbol }

func (err *UnknownElementError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//DuplicateShellError means a registration would collide with shells already
//registered for an element, under a policy that forbids it.
type DuplicateShellError struct {
	symbol string
	deco   []string
}

//NewDuplicateShellError returns a DuplicateShellError for the given symbol,
//decorated with the caller's name.
func NewDuplicateShellError(symbol string, caller string) *DuplicateShellError {
	return &DuplicateShellError{symbol: symbol, deco: []string{caller}}
}

func (err *DuplicateShellError) Error() string {
	return fmt.Sprintf("goBasis: Element already registered: %s", err.symbol)
}

//Symbol returns the element whose registration collided.
func (err *DuplicateShellError) Symbol() string { return err.symbol }

func (err *DuplicateShellError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
