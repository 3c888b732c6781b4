/*
 * registry.go, part of goBasis.
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

//Policy tells a Registry what to do when a registration collides with
//shells already registered for an element.
type Policy int

const (
	//Reject fails the whole registration with a DuplicateShellError. This is
	//the default, as silently altering a basis produces physically
	//meaningless results.
	Reject Policy = iota
	//Overwrite replaces the element's previous shells.
	Overwrite
	//Merge appends the new shells after the previous ones.
	Merge
)

//Registry maps element symbols to their shells, preserving, for each element,
//the order in which shells were registered (angular momentum ordering affects
//the order of the downstream integral evaluation, so it is kept as given).
//
//A Registry is not an ambient global. Build one, register the basis sets the
//calculation needs, call Freeze, and pass it around explicitly. Once frozen it
//is read-only and safe for concurrent readers without locking. If several
//goroutines must register concurrently before the freeze (unusual), a single
//mutex around Register suffices.
type Registry struct {
	shells map[string][]*Shell
	order  []string //elements, in first-registration order
	policy Policy
	frozen bool
}

//NewRegistry returns an empty registry with the given collision policy.
func NewRegistry(policy Policy) *Registry {
	r := new(Registry)
	r.shells = make(map[string][]*Shell)
	r.order = make([]string, 0, 10)
	r.policy = policy
	return r
}

/*Registry methods*/

//Policy returns the registry's collision policy.
func (R *Registry) Policy() Policy {
	return R.policy
}

//Register merges the shells of the given basis set into the registry,
//element by element, following the registry's collision policy. Under Reject,
//a collision fails with a DuplicateShellError before anything is merged, so a
//failed Register leaves the registry untouched. Registering into a frozen
//registry is always an error.
func (R *Registry) Register(B *BasisSet) error {
	if R.frozen {
		err := new(CError)
		err.msg = "Registry is frozen, no further registration is allowed"
		err.Decorate("Register")
		return err
	}
	if B == nil {
		err := new(CError)
		err.msg = "Supplied a nil basis set"
		err.Decorate("Register")
		return err
	}
	if R.policy == Reject {
		for _, el := range B.Elements() {
			if _, ok := R.shells[el]; ok {
				return NewDuplicateShellError(el, "Register")
			}
		}
	}
	//Under Overwrite, the first shell B brings for an element drops that
	//element's previous shells. Further shells of the same element within B
	//are appended normally, so B's own ordering survives.
	replaced := make(map[string]bool)
	for _, s := range B.Shells {
		prev, ok := R.shells[s.Symbol]
		switch {
		case !ok:
			R.order = append(R.order, s.Symbol)
			R.shells[s.Symbol] = []*Shell{s}
		case R.policy == Overwrite && !replaced[s.Symbol]:
			R.shells[s.Symbol] = []*Shell{s}
			replaced[s.Symbol] = true
		default:
			R.shells[s.Symbol] = append(prev, s)
		}
	}
	return nil
}

//Lookup returns the shells registered for the given element, in registration
//order. The returned slice is a view, not a copy; treat it as read-only. It
//fails with an UnknownElementError if the element was never registered, and
//with an InvalidSymbolError if the symbol is not a chemical element at all.
func (R *Registry) Lookup(symbol string) ([]*Shell, error) {
	if !KnownElement(symbol) {
		return nil, NewInvalidSymbolError(symbol, "Lookup")
	}
	s, ok := R.shells[symbol]
	if !ok {
		return nil, NewUnknownElementError(symbol, "Lookup")
	}
	return s, nil
}

//Elements returns the registered element symbols in first-registration order.
func (R *Registry) Elements() []string {
	ret := make([]string, len(R.order))
	copy(ret, R.order)
	return ret
}

//Len returns the number of registered elements.
func (R *Registry) Len() int {
	return len(R.order)
}

//Freeze marks the registry read-only. After Freeze, Register always fails and
//concurrent calls to Lookup and Elements are safe without locking. There is
//no unfreeze.
func (R *Registry) Freeze() {
	R.frozen = true
}

//Frozen returns whether the registry has been frozen.
func (R *Registry) Frozen() bool {
	return R.frozen
}

//String returns a short description of the registry contents.
func (R *Registry) String() string {
	return fmt.Sprintf("goBasis registry: %d elements %v, frozen: %v", len(R.order), R.order, R.frozen)
}
