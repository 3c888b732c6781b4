/*
 * registry_test.go, part of goBasis.
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
	"fmt"
	"sync"
	"testing"
)

func smallSet(Te *testing.T, name string, exp float64) *BasisSet {
	b := NewBasisSet(name)
	b.AddShell(mustShell(Te, "Na", "S", [2]float64{exp, 1.0}))
	b.AddShell(mustShell(Te, "Na", "D", [2]float64{0.175, 1.0}))
	b.AddShell(mustShell(Te, "Mg", "S", [2]float64{exp, 1.0}))
	return b
}

func TestRegistryReject(Te *testing.T) {
	r := NewRegistry(Reject)
	b := smallSet(Te, "ao basis", 0.5)
	if err := r.Register(b); err != nil {
		Te.Error(err)
	}
	//registering the same set again must fail and leave the registry as it was
	err := r.Register(b)
	if err == nil {
		Te.Error("Reject registry accepted a duplicate registration")
	} else if _, ok := err.(*DuplicateShellError); !ok {
		Te.Errorf("Wrong error type for a duplicate: %T", err)
	}
	na, err := r.Lookup("Na")
	if err != nil {
		Te.Error(err)
	}
	if len(na) != 2 {
		Te.Errorf("Failed Register altered the registry: %d Na shells", len(na))
	}
	fmt.Println(r.String())
}

func TestRegistryOverwrite(Te *testing.T) {
	r := NewRegistry(Overwrite)
	if err := r.Register(smallSet(Te, "old", 0.5)); err != nil {
		Te.Error(err)
	}
	if err := r.Register(smallSet(Te, "new", 0.9)); err != nil {
		Te.Error(err)
	}
	na, err := r.Lookup("Na")
	if err != nil {
		Te.Error(err)
	}
	if len(na) != 2 || na[0].Prims[0].Exp != 0.9 {
		Te.Errorf("Overwrite kept old shells: %v", na)
	}
}

func TestRegistryMerge(Te *testing.T) {
	r := NewRegistry(Merge)
	if err := r.Register(smallSet(Te, "a", 0.5)); err != nil {
		Te.Error(err)
	}
	if err := r.Register(smallSet(Te, "b", 0.9)); err != nil {
		Te.Error(err)
	}
	na, err := r.Lookup("Na")
	if err != nil {
		Te.Error(err)
	}
	//registration order is preserved: the two shells of "a" first
	if len(na) != 4 || na[0].Prims[0].Exp != 0.5 || na[2].Prims[0].Exp != 0.9 {
		Te.Errorf("Merge gave the wrong shell sequence: %v", na)
	}
	els := r.Elements()
	if len(els) != 2 || els[0] != "Na" || els[1] != "Mg" {
		Te.Errorf("Wrong element order: %v", els)
	}
}

func TestRegistryLookupErrors(Te *testing.T) {
	r := NewRegistry(Reject)
	if err := r.Register(smallSet(Te, "ao basis", 0.5)); err != nil {
		Te.Error(err)
	}
	if _, err := r.Lookup("Cl"); err == nil {
		Te.Error("Lookup found an element that was never registered")
	} else if _, ok := err.(*UnknownElementError); !ok {
		Te.Errorf("Wrong error type: %T", err)
	}
	if _, err := r.Lookup("Qq"); err == nil {
		Te.Error("Lookup accepted a fake element")
	} else if _, ok := err.(*InvalidSymbolError); !ok {
		Te.Errorf("Wrong error type: %T", err)
	}
}

func TestRegistryFreeze(Te *testing.T) {
	r := NewRegistry(Merge)
	if err := r.Register(smallSet(Te, "ao basis", 0.5)); err != nil {
		Te.Error(err)
	}
	r.Freeze()
	if !r.Frozen() {
		Te.Error("Freeze did not freeze")
	}
	if err := r.Register(smallSet(Te, "late", 0.9)); err == nil {
		Te.Error("Frozen registry accepted a registration")
	}
	//a frozen registry can be read concurrently
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			shells, err := r.Lookup("Na")
			if err != nil || len(shells) != 2 {
				Te.Error("Concurrent Lookup on a frozen registry failed")
			}
		}()
	}
	wg.Wait()
}
