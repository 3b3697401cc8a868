/*
 * nonbonded.go, part of gocavity.
 *
 * Copyright 2021 Raul Mera <rauldotmeraatusachdotcl>
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

package grid

import (
	"cmp"
	"slices"

	chem "github.com/rmera/gocavity"
	v3 "github.com/rmera/gocavity/v3"
)

//NonBonded is a grid that holds, for each point, a list of the objects
//(atoms, interaction centers) within some distance of the point. It allows
//constant-time neighbour queries once built.
//The grid doesn't own the objects. For atoms, T is normally an index into
//a chem.AtomLocator, which must outlive the grid.
type NonBonded[T any] struct {
	Geometry
	lists [][]T
	cmp   func(a, b T) int
	same  func(a, b T) bool //duplicates for UniqueAtomLists; nil means cmp(a, b) == 0
}

//NewNonBonded returns an empty NonBonded grid with geometry g. cmp is used to sort and remove
//duplicates from the lists in UniqueAtomLists. It must return a negative number if a<b, a positive
//number if a>b and 0 if they are equal.
func NewNonBonded[T any](g Geometry, cmp func(a, b T) int) *NonBonded[T] {
	if g.n <= 0 {
		panic(ErrEmptyGrid)
	}
	return &NonBonded[T]{Geometry: g, lists: make([][]T, g.n), cmp: cmp}
}

//AtomList returns the objects listed for the point with linear index iXYZ. It returns
//an empty list if the index is not in the grid. The returned slice must not be modified.
func (N *NonBonded[T]) AtomList(iXYZ int) []T {
	if !N.ValidIndex(iXYZ) {
		return nil
	}
	return N.lists[iXYZ]
}

//AtomListAt returns the objects listed for the point nearest to c. It returns
//an empty list if c is not a valid coordinate.
func (N *NonBonded[T]) AtomListAt(c v3.Coord) []T {
	if !N.ValidCoord(c) {
		return nil
	}
	return N.lists[N.IXYZAt(c)]
}

//SetAtomLists adds obj, located at c, to the lists of all the points within
//radius of c.
func (N *NonBonded[T]) SetAtomLists(obj T, c v3.Coord, radius float64) {
	for _, i := range N.SphereIndices(c, radius) {
		N.lists[i] = append(N.lists[i], obj)
	}
}

//ClearAtomLists empties all the lists. The memory is kept, so the grid can
//be filled again cheaply.
func (N *NonBonded[T]) ClearAtomLists() {
	for i := range N.lists {
		N.lists[i] = N.lists[i][:0]
	}
}

//UniqueAtomLists sorts each list and removes duplicated objects from it.
//It should be called after all the calls to SetAtomLists.
func (N *NonBonded[T]) UniqueAtomLists() {
	same := N.same
	if same == nil {
		same = func(a, b T) bool { return N.cmp(a, b) == 0 }
	}
	for i, l := range N.lists {
		if len(l) < 2 {
			continue
		}
		slices.SortStableFunc(l, N.cmp)
		out := l[:1]
		run := 0 //first element of out that sorts equal to the last one
		for _, v := range l[1:] {
			if N.cmp(out[len(out)-1], v) != 0 {
				run = len(out)
				out = append(out, v)
				continue
			}
			if !slices.ContainsFunc(out[run:], func(w T) bool { return same(w, v) }) {
				out = append(out, v)
			}
		}
		clear(l[len(out):])
		N.lists[i] = out
	}
}

//IndexAtoms returns a NonBonded grid with geometry g in which each point lists the indexes
//of the atoms in sel (all the atoms in atoms, if sel is nil) within radius of the point.
//The lists are sorted and have no repeated elements.
func IndexAtoms(g Geometry, atoms chem.AtomLocator, sel []int, radius float64) *NonBonded[int] {
	N := NewNonBonded(g, cmp.Compare[int])
	if sel == nil {
		sel = chem.All(atoms)
	}
	for _, i := range sel {
		N.SetAtomLists(i, atoms.Coord(i), radius)
	}
	N.UniqueAtomLists()
	return N
}
