/*
 * interaction.go, part of gocavity.
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

	chem "github.com/rmera/gocavity"
	v3 "github.com/rmera/gocavity/v3"
)

//LonePair is the kind of lone pair geometry an interaction center represents.
type LonePair int

const (
	NoLonePair LonePair = iota
	PlaneLonePair
	LonePairLonePair
)

//InteractionCenter is a group of up to 3 atoms acting together in an interaction,
//such as a hydrogen-bond donor or acceptor. The atoms are indexes into
//a chem.AtomLocator; -1 means no atom.
type InteractionCenter struct {
	Atom1 int
	Atom2 int
	Atom3 int
	LP    LonePair
}

//NewInteractionCenter returns an interaction center for the given atoms. Missing atoms
//should be given as -1.
func NewInteractionCenter(atom1, atom2, atom3 int, lp LonePair) *InteractionCenter {
	return &InteractionCenter{Atom1: atom1, Atom2: atom2, Atom3: atom3, LP: lp}
}

//Atoms returns the indexes of the atoms present in the center.
func (I *InteractionCenter) Atoms() []int {
	ret := make([]int, 0, 3)
	for _, v := range [3]int{I.Atom1, I.Atom2, I.Atom3} {
		if v >= 0 {
			ret = append(ret, v)
		}
	}
	return ret
}

//compareCenters orders centers by their atoms and lone pair type.
func compareCenters(a, b *InteractionCenter) int {
	if c := cmp.Compare(a.Atom1, b.Atom1); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Atom2, b.Atom2); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Atom3, b.Atom3); c != 0 {
		return c
	}
	return cmp.Compare(a.LP, b.LP)
}

//Interaction is a NonBonded grid of interaction centers, indexed by the position of
//their first atom.
type Interaction struct {
	*NonBonded[*InteractionCenter]
	atoms chem.AtomLocator
}

//NewInteraction returns an empty Interaction grid with geometry g. The atom indexes
//of the centers added later refer to atoms.
func NewInteraction(g Geometry, atoms chem.AtomLocator) *Interaction {
	N := NewNonBonded(g, compareCenters)
	N.same = func(a, b *InteractionCenter) bool { return a == b }
	return &Interaction{NonBonded: N, atoms: atoms}
}

//SetInteractionLists adds ic to the lists of all the points within radius of its first atom.
//Centers without a first atom are ignored.
func (I *Interaction) SetInteractionLists(ic *InteractionCenter, radius float64) {
	if ic == nil || ic.Atom1 < 0 {
		return
	}
	I.SetAtomLists(ic, I.atoms.Coord(ic.Atom1), radius)
}

//InteractionList returns the centers listed for the point iXYZ, or an empty list if iXYZ is not in the grid.
func (I *Interaction) InteractionList(iXYZ int) []*InteractionCenter {
	return I.AtomList(iXYZ)
}

//InteractionListAt returns the centers listed for the point nearest to c, or an empty list if c is not valid.
func (I *Interaction) InteractionListAt(c v3.Coord) []*InteractionCenter {
	return I.AtomListAt(c)
}

//ClearInteractionLists empties all the lists.
func (I *Interaction) ClearInteractionLists() { I.ClearAtomLists() }

//UniqueInteractionLists sorts the lists and removes centers listed more than once.
//Different centers with the same atoms and lone pair are all kept.
func (I *Interaction) UniqueInteractionLists() { I.UniqueAtomLists() }
