/*
 * descriptors.go, part of gocavity.
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

package cavity

import (
	"fmt"
	"io"

	chem "github.com/rmera/gocavity"
	"github.com/rmera/gocavity/grid"
	v3 "github.com/rmera/gocavity/v3"
	"gonum.org/v1/gonum/stat"
)

//Parameters for the SITE descriptors.
const (
	CavityAtomDist    = 4.0 //atoms within this distance of the cavities are cavity atoms
	NeighbourRadius   = 4.0 //neighbours are counted within this radius
	ExposedNeighbours = 15  //cavity atoms with fewer neighbours than this are exposed
)

//ExposedAtom is a cavity atom with few enough neighbours to be considered solvent-exposed.
type ExposedAtom struct {
	Index      int
	Neighbours int
}

//SiteDescriptors contains simple descriptors of a docking site, calculated over
//its solvent-exposed atoms.
type SiteDescriptors struct {
	Volume         float64
	Exposed        []ExposedAtom
	MeanNeighbours float64 //over all cavity atoms
	NCarbon        int
	NNitrogen      int
	NOxygen        int
	NSulfur        int
	NMetal         int
	PosCharge      float64
	NegCharge      float64
}

//NAtoms returns the number of exposed atoms
func (D *SiteDescriptors) NAtoms() int { return len(D.Exposed) }

//TotalCharge returns the total charge of the exposed atoms
func (D *SiteDescriptors) TotalCharge() float64 { return D.PosCharge + D.NegCharge }

func (D *SiteDescriptors) perc(n int) float64 {
	if len(D.Exposed) == 0 {
		return 0
	}
	return 100 * float64(n) / float64(len(D.Exposed))
}

//Descriptors calculates the SITE descriptors of the docking site S in the receptor atoms.
//Cavity atoms are those within CavityAtomDist of a cavity point. Of those, the ones with
//fewer than ExposedNeighbours other atoms within NeighbourRadius are considered exposed, and
//the descriptors are calculated over them.
func Descriptors(S *Site, atoms chem.AtomLocator) *SiteDescriptors {
	D := &SiteDescriptors{Volume: S.Volume()}
	cavAtoms := S.AtomListNear(atoms, nil, CavityAtomDist)
	if len(cavAtoms) == 0 {
		return D
	}
	//neighbours are looked up in a grid covering the cavity atoms, extended so every
	//atom that can be a neighbour is indexed.
	coords := chem.SomeCoords(atoms, cavAtoms)
	step := v3.C(1, 1, 1)
	g := grid.NewGeometryCovering(v3.MinOf(coords).AddScalar(-1), v3.MaxOf(coords).AddScalar(1), step, 0)
	index := grid.IndexAtoms(g, atoms, nil, NeighbourRadius+step.Length())
	r2 := NeighbourRadius * NeighbourRadius
	counts := make([]float64, len(cavAtoms))
	for j, i := range cavAtoms {
		c := coords[j]
		n := 0
		for _, k := range index.AtomListAt(c) {
			if k != i && v3.Dist2(c, atoms.Coord(k)) <= r2 {
				n++
			}
		}
		counts[j] = float64(n)
		if n >= ExposedNeighbours {
			continue
		}
		D.Exposed = append(D.Exposed, ExposedAtom{Index: i, Neighbours: n})
		at := atoms.Atom(i)
		switch {
		case chem.IsMetal(at):
			D.NMetal++
		case at.Symbol == "C":
			D.NCarbon++
		case at.Symbol == "N":
			D.NNitrogen++
		case at.Symbol == "O":
			D.NOxygen++
		case at.Symbol == "S":
			D.NSulfur++
		}
		if at.Charge > 0 {
			D.PosCharge += at.Charge
		} else {
			D.NegCharge += at.Charge
		}
	}
	D.MeanNeighbours = stat.Mean(counts, nil)
	return D
}

//Write writes the descriptors to w as name,DESCRIPTOR,value lines.
func (D *SiteDescriptors) Write(w io.Writer, name string) error {
	lines := []struct {
		key string
		val any
	}{
		{"SITE_VOL", D.Volume},
		{"SITE_NATOMS", D.NAtoms()},
		{"SITE_NCARBON", D.NCarbon},
		{"SITE_NNITROGEN", D.NNitrogen},
		{"SITE_NOXYGEN", D.NOxygen},
		{"SITE_NSULFUR", D.NSulfur},
		{"SITE_NMETAL", D.NMetal},
		{"SITE_PERC_CARBON", D.perc(D.NCarbon)},
		{"SITE_PERC_NITROGEN", D.perc(D.NNitrogen)},
		{"SITE_PERC_OXYGEN", D.perc(D.NOxygen)},
		{"SITE_PERC_SULFUR", D.perc(D.NSulfur)},
		{"SITE_PERC_METAL", D.perc(D.NMetal)},
		{"SITE_MEAN_NEIGHBOURS", D.MeanNeighbours},
		{"SITE_POS_CHG", D.PosCharge},
		{"SITE_NEG_CHG", D.NegCharge},
		{"SITE_TOT_CHG", D.TotalCharge()},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s,%s,%v\n", name, l.key, l.val); err != nil {
			return errDecorate(err, "SiteDescriptors.Write")
		}
	}
	return nil
}
