/*
 * chem.go, part of gocavity.
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

package chem

import (
	"fmt"

	v3 "github.com/rmera/gocavity/v3"
)

//Atom contains the atoms read except for the coordinates, which will be in a matrix
//and the b-factors, which are in a separate slice of float64.
type Atom struct {
	Name      string
	Id        int
	Tag       int //Just added this for something that someone might want to keep that is not a float.
	Molname   string
	Molid     int
	Chain     string
	Mass      float64
	Occupancy float64
	Vdw       float64
	Charge    float64
	Symbol    string
	Het       bool // is hetatm in the pdb file?
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilAtom)
	}
	ret := *A
	return &ret
}

//String returns a short description of the atom, as residue name, residue ID, chain and atom name.
func (A *Atom) String() string {
	return fmt.Sprintf("%s:%s%d:%s", A.Chain, A.Molname, A.Molid, A.Name)
}

/*****Topology type***/

//Topology contains information about a molecule which is not expected to change in time (i.e. everything except for coordinates and b-factors)
type Topology struct {
	Atoms    []*Atom
	charge   int
	unpaired int
}

//NewTopology returns a topology with the atoms ats, total charge charge and unpaired
//unpaired electrons. It returns error if ats is nil.
func NewTopology(ats []*Atom, charge, unpaired int) (*Topology, error) {
	if ats == nil {
		return nil, CError{"Supplied a nil atom slice", []string{"NewTopology"}, true}
	}
	top := new(Topology)
	top.Atoms = ats
	top.charge = charge
	top.unpaired = unpaired
	return top, nil
}

//Charge gets the total charge of the topology
func (T *Topology) Charge() int {
	return T.charge
}

//Unpaired gets the number of unpaired electrons in the topology
func (T *Topology) Unpaired() int {
	return T.unpaired
}

//SetCharge sets the total charge of the topology to i
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() || i < 0 {
		panic(ErrAtomOutOfRange)
	}
	return T.Atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	if T == nil {
		return 0
	}
	return len(T.Atoms)
}

//Masses returns a slice of float64 with the masses of the atoms in the topology, or nil and an error if they have not been calculated
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i, v := range T.Atoms {
		if v.Mass == 0 {
			return nil, CError{fmt.Sprintf("Not all the masses have been obtained: atom %d", i), []string{"Masses"}, false}
		}
		mass[i] = v.Mass
	}
	return mass, nil
}

/**Type Molecule**/

//Molecule contains all the info for a molecule in many states. The info that is expected to change between states,
//Coordinates and b-factors are stored separately from other atomic info. One of the states is the "current" one,
//and it is the one used by the Coord method. This allows a receptor with several conformations to be handed,
//one conformation at the time, to functions that only know about AtomLocators.
type Molecule struct {
	*Topology
	Coords   []*v3.Matrix
	Bfactors [][]float64
	current  int
}

//NewMolecule makes a molecule with ats atoms, coords coordinates and bfactors b-factors.
//It returns error if the number of atoms and of coordinates in any of the frames differ.
//bfactors can be nil, in which case they are set to zero.
func NewMolecule(coords []*v3.Matrix, ats *Topology, bfactors [][]float64) (*Molecule, error) {
	if len(coords) == 0 || ats == nil {
		return nil, CError{"Supplied nil or empty coordinates or topology", []string{"NewMolecule"}, true}
	}
	for i, v := range coords {
		if v.NVecs() != ats.Len() {
			return nil, CError{fmt.Sprintf("Frame %d has %d coordinates for %d atoms", i, v.NVecs(), ats.Len()), []string{"NewMolecule"}, true}
		}
	}
	if bfactors == nil {
		bfactors = make([][]float64, len(coords))
		for i := range bfactors {
			bfactors[i] = make([]float64, ats.Len())
		}
	}
	if len(bfactors) != len(coords) {
		return nil, CError{"Inconsistent b-factors and coordinates", []string{"NewMolecule"}, true}
	}
	return &Molecule{Topology: ats, Coords: coords, Bfactors: bfactors}, nil
}

//NewMoleculeFromCoords builds a Molecule with a single frame, where
//each atom is a generic one of the given element.
//Mostly useful for tests and for probe sets.
func NewMoleculeFromCoords(coords []v3.Coord, symbol string) *Molecule {
	ats := make([]*Atom, len(coords))
	for i := range ats {
		ats[i] = &Atom{Id: i + 1, Name: symbol, Symbol: symbol, Molname: "UNK", Molid: 1, Mass: symbolMass[symbol], Vdw: symbolVdwrad[symbol]}
	}
	top, _ := NewTopology(ats, 0, 0)
	return &Molecule{Topology: top, Coords: []*v3.Matrix{v3.FromCoords(coords)}, Bfactors: [][]float64{make([]float64, len(coords))}}
}

//NFrames returns the number of frames (states) in the molecule
func (M *Molecule) NFrames() int {
	return len(M.Coords)
}

//Current returns the index of the frame used by Coord.
func (M *Molecule) Current() int {
	return M.current
}

//SetCurrent sets the frame used by Coord. It returns an error if
//the frame does not exist.
func (M *Molecule) SetCurrent(frame int) error {
	if frame < 0 || frame >= len(M.Coords) {
		return CError{fmt.Sprintf("Frame %d out of range (%d frames)", frame, len(M.Coords)), []string{"SetCurrent"}, true}
	}
	M.current = frame
	return nil
}

//Frame returns a view of the molecule that always uses the coordinates of the given
//frame, regardless of the current one. Views of different frames can be used from
//different goroutines.
func (M *Molecule) Frame(frame int) (AtomLocator, error) {
	if frame < 0 || frame >= len(M.Coords) {
		return nil, CError{fmt.Sprintf("Frame %d out of range (%d frames)", frame, len(M.Coords)), []string{"Frame"}, true}
	}
	return frameView{Topology: M.Topology, coords: M.Coords[frame]}, nil
}

type frameView struct {
	*Topology
	coords *v3.Matrix
}

func (F frameView) Coord(i int) v3.Coord { return F.coords.Coord(i) }

//Len returns the number of atoms in the molecule. A nil molecule has none.
func (M *Molecule) Len() int {
	if M == nil {
		return 0
	}
	return M.Topology.Len()
}

//Coord returns the coordinates of the ith atom in the current frame.
func (M *Molecule) Coord(i int) v3.Coord {
	return M.Coords[M.current].Coord(i)
}

//Corrupted checks whether the molecule is corrupted, i.e. the
//coordinates don't match the number of atoms. It returns nil if
//the molecule is fine.
func (M *Molecule) Corrupted() error {
	if M.Topology == nil || len(M.Coords) == 0 {
		return CError{"Molecule without topology or coordinates", []string{"Corrupted"}, true}
	}
	for i, v := range M.Coords {
		if v.NVecs() != M.Len() {
			return CError{fmt.Sprintf("Frame %d has %d coordinates for %d atoms", i, v.NVecs(), M.Len()), []string{"Corrupted"}, true}
		}
	}
	return nil
}
