/*
 * files.go, part of gocavity.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	v3 "github.com/rmera/gocavity/v3"
)

//ReadFile reads a molecule from the file name, choosing the format
//from the file extension: .pdb and .ent for PDB, .xyz for XYZ and
//.sd, .sdf and .mol for MDL files.
func ReadFile(name string) (*Molecule, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdb", ".ent":
		return PDBRead(name)
	case ".xyz":
		return XYZRead(name)
	case ".sd", ".sdf", ".mol":
		return SDRead(name)
	}
	return nil, FError{CError{"Unknown molecular file format", []string{"ReadFile"}, true}, name, 0}
}

//PDB family

//This tries to guess a chemical element symbol from a PDB atom name. Mostly based on AMBER names.
//It only deals with some common bio-elements.
func symbolFromName(name string) (string, error) {
	symbol := ""
	if name == "" {
		return "", fmt.Errorf("Can't guess the symbol of an unnamed atom")
	}
	if len(name) == 4 || name[0] == 'H' { //I thiiink only Hs can have 4-char names in amber.
		symbol = "H"
	} else if name[0] == 'C' {
		switch name {
		case "CU":
			symbol = "Cu"
		case "CO":
			symbol = "Co"
		case "CL":
			symbol = "Cl"
		default: //Ca is not considered here
			symbol = "C"
		}
	} else if name[0] == 'N' {
		if name == "NA" {
			symbol = "Na"
		} else {
			symbol = "N"
		}
	} else if name[0] == 'O' {
		symbol = "O"
	} else if name[0] == 'P' {
		symbol = "P"
	} else if name[0] == 'S' {
		if name == "SE" {
			symbol = "Se"
		} else {
			symbol = "S"
		}
	} else if len(name) >= 2 && name[0:2] == "ZN" {
		symbol = "Zn"
	} else if len(name) >= 2 && name[0:2] == "FE" {
		symbol = "Fe"
	} else if len(name) >= 2 && name[0:2] == "MG" {
		symbol = "Mg"
	}
	if symbol == "" {
		return symbol, fmt.Errorf("Couldn't guess symbol from PDB name %s", name)
	}
	return symbol, nil
}

//read_pdb_coords parses the coordinates and b-factor from a valid ATOM or HETATM line.
//A missing b-factor is read as zero.
func read_pdb_coords(line string) (v3.Coord, float64, error) {
	var c v3.Coord
	var err error
	if len(line) < 54 {
		return c, 0, fmt.Errorf("Line too short for an ATOM record")
	}
	if c.X, err = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64); err != nil {
		return c, 0, err
	}
	if c.Y, err = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64); err != nil {
		return c, 0, err
	}
	if c.Z, err = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64); err != nil {
		return c, 0, err
	}
	var bfactor float64
	if len(line) >= 66 {
		if bfactor, err = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64); err != nil {
			bfactor = 0 //we don't really need them.
		}
	}
	return c, bfactor, nil
}

//read_full_pdb_line parses a valid ATOM or HETATM line of a PDB file, returns an Atom
//object with the info except for the coordinates and b-factors, which are returned
//separately.
func read_full_pdb_line(line string) (*Atom, v3.Coord, float64, error) {
	atom := new(Atom)
	c, bfactor, err := read_pdb_coords(line)
	if err != nil {
		return nil, c, 0, err
	}
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.Id, err = strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		return nil, c, 0, err
	}
	atom.Name = strings.TrimSpace(line[12:16])
	atom.Molname = strings.TrimSpace(line[17:20])
	atom.Chain = strings.TrimSpace(line[21:22])
	atom.Molid, err = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return nil, c, 0, err
	}
	if len(line) >= 60 {
		atom.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	}
	//The symbol and charge are read only if they are there
	//We don't catch errors. If something is missing we
	//just ommit it
	if len(line) >= 78 {
		atom.Symbol = strings.TrimSpace(line[76:78])
		if len(atom.Symbol) == 2 {
			atom.Symbol = atom.Symbol[:1] + strings.ToLower(atom.Symbol[1:])
		}
	}
	if len(line) >= 80 {
		atom.Charge = pdbCharge(line[78:80])
	}
	//This part tries to guess the symbol from the atom name, if it has not been read
	if atom.Symbol == "" {
		atom.Symbol, _ = symbolFromName(atom.Name)
	}
	fillFromSymbol(atom)
	return atom, c, bfactor, nil
}

//pdbCharge reads the charge field of a PDB line, in the "2+" format
func pdbCharge(field string) float64 {
	field = strings.TrimSpace(field)
	if len(field) != 2 {
		return 0
	}
	q, err := strconv.ParseFloat(field[:1], 64)
	if err != nil {
		return 0
	}
	if field[1] == '-' {
		q = -q
	}
	return q
}

//PDBRead reads the PDB file pdbname and returns a Molecule. Each model in
//the file becomes a frame of the molecule. The atom information is read only from
//the first model, and all models are required to have the same number of atoms.
func PDBRead(pdbname string) (*Molecule, error) {
	pdbfile, err := os.Open(pdbname)
	if err != nil {
		return nil, FError{CError{err.Error(), []string{"PDBRead"}, true}, pdbname, 0}
	}
	defer pdbfile.Close()
	mol, err := pdbBufIORead(bufio.NewReader(pdbfile), pdbname)
	if err != nil {
		return nil, errDecorate(err, "PDBRead")
	}
	return mol, nil
}

//PDBFileRead reads a PDB from the reader r and returns a Molecule, as PDBRead.
func PDBFileRead(r io.Reader) (*Molecule, error) {
	mol, err := pdbBufIORead(bufio.NewReader(r), "(reader)")
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	return mol, nil
}

func pdbBufIORead(pdb *bufio.Reader, pdbname string) (*Molecule, error) {
	atoms := make([]*Atom, 0)
	coords := [][]v3.Coord{make([]v3.Coord, 0)}
	bfactors := [][]float64{make([]float64, 0)}
	firstModel := true //are we reading the first model? if not we only save coordinates
	contlines := 0     //count the lines read to better report errors
	for {
		line, err := pdb.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, FError{CError{err.Error(), []string{"pdbBufIORead"}, true}, pdbname, contlines}
		}
		contlines++
		if strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM") {
			last := len(coords) - 1
			if firstModel {
				at, c, b, err2 := read_full_pdb_line(line)
				if err2 != nil {
					return nil, FError{CError{err2.Error(), []string{"pdbBufIORead"}, true}, pdbname, contlines}
				}
				atoms = append(atoms, at)
				coords[last] = append(coords[last], c)
				bfactors[last] = append(bfactors[last], b)
			} else {
				c, b, err2 := read_pdb_coords(line)
				if err2 != nil {
					return nil, FError{CError{err2.Error(), []string{"pdbBufIORead"}, true}, pdbname, contlines}
				}
				coords[last] = append(coords[last], c)
				bfactors[last] = append(bfactors[last], b)
			}
		} else if strings.HasPrefix(line, "MODEL") && len(coords[len(coords)-1]) > 0 {
			//a new model after one that had atoms
			firstModel = false
			coords = append(coords, make([]v3.Coord, 0, len(atoms)))
			bfactors = append(bfactors, make([]float64, 0, len(atoms)))
		}
		if err == io.EOF {
			break
		}
	}
	if len(atoms) == 0 {
		return nil, FError{CError{"No atoms found", []string{"pdbBufIORead"}, true}, pdbname, contlines}
	}
	//a trailing MODEL record with no atoms
	if len(coords[len(coords)-1]) == 0 {
		coords = coords[:len(coords)-1]
		bfactors = bfactors[:len(bfactors)-1]
	}
	return buildMolecule(atoms, coords, bfactors, pdbname)
}

func buildMolecule(atoms []*Atom, coords [][]v3.Coord, bfactors [][]float64, name string) (*Molecule, error) {
	frames := make([]*v3.Matrix, len(coords))
	for i, v := range coords {
		if len(v) != len(atoms) {
			return nil, FError{CError{fmt.Sprintf("Frame %d has %d atoms, expected %d", i+1, len(v), len(atoms)), []string{"buildMolecule"}, true}, name, 0}
		}
		frames[i] = v3.FromCoords(v)
	}
	top, err := NewTopology(atoms, 0, 0)
	if err != nil {
		return nil, errDecorate(err, "buildMolecule")
	}
	return NewMolecule(frames, top, bfactors)
}

//XYZ family

//XYZRead reads the xyz file xyzname and returns a Molecule. Each structure in the
//file becomes a frame.
func XYZRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, FError{CError{err.Error(), []string{"XYZRead"}, true}, xyzname, 0}
	}
	defer xyzfile.Close()
	mol, err := xyzBufIORead(bufio.NewReader(xyzfile), xyzname)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return mol, nil
}

//XYZFileRead reads an xyz file from r, as XYZRead.
func XYZFileRead(r io.Reader) (*Molecule, error) {
	mol, err := xyzBufIORead(bufio.NewReader(r), "(reader)")
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead")
	}
	return mol, nil
}

func xyzBufIORead(xyz *bufio.Reader, xyzname string) (*Molecule, error) {
	var atoms []*Atom
	var coords [][]v3.Coord
	contlines := 0
	ferr := func(msg string) error {
		return FError{CError{msg, []string{"xyzBufIORead"}, true}, xyzname, contlines}
	}
	for {
		line, err := xyz.ReadString('\n')
		contlines++
		if err != nil && strings.TrimSpace(line) == "" {
			break //EOF
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || natoms <= 0 {
			return nil, ferr("Expected the number of atoms")
		}
		if atoms != nil && natoms != len(atoms) {
			return nil, ferr("Frames with different number of atoms")
		}
		if _, err = xyz.ReadString('\n'); err != nil { //the comment line
			return nil, ferr("Unexpected end of file")
		}
		contlines++
		frame := make([]v3.Coord, natoms)
		first := atoms == nil
		for i := 0; i < natoms; i++ {
			line, err = xyz.ReadString('\n')
			contlines++
			if err != nil && strings.TrimSpace(line) == "" {
				return nil, ferr("Unexpected end of file")
			}
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, ferr("Ill formatted atom line")
			}
			c, err := parseFloats(fields[1:4])
			if err != nil {
				return nil, ferr(err.Error())
			}
			frame[i] = c
			if first {
				at := &Atom{Id: i + 1, Name: fields[0], Symbol: fields[0], Molname: "UNK", Molid: 1}
				fillFromSymbol(at)
				atoms = append(atoms, at)
			}
		}
		coords = append(coords, frame)
	}
	if len(atoms) == 0 {
		return nil, ferr("No atoms found")
	}
	return buildMolecule(atoms, coords, nil, xyzname)
}

func parseFloats(fields []string) (v3.Coord, error) {
	var f [3]float64
	var err error
	for i := range f {
		if f[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
			return v3.Coord{}, err
		}
	}
	return v3.Coord{X: f[0], Y: f[1], Z: f[2]}, nil
}

//MDL family

//SDRead reads the first molecule in the MDL (SD or mol) file sdname.
func SDRead(sdname string) (*Molecule, error) {
	sdfile, err := os.Open(sdname)
	if err != nil {
		return nil, FError{CError{err.Error(), []string{"SDRead"}, true}, sdname, 0}
	}
	defer sdfile.Close()
	mol, err := sdBufIORead(bufio.NewReader(sdfile), sdname)
	if err != nil {
		return nil, errDecorate(err, "SDRead")
	}
	return mol, nil
}

//SDFileRead reads the first molecule in a MDL file from r.
func SDFileRead(r io.Reader) (*Molecule, error) {
	mol, err := sdBufIORead(bufio.NewReader(r), "(reader)")
	if err != nil {
		return nil, errDecorate(err, "SDFileRead")
	}
	return mol, nil
}

func sdBufIORead(sd *bufio.Reader, sdname string) (*Molecule, error) {
	contlines := 0
	ferr := func(msg string) error {
		return FError{CError{msg, []string{"sdBufIORead"}, true}, sdname, contlines}
	}
	var name string
	//header block
	for i := 0; i < 3; i++ {
		line, err := sd.ReadString('\n')
		contlines++
		if err != nil {
			return nil, ferr("Unexpected end of file in header")
		}
		if i == 0 {
			name = strings.TrimSpace(line)
		}
	}
	counts, err := sd.ReadString('\n')
	contlines++
	if err != nil || len(counts) < 6 {
		return nil, ferr("Missing counts line")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(counts[0:3]))
	if err != nil || natoms <= 0 {
		return nil, ferr("Can't read the number of atoms")
	}
	if name == "" {
		name = "UNK"
	}
	if len(name) > 3 {
		name = name[:3]
	}
	atoms := make([]*Atom, natoms)
	coords := make([]v3.Coord, natoms)
	for i := 0; i < natoms; i++ {
		line, err := sd.ReadString('\n')
		contlines++
		if err != nil && strings.TrimSpace(line) == "" {
			return nil, ferr("Unexpected end of file in atom block")
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, ferr("Ill formatted atom line")
		}
		c, err := parseFloats(fields[0:3])
		if err != nil {
			return nil, ferr(err.Error())
		}
		coords[i] = c
		atoms[i] = &Atom{Id: i + 1, Name: fmt.Sprintf("%s%d", fields[3], i+1), Symbol: fields[3], Molname: strings.ToUpper(name), Molid: 1}
		fillFromSymbol(atoms[i])
	}
	return buildMolecule(atoms, [][]v3.Coord{coords}, nil, sdname)
}
