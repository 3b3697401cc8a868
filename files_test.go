/*
 * files_test.go, part of gocavity.
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
	"math"
	"strings"
	"testing"

	v3 "github.com/rmera/gocavity/v3"
)

func TestPDBRead(Te *testing.T) {
	mol, err := PDBRead("testdata/small.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("Read", mol.Len(), "atoms in", mol.NFrames(), "frames")
	if mol.Len() != 4 || mol.NFrames() != 2 {
		Te.Fatalf("Expected 4 atoms and 2 frames, got %d and %d", mol.Len(), mol.NFrames())
	}
	zn := mol.Atom(3)
	if zn.Symbol != "Zn" || !zn.Het || zn.Charge != 2 || zn.Chain != "B" {
		Te.Errorf("Wrong zinc atom: %+v", zn)
	}
	if mol.Atom(1).Name != "CA" || mol.Atom(1).Symbol != "C" || mol.Atom(1).Molname != "GLY" {
		Te.Errorf("Wrong CA atom: %+v", mol.Atom(1))
	}
	if c := mol.Coord(1); c != v3.C(1.458, 0, 0) {
		Te.Errorf("Wrong coordinates in frame 0: %v", c)
	}
	if err := mol.SetCurrent(1); err != nil {
		Te.Fatal(err)
	}
	if c := mol.Coord(1); math.Abs(c.X-2.458) > 1e-9 {
		Te.Errorf("Wrong coordinates in frame 1: %v", c)
	}
	if err := mol.SetCurrent(2); err == nil {
		Te.Error("SetCurrent should fail for a frame that doesn't exist")
	}
	f0, err := mol.Frame(0)
	if err != nil {
		Te.Fatal(err)
	}
	if c := f0.Coord(1); c != v3.C(1.458, 0, 0) || f0.Len() != 4 {
		Te.Errorf("Wrong view of frame 0: %v, %d atoms", c, f0.Len())
	}
	if _, err := mol.Frame(-1); err == nil {
		Te.Error("Frame should fail for a frame that doesn't exist")
	}
	if VdwRadius(zn) != 2.02 {
		Te.Errorf("Wrong radius for zinc: %v", VdwRadius(zn))
	}
	heavy := Heavy(mol)
	if len(heavy) != 3 || heavy[2] != 3 {
		Te.Errorf("Wrong heavy-atom selection: %v", heavy)
	}
}

func TestPDBFileReadErrors(Te *testing.T) {
	_, err := PDBFileRead(strings.NewReader("REMARK nothing here\n"))
	if err == nil {
		Te.Fatal("Expected an error for a PDB without atoms")
	}
	fmt.Println("Expected error:", err)
	if _, ok := err.(FileError); !ok {
		Te.Errorf("Error should be a FileError, got %T", err)
	}
}

func TestXYZRead(Te *testing.T) {
	mol, err := ReadFile("testdata/ligand.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 3 || mol.Atom(0).Symbol != "O" {
		Te.Fatalf("Wrong molecule read: %d atoms, first %v", mol.Len(), mol.Atom(0))
	}
	if mol.Atom(1).Mass != 1.0 {
		Te.Errorf("Mass not assigned from the symbol: %v", mol.Atom(1).Mass)
	}
	two := "2\nframe 1\nC 0 0 0\nO 1 0 0\n2\nframe 2\nC 0 0 1\nO 1 0 1\n"
	mol, err = XYZFileRead(strings.NewReader(two))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.NFrames() != 2 {
		Te.Errorf("Expected 2 frames, got %d", mol.NFrames())
	}
}

func TestSDRead(Te *testing.T) {
	mol, err := ReadFile("testdata/ref.sd")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 3 {
		Te.Fatalf("Expected 3 atoms, got %d", mol.Len())
	}
	if mol.Coord(1) != v3.C(2.5, 2, 3) || mol.Atom(1).Symbol != "O" {
		Te.Errorf("Wrong second atom: %v %v", mol.Atom(1), mol.Coord(1))
	}
	if len(Heavy(mol)) != 2 {
		Te.Errorf("Wrong heavy atoms: %v", Heavy(mol))
	}
	if _, err := ReadFile("testdata/ref.unknown"); err == nil {
		Te.Error("Unknown extensions should give an error")
	}
}

func TestErrDecorate(Te *testing.T) {
	err := errDecorate(CError{"bad", nil, true}, "Caller")
	if !strings.Contains(err.Error(), "Caller") {
		Te.Errorf("Decoration lost: %s", err)
	}
	if errDecorate(nil, "Caller") != nil {
		Te.Error("Decorating nil should give nil")
	}
}
