/*
 * atomicdata.go, part of gocavity.
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

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"D":  2.014,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
//Note that just common "bio-elements" are present
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"D":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
}

//the radius used when the element is not known
const defaultVdw = 1.70

var metals = map[string]bool{
	"K": true, "Ca": true, "Mg": true, "Na": true, "Cu": true, "Zn": true,
	"Co": true, "Fe": true, "Mn": true, "Cr": true, "Be": true,
}

//VdwRadius returns the van der Waals radius of the atom, in A.
//If the Vdw field of the atom is not set, the value
//is taken from the element, and if the element is not known,
//the radius of carbon is returned.
func VdwRadius(at *Atom) float64 {
	if at.Vdw > 0 {
		return at.Vdw
	}
	if r, ok := symbolVdwrad[at.Symbol]; ok {
		return r
	}
	return defaultVdw
}

//IsMetal returns true if the atom is one of the metals
//known to goCavity.
func IsMetal(at *Atom) bool {
	return metals[at.Symbol]
}

//fillFromSymbol sets the mass and van der Waals radius of at from its element, if they are not set.
func fillFromSymbol(at *Atom) {
	if at.Mass == 0 {
		at.Mass = symbolMass[at.Symbol]
	}
	if at.Vdw == 0 {
		at.Vdw = symbolVdwrad[at.Symbol]
	}
}
