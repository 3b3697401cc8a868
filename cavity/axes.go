/*
 * axes.go, part of gocavity.
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

	chem "github.com/rmera/gocavity"
	v3 "github.com/rmera/gocavity/v3"
)

//PrincipalAxes contains the center of mass, principal axes and principal moments
//of a set of points or atoms. Axes are sorted by ascending moment.
type PrincipalAxes struct {
	COM     v3.Coord
	Axes    [3]v3.Coord
	Moments [3]float64
}

//DefaultAxes returns axes centered in the origin, along the cartesian axes,
//with unit moments.
func DefaultAxes() PrincipalAxes {
	return PrincipalAxes{
		Axes:    [3]v3.Coord{v3.C(1, 0, 0), v3.C(0, 1, 0), v3.C(0, 0, 1)},
		Moments: [3]float64{1, 1, 1},
	}
}

func (P PrincipalAxes) String() string {
	return fmt.Sprintf("COM=%v; Axes=%v %v %v; Moments=%g %g %g", P.COM, P.Axes[0], P.Axes[1], P.Axes[2], P.Moments[0], P.Moments[1], P.Moments[2])
}

//inertia returns the moment of inertia tensor of the points relative to com.
func inertia(points []v3.Coord, masses []float64, com v3.Coord) *v3.Matrix {
	var ixx, iyy, izz, ixy, ixz, iyz float64
	for i, p := range points {
		m := 1.0
		if masses != nil {
			m = masses[i]
		}
		r := p.Sub(com)
		rx2, ry2, rz2 := r.X*r.X, r.Y*r.Y, r.Z*r.Z
		ixx += m * (ry2 + rz2)
		iyy += m * (rx2 + rz2)
		izz += m * (rx2 + ry2)
		ixy += m * r.X * r.Y
		ixz += m * r.X * r.Z
		iyz += m * r.Y * r.Z
	}
	t, _ := v3.NewMatrix([]float64{
		ixx, -ixy, -ixz,
		-ixy, iyy, -iyz,
		-ixz, -iyz, izz,
	})
	return t
}

func diagonalize(points []v3.Coord, masses []float64, com v3.Coord) (PrincipalAxes, error) {
	ret := PrincipalAxes{COM: com}
	vecs, vals, err := v3.EigenWrap(inertia(points, masses, com), -1)
	if err != nil {
		return DefaultAxes(), errDecorate(err, "diagonalize")
	}
	for i := 0; i < 3; i++ {
		ret.Axes[i] = vecs.Coord(i)
		ret.Moments[i] = vals[i]
	}
	return ret, nil
}

//AxesFromCoords returns the principal axes of the coordinates, all with unit mass.
//It returns DefaultAxes for an empty list.
func AxesFromCoords(coords []v3.Coord) (PrincipalAxes, error) {
	if len(coords) == 0 {
		return DefaultAxes(), nil
	}
	ret, err := diagonalize(coords, nil, v3.Centroid(coords))
	return ret, errDecorate(err, "AxesFromCoords")
}

//AxesFromAtoms returns the mass-weighted principal axes of the atoms in sel (all atoms if
//sel is nil). The direction of the axes is chosen so the first atom has positive projections on
//the first two axes, and the third axis completes a right-handed set.
//A water molecule (O, H, H in that order) gets axes based on its bonds instead. Atoms with
//no mass are given unit mass.
func AxesFromAtoms(atoms chem.AtomLocator, sel []int) (PrincipalAxes, error) {
	if sel == nil {
		sel = chem.All(atoms)
	}
	if len(sel) == 0 {
		return DefaultAxes(), nil
	}
	if len(sel) == 3 && atoms.Atom(sel[0]).Symbol == "O" && atoms.Atom(sel[1]).Symbol == "H" && atoms.Atom(sel[2]).Symbol == "H" {
		return waterAxes(atoms.Coord(sel[0]), atoms.Coord(sel[1]), atoms.Coord(sel[2])), nil
	}
	coords := chem.SomeCoords(atoms, sel)
	masses := make([]float64, len(sel))
	var com v3.Coord
	var total float64
	for i, v := range sel {
		m := atoms.Atom(v).Mass
		if m <= 0 {
			m = 1
		}
		masses[i] = m
		total += m
		com = com.Add(coords[i].Scale(m))
	}
	com = com.Scale(1 / total)
	ret, err := diagonalize(coords, masses, com)
	if err != nil {
		return ret, errDecorate(err, "AxesFromAtoms")
	}
	c0 := coords[0].Sub(com)
	if c0.Dot(ret.Axes[0]) < 0 {
		ret.Axes[0] = ret.Axes[0].Scale(-1)
	}
	if c0.Dot(ret.Axes[1]) < 0 {
		ret.Axes[1] = ret.Axes[1].Scale(-1)
	}
	ret.Axes[2] = ret.Axes[0].Cross(ret.Axes[1])
	return ret, nil
}

//waterAxes returns axes centered in the oxygen, with the first axis along the bisector of the H-O-H angle and
//the third normal to the molecular plane. The first hydrogen lies in the positive side of the second axis.
func waterAxes(o, h1, h2 v3.Coord) PrincipalAxes {
	v1 := h1.Sub(o)
	v2 := h2.Sub(o)
	ret := DefaultAxes()
	ret.COM = o
	ret.Axes[0] = v1.Add(v2).Scale(0.5).Unit()
	ret.Axes[2] = v1.Cross(v2).Unit()
	ret.Axes[1] = ret.Axes[0].Cross(ret.Axes[2])
	if v1.Dot(ret.Axes[1]) < 0 {
		ret.Axes[1] = ret.Axes[1].Scale(-1)
		ret.Axes[2] = ret.Axes[2].Scale(-1)
	}
	return ret
}
