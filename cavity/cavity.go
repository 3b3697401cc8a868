/*
 * cavity.go, part of gocavity.
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
	"cmp"
	"fmt"
	"slices"

	"github.com/rmera/gocavity/grid"
	v3 "github.com/rmera/gocavity/v3"
)

//Cavity is a set of grid points representing an empty region of a receptor, usually
//a candidate binding site. A Cavity doesn't change after creation.
type Cavity struct {
	coords []v3.Coord
	step   v3.Coord
	axes   PrincipalAxes
	min    v3.Coord
	max    v3.Coord
}

//New returns a cavity formed by the points in coords, obtained from a grid
//with step step. The coordinates are copied.
//If the principal axes of the points can't be obtained, the cavity
//gets DefaultAxes centered in the centroid of the points.
func New(coords []v3.Coord, step v3.Coord) *Cavity {
	c := &Cavity{coords: slices.Clone(coords), step: step}
	c.setDerived()
	return c
}

//setDerived calculates the principal axes and the limits of the cavity
func (C *Cavity) setDerived() {
	if len(C.coords) == 0 {
		C.axes = DefaultAxes()
		C.min = v3.Coord{}
		C.max = v3.Coord{}
		return
	}
	axes, err := AxesFromCoords(C.coords)
	if err != nil {
		axes = DefaultAxes()
		axes.COM = v3.Centroid(C.coords)
	}
	C.axes = axes
	C.min = v3.MinOf(C.coords)
	C.max = v3.MaxOf(C.coords)
}

//Coords returns the points of the cavity. The slice should not be modified.
func (C *Cavity) Coords() []v3.Coord { return C.coords }

//NumCoords returns the number of points in the cavity
func (C *Cavity) NumCoords() int { return len(C.coords) }

//Step returns the step of the grid the cavity was obtained from
func (C *Cavity) Step() v3.Coord { return C.step }

//Axes returns the principal axes of the cavity.
func (C *Cavity) Axes() PrincipalAxes { return C.axes }

//Center returns the center of mass of the cavity points.
func (C *Cavity) Center() v3.Coord { return C.axes.COM }

//Min returns the lowest coordinates of the cavity points
func (C *Cavity) Min() v3.Coord { return C.min }

//Max returns the highest coordinates of the cavity points
func (C *Cavity) Max() v3.Coord { return C.max }

//Extent returns Max-Min
func (C *Cavity) Extent() v3.Coord { return C.max.Sub(C.min) }

//Volume returns the volume of the cavity: the number of points times the volume of a grid cell.
func (C *Cavity) Volume() float64 {
	return float64(len(C.coords)) * C.step.X * C.step.Y * C.step.Z
}

//Near returns true if any point of the cavity is within dist of c.
func (C *Cavity) Near(c v3.Coord, dist float64) bool {
	d2 := dist * dist
	for _, v := range C.coords {
		if v3.Dist2(v, c) <= d2 {
			return true
		}
	}
	return false
}

//Grid returns a grid covering the cavity plus a one-point border, with the cavity points set to 1 and
//all others set to 0.
func (C *Cavity) Grid() *grid.Real {
	n := C.Extent().Div(C.step)
	g := grid.NewGeometry(C.min.Sub(C.step), C.step, int(n.X)+3, int(n.Y)+3, int(n.Z)+3, 0)
	R := grid.NewReal(g)
	for _, v := range C.coords {
		R.SetValueAt(v, 1)
	}
	return R
}

//String returns a one-line description of the cavity.
func (C *Cavity) String() string {
	return fmt.Sprintf("Size=%d points; Vol=%g A^3; Min=%v; Max=%v; Center=%v; Extent=%v",
		len(C.coords), C.Volume(), C.min, C.max, C.axes.COM, C.Extent())
}

//SortByDistance sorts cavs by the distance of their center to c, in ascending order.
func SortByDistance(cavs []*Cavity, c v3.Coord) {
	slices.SortStableFunc(cavs, func(a, b *Cavity) int {
		return cmp.Compare(v3.Dist2(a.Center(), c), v3.Dist2(b.Center(), c))
	})
}

//SortByVolume sorts cavs by their number of points, in descending order.
func SortByVolume(cavs []*Cavity) {
	slices.SortStableFunc(cavs, func(a, b *Cavity) int {
		return cmp.Compare(b.NumCoords(), a.NumCoords())
	})
}
