/*
 * geometry.go, part of gocavity.
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
	"fmt"
	"math"
	"strings"

	v3 "github.com/rmera/gocavity/v3"
)

//Geometry contains the dimensions, position and step of a grid, and
//performs all the conversions between linear indexes, 3D indexes and
//real-world coordinates.
//
//The grid points are placed at integral multiples of the step, counted from
//the origin of coordinates. nXMin..nZMax are those integral multiples for the
//first and last point along each axis. Geometry is a value type: copying it gives
//an independent grid placement.
type Geometry struct {
	min    v3.Coord //real-world coordinates covered by the grid. Half a step beyond the first point.
	max    v3.Coord
	step   v3.Coord
	padMin v3.Coord //min and max of the region not in the padding.
	padMax v3.Coord
	nx     int
	ny     int
	nz     int
	n      int
	sx     int //strides
	sy     int
	sz     int
	npad   int
	nxMin  int
	nyMin  int
	nzMin  int
	nxMax  int
	nyMax  int
	nzMax  int
}

//NewGeometry returns a grid geometry with nx, ny and nz points along each axis, spaced by step,
//and with npad points of padding on each border. The first grid point will be the lattice point (integral multiple of step)
//closest to gridMin.
//It panics if any step is not positive or any dimension is zero.
func NewGeometry(gridMin, step v3.Coord, nx, ny, nz, npad int) Geometry {
	if step.X <= 0 || step.Y <= 0 || step.Z <= 0 {
		panic(ErrNonPositiveStep)
	}
	if nx <= 0 || ny <= 0 || nz <= 0 {
		panic(ErrEmptyGrid)
	}
	g := Geometry{
		step: step,
		nx:   nx,
		ny:   ny,
		nz:   nz,
		n:    nx * ny * nz,
		sx:   ny * nz,
		sy:   nz,
		sz:   1,
		npad: npad,
	}
	g.SetGridMin(gridMin)
	return g
}

//NewGeometryCovering returns a geometry with step step that covers the region between
//min and max, with n=int(extent/step)+1 points per axis. The grid points start
//at min (rounded to the lattice).
func NewGeometryCovering(min, max, step v3.Coord, npad int) Geometry {
	ext := max.Sub(min).Div(step)
	return NewGeometry(min, step, int(ext.X)+1, int(ext.Y)+1, int(ext.Z)+1, npad)
}

/**Accessors**/

//NX returns the number of points along the X axis.
func (g *Geometry) NX() int { return g.nx }

//NY returns the number of points along the Y axis.
func (g *Geometry) NY() int { return g.ny }

//NZ returns the number of points along the Z axis.
func (g *Geometry) NZ() int { return g.nz }

//N returns the total number of points
func (g *Geometry) N() int { return g.n }

//SX returns the stride along X
func (g *Geometry) SX() int { return g.sx }

//SY returns the stride along Y
func (g *Geometry) SY() int { return g.sy }

//SZ returns the stride along Z
func (g *Geometry) SZ() int { return g.sz }

//Pad returns the padding width, in grid points
func (g *Geometry) Pad() int { return g.npad }

//Step returns the grid step
func (g *Geometry) Step() v3.Coord { return g.step }

//Min returns the lowest real-world coordinates covered by the grid,
//half a step below the first grid point.
func (g *Geometry) Min() v3.Coord { return g.min }

//Max returns the highest real-world coordinates covered by the grid,
//half a step above the last grid point.
func (g *Geometry) Max() v3.Coord { return g.max }

//PadMin returns the lower limit of the region outside the padding.
func (g *Geometry) PadMin() v3.Coord { return g.padMin }

//PadMax returns the upper limit of the region outside the padding.
func (g *Geometry) PadMax() v3.Coord { return g.padMax }

//NXMin returns the position of the first point along X, in multiples of the step.
func (g *Geometry) NXMin() int { return g.nxMin }

//NYMin returns the position of the first point along Y, in multiples of the step.
func (g *Geometry) NYMin() int { return g.nyMin }

//NZMin returns the position of the first point along Z, in multiples of the step.
func (g *Geometry) NZMin() int { return g.nzMin }

//NXMax returns the position of the last point along X, in multiples of the step.
func (g *Geometry) NXMax() int { return g.nxMax }

//NYMax returns the position of the last point along Y, in multiples of the step.
func (g *Geometry) NYMax() int { return g.nyMax }

//NZMax returns the position of the last point along Z, in multiples of the step.
func (g *Geometry) NZMax() int { return g.nzMax }

//Extent returns the size of the region covered by the grid
func (g *Geometry) Extent() v3.Coord { return g.max.Sub(g.min) }

//Center returns the center of the region covered by the grid
func (g *Geometry) Center() v3.Coord { return g.min.Add(g.max).Scale(0.5) }

//Same returns true if g and o describe the same grid.
func (g *Geometry) Same(o *Geometry) bool {
	return g.step == o.step && g.nx == o.nx && g.ny == o.ny && g.nz == o.nz &&
		g.nxMin == o.nxMin && g.nyMin == o.nyMin && g.nzMin == o.nzMin && g.npad == o.npad
}

/**Placement**/

//SetGridMin moves the grid so the first point is the lattice point closest to gridMin.
//The number of points doesn't change.
func (g *Geometry) SetGridMin(gridMin v3.Coord) {
	n := gridMin.Div(g.step)
	g.nxMin = int(math.Floor(n.X + 0.5))
	g.nyMin = int(math.Floor(n.Y + 0.5))
	g.nzMin = int(math.Floor(n.Z + 0.5))
	g.nxMax = g.nxMin + g.nx - 1
	g.nyMax = g.nyMin + g.ny - 1
	g.nzMax = g.nzMin + g.nz - 1
	g.setLimits()
}

//SetGridStep changes the step of the grid, keeping the integral positions
//of the first and last points. Data already stored in a grid is not moved, so
//this should not be called on a filled grid.
func (g *Geometry) SetGridStep(step v3.Coord) {
	if step.X <= 0 || step.Y <= 0 || step.Z <= 0 {
		panic(ErrNonPositiveStep)
	}
	g.step = step
	g.setLimits()
}

//SetPad sets the padding width, in grid points.
func (g *Geometry) SetPad(npad int) {
	g.npad = npad
	g.padMin = g.min.Add(g.step.Scale(float64(npad)))
	g.padMax = g.max.Sub(g.step.Scale(float64(npad)))
}

//setLimits recalculates the real-world limits and the padding.
func (g *Geometry) setLimits() {
	g.min = v3.C(float64(g.nxMin), float64(g.nyMin), float64(g.nzMin)).AddScalar(-0.5).Mul(g.step)
	g.max = v3.C(float64(g.nxMax), float64(g.nyMax), float64(g.nzMax)).AddScalar(0.5).Mul(g.step)
	g.SetPad(g.npad)
}

/**Conversions. None of these check their arguments**/

//IX returns the X index of the grid interval containing c.
func (g *Geometry) IX(c v3.Coord) int {
	return int(math.Floor((c.X - g.min.X) / g.step.X))
}

//IY returns the Y index of the grid interval containing c.
func (g *Geometry) IY(c v3.Coord) int {
	return int(math.Floor((c.Y - g.min.Y) / g.step.Y))
}

//IZ returns the Z index of the grid interval containing c.
func (g *Geometry) IZ(c v3.Coord) int {
	return int(math.Floor((c.Z - g.min.Z) / g.step.Z))
}

//IXYZ returns the linear index for the 3D index iX, iY, iZ
func (g *Geometry) IXYZ(iX, iY, iZ int) int {
	return iX*g.sx + iY*g.sy + iZ*g.sz
}

//IXYZAt returns the linear index of the grid point nearest to c.
func (g *Geometry) IXYZAt(c v3.Coord) int {
	return g.IXYZ(g.IX(c), g.IY(c), g.IZ(c))
}

//XYZ returns the 3D index for the linear index iXYZ.
func (g *Geometry) XYZ(iXYZ int) (int, int, int) {
	return iXYZ / g.sx, (iXYZ % g.sx) / g.sy, (iXYZ % g.sy) / g.sz
}

//XCoord returns the X coordinate of the points with X index iX.
func (g *Geometry) XCoord(iX int) float64 {
	return float64(g.nxMin+iX) * g.step.X
}

//YCoord returns the Y coordinate of the points with Y index iY.
func (g *Geometry) YCoord(iY int) float64 {
	return float64(g.nyMin+iY) * g.step.Y
}

//ZCoord returns the Z coordinate of the points with Z index iZ.
func (g *Geometry) ZCoord(iZ int) float64 {
	return float64(g.nzMin+iZ) * g.step.Z
}

//Coord returns the coordinates of the grid point iX, iY, iZ
func (g *Geometry) Coord(iX, iY, iZ int) v3.Coord {
	return v3.Coord{X: g.XCoord(iX), Y: g.YCoord(iY), Z: g.ZCoord(iZ)}
}

//CoordAt returns the coordinates of the grid point with linear index iXYZ
func (g *Geometry) CoordAt(iXYZ int) v3.Coord {
	return g.Coord(g.XYZ(iXYZ))
}

//CoordList returns the coordinates of the grid points in indices.
func (g *Geometry) CoordList(indices []int) []v3.Coord {
	ret := make([]v3.Coord, len(indices))
	for i, v := range indices {
		ret[i] = g.CoordAt(v)
	}
	return ret
}

/**Validity**/

//ValidCoord returns true if c is inside the grid and outside the padding, i.e.
//padMin<=c<padMax for all axes.
func (g *Geometry) ValidCoord(c v3.Coord) bool {
	return c.X >= g.padMin.X && c.X < g.padMax.X &&
		c.Y >= g.padMin.Y && c.Y < g.padMax.Y &&
		c.Z >= g.padMin.Z && c.Z < g.padMax.Z
}

//Valid returns true if the 3D index is in the grid and outside the padding,
//i.e. Pad<=i<N-Pad for each axis.
func (g *Geometry) Valid(iX, iY, iZ int) bool {
	return iX >= g.npad && iX < g.nx-g.npad &&
		iY >= g.npad && iY < g.ny-g.npad &&
		iZ >= g.npad && iZ < g.nz-g.npad
}

//ValidIndex returns true if the linear index is in the grid. Unlike Valid and ValidCoord,
//it doesn't take the padding into account.
func (g *Geometry) ValidIndex(iXYZ int) bool {
	return iXYZ >= 0 && iXYZ < g.n
}

/**Sphere**/

//SphereIndices returns the linear indexes of all the valid (non-padding) grid points within
//radius of center, in ascending order.
//If a slice is given in dest, it will be reused (its contents are overwritten) and returned.
func (g *Geometry) SphereIndices(center v3.Coord, radius float64, dest ...[]int) []int {
	var ret []int
	if len(dest) > 0 && dest[0] != nil {
		ret = dest[0][:0]
	} else {
		ret = make([]int, 0, 16)
	}
	//the cube around the sphere, without going into the padding
	cubeMin := v3.Max(center.AddScalar(-radius), g.padMin)
	cubeMax := v3.Min(center.AddScalar(radius), g.padMax)
	iMinX := max(g.IX(cubeMin), g.npad)
	iMinY := max(g.IY(cubeMin), g.npad)
	iMinZ := max(g.IZ(cubeMin), g.npad)
	//if cubeMax is the padMax, the index would be one too high
	iMaxX := min(g.IX(cubeMax)+1, g.nx-g.npad)
	iMaxY := min(g.IY(cubeMax)+1, g.ny-g.npad)
	iMaxZ := min(g.IZ(cubeMax)+1, g.nz-g.npad)
	rad2 := radius * radius
	for iX := iMinX; iX < iMaxX; iX++ {
		rX := g.XCoord(iX) - center.X
		rX2 := rX * rX
		if rX2 > rad2 {
			continue
		}
		for iY := iMinY; iY < iMaxY; iY++ {
			rY := g.YCoord(iY) - center.Y
			rXY2 := rX2 + rY*rY
			if rXY2 > rad2 {
				continue
			}
			iXYZ := g.IXYZ(iX, iY, iMinZ)
			for iZ := iMinZ; iZ < iMaxZ; iZ, iXYZ = iZ+1, iXYZ+g.sz {
				rZ := g.ZCoord(iZ) - center.Z
				if rXY2+rZ*rZ <= rad2 {
					ret = append(ret, iXYZ)
				}
			}
		}
	}
	return ret
}

//String returns a description of the grid geometry
func (g *Geometry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "min\t%v\n", g.min)
	fmt.Fprintf(&b, "max\t%v\n", g.max)
	fmt.Fprintf(&b, "step\t%v\n", g.step)
	fmt.Fprintf(&b, "padMin\t%v\n", g.padMin)
	fmt.Fprintf(&b, "padMax\t%v\n", g.padMax)
	fmt.Fprintf(&b, "NX,NY,NZ\t%d,%d,%d\n", g.nx, g.ny, g.nz)
	fmt.Fprintf(&b, "N\t%d\n", g.n)
	fmt.Fprintf(&b, "SX,SY,SZ\t%d,%d,%d\n", g.sx, g.sy, g.sz)
	fmt.Fprintf(&b, "NPad\t%d\n", g.npad)
	fmt.Fprintf(&b, "nXMin,nXMax\t%d,%d\n", g.nxMin, g.nxMax)
	fmt.Fprintf(&b, "nYMin,nYMax\t%d,%d\n", g.nyMin, g.nyMax)
	fmt.Fprintf(&b, "nZMin,nZMax\t%d,%d\n", g.nzMin, g.nzMax)
	return b.String()
}
