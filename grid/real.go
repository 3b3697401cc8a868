/*
 * real.go, part of gocavity.
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
	"io"
	"math"
	"slices"
	"strings"

	v3 "github.com/rmera/gocavity/v3"
)

//DefaultTolerance is the tolerance used to compare grid values, unless
//changed with SetTolerance.
const DefaultTolerance = 0.001

//Real is a grid holding one single-precision value per point.
//All comparisons of values are done within the grid's tolerance.
type Real struct {
	Geometry
	data []float32
	tol  float64
}

//NewReal returns a zeroed Real grid with the geometry g.
func NewReal(g Geometry) *Real {
	if g.n <= 0 {
		panic(ErrEmptyGrid)
	}
	return &Real{Geometry: g, data: make([]float32, g.n), tol: DefaultTolerance}
}

//Copy returns a deep copy of the grid.
func (R *Real) Copy() *Real {
	return &Real{Geometry: R.Geometry, data: slices.Clone(R.data), tol: R.tol}
}

//Tolerance returns the tolerance used to compare values
func (R *Real) Tolerance() float64 { return R.tol }

//SetTolerance sets the tolerance used to compare values
func (R *Real) SetTolerance(tol float64) { R.tol = tol }

//Data returns the values of the grid, in iXYZ order. The slice is
//not a copy and should not be modified.
func (R *Real) Data() []float32 { return R.data }

//equal returns true if the value in iXYZ is within tolerance of val
func (R *Real) equal(iXYZ int, val float64) bool {
	return math.Abs(float64(R.data[iXYZ])-val) < R.tol
}

/**Values**/

//Value returns the value at the linear index iXYZ. It doesn't check its argument.
func (R *Real) Value(iXYZ int) float64 { return float64(R.data[iXYZ]) }

//ValueXYZ returns the value at the 3D index iX, iY, iZ. It doesn't check its arguments.
func (R *Real) ValueXYZ(iX, iY, iZ int) float64 {
	return float64(R.data[R.IXYZ(iX, iY, iZ)])
}

//ValueAt returns the value of the grid point nearest to c, or 0 if c is not
//a valid coordinate for the grid.
func (R *Real) ValueAt(c v3.Coord) float64 {
	if !R.ValidCoord(c) {
		return 0
	}
	return float64(R.data[R.IXYZAt(c)])
}

//SetValue sets the value at the linear index iXYZ. It doesn't check its argument.
func (R *Real) SetValue(iXYZ int, val float64) { R.data[iXYZ] = float32(val) }

//SetValueXYZ sets the value at the 3D index iX, iY, iZ. It doesn't check its arguments.
func (R *Real) SetValueXYZ(iX, iY, iZ int, val float64) {
	R.data[R.IXYZ(iX, iY, iZ)] = float32(val)
}

//SetValueAt sets the value of the grid point nearest to c. Nothing is done if
//c is not a valid coordinate for the grid.
func (R *Real) SetValueAt(c v3.Coord, val float64) {
	if !R.ValidCoord(c) {
		return
	}
	R.data[R.IXYZAt(c)] = float32(val)
}

//SmoothedValue returns the value at c, obtained by trilinear interpolation
//from the 8 grid points around it (D. Oberlin and H.A. Scheraga, J. Comp. Chem. (1998) 19, 71).
//If any of those points is not valid, the unsmoothed ValueAt(c) is returned.
func (R *Real) SmoothedValue(c v3.Coord) float64 {
	rx := 1.0 / R.step.X
	ry := 1.0 / R.step.Y
	rz := 1.0 / R.step.Z
	//the lower corner, which is not necessarily the nearest point
	iX := int(math.Floor(rx*(c.X-R.min.X) - 0.5))
	iY := int(math.Floor(ry*(c.Y-R.min.Y) - 0.5))
	iZ := int(math.Floor(rz*(c.Z-R.min.Z) - 0.5))
	if !R.Valid(iX, iY, iZ) || !R.Valid(iX+1, iY+1, iZ+1) {
		return R.ValueAt(c)
	}
	p := c.Sub(R.Coord(iX, iY, iZ))
	bx1 := rx * p.X
	bx0 := 1 - bx1
	by1 := ry * p.Y
	by0 := 1 - by1
	bz1 := rz * p.Z
	bz0 := 1 - bz1
	bx0by0 := bx0 * by0
	bx0by1 := bx0 * by1
	bx1by0 := bx1 * by0
	bx1by1 := bx1 * by1
	i := R.IXYZ(iX, iY, iZ)
	v := func(dx, dy, dz int) float64 {
		return float64(R.data[i+dx*R.sx+dy*R.sy+dz*R.sz])
	}
	val := v(0, 0, 0) * bx0by0 * bz0
	val += v(0, 0, 1) * bx0by0 * bz1
	val += v(0, 1, 0) * bx0by1 * bz0
	val += v(0, 1, 1) * bx0by1 * bz1
	val += v(1, 0, 0) * bx1by0 * bz0
	val += v(1, 0, 1) * bx1by0 * bz1
	val += v(1, 1, 0) * bx1by1 * bz0
	val += v(1, 1, 1) * bx1by1 * bz1
	return val
}

//SetAllValues sets every point of the grid to val.
func (R *Real) SetAllValues(val float64) {
	v := float32(val)
	for i := range R.data {
		R.data[i] = v
	}
}

//SetValues sets the points in indices to val. If overwrite is false, only
//points with values within tolerance of zero are set.
func (R *Real) SetValues(indices []int, val float64, overwrite bool) {
	v := float32(val)
	for _, i := range indices {
		if overwrite || math.Abs(float64(R.data[i])) < R.tol {
			R.data[i] = v
		}
	}
}

//SetSphere sets all the grid points within radius of c to val. If overwrite is false,
//points already holding a non-zero value are not changed.
func (R *Real) SetSphere(c v3.Coord, radius, val float64, overwrite bool) {
	R.SetValues(R.SphereIndices(c, radius), val, overwrite)
}

//SetSurface sets the grid points farther than innerRad but within outerRad
//from c to val. overwrite works as in SetSphere.
func (R *Real) SetSurface(c v3.Coord, innerRad, outerRad, val float64, overwrite bool) {
	outer := R.SphereIndices(c, outerRad)
	inner := R.SphereIndices(c, innerRad)
	//both lists are sorted, so the difference is a merge.
	shell := make([]int, 0, len(outer)-len(inner))
	j := 0
	for _, i := range outer {
		for j < len(inner) && inner[j] < i {
			j++
		}
		if j < len(inner) && inner[j] == i {
			continue
		}
		shell = append(shell, i)
	}
	R.SetValues(shell, val, overwrite)
}

//CreateSurface sets to newVal all the non-padding points with value oldVal that have at least one
//of their 6 adjacent (non-padding) points with value adjVal.
func (R *Real) CreateSurface(oldVal, adjVal, newVal float64) {
	iMinX, iMinY, iMinZ := R.npad, R.npad, R.npad
	iMaxX, iMaxY, iMaxZ := R.nx-R.npad-1, R.ny-R.npad-1, R.nz-R.npad-1
	//points are set after the scan, so the new values are never seen as adjVal.
	var toSet []int
	for iX := iMinX; iX <= iMaxX; iX++ {
		for iY := iMinY; iY <= iMaxY; iY++ {
			for iZ := iMinZ; iZ <= iMaxZ; iZ++ {
				i := R.IXYZ(iX, iY, iZ)
				if !R.equal(i, oldVal) {
					continue
				}
				if (iX > iMinX && R.equal(i-R.sx, adjVal)) ||
					(iX < iMaxX && R.equal(i+R.sx, adjVal)) ||
					(iY > iMinY && R.equal(i-R.sy, adjVal)) ||
					(iY < iMaxY && R.equal(i+R.sy, adjVal)) ||
					(iZ > iMinZ && R.equal(i-R.sz, adjVal)) ||
					(iZ < iMaxZ && R.equal(i+R.sz, adjVal)) {
					toSet = append(toSet, i)
				}
			}
		}
	}
	R.SetValues(toSet, newVal, true)
}

//IsValueWithinSphere returns true if any of the grid points within radius of c
//has the value val.
func (R *Real) IsValueWithinSphere(c v3.Coord, radius, val float64) bool {
	return R.isValueWithinList(R.SphereIndices(c, radius), val)
}

func (R *Real) isValueWithinList(indices []int, val float64) bool {
	for _, i := range indices {
		if R.equal(i, val) {
			return true
		}
	}
	return false
}

//SetAccessible sets to newVal all the non-padding grid points with value oldVal
//that have no point with value adjVal within radius.
//If centerOnly is true, only the tested point is set. Otherwise, every point
//within radius of the tested point is set to newVal, regardless of its previous value.
//The grid is modified during the scan, so points later in the scan are tested against
//the already-modified grid.
func (R *Real) SetAccessible(radius, oldVal, adjVal, newVal float64, centerOnly bool) {
	n := (int(radius/R.step.X) + 1) * (int(radius/R.step.Y) + 1) * (int(radius/R.step.Z) + 1)
	sphere := make([]int, 0, n)
	for iX := R.npad; iX < R.nx-R.npad; iX++ {
		for iY := R.npad; iY < R.ny-R.npad; iY++ {
			for iZ := R.npad; iZ < R.nz-R.npad; iZ++ {
				i := R.IXYZ(iX, iY, iZ)
				if !R.equal(i, oldVal) {
					continue
				}
				sphere = R.SphereIndices(R.Coord(iX, iY, iZ), radius, sphere)
				if R.isValueWithinList(sphere, adjVal) {
					continue
				}
				if centerOnly {
					R.data[i] = float32(newVal)
				} else {
					R.SetValues(sphere, newVal, true)
				}
			}
		}
	}
}

//ReplaceValue sets to newVal all the points with value oldVal.
func (R *Real) ReplaceValue(oldVal, newVal float64) {
	R.ReplaceValueRange(oldVal-R.tol, oldVal+R.tol, newVal)
}

//ReplaceValueRange sets to newVal all the points with values v such that
//oldMin<=v<oldMax.
func (R *Real) ReplaceValueRange(oldMin, oldMax, newVal float64) {
	v := float32(newVal)
	for i, d := range R.data {
		if float64(d) >= oldMin && float64(d) < oldMax {
			R.data[i] = v
		}
	}
}

/**Statistics**/

//Count returns the number of points with the value val.
func (R *Real) Count(val float64) int {
	return R.CountRange(val-R.tol, val+R.tol)
}

//CountRange returns the number of points with values v such that min<=v<max.
func (R *Real) CountRange(min, max float64) int {
	n := 0
	for _, d := range R.data {
		if float64(d) >= min && float64(d) < max {
			n++
		}
	}
	return n
}

//MinValue returns the lowest value in the grid
func (R *Real) MinValue() float64 {
	return float64(R.data[R.FindMinValue()])
}

//MaxValue returns the highest value in the grid
func (R *Real) MaxValue() float64 {
	return float64(R.data[R.FindMaxValue()])
}

//FindMinValue returns the index of the first point holding the lowest value in the grid
func (R *Real) FindMinValue() int {
	iMin := 0
	for i, d := range R.data {
		if d < R.data[iMin] {
			iMin = i
		}
	}
	return iMin
}

//FindMaxValue returns the index of the first point holding the highest value in the grid
func (R *Real) FindMaxValue() int {
	iMax := 0
	for i, d := range R.data {
		if d > R.data[iMax] {
			iMax = i
		}
	}
	return iMax
}

/**Output**/

//Print writes a text picture of the grid to w, one block per X plane,
//using '+' for positive points, '-' for negative ones and '.' for points within
//tolerance of zero.
func (R *Real) Print(w io.Writer) error {
	var b strings.Builder
	for iX := 0; iX < R.nx; iX++ {
		fmt.Fprintf(&b, "\n\nPlane iX=%d\n", iX)
		for iY := 0; iY < R.ny; iY++ {
			for iZ := 0; iZ < R.nz; iZ++ {
				f := float64(R.data[R.IXYZ(iX, iY, iZ)])
				switch {
				case f < -R.tol:
					b.WriteByte('-')
				case f > R.tol:
					b.WriteByte('+')
				default:
					b.WriteByte('.')
				}
			}
			b.WriteByte('\n')
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return Error{err.Error(), nil, []string{"Print"}, true}
		}
		b.Reset()
	}
	return nil
}

//String returns the geometry and the tolerance of the grid
func (R *Real) String() string {
	return fmt.Sprintf("%stolerance\t%g\n", R.Geometry.String(), R.tol)
}
