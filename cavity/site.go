/*
 * site.go, part of gocavity.
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
	"math"
	"runtime"
	"slices"
	"strings"
	"sync"

	chem "github.com/rmera/gocavity"
	"github.com/rmera/gocavity/grid"
	"github.com/rmera/gocavity/histo"
	v3 "github.com/rmera/gocavity/v3"
	"golang.org/x/sync/errgroup"
)

//DefaultBorder is the default distance, in A, that the distance grid of a Site extends
//beyond the cavities.
const DefaultBorder = 8.0

//farAway is the distance given to grid points before calculating their distance to the cavities.
const farAway = 999999.9

//Site is a docking site: a set of cavities, and a grid with the distance from
//each point to the closest cavity point. The grid is built the first time it is needed,
//and is safe for concurrent use after that.
type Site struct {
	cavities []*Cavity
	min      v3.Coord
	max      v3.Coord
	border   float64

	mu   sync.Mutex
	grid *grid.Real
}

//NewSite returns a docking site formed by cavs. The distance grid will cover
//the cavities plus border A on each side.
func NewSite(cavs []*Cavity, border float64) *Site {
	S := &Site{cavities: slices.Clone(cavs), border: border}
	S.setLimits()
	return S
}

func (S *Site) setLimits() {
	if len(S.cavities) == 0 {
		return
	}
	S.min = S.cavities[0].Min()
	S.max = S.cavities[0].Max()
	for _, c := range S.cavities[1:] {
		S.min = v3.Min(S.min, c.Min())
		S.max = v3.Max(S.max, c.Max())
	}
}

//Cavities returns the cavities of the site. The slice should not be modified.
func (S *Site) Cavities() []*Cavity { return S.cavities }

//Border returns the distance covered by the grid beyond the cavities
func (S *Site) Border() float64 { return S.border }

//Min returns the lowest coordinates of all the cavities
func (S *Site) Min() v3.Coord { return S.min }

//Max returns the highest coordinates of all the cavities
func (S *Site) Max() v3.Coord { return S.max }

//Volume returns the total volume of the cavities.
func (S *Site) Volume() float64 {
	var vol float64
	for _, c := range S.cavities {
		vol += c.Volume()
	}
	return vol
}

//CoordList returns the points of all the cavities, sorted
//and without repetitions.
func (S *Site) CoordList() []v3.Coord {
	n := 0
	for _, c := range S.cavities {
		n += c.NumCoords()
	}
	ret := make([]v3.Coord, 0, n)
	for _, c := range S.cavities {
		ret = append(ret, c.Coords()...)
	}
	slices.SortFunc(ret, v3.Compare)
	return slices.Compact(ret)
}

//Grid returns the distance grid of the site, building it if needed. It returns nil if
//the site has no cavities. The grid should not be modified.
func (S *Site) Grid() *grid.Real {
	S.mu.Lock()
	defer S.mu.Unlock()
	if S.grid == nil && len(S.cavities) > 0 {
		S.grid = S.createGrid()
	}
	return S.grid
}

//createGrid builds a grid covering the cavities plus the border, with the distance from
//each point to the nearest cavity point.
func (S *Site) createGrid() *grid.Real {
	step := S.cavities[0].Step()
	min := S.min.AddScalar(-S.border)
	max := S.max.AddScalar(S.border)
	R := grid.NewReal(grid.NewGeometryCovering(min, max, step, 0))
	R.SetAllValues(farAway)
	//points of the site grid lying on the cavity points get their distance to them,
	//normally 0.
	for _, cav := range S.cavities {
		for _, c := range cav.Coords() {
			i := R.IXYZAt(c)
			if !R.ValidIndex(i) {
				continue
			}
			R.SetValue(i, v3.Dist2(c, R.CoordAt(i)))
		}
	}
	coords := S.CoordList()
	mindist2 := math.Pow(step.MinComponent(), 2)
	//each X plane is an independent job.
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for iX := 0; iX < R.NX(); iX++ {
		iX := iX
		eg.Go(func() error {
			first := R.IXYZ(iX, 0, 0)
			for i := first; i < first+R.SX(); i++ {
				c := R.CoordAt(i)
				dist2 := R.Value(i)
				for j := 0; j < len(coords) && dist2 > mindist2; j++ {
					dist2 = math.Min(dist2, v3.Dist2(c, coords[j]))
				}
				R.SetValue(i, math.Sqrt(dist2))
			}
			return nil
		})
	}
	_ = eg.Wait() //the jobs never return an error
	return R
}

//setGrid replaces the distance grid, as when reading a site from a file.
func (S *Site) setGrid(R *grid.Real) {
	S.mu.Lock()
	S.grid = R
	S.mu.Unlock()
}

//inRange returns a function that tells whether an atom is at a distance from the cavities
//between min and max, according to the distance grid. It returns an error if max
//is beyond the region covered by the grid.
func (S *Site) inRange(min, max float64, caller string) (func(c v3.Coord) bool, error) {
	if max > S.border {
		return nil, grid.NewError(grid.ErrBadArgument, fmt.Sprintf("maximum distance %g is greater than the grid border %g; recalculate grid", max, S.border), caller)
	}
	R := S.Grid()
	if R == nil {
		return func(v3.Coord) bool { return false }, nil
	}
	return func(c v3.Coord) bool {
		if !R.ValidCoord(c) {
			return false
		}
		d := R.SmoothedValue(c)
		return d >= min && d <= max
	}, nil
}

//AtomList returns the atoms among sel (all atoms if sel is nil) whose distance to the cavities,
//interpolated from the distance grid, is between min and max.
//It returns an error if max is greater than the border of the site, as the grid
//doesn't cover such distances.
func (S *Site) AtomList(atoms chem.AtomLocator, sel []int, min, max float64) ([]int, error) {
	in, err := S.inRange(min, max, "AtomList")
	if err != nil {
		return nil, err
	}
	if sel == nil {
		sel = chem.All(atoms)
	}
	ret := make([]int, 0, len(sel)/4)
	for _, i := range sel {
		if in(atoms.Coord(i)) {
			ret = append(ret, i)
		}
	}
	return ret, nil
}

//NumAtoms returns the number of atoms that AtomList would return.
func (S *Site) NumAtoms(atoms chem.AtomLocator, sel []int, min, max float64) (int, error) {
	in, err := S.inRange(min, max, "NumAtoms")
	if err != nil {
		return 0, err
	}
	if sel == nil {
		sel = chem.All(atoms)
	}
	n := 0
	for _, i := range sel {
		if in(atoms.Coord(i)) {
			n++
		}
	}
	return n, nil
}

//AtomListNear returns the atoms among sel (all atoms if sel is nil) within maxDist of any cavity
//point. It doesn't use the distance grid, so maxDist is not limited by the border.
func (S *Site) AtomListNear(atoms chem.AtomLocator, sel []int, maxDist float64) []int {
	if sel == nil {
		sel = chem.All(atoms)
	}
	coords := S.CoordList()
	d2 := maxDist * maxDist
	ret := make([]int, 0, len(sel)/4)
	for _, i := range sel {
		c := atoms.Coord(i)
		for _, v := range coords {
			if v3.Dist2(c, v) <= d2 {
				ret = append(ret, i)
				break
			}
		}
	}
	return ret
}

//Distances returns the distance from each atom in sel to the cavities, interpolated
//from the distance grid. Atoms outside the grid get the value of farAway.
func (S *Site) Distances(atoms chem.AtomLocator, sel []int) []float64 {
	if sel == nil {
		sel = chem.All(atoms)
	}
	ret := make([]float64, len(sel))
	R := S.Grid()
	for j, i := range sel {
		c := atoms.Coord(i)
		if R == nil || !R.ValidCoord(c) {
			ret[j] = farAway
			continue
		}
		ret[j] = R.SmoothedValue(c)
	}
	return ret
}

//String returns the total volume of the site followed by one line per cavity.
func (S *Site) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total volume %g A^3\n", S.Volume())
	for i, c := range S.cavities {
		fmt.Fprintf(&b, "Cavity #%d\t%s\n", i+1, c)
	}
	return b.String()
}

//DistanceHistogram returns a histogram of the distances from the atoms in sel (all atoms if
//sel is nil) to the cavities. Atoms outside the distance grid are not counted.
func (S *Site) DistanceHistogram(atoms chem.AtomLocator, sel []int, dividers []float64) *histo.Data {
	return histo.NewData(dividers, S.Distances(atoms, sel), "site distances")
}
