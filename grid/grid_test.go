/*
 * grid_test.go, part of gocavity.
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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	chem "github.com/rmera/gocavity"
	v3 "github.com/rmera/gocavity/v3"
)

func TestIndexRoundTrip(Te *testing.T) {
	g := NewGeometry(v3.C(-2.3, 1.1, 0.4), v3.C(0.5, 0.5, 0.5), 7, 5, 6, 1)
	fmt.Println(g.String())
	if g.NXMin() != -5 || g.NXMax() != 1 {
		Te.Errorf("Wrong integral limits %d %d", g.NXMin(), g.NXMax())
	}
	if g.SX() != 30 || g.SY() != 6 || g.SZ() != 1 || g.N() != 210 {
		Te.Errorf("Wrong strides or size: %d %d %d %d", g.SX(), g.SY(), g.SZ(), g.N())
	}
	for iX := 0; iX < g.NX(); iX++ {
		for iY := 0; iY < g.NY(); iY++ {
			for iZ := 0; iZ < g.NZ(); iZ++ {
				c := g.Coord(iX, iY, iZ)
				if g.IX(c) != iX || g.IY(c) != iY || g.IZ(c) != iZ {
					Te.Fatalf("Index round trip failed for %d %d %d: %d %d %d", iX, iY, iZ, g.IX(c), g.IY(c), g.IZ(c))
				}
				i := g.IXYZ(iX, iY, iZ)
				if g.IXYZAt(c) != i {
					Te.Fatalf("Linear index mismatch for %v: %d %d", c, g.IXYZAt(c), i)
				}
				x, y, z := g.XYZ(i)
				if x != iX || y != iY || z != iZ {
					Te.Fatalf("XYZ(%d) gave %d %d %d", i, x, y, z)
				}
				//a point a bit off the lattice still maps to the same index.
				if g.IXYZAt(c.Add(v3.C(0.2, -0.2, 0.1))) != i {
					Te.Fatalf("Off-lattice point not mapped to %d", i)
				}
			}
		}
	}
	if g.Valid(0, 1, 1) || !g.Valid(1, 1, 1) || g.Valid(1, 1, g.NZ()-1) {
		Te.Error("Padding not respected by Valid")
	}
	if !g.ValidIndex(0) || g.ValidIndex(g.N()) {
		Te.Error("Wrong ValidIndex")
	}
	if g.ValidCoord(g.Coord(0, 2, 2)) || !g.ValidCoord(g.Coord(1, 2, 2)) {
		Te.Error("Padding not respected by ValidCoord")
	}
}

func TestSetGridStep(Te *testing.T) {
	g := NewGeometry(v3.C(1, 1, 1), v3.C(1, 1, 1), 4, 4, 4, 0)
	g.SetGridStep(v3.C(0.5, 0.5, 0.5))
	if g.NXMin() != 1 || g.XCoord(0) != 0.5 || g.Min().X != 0.25 {
		Te.Errorf("Step change should keep integral positions: %s", g.String())
	}
	g.SetPad(1)
	if g.PadMin().X != 0.75 {
		Te.Errorf("Wrong pad limit %v", g.PadMin())
	}
}

func bruteSphere(g *Geometry, c v3.Coord, r float64) []int {
	var ret []int
	for iX := 0; iX < g.NX(); iX++ {
		for iY := 0; iY < g.NY(); iY++ {
			for iZ := 0; iZ < g.NZ(); iZ++ {
				if !g.Valid(iX, iY, iZ) {
					continue
				}
				dx := g.XCoord(iX) - c.X
				dy := g.YCoord(iY) - c.Y
				dz := g.ZCoord(iZ) - c.Z
				if dx*dx+dy*dy+dz*dz <= r*r {
					ret = append(ret, g.IXYZ(iX, iY, iZ))
				}
			}
		}
	}
	return ret
}

func TestSphereIndices(Te *testing.T) {
	g := NewGeometry(v3.C(-5, -4, -3), v3.C(0.5, 0.4, 0.6), 21, 19, 17, 2)
	rnd := rand.New(rand.NewSource(1))
	ext := g.Extent()
	var reused []int
	for k := 0; k < 50; k++ {
		c := g.Min().Add(v3.C(rnd.Float64()*ext.X, rnd.Float64()*ext.Y, rnd.Float64()*ext.Z))
		r := 0.3 + rnd.Float64()*4
		reused = g.SphereIndices(c, r, reused)
		expected := bruteSphere(&g, c, r)
		if diff := cmp.Diff(expected, reused); diff != "" && !(len(expected) == 0 && len(reused) == 0) {
			Te.Fatalf("Sphere at %v radius %g differs from brute force (-want +got):\n%s", c, r, diff)
		}
		for _, i := range reused {
			if v3.Dist(g.CoordAt(i), c) > r+1e-9 {
				Te.Fatalf("Point %d out of the sphere", i)
			}
		}
	}
}

func TestSetSphere(Te *testing.T) {
	R := NewReal(NewGeometry(v3.C(0, 0, 0), v3.C(1, 1, 1), 10, 10, 10, 0))
	c1 := v3.C(3, 5, 5)
	c2 := v3.C(5, 5, 5)
	R.SetSphere(c1, 2.5, 1, false)
	R.SetSphere(c2, 2.5, 2, false)
	overlap := v3.C(4, 5, 5)
	if R.ValueAt(overlap) != 1 {
		Te.Errorf("First writer should win without overwrite, got %v", R.ValueAt(overlap))
	}
	if R.ValueAt(v3.C(6, 5, 5)) != 2 {
		Te.Errorf("Second sphere not set: %v", R.ValueAt(v3.C(6, 5, 5)))
	}
	R.SetSphere(c2, 2.5, 3, true)
	if R.ValueAt(overlap) != 3 {
		Te.Errorf("Second writer should win with overwrite, got %v", R.ValueAt(overlap))
	}
	n1 := len(R.SphereIndices(c2, 2.5))
	if R.Count(3) != n1 {
		Te.Errorf("Expected %d points with value 3, got %d", n1, R.Count(3))
	}
	R.SetAllValues(0)
	R.SetSurface(c2, 1.5, 2.5, 4, true)
	inner := len(R.SphereIndices(c2, 1.5))
	if R.Count(4) != n1-inner || R.ValueAt(c2) != 0 {
		Te.Errorf("Wrong shell: %d points, expected %d", R.Count(4), n1-inner)
	}
	R.ReplaceValue(4, -1)
	if R.Count(4) != 0 || R.Count(-1) != n1-inner {
		Te.Errorf("ReplaceValue failed")
	}
	if R.CountRange(-2, 0) != n1-inner {
		Te.Errorf("Wrong CountRange: %d", R.CountRange(-2, 0))
	}
	if R.MinValue() != -1 || R.MaxValue() != 0 {
		Te.Errorf("Wrong min/max: %v %v", R.MinValue(), R.MaxValue())
	}
	if R.FindMinValue() != R.SphereIndices(c2, 2.5)[0] {
		Te.Errorf("FindMinValue should return the first minimum")
	}
}

func TestCheckedAccess(Te *testing.T) {
	R := NewReal(NewGeometry(v3.C(0, 0, 0), v3.C(1, 1, 1), 4, 4, 4, 1))
	R.SetAllValues(5)
	if R.ValueAt(v3.C(100, 0, 0)) != 0 {
		Te.Error("Off-grid reads should return 0")
	}
	if R.ValueAt(v3.C(0, 0, 0)) != 0 {
		Te.Error("Reads in the padding should return 0")
	}
	R.SetValueAt(v3.C(-100, 0, 0), 7)
	if R.Count(7) != 0 {
		Te.Error("Off-grid writes should be ignored")
	}
	R.SetValueAt(v3.C(1, 2, 1), 7)
	if R.ValueXYZ(1, 2, 1) != 7 {
		Te.Error("Valid write lost")
	}
}

func TestCreateSurface(Te *testing.T) {
	R := NewReal(NewGeometry(v3.C(0, 0, 0), v3.C(1, 1, 1), 5, 5, 5, 0))
	R.SetValueXYZ(2, 2, 2, 1)
	R.SetValueXYZ(0, 0, 0, 1)
	R.CreateSurface(0, 1, 2)
	//6 neighbours of the central point, 3 of the corner.
	if R.Count(2) != 9 {
		Te.Errorf("Expected 9 surface points, got %d", R.Count(2))
	}
	if R.ValueXYZ(2, 2, 3) != 2 || R.ValueXYZ(1, 0, 0) != 2 || R.ValueXYZ(1, 1, 0) != 0 {
		Te.Error("Wrong surface points")
	}
}

func accessibleGrid() *Real {
	R := NewReal(NewGeometry(v3.C(0, 0, 0), v3.C(1, 1, 1), 14, 14, 14, 1))
	for iY := 0; iY < 14; iY++ {
		for iZ := 0; iZ < 14; iZ++ {
			R.SetValueXYZ(6, iY, iZ, -1)
		}
	}
	R.SetSphere(v3.C(10, 10, 10), 1.5, -1, true)
	return R
}

func TestSetAccessible(Te *testing.T) {
	radius := 2.0
	R := accessibleGrid()
	nadj := R.Count(-1)
	R.SetAccessible(radius, 0, -1, 1, true)
	if R.Count(-1) != nadj {
		Te.Fatal("Points with the adjacent value must not change")
	}
	for iX := R.Pad(); iX < R.NX()-R.Pad(); iX++ {
		for iY := R.Pad(); iY < R.NY()-R.Pad(); iY++ {
			for iZ := R.Pad(); iZ < R.NZ()-R.Pad(); iZ++ {
				c := R.Coord(iX, iY, iZ)
				within := R.IsValueWithinSphere(c, radius, -1)
				switch R.ValueXYZ(iX, iY, iZ) {
				case 1:
					if within {
						Te.Fatalf("Point %v marked accessible but close to the excluded region", c)
					}
				case 0:
					if !within {
						Te.Fatalf("Point %v should have been marked", c)
					}
				}
			}
		}
	}
	fmt.Println("Accessible points (center only):", R.Count(1))
	R2 := accessibleGrid()
	R2.SetAccessible(radius, 0, -1, 1, false)
	if R2.Count(-1) != nadj {
		Te.Fatal("A whole-sphere pass must not overwrite the adjacent value")
	}
	if R2.Count(1) < R.Count(1) {
		Te.Errorf("Whole-sphere pass marked fewer points (%d) than a center-only one (%d)", R2.Count(1), R.Count(1))
	}
}

func TestSmoothedValue(Te *testing.T) {
	R := NewReal(NewGeometry(v3.C(0, 0, 0), v3.C(0.5, 0.5, 0.5), 10, 10, 10, 0))
	f := func(c v3.Coord) float64 { return c.X + 2*c.Y - c.Z }
	for i := 0; i < R.N(); i++ {
		R.SetValue(i, f(R.CoordAt(i)))
	}
	for _, c := range []v3.Coord{v3.C(1.1, 2.2, 1.9), v3.C(2.5, 2.5, 2.5), v3.C(0.77, 3.1, 4.2)} {
		if s := R.SmoothedValue(c); math.Abs(s-f(c)) > 1e-5 {
			Te.Errorf("Smoothed value at %v: %g, expected %g", c, s, f(c))
		}
	}
	//near the border the nearest point is used
	edge := v3.C(4.7, 1, 1)
	if R.SmoothedValue(edge) != R.ValueAt(edge) {
		Te.Errorf("Expected unsmoothed value at the border")
	}
}

func TestFindPeaks(Te *testing.T) {
	F := NewFFT(NewGeometry(v3.C(0, 0, 0), v3.C(1, 1, 1), 10, 10, 10, 0))
	//a 3x3x3 block with a maximum of 2
	for iX := 1; iX <= 3; iX++ {
		for iY := 1; iY <= 3; iY++ {
			for iZ := 1; iZ <= 3; iZ++ {
				F.SetValueXYZ(iX, iY, iZ, 1)
			}
		}
	}
	F.SetValueXYZ(2, 3, 1, 2)
	F.SetValueXYZ(8, 8, 8, 1) //isolated point
	F.SetValueXYZ(6, 1, 1, 3) //two points
	F.SetValueXYZ(6, 1, 2, 3)
	//consecutive in memory but not neighbours
	F.SetValueXYZ(0, 5, 9, 1)
	F.SetValueXYZ(0, 6, 0, 1)
	peaks := F.FindPeaks(1, 2)
	for _, p := range peaks {
		fmt.Println(p)
	}
	if len(peaks) != 2 {
		Te.Fatalf("Expected 2 peaks, got %d", len(peaks))
	}
	if peaks[0].Volume != 27 || peaks[0].Height != 2 || peaks[0].Index != F.IXYZ(2, 3, 1) {
		Te.Errorf("Wrong first peak %v", peaks[0])
	}
	if peaks[1].Volume != 2 || peaks[1].Height != 3 || peaks[1].Index != F.IXYZ(6, 1, 1) {
		Te.Errorf("Wrong second peak %v", peaks[1])
	}
	all := F.FindPeaks(1, 1)
	if len(all) != 5 {
		Te.Fatalf("Expected 5 peaks with no volume threshold, got %d", len(all))
	}
	union := make(map[int]bool)
	for _, p := range all {
		if p.Volume != len(p.Points) {
			Te.Errorf("Volume and points disagree in %v", p)
		}
		for _, i := range p.Points {
			if union[i] {
				Te.Errorf("Point %d in two peaks", i)
			}
			union[i] = true
		}
	}
	if len(union) != F.CountRange(0.5, 10) {
		Te.Errorf("Peaks cover %d points, %d above threshold", len(union), F.CountRange(0.5, 10))
	}
	top := F.FindMaxPeak()
	if top.Index != F.IXYZ(6, 1, 1) || top.Volume != 1 {
		Te.Errorf("Wrong max peak %v", top)
	}
}

//Volume thresholds outside the size of the grid are valid requests.
func TestFindPeaksVolumeLimits(Te *testing.T) {
	F := NewFFT(NewGeometry(v3.C(0, 0, 0), v3.C(1, 1, 1), 4, 4, 4, 0))
	F.SetValueXYZ(1, 2, 3, 1)
	if peaks := F.FindPeaks(1, 1<<50); len(peaks) != 0 {
		Te.Errorf("Expected no peaks larger than the grid, got %v", peaks)
	}
	for _, min := range []int{-1, 0} {
		peaks := F.FindPeaks(1, min)
		if len(peaks) != 1 || peaks[0].Volume != 1 || peaks[0].Index != F.IXYZ(1, 2, 3) {
			Te.Errorf("Wrong peaks with minimum volume %d: %v", min, peaks)
		}
	}
}

func TestNonBonded(Te *testing.T) {
	g := NewGeometry(v3.C(0, 0, 0), v3.C(1, 1, 1), 8, 8, 8, 0)
	mol := chem.NewMoleculeFromCoords([]v3.Coord{v3.C(2, 2, 2), v3.C(3, 2, 2), v3.C(6, 6, 6)}, "C")
	N := IndexAtoms(g, mol, nil, 1.5)
	l := N.AtomListAt(v3.C(2.4, 2, 2))
	if diff := cmp.Diff([]int{0, 1}, l); diff != "" {
		Te.Errorf("Wrong neighbour list (-want +got):\n%s", diff)
	}
	if len(N.AtomListAt(v3.C(100, 0, 0))) != 0 || len(N.AtomList(-1)) != 0 {
		Te.Error("Off-grid queries should return empty lists")
	}
	N.SetAtomLists(0, mol.Coord(0), 1.5)
	if n := len(N.AtomListAt(mol.Coord(0))); n != 3 {
		Te.Errorf("Expected a repeated atom before UniqueAtomLists, got %d atoms", n)
	}
	N.UniqueAtomLists()
	if n := len(N.AtomListAt(mol.Coord(0))); n != 2 {
		Te.Errorf("Expected 2 atoms after UniqueAtomLists, got %d", n)
	}
	for k := 0; k < 2; k++ {
		N.ClearAtomLists()
		for i := 0; i < N.N(); i++ {
			if len(N.AtomList(i)) != 0 {
				Te.Fatalf("List %d not empty after clearing %d times", i, k+1)
			}
		}
	}
}

func TestInteraction(Te *testing.T) {
	g := NewGeometry(v3.C(0, 0, 0), v3.C(1, 1, 1), 8, 8, 8, 0)
	mol := chem.NewMoleculeFromCoords([]v3.Coord{v3.C(2, 2, 2), v3.C(3, 2, 2), v3.C(6, 6, 6)}, "O")
	I := NewInteraction(g, mol)
	a := NewInteractionCenter(0, 1, -1, NoLonePair)
	b := NewInteractionCenter(0, 1, -1, NoLonePair) //same atoms as a, but a different center
	c := NewInteractionCenter(0, -1, -1, PlaneLonePair)
	I.SetInteractionLists(a, 1)
	I.SetInteractionLists(b, 1)
	I.SetInteractionLists(c, 1)
	I.SetInteractionLists(a, 1)
	I.SetInteractionLists(b, 1)
	I.SetInteractionLists(NewInteractionCenter(-1, 2, -1, PlaneLonePair), 1)
	I.SetInteractionLists(nil, 1)
	if n := len(I.InteractionListAt(mol.Coord(0))); n != 5 {
		Te.Errorf("Expected 5 centers before removing duplicates, got %d", n)
	}
	I.UniqueInteractionLists()
	l := I.InteractionListAt(mol.Coord(0))
	if len(l) != 3 {
		Te.Fatalf("Expected 3 centers after removing duplicates, got %v", l)
	}
	for _, ic := range []*InteractionCenter{a, b, c} {
		n := 0
		for _, v := range l {
			if v == ic {
				n++
			}
		}
		if n != 1 {
			Te.Errorf("Center %v listed %d times", ic, n)
		}
	}
	if len(l[0].Atoms()) != 1 || len(l[2].Atoms()) != 2 {
		Te.Errorf("Wrong order after removing duplicates: %v", l)
	}
	if len(I.InteractionListAt(mol.Coord(2))) != 0 {
		Te.Error("A center without first atom should not be indexed")
	}
	I.ClearInteractionLists()
	if len(I.InteractionList(I.IXYZAt(mol.Coord(0)))) != 0 {
		Te.Error("Lists not cleared")
	}
}

func TestJSON(Te *testing.T) {
	R := NewReal(NewGeometry(v3.C(-1.3, 2, 0.2), v3.C(0.375, 0.5, 0.25), 4, 3, 5, 1))
	for i := 0; i < R.N(); i++ {
		R.SetValue(i, float64(i)*0.37-3)
	}
	R.SetTolerance(0.01)
	b, err := json.Marshal(R)
	if err != nil {
		Te.Fatal(err)
	}
	R2 := new(Real)
	if err := json.Unmarshal(b, R2); err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(R, R2, cmp.AllowUnexported(Real{}, Geometry{})); diff != "" {
		Te.Errorf("Round trip changed the grid (-want +got):\n%s", diff)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		Te.Fatal(err)
	}
	raw["data"] = []float32{1, 2, 3}
	bad, _ := json.Marshal(raw)
	R3 := new(Real)
	err = json.Unmarshal(bad, R3)
	if !errors.Is(err, ErrFileParse) {
		Te.Fatalf("Expected a file parse error, got %v", err)
	}
	fmt.Println("Expected error:", err)
	if R3.data != nil {
		Te.Error("A failed read should leave the grid untouched")
	}
	if err := json.Unmarshal([]byte(`{"nxyz":[2,2,2],"n":8,"step":{"x":0,"y":1,"z":1}}`), new(Geometry)); !errors.Is(err, ErrFileParse) {
		Te.Errorf("Expected a file parse error for a zero step, got %v", err)
	}
}

func TestWriteInsight(Te *testing.T) {
	R := NewReal(NewGeometry(v3.C(0, 0, 0), v3.C(0.5, 0.5, 0.5), 3, 2, 2, 0))
	R.SetValueXYZ(1, 0, 0, 1.5)
	var b bytes.Buffer
	if err := R.WriteInsight(&b); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 5+R.N() {
		Te.Fatalf("Expected %d lines, got %d", 5+R.N(), len(lines))
	}
	if lines[0] != "RBT FFT GRID" || lines[1] != "(1F15.10)" {
		Te.Errorf("Wrong header %q %q", lines[0], lines[1])
	}
	if lines[2] != "   1.000   0.500   0.500  90.000  90.000  90.000" {
		Te.Errorf("Wrong cell line %q", lines[2])
	}
	if lines[3] != "    2    1    1" || lines[4] != "    1    0    2    0    1    0    1" {
		Te.Errorf("Wrong dimension lines %q %q", lines[3], lines[4])
	}
	//X changes fastest, so the second value is (1,0,0)
	if strings.TrimSpace(lines[6]) != "1.5000000000" {
		Te.Errorf("Wrong value order: %q", lines[6])
	}
}
