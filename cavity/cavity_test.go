/*
 * cavity_test.go, part of gocavity.
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
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	chem "github.com/rmera/gocavity"
	"github.com/rmera/gocavity/grid"
	v3 "github.com/rmera/gocavity/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var step = v3.C(0.5, 0.5, 0.5)

//block returns the points of a cube of n*n*n grid points centered in c.
func block(c v3.Coord, n int) []v3.Coord {
	ret := make([]v3.Coord, 0, n*n*n)
	h := float64(n-1) / 2
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				ret = append(ret, c.Add(v3.C(float64(i)-h, float64(j)-h, float64(k)-h).Mul(step)))
			}
		}
	}
	return ret
}

//testSite returns a site with a 27-point cavity centered in the origin, and
//a receptor with atoms at 2.5, 5.5 and 0 A from the cavity, plus one outside the grid.
func testSite() (*Site, *chem.Molecule) {
	cav := New(block(v3.C(0, 0, 0), 3), step)
	S := NewSite([]*Cavity{cav}, DefaultBorder)
	mol := chem.NewMoleculeFromCoords([]v3.Coord{v3.C(3, 0, 0), v3.C(6, 0, 0), v3.C(0, 0, 0), v3.C(20, 0, 0)}, "C")
	return S, mol
}

func TestCavity(Te *testing.T) {
	points := block(v3.C(1, 2, 3), 3)
	C := New(points, step)
	fmt.Println(C)
	points[0] = v3.C(100, 100, 100)
	assert.Equal(Te, 27, C.NumCoords())
	assert.InDelta(Te, 3.375, C.Volume(), 1e-9)
	assert.InDelta(Te, 0, v3.Dist(C.Center(), v3.C(1, 2, 3)), 1e-9)
	assert.Equal(Te, v3.C(0.5, 1.5, 2.5), C.Min(), "the coordinates should be copied")
	assert.Equal(Te, v3.C(1, 1, 1), C.Extent())
	assert.True(Te, strings.HasPrefix(C.String(), "Size=27 points; Vol=3.375 A^3"))
	assert.True(Te, C.Near(v3.C(2, 2, 3), 0.6))
	assert.False(Te, C.Near(v3.C(3, 2, 3), 1))
	R := C.Grid()
	assert.Equal(Te, 27, R.Count(1))
	assert.Equal(Te, R.N()-27, R.Count(0))
	for _, v := range C.Coords() {
		assert.Equal(Te, 1.0, R.ValueAt(v))
	}

	empty := New(nil, step)
	assert.Equal(Te, 0.0, empty.Volume())
	assert.Equal(Te, DefaultAxes(), empty.Axes())
}

func TestSort(Te *testing.T) {
	small := New(block(v3.C(0, 0, 0), 2), step)
	big := New(block(v3.C(10, 0, 0), 3), step)
	mid := New(block(v3.C(5, 0, 0), 3)[:10], step)
	cavs := []*Cavity{small, big, mid}
	SortByVolume(cavs)
	assert.Same(Te, big, cavs[0])
	assert.Same(Te, mid, cavs[1])
	assert.Same(Te, small, cavs[2])
	SortByDistance(cavs, v3.C(11, 0, 0))
	assert.Same(Te, big, cavs[0])
	assert.Same(Te, small, cavs[2])
}

func TestAxes(Te *testing.T) {
	P, err := AxesFromCoords([]v3.Coord{v3.C(-2, 0, 0), v3.C(2, 0, 0), v3.C(0, 1, 0), v3.C(0, -1, 0)})
	require.NoError(Te, err)
	fmt.Println(P)
	if diff := cmp.Diff([3]float64{2, 8, 10}, P.Moments, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		Te.Error(diff)
	}
	assert.InDelta(Te, 1, math.Abs(P.Axes[0].X), 1e-9)
	assert.InDelta(Te, 1, math.Abs(P.Axes[2].Z), 1e-9)

	wat := chem.NewMoleculeFromCoords([]v3.Coord{v3.C(0, 0, 0), v3.C(0.76, 0.59, 0), v3.C(-0.76, 0.59, 0)}, "H")
	wat.Atom(0).Symbol = "O"
	W, err := AxesFromAtoms(wat, nil)
	require.NoError(Te, err)
	fmt.Println(W)
	approx := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff([3]v3.Coord{v3.C(0, 1, 0), v3.C(1, 0, 0), v3.C(0, 0, 1)}, W.Axes, approx); diff != "" {
		Te.Error(diff)
	}
	assert.Equal(Te, v3.C(0, 0, 0), W.COM)
}

func TestSiteAtoms(Te *testing.T) {
	S, mol := testSite()
	fmt.Print(S)
	assert.InDelta(Te, 3.375, S.Volume(), 1e-9)
	assert.Len(Te, S.CoordList(), 27)
	d := S.Distances(mol, nil)
	if diff := cmp.Diff([]float64{2.5, 5.5, 0, farAway}, d, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		Te.Error(diff)
	}
	//the grid doesn't cover distances beyond the border
	_, err := S.AtomList(mol, nil, 0, DefaultBorder+1)
	assert.True(Te, errors.Is(err, grid.ErrBadArgument), "expected a bad argument error, got %v", err)
	_, err = S.NumAtoms(mol, nil, 0, DefaultBorder+1)
	assert.True(Te, errors.Is(err, grid.ErrBadArgument))
	l, err := S.AtomList(mol, nil, 0, DefaultBorder)
	require.NoError(Te, err)
	assert.Equal(Te, []int{0, 1, 2}, l)
	l, err = S.AtomList(mol, nil, 1, 3)
	require.NoError(Te, err)
	assert.Equal(Te, []int{0}, l)
	n, err := S.NumAtoms(mol, []int{1, 2, 3}, 0, 6)
	require.NoError(Te, err)
	assert.Equal(Te, 2, n)
	assert.Equal(Te, []int{0, 2}, S.AtomListNear(mol, nil, 3))
	h := S.DistanceHistogram(mol, nil, []float64{0, 2, 4, 6, 8})
	if diff := cmp.Diff([]float64{1, 1, 1, 0}, h.View()); diff != "" {
		Te.Error(diff)
	}
	empty := NewSite(nil, DefaultBorder)
	assert.Nil(Te, empty.Grid())
	n, err = empty.NumAtoms(mol, nil, 0, 1)
	assert.NoError(Te, err)
	assert.Equal(Te, 0, n)
}

func TestSiteString(Te *testing.T) {
	S, _ := testSite()
	lines := strings.Split(strings.TrimSpace(S.String()), "\n")
	require.Len(Te, lines, 2)
	assert.Equal(Te, "Total volume 3.375 A^3", lines[0])
	assert.True(Te, strings.HasPrefix(lines[1], "Cavity #1\tSize=27 points"))
}

func TestSiteIO(Te *testing.T) {
	S, mol := testSite()
	for _, compress := range []bool{true, false} {
		var buf bytes.Buffer
		require.NoError(Te, WriteSite(&buf, S, compress))
		fmt.Println("compressed:", compress, "bytes:", buf.Len())
		S2, err := ReadSite(&buf)
		require.NoError(Te, err)
		if diff := cmp.Diff(S.Cavities(), S2.Cavities(), cmp.AllowUnexported(Cavity{})); diff != "" {
			Te.Error(diff)
		}
		assert.Equal(Te, S.Border(), S2.Border())
		assert.Equal(Te, S.Min(), S2.Min())
		assert.Equal(Te, S.Max(), S2.Max())
		R, R2 := S.Grid(), S2.Grid()
		assert.True(Te, R.Same(&R2.Geometry))
		if diff := cmp.Diff(R.Data(), R2.Data()); diff != "" {
			Te.Error(diff)
		}
		assert.Equal(Te, S.Distances(mol, nil), S2.Distances(mol, nil))
	}
	_, err := ReadSite(strings.NewReader("{"))
	assert.True(Te, errors.Is(err, grid.ErrFileParse), "got %v", err)
	_, err = ReadSite(strings.NewReader(`{"border":8,"cavities":[{"grid-step":{"x":0,"y":0.5,"z":0.5},"coords":[]}]}`))
	assert.True(Te, errors.Is(err, grid.ErrFileParse), "got %v", err)
	_, err = ReadSite(strings.NewReader(`{"border":-1,"cavities":[]}`))
	assert.True(Te, errors.Is(err, grid.ErrFileParse), "got %v", err)
}

func TestSiteFile(Te *testing.T) {
	S, _ := testSite()
	dir := Te.TempDir()
	for _, name := range []string{"site.as", "site.json"} {
		path := dir + "/" + name
		require.NoError(Te, WriteSiteFile(path, S))
		S2, err := ReadSiteFile(path)
		require.NoError(Te, err)
		assert.Equal(Te, S.Volume(), S2.Volume())
	}
	_, err := ReadSiteFile(dir + "/nothere.as")
	assert.Error(Te, err)
}

func TestDescriptors(Te *testing.T) {
	S, _ := testSite()
	rec := chem.NewMoleculeFromCoords([]v3.Coord{v3.C(2, 0, 0), v3.C(0, 2, 0), v3.C(0, 0, 2), v3.C(20, 0, 0)}, "C")
	rec.Atom(0).Symbol = "N"
	rec.Atom(0).Charge = 1
	rec.Atom(1).Symbol = "O"
	rec.Atom(1).Charge = -0.5
	D := Descriptors(S, rec)
	assert.Equal(Te, 3, D.NAtoms())
	assert.Equal(Te, 1, D.NCarbon)
	assert.Equal(Te, 1, D.NNitrogen)
	assert.Equal(Te, 1, D.NOxygen)
	assert.Equal(Te, 0, D.NMetal)
	assert.InDelta(Te, 2, D.MeanNeighbours, 1e-9)
	assert.InDelta(Te, 0.5, D.TotalCharge(), 1e-9)
	var b strings.Builder
	require.NoError(Te, D.Write(&b, "test"))
	fmt.Print(b.String())
	assert.Contains(Te, b.String(), "test,SITE_NATOMS,3\n")
	assert.Contains(Te, b.String(), "test,SITE_VOL,3.375\n")
}
