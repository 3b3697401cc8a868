/*
 * sitemap_test.go, part of gocavity.
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

package sitemap

import (
	"errors"
	"fmt"
	"math"
	"testing"

	chem "github.com/rmera/gocavity"
	"github.com/rmera/gocavity/grid"
	v3 "github.com/rmera/gocavity/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

//shell returns a receptor of n carbon atoms evenly spread over a sphere
//of the given radius and center.
func shell(center v3.Coord, radius float64, n int) *chem.Molecule {
	golden := math.Pi * (3 - math.Sqrt(5))
	coords := make([]v3.Coord, n)
	for i := range coords {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - y*y)
		phi := golden * float64(i)
		coords[i] = center.Add(v3.C(math.Cos(phi)*r, y, math.Sin(phi)*r).Scale(radius))
	}
	return chem.NewMoleculeFromCoords(coords, "C")
}

//The interior of a closed shell too small for the large probe is
//the only cavity.
func TestSphereShell(Te *testing.T) {
	o := DefaultSphereOptions()
	o.Radius(7)
	o.MinVolume(50)
	core, logs := observer.New(zap.DebugLevel)
	S := NewSphere(o).WithLogger(zap.New(core))
	fmt.Println(S)
	cavs, err := S.Map(shell(v3.C(0, 0, 0), 5, 80))
	require.NoError(Te, err)
	require.Len(Te, cavs, 1)
	fmt.Println(cavs[0])
	assert.Less(Te, v3.Dist(cavs[0].Center(), v3.C(0, 0, 0)), 0.5)
	assert.Greater(Te, cavs[0].Volume(), 50.0)
	assert.Less(Te, cavs[0].Volume(), 4.0/3.0*math.Pi*125)
	assert.Equal(Te, 1, logs.FilterMessage("final cavities").Len())
	assert.Equal(Te, 1, logs.FilterMessage("cavity").Len())
}

//noAtoms is a receptor without atoms.
type noAtoms struct{}

func (noAtoms) Atom(i int) *chem.Atom { panic("no atoms") }
func (noAtoms) Len() int { return 0 }
func (noAtoms) Coord(i int) v3.Coord { panic("no atoms") }

//Without a receptor, the large probe sweeps the whole sphere as bulk solvent.
func TestSphereEmpty(Te *testing.T) {
	o := DefaultSphereOptions()
	o.Radius(5)
	o.GridStep(1)
	S := NewSphere(o)
	cavs, err := S.Map(noAtoms{})
	require.NoError(Te, err)
	assert.Empty(Te, cavs)
	cavs, err = S.Map(nil)
	assert.NoError(Te, err)
	assert.Empty(Te, cavs)
	var mol *chem.Molecule
	cavs, err = S.Map(mol)
	assert.NoError(Te, err)
	assert.Empty(Te, cavs)
	assert.Equal(Te, 0, mol.Len())
}

func TestLigand(Te *testing.T) {
	ref, err := chem.ReadFile("../testdata/ref.sd")
	require.NoError(Te, err)
	center := v3.C(1.75, 2, 3)
	rec := shell(center, 5, 80)

	o := DefaultLigandOptions(ref)
	o.Radius(3)
	o.MinVolume(50)
	L := NewLigand(o)
	fmt.Println(L)
	cavs, err := L.Map(rec)
	require.NoError(Te, err)
	require.Len(Te, cavs, 1)
	assert.Less(Te, v3.Dist(cavs[0].Center(), center), 0.5)

	//With the default radius the region also includes the outside of the shell,
	//which is the largest cavity.
	o.Radius(10)
	cavs, err = L.Map(rec)
	require.NoError(Te, err)
	require.Len(Te, cavs, 2)
	fmt.Println(cavs[0], "\n", cavs[1])
	assert.Greater(Te, cavs[0].Volume(), cavs[1].Volume())
	assert.Less(Te, v3.Dist(cavs[1].Center(), center), 0.5)
	largest := cavs[0].NumCoords()
	o.MaxCavities(1)
	cavs, err = L.Map(rec)
	require.NoError(Te, err)
	require.Len(Te, cavs, 1)
	assert.Equal(Te, largest, cavs[0].NumCoords())

	var norec *chem.Molecule
	cavs, err = L.Map(norec)
	assert.NoError(Te, err)
	assert.Empty(Te, cavs)

	nohvy := chem.NewMoleculeFromCoords([]v3.Coord{v3.C(0, 0, 0)}, "H")
	_, err = NewLigand(DefaultLigandOptions(nohvy)).Map(rec)
	assert.True(Te, errors.Is(err, grid.ErrBadArgument))
}

func TestNew(Te *testing.T) {
	M, err := New("RbtSphereSiteMapper", Config{Radius: 6, Center: []float64{1, 2, 3}, MaxCavities: 3})
	require.NoError(Te, err)
	S, ok := M.(*Sphere)
	require.True(Te, ok)
	assert.Equal(Te, 6.0, S.Options().Radius())
	assert.Equal(Te, v3.C(1, 2, 3), S.Options().Center())
	assert.Equal(Te, 3, S.Options().MaxCavities())
	assert.Equal(Te, 1.5, S.Options().SmallSphere())
	assert.Equal(Te, 4.0, S.Options().LargeSphere())

	M, err = New("ligand", Config{RefMol: "../testdata/ref.sd", GridStep: 1})
	require.NoError(Te, err)
	L, ok := M.(*Ligand)
	require.True(Te, ok)
	assert.Equal(Te, 1.0, L.Options().GridStep())
	assert.Equal(Te, 3, L.Options().Ref().Len())

	for _, c := range []struct {
		kind string
		cfg  Config
	}{
		{"cube", Config{}},
		{"sphere", Config{Radius: -1}},
		{"sphere", Config{Center: []float64{1, 2}}},
		{"LigandSiteMapper", Config{}},
	} {
		_, err := New(c.kind, c.cfg)
		assert.True(Te, errors.Is(err, grid.ErrBadArgument), "%s %+v: %v", c.kind, c.cfg, err)
	}
	_, err = New("ligand", Config{RefMol: "../testdata/nothere.sd"})
	assert.Error(Te, err)
}
