/*
 * ligand.go, part of gocavity.
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
	"fmt"

	chem "github.com/rmera/gocavity"
	"github.com/rmera/gocavity/cavity"
	"github.com/rmera/gocavity/grid"
	v3 "github.com/rmera/gocavity/v3"
	"go.uber.org/zap"
)

//LigandOptions contains the parameters of the Ligand mapper.
type LigandOptions struct {
	ref         chem.AtomLocator
	volIncr     float64
	smallSphere float64
	step        float64
	radius      float64
	minVolume   float64
	maxCavities int
}

//DefaultLigandOptions returns the default options for mapping the region within 10 A of the heavy atoms of
//the reference ligand ref, with a 1.5 A probe on a 0.5 A grid, keeping up to 99 cavities of at least 100 A^3.
func DefaultLigandOptions(ref chem.AtomLocator) *LigandOptions {
	return &LigandOptions{
		ref:         ref,
		smallSphere: 1.5,
		step:        0.5,
		radius:      10,
		minVolume:   100,
		maxCavities: 99,
	}
}

//Ref returns the reference ligand, and sets it to a new one, if given.
func (O *LigandOptions) Ref(ref ...chem.AtomLocator) chem.AtomLocator {
	if len(ref) > 0 && ref[0] != nil {
		O.ref = ref[0]
	}
	return O.ref
}

//VolIncr returns the increment added to the van der Waals radii of the receptor atoms,
//and sets it to a new value, if a non-negative value is given.
func (O *LigandOptions) VolIncr(r ...float64) float64 {
	if len(r) > 0 && r[0] >= 0 {
		O.volIncr = r[0]
	}
	return O.volIncr
}

//SmallSphere returns the radius of the probe, and sets it to a new value, if a positive value is given.
func (O *LigandOptions) SmallSphere(r ...float64) float64 {
	if len(r) > 0 && r[0] > 0 {
		O.smallSphere = r[0]
	}
	return O.smallSphere
}

//GridStep returns the step of the mapping grid, and sets it to a new value if a positive value is given.
func (O *LigandOptions) GridStep(s ...float64) float64 {
	if len(s) > 0 && s[0] > 0 {
		O.step = s[0]
	}
	return O.step
}

//Radius returns the distance to the reference atoms of the mapped region, and sets it to a new value
//if a positive value is given.
func (O *LigandOptions) Radius(r ...float64) float64 {
	if len(r) > 0 && r[0] > 0 {
		O.radius = r[0]
	}
	return O.radius
}

//MinVolume returns the minimum volume, in A^3, of the cavities kept, and
//sets it to a new value if a positive value is given.
func (O *LigandOptions) MinVolume(v ...float64) float64 {
	if len(v) > 0 && v[0] > 0 {
		O.minVolume = v[0]
	}
	return O.minVolume
}

//MaxCavities returns the maximum number of cavities kept, and
//sets it to a new value if a positive value is given.
func (O *LigandOptions) MaxCavities(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.maxCavities = n[0]
	}
	return O.maxCavities
}

//Ligand maps the cavities of the receptor near a reference ligand, usually one
//bound to the receptor in a known structure.
type Ligand struct {
	opts *LigandOptions
	log  *zap.Logger
}

//NewLigand returns a ligand mapper with the given options. The options are not copied.
func NewLigand(o *LigandOptions) *Ligand {
	return &Ligand{opts: o, log: zap.NewNop()}
}

//WithLogger sets the logger for the mapper and returns the mapper. A nil logger disables logging.
func (L *Ligand) WithLogger(l *zap.Logger) *Ligand {
	if l == nil {
		l = zap.NewNop()
	}
	L.log = l.Named("ligand-mapper")
	return L
}

//Options returns the options of the mapper. Changes to them affect the mapper.
func (L *Ligand) Options() *LigandOptions { return L.opts }

func (L *Ligand) String() string {
	o := L.opts
	nref := 0
	if o.ref != nil {
		nref = o.ref.Len()
	}
	return fmt.Sprintf("Ligand site mapper: reference atoms=%d; vol-incr=%g; small-sphere=%g; gridstep=%g; radius=%g; min-volume=%g; max-cavities=%d",
		nref, o.volIncr, o.smallSphere, o.step, o.radius, o.minVolume, o.maxCavities)
}

//Map returns the cavities of the receptor within the mapped region, sorted by decreasing volume.
//It returns an error if the reference ligand is not set or has no heavy atoms.
func (L *Ligand) Map(receptor chem.AtomLocator) ([]*cavity.Cavity, error) {
	if missing(receptor) {
		return nil, nil
	}
	o := L.opts
	if o.ref == nil {
		return nil, grid.NewError(grid.ErrBadArgument, "no reference ligand", "Ligand.Map")
	}
	ref := chem.SomeCoords(o.ref, chem.Heavy(o.ref))
	if len(ref) == 0 {
		return nil, grid.NewError(grid.ErrBadArgument, "reference ligand without heavy atoms", "Ligand.Map")
	}
	step := v3.C(o.step, o.step, o.step)
	border := o.radius + o.smallSphere + o.step
	min := v3.MinOf(ref).AddScalar(-border)
	max := v3.MaxOf(ref).AddScalar(border)
	F := grid.NewFFT(grid.NewGeometryCovering(min, max, step, 0))
	F.SetAllValues(recVal)
	for _, c := range ref {
		F.SetSphere(c, o.radius, 0, true)
	}
	L.log.Debug("initialisation", zap.Float64("radius", o.radius), zap.Float64("border", border))
	logCounts(L.log, "initialisation", F)

	excludeReceptor(F, receptor, o.volIncr)
	logCounts(L.log, "exclude receptor volume", F)

	F.SetAccessible(o.smallSphere, 0, recVal, cavVal, false)
	logCounts(L.log, "final cavities", F)

	return cavities(F, o.minVolume, o.maxCavities, L.log), nil
}
