/*
 * sphere.go, part of gocavity.
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

//SphereOptions contains the parameters of the Sphere mapper.
type SphereOptions struct {
	volIncr     float64
	smallSphere float64
	largeSphere float64
	step        float64
	center      v3.Coord
	radius      float64
	minVolume   float64
	maxCavities int
}

//DefaultSphereOptions returns the default options: a 10 A sphere centered in the origin, mapped with
//probes of 1.5 and 4.0 A on a 0.5 A grid, keeping up to 99 cavities of at least 100 A^3.
func DefaultSphereOptions() *SphereOptions {
	return &SphereOptions{
		volIncr:     0,
		smallSphere: 1.5,
		largeSphere: 4.0,
		step:        0.5,
		radius:      10,
		minVolume:   100,
		maxCavities: 99,
	}
}

//VolIncr returns the increment added to the van der Waals radii of the receptor atoms,
//and sets it to a new value, if a non-negative value is given.
func (O *SphereOptions) VolIncr(r ...float64) float64 {
	if len(r) > 0 && r[0] >= 0 {
		O.volIncr = r[0]
	}
	return O.volIncr
}

//SmallSphere returns the radius of the probe that defines the cavities, and
//sets it to a new value, if a positive value is given.
func (O *SphereOptions) SmallSphere(r ...float64) float64 {
	if len(r) > 0 && r[0] > 0 {
		O.smallSphere = r[0]
	}
	return O.smallSphere
}

//LargeSphere returns the radius of the probe that excludes bulk solvent, and
//sets it to a new value, if a positive value is given.
func (O *SphereOptions) LargeSphere(r ...float64) float64 {
	if len(r) > 0 && r[0] > 0 {
		O.largeSphere = r[0]
	}
	return O.largeSphere
}

//GridStep returns the step of the mapping grid, and sets it to a new value
//if a positive value is given.
func (O *SphereOptions) GridStep(s ...float64) float64 {
	if len(s) > 0 && s[0] > 0 {
		O.step = s[0]
	}
	return O.step
}

//Center returns the center of the mapped sphere, and sets it to a new value, if given.
func (O *SphereOptions) Center(c ...v3.Coord) v3.Coord {
	if len(c) > 0 {
		O.center = c[0]
	}
	return O.center
}

//Radius returns the radius of the mapped sphere, and sets it to a new value
//if a positive value is given.
func (O *SphereOptions) Radius(r ...float64) float64 {
	if len(r) > 0 && r[0] > 0 {
		O.radius = r[0]
	}
	return O.radius
}

//MinVolume returns the minimum volume, in A^3, of the cavities kept, and
//sets it to a new value if a positive value is given.
func (O *SphereOptions) MinVolume(v ...float64) float64 {
	if len(v) > 0 && v[0] > 0 {
		O.minVolume = v[0]
	}
	return O.minVolume
}

//MaxCavities returns the maximum number of cavities kept, and
//sets it to a new value if a positive value is given.
func (O *SphereOptions) MaxCavities(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.maxCavities = n[0]
	}
	return O.maxCavities
}

//Sphere maps the cavities of the receptor within a sphere. Regions accessible
//to a large probe are considered bulk solvent, and the cavities are the remaining regions
//accessible to a small probe.
type Sphere struct {
	opts *SphereOptions
	log  *zap.Logger
}

//NewSphere returns a sphere mapper with the given options. If o is nil, the default
//options are used. The options are not copied.
func NewSphere(o *SphereOptions) *Sphere {
	if o == nil {
		o = DefaultSphereOptions()
	}
	return &Sphere{opts: o, log: zap.NewNop()}
}

//WithLogger sets the logger for the mapper and returns the mapper. A nil logger disables logging.
func (S *Sphere) WithLogger(l *zap.Logger) *Sphere {
	if l == nil {
		l = zap.NewNop()
	}
	S.log = l.Named("sphere-mapper")
	return S
}

//Options returns the options of the mapper. Changes to them affect the mapper.
func (S *Sphere) Options() *SphereOptions { return S.opts }

func (S *Sphere) String() string {
	o := S.opts
	return fmt.Sprintf("Sphere site mapper: vol-incr=%g; small-sphere=%g; large-sphere=%g; gridstep=%g; center=%v; radius=%g; min-volume=%g; max-cavities=%d",
		o.volIncr, o.smallSphere, o.largeSphere, o.step, o.center, o.radius, o.minVolume, o.maxCavities)
}

//Map returns the cavities of the receptor, sorted by decreasing volume.
func (S *Sphere) Map(receptor chem.AtomLocator) ([]*cavity.Cavity, error) {
	if missing(receptor) {
		return nil, nil
	}
	o := S.opts
	step := v3.C(o.step, o.step, o.step)
	//the grid is extended beyond the sphere, so the large probe doesn't see the edge
	//of the grid as empty space.
	border := 2 * (o.largeSphere + o.step)
	min := o.center.AddScalar(-o.radius - border)
	max := o.center.AddScalar(o.radius + border)
	F := grid.NewFFT(grid.NewGeometryCovering(min, max, step, 0))
	center := F.Center()

	//A zero-valued sphere surrounded by a border region as thick as the large probe radius.
	F.SetAllValues(excVal)
	F.SetSphere(center, o.radius+o.largeSphere, borVal, true)
	F.SetSphere(center, o.radius, 0, true)
	S.log.Debug("initialisation", zap.Stringer("center", center), zap.Float64("radius", o.radius), zap.Float64("border", border))
	logCounts(S.log, "initialisation", F)

	//Atoms outside the sphere are included too, as their volume can overlap it.
	excludeReceptor(F, receptor, o.volIncr)
	logCounts(S.log, "exclude receptor volume", F)

	//The border region goes first, so the large probe also sweeps
	//the edges of the inner region.
	F.SetAccessible(o.largeSphere, borVal, recVal, larVal, false)
	logCounts(S.log, "exclude large sphere (border region)", F)
	F.SetAccessible(o.largeSphere, 0, recVal, larVal, false)
	logCounts(S.log, "exclude large sphere (inner region)", F)

	//Everything that is not unallocated is now receptor, so the small probe
	//only sees two values.
	F.ReplaceValue(borVal, recVal)
	F.ReplaceValue(excVal, recVal)
	F.ReplaceValue(larVal, recVal)
	F.SetAccessible(o.smallSphere, 0, recVal, cavVal, false)
	logCounts(S.log, "final cavities", F)

	return cavities(F, o.minVolume, o.maxCavities, S.log), nil
}
