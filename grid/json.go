/*
 * json.go, part of gocavity.
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
	"encoding/json"
	"fmt"

	v3 "github.com/rmera/gocavity/v3"
)

type jsonGeometry struct {
	Min     v3.Coord `json:"min"`
	Max     v3.Coord `json:"max"`
	Step    v3.Coord `json:"step"`
	PadMin  v3.Coord `json:"pad-min"`
	PadMax  v3.Coord `json:"pad-max"`
	NXYZ    [3]int   `json:"nxyz"`
	N       int      `json:"n"`
	SXYZ    [3]int   `json:"sxyz"`
	NPad    int      `json:"npad"`
	NXYZMin [3]int   `json:"nxyz-min"`
	NXYZMax [3]int   `json:"nxyz-max"`
}

//MarshalJSON encodes the geometry as a JSON object.
func (g Geometry) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonGeometry{
		Min:     g.min,
		Max:     g.max,
		Step:    g.step,
		PadMin:  g.padMin,
		PadMax:  g.padMax,
		NXYZ:    [3]int{g.nx, g.ny, g.nz},
		N:       g.n,
		SXYZ:    [3]int{g.sx, g.sy, g.sz},
		NPad:    g.npad,
		NXYZMin: [3]int{g.nxMin, g.nyMin, g.nzMin},
		NXYZMax: [3]int{g.nxMax, g.nyMax, g.nzMax},
	})
}

//UnmarshalJSON decodes a geometry encoded with MarshalJSON. The fields
//that can be derived from others are checked and recalculated. g is not
//changed if an error is returned.
func (g *Geometry) UnmarshalJSON(b []byte) error {
	var j jsonGeometry
	if err := json.Unmarshal(b, &j); err != nil {
		return Error{err.Error(), ErrFileParse, []string{"Geometry.UnmarshalJSON"}, true}
	}
	tmp, err := j.geometry()
	if err != nil {
		return ErrDecorate(err, "Geometry.UnmarshalJSON")
	}
	*g = tmp
	return nil
}

func (j *jsonGeometry) geometry() (Geometry, error) {
	fail := func(format string, a ...any) (Geometry, error) {
		return Geometry{}, Error{fmt.Sprintf(format, a...), ErrFileParse, []string{"geometry"}, true}
	}
	if j.Step.X <= 0 || j.Step.Y <= 0 || j.Step.Z <= 0 {
		return fail("non-positive grid step %v", j.Step)
	}
	for i, n := range j.NXYZ {
		if n <= 0 {
			return fail("no grid points along axis %d", i)
		}
		if j.NXYZMax[i]-j.NXYZMin[i]+1 != n {
			return fail("inconsistent limits along axis %d: %d to %d for %d points", i, j.NXYZMin[i], j.NXYZMax[i], n)
		}
	}
	if n := j.NXYZ[0] * j.NXYZ[1] * j.NXYZ[2]; j.N != n {
		return fail("%d grid points declared, %d expected", j.N, n)
	}
	if j.NPad < 0 {
		return fail("negative padding %d", j.NPad)
	}
	g := Geometry{
		step:  j.Step,
		nx:    j.NXYZ[0],
		ny:    j.NXYZ[1],
		nz:    j.NXYZ[2],
		n:     j.N,
		sx:    j.NXYZ[1] * j.NXYZ[2],
		sy:    j.NXYZ[2],
		sz:    1,
		npad:  j.NPad,
		nxMin: j.NXYZMin[0],
		nyMin: j.NXYZMin[1],
		nzMin: j.NXYZMin[2],
		nxMax: j.NXYZMax[0],
		nyMax: j.NXYZMax[1],
		nzMax: j.NXYZMax[2],
	}
	g.setLimits()
	return g, nil
}

type jsonReal struct {
	Tolerance float64   `json:"tolerance"`
	Data      []float32 `json:"data"`
	Geometry  Geometry  `json:"base-grid"`
}

//MarshalJSON encodes the grid, with its geometry and values, as a JSON object.
func (R *Real) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonReal{Tolerance: R.tol, Data: R.data, Geometry: R.Geometry})
}

//UnmarshalJSON decodes a grid encoded with MarshalJSON. R is not changed if an error
//is returned.
func (R *Real) UnmarshalJSON(b []byte) error {
	var j jsonReal
	if err := json.Unmarshal(b, &j); err != nil {
		if e, ok := err.(Error); ok {
			return ErrDecorate(e, "Real.UnmarshalJSON")
		}
		return Error{err.Error(), ErrFileParse, []string{"Real.UnmarshalJSON"}, true}
	}
	if j.Geometry.n == 0 {
		return Error{"missing grid geometry", ErrFileParse, []string{"Real.UnmarshalJSON"}, true}
	}
	if len(j.Data) != j.Geometry.n {
		return Error{fmt.Sprintf("%d values for %d grid points", len(j.Data), j.Geometry.n), ErrFileParse, []string{"Real.UnmarshalJSON"}, true}
	}
	if j.Tolerance <= 0 {
		j.Tolerance = DefaultTolerance
	}
	R.Geometry = j.Geometry
	R.data = j.Data
	R.tol = j.Tolerance
	return nil
}
