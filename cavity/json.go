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

package cavity

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rmera/gocavity/grid"
	v3 "github.com/rmera/gocavity/v3"
)

type jsonCavity struct {
	Step   v3.Coord   `json:"grid-step"`
	Coords []v3.Coord `json:"coords"`
}

//MarshalJSON encodes the grid step and the points of the cavity.
func (C *Cavity) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonCavity{Step: C.step, Coords: C.coords})
}

//UnmarshalJSON decodes a cavity encoded by MarshalJSON and recalculates its
//axes and limits. C is not changed if an error is returned.
func (C *Cavity) UnmarshalJSON(b []byte) error {
	var j jsonCavity
	if err := json.Unmarshal(b, &j); err != nil {
		return grid.NewError(grid.ErrFileParse, err.Error(), "Cavity.UnmarshalJSON")
	}
	if j.Step.X <= 0 || j.Step.Y <= 0 || j.Step.Z <= 0 {
		return grid.NewError(grid.ErrFileParse, fmt.Sprintf("non-positive grid step %v", j.Step), "Cavity.UnmarshalJSON")
	}
	C.step = j.Step
	C.coords = j.Coords
	C.setDerived()
	return nil
}

type jsonSite struct {
	Min      v3.Coord   `json:"min-coord"`
	Max      v3.Coord   `json:"max-coord"`
	Border   float64    `json:"border"`
	Cavities []*Cavity  `json:"cavities"`
	Grid     *grid.Real `json:"real-grid,omitempty"`
}

//MarshalJSON encodes the site. The distance grid is included only if it
//has already been built.
func (S *Site) MarshalJSON() ([]byte, error) {
	S.mu.Lock()
	R := S.grid
	S.mu.Unlock()
	return json.Marshal(jsonSite{Min: S.min, Max: S.max, Border: S.border, Cavities: S.cavities, Grid: R})
}

//UnmarshalJSON decodes a site encoded by MarshalJSON. If the distance grid is
//not included, it will be built when needed. S is not changed if an error is returned.
func (S *Site) UnmarshalJSON(b []byte) error {
	var j jsonSite
	if err := json.Unmarshal(b, &j); err != nil {
		if _, ok := err.(grid.Error); ok {
			return grid.ErrDecorate(err, "Site.UnmarshalJSON")
		}
		return grid.NewError(grid.ErrFileParse, err.Error(), "Site.UnmarshalJSON")
	}
	if j.Border < 0 {
		return grid.NewError(grid.ErrFileParse, fmt.Sprintf("negative border %g", j.Border), "Site.UnmarshalJSON")
	}
	if slices.Contains(j.Cavities, nil) {
		return grid.NewError(grid.ErrFileParse, "null cavity", "Site.UnmarshalJSON")
	}
	if j.Grid != nil && len(j.Cavities) > 0 && j.Grid.Step() != j.Cavities[0].Step() {
		return grid.NewError(grid.ErrFileParse, fmt.Sprintf("distance grid step %v differs from the cavity step %v", j.Grid.Step(), j.Cavities[0].Step()), "Site.UnmarshalJSON")
	}
	S.cavities = j.Cavities
	S.border = j.Border
	S.min, S.max = j.Min, j.Max
	S.setLimits()
	S.setGrid(j.Grid)
	return nil
}
