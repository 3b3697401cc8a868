/*
 * plot_test.go, part of gocavity.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/gocavity/cavity"
	"github.com/rmera/gocavity/histo"
	v3 "github.com/rmera/gocavity/v3"
)

func blob(c v3.Coord, n int) *cavity.Cavity {
	step := v3.C(0.5, 0.5, 0.5)
	var pts []v3.Coord
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			pts = append(pts, c.Add(v3.C(float64(i), float64(j), 0).Mul(step)))
		}
	}
	return cavity.New(pts, step)
}

func TestCavityPlots(Te *testing.T) {
	dir := Te.TempDir()
	cavs := []*cavity.Cavity{blob(v3.C(0, 0, 0), 10), blob(v3.C(5, 3, 1), 6), blob(v3.C(-4, 2, 0), 3)}
	names := []string{filepath.Join(dir, "volumes.png"), filepath.Join(dir, "projection.png"), filepath.Join(dir, "histo.png")}
	if err := CavityVolumes(cavs, "Cavity volumes", names[0]); err != nil {
		Te.Fatal(err)
	}
	if err := CavityProjection(cavs, "Cavities", names[1]); err != nil {
		Te.Fatal(err)
	}
	h := histo.NewData(histo.UniformDividers(0, 8, 8), []float64{0.5, 1, 1.2, 3, 3.3, 3.9, 7})
	if err := Histogram(h, "Distances", "Distance (A)", names[2]); err != nil {
		Te.Fatal(err)
	}
	for _, n := range names {
		if st, err := os.Stat(n); err != nil || st.Size() == 0 {
			Te.Errorf("Plot %s not written: %v", n, err)
		}
	}
	if err := CavityVolumes(nil, "", names[0]); err == nil {
		Te.Error("No error for an empty cavity list")
	}
}
