/*
 * fft.go, part of gocavity.
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
	"slices"

	v3 "github.com/rmera/gocavity/v3"
)

//Peak is a connected region of grid points above a threshold.
type Peak struct {
	Index  int      //linear index of the highest point in the region
	Coord  v3.Coord //coordinates of the highest point
	Height float64  //value of the highest point
	Volume int      //number of points in the region
	Points []int    //indexes of all the points in the region
}

func (P *Peak) String() string {
	return fmt.Sprintf("Posn=%v; Height=%g; Volume=%d", P.Coord, P.Height, P.Volume)
}

//FFT is a Real grid with methods to find peaks, i.e. connected regions of high values.
type FFT struct {
	Real
}

//NewFFT returns a zeroed FFT grid with geometry g
func NewFFT(g Geometry) *FFT {
	return &FFT{Real: *NewReal(g)}
}

//FindMaxPeak returns a single-point peak at the point with the highest value in the grid.
func (F *FFT) FindMaxPeak() *Peak {
	i := F.FindMaxValue()
	return &Peak{Index: i, Coord: F.CoordAt(i), Height: F.Value(i), Volume: 1, Points: []int{i}}
}

//FindPeaks returns the connected (sharing a face) regions of points with values above threshold
//(within tolerance) that contain at least minVolume points. The peaks are sorted by ascending height.
//Peaks with the same height keep the order in which they were found, which is the order of their
//lowest point index. A minVolume below 1 is taken as 1.
func (F *FFT) FindPeaks(threshold float64, minVolume int) []*Peak {
	minVolume = max(minVolume, 1)
	threshold -= F.tol
	toProcess := make([]bool, F.n)
	for i, d := range F.data {
		if float64(d) > threshold {
			toProcess[i] = true
		}
	}
	peaks := make([]*Peak, 0)
	var queue []int
	for seed := range toProcess {
		if !toProcess[seed] {
			continue
		}
		toProcess[seed] = false
		peakPos := seed
		height := F.data[seed]
		var points []int
		queue = append(queue[:0], seed)
		//the queue is a slice; head moves forward instead of popping.
		for head := 0; head < len(queue); head++ {
			p := queue[head]
			if F.data[p] > height {
				height = F.data[p]
				peakPos = p
			}
			points = append(points, p)
			iX, iY, iZ := F.XYZ(p)
			for _, nb := range [...]struct {
				ok bool
				i  int
			}{
				{iX+1 < F.nx, p + F.sx},
				{iX > 0, p - F.sx},
				{iY+1 < F.ny, p + F.sy},
				{iY > 0, p - F.sy},
				{iZ+1 < F.nz, p + F.sz},
				{iZ > 0, p - F.sz},
			} {
				if nb.ok && toProcess[nb.i] {
					toProcess[nb.i] = false
					queue = append(queue, nb.i)
				}
			}
		}
		if len(points) >= minVolume {
			slices.Sort(points)
			peaks = append(peaks, &Peak{
				Index:  peakPos,
				Coord:  F.CoordAt(peakPos),
				Height: float64(height),
				Volume: len(points),
				Points: points,
			})
		}
	}
	slices.SortStableFunc(peaks, func(a, b *Peak) int {
		switch {
		case a.Height < b.Height:
			return -1
		case a.Height > b.Height:
			return 1
		}
		return 0
	})
	return peaks
}
