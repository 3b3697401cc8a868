/*
 * insight.go, part of gocavity.
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
	"bufio"
	"fmt"
	"io"
)

//WriteInsight writes the grid to w in the ASCII format read by InsightII.
//The values are written with X changing fastest and Z slowest.
func (R *Real) WriteInsight(w io.Writer) error {
	b := bufio.NewWriter(w)
	fmt.Fprintln(b, "RBT FFT GRID")
	fmt.Fprintln(b, "(1F15.10)")
	fmt.Fprintf(b, "%8.3f%8.3f%8.3f%8.3f%8.3f%8.3f\n",
		R.step.X*float64(R.nx-1), R.step.Y*float64(R.ny-1), R.step.Z*float64(R.nz-1), 90.0, 90.0, 90.0)
	fmt.Fprintf(b, "%5d%5d%5d\n", R.nx-1, R.ny-1, R.nz-1)
	fmt.Fprintf(b, "%5d%5d%5d%5d%5d%5d%5d\n", 1, R.nxMin, R.nxMax, R.nyMin, R.nyMax, R.nzMin, R.nzMax)
	for iZ := 0; iZ < R.nz; iZ++ {
		for iY := 0; iY < R.ny; iY++ {
			for iX := 0; iX < R.nx; iX++ {
				fmt.Fprintf(b, "%15.10f\n", R.data[R.IXYZ(iX, iY, iZ)])
			}
		}
	}
	if err := b.Flush(); err != nil {
		return Error{err.Error(), nil, []string{"WriteInsight"}, true}
	}
	return nil
}
