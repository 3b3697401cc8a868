/*
 * doc.go, part of gocavity.
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

/*Package grid implements regular three-dimensional grids.

A Geometry holds the dimensions, placement, step and padding of a grid and
all the conversions between the three ways of addressing a grid point: the
linear index iXYZ, the 3D index (iX,iY,iZ), and the cartesian coordinates of
the point. Grid points lie at the center of each grid interval, so the real
world region covered by the grid extends half a step beyond the outermost
points.

Grids do not inherit from each other. Real (one float32 value per point),
FFT (a Real with peak detection) and NonBonded (a list of objects per point)
each hold their own Geometry value.

The index functions of Geometry, and the linear-index value functions of Real,
do not check their arguments: the caller must check the validity of an index
or coordinate (with Valid, ValidIndex or ValidCoord) before using it. An
invalid index will either give a meaningless result or make the program panic
with an index out of range. Functions taking coordinates and returning values
(Real.ValueAt, NonBonded.AtomListAt) do check, and return a zero value for
off-grid coordinates.

A grid is meant to be built and filled by one goroutine and, once filled,
only read. Concurrent reads need no locking.
*/
package grid
