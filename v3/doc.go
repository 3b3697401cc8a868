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

/*Package v3 implements the 3D types used through gocavity.

Coord is a single point (or vector) in cartesian space. It is a small
value type: all its methods return new values and never modify the
receiver, so Coords can be freely copied and shared between goroutines.

Matrix is a row-major Nx3 matrix, where each row is a point in space.
It is based on gonum's (gonum.org/v1/gonum) Dense type, and is used
whenever linear algebra is needed on a set of points, for instance
the diagonalization of moment-of-inertia tensors.

*/
package v3
