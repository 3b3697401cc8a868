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

/*Package cavity contains the results of mapping a receptor: cavities, and
the docking sites formed by them.

A Cavity is an immutable set of grid points with its principal axes and limits.
A Site groups the cavities used for docking and holds a distance grid, where each
point stores the distance to the nearest cavity point. The distance grid covers the
cavities plus a border, and is used to select the receptor atoms lying at a given
distance from the cavities.

Sites can be written and read back with WriteSite and ReadSite, either as plain
JSON or compressed with zstd.
*/
package cavity
