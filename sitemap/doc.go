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

/*Package sitemap finds the cavities of a receptor by rolling probe spheres over a grid.

The Sphere mapper looks for cavities within a sphere: receptor atoms are stamped on
the grid, a large probe excludes the regions open to bulk solvent, and the regions
where a small probe fits are the cavities. The Ligand mapper looks for cavities
within some distance of the heavy atoms of a reference ligand, using only the small probe.

Mappers log the progress of each stage at debug level through a zap.Logger.
*/
package sitemap
