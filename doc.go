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

/*Package chem is the main package of the goCavity library. It provides atom and molecule structures and
facilities for reading the files that describe receptors and reference ligands.


	**goCavity Capabilities**


    Reads PDB, XYZ and MDL (SD/mol) files. Multi-model PDBs and multi-frame XYZ
	files are read as a Molecule with several frames of coordinates.

    Maps cavities (candidate binding sites) in a receptor with two algorithms: the
	two-probe sphere mapper, which scans a sphere given by the user, and the ligand
	mapper, which scans the volume around a reference ligand (package sitemap).

    Represents three-dimensional grids with the index and coordinate conversions,
	sphere enumeration, probe-accessibility sweeps and peak (connected component)
	detection needed for cavity mapping, and neighbor lists of atoms (package grid).

    Builds docking sites out of cavities, with a grid of distances to the nearest
	cavity point, that can be used to select the receptor atoms around the site
	(package cavity). Docking sites are stored as zstd-compressed JSON.

    Plots cavity volumes, projections and distance histograms (package chemplot,
	uses gonum/plot).


Selections of atoms are given as go slices of indexes. Neither grids nor docking
sites keep pointers to atoms: they work with indexes into an Atomer or AtomLocator
owned by the caller, which must outlive them.

The cartesian coordinates of a Molecule are stored as v3.Matrix, where each row is
one point in space, while single points are handled as the value type v3.Coord.

Many functions here panic instead of returning errors. This is because they are
"fundamental" functions. If something goes wrong there, the program is most likely
wrong and should crash. Most of those panics are related to using the function on a
nil object or trying to access out-of-bounds fields.*/
package chem
