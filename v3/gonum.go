/*
 * gonum.go, part of gocavity.
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

//gonum.go contains what is needed for handling the gonum/mat types.

//All the *Vec functions operate on row vectors, each row being the
//cartesian coordinates of a point in 3D space.

package v3

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point errors

//Matrix is a set of vectors in 3D space. Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//NewMatrix returns a Matrix with the data given, which is interpreted as a row-major
//Nx3 matrix. It returns an error if the length of data is not a multiple of 3.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	r := l / cols
	return &Matrix{mat.NewDense(r, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, cols*vecs))}
}

//FromCoords returns a new Matrix with one row for each element of list.
func FromCoords(list []Coord) *Matrix {
	ret := Zeros(len(list))
	for i, v := range list {
		ret.SetCoord(i, v)
	}
	return ret
}

//Dense2Matrix returns a Matrix over the same data as A. It panics if
//A does not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NVecs return the number of (row) vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Coord returns the ith vector of F as a Coord.
func (F *Matrix) Coord(i int) Coord {
	return Coord{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SetCoord puts the values of c in the ith vector of F
func (F *Matrix) SetCoord(i int, c Coord) {
	F.Set(i, 0, c.X)
	F.Set(i, 1, c.Y)
	F.Set(i, 2, c.Z)
}

//Coords returns all the vectors of F as a slice of Coord.
func (F *Matrix) Coords() []Coord {
	n := F.NVecs()
	ret := make([]Coord, n)
	for i := range ret {
		ret[i] = F.Coord(i)
	}
	return ret
}

//Clone returns a deep copy of F
func (F *Matrix) Clone() *Matrix {
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

//SwapVecs swaps the vectors i and j in the receiver
func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	ci, cj := F.Coord(i), F.Coord(j)
	F.SetCoord(i, cj)
	F.SetCoord(j, ci)
}

//det returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func det(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return (A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) - A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) + A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2)))
}

//eigenpair satisfies the sort.Interface interface.
type eigenpair struct {
	//evecs must have as many rows as evals has elements.
	evecs *Matrix
	evals sort.Float64Slice
}

func (E eigenpair) Less(i, j int) bool {
	return E.evals[i] < E.evals[j]
}
func (E eigenpair) Swap(i, j int) {
	E.evals.Swap(i, j)
	E.evecs.SwapVecs(i, j)
}
func (E eigenpair) Len() int {
	return len(E.evals)
}

//EigenWrap diagonalizes the symmetric 3x3 matrix in, using gonum's EigenSym.
//It returns the eigenvectors as the rows of a Matrix, sorted according to
//the eigenvalues in ascending order, and the eigenvalues. The eigenvectors
//are checked for orthonormality with tolerance epsilon (a negative epsilon
//means a default value) and they form a right-handed set.
//Only the upper triangle of in is read.
func EigenWrap(in *Matrix, epsilon float64) (*Matrix, []float64, error) {
	if epsilon < 0 {
		epsilon = appzero
	}
	r, c := in.Dims()
	if r != 3 || c != 3 {
		panic(ErrShape)
	}
	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, in.At(i, j))
		}
	}
	var efacs mat.EigenSym
	if ok := efacs.Factorize(sym, true); !ok {
		return nil, nil, Error{string(ErrEigen), []string{"EigenWrap"}, true}
	}
	evals := efacs.Values(nil)
	var vecs mat.Dense
	efacs.VectorsTo(&vecs)
	//gonum returns the eigenvectors as columns, we want them as rows.
	evecs := Zeros(3)
	evecs.Copy(vecs.T())
	eig := eigenpair{evecs, evals}
	sort.Sort(eig)
	for i := 0; i < 3; i++ {
		vi := eig.evecs.Coord(i)
		for j := i + 1; j < 3; j++ {
			vj := eig.evecs.Coord(j)
			if math.Abs(vi.Dot(vj)) > epsilon*1e3 {
				return eig.evecs, eig.evals, Error{fmt.Sprintf("Eigenvectors %d and %d not orthogonal. Dot: %g", i, j, vi.Dot(vj)), []string{"EigenWrap"}, true}
			}
		}
		if math.Abs(vi.Length()-1) > epsilon*1e3 {
			eig.evecs.SetCoord(i, vi.Unit())
		}
	}
	//Checking and fixing the handedness of the matrix.
	if det(eig.evecs) < 0 {
		eig.evecs.SetCoord(2, eig.evecs.Coord(2).Scale(-1))
	}
	return eig.evecs, eig.evals, nil
}

//Errors

//Error is the error type for the v3 package. It implements
//the chem.Error interface, without importing chem.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("goCavity/v3: A VecMatrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("goCavity/v3: not enough elements")
	ErrEigen             = PanicMsg("goCavity/v3: Can't obtain eigenvectors/eigenvalues of given matrix")
	ErrDeterminant       = PanicMsg("goCavity/v3: Determinants are only available for 3x3 matrices")
	ErrShape             = PanicMsg("goCavity/v3: Dimension mismatch")
	ErrIndexOutOfRange   = PanicMsg("goCavity/v3: index out of range")
)
