/*
 * handy.go, part of gocavity.
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

package chem

import (
	"fmt"
	"strings"

	v3 "github.com/rmera/gocavity/v3"
)

//Heavy returns the indexes of all the atoms in mol that are not hydrogens.
//Atoms with an empty symbol are considered heavy.
func Heavy(mol Atomer) []int {
	ret := make([]int, 0, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		if !isHydrogen(mol.Atom(i)) {
			ret = append(ret, i)
		}
	}
	return ret
}

//All returns a selection with all the atoms in mol.
func All(mol Atomer) []int {
	ret := make([]int, mol.Len())
	for i := range ret {
		ret[i] = i
	}
	return ret
}

//SomeCoords returns the coordinates of the atoms in sel. If sel is nil,
//the coordinates of all atoms are returned.
func SomeCoords(mol AtomLocator, sel []int) []v3.Coord {
	if sel == nil {
		sel = All(mol)
	}
	ret := make([]v3.Coord, len(sel))
	for i, v := range sel {
		ret[i] = mol.Coord(v)
	}
	return ret
}

//Molecules2Atoms gets a selection list from a list of residues.
//It select all the atoms that form part of the residues in the list.
//It doesnt return errors, if a residue is out of range, no atom will
//be returned for it. Atoms are also required to be part of one of the chains
//specified in chains. If chains is nil, all chains are accepted.
func Molecules2Atoms(mol Atomer, residues []int, chains []string) []int {
	atlist := make([]int, 0, len(residues)*3)
	for key := 0; key < mol.Len(); key++ {
		at := mol.Atom(key)
		if isInInt(residues, at.Molid) && (chains == nil || isInString(chains, at.Chain)) {
			atlist = append(atlist, key)
		}
	}
	return atlist
}

func isHydrogen(at *Atom) bool {
	return at.Symbol == "H" || at.Symbol == "D"
}

func isInInt(container []int, test int) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

//Errors

//CError (Chem Error) is the general error type for the chem package.
type CError struct {
	msg      string
	deco     []string
	critical bool
}

//Error returns the error message, followed by the chain of functions that
//decorated the error.
func (err CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s (%s)", err.msg, strings.Join(err.deco, " <- "))
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err CError) Critical() bool { return err.critical }

//FError is the error type for problems with files.
type FError struct {
	CError
	filename string
	line     int
}

//Error returns the error message, with the file name and line, if known.
func (err FError) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("%s:%d: %s", err.filename, err.line, err.CError.Error())
	}
	return fmt.Sprintf("%s: %s", err.filename, err.CError.Error())
}

//FileName returns the name of the file that caused the error.
func (err FError) FileName() string { return err.filename }

//errDecorate is a helper function that adds the caller's name to the decoration
//of a chem error before returning it. Other errors are wrapped in a CError first.
//Since errors are values, the decorated copy is the one returned.
func errDecorate(err error, caller string) error {
	switch e := err.(type) {
	case nil:
		return nil
	case CError:
		e.deco = append(e.deco, caller)
		return e
	case FError:
		e.deco = append(e.deco, caller)
		return e
	case Error:
		e.Decorate(caller)
		return e
	default:
		return CError{err.Error(), []string{caller}, true}
	}
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilAtom        = PanicMsg("goCavity: Attempted to copy a nil atom")
	ErrAtomOutOfRange = PanicMsg("goCavity: Requested Atom out of bounds")
)
