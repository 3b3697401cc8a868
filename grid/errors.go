/*
 * errors.go, part of gocavity.
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
	"errors"
	"fmt"
	"strings"
)

//Error categories. They can be tested for with errors.Is.
var (
	//ErrBadArgument is the category of errors due to an argument that can't be used
	//to answer the request, such as a query distance larger than a grid covers.
	ErrBadArgument = errors.New("bad argument")

	//ErrFileParse is the category of errors found while reading a persisted grid,
	//cavity or docking site.
	ErrFileParse = errors.New("file parse error")
)

//Error is the error type for the grid package.
type Error struct {
	message  string
	kind     error
	deco     []string
	critical bool
}

//NewError returns an Error of the category kind with the message msg,
//decorated with the name of the function caller. It is meant for
//packages that build on grid, so all of them report the same categories.
func NewError(kind error, msg, caller string) Error {
	return Error{msg, kind, []string{caller}, true}
}

//Error returns the error message, preceded by its category and followed by the
//functions that decorated it.
func (err Error) Error() string {
	s := err.message
	if err.kind != nil {
		s = fmt.Sprintf("%s: %s", err.kind, err.message)
	}
	if len(err.deco) > 0 {
		s = fmt.Sprintf("%s (%s)", s, strings.Join(err.deco, " <- "))
	}
	return s
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//Unwrap returns the category of the error.
func (err Error) Unwrap() error { return err.kind }

//ErrDecorate adds the caller's name to err, if err is a grid Error.
//Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = append(e.deco, caller)
		return e
	}
	return err
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNonPositiveStep = PanicMsg("goCavity/grid: Grid steps must be positive")
	ErrEmptyGrid       = PanicMsg("goCavity/grid: Grids must have at least one point in each dimension")
)
