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

package cavity

import "github.com/rmera/gocavity/grid"

//errDecorate adds the caller to the decoration of err. Errors that are not grid.Errors
//are converted to one, keeping their message.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(grid.Error); ok {
		return grid.ErrDecorate(err, caller)
	}
	return grid.NewError(nil, err.Error(), caller)
}
