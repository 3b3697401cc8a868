/*
 * coord.go, part of gocavity.
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

package v3

import (
	"fmt"
	"math"
)

//Coord is a point or a vector in 3D space.
type Coord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

//C is a shortcut to build a Coord.
func C(x, y, z float64) Coord {
	return Coord{x, y, z}
}

//Add returns c+d
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y, c.Z + d.Z}
}

//Sub returns c-d
func (c Coord) Sub(d Coord) Coord {
	return Coord{c.X - d.X, c.Y - d.Y, c.Z - d.Z}
}

//Scale returns c multiplied by the scalar f.
func (c Coord) Scale(f float64) Coord {
	return Coord{c.X * f, c.Y * f, c.Z * f}
}

//AddScalar returns c with f added to each component.
func (c Coord) AddScalar(f float64) Coord {
	return Coord{c.X + f, c.Y + f, c.Z + f}
}

//Mul returns the component-wise product of c and d.
func (c Coord) Mul(d Coord) Coord {
	return Coord{c.X * d.X, c.Y * d.Y, c.Z * d.Z}
}

//Div returns the component-wise quotient of c and d.
//No check is made for zero components in d.
func (c Coord) Div(d Coord) Coord {
	return Coord{c.X / d.X, c.Y / d.Y, c.Z / d.Z}
}

//Dot returns the dot product of c and d
func (c Coord) Dot(d Coord) float64 {
	return c.X*d.X + c.Y*d.Y + c.Z*d.Z
}

//Cross returns the cross product c x d
func (c Coord) Cross(d Coord) Coord {
	return Coord{
		c.Y*d.Z - c.Z*d.Y,
		c.Z*d.X - c.X*d.Z,
		c.X*d.Y - c.Y*d.X,
	}
}

//Length2 returns the squared norm of c.
func (c Coord) Length2() float64 {
	return c.Dot(c)
}

//Length returns the norm of c
func (c Coord) Length() float64 {
	return math.Sqrt(c.Dot(c))
}

//Unit returns c normalized. A zero vector is returned unchanged.
func (c Coord) Unit() Coord {
	l := c.Length()
	if l < appzero {
		return c
	}
	return c.Scale(1 / l)
}

//Floor returns c with each component rounded down.
func (c Coord) Floor() Coord {
	return Coord{math.Floor(c.X), math.Floor(c.Y), math.Floor(c.Z)}
}

//Abs returns c with the absolute value of each component.
func (c Coord) Abs() Coord {
	return Coord{math.Abs(c.X), math.Abs(c.Y), math.Abs(c.Z)}
}

//MinComponent returns the smallest of the 3 components.
func (c Coord) MinComponent() float64 {
	return math.Min(c.X, math.Min(c.Y, c.Z))
}

//Array returns the components as an array.
func (c Coord) Array() [3]float64 {
	return [3]float64{c.X, c.Y, c.Z}
}

//String returns the coordinate in the (x,y,z) format.
func (c Coord) String() string {
	return fmt.Sprintf("(%g,%g,%g)", c.X, c.Y, c.Z)
}

//Dist returns the distance between a and b
func Dist(a, b Coord) float64 {
	return a.Sub(b).Length()
}

//Dist2 returns the squared distance between a and b
func Dist2(a, b Coord) float64 {
	return a.Sub(b).Length2()
}

//Min returns the component-wise minimum of a and b.
func Min(a, b Coord) Coord {
	return Coord{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

//Max returns the component-wise maximum of a and b.
func Max(a, b Coord) Coord {
	return Coord{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

//MinOf returns the component-wise minimum of all the
//coordinates in list. It panics if the list is empty.
func MinOf(list []Coord) Coord {
	if len(list) == 0 {
		panic(ErrNotEnoughElements)
	}
	ret := list[0]
	for _, v := range list[1:] {
		ret = Min(ret, v)
	}
	return ret
}

//MaxOf returns the component-wise maximum of all the
//coordinates in list. It panics if the list is empty.
func MaxOf(list []Coord) Coord {
	if len(list) == 0 {
		panic(ErrNotEnoughElements)
	}
	ret := list[0]
	for _, v := range list[1:] {
		ret = Max(ret, v)
	}
	return ret
}

//Centroid returns the geometric center of the list. It panics if the list is empty.
func Centroid(list []Coord) Coord {
	if len(list) == 0 {
		panic(ErrNotEnoughElements)
	}
	var ret Coord
	for _, v := range list {
		ret = ret.Add(v)
	}
	return ret.Scale(1 / float64(len(list)))
}

//Compare orders coordinates lexicographically, first by X, then Y, then Z.
//It returns -1, 0 or 1, so it can be used with slices.SortFunc.
func Compare(a, b Coord) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.Z < b.Z:
		return -1
	case a.Z > b.Z:
		return 1
	}
	return 0
}
