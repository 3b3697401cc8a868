/*
 * histo.go, part of gocavity.
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

package histo

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram. Bin i counts the values v such that dividers[i] <= v < dividers[i+1].
//Values outside the range of the dividers are not counted.
type Data struct {
	name       string
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

type jsonData struct {
	Name       string    `json:"name,omitempty"`
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{
		Name:       D.name,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if len(a.Dividers) < 2 || len(a.Histo) != len(a.Dividers)-1 {
		return fmt.Errorf("goCavity/histo: %d bins given for %d dividers", len(a.Histo), len(a.Dividers))
	}
	D.name = a.Name
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//Name returns the name of the histogram
func (D *Data) Name() string {
	return D.name
}

//String prints a -hopefully- pretty string representation of
//the histogram. The representation uses 3 lines of text
func (D *Data) String() string {
	ret := fmt.Sprintf("Name: %s, Normalized: %v, TotalData: %d\n", D.name, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil. In that case, an empty histogram is created.
//The dividers must be sorted in ascending order, and there must be at least 2 of them.
//The name, if given, is set for the histogram.
func NewData(dividers []float64, rawdata []float64, name ...string) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic(ErrDividers)
	}
	d := new(Data)
	d.dividers = slices.Clone(dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	if len(name) > 0 {
		d.name = name[0]
	}
	return d
}

//UniformDividers returns n+1 dividers splitting [min,max] in n bins of the same width.
func UniformDividers(min, max float64, n int) []float64 {
	if n < 1 || max <= min {
		panic(ErrDividers)
	}
	return floats.Span(make([]float64, n+1), min, max)
}

//AddData adds the given data point(s) to the histogram
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		//index of the first divider greater than v
		j := sort.SearchFloat64s(D.dividers, v)
		if j < len(D.dividers) && D.dividers[j] == v {
			j++
		}
		D.histo[j-1]++
		D.total++
	}
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram, so its bins add up to 1.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//Total returns the number of values counted in the histogram
func (D *Data) Total() int {
	return D.total
}

//CopyDividers copies the dividers of the histogram
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	copy(d, D.dividers)
	return d
}

//Copy copies the bins of the histogram
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	copy(d, D.histo)
	return d
}

//View returns the bins of the histogram. Changes to the slice will affect the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

//Centers returns the middle point of each bin
func (D *Data) Centers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	for i := range d {
		d[i] = (D.dividers[i] + D.dividers[i+1]) / 2
	}
	return d
}

//Add adds the histogram a to the receiver. The dividers of both must match,
//and none can be normalized.
func (D *Data) Add(a *Data) error {
	if !slices.Equal(D.dividers, a.dividers) {
		return fmt.Errorf("goCavity/histo: dividers must match in added histograms")
	}
	if D.normalized || a.normalized {
		return fmt.Errorf("goCavity/histo: normalized histograms can't be added")
	}
	floats.Add(D.histo, a.histo)
	D.total += a.total
	return nil
}

//Sum returns the sum of the bins
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//ReHisto replaces the contents of the histogram with a histogram of rawdata.
//rawdata is not modified.
func (D *Data) ReHisto(rawdata []float64) {
	data := slices.Clone(rawdata)
	sort.Float64s(data)
	//stat.Histogram panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(data, D.dividers[0])
	data = data[mini:maxi]
	D.total = len(data)
	D.normalized = false
	D.histo = stat.Histogram(D.histo, D.dividers, data, nil)
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	if len(dest) > 0 && len(dest[0]) >= N {
		return dest[0][:N]
	}
	return make([]float64, N)
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const ErrDividers = PanicMsg("goCavity/histo: at least 2 dividers, sorted in ascending order, are needed")
