/*
 * cavplot.go, part of gocavity.
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

package chemplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/gocavity/cavity"
	"github.com/rmera/gocavity/histo"
	v3 "github.com/rmera/gocavity/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Size of the saved plots
const (
	width  = 5 * vg.Inch
	height = 5 * vg.Inch
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//CavityVolumes produces a bar chart with the volume of each cavity, and saves it to
//filename. The format is taken from the extension of filename (png, svg, pdf...).
func CavityVolumes(cavs []*cavity.Cavity, title, filename string) error {
	if len(cavs) == 0 {
		return fmt.Errorf("goCavity/chemplot: CavityVolumes: no cavities given")
	}
	p := basicPlot(title, "Cavity", "Volume (A^3)")
	vols := make(plotter.Values, len(cavs))
	names := make([]string, len(cavs))
	for i, c := range cavs {
		vols[i] = c.Volume()
		names[i] = fmt.Sprintf("%d", i+1)
	}
	bars, err := plotter.NewBarChart(vols, vg.Points(15))
	if err != nil {
		return fmt.Errorf("goCavity/chemplot: CavityVolumes: %w", err)
	}
	bars.Color = colors(0, 1)
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	return p.Save(width, height, filename)
}

//CavityProjection produces a scatter plot of the points of each cavity projected on the
//plane formed by the two principal axes of smallest moment of the whole set of cavities,
//i.e. the plane where the cavities are most spread. Each cavity gets its own color
//and, for the first few, its own glyph. The plot is saved to filename.
func CavityProjection(cavs []*cavity.Cavity, title, filename string) error {
	var all []v3.Coord
	for _, c := range cavs {
		all = append(all, c.Coords()...)
	}
	if len(all) == 0 {
		return fmt.Errorf("goCavity/chemplot: CavityProjection: no cavity points given")
	}
	axes, err := cavity.AxesFromCoords(all)
	if err != nil {
		axes = cavity.DefaultAxes()
		axes.COM = v3.Centroid(all)
	}
	//the axes are sorted by ascending moment, so the points are most spread along the first one.
	ax, ay := axes.Axes[0], axes.Axes[1]
	p := basicPlot(title, "First principal axis (A)", "Second principal axis (A)")
	for i, c := range cavs {
		pts := make(plotter.XYs, c.NumCoords())
		for j, v := range c.Coords() {
			r := v.Sub(axes.COM)
			pts[j].X = r.Dot(ax)
			pts[j].Y = r.Dot(ay)
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("goCavity/chemplot: CavityProjection: %w", err)
		}
		s.GlyphStyle.Color = colors(i, len(cavs))
		s.GlyphStyle.Shape = getShape(i)
		s.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("Cavity %d", i+1), s)
	}
	return p.Save(width, height, filename)
}

//Histogram plots the histogram h and saves it to filename.
func Histogram(h *histo.Data, title, xlabel, filename string) error {
	counts := h.View()
	div := h.CopyDividers()
	bins := make([]plotter.HistogramBin, len(counts))
	for i, v := range counts {
		bins[i] = plotter.HistogramBin{Min: div[i], Max: div[i+1], Weight: v}
	}
	ylabel := "Count"
	if h.Normalized() {
		ylabel = "Fraction"
	}
	p := basicPlot(title, xlabel, ylabel)
	hp := &plotter.Histogram{
		Bins:      bins,
		Width:     div[len(div)-1] - div[0],
		FillColor: color.Gray{Y: 160},
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(hp)
	return p.Save(width, height, filename)
}
