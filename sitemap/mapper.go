/*
 * mapper.go, part of gocavity.
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

package sitemap

import (
	"fmt"
	"strings"

	chem "github.com/rmera/gocavity"
	"github.com/rmera/gocavity/cavity"
	"github.com/rmera/gocavity/grid"
	v3 "github.com/rmera/gocavity/v3"
	"go.uber.org/zap"
)

//Mapper finds the cavities of a receptor.
//A missing receptor (nil, or a nil *chem.Molecule) is not an error: Map
//returns an empty list for it.
type Mapper interface {
	Map(receptor chem.AtomLocator) ([]*cavity.Cavity, error)
	String() string
}

//Config holds the parameters of a mapper, as read from a configuration file.
//Zero values leave the default value of the parameter unchanged.
type Config struct {
	VolIncr     float64   `mapstructure:"vol-incr"`
	SmallSphere float64   `mapstructure:"small-sphere"`
	LargeSphere float64   `mapstructure:"large-sphere"`
	GridStep    float64   `mapstructure:"gridstep"`
	Center      []float64 `mapstructure:"center"`
	Radius      float64   `mapstructure:"radius"`
	MinVolume   float64   `mapstructure:"min-volume"`
	MaxCavities int       `mapstructure:"max-cavities"`
	RefMol      string    `mapstructure:"ref-mol"` //reference ligand file, only for the ligand mapper

	Logger *zap.Logger `mapstructure:"-"`
}

func (c *Config) check(kind string) error {
	neg := map[string]float64{"vol-incr": c.VolIncr, "small-sphere": c.SmallSphere, "large-sphere": c.LargeSphere,
		"gridstep": c.GridStep, "radius": c.Radius, "min-volume": c.MinVolume}
	for k, v := range neg {
		if v < 0 {
			return grid.NewError(grid.ErrBadArgument, fmt.Sprintf("negative %s: %g", k, v), "New")
		}
	}
	if c.MaxCavities < 0 {
		return grid.NewError(grid.ErrBadArgument, fmt.Sprintf("negative max-cavities: %d", c.MaxCavities), "New")
	}
	if c.Center != nil && len(c.Center) != 3 {
		return grid.NewError(grid.ErrBadArgument, fmt.Sprintf("center needs 3 coordinates, got %d", len(c.Center)), "New")
	}
	if kind == "ligand" && c.RefMol == "" {
		return grid.NewError(grid.ErrBadArgument, "the ligand mapper needs a reference ligand (ref-mol)", "New")
	}
	return nil
}

//mapperKind normalizes the name of a mapper class, so "sphere", "SphereSiteMapper" and
//"RbtSphereSiteMapper" all give "sphere".
func mapperKind(kind string) string {
	kind = strings.TrimPrefix(kind, "Rbt")
	kind = strings.TrimSuffix(kind, "SiteMapper")
	return strings.ToLower(kind)
}

//New returns a mapper of the given kind ("sphere" or "ligand") set up from cfg.
//The reference ligand of a ligand mapper is read from the file cfg.RefMol.
func New(kind string, cfg Config) (Mapper, error) {
	k := mapperKind(kind)
	if k != "sphere" && k != "ligand" {
		return nil, grid.NewError(grid.ErrBadArgument, "unknown site mapper "+kind, "New")
	}
	if err := cfg.check(k); err != nil {
		return nil, err
	}
	if k == "sphere" {
		o := DefaultSphereOptions()
		o.VolIncr(cfg.VolIncr)
		o.SmallSphere(cfg.SmallSphere)
		o.LargeSphere(cfg.LargeSphere)
		o.GridStep(cfg.GridStep)
		o.Radius(cfg.Radius)
		o.MinVolume(cfg.MinVolume)
		o.MaxCavities(cfg.MaxCavities)
		if cfg.Center != nil {
			o.Center(v3.C(cfg.Center[0], cfg.Center[1], cfg.Center[2]))
		}
		return NewSphere(o).WithLogger(cfg.Logger), nil
	}
	ref, err := chem.ReadFile(cfg.RefMol)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	o := DefaultLigandOptions(ref)
	o.VolIncr(cfg.VolIncr)
	o.SmallSphere(cfg.SmallSphere)
	o.GridStep(cfg.GridStep)
	o.Radius(cfg.Radius)
	o.MinVolume(cfg.MinVolume)
	o.MaxCavities(cfg.MaxCavities)
	return NewLigand(o).WithLogger(cfg.Logger), nil
}

//Grid values
const (
	recVal = -1.0  //receptor volume
	larVal = -0.75 //accessible to the large sphere
	excVal = -0.5  //excluded from the calculation
	borVal = -0.25 //border region, only used for mapping the large sphere
	cavVal = 1.0   //cavities
)

func missing(receptor chem.AtomLocator) bool {
	if receptor == nil {
		return true
	}
	m, ok := receptor.(*chem.Molecule)
	return ok && m == nil
}

//excludeReceptor marks the volume of the heavy atoms of the receptor, with their
//radii increased by volIncr.
func excludeReceptor(F *grid.FFT, receptor chem.AtomLocator, volIncr float64) {
	for _, i := range chem.Heavy(receptor) {
		F.SetSphere(receptor.Coord(i), chem.VdwRadius(receptor.Atom(i))+volIncr, recVal, true)
	}
}

//cavities turns the connected regions of cavity points with at least minVol A^3 into
//cavities, returning the largest maxCav of them.
func cavities(F *grid.FFT, minVol float64, maxCav int, log *zap.Logger) []*cavity.Cavity {
	step := F.Step()
	minSize := int(minVol / (step.X * step.Y * step.Z))
	log.Debug("min cavity size", zap.Int("points", minSize))
	peaks := F.FindPeaks(cavVal, minSize)
	cavs := make([]*cavity.Cavity, 0, len(peaks))
	for _, p := range peaks {
		cavs = append(cavs, cavity.New(F.CoordList(p.Points), step))
	}
	cavity.SortByVolume(cavs)
	for _, c := range cavs {
		log.Debug("cavity", zap.Stringer("cavity", c))
	}
	if len(cavs) > maxCav {
		log.Info("limiting the number of cavities", zap.Int("found", len(cavs)), zap.Int("kept", maxCav))
		cavs = cavs[:maxCav]
	}
	return cavs
}

//logCounts logs the number of points with each tag. The counts are only
//calculated if the debug level is enabled.
func logCounts(log *zap.Logger, stage string, F *grid.FFT) {
	ce := log.Check(zap.DebugLevel, stage)
	if ce == nil {
		return
	}
	ce.Write(
		zap.Int("receptor", F.Count(recVal)),
		zap.Int("large-sphere", F.Count(larVal)),
		zap.Int("excluded", F.Count(excVal)),
		zap.Int("border", F.Count(borVal)),
		zap.Int("unallocated", F.Count(0)),
		zap.Int("cavities", F.Count(cavVal)),
	)
}

func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(grid.Error); ok {
		return grid.ErrDecorate(err, caller)
	}
	return grid.NewError(nil, err.Error(), caller)
}
