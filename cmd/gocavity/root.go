/*
 * root.go, part of gocavity.
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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	chem "github.com/rmera/gocavity"
	"github.com/rmera/gocavity/cavity"
	"github.com/rmera/gocavity/chemplot"
	"github.com/rmera/gocavity/histo"
	"github.com/rmera/gocavity/sitemap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//siteExt is the extension of the docking site files.
const siteExt = ".as"

type rootOptions struct {
	ConfigPath string
	LogLevel   string
	OutDir     string
	Write      bool
	Read       bool
	Dump       bool
	List       float64
	Descriptor bool
	Border     float64
	Plot       bool
}

//app holds what persistentPreRun sets up for the command.
type app struct {
	opts *rootOptions
	cfg  *Config
	log  *zap.Logger
	ws   string //workspace name, the base name for all output files
}

func newRootCmd() *cobra.Command {
	a := &app{opts: &rootOptions{}}
	cmd := &cobra.Command{
		Use:   "gocavity",
		Short: "Maps the cavities of a receptor and writes the docking site",
		Long: "gocavity maps the cavities of a receptor with the site mapper given in the\n" +
			"parameter file, and writes the resulting docking site, which can later be read\n" +
			"back instead of mapping again.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.persistentPreRun()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.log.Sync() //nolint:errcheck
			return a.run(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	o := a.opts
	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.ConfigPath, "config", "c", "", "receptor parameter file (YAML)")
	pf.StringVar(&o.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	f := cmd.Flags()
	f.StringVar(&o.OutDir, "outdir", ".", "directory for the output files")
	f.BoolVarP(&o.Write, "write", "W", false, "write the docking site to <workspace>"+siteExt)
	f.BoolVarP(&o.Read, "read", "R", false, "read the docking site from <workspace>"+siteExt+" instead of mapping it")
	f.BoolVarP(&o.Dump, "dump", "d", false, "dump each cavity as an InsightII grid, <workspace>_cavN.grd")
	f.Float64VarP(&o.List, "list", "l", 0, "list the receptor atoms within this distance of the cavities")
	f.BoolVarP(&o.Descriptor, "site", "s", false, "print the SITE descriptors of the docking site")
	f.Float64VarP(&o.Border, "border", "b", cavity.DefaultBorder, "border around the cavities for the distance grid")
	f.BoolVar(&o.Plot, "plot", false, "plot the cavities (and the atom distances, with -l) as PNG files")
	return cmd
}

func (a *app) persistentPreRun() error {
	if a.opts.ConfigPath == "" {
		return errors.New("no receptor parameter file given (--config)")
	}
	cfg, err := loadConfig(a.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	log, err := newLogger(a.opts.LogLevel)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	a.cfg = cfg
	a.log = log
	a.ws = workspace(a.opts.ConfigPath)
	return nil
}

func (a *app) path(suffix string) string {
	return filepath.Join(a.opts.OutDir, a.ws+suffix)
}

func (a *app) run(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	o := a.opts
	if o.Border <= 0 {
		return fmt.Errorf("border must be positive, got %g", o.Border)
	}
	rec, err := chem.ReadFile(a.cfg.Receptor)
	if err != nil {
		return fmt.Errorf("reading receptor: %w", err)
	}
	a.log.Info("receptor read", zap.String("file", a.cfg.Receptor), zap.Int("atoms", rec.Len()), zap.Int("frames", rec.NFrames()))

	var S *cavity.Site
	if o.Read {
		name := a.path(siteExt)
		if S, err = cavity.ReadSiteFile(name); err != nil {
			return fmt.Errorf("reading docking site: %w", err)
		}
		a.log.Info("docking site read", zap.String("file", name))
	} else {
		if S, err = a.mapSite(cmd, rec); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "\nDOCKING SITE\n%s", S)

	if o.Write {
		name := a.path(siteExt)
		if err := cavity.WriteSiteFile(name, S); err != nil {
			return fmt.Errorf("writing docking site: %w", err)
		}
		a.log.Info("docking site written", zap.String("file", name))
	}
	if o.Dump {
		if err := a.dump(S); err != nil {
			return err
		}
	}
	if o.List > 0 {
		if err := a.list(out, S, rec); err != nil {
			return err
		}
	}
	if o.Descriptor {
		if err := a.descriptors(out, S, rec); err != nil {
			return err
		}
	}
	if o.Plot {
		return a.plot(S)
	}
	return nil
}

//mapSite maps the cavities of each selected frame of the receptor, concurrently, and
//merges them, in frame order, into a single docking site.
func (a *app) mapSite(cmd *cobra.Command, rec *chem.Molecule) (*cavity.Site, error) {
	mcfg := a.cfg.Mapper.Config
	mcfg.Logger = a.log
	M, err := sitemap.New(a.cfg.Mapper.Kind, mcfg)
	if err != nil {
		return nil, fmt.Errorf("setting up the site mapper: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), M)
	frames := a.cfg.Frames
	if len(frames) == 0 {
		frames = make([]int, rec.NFrames())
		for i := range frames {
			frames[i] = i
		}
	}
	results := make([][]*cavity.Cavity, len(frames))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, f := range frames {
		i, f := i, f
		view, err := rec.Frame(f)
		if err != nil {
			return nil, fmt.Errorf("selecting receptor frame: %w", err)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cavs, err := M.Map(view)
			if err != nil {
				return fmt.Errorf("mapping frame %d: %w", f, err)
			}
			a.log.Info("frame mapped", zap.Int("frame", f), zap.Int("cavities", len(cavs)))
			results[i] = cavs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var all []*cavity.Cavity
	for _, r := range results {
		all = append(all, r...)
	}
	return cavity.NewSite(all, a.opts.Border), nil
}

func (a *app) dump(S *cavity.Site) error {
	for i, c := range S.Cavities() {
		name := a.path(fmt.Sprintf("_cav%d.grd", i+1))
		if err := writeTo(name, c.Grid().WriteInsight); err != nil {
			return fmt.Errorf("dumping cavity %d: %w", i+1, err)
		}
		a.log.Info("cavity grid written", zap.String("file", name))
	}
	return nil
}

func writeTo(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (a *app) list(out io.Writer, S *cavity.Site, rec chem.AtomLocator) error {
	dist := a.opts.List
	atoms, err := S.AtomList(rec, nil, 0, dist)
	if err != nil {
		return fmt.Errorf("listing atoms: %w", err)
	}
	fmt.Fprintf(out, "\n%d receptor atoms within %g A of any cavity\n", len(atoms), dist)
	fmt.Fprintln(out, "DISTANCE,ATOM")
	d := S.Distances(rec, atoms)
	for i, at := range atoms {
		fmt.Fprintf(out, "%.3f,%s\n", d[i], rec.Atom(at))
	}
	if !a.opts.Plot || len(atoms) == 0 {
		return nil
	}
	h := S.DistanceHistogram(rec, atoms, histo.UniformDividers(0, dist, 10))
	name := a.path("_distances.png")
	if err := chemplot.Histogram(h, "Atom distances to the cavities", "Distance (A)", name); err != nil {
		return fmt.Errorf("plotting distances: %w", err)
	}
	a.log.Info("distance histogram plotted", zap.String("file", name))
	return nil
}

func (a *app) descriptors(out io.Writer, S *cavity.Site, rec chem.AtomLocator) error {
	D := cavity.Descriptors(S, rec)
	fmt.Fprintln(out)
	if err := D.Write(out, a.ws); err != nil {
		return err
	}
	for _, e := range D.Exposed {
		fmt.Fprintf(out, "%s,SITE_EXPOSED_ATOM,%s,%d\n", a.ws, rec.Atom(e.Index), e.Neighbours)
	}
	return nil
}

func (a *app) plot(S *cavity.Site) error {
	cavs := S.Cavities()
	if len(cavs) == 0 {
		a.log.Warn("no cavities to plot")
		return nil
	}
	vols := a.path("_volumes.png")
	if err := chemplot.CavityVolumes(cavs, a.ws+" cavity volumes", vols); err != nil {
		return fmt.Errorf("plotting volumes: %w", err)
	}
	proj := a.path("_cavities.png")
	if err := chemplot.CavityProjection(cavs, a.ws+" cavities", proj); err != nil {
		return fmt.Errorf("plotting cavities: %w", err)
	}
	a.log.Info("cavities plotted", zap.String("volumes", vols), zap.String("projection", proj))
	return nil
}
