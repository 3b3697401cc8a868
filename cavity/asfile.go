/*
 * asfile.go, part of gocavity.
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

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gocavity/grid"
)

//zstdMagic are the first bytes of a zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

//zstd.Decoder doesn't implement io.ReadCloser, as its Close method
//returns nothing.
type zstdReadCloser struct {
	closefn func()
	*zstd.Decoder
}

//Close releases the decoder. It can not be used after this call.
func (s zstdReadCloser) Close() error {
	s.closefn()
	return nil
}

//WriteSite writes the site S to w, including its distance grid, which is built if needed.
//If compress is true, the output is compressed with zstd.
func WriteSite(w io.Writer, S *Site, compress bool) error {
	S.Grid()
	var out io.Writer = w
	var zw *zstd.Encoder
	if compress {
		var err error
		zw, err = zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return errDecorate(err, "WriteSite")
		}
		out = zw
	}
	if err := json.NewEncoder(out).Encode(S); err != nil {
		if zw != nil {
			zw.Close()
		}
		return errDecorate(err, "WriteSite")
	}
	if zw != nil {
		return errDecorate(zw.Close(), "WriteSite")
	}
	return nil
}

//ReadSite reads a site written by WriteSite from r. Compressed and plain
//input are both accepted.
func ReadSite(r io.Reader) (*Site, error) {
	br := bufio.NewReader(r)
	var in io.Reader = br
	magic, _ := br.Peek(len(zstdMagic))
	if bytes.Equal(magic, zstdMagic) {
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, grid.NewError(grid.ErrFileParse, err.Error(), "ReadSite")
		}
		rc := zstdReadCloser{zr.Close, zr}
		defer rc.Close()
		in = rc
	}
	S := new(Site)
	if err := json.NewDecoder(in).Decode(S); err != nil {
		if _, ok := err.(grid.Error); ok {
			return nil, errDecorate(err, "ReadSite")
		}
		return nil, grid.NewError(grid.ErrFileParse, err.Error(), "ReadSite")
	}
	return S, nil
}

//WriteSiteFile writes S to the file name. Files with the .json extension
//are written uncompressed.
func WriteSiteFile(name string, S *Site) error {
	f, err := os.Create(name)
	if err != nil {
		return errDecorate(err, "WriteSiteFile")
	}
	err = WriteSite(f, S, !strings.HasSuffix(strings.ToLower(name), ".json"))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errDecorate(err, "WriteSiteFile")
}

//ReadSiteFile reads a site from the file name.
func ReadSiteFile(name string) (*Site, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errDecorate(err, "ReadSiteFile")
	}
	defer f.Close()
	S, err := ReadSite(f)
	return S, errDecorate(err, "ReadSiteFile")
}
