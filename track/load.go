package track

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Load reads tab-separated track records from r and groups them by
// gene. Each record has exactly three fields: gene name, marker name
// and a non-negative integer position. Blank lines are ignored; any
// other malformed record fails the whole load with an error wrapping
// ErrParse.
//
// Within each gene the markers are sorted in ascending position order,
// with equal positions keeping their input order. Gene iteration order
// is unspecified.
func Load(r io.Reader) (GeneMarkers, error) {
	gm := GeneMarkers{}
	scanner := bufio.NewScanner(r)
	nLine := 0
	for scanner.Scan() {
		nLine++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, errors.Wrapf(ErrParse, "line %d: expected 3 tab-separated fields, found %d", nLine, len(fields))
		}
		pos, err := strconv.Atoi(fields[2])
		if err != nil || pos < 0 {
			return nil, errors.Wrapf(ErrParse, "line %d: bad position %q", nLine, fields[2])
		}
		gene := fields[0]
		gm[gene] = append(gm[gene], Marker{Name: fields[1], Pos: pos})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read track data")
	}
	for _, markers := range gm {
		sort.SliceStable(markers, func(i, j int) bool { return markers[i].Pos < markers[j].Pos })
	}
	return gm, nil
}

// LoadFile is a wrapper for Load that takes a path instead of an
// io.Reader. Gzip-compressed track files are decompressed
// transparently.
func LoadFile(path string) (gm GeneMarkers, err error) {
	ctx := vcontext.Background()
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return
		}
	}
	return Load(reader)
}
