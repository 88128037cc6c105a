package sketch

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/vcontext"
	"github.com/pkg/errors"
)

// GeneName returns the name of the gene described by a single-gene
// GFF3 file: the Name attribute of the first feature of type "gene",
// falling back to its ID attribute.
func GeneName(path string) (string, error) {
	var name string
	err := scanGFF3(path, func(fields []string) bool {
		if fields[2] != "gene" {
			return true
		}
		attrs := fields[8]
		if v, ok := gff3Attribute(attrs, "Name"); ok {
			name = v
			return false
		}
		if v, ok := gff3Attribute(attrs, "ID"); ok {
			name = v
			return false
		}
		return true
	})
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", errors.Errorf("%s: no named gene feature", path)
	}
	return name, nil
}

// GFF3Range returns the coordinate window covered by a GFF3 file: the
// ##sequence-region pragma when present, otherwise the hull of all
// feature coordinates. The window is inclusive on both ends.
func GFF3Range(path string) (Range, error) {
	var (
		rng   Range
		found bool
	)
	ctx := vcontext.Background()
	in, err := file.Open(ctx, path)
	if err != nil {
		return Range{}, err
	}
	defer in.Close(ctx) // nolint: errcheck
	scanner := bufio.NewScanner(in.Reader(ctx))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "##sequence-region") {
			f := strings.Fields(line)
			if len(f) != 4 {
				return Range{}, errors.Errorf("%s: malformed sequence-region pragma %q", path, line)
			}
			start, err0 := strconv.ParseUint(f[2], 10, 64)
			end, err1 := strconv.ParseUint(f[3], 10, 64)
			if err0 != nil || err1 != nil || end < start {
				return Range{}, errors.Errorf("%s: malformed sequence-region pragma %q", path, line)
			}
			return Range{Start: uint(start), End: uint(end)}, nil
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 9 {
			return Range{}, errors.Errorf("%s: malformed GFF3 record %q", path, line)
		}
		start, err0 := strconv.ParseUint(fields[3], 10, 64)
		end, err1 := strconv.ParseUint(fields[4], 10, 64)
		if err0 != nil || err1 != nil {
			return Range{}, errors.Errorf("%s: malformed GFF3 coordinates %q", path, line)
		}
		if !found || uint(start) < rng.Start {
			rng.Start = uint(start)
		}
		if !found || uint(end) > rng.End {
			rng.End = uint(end)
		}
		found = true
	}
	if err := scanner.Err(); err != nil {
		return Range{}, errors.Wrapf(err, "read %s", path)
	}
	if !found {
		return Range{}, errors.Errorf("%s: no features", path)
	}
	return rng, nil
}

// scanGFF3 calls visit with the nine tab-separated columns of each
// feature record in the file until visit returns false. Pragma and
// comment lines are skipped.
func scanGFF3(path string, visit func(fields []string) bool) error {
	ctx := vcontext.Background()
	in, err := file.Open(ctx, path)
	if err != nil {
		return err
	}
	defer in.Close(ctx) // nolint: errcheck
	scanner := bufio.NewScanner(in.Reader(ctx))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 9 {
			return errors.Errorf("%s: malformed GFF3 record %q", path, line)
		}
		if !visit(fields) {
			break
		}
	}
	return errors.Wrapf(scanner.Err(), "read %s", path)
}

// gff3Attribute extracts one tag's value from a GFF3 attributes
// column ("tag=value;tag=value").
func gff3Attribute(attrs, tag string) (string, bool) {
	for _, kv := range strings.Split(attrs, ";") {
		kv = strings.TrimSpace(kv)
		if strings.HasPrefix(kv, tag+"=") {
			return kv[len(tag)+1:], true
		}
	}
	return "", false
}
