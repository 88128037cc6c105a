// gene-sketcher draws gene structure diagrams from GFF3 annotations
// and overlays per-gene feature tracks (e.g. miRNA insertion sites)
// loaded from a tab-separated track file. Crowded markers are spread
// over multiple lanes so that glyphs and labels stay readable.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/genesketch/genesketch/sketch"
	"github.com/genesketch/genesketch/track"
	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"v.io/x/lib/cmdline"
)

const xMargins = 10 // matches the GenomeTools default style

func newCmdTracks() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "tracks",
		Short:    "Partition a track file into display lanes",
		ArgsName: "trackfile",
		Long: `
Tracks reads a tab-separated track file (gene, marker name, position per
line), partitions each gene's markers into lanes under the minimum
distance rule and prints one "gene lane name position" line per marker
to stdout.`,
	}
	minDistance := cmd.Flags.Int("min-distance", track.DefaultOpts.MinDistance, "Spacing at or below which two markers crowd each other")
	gene := cmd.Flags.String("gene", "", "Only partition the named gene")
	warnCrowding := cmd.Flags.Bool("warn-crowding", false, "Log lane pairs that still sit within the minimum distance")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("tracks takes one trackfile argument, but got %v", argv)
		}
		gm, err := track.LoadFile(argv[0])
		if err != nil {
			return err
		}
		genes := make([]string, 0, len(gm))
		for g := range gm {
			if *gene == "" || *gene == g {
				genes = append(genes, g)
			}
		}
		if *gene != "" && len(genes) == 0 {
			return fmt.Errorf("gene %s not found in %s", *gene, argv[0])
		}
		sort.Strings(genes)
		for _, g := range genes {
			lanes, err := track.LaneSetFor(gm[g], *minDistance)
			if err != nil {
				return err
			}
			for i, lane := range lanes {
				for _, m := range lane {
					fmt.Fprintf(env.Stdout, "%s\t%d\t%s\t%d\n", g, i, m.Name, m.Pos)
				}
				if *warnCrowding {
					for _, p := range track.Crowding(lane, *minDistance) {
						log.Printf("%s lane %d: %s@%d and %s@%d are within %d", g, i, p.A.Name, p.A.Pos, p.B.Name, p.B.Pos, *minDistance)
					}
				}
			}
		}
		return nil
	})
	return cmd
}

func newCmdSketch() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "sketch",
		Short:    "Draw a gene diagram with optional feature tracks",
		ArgsName: "gff3file stylefile outfile",
		Long: `
Sketch draws the gene described by a single-gene GFF3 file to a PNG
using the GenomeTools annotation-sketch pipeline (binaries built with
the cairo tag). stylefile is a GenomeTools Lua style file. With -tracks,
the gene's markers are partitioned into lanes and rendered as an SVG
overlay next to the diagram, aligned to the same coordinate window.`,
	}
	tracksFile := cmd.Flags.String("tracks", "", "Tab-separated track file with markers to overlay")
	trackStyle := cmd.Flags.String("track-style", "", "YAML style file for the track overlay")
	minDistance := cmd.Flags.Int("min-distance", track.DefaultOpts.MinDistance, "Spacing at or below which two markers crowd each other")
	width := cmd.Flags.Uint("width", 680, "Image width in pixels")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 3 {
			return fmt.Errorf("sketch takes gff3file stylefile outfile, but got %v", argv)
		}
		gffFile, styleFile, outFile := argv[0], argv[1], argv[2]
		if _, err := sketch.Sketch(gffFile, styleFile, outFile, *width); err != nil {
			return err
		}
		log.Printf("wrote %s", outFile)
		if *tracksFile == "" {
			return nil
		}
		return renderTracks(gffFile, *tracksFile, *trackStyle, outFile+".tracks.svg", *minDistance, *width)
	})
	return cmd
}

// renderTracks partitions the markers of the gene named by the GFF3
// file and writes them as an SVG overlay aligned to the file's
// coordinate window.
func renderTracks(gffFile, tracksFile, styleFile, outFile string, minDistance int, width uint) error {
	gene, err := sketch.GeneName(gffFile)
	if err != nil {
		return err
	}
	gm, err := track.LoadFile(tracksFile)
	if err != nil {
		return err
	}
	markers, ok := gm[gene]
	if !ok {
		log.Printf("no tracks for gene %s in %s", gene, tracksFile)
		return nil
	}
	lanes, err := track.LaneSetFor(markers, minDistance)
	if err != nil {
		return err
	}
	rng, err := sketch.GFF3Range(gffFile)
	if err != nil {
		return err
	}
	style := sketch.DefaultStyle
	if styleFile != "" {
		if style, err = sketch.ReadStyleFile(styleFile); err != nil {
			return err
		}
	}
	out, err := os.Create(outFile)
	if err != nil {
		return err
	}
	g := sketch.NewSVG(out, float64(width), sketch.LanesHeight(lanes, style), xMargins)
	sketch.RenderLanes(g, lanes, style, 0, rng)
	if err := g.Close(); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s (%d lanes, %d markers)", outFile, len(lanes), lanes.MarkerCount())
	return nil
}

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(&cmdline.Command{
		Name:     "gene-sketcher",
		Short:    "Draw gene sketches and custom feature tracks",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdTracks(),
			newCmdSketch(),
		},
	})
}
