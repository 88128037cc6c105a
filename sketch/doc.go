/*Package sketch renders per-gene marker lanes produced by the track
  package as annotation tracks: one row per lane, a triangle glyph and
  a centered label per marker.  Drawing goes through the small Graphics
  interface; the package ships an SVG backend, and builds tagged
  "cairo" additionally drive the GenomeTools annotation-sketch pipeline
  to draw the gene structure itself from a GFF3 file.
*/
package sketch
