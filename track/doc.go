/*Package track loads per-gene feature markers from a tab-separated
  track file and partitions each gene's markers into display lanes such
  that markers sharing a lane keep a minimum spacing.
  (Note the scan-order rule.  A marker's distance is always measured
  against the marker immediately preceding it in the position-sorted
  scan, not against the last marker kept in the same lane; Crowding
  audits a finished lane pairwise when an independent check is wanted.)
  Positions are unit agnostic; for genomic data the unit is typically
  base pairs and the historical default minimum distance is 5000.
*/
package track
