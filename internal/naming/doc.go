// Package naming owns the composite output filename: building the dated
// name for a new composite and recognizing any composite a previous run
// left behind.
//
// Both the scanner (to keep old composites out of the candidate list) and
// the merge engine (to delete them before writing a new one) call
// [IsCompositeOutput], so the two can never disagree on what counts as an
// output file.
//
// Recognized forms:
//
//	merged.png             legacy undated output
//	merged-YY-MM-DD.png    dated output (two digits per segment)
package naming
