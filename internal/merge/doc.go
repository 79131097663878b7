// Package merge is the composite engine. Given one directory and its sorted
// image list it converges that directory to exactly one up-to-date
// composite:
//
//	validate count → derive output name → remove stale outputs →
//	load images → select layout → composite → persist
//
// Layout follows the majority orientation of the sources: mostly tall
// images are placed side by side at a shared height, otherwise images are
// stacked at a shared width. Sources are resized with a Lanczos filter,
// keeping their aspect ratio, and copied onto an NRGBA canvas in input
// order.
//
// The output name carries the date of the newest source (creation time,
// falling back to modification time), so re-running on unchanged input
// yields the same file name. The engine keeps no state between calls; the
// directory itself is the only persistent substrate.
package merge
