// Package pipeline drives a run over a root directory: scan the immediate
// subdirectories, merge each one in sorted name order, classify the outcome
// and print a summary.
//
// Directories are processed strictly one after another. A failure in one
// directory is reported and never stops the others; only a failed scan of
// the root is fatal. Cancelling the context stops the run between
// directories, never in the middle of one.
package pipeline
