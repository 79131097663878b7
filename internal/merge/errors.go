package merge

import "errors"

// Kind classifies why a directory merge did not produce a composite.
type Kind int

const (
	KindEmptyInput           Kind = iota + 1 // No files given.
	KindSingleImage                          // Exactly one file given.
	KindNoValidImages                        // Every file failed to decode.
	KindTimestampUnavailable                 // No file yielded a timestamp.
	KindPersistFailed                        // Encoding or writing the composite failed.
	KindFilesystem                           // Listing or deleting in the directory failed.
)

// Sentinel errors, one per Kind. A *Error matches its Kind's sentinel with
// errors.Is.
var (
	ErrEmptyInput           = errors.New("no image files to merge")
	ErrSingleImage          = errors.New("only one image file found, skipping merge")
	ErrNoValidImages        = errors.New("no valid images could be loaded")
	ErrTimestampUnavailable = errors.New("no valid timestamps found")
	ErrPersistFailed        = errors.New("write composite")
	ErrFilesystem           = errors.New("filesystem error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindEmptyInput:
		return ErrEmptyInput
	case KindSingleImage:
		return ErrSingleImage
	case KindNoValidImages:
		return ErrNoValidImages
	case KindTimestampUnavailable:
		return ErrTimestampUnavailable
	case KindPersistFailed:
		return ErrPersistFailed
	default:
		return ErrFilesystem
	}
}

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty input"
	case KindSingleImage:
		return "single image"
	case KindNoValidImages:
		return "no valid images"
	case KindTimestampUnavailable:
		return "timestamp unavailable"
	case KindPersistFailed:
		return "persist failed"
	case KindFilesystem:
		return "filesystem"
	default:
		return "unknown"
	}
}

// Skip reports whether the kind means "nothing to merge here" rather than a
// failure.
func (k Kind) Skip() bool {
	return k == KindEmptyInput || k == KindSingleImage
}

// Error is returned by [Engine.Merge] and [Engine.Plan] for every
// non-success outcome.
type Error struct {
	Kind Kind
	Dir  string
	Err  error // Underlying cause; nil for the count checks.
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.sentinel().Error()
	}
	if e.Kind == KindFilesystem {
		return e.Err.Error()
	}
	return e.Kind.sentinel().Error() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf returns the Kind carried by err, or 0 when err is nil or not a
// merge error.
func KindOf(err error) Kind {
	var me *Error
	if errors.As(err, &me) {
		return me.Kind
	}
	return 0
}

// IsSkip reports whether err means the directory should be skipped.
func IsSkip(err error) bool {
	return KindOf(err).Skip()
}

func newError(kind Kind, dir string, err error) *Error {
	return &Error{Kind: kind, Dir: dir, Err: err}
}
