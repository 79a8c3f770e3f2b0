package nav

import "errors"

var (
	// ErrNilPage is returned by [Container.AddPage] when the page is nil.
	// Nil entries in bulk operations are skipped instead.
	ErrNilPage = errors.New("page must not be nil")

	// ErrSelfInsertion is returned by [Container.AddPage] when a page is
	// added to its own child container. A page cannot become its own parent.
	ErrSelfInsertion = errors.New("page cannot be added to its own container")

	// ErrInvalidSpec is returned by [NewPageFromMap] when a well-known key
	// carries a value of the wrong type, or when the input is missing a label.
	ErrInvalidSpec = errors.New("invalid page specification")

	// ErrBadMethodCall is returned by [Container.CallFinder] when the method
	// name does not match any of the find-by-name patterns. The error message
	// names the method that was attempted.
	ErrBadMethodCall = errors.New("bad method call")

	// ErrCorruptIndex is returned by [Container.Current] when the traversal
	// index references an identity token with no corresponding page. This
	// indicates internal desync between storage and index and is a
	// programming error, not a recoverable condition.
	ErrCorruptIndex = errors.New("corrupt container index")
)
