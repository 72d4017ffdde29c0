package resource

import "image"

// RetrieveErrorKind enumerates why an ImageProvider failed to produce
// an image for a resource.
type RetrieveErrorKind int

const (
	// NotFound means the provider has no record of the resource at all.
	NotFound RetrieveErrorKind = iota
	// Other covers decode failures, IO errors, or anything else.
	Other
)

// RetrieveError is returned by ImageProvider when a resource cannot be
// loaded.
type RetrieveError struct {
	Kind RetrieveErrorKind
	Err  error
}

func (e *RetrieveError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind == NotFound {
		return "resource: not found"
	}
	return "resource: failed to load"
}

func (e *RetrieveError) Unwrap() error { return e.Err }

// Status is the outcome of asking an ImageProvider for an image: it
// may still be loading, may have failed, or may be ready.
type Status struct {
	Pending bool
	Err     *RetrieveError
	Image   image.Image
}

// ImageProvider is the collaborator interface the core depends on to
// turn a ResourceId into pixel data. Implementations may be
// asynchronous (returning Pending while a fetch is in flight); the
// core never blocks waiting on one.
type ImageProvider interface {
	LoadImage(id ID) Status
}
