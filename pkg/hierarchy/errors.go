package hierarchy

import "errors"

// Sentinel errors for hierarchy mutations.
var (
	// ErrNilNode is returned when a nil view or controller is passed.
	ErrNilNode = errors.New("hierarchy: nil node")

	// ErrCycle is returned when a mutation would make a node its own ancestor.
	ErrCycle = errors.New("hierarchy: node would become its own ancestor")

	// ErrWindowNotEmbeddable is returned when a window is added as a subview.
	ErrWindowNotEmbeddable = errors.New("hierarchy: a window cannot be a subview")

	// ErrIndexOutOfRange is returned for an insertion or selection index
	// outside the valid range.
	ErrIndexOutOfRange = errors.New("hierarchy: index out of range")

	// ErrAlreadyPresenting is returned when a controller that is already
	// presenting is asked to present another one.
	ErrAlreadyPresenting = errors.New("hierarchy: controller is already presenting")

	// ErrAlreadyPresented is returned when the controller to present is
	// already presented, or is a child of another controller.
	ErrAlreadyPresented = errors.New("hierarchy: controller is already in a hierarchy")
)
