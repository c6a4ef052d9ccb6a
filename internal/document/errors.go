package document

import "errors"

var (
	// ErrCheckoutActive reports a second body checkout before the first
	// was checked back in.
	ErrCheckoutActive = errors.New("a section body is already checked out")

	// ErrNoCheckout reports a checkin for a section that is not checked
	// out.
	ErrNoCheckout = errors.New("no section body is checked out")

	// ErrNoDocuments reports a session with nothing to edit.
	ErrNoDocuments = errors.New("no documents could be opened")
)
