/*
Package errs provides the portal's error type and application-level error code constants.

Codes are grouped by where a failure originates: input rejected before any network call,
requests the InnoEvent API refused, session and authorization guards, and transport failures.
*/
package errs

// 1xxx: Client-side validation and request handling errors. No upstream call is made.
const (
	// ErrInvalidParams indicates that a portal request carried malformed parameters.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON is malformed.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates trailing data after a valid JSON document.
	ErrExtraContentInBody = 1004

	// ErrFormParseFailed indicates failure to parse URL-encoded form data.
	ErrFormParseFailed = 1005

	// ErrRateLimitExceeded indicates that the client exceeded the request rate.
	ErrRateLimitExceeded = 1007

	// ErrRequiredFields indicates that at least one required form field is empty.
	ErrRequiredFields = 1101

	// ErrInvalidEmail indicates that an email address does not match local@domain.tld.
	ErrInvalidEmail = 1102

	// ErrInvalidSeats indicates that the seat count is not an integer or is below the minimum.
	ErrInvalidSeats = 1103

	// ErrInvalidDate indicates that the event date could not be parsed.
	ErrInvalidDate = 1104

	// ErrInvalidEventType indicates an event category outside the fixed set.
	ErrInvalidEventType = 1105

	// ErrNothingToUpdate indicates a profile update with every field left blank.
	ErrNothingToUpdate = 1106

	// ErrNoSeatsAvailable indicates a registration attempt for a sold-out event.
	ErrNoSeatsAvailable = 1107
)

// 2xxx: Requests rejected by the InnoEvent API.
const (
	// ErrServerRejected carries the API's "detail" message for a non-success status.
	ErrServerRejected = 2001

	// ErrUnexpectedResponse indicates a success status whose body could not be decoded.
	ErrUnexpectedResponse = 2002
)

// 3xxx: Session and authorization guards.
const (
	// ErrAuthRequired indicates an action that needs a signed-in session.
	ErrAuthRequired = 3001

	// ErrNotOrganizer indicates an edit or delete attempt on an event owned by someone else.
	ErrNotOrganizer = 3002

	// ErrNoEditInProgress indicates a save or edit-page request without an editing context.
	ErrNoEditInProgress = 3003

	// ErrPageUnknown indicates navigation to a page or tab that does not exist.
	ErrPageUnknown = 3004
)

// 4xxx: Transport errors.
const (
	// ErrTransport indicates the InnoEvent API could not be reached.
	ErrTransport = 4001
)

// 5xxx: Internal errors.
const (
	// ErrUnknown represents an unclassified internal error.
	ErrUnknown = 5000
)
