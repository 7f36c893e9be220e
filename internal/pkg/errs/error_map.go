/*
Package errs provides the portal's error type and application-level error code constants.

This file maps every code to its user-facing message and the HTTP status the portal answers with.
*/
package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
var errorMap = map[int]CustomError{
	// 1xxx: Client-side validation and request handling errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrFormParseFailed:      {Code: ErrFormParseFailed, Message: "Failed to process submitted form."},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},
	ErrRequiredFields:       {Code: ErrRequiredFields, Message: "Please fill in all required fields."},
	ErrInvalidEmail:         {Code: ErrInvalidEmail, Message: "Please enter a valid email address."},
	ErrInvalidSeats:         {Code: ErrInvalidSeats, Message: "Seat count must be a whole number of at least %d."},
	ErrInvalidDate:          {Code: ErrInvalidDate, Message: "Please enter a valid event date and time."},
	ErrInvalidEventType:     {Code: ErrInvalidEventType, Message: "Unknown event type: %s."},
	ErrNothingToUpdate:      {Code: ErrNothingToUpdate, Message: "Nothing to update."},
	ErrNoSeatsAvailable:     {Code: ErrNoSeatsAvailable, Message: "No seats available for this event."},

	// 2xxx: Requests rejected by the InnoEvent API
	ErrServerRejected:     {Code: ErrServerRejected, Message: "%s"},
	ErrUnexpectedResponse: {Code: ErrUnexpectedResponse, Message: "The event service sent an unexpected response."},

	// 3xxx: Session and authorization guards
	ErrAuthRequired:     {Code: ErrAuthRequired, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrNotOrganizer:     {Code: ErrNotOrganizer, Message: "Only the organizer can change this event.", Status: http.StatusForbidden},
	ErrNoEditInProgress: {Code: ErrNoEditInProgress, Message: "No event is being edited."},
	ErrPageUnknown:      {Code: ErrPageUnknown, Message: "Unknown page: %s."},

	// 4xxx: Transport errors
	ErrTransport: {Code: ErrTransport, Message: "Could not reach the event service. Please try again."},

	// 5xxx: Internal errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
