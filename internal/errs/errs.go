// Package errs defines the error shapes returned by the API.
//
// Every failure that reaches a client is an *HTTPError serialised as
// JSON, so the storefront and the back-office can switch on a stable
// machine code and show the message or field errors as they see fit.
//
//   - 400 for payloads that fail validation, with per-field errors.
//   - 401 when no valid admin session is attached.
//   - 404 when the addressed record does not exist.
//   - 409 when a unique value (an admin username) is already taken.
//   - 500 for everything else, with the cause kept out of the body.
package errs
