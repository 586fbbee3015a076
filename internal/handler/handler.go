// Package handler is the HTTP layer. Handlers bind and validate the
// request payload, call the service layer and write the JSON response;
// the shared pipeline lives in base.go.
package handler
