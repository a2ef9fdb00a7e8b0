// Package service implements the application use cases on top of the domain
// model and the generation boundary. Service methods return sentinel errors
// from the generation and domain packages; the API layer maps them to HTTP
// status codes.
package service
