// Package api handles incoming HTTP requests, request validation, and response
// formatting. It acts as an adapter between external clients and the email
// service, translating HTTP concerns to business operations and mapping
// failure kinds back to status codes in one place.
package api
