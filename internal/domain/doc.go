// Package domain contains the email-writing request and response types and
// the validation error shared by the API and service layers. It has no
// dependencies on transport or provider code.
package domain
