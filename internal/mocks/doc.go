// Package mocks provides hand-written test doubles for the interfaces that
// cross package boundaries, so handler and service tests can run without
// contacting the Gemini API.
package mocks
