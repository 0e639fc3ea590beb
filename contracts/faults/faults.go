// Package faults is the error contract shared by every context.
//
// Each context declares its sentinel errors through New so that callers can
// classify any returned error by Kind without importing the context that
// produced it. Wrap attaches identifiers (election_id, voter_id, ...) while
// keeping errors.Is on the original sentinel intact.
package faults

import (
	"errors"
	"sort"
	"strings"
)

// Kind is the machine-readable error class.
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindInvalidTransition Kind = "invalid_transition"
	KindUnauthorized      Kind = "unauthorized"
	KindValidationFailed  Kind = "validation_failed"
	KindInternal          Kind = "internal"
)

// Error is a classified error with optional metadata and cause.
type Error struct {
	Kind     Kind
	Message  string
	Metadata map[string]string
	Cause    error
}

func (e *Error) Error() string {
	if len(e.Metadata) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Metadata))
	for key := range e.Metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+e.Metadata[key])
	}
	return e.Message + " (" + strings.Join(parts, ", ") + ")"
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New declares a sentinel error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap returns cause annotated with key/value metadata pairs. The kind and
// message are inherited from the closest classified error in the chain.
// A trailing key without a value is ignored.
func Wrap(cause error, keyvals ...string) error {
	if cause == nil {
		return nil
	}
	metadata := make(map[string]string, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		metadata[keyvals[i]] = keyvals[i+1]
	}
	kind := KindOf(cause)
	message := cause.Error()
	var classified *Error
	if errors.As(cause, &classified) {
		message = classified.Message
	}
	return &Error{
		Kind:     kind,
		Message:  message,
		Metadata: metadata,
		Cause:    cause,
	}
}

// KindOf classifies err. Unclassified errors are KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var classified *Error
	if errors.As(err, &classified) && classified.Kind != "" {
		return classified.Kind
	}
	return KindInternal
}

// MetadataOf merges the metadata of every classified error in the chain.
// Outer values win over inner ones.
func MetadataOf(err error) map[string]string {
	out := make(map[string]string)
	for current := err; current != nil; current = errors.Unwrap(current) {
		classified, ok := current.(*Error)
		if !ok {
			continue
		}
		for key, value := range classified.Metadata {
			if _, exists := out[key]; !exists {
				out[key] = value
			}
		}
	}
	return out
}

// Is reports whether err belongs to kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
