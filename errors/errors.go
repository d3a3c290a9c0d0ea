package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Op indicates which operation detected the error
type Op string

const (
	OpIntern   Op = "intern"   // value interning
	OpLookup   Op = "lookup"   // index to value resolution
	OpTrim     Op = "trim"     // vocabulary trim and remap
	OpMutate   Op = "mutate"   // handle mutation
	OpSnapshot Op = "snapshot" // vocabulary persistence
	OpRestore  Op = "restore"  // vocabulary restoration
)

// Kind categorizes the error
type Kind string

const (
	KindIndexOutOfRange Kind = "index_out_of_range"
	KindUnsetValue      Kind = "unset_value"
	KindEmptyDomain     Kind = "empty_domain"
	KindStaleHandle     Kind = "stale_handle"
	KindCorruptSnapshot Kind = "corrupt_snapshot"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Op     Op
	Kind   Kind
	Index  int32
	Size   int32
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Kind == KindIndexOutOfRange {
		fmt.Fprintf(&b, ": index %d outside [0, %d)", e.Index, e.Size)
	}

	if e.Detail != "" {
		if e.Kind == KindIndexOutOfRange {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Index sets the offending index
func (b *Builder) Index(i int32) *Builder {
	b.err.Index = i
	return b
}

// Size sets the registry size at the time of failure
func (b *Builder) Size(n int32) *Builder {
	b.err.Size = n
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfRange creates an index-out-of-range error
func OutOfRange(op Op, index, size int32) *Error {
	return &Error{
		Op:    op,
		Kind:  KindIndexOutOfRange,
		Index: index,
		Size:  size,
	}
}

// Unset creates an unset-value error
func Unset(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindUnsetValue,
		Detail: "variable read before first set",
	}
}

// EmptyDomain creates an empty-domain error
func EmptyDomain(op Op, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindEmptyDomain,
		Detail: detail,
	}
}

// Stale creates a stale-handle error
func Stale(op Op, handleGen, registryGen uint64) *Error {
	return &Error{
		Op:     op,
		Kind:   KindStaleHandle,
		Detail: fmt.Sprintf("handle generation %d, registry generation %d", handleGen, registryGen),
	}
}
