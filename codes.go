package e57

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure condition detected inside the library.
// The numeric values are stable across library versions and are part of
// the API contract; new codes are only ever appended.
type ErrorCode int

const (
	// Success is the zero value and is never packaged into an Exception.
	Success ErrorCode = iota

	// Binary section errors
	ErrBadCVHeader
	ErrBadCVPacket

	// Tree manipulation errors
	ErrChildIndexOutOfBounds
	ErrSetTwice
	ErrHomogeneousViolation

	// Value conversion errors
	ErrValueNotRepresentable
	ErrScaledValueNotRepresentable
	ErrReal64TooLarge
	ErrExpectingNumeric
	ErrExpectingUString

	// ErrInternal may be returned by any operation in the library; an
	// unrecoverable inconsistency was detected and the state of all
	// objects is suspect.
	ErrInternal

	// XML section errors
	ErrBadXMLFormat
	ErrXMLParser

	// API misuse and file I/O errors
	ErrBadAPIArgument
	ErrFileReadOnly
	ErrBadChecksum
	ErrOpenFailed
	ErrCloseFailed
	ErrReadFailed
	ErrWriteFailed
	ErrSeekFailed

	// Element path errors
	ErrPathUndefined

	// SourceDestBuffer errors
	ErrBadBuffer
	ErrNoBufferForElement
	ErrBufferSizeMismatch
	ErrBufferDuplicatePathName

	// File header errors
	ErrBadFileSignature
	ErrUnknownFileVersion
	ErrBadFileLength
	ErrXMLParserInit

	// Namespace errors
	ErrDuplicateNamespacePrefix
	ErrDuplicateNamespaceURI

	// CompressedVector structure errors
	ErrBadPrototype
	ErrBadCodecs
	ErrValueOutOfBounds
	ErrConversionRequired
	ErrBadPathName
	ErrNotImplemented
	ErrBadNodeDowncast

	// Session and lifecycle errors
	ErrWriterNotOpen
	ErrReaderNotOpen
	ErrNodeUnattached
	ErrAlreadyHasParent
	ErrDifferentDestImageFile

	// ErrImageFileNotOpen may be returned by any operation in the
	// library: once the owning ImageFile is closed, even the most basic
	// information about its nodes may be unavailable.
	ErrImageFileNotOpen

	ErrBuffersNotCompatible
	ErrTooManyWriters
	ErrTooManyReaders
	ErrBadConfiguration
	ErrInvarianceViolation
)

// Describe translates an ErrorCode into a one-line English description.
// The numeric code is appended parenthetically so rendered text stays
// greppable even if the wording changes. Values outside the defined set
// yield a generic "unknown error" description embedding the raw value.
func Describe(code ErrorCode) string {
	return fmt.Sprintf("%s (code %d)", code.message(), int(code))
}

// String implements fmt.Stringer.
func (c ErrorCode) String() string {
	return Describe(c)
}

func (c ErrorCode) message() string {
	switch c {
	case Success:
		return "operation was successful"
	case ErrBadCVHeader:
		return "a CompressedVector binary header was bad"
	case ErrBadCVPacket:
		return "a CompressedVector binary packet was bad"
	case ErrChildIndexOutOfBounds:
		return "a numerical index identifying a child was out of bounds"
	case ErrSetTwice:
		return "attempted to set an existing child element to a new value"
	case ErrHomogeneousViolation:
		return "attempted to add an element that would have made the children of a homogeneous Vector have different types"
	case ErrValueNotRepresentable:
		return "a value could not be represented in the requested type"
	case ErrScaledValueNotRepresentable:
		return "after scaling the result could not be represented in the requested type"
	case ErrReal64TooLarge:
		return "a 64 bit IEEE float was too large to store in a 32 bit IEEE float"
	case ErrExpectingNumeric:
		return "expecting numeric representation in user's buffer, found ustring"
	case ErrExpectingUString:
		return "expecting string representation in user's buffer, found numeric"
	case ErrInternal:
		return "an unrecoverable inconsistent internal state was detected"
	case ErrBadXMLFormat:
		return "E57 primitive not encoded in XML correctly"
	case ErrXMLParser:
		return "XML not well formed"
	case ErrBadAPIArgument:
		return "bad API function argument provided by user"
	case ErrFileReadOnly:
		return "can't modify read only file"
	case ErrBadChecksum:
		return "checksum mismatch, file is corrupted"
	case ErrOpenFailed:
		return "open failed"
	case ErrCloseFailed:
		return "close failed"
	case ErrReadFailed:
		return "read failed"
	case ErrWriteFailed:
		return "write failed"
	case ErrSeekFailed:
		return "seek failed"
	case ErrPathUndefined:
		return "E57 element path well formed but not defined"
	case ErrBadBuffer:
		return "bad SourceDestBuffer"
	case ErrNoBufferForElement:
		return "no buffer specified for an element in CompressedVectorNode during write"
	case ErrBufferSizeMismatch:
		return "SourceDestBuffers not all same size"
	case ErrBufferDuplicatePathName:
		return "duplicate pathname in CompressedVectorNode read/write"
	case ErrBadFileSignature:
		return "file signature not ASTM-E57"
	case ErrUnknownFileVersion:
		return "incompatible file version"
	case ErrBadFileLength:
		return "size in file header not same as actual"
	case ErrXMLParserInit:
		return "XML parser failed to initialize"
	case ErrDuplicateNamespacePrefix:
		return "namespace prefix already defined"
	case ErrDuplicateNamespaceURI:
		return "namespace URI already defined"
	case ErrBadPrototype:
		return "bad prototype in CompressedVectorNode"
	case ErrBadCodecs:
		return "bad codecs in CompressedVectorNode"
	case ErrValueOutOfBounds:
		return "element value out of min/max bounds"
	case ErrConversionRequired:
		return "conversion required to assign element value, but not requested"
	case ErrBadPathName:
		return "E57 path name is not well formed"
	case ErrNotImplemented:
		return "functionality not implemented"
	case ErrBadNodeDowncast:
		return "bad downcast from Node to specific node type"
	case ErrWriterNotOpen:
		return "CompressedVectorWriter is no longer open"
	case ErrReaderNotOpen:
		return "CompressedVectorReader is no longer open"
	case ErrNodeUnattached:
		return "node is not yet attached to tree of ImageFile"
	case ErrAlreadyHasParent:
		return "node already has a parent"
	case ErrDifferentDestImageFile:
		return "nodes were constructed with different destImageFiles"
	case ErrImageFileNotOpen:
		return "destImageFile is no longer open"
	case ErrBuffersNotCompatible:
		return "SourceDestBuffers not compatible with previously given ones"
	case ErrTooManyWriters:
		return "too many open CompressedVectorWriters of an ImageFile"
	case ErrTooManyReaders:
		return "too many open CompressedVectorReaders of an ImageFile"
	case ErrBadConfiguration:
		return "bad configuration string"
	case ErrInvarianceViolation:
		return "class invariance constraint violation in debug mode"
	default:
		return "unknown error"
	}
}

// CodeOf returns the ErrorCode carried by err, unwrapping as needed.
// It returns Success when err is nil or does not carry an Exception.
func CodeOf(err error) ErrorCode {
	var ex *Exception
	if errors.As(err, &ex) {
		return ex.Code()
	}

	return Success
}
