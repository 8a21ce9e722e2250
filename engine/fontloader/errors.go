package fontloader

import (
	"fmt"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/font/convert"
	"github.com/npillmayer/fontpack/core/font/format"
)

// MissingSourceError is returned if a target has no source font with the
// target's weight and style.
type MissingSourceError struct {
	Weight int
	Style  string
	Format format.ID
}

func (e MissingSourceError) Error() string {
	return fmt.Sprintf("[%d] %s", core.EMISSING, e.UserMessage())
}

// ErrorCode is part of interface core.AppError.
func (e MissingSourceError) ErrorCode() int {
	return core.EMISSING
}

// UserMessage is part of interface core.AppError.
func (e MissingSourceError) UserMessage() string {
	return fmt.Sprintf("no matching source for weight %d, style %q (format %s)",
		e.Weight, e.Style, e.Format)
}

// UnsupportedConversionError is returned if a target requires a conversion
// which is not supported.
type UnsupportedConversionError = convert.UnsupportedConversionError

// DataAcquisitionError is returned if the binary data of a source font
// could not be read.
type DataAcquisitionError struct {
	File string
	Err  error
}

func (e DataAcquisitionError) Error() string {
	return fmt.Sprintf("[%d] %s: %v", core.EREAD, e.UserMessage(), e.Err)
}

func (e DataAcquisitionError) Unwrap() error {
	return e.Err
}

// ErrorCode is part of interface core.AppError.
func (e DataAcquisitionError) ErrorCode() int {
	return core.EREAD
}

// UserMessage is part of interface core.AppError.
func (e DataAcquisitionError) UserMessage() string {
	return fmt.Sprintf("cannot load font data of %s", e.File)
}

// MalformedMetadataError is returned if the metadata document cannot be
// parsed or is inconsistent.
type MalformedMetadataError struct {
	Msg string
	Err error
}

func (e MalformedMetadataError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("[%d] %s", core.EINVALID, e.UserMessage())
	}
	return fmt.Sprintf("[%d] %s: %v", core.EINVALID, e.UserMessage(), e.Err)
}

func (e MalformedMetadataError) Unwrap() error {
	return e.Err
}

// ErrorCode is part of interface core.AppError.
func (e MalformedMetadataError) ErrorCode() int {
	return core.EINVALID
}

// UserMessage is part of interface core.AppError.
func (e MalformedMetadataError) UserMessage() string {
	return "malformed font metadata: " + e.Msg
}

var _ core.AppError = MissingSourceError{}
var _ core.AppError = DataAcquisitionError{}
var _ core.AppError = MalformedMetadataError{}
