package gerror

import (
	"errors"
	"fmt"
)

const (
	ErrCodeNotFound          Code = "NotFound"
	ErrCodeAlreadyExists     Code = "AlreadyExists"
	ErrCodeMissingField      Code = "MissingField"
	ErrCodeInvalidField      Code = "InvalidField"
	ErrCodeMissingRecord     Code = "MissingRecord"
	ErrCodeUnsupportedFormat Code = "UnsupportedFormat"
)

const (
	DetailField  DetailKey = "field"
	DetailRecord DetailKey = "record"
	DetailFile   DetailKey = "file"
)

// ToError locates an Error in the provided error chain and returns it if it
// matches the provided code. Otherwise, returns nil.
func ToError(err error, code Code) *Error {
	if err == nil {
		return nil
	}
	var gErr Error
	if errors.As(err, &gErr) && gErr.Code() == code {
		return &gErr
	}
	return nil
}

func NewErrNotFound(message string) Error {
	return NewError(message, AudienceExternal, ErrCodeNotFound, nil)
}

func ToNotFound(err error) *Error {
	return ToError(err, ErrCodeNotFound)
}

func IsNotFound(err error) bool {
	return ToNotFound(err) != nil
}

func NewErrAlreadyExists(message string) Error {
	return NewError(message, AudienceExternal, ErrCodeAlreadyExists, nil)
}

func ToAlreadyExists(err error) *Error {
	return ToError(err, ErrCodeAlreadyExists)
}

func IsAlreadyExists(err error) bool {
	return ToAlreadyExists(err) != nil
}

// NewErrMissingField reports a required field that is absent from a record.
func NewErrMissingField(record string, field string) Error {
	return NewError(fmt.Sprintf("Missing required field %q", field), AudienceExternal, ErrCodeMissingField, nil).
		EDetail(DetailRecord, record).
		EDetail(DetailField, field)
}

func ToMissingField(err error) *Error {
	return ToError(err, ErrCodeMissingField)
}

func IsMissingField(err error) bool {
	return ToMissingField(err) != nil
}

// NewErrInvalidField reports a field that is present but has the wrong shape.
func NewErrInvalidField(record string, field string, expected string, found interface{}) Error {
	message := fmt.Sprintf("Expected field %q to be %s but found: %T", field, expected, found)
	return NewError(message, AudienceExternal, ErrCodeInvalidField, nil).
		EDetail(DetailRecord, record).
		EDetail(DetailField, field)
}

func ToInvalidField(err error) *Error {
	return ToError(err, ErrCodeInvalidField)
}

func IsInvalidField(err error) bool {
	return ToInvalidField(err) != nil
}

func NewErrMissingRecord(record string) Error {
	return NewError(fmt.Sprintf("Missing %s record", record), AudienceExternal, ErrCodeMissingRecord, nil).
		EDetail(DetailRecord, record)
}

func ToMissingRecord(err error) *Error {
	return ToError(err, ErrCodeMissingRecord)
}

func IsMissingRecord(err error) bool {
	return ToMissingRecord(err) != nil
}

func NewErrUnsupportedFormat(file string) Error {
	return NewError("Unsupported metafile format", AudienceExternal, ErrCodeUnsupportedFormat, nil).
		EDetail(DetailFile, file)
}

func ToUnsupportedFormat(err error) *Error {
	return ToError(err, ErrCodeUnsupportedFormat)
}

func IsUnsupportedFormat(err error) bool {
	return ToUnsupportedFormat(err) != nil
}
