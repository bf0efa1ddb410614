package inkml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrParse is flagged if the text of a channel value is malformed.
var ErrParse = errors.New("malformed channel value")

// ErrCompliance is flagged if markup violates constraints of the InkML format,
// e.g. a missing trace reference or a violated channel bound.
var ErrCompliance = errors.New("markup is not InkML compliant")

// ErrUnsupportedReference is flagged if a trace view references another trace view.
var ErrUnsupportedReference = errors.New("trace views referencing trace views are not supported")

// ErrTreeManipulation is flagged for illegal structural operations on a view tree.
var ErrTreeManipulation = errors.New("illegal view tree manipulation")

// ErrNotFound is flagged if a reference cannot be resolved.
var ErrNotFound = errors.New("reference not found")

// ParseError reports a channel value which could not be parsed.
type ParseError struct {
	Channel string // name of the channel, may be empty
	Text    string // offending text
	Cause   error  // underlying conversion error, if any
}

func (e *ParseError) Error() string {
	if e.Channel == "" {
		return fmt.Sprintf("cannot parse %q: %v", e.Text, e.Cause)
	}
	return fmt.Sprintf("channel %s: cannot parse %q: %v", e.Channel, e.Text, e.Cause)
}

// Is makes ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Cause }

// ComplianceError reports markup which violates the InkML format.
type ComplianceError struct {
	Element string // tag of the element in question
	Msg     string
}

// Compliance creates a ComplianceError for an element.
func Compliance(element string, format string, args ...interface{}) *ComplianceError {
	err := &ComplianceError{Element: element, Msg: fmt.Sprintf(format, args...)}
	tracer().Errorf(err.Error())
	return err
}

func (e *ComplianceError) Error() string {
	if e.Element == "" {
		return "InkML compliance: " + e.Msg
	}
	return fmt.Sprintf("InkML compliance <%s>: %s", e.Element, e.Msg)
}

// Is makes ComplianceError match ErrCompliance.
func (e *ComplianceError) Is(target error) bool { return target == ErrCompliance }

// UnsupportedReferenceError reports a trace view referencing another view.
type UnsupportedReferenceError struct {
	Ref string
}

func (e *UnsupportedReferenceError) Error() string {
	return fmt.Sprintf("traceDataRef %q refers to a trace view; views of views are not supported", e.Ref)
}

// Is makes UnsupportedReferenceError match ErrUnsupportedReference.
func (e *UnsupportedReferenceError) Is(target error) bool { return target == ErrUnsupportedReference }

// TreeManipulationError reports an illegal structural operation on a view tree.
type TreeManipulationError struct {
	Op  string
	Msg string
}

func (e *TreeManipulationError) Error() string {
	return fmt.Sprintf("view tree %s: %s", e.Op, e.Msg)
}

// Is makes TreeManipulationError match ErrTreeManipulation.
func (e *TreeManipulationError) Is(target error) bool { return target == ErrTreeManipulation }
