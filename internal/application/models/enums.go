package models

import dErrors "caseflow/pkg/domain-errors"

// ApplicationType distinguishes a fresh placement from a guarantor change of
// a worker already in the country.
type ApplicationType string

const (
	TypeNewCandidate    ApplicationType = "NEW_CANDIDATE"
	TypeGuarantorChange ApplicationType = "GUARANTOR_CHANGE"
)

// ParseApplicationType constructs an ApplicationType from external input.
func ParseApplicationType(s string) (ApplicationType, error) {
	t := ApplicationType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid application type")
	}
	return t, nil
}

// IsValid checks if the type is one of the supported enum values.
func (t ApplicationType) IsValid() bool {
	return t == TypeNewCandidate || t == TypeGuarantorChange
}

// RequiredFrom identifies who must produce a document: the agency office or
// the client employer.
type RequiredFrom string

const (
	RequiredFromOffice RequiredFrom = "office"
	RequiredFromClient RequiredFrom = "client"
)

// ParseRequiredFrom constructs a RequiredFrom from external input.
func ParseRequiredFrom(s string) (RequiredFrom, error) {
	r := RequiredFrom(s)
	if !r.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "required_from must be 'office' or 'client'")
	}
	return r, nil
}

// IsValid checks if the value is one of the supported enum values.
func (r RequiredFrom) IsValid() bool {
	return r == RequiredFromOffice || r == RequiredFromClient
}

// DocumentStatus tracks a checklist item through the upload workflow.
type DocumentStatus string

const (
	DocumentPending   DocumentStatus = "pending"
	DocumentReceived  DocumentStatus = "received"
	DocumentSubmitted DocumentStatus = "submitted"
)

// ParseDocumentStatus constructs a DocumentStatus from external input.
func ParseDocumentStatus(s string) (DocumentStatus, error) {
	d := DocumentStatus(s)
	if !d.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid document status")
	}
	return d, nil
}

// IsValid checks if the status is one of the supported enum values.
func (d DocumentStatus) IsValid() bool {
	switch d {
	case DocumentPending, DocumentReceived, DocumentSubmitted:
		return true
	}
	return false
}
