package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/janseva-cloud/sevadex/internal/domain"
	"github.com/janseva-cloud/sevadex/internal/domain/record"
)

var errMissingIdentity = fmt.Errorf("%w: id and owner are required", domain.ErrInvalidRecord)

// Documents are stored as flat JSON objects. The owner tag and the numeric
// created timestamp (unix seconds) are indexed; everything else is opaque to
// the store and filtered in-process.

type complaintDoc struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	Subject     string `json:"subject,omitempty"`
	Description string `json:"description,omitempty"`
	Department  string `json:"department,omitempty"`
	Status      string `json:"status,omitempty"`
	Created     int64  `json:"created"`
}

func newComplaintDoc(c record.Complaint) complaintDoc {
	return complaintDoc{
		ID:          c.ID(),
		Owner:       c.OwnerID(),
		Subject:     c.Subject(),
		Description: c.Description(),
		Department:  c.Department(),
		Status:      c.Status(),
		Created:     unixOrZero(c.CreatedAt()),
	}
}

func (d complaintDoc) toRecord() record.Complaint {
	return record.NewComplaint(d.ID, d.Owner, d.Subject, d.Description, d.Department, d.Status, timeOrZero(d.Created))
}

type documentDoc struct {
	ID      string `json:"id"`
	Owner   string `json:"owner"`
	DocType string `json:"doc_type,omitempty"`
	Purpose string `json:"purpose,omitempty"`
	Status  string `json:"status,omitempty"`
	Created int64  `json:"created"`
}

func newDocumentDoc(r record.DocumentRequest) documentDoc {
	return documentDoc{
		ID:      r.ID(),
		Owner:   r.OwnerID(),
		DocType: r.DocType(),
		Purpose: r.Purpose(),
		Status:  r.Status(),
		Created: unixOrZero(r.CreatedAt()),
	}
}

func (d documentDoc) toRecord() record.DocumentRequest {
	return record.NewDocumentRequest(d.ID, d.Owner, d.DocType, d.Purpose, d.Status, timeOrZero(d.Created))
}

type applicationDoc struct {
	ID            string `json:"id"`
	Owner         string `json:"owner"`
	SchemeName    string `json:"scheme_name,omitempty"`
	ApplicantName string `json:"applicant_name,omitempty"`
	Status        string `json:"status,omitempty"`
	Course        string `json:"course,omitempty"`
	Created       int64  `json:"created"`
}

func newApplicationDoc(a record.Application) applicationDoc {
	return applicationDoc{
		ID:            a.ID(),
		Owner:         a.OwnerID(),
		SchemeName:    a.SchemeName(),
		ApplicantName: a.ApplicantName(),
		Status:        a.Status(),
		Course:        a.Course(),
		Created:       unixOrZero(a.CreatedAt()),
	}
}

func (d applicationDoc) toRecord() record.Application {
	return record.NewApplication(d.ID, d.Owner, d.SchemeName, d.ApplicantName, d.Status, d.Course, timeOrZero(d.Created))
}

func encodeDoc(doc any) ([]byte, error) {
	return json.Marshal(doc)
}

// decodeDoc parses the "$" return field of an FT.SEARCH entry. Depending on
// dialect the store hands back either the document object or a one-element
// array wrapping it; both shapes are accepted.
func decodeDoc[T any](fields map[string]string) (T, error) {
	var doc T

	raw, ok := fields["$"]
	if !ok || raw == "" {
		return doc, errors.New("missing document payload")
	}

	data := []byte(raw)
	if data[0] == '[' {
		var wrapped []T
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return doc, fmt.Errorf("unmarshal document array: %w", err)
		}
		if len(wrapped) == 0 {
			return doc, errors.New("empty document array")
		}
		return wrapped[0], nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("unmarshal document: %w", err)
	}
	return doc, nil
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func timeOrZero(unix int64) time.Time {
	if unix <= 0 {
		return time.Time{}
	}
	return time.Unix(unix, 0).UTC()
}
