package record

import (
	"time"

	"github.com/janseva-cloud/sevadex/internal/domain/search/query"
)

// DisplayDate formats a record timestamp for UI display.
// A zero time yields an empty string, never an error.
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006")
}

// Complaint is a citizen grievance owned by exactly one citizen.
type Complaint struct {
	id          string
	ownerID     string
	subject     string
	description string
	department  string
	status      string
	createdAt   time.Time
}

// NewComplaint creates a complaint record.
func NewComplaint(id, ownerID, subject, description, department, status string, createdAt time.Time) Complaint {
	return Complaint{
		id:          id,
		ownerID:     ownerID,
		subject:     subject,
		description: description,
		department:  department,
		status:      status,
		createdAt:   createdAt,
	}
}

// ID returns the record identifier.
func (c Complaint) ID() string { return c.id }

// OwnerID returns the owning citizen's identifier.
func (c Complaint) OwnerID() string { return c.ownerID }

// Subject returns the complaint subject.
func (c Complaint) Subject() string { return c.subject }

// Description returns the complaint description.
func (c Complaint) Description() string { return c.description }

// Department returns the handling department.
func (c Complaint) Department() string { return c.department }

// Status returns the workflow status.
func (c Complaint) Status() string { return c.status }

// CreatedAt returns the creation timestamp.
func (c Complaint) CreatedAt() time.Time { return c.createdAt }

// Matches reports whether q hits any of the complaint's searchable fields.
func (c Complaint) Matches(q query.Query) bool {
	return q.MatchesAny(c.subject, c.description, c.department, c.status)
}

// DocumentRequest is a citizen's request for an official document.
type DocumentRequest struct {
	id        string
	ownerID   string
	docType   string
	purpose   string
	status    string
	createdAt time.Time
}

// NewDocumentRequest creates a document-request record.
func NewDocumentRequest(id, ownerID, docType, purpose, status string, createdAt time.Time) DocumentRequest {
	return DocumentRequest{
		id:        id,
		ownerID:   ownerID,
		docType:   docType,
		purpose:   purpose,
		status:    status,
		createdAt: createdAt,
	}
}

// ID returns the record identifier.
func (d DocumentRequest) ID() string { return d.id }

// OwnerID returns the owning citizen's identifier.
func (d DocumentRequest) OwnerID() string { return d.ownerID }

// DocType returns the requested document type.
func (d DocumentRequest) DocType() string { return d.docType }

// Purpose returns the stated purpose of the request.
func (d DocumentRequest) Purpose() string { return d.purpose }

// Status returns the workflow status.
func (d DocumentRequest) Status() string { return d.status }

// CreatedAt returns the creation timestamp.
func (d DocumentRequest) CreatedAt() time.Time { return d.createdAt }

// Matches reports whether q hits any of the request's searchable fields.
func (d DocumentRequest) Matches(q query.Query) bool {
	return q.MatchesAny(d.docType, d.purpose, d.status)
}

// Application is a citizen's application to a welfare scheme.
type Application struct {
	id            string
	ownerID       string
	schemeName    string
	applicantName string
	status        string
	course        string
	createdAt     time.Time
}

// NewApplication creates a scheme-application record. course is only set for
// scholarship applications and may be empty.
func NewApplication(id, ownerID, schemeName, applicantName, status, course string, createdAt time.Time) Application {
	return Application{
		id:            id,
		ownerID:       ownerID,
		schemeName:    schemeName,
		applicantName: applicantName,
		status:        status,
		course:        course,
		createdAt:     createdAt,
	}
}

// ID returns the record identifier.
func (a Application) ID() string { return a.id }

// OwnerID returns the owning citizen's identifier.
func (a Application) OwnerID() string { return a.ownerID }

// SchemeName returns the name of the scheme applied to.
func (a Application) SchemeName() string { return a.schemeName }

// ApplicantName returns the applicant's name.
func (a Application) ApplicantName() string { return a.applicantName }

// Status returns the workflow status.
func (a Application) Status() string { return a.status }

// Course returns the course for scholarship applications; may be empty.
func (a Application) Course() string { return a.course }

// CreatedAt returns the creation timestamp.
func (a Application) CreatedAt() time.Time { return a.createdAt }

// Matches reports whether q hits any of the application's searchable fields.
func (a Application) Matches(q query.Query) bool {
	return q.MatchesAny(a.schemeName, a.applicantName, a.status, a.course)
}
