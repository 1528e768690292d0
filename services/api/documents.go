package apisvc

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"

	"github.com/medhistory/medhistory/core/consultation"
)

// SubmitConsultation submits a new consultation for the given student. The
// form fields travel as a JSON-encoded string under content, which is the
// shape the backend stores and the transformer knows to unwrap.
func (c *Client) SubmitConsultation(ctx context.Context, studentID int, nc consultation.NewConsultation) (consultation.Document, error) {
	var doc consultation.Document

	content, err := json.Marshal(nc.ContentFields())
	if err != nil {
		return doc, errors.Wrap(err, "encoding consultation content")
	}
	body := map[string]interface{}{
		"studentId": studentID,
		"doctorId":  nc.DoctorID,
		"content":   string(content),
	}
	err = c.post(ctx, "/generate-document", body, &doc)
	return doc, errors.Wrap(err, "submitting consultation")
}

// DoctorDocuments lists the documents assigned to a doctor.
func (c *Client) DoctorDocuments(ctx context.Context, doctorID int) ([]consultation.Document, error) {
	var docs []consultation.Document
	err := c.get(ctx, "/documents/doctor/"+strconv.Itoa(doctorID), &docs)
	return docs, errors.Wrap(err, "listing doctor documents")
}

// StudentDocuments lists the documents a student submitted.
func (c *Client) StudentDocuments(ctx context.Context, studentID int) ([]consultation.Document, error) {
	var docs []consultation.Document
	err := c.get(ctx, "/documents/student/"+strconv.Itoa(studentID), &docs)
	return docs, errors.Wrap(err, "listing student documents")
}

// DocumentNotes lists the grading notes of one document. Client satisfies
// consultation.NotesFetcher with it, so it plugs straight into the Aggregator.
func (c *Client) DocumentNotes(ctx context.Context, documentID string) ([]consultation.GradingNote, error) {
	var notes []consultation.GradingNote
	err := c.get(ctx, "/documents/notes/"+documentID, &notes)
	return notes, errors.Wrap(err, "listing document notes")
}

// GradeDocument appends a grading note to a document (doctor).
func (c *Client) GradeDocument(ctx context.Context, documentID string, gs consultation.GradeSubmission) error {
	return errors.Wrap(c.post(ctx, "/documents/grade/"+documentID, gs, nil), "grading document")
}

var _ consultation.NotesFetcher = (*Client)(nil)
