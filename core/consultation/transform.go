package consultation

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// NotAvailable is the sentinel rendered for content fields the source
// document never carried.
const NotAvailable = "N/A"

// Transform flattens a raw Document into a total ConsultationView: every
// field of the output is populated, with NotAvailable standing in for
// missing or empty content values. Pure; safe on any input.
func Transform(doc Document) ConsultationView {
	content := parseContent(doc.Content)
	return ConsultationView{
		ID:        doc.ID,
		StudentID: doc.StudentID,
		DoctorID:  doc.DoctorID,

		StudentName:   contentField(content, "studentName"),
		StudentEmail:  contentField(content, "studentEmail"),
		PatientName:   contentField(content, "patientName"),
		PatientAge:    contentField(content, "patientAge"),
		PatientGender: contentField(content, "patientGender"),
		PatientWeight: contentField(content, "patientWeight"),
		Symptoms:      contentField(content, "symptoms"),
		PhysicalExam:  contentField(content, "physicalExam"),
		Diagnosis:     contentField(content, "diagnosis"),
		Treatment:     contentField(content, "treatment"),

		SubmittedAt: doc.CreatedAt,
		EvaluatedAt: doc.UpdatedAt,
	}
}

// TransformAll maps Transform over a document list, preserving order.
func TransformAll(docs []Document) []ConsultationView {
	views := make([]ConsultationView, len(docs))
	for i, doc := range docs {
		views[i] = Transform(doc)
	}
	return views
}

// parseContent accepts content either as a JSON object or as a JSON-encoded
// string of one (call sites serialize differently). Anything unreadable
// yields nil, which renders as all-NotAvailable.
func parseContent(raw json.RawMessage) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		raw = json.RawMessage(s)
	}
	var content map[string]interface{}
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil
	}
	return content
}

// contentField renders content[key], or NotAvailable when the key is absent,
// null or empty. Non-string values (ages and weights arrive as numbers from
// some producers) pass through as their JSON rendering, uncoerced.
func contentField(content map[string]interface{}, key string) string {
	val, ok := content[key]
	if !ok || val == nil {
		return NotAvailable
	}
	var s string
	switch v := val.(type) {
	case string:
		s = v
	case float64:
		// 'f' keeps large values out of scientific notation
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		s = fmt.Sprint(val)
	}
	if s == "" {
		return NotAvailable
	}
	return s
}
