// Package consultation holds the document/grading domain: the raw records
// the backend returns, the flattened view models the UI renders, and the
// pure transformations between the two.
package consultation

import (
	"encoding/json"
	"time"

	"github.com/medhistory/medhistory/core"
)

// Document is a submitted consultation as the backend stores it. Content is
// kept raw: different producers send it either as a JSON object or as a
// JSON-encoded string, and only the transformer decides how to read it.
type Document struct {
	ID        string          `json:"id"`
	StudentID int             `json:"studentId"`
	DoctorID  int             `json:"doctorId"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// EvaluationCriteria is a doctor's structured feedback on a consultation.
type EvaluationCriteria struct {
	Feedback         string `json:"feedback" validate:"required"`
	AnalysisQuality  string `json:"analysisQuality"`
	ClinicalAccuracy string `json:"clinicalAccuracy"`
	TreatmentPlan    string `json:"treatmentPlan"`
}

// DiagnosticCorrection records how the doctor amended the student's diagnosis.
type DiagnosticCorrection struct {
	OriginalDiagnosis  string `json:"originalDiagnosis"`
	CorrectedDiagnosis string `json:"correctedDiagnosis"`
	CorrectionReason   string `json:"correctionReason"`
}

// GradingNote is one doctor evaluation attached to a document. Notes are
// append-only: a re-grade adds a note, it never rewrites one.
type GradingNote struct {
	Grade                int                  `json:"grade"`
	EvaluationCriteria   EvaluationCriteria   `json:"evaluationCriteria"`
	DiagnosticCorrection DiagnosticCorrection `json:"diagnosticCorrection"`
	DoctorID             int                  `json:"doctorId,omitempty"`
	CreatedAt            time.Time            `json:"createdAt"`
}

// ConsultationView is the flattened, render-ready shape of a Document.
// Every field is total: absent content keys surface as the "N/A" sentinel,
// never as an empty or missing value.
type ConsultationView struct {
	ID        string `json:"id"`
	StudentID int    `json:"student_id"`
	DoctorID  int    `json:"doctor_id"`

	StudentName   string `json:"student_name"`
	StudentEmail  string `json:"student_email"`
	PatientName   string `json:"patient_name"`
	PatientAge    string `json:"patient_age"`
	PatientGender string `json:"patient_gender"`
	PatientWeight string `json:"patient_weight"`
	Symptoms      string `json:"symptoms"`
	PhysicalExam  string `json:"physical_exam"`
	Diagnosis     string `json:"diagnosis"`
	Treatment     string `json:"treatment"`

	SubmittedAt time.Time `json:"submitted_at"` // createdAt
	EvaluatedAt time.Time `json:"evaluated_at"` // updatedAt
}

// DoctorMetadataView is a ConsultationView joined with its grading state,
// as the doctor dashboard shows it.
type DoctorMetadataView struct {
	ConsultationView
	Priority    Priority     `json:"priority"`
	IsEvaluated bool         `json:"is_evaluated"`
	LatestNote  *GradingNote `json:"latest_note,omitempty"`
}

// StudentMetadataView is a ConsultationView joined with its full note
// history, as the student dashboard shows it.
type StudentMetadataView struct {
	ConsultationView
	Notes        []GradingNote `json:"notes"`
	IsEvaluated  bool          `json:"is_evaluated"`
	AverageGrade *string       `json:"average_grade,omitempty"` // "%.1f", nil without notes
}

// NewConsultation is the student submission form.
type NewConsultation struct {
	DoctorID int `json:"doctorId" validate:"required"`

	StudentName   string `json:"studentName" validate:"required"`
	StudentEmail  string `json:"studentEmail" validate:"required,email"`
	PatientName   string `json:"patientName" validate:"required"`
	PatientAge    string `json:"patientAge"`
	PatientGender string `json:"patientGender"`
	PatientWeight string `json:"patientWeight"`
	Symptoms      string `json:"symptoms" validate:"required"`
	PhysicalExam  string `json:"physicalExam"`
	Diagnosis     string `json:"diagnosis" validate:"required"`
	Treatment     string `json:"treatment" validate:"required"`
}

func (nc *NewConsultation) Validate() error {
	nc.StudentName = core.CleanString(nc.StudentName)
	nc.StudentEmail = core.CleanString(nc.StudentEmail, true /* lower */)
	nc.PatientName = core.CleanString(nc.PatientName)
	nc.Symptoms = core.CleanString(nc.Symptoms)
	nc.Diagnosis = core.CleanString(nc.Diagnosis)
	nc.Treatment = core.CleanString(nc.Treatment)
	return core.Validate.Struct(nc)
}

// ContentFields is the consultation form as the backend expects it inside a
// document's content. Blank optional fields are kept so the stored record
// mirrors what the form showed.
func (nc NewConsultation) ContentFields() map[string]string {
	return map[string]string{
		"studentName":   nc.StudentName,
		"studentEmail":  nc.StudentEmail,
		"patientName":   nc.PatientName,
		"patientAge":    nc.PatientAge,
		"patientGender": nc.PatientGender,
		"patientWeight": nc.PatientWeight,
		"symptoms":      nc.Symptoms,
		"physicalExam":  nc.PhysicalExam,
		"diagnosis":     nc.Diagnosis,
		"treatment":     nc.Treatment,
	}
}

// GradeSubmission is the doctor grading form. Grades are whole points on a
// 0-5 scale.
type GradeSubmission struct {
	Grade                int                  `json:"grade" validate:"gte=0,lte=5"`
	EvaluationCriteria   EvaluationCriteria   `json:"evaluationCriteria"`
	DiagnosticCorrection DiagnosticCorrection `json:"diagnosticCorrection"`
}

func (gs *GradeSubmission) Validate() error {
	gs.EvaluationCriteria.Feedback = core.CleanString(gs.EvaluationCriteria.Feedback)
	return core.Validate.Struct(gs)
}
