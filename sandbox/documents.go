package sandbox

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/medhistory/medhistory/core/consultation"
	"github.com/medhistory/medhistory/core/user"
)

type generateDocumentRequest struct {
	StudentID int             `json:"studentId"`
	DoctorID  int             `json:"doctorId"`
	Content   json.RawMessage `json:"content"`
}

func (h *handlers) generateDocument(ctx echo.Context) error {
	var data generateDocumentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to generateDocumentRequest")
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	// students can only submit for themselves
	if claims.Role == user.RoleStudent && data.StudentID != claims.ID {
		return errHttpForbidden
	}

	doctor, err := h.store.GetUserByID(data.DoctorID)
	if err != nil || !doctor.IsDoctor() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown doctor")
	}

	doc := h.store.CreateDocument(data.StudentID, data.DoctorID, data.Content)
	h.store.AddNotification(doctor.ID, doc.ID, "New consultation submitted by "+claims.Name)
	return ctx.JSON(http.StatusCreated, doc)
}

func (h *handlers) doctorDocuments(ctx echo.Context) error {
	id, err := h.ownParamID(ctx, user.RoleDoctor)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, h.store.DocumentsByDoctor(id))
}

func (h *handlers) studentDocuments(ctx echo.Context) error {
	id, err := h.ownParamID(ctx, user.RoleStudent)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, h.store.DocumentsByStudent(id))
}

// ownParamID reads the :id route param and checks that non-admin callers of
// the given role only reach their own resources.
func (h *handlers) ownParamID(ctx echo.Context, role string) (int, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "getting context claims")
	}
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errHttpNotFound
	}
	if claims.Role == role && id != claims.ID {
		return 0, errHttpForbidden
	}
	return id, nil
}

func (h *handlers) documentNotes(ctx echo.Context) error {
	if _, err := h.store.Document(ctx.Param("id")); err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, h.store.Notes(ctx.Param("id")))
}

func (h *handlers) gradeDocument(ctx echo.Context) error {
	var data consultation.GradeSubmission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GradeSubmission")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	doc, err := h.store.Document(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	// doctors can only grade their own assignments
	if claims.Role == user.RoleDoctor && doc.DoctorID != claims.ID {
		return errHttpForbidden
	}

	note := consultation.GradingNote{
		Grade:                data.Grade,
		EvaluationCriteria:   data.EvaluationCriteria,
		DiagnosticCorrection: data.DiagnosticCorrection,
		DoctorID:             claims.ID,
	}
	if err := h.store.AddNote(doc.ID, note); err != nil {
		return errors.Wrap(err, "adding grading note")
	}
	h.store.AddNotification(doc.StudentID, doc.ID, "Your consultation has been evaluated")
	return ctx.JSON(http.StatusCreated, echo.Map{"message": "document graded"})
}
