package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/medhistory/medhistory/core/consultation"
)

func (cli *commandLine) submit(args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	doctor := fs.Int("doctor", 0, "ID of the doctor to assign the consultation to (see: doctors)")
	patient := fs.String("patient", "", "Patient name")
	age := fs.String("age", "", "Patient age")
	gender := fs.String("gender", "", "Patient gender")
	weight := fs.String("weight", "", "Patient weight")
	symptoms := fs.String("symptoms", "", "Observed symptoms")
	exam := fs.String("exam", "", "Physical examination findings")
	diagnosis := fs.String("diagnosis", "", "Proposed diagnosis")
	treatment := fs.String("treatment", "", "Proposed treatment")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := cli.identity()
	if err != nil {
		return err
	}

	nc := consultation.NewConsultation{
		DoctorID:      *doctor,
		StudentName:   id.Name,
		StudentEmail:  id.Email,
		PatientName:   *patient,
		PatientAge:    *age,
		PatientGender: *gender,
		PatientWeight: *weight,
		Symptoms:      *symptoms,
		PhysicalExam:  *exam,
		Diagnosis:     *diagnosis,
		Treatment:     *treatment,
	}
	if err := nc.Validate(); err != nil {
		return err
	}

	doc, err := cli.api.SubmitConsultation(context.Background(), id.ID, nc)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "consultation submitted: %s\n", doc.ID)
	return nil
}

// parseStatus validates a -status flag value; only the three known modes pass.
func parseStatus(s string) (consultation.Status, bool) {
	switch status := consultation.Status(s); status {
	case consultation.StatusAll, consultation.StatusPending, consultation.StatusEvaluated:
		return status, true
	}
	return "", false
}

func (cli *commandLine) inbox(args []string) error {
	fs := flag.NewFlagSet("inbox", flag.ExitOnError)
	statusFlag := fs.String("status", "all", "Filter: all, pending or evaluated")
	if err := fs.Parse(args); err != nil {
		return err
	}
	status, ok := parseStatus(*statusFlag)
	if !ok {
		fs.Usage()
		return errHelp
	}

	id, err := cli.identity()
	if err != nil {
		return err
	}
	ctx := context.Background()

	docs, err := cli.api.DoctorDocuments(ctx, id.ID)
	if err != nil {
		return err
	}
	views := consultation.DoctorViewList(consultation.NewAggregator(cli.api).AggregateForDoctor(ctx, docs))
	counts := views.Counts()
	fmt.Fprintf(cli.out, "all: %d | pending: %d | evaluated: %d\n", counts.All, counts.Pending, counts.Evaluated)

	w := cli.newTabWriter()
	fmt.Fprintln(w, "ID\tPATIENT\tPRIORITY\tEVALUATED\tGRADE\tSUBMITTED")
	for _, view := range views.FilterByStatus(status) {
		grade := consultation.NotAvailable
		if view.LatestNote != nil {
			grade = fmt.Sprintf("%d", view.LatestNote.Grade)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\t%s\n",
			view.ID, view.PatientName, view.Priority, view.IsEvaluated, grade,
			view.SubmittedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func (cli *commandLine) myDocs(args []string) error {
	fs := flag.NewFlagSet("mydocs", flag.ExitOnError)
	statusFlag := fs.String("status", "all", "Filter: all, pending or evaluated")
	if err := fs.Parse(args); err != nil {
		return err
	}
	status, ok := parseStatus(*statusFlag)
	if !ok {
		fs.Usage()
		return errHelp
	}

	id, err := cli.identity()
	if err != nil {
		return err
	}
	ctx := context.Background()

	docs, err := cli.api.StudentDocuments(ctx, id.ID)
	if err != nil {
		return err
	}
	views := consultation.StudentViewList(consultation.NewAggregator(cli.api).AggregateForStudent(ctx, docs))
	counts := views.Counts()
	fmt.Fprintf(cli.out, "all: %d | pending: %d | evaluated: %d\n", counts.All, counts.Pending, counts.Evaluated)

	w := cli.newTabWriter()
	fmt.Fprintln(w, "ID\tPATIENT\tDIAGNOSIS\tEVALUATED\tAVG GRADE\tSUBMITTED")
	for _, view := range views.FilterByStatus(status) {
		avg := consultation.NotAvailable
		if view.AverageGrade != nil {
			avg = *view.AverageGrade
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\t%s\n",
			view.ID, view.PatientName, view.Diagnosis, view.IsEvaluated, avg,
			view.SubmittedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func (cli *commandLine) grade(args []string) error {
	fs := flag.NewFlagSet("grade", flag.ExitOnError)
	docID := fs.String("id", "", "Document ID (see: inbox)")
	grade := fs.Int("grade", 0, "Grade, 0 to 5")
	feedback := fs.String("feedback", "", "Overall feedback")
	analysis := fs.String("analysis", "", "Analysis quality remarks")
	accuracy := fs.String("accuracy", "", "Clinical accuracy remarks")
	plan := fs.String("plan", "", "Treatment plan remarks")
	origDiag := fs.String("orig-diagnosis", "", "Diagnosis as submitted")
	corrDiag := fs.String("corrected-diagnosis", "", "Corrected diagnosis")
	reason := fs.String("reason", "", "Reason for the correction")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *docID == "" {
		fs.Usage()
		return errHelp
	}

	gs := consultation.GradeSubmission{
		Grade: *grade,
		EvaluationCriteria: consultation.EvaluationCriteria{
			Feedback:         *feedback,
			AnalysisQuality:  *analysis,
			ClinicalAccuracy: *accuracy,
			TreatmentPlan:    *plan,
		},
		DiagnosticCorrection: consultation.DiagnosticCorrection{
			OriginalDiagnosis:  *origDiag,
			CorrectedDiagnosis: *corrDiag,
			CorrectionReason:   *reason,
		},
	}
	if err := gs.Validate(); err != nil {
		return err
	}

	if err := cli.api.GradeDocument(context.Background(), *docID, gs); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "document %s graded: %d/5\n", *docID, *grade)
	return nil
}
