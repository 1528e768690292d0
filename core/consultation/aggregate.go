package consultation

import (
	"context"
	"strconv"
	"sync"
)

// NotesFetcher is any service that can load the grading notes of a document.
type NotesFetcher interface {
	DocumentNotes(ctx context.Context, documentID string) ([]GradingNote, error)
}

// Aggregator joins documents with their grading notes to build the
// role-specific dashboard views.
type Aggregator struct {
	fetch NotesFetcher
}

func NewAggregator(fetch NotesFetcher) *Aggregator {
	return &Aggregator{fetch: fetch}
}

// noteResult keeps a fetch failure distinct from "genuinely no notes" until
// the view boundary, where both collapse to unevaluated.
type noteResult struct {
	notes []GradingNote
	err   error
}

// fetchAll fans out one note fetch per document and waits for all of them.
// The result slice is index-aligned with docs; completion order is irrelevant.
func (a *Aggregator) fetchAll(ctx context.Context, docs []Document) []noteResult {
	results := make([]noteResult, len(docs))
	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			notes, err := a.fetch.DocumentNotes(ctx, id)
			results[i] = noteResult{notes: notes, err: err}
		}(i, doc.ID)
	}
	wg.Wait()
	return results
}

// AggregateForDoctor builds the doctor dashboard rows. A failed note fetch
// downgrades that one document to unevaluated instead of failing the batch:
// one bad document must never blank the whole dashboard.
func (a *Aggregator) AggregateForDoctor(ctx context.Context, docs []Document) []DoctorMetadataView {
	results := a.fetchAll(ctx, docs)

	views := make([]DoctorMetadataView, len(docs))
	for i, doc := range docs {
		view := DoctorMetadataView{
			ConsultationView: Transform(doc),
			Priority:         ClassifyPriority(doc.CreatedAt),
		}
		if res := results[i]; res.err == nil && len(res.notes) > 0 {
			view.IsEvaluated = true
			// latest by array order; the backend returns notes chronologically
			latest := res.notes[len(res.notes)-1]
			view.LatestNote = &latest
		}
		views[i] = view
	}
	return views
}

// AggregateForStudent builds the student dashboard rows with the full note
// history and running average. Same per-document failure isolation as the
// doctor view.
func (a *Aggregator) AggregateForStudent(ctx context.Context, docs []Document) []StudentMetadataView {
	results := a.fetchAll(ctx, docs)

	views := make([]StudentMetadataView, len(docs))
	for i, doc := range docs {
		view := StudentMetadataView{
			ConsultationView: Transform(doc),
		}
		if res := results[i]; res.err == nil && len(res.notes) > 0 {
			view.Notes = res.notes
			view.IsEvaluated = true
			view.AverageGrade = averageGrade(res.notes)
		}
		views[i] = view
	}
	return views
}

// averageGrade is the arithmetic mean of all note grades, formatted to one
// decimal place. Nil when there are no notes.
func averageGrade(notes []GradingNote) *string {
	if len(notes) == 0 {
		return nil
	}
	var sum int
	for _, note := range notes {
		sum += note.Grade
	}
	avg := float64(sum) / float64(len(notes))
	s := strconv.FormatFloat(avg, 'f', 1, 64)
	return &s
}
