package consultation

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func viewContentFields(v ConsultationView) map[string]string {
	return map[string]string{
		"studentName":   v.StudentName,
		"studentEmail":  v.StudentEmail,
		"patientName":   v.PatientName,
		"patientAge":    v.PatientAge,
		"patientGender": v.PatientGender,
		"patientWeight": v.PatientWeight,
		"symptoms":      v.Symptoms,
		"physicalExam":  v.PhysicalExam,
		"diagnosis":     v.Diagnosis,
		"treatment":     v.Treatment,
	}
}

func TestTransform(t *testing.T) {
	createdAt := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(26 * time.Hour)

	fullContent := `{
		"studentName": "Grace Mbuyi",
		"studentEmail": "grace@test.cd",
		"patientName": "Jean K.",
		"patientAge": 34,
		"patientGender": "M",
		"patientWeight": 72.5,
		"symptoms": "fever, cough",
		"physicalExam": "unremarkable",
		"diagnosis": "flu",
		"treatment": "rest"
	}`

	fullWant := map[string]string{
		"studentName":   "Grace Mbuyi",
		"studentEmail":  "grace@test.cd",
		"patientName":   "Jean K.",
		"patientAge":    "34",
		"patientGender": "M",
		"patientWeight": "72.5",
		"symptoms":      "fever, cough",
		"physicalExam":  "unremarkable",
		"diagnosis":     "flu",
		"treatment":     "rest",
	}

	tests := []struct {
		name    string
		content json.RawMessage
		want    map[string]string // expected content fields; missing keys => N/A
	}{
		{
			name:    "content as object",
			content: json.RawMessage(fullContent),
			want:    fullWant,
		},
		{
			name:    "content as JSON-encoded string",
			content: mustMarshal(t, fullContent),
			want:    fullWant,
		},
		{
			name:    "partial content defaults the rest",
			content: json.RawMessage(`{"patientName":"Jean K.","symptoms":"fever"}`),
			want:    map[string]string{"patientName": "Jean K.", "symptoms": "fever"},
		},
		{
			name:    "empty-string and null values default",
			content: json.RawMessage(`{"diagnosis":"","treatment":null,"patientName":"Jean K."}`),
			want:    map[string]string{"patientName": "Jean K."},
		},
		{
			name:    "large numbers render as written, not scientific",
			content: json.RawMessage(`{"patientAge":1000000000000000000000,"patientWeight":72.5}`),
			want:    map[string]string{"patientAge": "1000000000000000000000", "patientWeight": "72.5"},
		},
		{name: "nil content", content: nil, want: nil},
		{name: "garbage content", content: json.RawMessage(`[1,2,3]`), want: nil},
		{name: "garbage encoded string", content: mustMarshal(t, "lol"), want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{
				ID:        "doc-1",
				StudentID: 3,
				DoctorID:  7,
				Content:   tt.content,
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			}
			view := Transform(doc)

			if view.ID != doc.ID || view.StudentID != 3 || view.DoctorID != 7 {
				t.Errorf("identity fields not carried over: %+v", view)
			}
			if !view.SubmittedAt.Equal(createdAt) || !view.EvaluatedAt.Equal(updatedAt) {
				t.Errorf("timestamps not carried over: %+v", view)
			}

			got := viewContentFields(view)
			for key, val := range got {
				want, ok := tt.want[key]
				if !ok {
					want = NotAvailable
				}
				if val != want {
					t.Errorf("field %s = %q, want %q", key, val, want)
				}
				// totality: no field may come out empty
				if val == "" {
					t.Errorf("field %s is empty; views must be total", key)
				}
			}
		})
	}
}

func TestTransformAllPreservesOrder(t *testing.T) {
	docs := []Document{
		{ID: "a", Content: json.RawMessage(`{"patientName":"A"}`)},
		{ID: "b", Content: json.RawMessage(`{"patientName":"B"}`)},
		{ID: "c"},
	}
	views := TransformAll(docs)
	if len(views) != len(docs) {
		t.Fatalf("TransformAll() returned %d views, want %d", len(views), len(docs))
	}
	wantIDs := []string{"a", "b", "c"}
	wantNames := []string{"A", "B", NotAvailable}
	for i, view := range views {
		if view.ID != wantIDs[i] || view.PatientName != wantNames[i] {
			t.Errorf("views[%d] = {%s %s}, want {%s %s}", i, view.ID, view.PatientName, wantIDs[i], wantNames[i])
		}
	}
	if !reflect.DeepEqual(TransformAll(nil), []ConsultationView{}) {
		t.Error("TransformAll(nil) should be an empty slice")
	}
}

func mustMarshal(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return raw
}
