package consultation

import (
	"testing"
	"time"
)

func TestClassifyPriority(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = time.Now }()

	tests := []struct {
		name string
		age  time.Duration
		want Priority
	}{
		{name: "brand new", age: 0, want: PriorityHigh},
		{name: "future timestamp", age: -2 * time.Hour, want: PriorityHigh},
		{name: "just under 24h", age: 24*time.Hour - time.Second, want: PriorityHigh},
		{name: "exactly 24h is still Alta", age: 24 * time.Hour, want: PriorityHigh},
		{name: "just over 24h", age: 24*time.Hour + time.Second, want: PriorityMedium},
		{name: "30h", age: 30 * time.Hour, want: PriorityMedium},
		{name: "exactly 48h is still Media", age: 48 * time.Hour, want: PriorityMedium},
		{name: "just over 48h", age: 48*time.Hour + time.Second, want: PriorityLow},
		{name: "a week old", age: 7 * 24 * time.Hour, want: PriorityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPriority(now.Add(-tt.age)); got != tt.want {
				t.Errorf("ClassifyPriority(now-%s) = %s, want %s", tt.age, got, tt.want)
			}
		})
	}
}

func TestClassifyPriorityZeroTimestamp(t *testing.T) {
	// a missing/malformed createdAt decodes to the zero time and must sink
	// to the bottom of the triage list
	if got := ClassifyPriority(time.Time{}); got != PriorityLow {
		t.Errorf("ClassifyPriority(zero) = %s, want %s", got, PriorityLow)
	}
}
