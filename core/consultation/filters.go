package consultation

// Status selects a dashboard partition.
type Status string

const (
	StatusAll       Status = "all"
	StatusPending   Status = "pending"
	StatusEvaluated Status = "evaluated"
)

// StatusCounts are the tab badges ("Todas (N)", "Pendientes (N)", ...),
// always recomputed from the unfiltered list so they cannot drift.
type StatusCounts struct {
	All       int
	Pending   int
	Evaluated int
}

type (
	DoctorViewList  []DoctorMetadataView
	StudentViewList []StudentMetadataView
)

// FilterByStatus returns the items matching status, preserving order.
// StatusAll is the identity filter.
func (l DoctorViewList) FilterByStatus(status Status) DoctorViewList {
	if status == StatusAll {
		return l
	}
	filtered := make(DoctorViewList, 0, len(l))
	for _, item := range l {
		if item.IsEvaluated == (status == StatusEvaluated) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (l DoctorViewList) Counts() StatusCounts {
	counts := StatusCounts{All: len(l)}
	for _, item := range l {
		if item.IsEvaluated {
			counts.Evaluated++
		} else {
			counts.Pending++
		}
	}
	return counts
}

// FilterByStatus returns the items matching status, preserving order.
// StatusAll is the identity filter.
func (l StudentViewList) FilterByStatus(status Status) StudentViewList {
	if status == StatusAll {
		return l
	}
	filtered := make(StudentViewList, 0, len(l))
	for _, item := range l {
		if item.IsEvaluated == (status == StatusEvaluated) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (l StudentViewList) Counts() StatusCounts {
	counts := StatusCounts{All: len(l)}
	for _, item := range l {
		if item.IsEvaluated {
			counts.Evaluated++
		} else {
			counts.Pending++
		}
	}
	return counts
}
