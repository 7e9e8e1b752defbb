package institute

import "math"

// The store has no referential integrity: relationships exist only as
// matching field values. The in-memory joins live here as pure functions
// over collection snapshots, so the match semantics are written down exactly
// once; simple id-equality lookups go through the store's equality reads
// instead. A join with zero matches returns an empty slice, never an error.

// StudentsByClass matches on the exact class label; no case normalization.
// Result order is unspecified; callers sort.
func StudentsByClass(students []Student, class string) []Student {
	matched := make([]Student, 0, len(students))
	for _, s := range students {
		if s.Class == class {
			matched = append(matched, s)
		}
	}
	return matched
}

// ResourcesForClass matches the student's own class plus the ClassAll wildcard.
func ResourcesForClass(resources []Resource, class string) []Resource {
	matched := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if r.Class == class || r.Class == ClassAll {
			matched = append(matched, r)
		}
	}
	return matched
}

func SessionsForClass(sessions []ScheduleSession, class string) []ScheduleSession {
	matched := make([]ScheduleSession, 0, len(sessions))
	for _, s := range sessions {
		if s.Course == class {
			matched = append(matched, s)
		}
	}
	return matched
}

// PassingThreshold is the institute-wide pass mark, in percent.
const PassingThreshold = 40.0

// ExamResult is one graded exam as the student portal shows it.
type ExamResult struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Date       string  `json:"date"`
	MaxMarks   float64 `json:"maxMarks"`
	Score      float64 `json:"score"`
	Percentage int     `json:"percentage"`
	Passing    bool    `json:"passing"`
	Timestamp  int64   `json:"timestamp"`
}

// ResultsForStudent pairs every exam of the student's class with the
// student's score from the exam's marks record. An exam with no marks
// record, or whose record has no entry for this student, or an empty entry,
// is skipped entirely: ungraded work is excluded, not scored zero. The
// dashboard and the portal both derive results through this one function so
// they cannot disagree.
func ResultsForStudent(exams []Exam, marks []MarksRecord, studentID, class string) []ExamResult {
	marksByExam := make(map[string]MarksRecord, len(marks))
	for _, m := range marks {
		marksByExam[m.ID] = m
	}

	results := make([]ExamResult, 0, len(exams))
	for _, exam := range exams {
		if exam.Course != class {
			continue
		}
		record, ok := marksByExam[exam.ID]
		if !ok {
			continue
		}
		raw, ok := record.Records[studentID]
		if !ok || raw == "" {
			continue // ungraded
		}
		score := coerceNumber(raw)
		var pct float64
		if exam.MaxMarks > 0 {
			pct = score / exam.MaxMarks * 100
		}
		results = append(results, ExamResult{
			ID:         exam.ID,
			Title:      exam.Title,
			Date:       exam.Date,
			MaxMarks:   exam.MaxMarks,
			Score:      score,
			Percentage: int(math.Round(pct)),
			Passing:    pct >= PassingThreshold,
			Timestamp:  exam.Timestamp,
		})
	}
	return results
}
