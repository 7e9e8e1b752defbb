package institute

import "sort"

// Shared ordering rules. All sorts are stable: records tied on the sort key
// keep their snapshot order, so repeated calls over the same store state
// produce identical output.

func sortStudentsByName(students []Student) {
	sort.SliceStable(students, func(i, j int) bool { return students[i].Name < students[j].Name })
}

func sortStaffByName(staff []Staff) {
	sort.SliceStable(staff, func(i, j int) bool { return staff[i].Name < staff[j].Name })
}

func sortFeesNewestFirst(fees []Fee) {
	sort.SliceStable(fees, func(i, j int) bool { return fees[i].Timestamp > fees[j].Timestamp })
}

func sortNoticesNewestFirst(notices []Notice) {
	sort.SliceStable(notices, func(i, j int) bool { return notices[i].Timestamp > notices[j].Timestamp })
}

func sortResourcesNewestFirst(resources []Resource) {
	sort.SliceStable(resources, func(i, j int) bool { return resources[i].Timestamp > resources[j].Timestamp })
}

func sortExamsNewestFirst(exams []Exam) {
	sort.SliceStable(exams, func(i, j int) bool { return exams[i].Timestamp > exams[j].Timestamp })
}

func sortInquiriesNewestFirst(inquiries []Inquiry) {
	sort.SliceStable(inquiries, func(i, j int) bool { return inquiries[i].Timestamp > inquiries[j].Timestamp })
}

func sortResultsNewestFirst(results []ExamResult) {
	sort.SliceStable(results, func(i, j int) bool { return results[i].Timestamp > results[j].Timestamp })
}

// sortSessionsByStartTime orders chronologically by time of day; the fixed
// "HH:MM" width makes the lexicographic comparison correct.
func sortSessionsByStartTime(sessions []ScheduleSession) {
	sort.SliceStable(sessions, func(i, j int) bool { return sessions[i].StartTime < sessions[j].StartTime })
}
