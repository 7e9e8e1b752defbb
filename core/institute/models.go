package institute

import (
	"errors"
	"strconv"

	"github.com/digitalforgex/institute/core"
)

// Collection names as the record store knows them.
const (
	ColStudents   = "students"
	ColFees       = "fees"
	ColAttendance = "attendance"
	ColExams      = "exams"
	ColMarks      = "marks"
	ColNotices    = "notices"
	ColResources  = "resources"
	ColStaff      = "staff"
	ColInquiries  = "inquiries"
	ColSchedule   = "schedule"
	ColSettings   = "settings"
)

// ClassAll is the wildcard class on resources; it matches every student.
const ClassAll = "All Classes"

// SettingsDocID is the id of the singleton settings document.
const SettingsDocID = "global"

// Attendance statuses.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Fee statuses.
const (
	FeePending = "Pending"
	FeePaid    = "Paid"
)

// Inquiry statuses.
const (
	InquiryNew       = "New"
	InquiryContacted = "Contacted"
	InquiryEnrolled  = "Enrolled"
	InquiryClosed    = "Closed"
)

// ErrMissingIdentity is returned by a normalizer when a document lacks the
// one field that relates it to anything else (a fee without a studentId is
// unattributable and cannot be joined, so it is dropped, never defaulted).
var ErrMissingIdentity = errors.New("document missing identity field")

type (
	Student struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Class     string `json:"class"` // free-text course label, not a foreign key
		Email     string `json:"email"`
		Phone     string `json:"phone"` // student login key
		Address   string `json:"address"`
		JoinDate  string `json:"joinDate"`
		Timestamp int64  `json:"timestamp"`
	}

	Fee struct {
		ID          string  `json:"id"`
		StudentID   string  `json:"studentId"`
		StudentName string  `json:"studentName"`
		Course      string  `json:"course"`
		Amount      float64 `json:"amount"`
		Date        string  `json:"date"`
		Status      string  `json:"status"`
		Timestamp   int64   `json:"timestamp"`
	}

	// AttendanceRecord is one document per (date, class) pair; its id is the
	// composite "<date>_<class>", so a re-save overwrites, never duplicates.
	AttendanceRecord struct {
		ID        string            `json:"id"`
		Date      string            `json:"date"`
		Class     string            `json:"class"`
		Records   map[string]string `json:"records"` // studentID -> Present|Absent
		Timestamp int64             `json:"timestamp"`
	}

	Exam struct {
		ID        string  `json:"id"`
		Title     string  `json:"title"`
		Course    string  `json:"course"`
		Date      string  `json:"date"`
		MaxMarks  float64 `json:"maxMarks"`
		Timestamp int64   `json:"timestamp"`
	}

	// MarksRecord shares its id with the owning Exam (1:1). Scores stay raw
	// strings; an absent or empty entry means ungraded, which is not the
	// same thing as zero.
	MarksRecord struct {
		ID          string            `json:"id"`
		Course      string            `json:"course"`
		Records     map[string]string `json:"records"` // studentID -> score as text
		LastUpdated int64             `json:"lastUpdated"`
	}

	Notice struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Message   string `json:"message"`
		Type      string `json:"type"` // General|Urgent|Holiday|Exam
		Date      string `json:"date"`
		Timestamp int64  `json:"timestamp"`
	}

	Resource struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Subject   string `json:"subject"`
		Class     string `json:"class"` // a course label, or ClassAll
		Link      string `json:"link"`
		Type      string `json:"type"`
		Date      string `json:"date"`
		Timestamp int64  `json:"timestamp"`
	}

	Staff struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Role       string `json:"role"`
		Department string `json:"department"`
		Phone      string `json:"phone"`
		Email      string `json:"email"`
		JoinDate   string `json:"joinDate"`
		Timestamp  int64  `json:"timestamp"`
	}

	Inquiry struct {
		ID          string `json:"id"`
		StudentName string `json:"studentName"`
		ParentName  string `json:"parentName"`
		Phone       string `json:"phone"`
		Course      string `json:"course"`
		Status      string `json:"status"` // New|Contacted|Enrolled|Closed
		Date        string `json:"date"`
		Timestamp   int64  `json:"timestamp"`
	}

	ScheduleSession struct {
		ID        string `json:"id"`
		Course    string `json:"course"`
		Subject   string `json:"subject"`
		Teacher   string `json:"teacher"`
		Day       string `json:"day"`
		StartTime string `json:"startTime"` // "HH:MM"; fixed width, compared lexicographically
		EndTime   string `json:"endTime"`
		Room      string `json:"room"`
	}

	Settings struct {
		InstituteName string `json:"instituteName"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
		AcademicYear  string `json:"academicYear"`
	}
)

// Entity normalizers.
//
// The store is schemaless: any field may be absent, and numeric-like fields
// (amounts, scores, timestamps) may arrive as text. Each normalizer fills
// every declared field, defaulting what is missing; only a missing identity
// field is an error. All arithmetic downstream runs on the coerced values,
// never on raw documents.

func StudentFromDocument(doc core.Document) Student {
	return Student{
		ID:        doc.ID,
		Name:      stringAttr(doc.Fields, "name", ""),
		Class:     stringAttr(doc.Fields, "class", ""),
		Email:     stringAttr(doc.Fields, "email", "N/A"),
		Phone:     stringAttr(doc.Fields, "phone", ""),
		Address:   stringAttr(doc.Fields, "address", "N/A"),
		JoinDate:  stringAttr(doc.Fields, "joinDate", ""),
		Timestamp: intAttr(doc.Fields, "timestamp"),
	}
}

func FeeFromDocument(doc core.Document) (Fee, error) {
	studentID := stringAttr(doc.Fields, "studentId", "")
	if studentID == "" {
		return Fee{}, ErrMissingIdentity
	}
	return Fee{
		ID:          doc.ID,
		StudentID:   studentID,
		StudentName: stringAttr(doc.Fields, "studentName", ""),
		Course:      stringAttr(doc.Fields, "course", ""),
		Amount:      numberAttr(doc.Fields, "amount"),
		Date:        stringAttr(doc.Fields, "date", ""),
		Status:      stringAttr(doc.Fields, "status", FeePending),
		Timestamp:   intAttr(doc.Fields, "timestamp"),
	}, nil
}

func AttendanceFromDocument(doc core.Document) AttendanceRecord {
	return AttendanceRecord{
		ID:        doc.ID,
		Date:      stringAttr(doc.Fields, "date", ""),
		Class:     stringAttr(doc.Fields, "class", ""),
		Records:   recordsAttr(doc.Fields, "records"),
		Timestamp: intAttr(doc.Fields, "timestamp"),
	}
}

func ExamFromDocument(doc core.Document) Exam {
	return Exam{
		ID:        doc.ID,
		Title:     stringAttr(doc.Fields, "title", ""),
		Course:    stringAttr(doc.Fields, "course", ""),
		Date:      stringAttr(doc.Fields, "date", ""),
		MaxMarks:  numberAttr(doc.Fields, "maxMarks"),
		Timestamp: intAttr(doc.Fields, "timestamp"),
	}
}

func MarksFromDocument(doc core.Document) MarksRecord {
	return MarksRecord{
		ID:          doc.ID, // == exam id
		Course:      stringAttr(doc.Fields, "course", ""),
		Records:     recordsAttr(doc.Fields, "records"),
		LastUpdated: intAttr(doc.Fields, "lastUpdated"),
	}
}

func NoticeFromDocument(doc core.Document) Notice {
	return Notice{
		ID:        doc.ID,
		Title:     stringAttr(doc.Fields, "title", ""),
		Message:   stringAttr(doc.Fields, "message", ""),
		Type:      stringAttr(doc.Fields, "type", "General"),
		Date:      stringAttr(doc.Fields, "date", ""),
		Timestamp: intAttr(doc.Fields, "timestamp"),
	}
}

func ResourceFromDocument(doc core.Document) Resource {
	return Resource{
		ID:        doc.ID,
		Title:     stringAttr(doc.Fields, "title", ""),
		Subject:   stringAttr(doc.Fields, "subject", ""),
		Class:     stringAttr(doc.Fields, "class", ClassAll),
		Link:      stringAttr(doc.Fields, "link", ""),
		Type:      stringAttr(doc.Fields, "type", ""),
		Date:      stringAttr(doc.Fields, "date", ""),
		Timestamp: intAttr(doc.Fields, "timestamp"),
	}
}

func StaffFromDocument(doc core.Document) Staff {
	return Staff{
		ID:         doc.ID,
		Name:       stringAttr(doc.Fields, "name", ""),
		Role:       stringAttr(doc.Fields, "role", ""),
		Department: stringAttr(doc.Fields, "department", ""),
		Phone:      stringAttr(doc.Fields, "phone", ""),
		Email:      stringAttr(doc.Fields, "email", "N/A"),
		JoinDate:   stringAttr(doc.Fields, "joinDate", ""),
		Timestamp:  intAttr(doc.Fields, "timestamp"),
	}
}

func InquiryFromDocument(doc core.Document) Inquiry {
	return Inquiry{
		ID:          doc.ID,
		StudentName: stringAttr(doc.Fields, "studentName", ""),
		ParentName:  stringAttr(doc.Fields, "parentName", ""),
		Phone:       stringAttr(doc.Fields, "phone", ""),
		Course:      stringAttr(doc.Fields, "course", ""),
		Status:      stringAttr(doc.Fields, "status", InquiryNew),
		Date:        stringAttr(doc.Fields, "date", ""),
		Timestamp:   intAttr(doc.Fields, "timestamp"),
	}
}

func SessionFromDocument(doc core.Document) ScheduleSession {
	return ScheduleSession{
		ID:        doc.ID,
		Course:    stringAttr(doc.Fields, "course", ""),
		Subject:   stringAttr(doc.Fields, "subject", ""),
		Teacher:   stringAttr(doc.Fields, "teacher", ""),
		Day:       stringAttr(doc.Fields, "day", ""),
		StartTime: stringAttr(doc.Fields, "startTime", ""),
		EndTime:   stringAttr(doc.Fields, "endTime", ""),
		Room:      stringAttr(doc.Fields, "room", ""),
	}
}

func SettingsFromDocument(doc core.Document) Settings {
	return Settings{
		InstituteName: stringAttr(doc.Fields, "instituteName", "DigitalForgeX Institute"),
		Email:         stringAttr(doc.Fields, "email", "N/A"),
		Phone:         stringAttr(doc.Fields, "phone", "N/A"),
		Address:       stringAttr(doc.Fields, "address", "N/A"),
		AcademicYear:  stringAttr(doc.Fields, "academicYear", ""),
	}
}

// Coercion helpers. These are the single place where the store's loose
// typing is absorbed; derivations never parse raw fields themselves.

func stringAttr(fields map[string]interface{}, key, def string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		if s == "" {
			return def
		}
		return s
	}
	return def
}

// numberAttr coerces a numeric-like field to a number; non-numeric and
// absent values count as zero.
func numberAttr(fields map[string]interface{}, key string) float64 {
	return coerceNumber(fields[key])
}

func coerceNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func intAttr(fields map[string]interface{}, key string) int64 {
	return int64(coerceNumber(fields[key]))
}

// recordsAttr pulls a studentID -> string map (attendance statuses, scores).
// Non-string values are stringified through the numeric coercion so a score
// stored as a number still counts as graded.
func recordsAttr(fields map[string]interface{}, key string) map[string]string {
	out := make(map[string]string)
	raw, ok := fields[key].(map[string]interface{})
	if !ok {
		return out
	}
	for k, v := range raw {
		switch s := v.(type) {
		case string:
			out[k] = s
		case nil:
			out[k] = ""
		default:
			out[k] = strconv.FormatFloat(coerceNumber(v), 'f', -1, 64)
		}
	}
	return out
}
