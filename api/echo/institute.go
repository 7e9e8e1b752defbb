package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/digitalforgex/institute/core"
	"github.com/digitalforgex/institute/core/institute"
)

type instituteApi struct {
	svc *institute.Service
}

func registerInstituteAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *institute.Service) {
	api := instituteApi{svc: svc}

	g.POST("/login/admin", api.adminLogin)
	g.POST("/login/student", api.studentLogin)

	admin := []echo.MiddlewareFunc{jwt, adminMiddleware()}

	g.GET("/dashboard", api.dashboard, admin...)

	g.GET("/students", api.studentQuery, admin...)
	g.POST("/students", api.studentCreate, admin...)
	g.DELETE("/students/:id", api.studentDelete, admin...)
	g.GET("/students/:id/portal", api.studentPortal, jwt, portalMiddleware())

	g.GET("/fees", api.feeQuery, admin...)
	g.POST("/fees", api.feeCreate, admin...)
	g.PATCH("/fees/:id/status", api.feeSetStatus, admin...)
	g.DELETE("/fees/:id", api.feeDelete, admin...)

	g.GET("/attendance/sheet", api.attendanceSheet, admin...)
	g.PUT("/attendance/sheet", api.attendanceSave, admin...)

	g.GET("/exams", api.examQuery, admin...)
	g.POST("/exams", api.examCreate, admin...)
	g.DELETE("/exams/:id", api.examDelete, admin...)
	g.GET("/exams/:id/marks", api.gradeSheet, admin...)
	g.PUT("/exams/:id/marks", api.marksSave, admin...)

	g.GET("/notices", api.noticeQuery, admin...)
	g.POST("/notices", api.noticeCreate, admin...)
	g.DELETE("/notices/:id", api.noticeDelete, admin...)

	g.GET("/resources", api.resourceQuery, admin...)
	g.POST("/resources", api.resourceCreate, admin...)
	g.DELETE("/resources/:id", api.resourceDelete, admin...)

	g.GET("/staff", api.staffQuery, admin...)
	g.POST("/staff", api.staffCreate, admin...)
	g.DELETE("/staff/:id", api.staffDelete, admin...)

	g.GET("/inquiries", api.inquiryQuery, admin...)
	g.POST("/inquiries", api.inquiryCreate, admin...)
	g.PATCH("/inquiries/:id/status", api.inquirySetStatus, admin...)
	g.DELETE("/inquiries/:id", api.inquiryDelete, admin...)

	g.GET("/schedule", api.sessionQuery, admin...)
	g.GET("/schedule/week", api.weekSchedule, admin...)
	g.POST("/schedule", api.sessionCreate, admin...)
	g.DELETE("/schedule/:id", api.sessionDelete, admin...)

	g.GET("/settings", api.settingsGet, admin...)
	g.PUT("/settings", api.settingsUpdate, admin...)
}

type (
	AdminLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	StudentLoginRequest struct {
		Phone string `json:"phone" validate:"required"`
	}

	LoginResponse struct {
		Token   string             `json:"token"`
		Student *institute.Student `json:"student,omitempty"`
	}

	StatusRequest struct {
		Status string `json:"status" validate:"required"`
	}
)

func (r AdminLoginRequest) Validate() error   { return core.Validate.Struct(r) }
func (r StudentLoginRequest) Validate() error { return core.Validate.Struct(r) }
func (r StatusRequest) Validate() error       { return core.Validate.Struct(r) }

func (api *instituteApi) adminLogin(ctx echo.Context) error {
	data := new(AdminLoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := authenticateAdmin(data.Email, data.Password)
	if err != nil {
		return err
	}
	token, err := generateToken(claims)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (api *instituteApi) studentLogin(ctx echo.Context) error {
	data := new(StudentLoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	student, err := api.svc.GetStudentByPhone(ctx.Request().Context(), data.Phone)
	if err != nil {
		if err == institute.ErrStudentNotFound {
			return errAuthenticationFailed
		}
		return err
	}
	token, err := generateToken(studentClaims(student))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Student: &student})
}

func (api *instituteApi) dashboard(ctx echo.Context) error {
	summary := api.svc.DashboardSummary(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, summary)
}

func (api *instituteApi) studentQuery(ctx echo.Context) error {
	students, err := api.svc.QueryStudents(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *instituteApi) studentCreate(ctx echo.Context) error {
	data := new(institute.NewStudent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	student, err := api.svc.CreateStudent(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, student)
}

func (api *instituteApi) studentDelete(ctx echo.Context) error {
	if err := api.svc.DeleteStudent(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *instituteApi) studentPortal(ctx echo.Context) error {
	composite, err := api.svc.StudentComposite(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, composite)
}

func (api *instituteApi) feeQuery(ctx echo.Context) error {
	fees, err := api.svc.QueryFees(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, fees)
}

func (api *instituteApi) feeCreate(ctx echo.Context) error {
	data := new(institute.NewFee)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	fee, err := api.svc.CreateFee(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, fee)
}

func (api *instituteApi) feeSetStatus(ctx echo.Context) error {
	data := new(StatusRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.svc.SetFeeStatus(ctx.Request().Context(), ctx.Param("id"), data.Status); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *instituteApi) feeDelete(ctx echo.Context) error {
	if err := api.svc.DeleteFee(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *instituteApi) attendanceSheet(ctx echo.Context) error {
	date := ctx.QueryParam("date")
	class := ctx.QueryParam("class")
	if date == "" || class == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date and class query parameters are required")
	}

	sheet, err := api.svc.Sheet(ctx.Request().Context(), date, class)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sheet)
}

func (api *instituteApi) attendanceSave(ctx echo.Context) error {
	data := new(institute.SaveAttendance)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	record, err := api.svc.Save(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, record)
}

func (api *instituteApi) examQuery(ctx echo.Context) error {
	exams, err := api.svc.QueryExams(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, exams)
}

func (api *instituteApi) examCreate(ctx echo.Context) error {
	data := new(institute.NewExam)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	exam, err := api.svc.CreateExam(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, exam)
}

func (api *instituteApi) examDelete(ctx echo.Context) error {
	if err := api.svc.DeleteExam(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GradeSheetResponse pairs the exam with its roster so the grading screen
// needs a single round trip.
type GradeSheetResponse struct {
	Exam    institute.Exam         `json:"exam"`
	Entries []institute.GradeEntry `json:"entries"`
}

func (api *instituteApi) gradeSheet(ctx echo.Context) error {
	exam, entries, err := api.svc.GradeSheet(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, GradeSheetResponse{Exam: exam, Entries: entries})
}

func (api *instituteApi) marksSave(ctx echo.Context) error {
	data := new(institute.SaveMarks)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	record, err := api.svc.SaveMarksFor(ctx.Request().Context(), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, record)
}

func (api *instituteApi) noticeQuery(ctx echo.Context) error {
	notices, err := api.svc.QueryNotices(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, notices)
}

func (api *instituteApi) noticeCreate(ctx echo.Context) error {
	data := new(institute.NewNotice)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	notice, err := api.svc.CreateNotice(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, notice)
}

func (api *instituteApi) noticeDelete(ctx echo.Context) error {
	if err := api.svc.DeleteNotice(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *instituteApi) resourceQuery(ctx echo.Context) error {
	resources, err := api.svc.QueryResources(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resources)
}

func (api *instituteApi) resourceCreate(ctx echo.Context) error {
	data := new(institute.NewResource)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	resource, err := api.svc.CreateResource(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, resource)
}

func (api *instituteApi) resourceDelete(ctx echo.Context) error {
	if err := api.svc.DeleteResource(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *instituteApi) staffQuery(ctx echo.Context) error {
	staff, err := api.svc.QueryStaff(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, staff)
}

func (api *instituteApi) staffCreate(ctx echo.Context) error {
	data := new(institute.NewStaff)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	member, err := api.svc.CreateStaff(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, member)
}

func (api *instituteApi) staffDelete(ctx echo.Context) error {
	if err := api.svc.DeleteStaff(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *instituteApi) inquiryQuery(ctx echo.Context) error {
	inquiries, err := api.svc.QueryInquiries(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, inquiries)
}

func (api *instituteApi) inquiryCreate(ctx echo.Context) error {
	data := new(institute.NewInquiry)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	inquiry, err := api.svc.CreateInquiry(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, inquiry)
}

func (api *instituteApi) inquirySetStatus(ctx echo.Context) error {
	data := new(StatusRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.svc.SetInquiryStatus(ctx.Request().Context(), ctx.Param("id"), data.Status); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *instituteApi) inquiryDelete(ctx echo.Context) error {
	if err := api.svc.DeleteInquiry(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *instituteApi) sessionQuery(ctx echo.Context) error {
	sessions, err := api.svc.QuerySessions(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sessions)
}

func (api *instituteApi) weekSchedule(ctx echo.Context) error {
	week, err := api.svc.WeekSchedule(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, week)
}

func (api *instituteApi) sessionCreate(ctx echo.Context) error {
	data := new(institute.NewSession)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	session, err := api.svc.CreateSession(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, session)
}

func (api *instituteApi) sessionDelete(ctx echo.Context) error {
	if err := api.svc.DeleteSession(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *instituteApi) settingsGet(ctx echo.Context) error {
	settings, err := api.svc.GetSettings(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, settings)
}

func (api *instituteApi) settingsUpdate(ctx echo.Context) error {
	data := new(institute.SaveSettings)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	settings, err := api.svc.UpdateSettings(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, settings)
}
