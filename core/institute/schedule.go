package institute

import (
	"context"
	"errors"
	"sort"

	"github.com/digitalforgex/institute/core"
)

var ErrSessionNotFound = errors.New("schedule session not found")

var weekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type NewSession struct {
	Course    string `json:"course" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Teacher   string `json:"teacher"`
	Day       string `json:"day" validate:"required,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	StartTime string `json:"startTime" validate:"required,timeofday"`
	EndTime   string `json:"endTime" validate:"required,timeofday"`
	Room      string `json:"room"`
}

func (ns NewSession) Validate() error {
	return core.Validate.Struct(ns)
}

func (svc *Service) CreateSession(ctx context.Context, ns NewSession) (ScheduleSession, error) {
	fields := map[string]interface{}{
		"course":    core.CleanString(ns.Course),
		"subject":   core.CleanString(ns.Subject),
		"teacher":   core.CleanString(ns.Teacher),
		"day":       ns.Day,
		"startTime": ns.StartTime,
		"endTime":   ns.EndTime,
		"room":      ns.Room,
	}
	id, err := svc.store.Add(ctx, ColSchedule, fields)
	if err != nil {
		return ScheduleSession{}, err
	}
	return SessionFromDocument(core.Document{ID: id, Fields: fields}), nil
}

// WeekSchedule returns the timetable keyed by day, each day chronological.
func (svc *Service) WeekSchedule(ctx context.Context) (map[string][]ScheduleSession, error) {
	sessions, err := svc.loadSessions(ctx)
	if err != nil {
		return nil, err
	}
	week := make(map[string][]ScheduleSession, len(weekDays))
	for _, day := range weekDays {
		week[day] = []ScheduleSession{}
	}
	for _, s := range sessions {
		week[s.Day] = append(week[s.Day], s)
	}
	for _, day := range weekDays {
		sortSessionsByStartTime(week[day])
	}
	return week, nil
}

// QuerySessions returns every session ordered by weekday then start time.
func (svc *Service) QuerySessions(ctx context.Context) ([]ScheduleSession, error) {
	sessions, err := svc.loadSessions(ctx)
	if err != nil {
		return nil, err
	}
	dayRank := make(map[string]int, len(weekDays))
	for i, day := range weekDays {
		dayRank[day] = i
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		if dayRank[sessions[i].Day] != dayRank[sessions[j].Day] {
			return dayRank[sessions[i].Day] < dayRank[sessions[j].Day]
		}
		return sessions[i].StartTime < sessions[j].StartTime
	})
	return sessions, nil
}

func (svc *Service) DeleteSession(ctx context.Context, id string) error {
	err := svc.store.Delete(ctx, ColSchedule, id)
	if errors.Is(err, core.ErrDocumentNotFound) {
		return ErrSessionNotFound
	}
	return err
}
