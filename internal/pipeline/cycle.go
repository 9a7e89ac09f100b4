package pipeline

import (
	"time"

	"JoinUsMaybe-backend/internal/model"
)

// Cycle identifies one recruitment season by year and semester.
type Cycle struct {
	Year     int    `json:"year"`
	Semester string `json:"semester"`
}

// CurrentCycle resolves the recruitment cycle active at t.
//
// February through August recruit for the FALL semester of the same year.
// September through January recruit ahead for SPRING of the following year,
// so the cycle year is the calendar year plus one.
func CurrentCycle(t time.Time) Cycle {
	month := int(t.Month()) - 1 // 0 = January
	if month >= 1 && month <= 7 {
		return Cycle{Year: t.Year(), Semester: model.SemesterFall}
	}
	return Cycle{Year: t.Year() + 1, Semester: model.SemesterSpring}
}

// Matches reports whether the application belongs to this cycle.
func (c Cycle) Matches(app model.Application) bool {
	return app.Year == c.Year && app.Semester == c.Semester
}

// FindCurrentApplication returns the first application in list order that
// belongs to the cycle active at t, or false when there is none.
func FindCurrentApplication(apps []model.Application, t time.Time) (*model.Application, bool) {
	cycle := CurrentCycle(t)
	for i := range apps {
		if cycle.Matches(apps[i]) {
			return &apps[i], true
		}
	}
	return nil, false
}
