package attendance

import (
	"fmt"
	"math"
	"time"
)

type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusOvertime   Status = "overtime"
	StatusEarlyLeave Status = "early-leave"
	StatusHalfDay    Status = "half-day"
	StatusAbsent     Status = "absent"
)

type BreakType string

const (
	BreakLunch  BreakType = "lunch"
	BreakTea    BreakType = "tea"
	BreakDinner BreakType = "dinner"
	BreakOther  BreakType = "other"
)

func ParseBreakType(s string) (BreakType, error) {
	switch BreakType(s) {
	case BreakLunch, BreakTea, BreakDinner, BreakOther:
		return BreakType(s), nil
	}
	return "", fmt.Errorf("%w: unknown break type %q", ErrInvalidInput, s)
}

// GeoPoint is a descriptive check-in/out location. It is never validated
// against a geofence.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// BreakInterval is one entry in a day's ordered break sequence. EndTime and
// DurationMinutes stay nil while the break is open; at most one interval
// per day is open at a time.
type BreakInterval struct {
	Type            BreakType  `json:"type"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationMinutes *int       `json:"duration,omitempty"`
}

// Day is one employee's attendance record for a single calendar date. The
// JSON field names are the wire contract other collaborators rely on.
type Day struct {
	ID                string          `json:"id,omitempty"`
	EmployeeID        string          `json:"employeeId,omitempty"`
	CompanyID         string          `json:"-"`
	Date              time.Time       `json:"date"`
	LoginTime         *time.Time      `json:"loginTime,omitempty"`
	LogoutTime        *time.Time      `json:"logoutTime,omitempty"`
	IsPresent         bool            `json:"isPresent"`
	Status            Status          `json:"status"`
	LateMinutes       int             `json:"lateMinutes"`
	EarlyLeaveMinutes *int            `json:"earlyLeaveMinutes,omitempty"`
	WorkLocation      string          `json:"workLocation,omitempty"`
	CheckInLocation   *GeoPoint       `json:"checkInLocation,omitempty"`
	CheckOutLocation  *GeoPoint       `json:"checkOutLocation,omitempty"`
	Breaks            []BreakInterval `json:"breaks"`
	TotalBreakMinutes int             `json:"totalBreakTime"`
	HoursWorked       *float64        `json:"hoursWorked,omitempty"`
	OvertimeHours     *float64        `json:"overtimeHours,omitempty"`
	CreatedAt         time.Time       `json:"-"`
	UpdatedAt         time.Time       `json:"-"`
}

// NewDay creates an empty record for the given calendar date, normalized to
// midnight. Records only come into existence on the first check-in.
func NewDay(employeeID, companyID string, date time.Time) Day {
	return Day{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Date:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
		Status:     StatusAbsent,
	}
}

// CheckIn records the start of the working day. A second check-in on an
// open record is rejected; a check-in after check-out reopens the day and
// resets everything the previous session recorded.
func (d *Day) CheckIn(now time.Time, shiftStart time.Time, location *GeoPoint, workLocation string) error {
	if d.LoginTime != nil && d.LogoutTime == nil {
		return ErrAlreadyCheckedIn
	}

	late := flooredMinutes(now.Sub(shiftStart))
	status := StatusPresent
	if late > 15 {
		status = StatusLate
	}

	login := now
	d.LoginTime = &login
	d.LogoutTime = nil
	d.IsPresent = true
	d.Status = status
	d.LateMinutes = late
	d.EarlyLeaveMinutes = nil
	d.WorkLocation = workLocation
	d.CheckInLocation = location
	d.CheckOutLocation = nil
	d.Breaks = nil
	d.TotalBreakMinutes = 0
	d.HoursWorked = nil
	d.OvertimeHours = nil
	return nil
}

// StartBreak opens a new break interval.
func (d *Day) StartBreak(now time.Time, breakType BreakType) error {
	if d.LoginTime == nil {
		return ErrNotCheckedIn
	}
	if d.LogoutTime != nil {
		return ErrAlreadyCheckedOut
	}
	if d.OpenBreak() != nil {
		return ErrBreakInProgress
	}

	d.Breaks = append(d.Breaks, BreakInterval{Type: breakType, StartTime: now})
	return nil
}

// EndBreak closes the open break interval and refreshes the break total.
func (d *Day) EndBreak(now time.Time) error {
	open := d.OpenBreak()
	if open == nil {
		return ErrNoOpenBreak
	}

	d.closeBreak(open, now)
	return nil
}

// CheckOut ends the working day, force-closing any open break first, and
// derives the day's final metrics and status.
func (d *Day) CheckOut(now time.Time, shiftEnd time.Time, standardShiftHours float64, location *GeoPoint) error {
	if d.LoginTime == nil {
		return ErrNotCheckedIn
	}
	if d.LogoutTime != nil {
		return ErrAlreadyCheckedOut
	}
	if !now.After(*d.LoginTime) {
		return fmt.Errorf("%w: check-out must be after check-in", ErrInvalidInput)
	}

	if open := d.OpenBreak(); open != nil {
		d.closeBreak(open, now)
	}

	workedMinutes := now.Sub(*d.LoginTime).Minutes() - float64(d.TotalBreakMinutes)
	hoursWorked := workedMinutes / 60
	overtime := hoursWorked - standardShiftHours
	if overtime < 0 {
		overtime = 0
	}
	early := flooredMinutes(shiftEnd.Sub(now))

	// Status precedence: overtime beats early-leave beats half-day; an
	// uneventful checkout keeps whatever check-in decided.
	switch {
	case overtime > 0.5:
		d.Status = StatusOvertime
	case early > 30:
		d.Status = StatusEarlyLeave
		d.EarlyLeaveMinutes = &early
	case hoursWorked < 4:
		d.Status = StatusHalfDay
	}

	logout := now
	d.LogoutTime = &logout
	d.CheckOutLocation = location

	hw := round2(hoursWorked)
	ot := round2(overtime)
	d.HoursWorked = &hw
	d.OvertimeHours = &ot
	return nil
}

// OpenBreak returns the break interval still missing an end time, if any.
func (d *Day) OpenBreak() *BreakInterval {
	for i := range d.Breaks {
		if d.Breaks[i].EndTime == nil {
			return &d.Breaks[i]
		}
	}
	return nil
}

func (d *Day) closeBreak(open *BreakInterval, now time.Time) {
	end := now
	duration := int(math.Round(now.Sub(open.StartTime).Minutes()))
	open.EndTime = &end
	open.DurationMinutes = &duration

	total := 0
	for _, b := range d.Breaks {
		if b.DurationMinutes != nil {
			total += *b.DurationMinutes
		}
	}
	d.TotalBreakMinutes = total
}

// SameDate reports whether the record belongs to the given calendar date.
// Comparison is by year/month/day, not 24-hour windows.
func (d *Day) SameDate(t time.Time) bool {
	y1, m1, d1 := d.Date.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func flooredMinutes(diff time.Duration) int {
	minutes := int(math.Floor(diff.Seconds() / 60))
	if minutes < 0 {
		return 0
	}
	return minutes
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
