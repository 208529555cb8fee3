package timesheet

// Status is the effective day-type for one (employee, date) pair.
type Status string

const (
	StatusWork    Status = "work"
	StatusLeave   Status = "leave"
	StatusOff     Status = "off"
	StatusAbsent  Status = "absent"
	StatusHoliday Status = "holiday"
)

// statusInfo is the single lookup table owned by the domain: default hours
// credited when no explicit entry exists for a non-work day, plus the
// display label the UI layer renders.
type statusInfo struct {
	defaultHours float64
	label        string
}

var statusTable = map[Status]statusInfo{
	StatusWork:    {defaultHours: 0, label: "Work"},
	StatusLeave:   {defaultHours: 8, label: "Leave"},
	StatusOff:     {defaultHours: 8, label: "Off"},
	StatusAbsent:  {defaultHours: 0, label: "Absent"},
	StatusHoliday: {defaultHours: 8, label: "Holiday"},
}

func (s Status) Valid() bool {
	_, ok := statusTable[s]
	return ok
}

// DefaultHours returns the hours credited for a day carrying this status
// when no explicit timesheet entry exists.
func (s Status) DefaultHours() float64 {
	return statusTable[s].defaultHours
}

func (s Status) Label() string {
	if info, ok := statusTable[s]; ok {
		return info.label
	}
	return string(s)
}
