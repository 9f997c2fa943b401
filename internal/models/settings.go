// ABOUTME: AppSettings singleton record and partial-patch application.
// ABOUTME: ManualNextDay is nullable; nil means automatic scheduling.
package models

// Weight units.
const (
	UnitsKg = "kg"
	UnitsLb = "lb"
)

// AppSettings is the single shared configuration record. It is always
// passed into scheduling functions explicitly; there is no global.
type AppSettings struct {
	Units               string `json:"units"` // "kg" or "lb"
	StepGoal            int    `json:"stepGoal"`
	CycleStartDay       int    `json:"cycleStartDay"` // 1-7, used when no history exists
	ManualNextDay       *int   `json:"manualNextDay"` // nil = automatic
	IncludeDay4Recovery bool   `json:"includeDay4Recovery"`
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() AppSettings {
	return AppSettings{
		Units:               UnitsKg,
		StepGoal:            10000,
		CycleStartDay:       1,
		ManualNextDay:       nil,
		IncludeDay4Recovery: true,
	}
}

// SettingsPatch is a partial update. Nil fields are left unchanged.
// ClearManualNextDay resets the override to automatic and takes
// precedence over ManualNextDay.
type SettingsPatch struct {
	Units               *string
	StepGoal            *int
	CycleStartDay       *int
	ManualNextDay       *int
	ClearManualNextDay  bool
	IncludeDay4Recovery *bool
}

// Apply returns the settings with the patch applied field-wise.
func (p SettingsPatch) Apply(s AppSettings) AppSettings {
	if p.Units != nil {
		s.Units = *p.Units
	}
	if p.StepGoal != nil {
		s.StepGoal = *p.StepGoal
	}
	if p.CycleStartDay != nil {
		s.CycleStartDay = *p.CycleStartDay
	}
	if p.ClearManualNextDay {
		s.ManualNextDay = nil
	} else if p.ManualNextDay != nil {
		day := *p.ManualNextDay
		s.ManualNextDay = &day
	}
	if p.IncludeDay4Recovery != nil {
		s.IncludeDay4Recovery = *p.IncludeDay4Recovery
	}
	return s
}
