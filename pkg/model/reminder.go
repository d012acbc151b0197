package model

import "time"

// Reminder rows are imported verbatim from upstream systems, so automatic
// timestamping is disabled: whatever timestamps arrive are the truth. The
// field tags switch off GORM's conventional time tracking, which would
// otherwise stamp these fields underneath the dispatcher's opt-out.
type Reminder struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Note      string    `gorm:"not null" json:"note"`
	RemindAt  time.Time
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (Reminder) TableName() string {
	return "reminders"
}

func (r *Reminder) EntityKey() string {
	return r.Note
}

// AutoTimestamps opts Reminder out of created-at/updated-at stamping.
func (*Reminder) AutoTimestamps() bool {
	return false
}
