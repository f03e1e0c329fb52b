package entity

import "time"

// SyncFrequency enumerates how often a source should be refreshed.
type SyncFrequency string

const (
	SyncManual  SyncFrequency = "manual"
	SyncDaily   SyncFrequency = "daily"
	SyncWeekly  SyncFrequency = "weekly"
	SyncMonthly SyncFrequency = "monthly"
)

// Valid reports whether f is one of the known frequencies.
func (f SyncFrequency) Valid() bool {
	switch f {
	case SyncManual, SyncDaily, SyncWeekly, SyncMonthly:
		return true
	}
	return false
}

// Source represents a connected GA4 property (analytics_sources table).
// A source is visible only to its owner.
type Source struct {
	ID            string        `db:"id" json:"id"`
	UserID        string        `db:"user_id" json:"userId"`
	Name          string        `db:"name" json:"name"`
	PropertyID    string        `db:"property_id" json:"propertyId"`
	ViewID        *string       `db:"view_id" json:"viewId,omitempty"`
	SyncFrequency SyncFrequency `db:"sync_frequency" json:"syncFrequency"`
	Credentials   Credentials   `db:"credentials" json:"-"`
	LastSynced    *time.Time    `db:"last_synced" json:"lastSynced,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
}

// SourceInsert is the payload for creating a source.
type SourceInsert struct {
	Name          string        `json:"name"`
	PropertyID    string        `json:"propertyId"`
	ViewID        *string       `json:"viewId,omitempty"`
	SyncFrequency SyncFrequency `json:"syncFrequency"`
	Credentials   Credentials   `json:"credentials"`
}
