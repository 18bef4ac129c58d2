// ABOUTME: PersonalInfo and RingConfiguration models from the Oura API.
// ABOUTME: Optional fields are pointers; nil means the API omitted the value.
package models

import "time"

// PersonalInfo holds the account holder's profile data.
// There is at most one row; it is replaced wholesale on every sync.
type PersonalInfo struct {
	PersonalInfoID string
	Age            *int
	Weight         *float64
	Height         *float64
	BiologicalSex  *string
	Email          *string
}

// RingConfiguration describes one physical ring tied to the account.
type RingConfiguration struct {
	RingID          string
	PersonalInfoID  string
	Color           *string
	Design          *string
	FirmwareVersion *string
	HardwareType    *string
	SetUpAt         *time.Time
	Size            *string
}
