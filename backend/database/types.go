package database

import "time"

type ReferralCode struct {
	Id          int64     `db:"id,omitempty"`
	Code        string    `db:"code"`
	Description string    `db:"description"`
	Active      bool      `db:"active"`
	Created     time.Time `db:"created"`
}
