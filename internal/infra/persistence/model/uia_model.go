package model

import "time"

// AcceptedTermsModel mirrors the 'accepted_terms' table. The composite key makes
// re-accepting the same policy version a no-op.
type AcceptedTermsModel struct {
	Policy     string    `gorm:"type:varchar(255);primaryKey"`
	UserID     string    `gorm:"type:varchar(255);primaryKey"`
	Version    string    `gorm:"type:varchar(64);primaryKey"`
	AcceptedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AcceptedTermsModel) TableName() string {
	return "accepted_terms"
}

// UsernameModel mirrors the 'username_reservations' table.
type UsernameModel struct {
	Username  string `gorm:"type:varchar(255);primaryKey"`
	Status    string `gorm:"type:varchar(16);not null"`
	Owner     string `gorm:"type:varchar(320);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UsernameModel) TableName() string {
	return "username_reservations"
}

// RegistrationTokenModel mirrors the 'registration_tokens' table.
type RegistrationTokenModel struct {
	Token     string `gorm:"type:varchar(64);primaryKey"`
	CreatedBy string `gorm:"type:varchar(255);not null"`
	Slots     int    `gorm:"not null"`
	CreatedAt time.Time
	ExpiresAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrationTokenModel) TableName() string {
	return "registration_tokens"
}

// BadWordModel mirrors the 'bad_words' table.
type BadWordModel struct {
	Word string `gorm:"type:varchar(255);primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (BadWordModel) TableName() string {
	return "bad_words"
}
