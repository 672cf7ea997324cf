package models

import "time"

// Audit actions.
const (
	ActionCipher         = "CIPHER"
	ActionTrace          = "TRACE"
	ActionHelper         = "HELPER"
	ActionVectorGenerate = "VECTOR_GENERATE"
	ActionVectorValidate = "VECTOR_VALIDATE"
	ActionLogin          = "LOGIN"
)

// AuditLog records one API call. Keys and texts are never stored.
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Subject   *string   `gorm:"size:255" json:"subject,omitempty"`
	Action    string    `gorm:"not null;index" json:"action"`
	Algorithm string    `gorm:"size:32" json:"algorithm,omitempty"`
	Success   bool      `gorm:"not null" json:"success"`
	Message   string    `json:"message,omitempty"`
	Metadata  JSONB     `gorm:"type:jsonb;default:'{}'::jsonb" json:"metadata"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// Algorithm is a catalogue row describing a supported cipher.
type Algorithm struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `json:"description"`
	Params      JSONB     `gorm:"type:jsonb;not null;default:'[]'::jsonb" json:"params"`
	Traceable   bool      `gorm:"not null;default:false" json:"traceable"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Vector is one generated known-answer record.
type Vector struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	BatchID   string    `gorm:"type:uuid;index;not null" json:"batch_id"`
	Algorithm string    `gorm:"not null" json:"algorithm"`
	TestMode  string    `gorm:"not null" json:"test_mode"`
	Direction string    `gorm:"not null" json:"direction"` // ENCRYPT or DECRYPT
	Count     int       `gorm:"not null" json:"count"`
	KeyHex    string    `gorm:"not null" json:"key_hex"`
	InputHex  string    `gorm:"not null" json:"input_hex"`
	OutputHex string    `json:"output_hex"`
	CreatedAt time.Time `json:"created_at"`
}

func (Vector) TableName() string { return "vectors" }
