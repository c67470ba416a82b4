package models

import "gorm.io/gorm"

// Trainer is an agente capacitador authorized to sign DC-3 constancias
type Trainer struct {
	gorm.Model
	FullName        string `json:"full_name" gorm:"not null"`
	Registration    string `json:"registration"` // STPS registration code
	Email           string `json:"email"`
	SignatureFileID string `json:"signature_file_id"` // Google Drive file id of the scanned signature
	IsDeleted       bool   `gorm:"default:false"`
}
