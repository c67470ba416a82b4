package models

import "gorm.io/gorm"

// Company is an empresa registered to issue DC-3 constancias for its workers
type Company struct {
	gorm.Model
	Name           string `json:"name" gorm:"not null"`
	RFC            string `json:"rfc" gorm:"uniqueIndex;not null"` // company tax id
	LegalRep       string `json:"legal_rep"`                       // representante legal
	WorkersRep     string `json:"workers_rep"`                     // representante de los trabajadores
	Address        string `json:"address"`
	ContactEmail   string `json:"contact_email"`
	LogoPath       string `json:"logo_path"`
	IsDeleted      bool   `gorm:"default:false"`
}
