package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"`
	Duration     string `json:"duration"`      // e.g. "8 horas"
	ThematicArea string `json:"thematic_area"` // STPS thematic area, e.g. "6000 Seguridad"
	IsDeleted    bool   `gorm:"default:false"`
}
