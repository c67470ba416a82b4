package certificate

import (
	"encoding/json"

	"dc3/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Trainee is one cursante listed in a certificate roster. Rosters come in
// from an uploaded spreadsheet or the manual single-entry form and are kept
// as JSON on the certificate row.
type Trainee struct {
	FullName         string     `json:"full_name"`
	CURP             string     `json:"curp"`
	JobTitle         string     `json:"job_title"`
	Occupation       string     `json:"occupation"` // specific-occupation catalog label
	CourseOfInterest string     `json:"course_of_interest,omitempty"`
	Overrides        *Overrides `json:"certificate_overrides,omitempty"`
}

// Overrides are per-trainee replacements for certificate-level fields.
// A non-empty value wins over the certificate's own value at render time.
type Overrides struct {
	TrainerName   string `json:"trainer_name,omitempty"`
	LegalRep      string `json:"legal_rep,omitempty"`
	WorkersRep    string `json:"workers_rep,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	SignatureType string `json:"signature_type,omitempty"`
	ThematicArea  string `json:"thematic_area,omitempty"`
}

// Roster mirrors the xlsx_object shape: the trainee list plus optional
// roster-level fields that may override the certificate columns.
type Roster struct {
	Trainees      []Trainee `json:"cursantes"`
	ThematicArea  string    `json:"thematic_area,omitempty"`
	SignatureType string    `json:"signature_type,omitempty"`
}

type Certificate struct {
	gorm.Model
	Folio     string `json:"folio" gorm:"uniqueIndex"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CompanyID *uint  `json:"company_id" gorm:"index"`

	CompanyName string `json:"company_name"`
	CompanyRFC  string `json:"company_rfc"`

	TrainerName         string `json:"trainer_name"`
	TrainerRegistration string `json:"trainer_registration"`
	LegalRep            string `json:"legal_rep"`
	WorkersRep          string `json:"workers_rep"`

	ThematicArea    string `json:"thematic_area"`
	SignatureType   string `json:"signature_type" gorm:"default:'PHYSICAL'"` // PHYSICAL, DIGITAL
	SignatureFileID string `json:"signature_file_id"`

	Status string `json:"status" gorm:"default:'PENDING'"` // PENDING, APPROVED

	// Legacy single-course columns, used when the certificate carries no
	// course associations.
	CourseName     string `json:"course_name"`
	CourseDuration string `json:"course_duration"`
	CoursePeriod   string `json:"course_period"`

	Roster  datatypes.JSON     `json:"xlsx_object"`
	Courses []CertificateCourse `json:"certificate_courses" gorm:"foreignKey:CertificateID"`

	IsDeleted bool `gorm:"default:false"`
}

// CertificateCourse binds a certificate to a course with a concrete
// validity window. Dates are stored as YYYY-MM-DD strings so window
// comparisons stay lexical.
type CertificateCourse struct {
	gorm.Model
	CertificateID uint   `json:"certificate_id" gorm:"index;not null"`
	CourseID      uint   `json:"course_id" gorm:"index"`
	StartDate     string `json:"start_date" gorm:"type:date"`
	EndDate       string `json:"end_date" gorm:"type:date"`

	Course models.Course `json:"course" gorm:"foreignKey:CourseID"`
}

// ParseRoster decodes the stored roster JSON. An empty column yields an
// empty roster, not an error.
func (c *Certificate) ParseRoster() (Roster, error) {
	var roster Roster
	if len(c.Roster) == 0 {
		return roster, nil
	}
	if err := json.Unmarshal(c.Roster, &roster); err != nil {
		return Roster{}, err
	}
	return roster, nil
}

// SetRoster encodes and stores the roster JSON.
func (c *Certificate) SetRoster(roster Roster) error {
	data, err := json.Marshal(roster)
	if err != nil {
		return err
	}
	c.Roster = datatypes.JSON(data)
	return nil
}
