package generator

// Package generator produces DC-3 constancia documents: it reconciles a
// certificate record, its course associations and per-trainee overrides
// into one rendered PDF per (trainee, course) pair, and checks proposed
// course windows for enrollment conflicts.

// Certificate is the canonical generation input. The storage layer maps
// its persisted record into this shape exactly once at the boundary;
// nothing in this package probes alternate field names.
type Certificate struct {
	ID                  uint
	Folio               string
	CompanyName         string
	CompanyRFC          string
	TrainerName         string
	TrainerRegistration string
	LegalRep            string
	WorkersRep          string
	ThematicArea        string
	SignatureType       string
	SignatureFileID     string

	// Single-course fields, used when Courses is empty.
	CourseName     string
	CourseDuration string
	CoursePeriod   string

	// Roster-level values that may shadow the certificate columns.
	RosterThematicArea  string
	RosterSignatureType string

	Trainees []Trainee
	Courses  []CourseAssociation
}

// Trainee is one worker on the certificate roster.
type Trainee struct {
	FullName         string
	CURP             string
	JobTitle         string
	Occupation       string
	CourseOfInterest string
	Overrides        Overrides
}

// Overrides carry per-trainee replacements for certificate-level fields.
// Empty strings mean "no override".
type Overrides struct {
	TrainerName   string
	LegalRep      string
	WorkersRep    string
	StartDate     string
	EndDate       string
	SignatureType string
	ThematicArea  string
}

// CourseAssociation is one certificate-to-course edge with its validity
// window. Dates are YYYY-MM-DD strings.
type CourseAssociation struct {
	ID        uint
	CourseID  uint
	Name      string
	Duration  string
	StartDate string
	EndDate   string
}

// Pair is one (trainee, course association) rendering unit.
type Pair struct {
	Trainee     Trainee
	Association CourseAssociation
	// Implied marks the pseudo-association synthesized from the
	// certificate's own course fields when it has no associations.
	Implied bool
}

// EffectiveView is the fully resolved per-pair record the composer
// renders from. It is recomputed on every generation request and never
// persisted.
type EffectiveView struct {
	CourseName          string
	Duration            string
	Period              string
	StartDate           string
	EndDate             string
	CourseID            uint
	SignatureType       string
	ThematicArea        string
	TrainerName         string
	TrainerRegistration string
	LegalRep            string
	WorkersRep          string
	CompanyName         string
	CompanyRFC          string
}
