package generator

import "strings"

const (
	SignaturePhysical = "PHYSICAL"
	SignatureDigital  = "DIGITAL"

	// DefaultThematicArea is the STPS thematic area assumed when neither
	// the roster nor the certificate names one.
	DefaultThematicArea = "6000 Seguridad"
)

// EnumeratePairs expands a certificate into its rendering units, in roster
// order. A certificate without course associations yields exactly one pair
// per trainee against the implied single course; otherwise a trainee with
// a course-of-interest label matching an association renders only against
// that association, and every other trainee renders against all of them.
func EnumeratePairs(cert Certificate) []Pair {
	var pairs []Pair
	for _, trainee := range cert.Trainees {
		pairs = append(pairs, PairsForTrainee(cert, trainee)...)
	}
	return pairs
}

// PairsForTrainee applies the association-selection rules for one trainee.
func PairsForTrainee(cert Certificate, trainee Trainee) []Pair {
	if len(cert.Courses) == 0 {
		implied := CourseAssociation{
			Name:     cert.CourseName,
			Duration: cert.CourseDuration,
		}
		return []Pair{{Trainee: trainee, Association: implied, Implied: true}}
	}

	// Matching is exact on the resolved display name. Known to be fragile
	// under course renames; kept deliberately.
	if label := strings.TrimSpace(trainee.CourseOfInterest); label != "" {
		for _, assoc := range cert.Courses {
			if resolveCourseName(cert, assoc) == label {
				return []Pair{{Trainee: trainee, Association: assoc}}
			}
		}
		// Unmatched label degrades to the no-label behavior.
	}

	pairs := make([]Pair, 0, len(cert.Courses))
	for _, assoc := range cert.Courses {
		pairs = append(pairs, Pair{Trainee: trainee, Association: assoc})
	}
	return pairs
}

// ResolveEffective computes the per-pair view the composer renders from.
// Every precedence-sensitive field is resolved exactly once by a dedicated
// function and never reassigned afterward.
func ResolveEffective(cert Certificate, pair Pair) EffectiveView {
	ov := pair.Trainee.Overrides
	start := firstNonEmpty(ov.StartDate, pair.Association.StartDate)
	end := firstNonEmpty(ov.EndDate, pair.Association.EndDate)

	return EffectiveView{
		CourseName:          resolveCourseName(cert, pair.Association),
		Duration:            firstNonEmpty(pair.Association.Duration, cert.CourseDuration),
		Period:              resolvePeriod(cert, start, end),
		StartDate:           start,
		EndDate:             end,
		CourseID:            pair.Association.CourseID,
		SignatureType:       resolveSignatureType(ov.SignatureType, cert.RosterSignatureType, cert.SignatureType),
		ThematicArea:        resolveThematicArea(ov.ThematicArea, cert.ThematicArea, cert.RosterThematicArea),
		TrainerName:         firstNonEmpty(ov.TrainerName, cert.TrainerName),
		TrainerRegistration: cert.TrainerRegistration,
		LegalRep:            firstNonEmpty(ov.LegalRep, cert.LegalRep),
		WorkersRep:          firstNonEmpty(ov.WorkersRep, cert.WorkersRep),
		CompanyName:         cert.CompanyName,
		CompanyRFC:          cert.CompanyRFC,
	}
}

func resolveCourseName(cert Certificate, assoc CourseAssociation) string {
	return firstNonEmpty(assoc.Name, cert.CourseName)
}

func resolvePeriod(cert Certificate, start, end string) string {
	if period := FormatPeriod(start, end); period != "" {
		return period
	}
	return cert.CoursePeriod
}

// resolveSignatureType: trainee override > roster level > certificate
// level > PHYSICAL.
func resolveSignatureType(override, roster, cert string) string {
	for _, v := range []string{override, roster, cert} {
		if s := strings.ToUpper(strings.TrimSpace(v)); s != "" {
			return s
		}
	}
	return SignaturePhysical
}

// resolveThematicArea: trainee override > certificate level > roster
// level > default.
func resolveThematicArea(override, cert, roster string) string {
	for _, v := range []string{override, cert, roster} {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return DefaultThematicArea
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
