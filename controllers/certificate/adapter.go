package certificateController

import (
	"dc3/generator"
	certModels "dc3/models/certificate"
)

// toGeneratorCertificate maps the persisted record into the generator's
// canonical input. This is the only place the storage shape is translated;
// everything past this boundary works on one explicit type.
func toGeneratorCertificate(cert certModels.Certificate, roster certModels.Roster) generator.Certificate {
	out := generator.Certificate{
		ID:                  cert.ID,
		Folio:               cert.Folio,
		CompanyName:         cert.CompanyName,
		CompanyRFC:          cert.CompanyRFC,
		TrainerName:         cert.TrainerName,
		TrainerRegistration: cert.TrainerRegistration,
		LegalRep:            cert.LegalRep,
		WorkersRep:          cert.WorkersRep,
		ThematicArea:        cert.ThematicArea,
		SignatureType:       cert.SignatureType,
		SignatureFileID:     cert.SignatureFileID,
		CourseName:          cert.CourseName,
		CourseDuration:      cert.CourseDuration,
		CoursePeriod:        cert.CoursePeriod,
		RosterThematicArea:  roster.ThematicArea,
		RosterSignatureType: roster.SignatureType,
	}

	for _, t := range roster.Trainees {
		trainee := generator.Trainee{
			FullName:         t.FullName,
			CURP:             t.CURP,
			JobTitle:         t.JobTitle,
			Occupation:       t.Occupation,
			CourseOfInterest: t.CourseOfInterest,
		}
		if t.Overrides != nil {
			trainee.Overrides = generator.Overrides{
				TrainerName:   t.Overrides.TrainerName,
				LegalRep:      t.Overrides.LegalRep,
				WorkersRep:    t.Overrides.WorkersRep,
				StartDate:     t.Overrides.StartDate,
				EndDate:       t.Overrides.EndDate,
				SignatureType: t.Overrides.SignatureType,
				ThematicArea:  t.Overrides.ThematicArea,
			}
		}
		out.Trainees = append(out.Trainees, trainee)
	}

	for _, assoc := range cert.Courses {
		out.Courses = append(out.Courses, generator.CourseAssociation{
			ID:        assoc.ID,
			CourseID:  assoc.CourseID,
			Name:      assoc.Course.Name,
			Duration:  assoc.Course.Duration,
			StartDate: assoc.StartDate,
			EndDate:   assoc.EndDate,
		})
	}

	return out
}
