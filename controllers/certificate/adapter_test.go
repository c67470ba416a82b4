package certificateController

import (
	"testing"

	certModels "dc3/models/certificate"
	certificateValidator "dc3/validators/certificate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGeneratorCertificate(t *testing.T) {
	cert := certModels.Certificate{
		Folio:         "DC3-ABC123",
		CompanyName:   "Aceros del Norte",
		CompanyRFC:    "ADN900101AAA",
		TrainerName:   "Laura Campos",
		SignatureType: "DIGITAL",
		Courses: []certModels.CertificateCourse{
			{
				CourseID:  7,
				StartDate: "2024-02-01",
				EndDate:   "2024-02-03",
			},
		},
	}
	cert.ID = 42
	cert.Courses[0].ID = 11
	cert.Courses[0].Course.Name = "Trabajos en altura"
	cert.Courses[0].Course.Duration = "8 horas"

	roster := certModels.Roster{
		ThematicArea: "2000 Produccion",
		Trainees: []certModels.Trainee{
			{
				FullName: "Juan Perez",
				CURP:     "PEPJ800101HDFRRN09",
				Overrides: &certModels.Overrides{
					TrainerName: "Otro Instructor",
					StartDate:   "2024-02-02",
				},
			},
			{FullName: "Ana Ruiz", CURP: "RUAA900202MDFXXX01"},
		},
	}

	out := toGeneratorCertificate(cert, roster)

	assert.Equal(t, uint(42), out.ID)
	assert.Equal(t, "Aceros del Norte", out.CompanyName)
	assert.Equal(t, "2000 Produccion", out.RosterThematicArea)

	require.Len(t, out.Trainees, 2)
	assert.Equal(t, "Otro Instructor", out.Trainees[0].Overrides.TrainerName)
	assert.Equal(t, "2024-02-02", out.Trainees[0].Overrides.StartDate)
	assert.Empty(t, out.Trainees[1].Overrides.TrainerName)

	require.Len(t, out.Courses, 1)
	assert.Equal(t, uint(11), out.Courses[0].ID)
	assert.Equal(t, "Trabajos en altura", out.Courses[0].Name)
	assert.Equal(t, "8 horas", out.Courses[0].Duration)
	assert.Equal(t, "2024-02-01", out.Courses[0].StartDate)
}

func TestToRosterCopiesOverrides(t *testing.T) {
	trainees := []certificateValidator.TraineeRequest{
		{
			FullName: "Juan Perez",
			CURP:     "PEPJ800101HDFRRN09",
			Overrides: &certificateValidator.OverridesRequest{
				SignatureType: "PHYSICAL",
				ThematicArea:  "1000 Administracion",
			},
		},
		{FullName: "Ana Ruiz", CURP: "RUAA900202MDFXXX01"},
	}

	roster := toRoster(trainees)

	require.Len(t, roster.Trainees, 2)
	require.NotNil(t, roster.Trainees[0].Overrides)
	assert.Equal(t, "PHYSICAL", roster.Trainees[0].Overrides.SignatureType)
	assert.Equal(t, "1000 Administracion", roster.Trainees[0].Overrides.ThematicArea)
	assert.Nil(t, roster.Trainees[1].Overrides)
}
