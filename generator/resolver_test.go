package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoCoursesCertificate() Certificate {
	return Certificate{
		ID:          7,
		CompanyName: "Aceros del Norte",
		CompanyRFC:  "ADN010203XY1",
		TrainerName: "Laura Campos",
		LegalRep:    "Pedro Luna",
		WorkersRep:  "Rosa Díaz",
		Trainees: []Trainee{
			{FullName: "Juan Pérez", CURP: "PEPJ800101HDFRRN09"},
			{FullName: "Ana Gómez", CURP: "GOMA900202MDFRRN08"},
		},
		Courses: []CourseAssociation{
			{ID: 1, CourseID: 11, Name: "Trabajos en altura", Duration: "8", StartDate: "2024-01-08", EndDate: "2024-01-09"},
			{ID: 2, CourseID: 12, Name: "Primeros auxilios", Duration: "6", StartDate: "2024-02-05", EndDate: "2024-02-06"},
		},
	}
}

func TestEnumeratePairsNoAssociations(t *testing.T) {
	cert := twoCoursesCertificate()
	cert.Courses = nil
	cert.CourseName = "Curso único"
	cert.CourseDuration = "4"
	cert.CoursePeriod = "enero 2024"

	pairs := EnumeratePairs(cert)
	require.Len(t, pairs, 2, "one implied pair per trainee")
	for _, p := range pairs {
		assert.True(t, p.Implied)
		view := ResolveEffective(cert, p)
		assert.Equal(t, "Curso único", view.CourseName)
		assert.Equal(t, "4", view.Duration)
		assert.Equal(t, "enero 2024", view.Period)
		assert.Zero(t, view.CourseID)
	}
}

func TestEnumeratePairsAllAssociations(t *testing.T) {
	cert := twoCoursesCertificate()
	pairs := EnumeratePairs(cert)
	require.Len(t, pairs, 4, "each trainee renders against every association")
}

func TestEnumeratePairsCourseOfInterest(t *testing.T) {
	cert := twoCoursesCertificate()
	cert.Trainees[0].CourseOfInterest = "Primeros auxilios"

	pairs := PairsForTrainee(cert, cert.Trainees[0])
	require.Len(t, pairs, 1)
	assert.Equal(t, uint(2), pairs[0].Association.ID)
}

func TestEnumeratePairsUnmatchedCourseOfInterest(t *testing.T) {
	cert := twoCoursesCertificate()
	cert.Trainees[0].CourseOfInterest = "Curso renombrado"

	// An unmatched label degrades to the no-label behavior.
	pairs := PairsForTrainee(cert, cert.Trainees[0])
	require.Len(t, pairs, 2)
}

func TestResolveEffectivePeriodFromWindow(t *testing.T) {
	cert := twoCoursesCertificate()
	view := ResolveEffective(cert, Pair{Trainee: cert.Trainees[0], Association: cert.Courses[0]})
	assert.Equal(t, "2024-01-08 / 2024-01-09", view.Period)
	assert.Equal(t, "2024-01-08", view.StartDate)
	assert.Equal(t, uint(11), view.CourseID)
}

func TestResolveEffectiveOneSidedPeriod(t *testing.T) {
	cert := twoCoursesCertificate()
	assoc := CourseAssociation{ID: 3, Name: "Taller", StartDate: "2024-03-01"}
	view := ResolveEffective(cert, Pair{Trainee: cert.Trainees[0], Association: assoc})
	assert.Equal(t, "2024-03-01", view.Period)
}

func TestSignatureTypePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		override string
		roster   string
		cert     string
		want     string
	}{
		{"override wins", "DIGITAL", "PHYSICAL", "PHYSICAL", "DIGITAL"},
		{"roster beats certificate", "", "DIGITAL", "PHYSICAL", "DIGITAL"},
		{"certificate value", "", "", "DIGITAL", "DIGITAL"},
		{"default", "", "", "", "PHYSICAL"},
		{"case folded", "digital", "", "", "DIGITAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert := twoCoursesCertificate()
			cert.SignatureType = tt.cert
			cert.RosterSignatureType = tt.roster
			trainee := cert.Trainees[0]
			trainee.Overrides.SignatureType = tt.override

			view := ResolveEffective(cert, Pair{Trainee: trainee, Association: cert.Courses[0]})
			assert.Equal(t, tt.want, view.SignatureType)
		})
	}
}

func TestThematicAreaPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		override string
		cert     string
		roster   string
		want     string
	}{
		{"override wins", "1000 Producción", "6000 Seguridad", "2000 Otro", "1000 Producción"},
		{"certificate beats roster", "", "3000 Comercio", "2000 Otro", "3000 Comercio"},
		{"roster value", "", "", "2000 Otro", "2000 Otro"},
		{"default", "", "", "", "6000 Seguridad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert := twoCoursesCertificate()
			cert.ThematicArea = tt.cert
			cert.RosterThematicArea = tt.roster
			trainee := cert.Trainees[0]
			trainee.Overrides.ThematicArea = tt.override

			view := ResolveEffective(cert, Pair{Trainee: trainee, Association: cert.Courses[0]})
			assert.Equal(t, tt.want, view.ThematicArea)
		})
	}
}

func TestTraineeOverridesWin(t *testing.T) {
	cert := twoCoursesCertificate()
	trainee := cert.Trainees[0]
	trainee.Overrides = Overrides{
		TrainerName: "Otro Instructor",
		LegalRep:    "Otra Rep Legal",
		WorkersRep:  "Otra Rep Trab",
		StartDate:   "2024-05-01",
		EndDate:     "2024-05-02",
	}

	view := ResolveEffective(cert, Pair{Trainee: trainee, Association: cert.Courses[0]})
	assert.Equal(t, "Otro Instructor", view.TrainerName)
	assert.Equal(t, "Otra Rep Legal", view.LegalRep)
	assert.Equal(t, "Otra Rep Trab", view.WorkersRep)
	assert.Equal(t, "2024-05-01 / 2024-05-02", view.Period)
}

func TestResolveEffectiveIdempotent(t *testing.T) {
	cert := twoCoursesCertificate()
	pair := Pair{Trainee: cert.Trainees[1], Association: cert.Courses[1]}

	first := ResolveEffective(cert, pair)
	second := ResolveEffective(cert, pair)
	assert.Equal(t, first, second)
}
