package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overlapCertificate(start, end string) Certificate {
	return Certificate{
		ID: 1,
		Trainees: []Trainee{
			{FullName: "Juan Pérez", CURP: "ABC123"},
		},
		Courses: []CourseAssociation{
			{ID: 10, CourseID: 5, StartDate: start, EndDate: end},
		},
	}
}

func TestFindConflictsBoundaryInclusive(t *testing.T) {
	existing := []CourseWindow{
		{AssociationID: 99, CertificateID: 2, CourseID: 8, CURP: "ABC123", StartDate: "2024-01-01", EndDate: "2024-01-10"},
	}

	conflicts := FindConflicts(overlapCertificate("2024-01-10", "2024-01-15"), existing)
	require.Len(t, conflicts, 1, "touching boundaries conflict")
	assert.Equal(t, "ABC123", conflicts[0].CURP)
	require.Len(t, conflicts[0].Entries, 1)
	assert.Equal(t, uint(99), conflicts[0].Entries[0].AssociationID)

	conflicts = FindConflicts(overlapCertificate("2024-01-11", "2024-01-15"), existing)
	assert.Empty(t, conflicts, "disjoint windows do not conflict")
}

func TestFindConflictsEmptyInputs(t *testing.T) {
	cert := overlapCertificate("2024-01-01", "2024-01-05")
	cert.Trainees = nil
	assert.Empty(t, FindConflicts(cert, []CourseWindow{{CURP: "ABC123"}}))

	cert = overlapCertificate("2024-01-01", "2024-01-05")
	cert.Courses = nil
	assert.Empty(t, FindConflicts(cert, []CourseWindow{{CURP: "ABC123"}}))
}

func TestFindConflictsReversedWindowNormalized(t *testing.T) {
	existing := []CourseWindow{
		{AssociationID: 1, CURP: "ABC123", StartDate: "2024-01-10", EndDate: "2024-01-01"},
	}
	conflicts := FindConflicts(overlapCertificate("2024-01-05", "2024-01-06"), existing)
	require.Len(t, conflicts, 1, "reversed sides are swapped before comparison")
}

func TestFindConflictsSkipsBlankAndDuplicateCURP(t *testing.T) {
	cert := overlapCertificate("2024-01-01", "2024-01-05")
	cert.Trainees = []Trainee{
		{FullName: "Sin CURP", CURP: "   "},
		{FullName: "Juan Pérez", CURP: "ABC123"},
		{FullName: "Juan Duplicado", CURP: " ABC123 "},
	}
	existing := []CourseWindow{
		{AssociationID: 1, CURP: "ABC123", StartDate: "2024-01-03", EndDate: "2024-01-04"},
	}

	conflicts := FindConflicts(cert, existing)
	require.Len(t, conflicts, 1, "first occurrence wins, blanks skipped")
	assert.Equal(t, "Juan Pérez", conflicts[0].FullName)
}

func TestFindConflictsCollectsAllEntriesPerTrainee(t *testing.T) {
	existing := []CourseWindow{
		{AssociationID: 1, CURP: "ABC123", StartDate: "2024-01-02", EndDate: "2024-01-03"},
		{AssociationID: 2, CURP: "ABC123", StartDate: "2024-01-04", EndDate: "2024-01-06"},
		{AssociationID: 3, CURP: "ABC123", StartDate: "2024-02-01", EndDate: "2024-02-02"},
	}

	conflicts := FindConflicts(overlapCertificate("2024-01-01", "2024-01-05"), existing)
	require.Len(t, conflicts, 1)
	assert.Len(t, conflicts[0].Entries, 2, "only the overlapping windows are reported")
}

func TestFindConflictsUnparseableDatesIgnored(t *testing.T) {
	existing := []CourseWindow{
		{AssociationID: 1, CURP: "ABC123", StartDate: "???", EndDate: "???"},
	}
	conflicts := FindConflicts(overlapCertificate("2024-01-01", "2024-01-05"), existing)
	assert.Empty(t, conflicts)
}
