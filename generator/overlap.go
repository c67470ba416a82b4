package generator

import "strings"

// CourseWindow is one existing course association window carrying the
// CURP of a trainee enrolled under it. The storage layer flattens each
// fetched association's roster into one window per trainee.
type CourseWindow struct {
	AssociationID uint
	CertificateID uint
	CourseID      uint
	CURP          string
	StartDate     string
	EndDate       string
}

// ConflictEntry identifies one pre-existing window that collides with the
// new certificate's proposed windows.
type ConflictEntry struct {
	AssociationID uint   `json:"association_id"`
	CertificateID uint   `json:"certificate_id"`
	CourseID      uint   `json:"course_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
}

// Conflict reports, for one trainee, every existing window that overlaps
// at least one of the new certificate's course windows.
type Conflict struct {
	CURP     string          `json:"curp"`
	FullName string          `json:"full_name"`
	Entries  []ConflictEntry `json:"conflicts"`
}

// FindConflicts checks the new certificate's trainees against existing
// course windows. It is pure: the caller fetches candidates however it
// likes, and every window is re-checked here rather than trusting any
// upstream pre-filter. Trainees are keyed by trimmed CURP, first
// occurrence wins, blanks skipped. Intervals are closed, so touching
// boundaries conflict.
func FindConflicts(cert Certificate, existing []CourseWindow) []Conflict {
	if len(cert.Trainees) == 0 || len(cert.Courses) == 0 {
		return nil
	}

	index := make(map[string][]CourseWindow)
	for _, w := range existing {
		curp := strings.TrimSpace(w.CURP)
		if curp == "" {
			continue
		}
		index[curp] = append(index[curp], w)
	}

	proposed := make([]interval, 0, len(cert.Courses))
	for _, assoc := range cert.Courses {
		proposed = append(proposed, normalizeInterval(assoc.StartDate, assoc.EndDate))
	}

	seen := make(map[string]bool)
	var conflicts []Conflict
	for _, trainee := range cert.Trainees {
		curp := strings.TrimSpace(trainee.CURP)
		if curp == "" || seen[curp] {
			continue
		}
		seen[curp] = true

		var entries []ConflictEntry
		for _, w := range index[curp] {
			candidate := normalizeInterval(w.StartDate, w.EndDate)
			for _, p := range proposed {
				if intervalsOverlap(p, candidate) {
					entries = append(entries, ConflictEntry{
						AssociationID: w.AssociationID,
						CertificateID: w.CertificateID,
						CourseID:      w.CourseID,
						StartDate:     w.StartDate,
						EndDate:       w.EndDate,
					})
					break
				}
			}
		}
		if len(entries) > 0 {
			conflicts = append(conflicts, Conflict{
				CURP:     curp,
				FullName: trainee.FullName,
				Entries:  entries,
			})
		}
	}
	return conflicts
}

// interval holds a normalized YYYY-MM-DD window; comparison is lexical,
// which orders correctly for this form.
type interval struct {
	start string
	end   string
}

// normalizeInterval reduces both sides to sortable form, mirrors a
// missing side, and swaps a reversed pair.
func normalizeInterval(start, end string) interval {
	s, e := NormalizeDate(start), NormalizeDate(end)
	if s == "" {
		s = e
	}
	if e == "" {
		e = s
	}
	if s != "" && e != "" && s > e {
		s, e = e, s
	}
	return interval{start: s, end: e}
}

func intervalsOverlap(a, b interval) bool {
	if a.start == "" || b.start == "" {
		return false
	}
	return a.start <= b.end && b.start <= a.end
}
