package domain

import (
	"sort"
	"time"
)

// dateLayout is the ISO date format used for entity dates and expiry dates.
const dateLayout = "2006-01-02"

// expired reports whether an expiry date string has passed relative to now.
// An unset or unparsable expiry never expires the entity.
func expired(expiryDate string, now time.Time) bool {
	if expiryDate == "" {
		return false
	}
	exp, err := time.ParseInLocation(dateLayout, expiryDate, now.Location())
	if err != nil {
		return false
	}
	// Entities stay listed while the expiry date is strictly in the future.
	return !exp.After(now)
}

// ActiveNews returns the news items whose expiry date is unset or strictly in
// the future, sorted by date descending. Pure function of the Document and
// now; recomputed on every read because "now" changes.
func ActiveNews(doc Document, now time.Time) []NewsItem {
	out := make([]NewsItem, 0, len(doc.News))
	for _, n := range doc.News {
		if !expired(n.ExpiryDate, now) {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// ActiveAlbums returns the albums whose expiry date is unset or strictly in
// the future, in stored order.
func ActiveAlbums(doc Document, now time.Time) []Album {
	out := make([]Album, 0, len(doc.Albums))
	for _, a := range doc.Albums {
		if !expired(a.ExpiryDate, now) {
			out = append(out, a)
		}
	}
	return out
}

// SortedSubmissions returns the submissions ordered newest first. Storage
// order is insertion order; display order is by timestamp, computed at read
// time.
func SortedSubmissions(doc Document) []Submission {
	out := make([]Submission, len(doc.Submissions))
	copy(out, doc.Submissions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt > out[j].SubmittedAt
	})
	return out
}

// SortedEnrollments returns the enrollments ordered newest first.
func SortedEnrollments(doc Document) []Enrollment {
	out := make([]Enrollment, len(doc.Enrollments))
	copy(out, doc.Enrollments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt > out[j].SubmittedAt
	})
	return out
}

// ActivePages returns the active pages sorted by their explicit order key.
func ActivePages(doc Document) []Page {
	out := make([]Page, 0, len(doc.Pages))
	for _, p := range doc.Pages {
		if p.Active {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
