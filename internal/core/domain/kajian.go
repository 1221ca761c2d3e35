package domain

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar-date format of Kajian.Tanggal.
	DateLayout = "2006-01-02"
	// ClockLayout is the time-of-day format of JamMulai and JamSelesai.
	ClockLayout = "15:04"

	// Check-ins are accepted from AdmissionFirstHour:00 through
	// AdmissionLastHour:59 local time on the kajian day.
	AdmissionFirstHour = 6
	AdmissionLastHour  = 23
)

// Kajian is a scheduled session. Tanggal, JamMulai and JamSelesai are plain
// calendar values, not instants; JamSelesai may precede JamMulai.
type Kajian struct {
	ID         string `json:"id" bson:"id"`
	Judul      string `json:"judul" bson:"judul"`
	Tanggal    string `json:"tanggal" bson:"tanggal"`
	JamMulai   string `json:"jam_mulai" bson:"jam_mulai"`
	JamSelesai string `json:"jam_selesai" bson:"jam_selesai"`
}

// Date parses Tanggal. Longer ISO strings ("2025-01-31T08:00:00") are accepted
// and truncated to their date part.
func (k *Kajian) Date() (time.Time, error) {
	s := k.Tanggal
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("kajian %s: tanggal %q: %w", k.ID, k.Tanggal, err)
	}
	return d, nil
}

// AdmitsAt reports whether a check-in at local time now falls inside the
// admission window. JamMulai and JamSelesai are deliberately not consulted.
func (k *Kajian) AdmitsAt(now time.Time) error {
	d, err := k.Date()
	if err != nil {
		return err
	}
	y, m, day := now.Date()
	if d.Year() != y || d.Month() != m || d.Day() != day {
		return ErrWrongDay
	}
	if h := now.Hour(); h < AdmissionFirstHour || h > AdmissionLastHour {
		return ErrOutsideHours
	}
	return nil
}
