package domain

import "time"

// Presensi is a single attendance record. It is written once per
// (JamaahID, KajianID) pair and never updated.
type Presensi struct {
	ID         string    `json:"id" bson:"id"`
	JamaahID   string    `json:"id_jamaah" bson:"id_jamaah"`
	KajianID   string    `json:"id_kajian" bson:"id_kajian"`
	RecordedAt time.Time `json:"waktu_presensi" bson:"waktu_presensi"`
}

// PairKey identifies the (jamaah, kajian) pair an attendance belongs to.
func PairKey(jamaahID, kajianID string) string {
	return jamaahID + ":" + kajianID
}

// RejectReason classifies why a check-in was refused.
type RejectReason string

const (
	ReasonNone            RejectReason = ""
	ReasonKajianNotFound  RejectReason = "kajian_not_found"
	ReasonJamaahNotFound  RejectReason = "jamaah_not_found"
	ReasonAlreadyRecorded RejectReason = "already_recorded"
	ReasonWindowClosed    RejectReason = "window_closed"
)
