package models

// Counter backs one monotonic id sequence. Name is the sequence name, e.g.
// "supplierId"; Seq is bumped with a single atomic upsert.
type Counter struct {
	Name string `json:"name" gorm:"primaryKey;size:100"`
	Seq  int64  `json:"seq" gorm:"not null;default:0"`
}
