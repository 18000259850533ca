package models

import "gorm.io/gorm"

// DocumentUpload keeps a record of every file pushed to R2 so orphaned
// objects can be cleaned up.
type DocumentUpload struct {
	gorm.Model
	DocType   string `json:"doc_type"` // transportation_bill | purchase_bill | bilti | eway_bill | payment_slip
	FileName  string `json:"file_name"`
	FileURL   string `json:"file_url"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
