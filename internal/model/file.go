package model

// File stores uploaded file content as bytes together with its extension,
// used for applicant resumes.
type File struct {
	ID        int `gorm:"primaryKey"`
	Content   []byte
	Extension string
}
