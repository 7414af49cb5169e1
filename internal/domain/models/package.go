package models

const (
	PackageAvailable   = "Available"
	PackageUnavailable = "Unavailable"
)

type Package struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Destination string `db:"destination" json:"destination"`
	Description string `db:"description" json:"description"`
	Price       int64  `db:"price" json:"price"`
	Duration    string `db:"duration" json:"duration"`
	ImageURL    string `db:"image_url" json:"image_url"`
	Status      string `db:"status" json:"status"`
}

// PackageInput carries admin form fields exactly as submitted.
// Price stays a string so the storage column decides what it accepts.
type PackageInput struct {
	Title       string `form:"title"`
	Destination string `form:"destination"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Duration    string `form:"duration"`
	ImageURL    string `form:"image_url"`
	Status      string `form:"status"`
}
