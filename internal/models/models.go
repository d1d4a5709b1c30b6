package models

// Status represents the pipeline stage of an application
type Status string

const (
	StatusWishlist     Status = "wishlist"
	StatusApplied      Status = "applied"
	StatusInterviewing Status = "interviewing"
	StatusOffer        Status = "offer"
	StatusRejected     Status = "rejected"
)

// AllStatuses lists the board columns in display order.
var AllStatuses = []Status{
	StatusWishlist,
	StatusApplied,
	StatusInterviewing,
	StatusOffer,
	StatusRejected,
}

// IsValid reports whether s is one of the five known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusWishlist, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Title returns the display title for a board column.
func (s Status) Title() string {
	switch s {
	case StatusWishlist:
		return "Wishlist"
	case StatusApplied:
		return "Applied"
	case StatusInterviewing:
		return "Interviewing"
	case StatusOffer:
		return "Offer"
	case StatusRejected:
		return "Rejected"
	}
	return string(s)
}

// SortMode represents the global ordering preference for creation-time views
type SortMode string

const (
	SortCreatedAsc  SortMode = "created-asc"
	SortCreatedDesc SortMode = "created-desc"
)

// IsValid reports whether m is one of the two known sort modes.
func (m SortMode) IsValid() bool {
	return m == SortCreatedAsc || m == SortCreatedDesc
}

// Term represents a named application cycle (e.g. "Summer 2026")
type Term struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Application represents one tracked job/internship application.
// The JSON tags match the stored blob shape, so records written by older
// versions unmarshal directly.
type Application struct {
	ID        string `json:"id"`
	TermID    string `json:"termId,omitempty"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Status    Status `json:"status"`
	Date      string `json:"date,omitempty"`
	Note      string `json:"note,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"` // Unix milliseconds, ordering only

	// Optional hiring-manager contact details
	ContactName  string `json:"contactName,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactLink  string `json:"contactLink,omitempty"`

	// Name of an attached file (metadata only, no bytes are stored)
	FileName string `json:"fileName,omitempty"`
}
