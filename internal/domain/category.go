package domain

// Categories is the fixed 10-value role taxonomy. Values are case-sensitive
// and match the database enum.
var Categories = []string{
	"Builder",
	"Craftsperson",
	"Tradesperson",
	"Developer",
	"Investor",
	"Advocate",
	"Architect",
	"Government",
	"Nonprofit",
	"Educator",
}

// IsValidCategory reports whether role is a member of the taxonomy.
func IsValidCategory(role string) bool {
	for _, c := range Categories {
		if role == c {
			return true
		}
	}
	return false
}

// Listing/submission statuses. Only approved listings are publicly visible.
const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// IsValidStatus reports whether status is a known lifecycle value.
func IsValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
