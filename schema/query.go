package schema

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 50

	// DefaultSearchRadius in meters
	DefaultSearchRadius = 10000
)

// Pagination follows the page/limit convention of the list endpoints
type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// Skip is the number of records before the current page
func (p Pagination) Skip() int64 {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// WithTotal returns a copy of p carrying the total and the derived page count
func (p Pagination) WithTotal(total int64) Pagination {
	p.Total = total
	if p.Limit > 0 {
		p.Pages = (total + p.Limit - 1) / p.Limit
	}
	return p
}

// HelpFilter narrows down the help request listing
type HelpFilter struct {
	Status   string
	Category string
	Urgency  string

	// Center and Radius (meters) restrict results to a circle when Center is set
	Center *Location
	Radius float64

	Pagination Pagination
}

// NearbyQuery is a proximity search over open, unexpired requests
type NearbyQuery struct {
	Center      Location
	MaxDistance float64
	Category    string
	Urgency     string

	Pagination Pagination
}

const (
	HELP_ROLE_REQUESTED = "requested"
	HELP_ROLE_HELPED    = "helped"
)

// UserHelpFilter lists the requests an account made or helped with
type UserHelpFilter struct {
	AccountID string
	Role      string
	Status    string

	Pagination Pagination
}

type HelpPage struct {
	Items      []HelpRequest `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

// HelpStats summarizes the activity of an account
type HelpStats struct {
	Requested      map[string]int64 `json:"requested"`
	Helped         map[string]int64 `json:"helped"`
	Rating         AccountRating    `json:"rating"`
	RecentActivity []HelpRequest    `json:"recent_activity"`
}

// AccountFilter searches the directory by name and role
type AccountFilter struct {
	Query string
	Role  string

	Pagination Pagination
}

type AccountPage struct {
	Items      []AccountSummary `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

// Notifications is the activity feed of an account: open requests close to
// the caller and the latest of the caller's accepted or finished requests
type Notifications struct {
	NearbyRequests []HelpRequest `json:"nearby_requests"`
	MyRequests     []HelpRequest `json:"my_requests"`
	Count          int           `json:"count"`
}
