package domain

// SiteConfig holds site-wide settings. Singleton; always present.
type SiteConfig struct {
	SchoolName   string `json:"schoolName"`
	Tagline      string `json:"tagline"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
	FacebookURL  string `json:"facebookUrl"`
	MenuLinkName string `json:"menuLinkName"`
	MenuLinkURL  string `json:"menuLinkUrl"`
}

// NewsItem is a dated news article. ExpiryDate, when set, makes the item
// eligible for exclusion from public listings once passed; it never deletes
// the item.
type NewsItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Date       string `json:"date"` // ISO date, e.g. "2026-09-01"
	Image      string `json:"image,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

func (n NewsItem) EntityID() string { return n.ID }

// Event is a calendar entry.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	Location    string `json:"location,omitempty"`
}

func (e Event) EntityID() string { return e.ID }

// Album is a photo gallery. Images are opaque string locators returned by the
// upload collaborator; the album never owns the referenced bytes.
type Album struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date"`
	Images      []string `json:"images"`
	ExpiryDate  string   `json:"expiryDate,omitempty"`
}

func (a Album) EntityID() string { return a.ID }

// TeamMember is a staff member shown on the team page.
type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Group string `json:"group,omitempty"` // class or working group
	Photo string `json:"photo,omitempty"`
}

func (t TeamMember) EntityID() string { return t.ID }

// Activity is an ouderwerkgroep (parents' working group) activity.
type Activity struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date"`
	Images      []string `json:"images,omitempty"`
}

func (a Activity) EntityID() string { return a.ID }

// SubmissionStatus is the read state of a contact form submission.
// Transitions only new -> read, triggered by an administrator viewing it.
type SubmissionStatus string

const (
	SubmissionStatusNew  SubmissionStatus = "new"
	SubmissionStatusRead SubmissionStatus = "read"
)

// Submission is a contact form message. Sorted by SubmittedAt at read time.
type Submission struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Message     string           `json:"message"`
	SubmittedAt string           `json:"submittedAt"` // RFC 3339
	Status      SubmissionStatus `json:"status"`
}

func (s Submission) EntityID() string { return s.ID }

// Download is a downloadable file (forms, letters, lunch menus). File is an
// opaque locator returned by the upload collaborator.
type Download struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category,omitempty"`
	File       string `json:"file"`
	UploadedAt string `json:"uploadedAt"`
}

func (d Download) EntityID() string { return d.ID }

// EnrollmentStatus is the processing state of an enrollment request. Any
// state is reachable from any other; transitions are set explicitly by an
// administrator, never automatically.
type EnrollmentStatus string

const (
	EnrollmentStatusNew          EnrollmentStatus = "new"
	EnrollmentStatusInProgress   EnrollmentStatus = "in_progress"
	EnrollmentStatusFulfilled    EnrollmentStatus = "fulfilled"
	EnrollmentStatusNotFulfilled EnrollmentStatus = "not_fulfilled"
)

// ValidEnrollmentStatus reports whether s is one of the four known states.
func ValidEnrollmentStatus(s EnrollmentStatus) bool {
	switch s {
	case EnrollmentStatusNew, EnrollmentStatusInProgress, EnrollmentStatusFulfilled, EnrollmentStatusNotFulfilled:
		return true
	}
	return false
}

// Enrollment is a request to enroll a child, submitted through the public
// enrollment form. Sorted by SubmittedAt at read time.
type Enrollment struct {
	ID          string           `json:"id"`
	ChildName   string           `json:"childName"`
	BirthDate   string           `json:"birthDate"`
	ParentName  string           `json:"parentName"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone,omitempty"`
	Message     string           `json:"message,omitempty"`
	SubmittedAt string           `json:"submittedAt"` // RFC 3339
	Status      EnrollmentStatus `json:"status"`
}

func (e Enrollment) EntityID() string { return e.ID }

// PageType distinguishes fixed system pages from admin-created custom pages.
type PageType string

const (
	// PageTypeSystem pages have a fixed identity and slug, cannot be deleted,
	// and support only an active/inactive toggle.
	PageTypeSystem PageType = "system"
	// PageTypeCustom pages support full CRUD; their slug derives from the name.
	PageTypeCustom PageType = "custom"
)

// Page is a site page. Order is the explicit menu sort key.
type Page struct {
	ID      string   `json:"id"`
	Type    PageType `json:"type"`
	Name    string   `json:"name"`
	Slug    string   `json:"slug"`
	Content string   `json:"content,omitempty"`
	Images  []string `json:"images,omitempty"`
	Active  bool     `json:"active"`
	Order   int      `json:"order"`
}

func (p Page) EntityID() string { return p.ID }
