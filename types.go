package sitecore

import "time"

// Account is the admin login account. Exactly one is created via the
// one-time setup endpoint; the password field holds the scrypt hash,
// never plaintext, and is excluded from JSON responses.
type Account struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Inquiry status values. New inquiries always start as StatusNew.
const (
	StatusNew        = "new"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusArchived   = "archived"
)

// InquiryStatuses lists the valid contact inquiry statuses.
var InquiryStatuses = []string{StatusNew, StatusInProgress, StatusResolved, StatusArchived}

// ContactInquiry is a contact form submission.
type ContactInquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company,omitempty"`
	InquiryType string    `json:"inquiryType"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewInquiry carries the client-supplied fields of a contact submission.
type NewInquiry struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	InquiryType string `json:"inquiryType"`
	Message     string `json:"message"`
}

// BlogPost is a blog article. Unpublished posts are drafts visible only
// through the admin API.
type BlogPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Category   string    `json:"category"`
	Published  bool      `json:"published"`
	CoverImage string    `json:"coverImage,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewBlogPost carries the fields of a blog post to create. An empty Slug
// is derived from the title.
type NewBlogPost struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	Author     string `json:"author"`
	Category   string `json:"category"`
	Published  bool   `json:"published"`
	CoverImage string `json:"coverImage"`
}

// BlogPostPatch is a partial update. Nil fields are left unchanged.
type BlogPostPatch struct {
	Title      *string `json:"title"`
	Slug       *string `json:"slug"`
	Excerpt    *string `json:"excerpt"`
	Content    *string `json:"content"`
	Author     *string `json:"author"`
	Category   *string `json:"category"`
	Published  *bool   `json:"published"`
	CoverImage *string `json:"coverImage"`
}

// PortfolioProject is a case study shown on the portfolio page, sorted by
// ascending Order.
type PortfolioProject struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Industry  string    `json:"industry"`
	Problem   string    `json:"problem"`
	Solution  string    `json:"solution"`
	Outcome   string    `json:"outcome"`
	TechStack []string  `json:"techStack"`
	Image     string    `json:"image,omitempty"`
	Featured  bool      `json:"featured"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewPortfolioProject carries the fields of a project to create.
type NewPortfolioProject struct {
	Title     string   `json:"title"`
	Industry  string   `json:"industry"`
	Problem   string   `json:"problem"`
	Solution  string   `json:"solution"`
	Outcome   string   `json:"outcome"`
	TechStack []string `json:"techStack"`
	Image     string   `json:"image"`
	Featured  bool     `json:"featured"`
	Order     int      `json:"order"`
}

// PortfolioProjectPatch is a partial update. Nil fields are left unchanged.
type PortfolioProjectPatch struct {
	Title     *string   `json:"title"`
	Industry  *string   `json:"industry"`
	Problem   *string   `json:"problem"`
	Solution  *string   `json:"solution"`
	Outcome   *string   `json:"outcome"`
	TechStack *[]string `json:"techStack"`
	Image     *string   `json:"image"`
	Featured  *bool     `json:"featured"`
	Order     *int      `json:"order"`
}

// PageView is an append-only page view record.
type PageView struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Referrer  string    `json:"referrer,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewPageView carries the client-supplied fields of a page view.
type NewPageView struct {
	Path      string `json:"path"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"userAgent"`
}

// PageStat is the per-path view count used by the analytics dashboard.
type PageStat struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}
