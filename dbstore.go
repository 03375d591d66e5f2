package sitecore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DBStore is the SQLite-backed Storage, selected when a database path is
// configured. Every operation maps to a parameterized statement; ids are
// server-generated UUID strings.
type DBStore struct {
	db *sql.DB
}

// NewDBStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and creates the schema.
func NewDBStore(path string) (*DBStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write access plus a busy timeout so writers
	// wait instead of returning SQLITE_BUSY immediately.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &DBStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *DBStore) Close() error {
	return s.db.Close()
}

func (s *DBStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS accounts (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS contact_inquiries (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    company TEXT NOT NULL DEFAULT '',
    inquiry_type TEXT NOT NULL,
    message TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'new',
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS blog_posts (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    excerpt TEXT NOT NULL,
    content TEXT NOT NULL,
    author TEXT NOT NULL,
    category TEXT NOT NULL,
    published INTEGER NOT NULL DEFAULT 0,
    cover_image TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS portfolio_projects (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    industry TEXT NOT NULL,
    problem TEXT NOT NULL,
    solution TEXT NOT NULL,
    outcome TEXT NOT NULL,
    tech_stack TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT '',
    featured INTEGER NOT NULL DEFAULT 0,
    sort_order INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS page_views (
    id TEXT PRIMARY KEY,
    path TEXT NOT NULL,
    referrer TEXT NOT NULL DEFAULT '',
    user_agent TEXT NOT NULL DEFAULT '',
    timestamp TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_blog_posts_slug ON blog_posts(slug);
CREATE INDEX IF NOT EXISTS idx_page_views_path ON page_views(path);
`)
	return err
}

// timeLayout is fixed-width (no trailing-zero trimming) so that string
// comparison in ORDER BY matches chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// JoinTechStack encodes a tech stack list as a comma-delimited string with
// leading and trailing separators (e.g. ",Go,SQLite,").
func JoinTechStack(stack []string) string {
	if len(stack) == 0 {
		return ","
	}
	return "," + strings.Join(stack, ",") + ","
}

// ParseTechStack splits a delimited tech stack string back into a slice.
func ParseTechStack(s string) []string {
	s = strings.Trim(s, ",")
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (s *DBStore) GetAccount(ctx context.Context, id string) (Account, bool, error) {
	var a Account
	var created string
	err := s.db.QueryRowContext(ctx, `SELECT id, username, password, created_at FROM accounts WHERE id = ?`, id).
		Scan(&a.ID, &a.Username, &a.Password, &created)
	if err == sql.ErrNoRows {
		return Account{}, false, nil
	}
	if err != nil {
		return Account{}, false, fmt.Errorf("get account: %w", err)
	}
	a.CreatedAt = parseTime(created)
	return a, true, nil
}

func (s *DBStore) GetAccountByUsername(ctx context.Context, username string) (Account, bool, error) {
	var a Account
	var created string
	err := s.db.QueryRowContext(ctx, `SELECT id, username, password, created_at FROM accounts WHERE username = ?`, username).
		Scan(&a.ID, &a.Username, &a.Password, &created)
	if err == sql.ErrNoRows {
		return Account{}, false, nil
	}
	if err != nil {
		return Account{}, false, fmt.Errorf("get account by username: %w", err)
	}
	a.CreatedAt = parseTime(created)
	return a, true, nil
}

func (s *DBStore) CreateAccount(ctx context.Context, username, passwordHash string) (Account, error) {
	a := Account{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  passwordHash,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO accounts (id, username, password, created_at) VALUES (?, ?, ?, ?)`,
		a.ID, a.Username, a.Password, formatTime(a.CreatedAt))
	if err != nil {
		return Account{}, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

func (s *DBStore) CreateInquiry(ctx context.Context, in NewInquiry) (ContactInquiry, error) {
	q := ContactInquiry{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		InquiryType: in.InquiryType,
		Message:     in.Message,
		Status:      StatusNew,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO contact_inquiries (id, name, email, company, inquiry_type, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Name, q.Email, q.Company, q.InquiryType, q.Message, q.Status, formatTime(q.CreatedAt))
	if err != nil {
		return ContactInquiry{}, fmt.Errorf("create inquiry: %w", err)
	}
	return q, nil
}

func (s *DBStore) ListInquiries(ctx context.Context) ([]ContactInquiry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, email, company, inquiry_type, message, status, created_at
		FROM contact_inquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var out []ContactInquiry
	for rows.Next() {
		var q ContactInquiry
		var created string
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Company, &q.InquiryType, &q.Message, &q.Status, &created); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		q.CreatedAt = parseTime(created)
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *DBStore) GetInquiry(ctx context.Context, id string) (ContactInquiry, bool, error) {
	var q ContactInquiry
	var created string
	err := s.db.QueryRowContext(ctx, `SELECT id, name, email, company, inquiry_type, message, status, created_at
		FROM contact_inquiries WHERE id = ?`, id).
		Scan(&q.ID, &q.Name, &q.Email, &q.Company, &q.InquiryType, &q.Message, &q.Status, &created)
	if err == sql.ErrNoRows {
		return ContactInquiry{}, false, nil
	}
	if err != nil {
		return ContactInquiry{}, false, fmt.Errorf("get inquiry: %w", err)
	}
	q.CreatedAt = parseTime(created)
	return q, true, nil
}

func (s *DBStore) UpdateInquiryStatus(ctx context.Context, id, status string) (ContactInquiry, bool, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE contact_inquiries SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return ContactInquiry{}, false, fmt.Errorf("update inquiry status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ContactInquiry{}, false, nil
	}
	return s.GetInquiry(ctx, id)
}

func (s *DBStore) CreateBlogPost(ctx context.Context, in NewBlogPost) (BlogPost, error) {
	now := time.Now().UTC()
	p := BlogPost{
		ID:         uuid.NewString(),
		Title:      in.Title,
		Slug:       in.Slug,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		Author:     in.Author,
		Category:   in.Category,
		Published:  in.Published,
		CoverImage: in.CoverImage,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO blog_posts (id, title, slug, excerpt, content, author, category, published, cover_image, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Author, p.Category, boolToInt(p.Published), p.CoverImage,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	if err != nil {
		return BlogPost{}, fmt.Errorf("create blog post: %w", err)
	}
	return p, nil
}

const blogPostColumns = `id, title, slug, excerpt, content, author, category, published, cover_image, created_at, updated_at`

func scanBlogPost(row interface{ Scan(...any) error }) (BlogPost, error) {
	var p BlogPost
	var published int
	var created, updated string
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Author, &p.Category, &published, &p.CoverImage, &created, &updated)
	if err != nil {
		return BlogPost{}, err
	}
	p.Published = published == 1
	p.CreatedAt = parseTime(created)
	p.UpdatedAt = parseTime(updated)
	return p, nil
}

func (s *DBStore) ListBlogPosts(ctx context.Context, publishedOnly bool) ([]BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts ORDER BY created_at DESC`
	if publishedOnly {
		query = `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE published = 1 ORDER BY created_at DESC`
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var out []BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *DBStore) GetBlogPost(ctx context.Context, id string) (BlogPost, bool, error) {
	p, err := scanBlogPost(s.db.QueryRowContext(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return BlogPost{}, false, nil
	}
	if err != nil {
		return BlogPost{}, false, fmt.Errorf("get blog post: %w", err)
	}
	return p, true, nil
}

func (s *DBStore) GetBlogPostBySlug(ctx context.Context, slug string) (BlogPost, bool, error) {
	p, err := scanBlogPost(s.db.QueryRowContext(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE slug = ?`, slug))
	if err == sql.ErrNoRows {
		return BlogPost{}, false, nil
	}
	if err != nil {
		return BlogPost{}, false, fmt.Errorf("get blog post by slug: %w", err)
	}
	return p, true, nil
}

func (s *DBStore) UpdateBlogPost(ctx context.Context, id string, patch BlogPostPatch) (BlogPost, bool, error) {
	p, ok, err := s.GetBlogPost(ctx, id)
	if err != nil || !ok {
		return BlogPost{}, ok, err
	}
	p = applyBlogPostPatch(p, patch)
	p.UpdatedAt = time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `UPDATE blog_posts SET title = ?, slug = ?, excerpt = ?, content = ?, author = ?, category = ?, published = ?, cover_image = ?, updated_at = ? WHERE id = ?`,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Author, p.Category, boolToInt(p.Published), p.CoverImage, formatTime(p.UpdatedAt), id)
	if err != nil {
		return BlogPost{}, false, fmt.Errorf("update blog post: %w", err)
	}
	return p, true, nil
}

func (s *DBStore) DeleteBlogPost(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete blog post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete blog post: %w", err)
	}
	return n > 0, nil
}

func (s *DBStore) CreateProject(ctx context.Context, in NewPortfolioProject) (PortfolioProject, error) {
	p := PortfolioProject{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Industry:  in.Industry,
		Problem:   in.Problem,
		Solution:  in.Solution,
		Outcome:   in.Outcome,
		TechStack: in.TechStack,
		Image:     in.Image,
		Featured:  in.Featured,
		Order:     in.Order,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO portfolio_projects (id, title, industry, problem, solution, outcome, tech_stack, image, featured, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Industry, p.Problem, p.Solution, p.Outcome, JoinTechStack(p.TechStack), p.Image,
		boolToInt(p.Featured), p.Order, formatTime(p.CreatedAt))
	if err != nil {
		return PortfolioProject{}, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

const projectColumns = `id, title, industry, problem, solution, outcome, tech_stack, image, featured, sort_order, created_at`

func scanProject(row interface{ Scan(...any) error }) (PortfolioProject, error) {
	var p PortfolioProject
	var stack, created string
	var featured int
	err := row.Scan(&p.ID, &p.Title, &p.Industry, &p.Problem, &p.Solution, &p.Outcome, &stack, &p.Image, &featured, &p.Order, &created)
	if err != nil {
		return PortfolioProject{}, err
	}
	p.TechStack = ParseTechStack(stack)
	p.Featured = featured == 1
	p.CreatedAt = parseTime(created)
	return p, nil
}

func (s *DBStore) ListProjects(ctx context.Context) ([]PortfolioProject, error) {
	// Ascending display order; rowid breaks ties by insertion.
	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM portfolio_projects ORDER BY sort_order ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []PortfolioProject
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *DBStore) GetProject(ctx context.Context, id string) (PortfolioProject, bool, error) {
	p, err := scanProject(s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM portfolio_projects WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return PortfolioProject{}, false, nil
	}
	if err != nil {
		return PortfolioProject{}, false, fmt.Errorf("get project: %w", err)
	}
	return p, true, nil
}

func (s *DBStore) UpdateProject(ctx context.Context, id string, patch PortfolioProjectPatch) (PortfolioProject, bool, error) {
	p, ok, err := s.GetProject(ctx, id)
	if err != nil || !ok {
		return PortfolioProject{}, ok, err
	}
	p = applyProjectPatch(p, patch)
	_, err = s.db.ExecContext(ctx, `UPDATE portfolio_projects SET title = ?, industry = ?, problem = ?, solution = ?, outcome = ?, tech_stack = ?, image = ?, featured = ?, sort_order = ? WHERE id = ?`,
		p.Title, p.Industry, p.Problem, p.Solution, p.Outcome, JoinTechStack(p.TechStack), p.Image, boolToInt(p.Featured), p.Order, id)
	if err != nil {
		return PortfolioProject{}, false, fmt.Errorf("update project: %w", err)
	}
	return p, true, nil
}

func (s *DBStore) DeleteProject(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM portfolio_projects WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return n > 0, nil
}

func (s *DBStore) TrackPageView(ctx context.Context, in NewPageView) (PageView, error) {
	v := PageView{
		ID:        uuid.NewString(),
		Path:      in.Path,
		Referrer:  in.Referrer,
		UserAgent: in.UserAgent,
		Timestamp: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO page_views (id, path, referrer, user_agent, timestamp) VALUES (?, ?, ?, ?, ?)`,
		v.ID, v.Path, v.Referrer, v.UserAgent, formatTime(v.Timestamp))
	if err != nil {
		return PageView{}, fmt.Errorf("track page view: %w", err)
	}
	return v, nil
}

func (s *DBStore) PageViewStats(ctx context.Context) ([]PageStat, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path, COUNT(*) AS views FROM page_views GROUP BY path ORDER BY views DESC`)
	if err != nil {
		return nil, fmt.Errorf("page view stats: %w", err)
	}
	defer rows.Close()

	var out []PageStat
	for rows.Next() {
		var st PageStat
		if err := rows.Scan(&st.Path, &st.Views); err != nil {
			return nil, fmt.Errorf("scan page stat: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *DBStore) TotalPageViews(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM page_views`).Scan(&n); err != nil {
		return 0, fmt.Errorf("total page views: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
