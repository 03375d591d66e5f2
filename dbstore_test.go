package sitecore

import (
	"context"
	"path/filepath"
	"testing"
)

func setupTestDBStore(t *testing.T) *DBStore {
	t.Helper()
	s, err := NewDBStore(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDBStoreInquiryRoundTrip(t *testing.T) {
	s := setupTestDBStore(t)
	ctx := context.Background()

	q, err := s.CreateInquiry(ctx, NewInquiry{
		Name:        "Jane Doe",
		Email:       "jane@x.com",
		Company:     "Acme",
		InquiryType: "web-development",
		Message:     "Need a new site please",
	})
	if err != nil {
		t.Fatalf("CreateInquiry failed: %v", err)
	}
	if q.ID == "" {
		t.Fatal("id should be assigned")
	}
	if q.Status != StatusNew {
		t.Errorf("Status = %q, want %q", q.Status, StatusNew)
	}

	got, found, err := s.GetInquiry(ctx, q.ID)
	if err != nil || !found {
		t.Fatalf("GetInquiry = (%v, %v), want found", found, err)
	}
	if got.Name != q.Name || got.Email != q.Email || got.Company != q.Company || got.Message != q.Message {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, q)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should survive the round trip")
	}
}

func TestDBStoreInquiriesNewestFirst(t *testing.T) {
	s := setupTestDBStore(t)
	ctx := context.Background()

	first, _ := s.CreateInquiry(ctx, NewInquiry{Name: "First", Email: "f@x.com", InquiryType: "t", Message: "m"})
	second, _ := s.CreateInquiry(ctx, NewInquiry{Name: "Second", Email: "s@x.com", InquiryType: "t", Message: "m"})

	inquiries, err := s.ListInquiries(ctx)
	if err != nil {
		t.Fatalf("ListInquiries failed: %v", err)
	}
	if len(inquiries) != 2 {
		t.Fatalf("got %d inquiries, want 2", len(inquiries))
	}
	if inquiries[0].ID != second.ID || inquiries[1].ID != first.ID {
		t.Error("inquiries should be ordered newest first")
	}
}

func TestDBStoreBlogCRUD(t *testing.T) {
	s := setupTestDBStore(t)
	ctx := context.Background()

	post, err := s.CreateBlogPost(ctx, NewBlogPost{
		Title:    "Hello",
		Slug:     "hello",
		Excerpt:  "e",
		Content:  "c",
		Author:   "a",
		Category: "Engineering",
	})
	if err != nil {
		t.Fatalf("CreateBlogPost failed: %v", err)
	}

	bySlug, found, err := s.GetBlogPostBySlug(ctx, "hello")
	if err != nil || !found {
		t.Fatalf("GetBlogPostBySlug = (%v, %v), want found", found, err)
	}
	if bySlug.ID != post.ID {
		t.Errorf("ID = %q, want %q", bySlug.ID, post.ID)
	}

	// Draft is excluded from the published listing until published.
	published, err := s.ListBlogPosts(ctx, true)
	if err != nil {
		t.Fatalf("ListBlogPosts failed: %v", err)
	}
	if len(published) != 0 {
		t.Errorf("published = %d posts, want 0", len(published))
	}

	pub := true
	updated, found, err := s.UpdateBlogPost(ctx, post.ID, BlogPostPatch{Published: &pub})
	if err != nil || !found {
		t.Fatalf("UpdateBlogPost = (%v, %v), want found", found, err)
	}
	if !updated.Published {
		t.Error("Published should be true after patch")
	}
	if updated.Title != "Hello" || updated.Content != "c" {
		t.Error("patch must leave unspecified fields unchanged")
	}

	published, _ = s.ListBlogPosts(ctx, true)
	if len(published) != 1 {
		t.Errorf("published = %d posts, want 1", len(published))
	}

	deleted, err := s.DeleteBlogPost(ctx, post.ID)
	if err != nil || !deleted {
		t.Fatalf("first delete = (%v, %v), want (true, nil)", deleted, err)
	}
	deleted, err = s.DeleteBlogPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("second delete must not error: %v", err)
	}
	if deleted {
		t.Error("second delete should report false")
	}
}

func TestDBStoreProjectOrderingAndTechStack(t *testing.T) {
	s := setupTestDBStore(t)
	ctx := context.Background()

	for _, order := range []int{3, 1, 2} {
		if _, err := s.CreateProject(ctx, NewPortfolioProject{
			Title:     "P",
			Industry:  "i",
			Problem:   "p",
			Solution:  "s",
			Outcome:   "o",
			TechStack: []string{"Go", "SQLite", "Echo"},
			Order:     order,
		}); err != nil {
			t.Fatalf("CreateProject failed: %v", err)
		}
	}

	projects, err := s.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	want := []int{1, 2, 3}
	for i, p := range projects {
		if p.Order != want[i] {
			t.Fatalf("order at %d = %d, want %d", i, p.Order, want[i])
		}
		if len(p.TechStack) != 3 || p.TechStack[0] != "Go" || p.TechStack[2] != "Echo" {
			t.Errorf("TechStack = %v, want [Go SQLite Echo]", p.TechStack)
		}
	}
}

func TestDBStorePageViewAggregation(t *testing.T) {
	s := setupTestDBStore(t)
	ctx := context.Background()

	for _, path := range []string{"/", "/blog", "/", "/portfolio", "/blog", "/"} {
		if _, err := s.TrackPageView(ctx, NewPageView{Path: path, UserAgent: "test"}); err != nil {
			t.Fatalf("TrackPageView failed: %v", err)
		}
	}

	total, err := s.TotalPageViews(ctx)
	if err != nil {
		t.Fatalf("TotalPageViews failed: %v", err)
	}
	if total != 6 {
		t.Errorf("total = %d, want 6", total)
	}

	stats, err := s.PageViewStats(ctx)
	if err != nil {
		t.Fatalf("PageViewStats failed: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("stats = %d paths, want 3", len(stats))
	}
	if stats[0].Path != "/" || stats[0].Views != 3 {
		t.Errorf("top stat = %+v, want {/ 3}", stats[0])
	}
	if stats[1].Path != "/blog" || stats[1].Views != 2 {
		t.Errorf("second stat = %+v, want {/blog 2}", stats[1])
	}
}

func TestDBStoreAccountUniqueUsername(t *testing.T) {
	s := setupTestDBStore(t)
	ctx := context.Background()

	if _, err := s.CreateAccount(ctx, "admin", "h.s"); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if _, err := s.CreateAccount(ctx, "admin", "h.s"); err == nil {
		t.Error("duplicate username should violate the unique constraint")
	}

	got, found, err := s.GetAccountByUsername(ctx, "admin")
	if err != nil || !found {
		t.Fatalf("GetAccountByUsername = (%v, %v), want found", found, err)
	}
	byID, found, err := s.GetAccount(ctx, got.ID)
	if err != nil || !found {
		t.Fatalf("GetAccount = (%v, %v), want found", found, err)
	}
	if byID.Username != "admin" {
		t.Errorf("Username = %q, want admin", byID.Username)
	}
}

func TestDBStoreMissesReturnNotFoundWithoutError(t *testing.T) {
	s := setupTestDBStore(t)
	ctx := context.Background()

	if _, found, err := s.GetBlogPost(ctx, "missing"); err != nil || found {
		t.Errorf("GetBlogPost miss = (%v, %v), want (false, nil)", found, err)
	}
	if _, found, err := s.GetBlogPostBySlug(ctx, "missing"); err != nil || found {
		t.Errorf("GetBlogPostBySlug miss = (%v, %v), want (false, nil)", found, err)
	}
	if _, found, err := s.GetProject(ctx, "missing"); err != nil || found {
		t.Errorf("GetProject miss = (%v, %v), want (false, nil)", found, err)
	}
	if _, found, err := s.GetInquiry(ctx, "missing"); err != nil || found {
		t.Errorf("GetInquiry miss = (%v, %v), want (false, nil)", found, err)
	}
	if _, found, err := s.UpdateInquiryStatus(ctx, "missing", StatusResolved); err != nil || found {
		t.Errorf("UpdateInquiryStatus miss = (%v, %v), want (false, nil)", found, err)
	}
	if deleted, err := s.DeleteProject(ctx, "missing"); err != nil || deleted {
		t.Errorf("DeleteProject miss = (%v, %v), want (false, nil)", deleted, err)
	}
}
