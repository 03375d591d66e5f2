package sitecore

import "context"

// Storage is the persistence contract shared by the in-memory and SQLite
// backends. Lookups that find nothing return the zero value, false, and a
// nil error; only infrastructure failures produce a non-nil error. Deletes
// are idempotent: deleting a missing id reports false without erroring.
type Storage interface {
	GetAccount(ctx context.Context, id string) (Account, bool, error)
	GetAccountByUsername(ctx context.Context, username string) (Account, bool, error)
	CreateAccount(ctx context.Context, username, passwordHash string) (Account, error)

	CreateInquiry(ctx context.Context, in NewInquiry) (ContactInquiry, error)
	ListInquiries(ctx context.Context) ([]ContactInquiry, error)
	GetInquiry(ctx context.Context, id string) (ContactInquiry, bool, error)
	UpdateInquiryStatus(ctx context.Context, id, status string) (ContactInquiry, bool, error)

	CreateBlogPost(ctx context.Context, in NewBlogPost) (BlogPost, error)
	ListBlogPosts(ctx context.Context, publishedOnly bool) ([]BlogPost, error)
	GetBlogPost(ctx context.Context, id string) (BlogPost, bool, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (BlogPost, bool, error)
	UpdateBlogPost(ctx context.Context, id string, patch BlogPostPatch) (BlogPost, bool, error)
	DeleteBlogPost(ctx context.Context, id string) (bool, error)

	CreateProject(ctx context.Context, in NewPortfolioProject) (PortfolioProject, error)
	ListProjects(ctx context.Context) ([]PortfolioProject, error)
	GetProject(ctx context.Context, id string) (PortfolioProject, bool, error)
	UpdateProject(ctx context.Context, id string, patch PortfolioProjectPatch) (PortfolioProject, bool, error)
	DeleteProject(ctx context.Context, id string) (bool, error)

	TrackPageView(ctx context.Context, in NewPageView) (PageView, error)
	PageViewStats(ctx context.Context) ([]PageStat, error)
	TotalPageViews(ctx context.Context) (int, error)

	Close() error
}

// applyBlogPostPatch merges non-nil patch fields into p. Shared by both
// storage backends so partial-update semantics cannot drift.
func applyBlogPostPatch(p BlogPost, patch BlogPostPatch) BlogPost {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Author != nil {
		p.Author = *patch.Author
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Published != nil {
		p.Published = *patch.Published
	}
	if patch.CoverImage != nil {
		p.CoverImage = *patch.CoverImage
	}
	return p
}

func applyProjectPatch(p PortfolioProject, patch PortfolioProjectPatch) PortfolioProject {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Industry != nil {
		p.Industry = *patch.Industry
	}
	if patch.Problem != nil {
		p.Problem = *patch.Problem
	}
	if patch.Solution != nil {
		p.Solution = *patch.Solution
	}
	if patch.Outcome != nil {
		p.Outcome = *patch.Outcome
	}
	if patch.TechStack != nil {
		p.TechStack = *patch.TechStack
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Order != nil {
		p.Order = *patch.Order
	}
	return p
}
