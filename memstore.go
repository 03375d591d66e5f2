package sitecore

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"
)

// MemStore is an in-memory Storage used when no database path is configured.
// It is a development fallback: state lives for the process lifetime only.
// Each entity kind is an insertion-ordered id map; ids come from a counter
// owned by the store instance, so independent stores (e.g. in tests) do not
// interfere.
type MemStore struct {
	mu sync.RWMutex

	accounts  map[string]Account
	inquiries map[string]ContactInquiry
	posts     map[string]BlogPost
	projects  map[string]PortfolioProject
	views     map[string]PageView

	accountOrder []string
	inquiryOrder []string
	postOrder    []string
	projectOrder []string
	viewOrder    []string

	nextID int
}

// NewMemStore creates an empty in-memory store and seeds it with one sample
// blog post and the default portfolio case studies.
func NewMemStore() *MemStore {
	s := &MemStore{
		accounts:  make(map[string]Account),
		inquiries: make(map[string]ContactInquiry),
		posts:     make(map[string]BlogPost),
		projects:  make(map[string]PortfolioProject),
		views:     make(map[string]PageView),
		nextID:    1,
	}
	ctx := context.Background()
	_, _ = s.CreateBlogPost(ctx, seedBlogPost())
	for _, p := range seedProjects() {
		_, _ = s.CreateProject(ctx, p)
	}
	return s
}

// newID must be called with the write lock held.
func (s *MemStore) newID() string {
	id := strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

func (s *MemStore) GetAccount(_ context.Context, id string) (Account, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	return a, ok, nil
}

func (s *MemStore) GetAccountByUsername(_ context.Context, username string) (Account, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.accountOrder {
		if s.accounts[id].Username == username {
			return s.accounts[id], true, nil
		}
	}
	return Account{}, false, nil
}

func (s *MemStore) CreateAccount(_ context.Context, username, passwordHash string) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := Account{
		ID:        s.newID(),
		Username:  username,
		Password:  passwordHash,
		CreatedAt: time.Now().UTC(),
	}
	s.accounts[a.ID] = a
	s.accountOrder = append(s.accountOrder, a.ID)
	return a, nil
}

func (s *MemStore) CreateInquiry(_ context.Context, in NewInquiry) (ContactInquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := ContactInquiry{
		ID:          s.newID(),
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		InquiryType: in.InquiryType,
		Message:     in.Message,
		Status:      StatusNew,
		CreatedAt:   time.Now().UTC(),
	}
	s.inquiries[q.ID] = q
	s.inquiryOrder = append(s.inquiryOrder, q.ID)
	return q, nil
}

func (s *MemStore) ListInquiries(_ context.Context) ([]ContactInquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Newest first: reverse insertion order matches descending creation time.
	out := make([]ContactInquiry, 0, len(s.inquiryOrder))
	for i := len(s.inquiryOrder) - 1; i >= 0; i-- {
		out = append(out, s.inquiries[s.inquiryOrder[i]])
	}
	return out, nil
}

func (s *MemStore) GetInquiry(_ context.Context, id string) (ContactInquiry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.inquiries[id]
	return q, ok, nil
}

func (s *MemStore) UpdateInquiryStatus(_ context.Context, id, status string) (ContactInquiry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.inquiries[id]
	if !ok {
		return ContactInquiry{}, false, nil
	}
	q.Status = status
	s.inquiries[id] = q
	return q, true, nil
}

func (s *MemStore) CreateBlogPost(_ context.Context, in NewBlogPost) (BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	p := BlogPost{
		ID:         s.newID(),
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
	s.posts[p.ID] = p
	s.postOrder = append(s.postOrder, p.ID)
	return p, nil
}

func (s *MemStore) ListBlogPosts(_ context.Context, publishedOnly bool) ([]BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]BlogPost, 0, len(s.postOrder))
	for i := len(s.postOrder) - 1; i >= 0; i-- {
		p := s.posts[s.postOrder[i]]
		if publishedOnly && !p.Published {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *MemStore) GetBlogPost(_ context.Context, id string) (BlogPost, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	return p, ok, nil
}

func (s *MemStore) GetBlogPostBySlug(_ context.Context, slug string) (BlogPost, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.postOrder {
		if s.posts[id].Slug == slug {
			return s.posts[id], true, nil
		}
	}
	return BlogPost{}, false, nil
}

func (s *MemStore) UpdateBlogPost(_ context.Context, id string, patch BlogPostPatch) (BlogPost, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return BlogPost{}, false, nil
	}
	p = applyBlogPostPatch(p, patch)
	p.UpdatedAt = time.Now().UTC()
	s.posts[id] = p
	return p, true, nil
}

func (s *MemStore) DeleteBlogPost(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return false, nil
	}
	delete(s.posts, id)
	s.postOrder = removeID(s.postOrder, id)
	return true, nil
}

func (s *MemStore) CreateProject(_ context.Context, in NewPortfolioProject) (PortfolioProject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := PortfolioProject{
		ID:        s.newID(),
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
	s.projects[p.ID] = p
	s.projectOrder = append(s.projectOrder, p.ID)
	return p, nil
}

func (s *MemStore) ListProjects(_ context.Context) ([]PortfolioProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PortfolioProject, 0, len(s.projectOrder))
	for _, id := range s.projectOrder {
		out = append(out, s.projects[id])
	}
	// Stable sort keeps insertion order for equal Order values.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *MemStore) GetProject(_ context.Context, id string) (PortfolioProject, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	return p, ok, nil
}

func (s *MemStore) UpdateProject(_ context.Context, id string, patch PortfolioProjectPatch) (PortfolioProject, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return PortfolioProject{}, false, nil
	}
	p = applyProjectPatch(p, patch)
	s.projects[id] = p
	return p, true, nil
}

func (s *MemStore) DeleteProject(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return false, nil
	}
	delete(s.projects, id)
	s.projectOrder = removeID(s.projectOrder, id)
	return true, nil
}

func (s *MemStore) TrackPageView(_ context.Context, in NewPageView) (PageView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := PageView{
		ID:        s.newID(),
		Path:      in.Path,
		Referrer:  in.Referrer,
		UserAgent: in.UserAgent,
		Timestamp: time.Now().UTC(),
	}
	s.views[v.ID] = v
	s.viewOrder = append(s.viewOrder, v.ID)
	return v, nil
}

func (s *MemStore) PageViewStats(_ context.Context) ([]PageStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	var paths []string
	for _, id := range s.viewOrder {
		path := s.views[id].Path
		if counts[path] == 0 {
			paths = append(paths, path)
		}
		counts[path]++
	}
	stats := make([]PageStat, 0, len(paths))
	for _, p := range paths {
		stats = append(stats, PageStat{Path: p, Views: counts[p]})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Views > stats[j].Views })
	return stats, nil
}

func (s *MemStore) TotalPageViews(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.views), nil
}

// Close is a no-op for the in-memory store.
func (s *MemStore) Close() error { return nil }

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
