package sitecore

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *App) handleLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return respondFail(c, http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "Invalid request body")
	}
	if errs := validateCredentials(req.Username, req.Password); len(errs) > 0 {
		return respondInvalid(c, errs)
	}
	account, found, err := a.Store.GetAccountByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return err
	}
	// Same generic failure for unknown usernames and wrong passwords.
	if !found || !VerifyPassword(req.Password, account.Password) {
		a.loginLimiter.Record(c.RealIP())
		return respondFail(c, http.StatusUnauthorized, "Invalid credentials")
	}
	if err := setAdminSession(c, account.ID); err != nil {
		return err
	}
	return respondOK(c, account)
}

func (a *App) handleLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "Logged out"})
}

func (a *App) handleMe(c echo.Context) error {
	id := accountID(c)
	if id == "" {
		return respondFail(c, http.StatusUnauthorized, "Authentication required")
	}
	account, found, err := a.Store.GetAccount(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !found {
		// Session references an account that no longer exists.
		_ = clearAdminSession(c)
		return respondFail(c, http.StatusUnauthorized, "Authentication required")
	}
	return respondOK(c, account)
}

// handleSetup bootstraps the single admin account and seeds default
// portfolio content. It refuses to run twice.
func (a *App) handleSetup(c echo.Context) error {
	ctx := c.Request().Context()
	_, exists, err := a.Store.GetAccountByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		return err
	}
	if exists {
		return respondFail(c, http.StatusBadRequest, "Admin account already exists")
	}
	hash, err := HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}
	if _, err := a.Store.CreateAccount(ctx, DefaultAdminUsername, hash); err != nil {
		return err
	}
	projects, err := a.Store.ListProjects(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		for _, p := range seedProjects() {
			if _, err := a.Store.CreateProject(ctx, p); err != nil {
				return err
			}
		}
	}
	return c.JSON(http.StatusOK, Envelope{Success: true,
		Message: "Admin account created (" + DefaultAdminUsername + " / " + DefaultAdminPassword + ")"})
}

func (a *App) handleListInquiries(c echo.Context) error {
	inquiries, err := a.Store.ListInquiries(c.Request().Context())
	if err != nil {
		return err
	}
	if inquiries == nil {
		inquiries = []ContactInquiry{}
	}
	return respondOK(c, inquiries)
}

type inquiryStatusRequest struct {
	Status string `json:"status"`
}

func (a *App) handleUpdateInquiryStatus(c echo.Context) error {
	var req inquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondFail(c, http.StatusBadRequest, "Invalid request body")
	}
	if errs := validateInquiryStatus(req.Status); len(errs) > 0 {
		return respondInvalid(c, errs)
	}
	inquiry, found, err := a.Store.UpdateInquiryStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	if !found {
		return respondFail(c, http.StatusNotFound, "Inquiry not found")
	}
	return respondOK(c, inquiry)
}

func (a *App) handleAdminListPosts(c echo.Context) error {
	posts, err := a.Store.ListBlogPosts(c.Request().Context(), false)
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []BlogPost{}
	}
	return respondOK(c, posts)
}

func (a *App) handleAdminGetPost(c echo.Context) error {
	post, found, err := a.Store.GetBlogPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !found {
		return respondFail(c, http.StatusNotFound, "Post not found")
	}
	return respondOK(c, post)
}

func (a *App) handleCreatePost(c echo.Context) error {
	var in NewBlogPost
	if err := c.Bind(&in); err != nil {
		return respondFail(c, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(in.Slug) == "" {
		in.Slug = Slugify(in.Title)
	}
	if errs := validateBlogPost(in); len(errs) > 0 {
		return respondInvalid(c, errs)
	}
	ctx := c.Request().Context()
	if _, taken, err := a.Store.GetBlogPostBySlug(ctx, in.Slug); err != nil {
		return err
	} else if taken {
		return respondInvalid(c, []FieldError{{Field: "slug", Message: "slug is already in use"}})
	}
	post, err := a.Store.CreateBlogPost(ctx, in)
	if err != nil {
		return err
	}
	return respondCreated(c, post, "")
}

func (a *App) handleUpdatePost(c echo.Context) error {
	var patch BlogPostPatch
	if err := c.Bind(&patch); err != nil {
		return respondFail(c, http.StatusBadRequest, "Invalid request body")
	}
	ctx := c.Request().Context()
	id := c.Param("id")
	if patch.Slug != nil {
		if other, taken, err := a.Store.GetBlogPostBySlug(ctx, *patch.Slug); err != nil {
			return err
		} else if taken && other.ID != id {
			return respondInvalid(c, []FieldError{{Field: "slug", Message: "slug is already in use"}})
		}
	}
	post, found, err := a.Store.UpdateBlogPost(ctx, id, patch)
	if err != nil {
		return err
	}
	if !found {
		return respondFail(c, http.StatusNotFound, "Post not found")
	}
	return respondOK(c, post)
}

func (a *App) handleDeletePost(c echo.Context) error {
	// Deleting a missing id is idempotent: both outcomes report success.
	deleted, err := a.Store.DeleteBlogPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondOK(c, map[string]bool{"deleted": deleted})
}

func (a *App) handleAdminListProjects(c echo.Context) error {
	projects, err := a.Store.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []PortfolioProject{}
	}
	return respondOK(c, projects)
}

func (a *App) handleCreateProject(c echo.Context) error {
	var in NewPortfolioProject
	if err := c.Bind(&in); err != nil {
		return respondFail(c, http.StatusBadRequest, "Invalid request body")
	}
	in.TechStack = FilterEmpty(in.TechStack)
	if errs := validateProject(in); len(errs) > 0 {
		return respondInvalid(c, errs)
	}
	project, err := a.Store.CreateProject(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respondCreated(c, project, "")
}

func (a *App) handleUpdateProject(c echo.Context) error {
	var patch PortfolioProjectPatch
	if err := c.Bind(&patch); err != nil {
		return respondFail(c, http.StatusBadRequest, "Invalid request body")
	}
	if patch.TechStack != nil {
		filtered := FilterEmpty(*patch.TechStack)
		patch.TechStack = &filtered
	}
	project, found, err := a.Store.UpdateProject(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	if !found {
		return respondFail(c, http.StatusNotFound, "Project not found")
	}
	return respondOK(c, project)
}

func (a *App) handleDeleteProject(c echo.Context) error {
	deleted, err := a.Store.DeleteProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondOK(c, map[string]bool{"deleted": deleted})
}

// AnalyticsSummary is the admin dashboard aggregate.
type AnalyticsSummary struct {
	TotalViews     int        `json:"totalViews"`
	TotalInquiries int        `json:"totalInquiries"`
	ConversionRate float64    `json:"conversionRate"`
	PageStats      []PageStat `json:"pageStats"`
}

func (a *App) handleAnalytics(c echo.Context) error {
	ctx := c.Request().Context()
	total, err := a.Store.TotalPageViews(ctx)
	if err != nil {
		return err
	}
	stats, err := a.Store.PageViewStats(ctx)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = []PageStat{}
	}
	inquiries, err := a.Store.ListInquiries(ctx)
	if err != nil {
		return err
	}
	summary := AnalyticsSummary{
		TotalViews:     total,
		TotalInquiries: len(inquiries),
		PageStats:      stats,
	}
	// A zero-view denominator yields zero, not a division error.
	if total > 0 {
		summary.ConversionRate = float64(len(inquiries)) / float64(total)
	}
	return respondOK(c, summary)
}
