package sitecore

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleContact(c echo.Context) error {
	var in NewInquiry
	if err := c.Bind(&in); err != nil {
		return respondFail(c, http.StatusBadRequest, "Invalid request body")
	}
	if errs := validateInquiry(in); len(errs) > 0 {
		return respondInvalid(c, errs)
	}
	inquiry, err := a.Store.CreateInquiry(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respondCreated(c, map[string]string{
		"id":    inquiry.ID,
		"name":  inquiry.Name,
		"email": inquiry.Email,
	}, "Thank you for your inquiry. We will get back to you soon!")
}

func (a *App) handleListPublishedPosts(c echo.Context) error {
	posts, err := a.Store.ListBlogPosts(c.Request().Context(), true)
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []BlogPost{}
	}
	return respondOK(c, posts)
}

// handleGetPostBySlug serves a single post. Drafts are only visible with an
// admin session; to anyone else they are indistinguishable from missing posts.
func (a *App) handleGetPostBySlug(c echo.Context) error {
	post, found, err := a.Store.GetBlogPostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	if !found || (!post.Published && !IsAdmin(c)) {
		return respondFail(c, http.StatusNotFound, "Post not found")
	}
	return respondOK(c, post)
}

func (a *App) handleListProjects(c echo.Context) error {
	projects, err := a.Store.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []PortfolioProject{}
	}
	return respondOK(c, projects)
}

// handlePageView records a page view. Instrumentation must never break the
// browsing experience: validation and persistence failures are logged and
// the client still gets a success response.
func (a *App) handlePageView(c echo.Context) error {
	ok := func() error { return c.JSON(http.StatusOK, Envelope{Success: true}) }

	if !a.pageViewLimiter.Allow(c.RealIP()) {
		return ok()
	}
	var in NewPageView
	if err := c.Bind(&in); err != nil {
		return ok()
	}
	if in.UserAgent == "" {
		in.UserAgent = c.Request().UserAgent()
	}
	if errs := validatePageView(in); len(errs) > 0 {
		return ok()
	}
	if _, err := a.Store.TrackPageView(c.Request().Context(), in); err != nil {
		c.Logger().Errorf("track page view: %v", err)
	}
	return ok()
}
