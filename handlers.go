package interiorgen

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roihacks/interiorgen/generator"
	"github.com/roihacks/interiorgen/views"
)

func (a *App) handleHome(c echo.Context) error {
	_, sess := a.generationSession(c)
	return Render(c, views.Home(a.Config.viewConfig(), generator.DefaultSelections(), sess.Snapshot(), CsrfToken(c)))
}

func (a *App) handleBlogList(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	pageNum, _ := strconv.Atoi(c.QueryParam("page"))
	pagePosts, pageNum, pageCount := Paginate(posts, pageNum, a.Config.PostsPerPage)
	return Render(c, views.BlogList(a.Config.viewConfig(), pagePosts, pageNum, pageCount))
}

// handlePost is the catch-all route: posts live at root-level slugs. A page
// query on an unknown slug is legacy pagination and goes back to the blog
// index; any other miss redirects there too instead of 404ing.
func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if err == ErrNotFound {
			if page := c.QueryParam("page"); page != "" {
				return c.Redirect(http.StatusFound, "/blog/?page="+page)
			}
			return c.Redirect(http.StatusFound, "/blog/")
		}
		return err
	}
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	related := RelatedPosts(post, posts, 3)
	return Render(c, views.PostPage(a.Config.viewConfig(), post, related))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, views.About(a.Config.viewConfig()))
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, views.Contact(a.Config.viewConfig(), false, CsrfToken(c)))
}

// handleContactSubmit acknowledges the message without storing it. There is
// no mail backend; the page exists for trust signals and SEO.
func (a *App) handleContactSubmit(c echo.Context) error {
	return Render(c, views.Contact(a.Config.viewConfig(), true, CsrfToken(c)))
}

func (a *App) handleSitemapPage(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return Render(c, views.SitemapPage(a.Config.viewConfig(), posts))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts()
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", strings.TrimSuffix(a.Config.URL, "/"))
	return c.String(http.StatusOK, body)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.viewConfig()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.Config.viewConfig()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
