package interiorgen

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/roihacks/interiorgen/generator"
	"github.com/roihacks/interiorgen/markdown"
	"github.com/roihacks/interiorgen/views"
)

const generationIDKey = "generation_id"

// generationSession resolves the generator state for this browser via the
// cookie session, minting and persisting a fresh id when none exists yet.
func (a *App) generationSession(c echo.Context) (string, *generator.Session) {
	var prev string
	sess, err := session.Get(sessionName, c)
	if err == nil {
		prev, _ = sess.Values[generationIDKey].(string)
	}

	id, gen := a.Sessions.GetOrCreate(prev)
	if err == nil && id != prev {
		sess.Values[generationIDKey] = id
		_ = sess.Save(c.Request(), c.Response())
	}
	return id, gen
}

func selectionsFromRequest(c echo.Context) generator.Selections {
	get := func(name string) string {
		if v := c.FormValue(name); v != "" {
			return v
		}
		return c.QueryParam(name)
	}
	sel := generator.Selections{
		Room:    get("room"),
		Style:   get("style"),
		Details: get("details"),
		Size:    get("size"),
	}
	def := generator.DefaultSelections()
	if sel.Room == "" {
		sel.Room = def.Room
	}
	if sel.Style == "" {
		sel.Style = def.Style
	}
	if sel.Size == "" {
		sel.Size = def.Size
	}
	return sel
}

func (a *App) resultsFragment(c echo.Context, code int, sel generator.Selections, view generator.View) error {
	return RenderStatus(c, code, views.GeneratorResults(sel, view, CsrfToken(c)))
}

// handleGenerate runs one generation synchronously and returns the refreshed
// results panel. Failures land in the session's error state and render
// inline; the result list is never touched on failure.
func (a *App) handleGenerate(c echo.Context) error {
	_, gen := a.generationSession(c)
	sel := selectionsFromRequest(c)

	if !a.Generator.Configured() {
		view := gen.Snapshot()
		view.State = generator.StateError
		view.Error = "Image generation is not configured on this server."
		return a.resultsFragment(c, http.StatusServiceUnavailable, sel, view)
	}

	if err := gen.Begin(); err != nil {
		if errors.Is(err, generator.ErrBusy) {
			view := gen.Snapshot()
			view.State = generator.StateError
			view.Error = "A design is already being generated. Hang on."
			return a.resultsFragment(c, http.StatusTooManyRequests, sel, view)
		}
		return err
	}

	prompt := generator.ComposePrompt(sel)
	res, err := a.Generator.Generate(c.Request().Context(), prompt, sel.Size)
	if err != nil {
		c.Logger().Errorf("generate failed: %v", err)
		gen.Fail("Image generation failed. Please try again.")
		return a.resultsFragment(c, http.StatusOK, sel, gen.Snapshot())
	}

	gen.Succeed(generator.GeneratedImage{URL: res.URL, Prompt: res.Prompt})
	return a.resultsFragment(c, http.StatusOK, sel, gen.Snapshot())
}

// handleGeneratePrompt returns the composed prompt as plain text for the
// live preview. The same pure function builds the real request, so the
// preview never lies.
func (a *App) handleGeneratePrompt(c echo.Context) error {
	sel := selectionsFromRequest(c)
	return c.String(http.StatusOK, generator.ComposePrompt(sel))
}

func (a *App) handleGeneratePage(c echo.Context) error {
	_, gen := a.generationSession(c)
	switch c.FormValue("dir") {
	case "next":
		gen.NextPage()
	case "prev":
		gen.PrevPage()
	}
	return a.resultsFragment(c, http.StatusOK, selectionsFromRequest(c), gen.Snapshot())
}

// handleDownload proxies a generated image as an attachment so the browser
// saves it instead of navigating to the image host.
func (a *App) handleDownload(c echo.Context) error {
	_, gen := a.generationSession(c)

	index, err := strconv.Atoi(c.QueryParam("index"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Bad image index")
	}
	img, ok := gen.ImageAt(index)
	if !ok {
		return c.String(http.StatusNotFound, "Image not found")
	}

	data, contentType, err := a.Generator.FetchImage(c.Request().Context(), img.URL)
	if err != nil {
		c.Logger().Errorf("download failed: %v", err)
		return c.String(http.StatusBadGateway, "Could not fetch the image. Please try again.")
	}

	room := markdown.Slug(c.QueryParam("room"))
	if room == "" {
		room = generator.DefaultSelections().Room
	}
	style := markdown.Slug(c.QueryParam("style"))
	if style == "" {
		style = generator.DefaultSelections().Style
	}
	filename := fmt.Sprintf("interior-design-%s-%s-%d.jpg", room, style, index+1)

	c.Response().Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, contentType, data)
}
