package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"linkhub/internal/broadcast"
	"linkhub/internal/config"
	"linkhub/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ResourceHandler struct {
	resources *store.ResourceStore
	posts     *store.PostStore
	hub       *broadcast.Hub
	cfg       *config.Config
}

func RegisterRoutes(e *echo.Echo, resources *store.ResourceStore, posts *store.PostStore, hub *broadcast.Hub, cfg *config.Config) {
	h := &ResourceHandler{resources: resources, posts: posts, hub: hub, cfg: cfg}

	e.GET("/", h.Index)
	e.GET("/chub", h.Chub)
	e.GET("/forum", h.Forum)
	e.POST("/forum/post", h.CreatePost)
	e.POST("/submit", h.Submit)
	e.GET("/edit/:id", h.EditForm)
	e.POST("/update/:id", h.Update)
	e.POST("/admin/update/:id", h.AdminUpdate)
	e.POST("/verify-code", h.VerifyCode)
	e.POST("/verify/:id", h.ToggleVerified)
	e.POST("/delete/:id", h.Delete)
	e.GET("/admin/:code/:id", h.AdminView)
	e.GET("/ws", h.Subscribe)
}

// adminMatch reports whether the submitted code grants admin access. An
// empty configured secret never matches anything, including an empty code.
func (h *ResourceHandler) adminMatch(code string) bool {
	if h.cfg.AdminSecret == "" {
		return false
	}
	return strings.TrimSpace(code) == h.cfg.AdminSecret
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *ResourceHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", map[string]interface{}{
		"ServerName": h.cfg.ServerName,
	})
}

func (h *ResourceHandler) Chub(c echo.Context) error {
	resources, err := h.resources.ListAll()
	if err != nil {
		c.Logger().Errorf("failed to list resources: %v", err)
		return c.String(http.StatusInternalServerError, "Database error")
	}
	return c.Render(http.StatusOK, "chub.html", map[string]interface{}{
		"Resources": resources,
	})
}

func (h *ResourceHandler) Forum(c echo.Context) error {
	posts, err := h.posts.ListAll()
	if err != nil {
		c.Logger().Errorf("failed to list posts: %v", err)
		return c.String(http.StatusInternalServerError, "Database error")
	}
	return c.Render(http.StatusOK, "forum.html", map[string]interface{}{
		"Posts": posts,
	})
}

func (h *ResourceHandler) CreatePost(c echo.Context) error {
	title := c.FormValue("title")
	if title == "" {
		return c.String(http.StatusBadRequest, "title is required")
	}
	if _, err := h.posts.Insert(title, c.FormValue("content"), c.FormValue("author")); err != nil {
		c.Logger().Errorf("failed to insert post: %v", err)
		return c.String(http.StatusInternalServerError, "Database error")
	}
	return c.Redirect(http.StatusFound, "/forum")
}

func (h *ResourceHandler) Submit(c echo.Context) error {
	title := c.FormValue("title")
	url := c.FormValue("url")
	if title == "" {
		return c.String(http.StatusBadRequest, "title is required")
	}
	if url == "" {
		return c.String(http.StatusBadRequest, "url is required")
	}

	resource, err := h.resources.Insert(title, url, c.FormValue("description"), strings.TrimSpace(c.FormValue("code")))
	if err != nil {
		c.Logger().Errorf("failed to insert resource: %v", err)
		return c.String(http.StatusInternalServerError, "Database error")
	}

	// Push the new row to every open viewer; the submitter just gets the
	// redirect.
	h.hub.Publish(broadcast.Event{Event: "resource_added", Data: resource})

	return c.Redirect(http.StatusFound, "/chub")
}

func (h *ResourceHandler) EditForm(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return c.String(http.StatusNotFound, "resource not found")
	}
	resource, err := h.resources.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.String(http.StatusNotFound, "resource not found")
		}
		c.Logger().Errorf("failed to fetch resource %d: %v", id, err)
		return c.String(http.StatusInternalServerError, "Database error")
	}
	return c.Render(http.StatusOK, "edit.html", map[string]interface{}{
		"Resource": resource,
	})
}

func (h *ResourceHandler) Update(c echo.Context) error {
	return h.update(c, false)
}

func (h *ResourceHandler) AdminUpdate(c echo.Context) error {
	if !h.adminMatch(c.FormValue("adminCode")) {
		return c.String(http.StatusForbidden, "invalid admin code")
	}
	return h.update(c, true)
}

// update rewrites a resource's content fields. A user edit clears the
// verified flag; the admin path leaves it untouched.
func (h *ResourceHandler) update(c echo.Context, preserveVerified bool) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return c.String(http.StatusNotFound, "resource not found")
	}
	title := c.FormValue("title")
	url := c.FormValue("url")
	if title == "" {
		return c.String(http.StatusBadRequest, "title is required")
	}
	if url == "" {
		return c.String(http.StatusBadRequest, "url is required")
	}

	if _, err := h.resources.Update(id, title, url, c.FormValue("description"), preserveVerified); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.String(http.StatusNotFound, "resource not found")
		}
		c.Logger().Errorf("failed to update resource %d: %v", id, err)
		return c.String(http.StatusInternalServerError, "Database error")
	}
	return c.Redirect(http.StatusFound, "/chub")
}

func (h *ResourceHandler) VerifyCode(c echo.Context) error {
	var req struct {
		ID   uint   `json:"id" form:"id"`
		Code string `json:"code" form:"code"`
	}
	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id is required"})
	}

	resource, err := h.resources.GetByID(req.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "resource not found"})
		}
		c.Logger().Errorf("failed to fetch resource %d: %v", req.ID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database error"})
	}

	code := strings.TrimSpace(req.Code)
	admin := h.adminMatch(code)
	ok := admin || code == strings.TrimSpace(resource.Code)
	return c.JSON(http.StatusOK, map[string]interface{}{"ok": ok, "admin": admin})
}

func (h *ResourceHandler) ToggleVerified(c echo.Context) error {
	var req struct {
		AdminCode string `json:"adminCode" form:"adminCode"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if !h.adminMatch(req.AdminCode) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "invalid admin code"})
	}

	id, ok := parseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "resource not found"})
	}
	verified, err := h.resources.ToggleVerified(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "resource not found"})
		}
		c.Logger().Errorf("failed to toggle resource %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database error"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"id": id, "verified": verified})
}

func (h *ResourceHandler) Delete(c echo.Context) error {
	// Deletion is idempotent: an unknown or malformed id still lands back
	// on the hub.
	if id, ok := parseID(c.Param("id")); ok {
		if err := h.resources.Delete(id); err != nil {
			c.Logger().Errorf("failed to delete resource %d: %v", id, err)
			return c.String(http.StatusInternalServerError, "Database error")
		}
	}
	return c.Redirect(http.StatusFound, "/chub")
}

func (h *ResourceHandler) AdminView(c echo.Context) error {
	if !h.adminMatch(c.Param("code")) {
		return c.String(http.StatusForbidden, "invalid admin code")
	}
	id, ok := parseID(c.Param("id"))
	if !ok {
		return c.String(http.StatusNotFound, "resource not found")
	}
	resource, err := h.resources.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.String(http.StatusNotFound, "resource not found")
		}
		c.Logger().Errorf("failed to fetch resource %d: %v", id, err)
		return c.String(http.StatusInternalServerError, "Database error")
	}
	return c.Render(http.StatusOK, "admin.html", map[string]interface{}{
		"Resource":  resource,
		"AdminCode": h.cfg.AdminSecret,
	})
}

func (h *ResourceHandler) Subscribe(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		c.Logger().Errorf("websocket upgrade failed: %v", err)
		return err
	}
	broadcast.ServeConn(h.hub, conn)
	return nil
}
