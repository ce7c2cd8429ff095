package main

import (
	"html/template"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"linkhub/internal/broadcast"
	"linkhub/internal/config"
	"linkhub/internal/database"
	"linkhub/internal/handlers"
	"linkhub/internal/store"
	"linkhub/internal/web"
)

func main() {
	// 1. Load Config (resolves the admin secret)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.AdminSecret == "" {
		log.Printf("Warning: no admin secret configured, admin routes will deny all requests")
	}

	// 2. Init DB
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// 3. Live update hub
	hub := broadcast.NewHub()

	// 4. HTTP Server & HTML Renderer
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	renderer := &web.TemplateRenderer{
		Templates: map[string]*template.Template{
			"index.html": template.Must(template.ParseFiles("web/templates/layout.html", "web/templates/index.html")),
			"chub.html":  template.Must(template.ParseFiles("web/templates/layout.html", "web/templates/chub.html")),
			"forum.html": template.Must(template.ParseFiles("web/templates/layout.html", "web/templates/forum.html")),
			"edit.html":  template.Must(template.ParseFiles("web/templates/layout.html", "web/templates/edit.html")),
			"admin.html": template.Must(template.ParseFiles("web/templates/layout.html", "web/templates/admin.html")),
		},
	}
	e.Renderer = renderer

	// Static files for Web UI
	e.Static("/static", "web/static")

	handlers.RegisterRoutes(e, store.NewResourceStore(db), store.NewPostStore(db), hub, cfg)

	log.Printf("%s starting on %s...", cfg.ServerName, cfg.ListenAddr)
	e.Logger.Fatal(e.Start(cfg.ListenAddr))
}
