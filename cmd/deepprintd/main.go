// Command deepprintd serves the render pipeline over HTTP: POST /render
// takes a template and a data document and returns a rendered PDF.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"deepprint/internal/handlers"
)

// ServerConfig is the process's ad-hoc configuration: flags with
// environment-variable fallbacks, zero-value defaults filled in by
// loadConfig. There is no configuration file — the surface (listen
// address, font directory, default page size) is too small to warrant one.
type ServerConfig struct {
	Addr            string
	FontDir         string
	DefaultPageSize string
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func loadConfig() ServerConfig {
	addr := flag.String("addr", envOr("DEEPPRINT_ADDR", ":8080"), "address to listen on")
	fontDir := flag.String("font-dir", envOr("DEEPPRINT_FONT_DIR", ""), "directory to load non-core font families from")
	pageSize := flag.String("page-size", envOr("DEEPPRINT_PAGE_SIZE", "Letter"), "default page size for adaptive-height canvases with no declared height")
	flag.Parse()
	return ServerConfig{Addr: *addr, FontDir: *fontDir, DefaultPageSize: *pageSize}
}

func main() {
	cfg := loadConfig()

	router := gin.Default()
	renderHandler := handlers.NewRenderHandler(cfg.FontDir, cfg.DefaultPageSize)

	router.POST("/render", renderHandler.HandleRender)
	router.GET("/healthz", renderHandler.HandleHealth)

	log.Printf("[INFO] deepprintd listening on %s", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "deepprintd: %v\n", err)
		os.Exit(1)
	}
}
