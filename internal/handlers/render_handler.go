// Package handlers exposes the render pipeline over HTTP, translating gin
// requests into schema.Parse + render.Render calls and JSON error bodies
// on failure.
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"deepprint/internal/cache"
	"deepprint/internal/fpdfcanvas"
	"deepprint/internal/render"
	"deepprint/internal/schema"
	"deepprint/internal/utils"
)

// RenderHandler serves POST /render: body is {"template": <Template JSON>,
// "data": <arbitrary JSON>}, response is the rendered PDF bytes.
type RenderHandler struct {
	fonts           *cache.FontCache
	fontDir         string
	defaultPageSize string
}

// NewRenderHandler builds a handler backed by the process-wide font cache.
// fontDir is where non-core font families are loaded from; defaultPageSize
// names the fallback page size (e.g. "A4", "Letter") used when a template
// declares an adaptive-height canvas with no explicit height.
func NewRenderHandler(fontDir, defaultPageSize string) *RenderHandler {
	return &RenderHandler{
		fonts:           cache.GetFontCache(),
		fontDir:         fontDir,
		defaultPageSize: defaultPageSize,
	}
}

type renderRequest struct {
	Template json.RawMessage `json:"template"`
	Data     json.RawMessage `json:"data"`
}

// HandleRender handles POST /render.
func (h *RenderHandler) HandleRender(c *gin.Context) {
	utils.LogInfo("received render request")

	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("error binding request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	tmpl, err := schema.Parse(req.Template)
	if err != nil {
		utils.LogError("error parsing template: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var data interface{}
	if len(req.Data) > 0 {
		if err := json.Unmarshal(req.Data, &data); err != nil {
			utils.LogError("error parsing data document: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid data document: %v", err)})
			return
		}
	}

	orientation := "P"
	if tmpl.Canvas.Orientation == schema.OrientationLandscape {
		orientation = "L"
	}
	height := tmpl.Canvas.Height
	if tmpl.Canvas.Orientation == schema.OrientationAdaptiveHeight {
		height = h.adaptiveHeightHint(tmpl)
	}

	pdf := fpdfcanvas.NewDocument(tmpl.Canvas.Width, height, orientation)
	backend := fpdfcanvas.New(pdf, h.fonts, h.fontDir)

	if err := render.Render(backend, tmpl, data); err != nil {
		utils.LogError("error rendering template: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("error encoding pdf: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pdf encoding failed"})
		return
	}

	utils.LogInfo("rendered pdf of %d bytes", buf.Len())
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// HandleHealth handles GET /healthz.
func (h *RenderHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// adaptiveHeightHint picks a generous page height for orientation=3
// templates, whose declared height is only a minimum hint; the real page
// height is normally supplied by the host. The handler has no host-provided
// value, so it falls back to the declared height or the configured default
// page size.
func (h *RenderHandler) adaptiveHeightHint(tmpl *schema.Template) float64 {
	if tmpl.Canvas.Height > 0 {
		return tmpl.Canvas.Height
	}
	_, height := pageSizePoints(h.defaultPageSize)
	return height
}

// pageSizePoints returns the width/height in points for a named page size,
// falling back to US Letter for an unrecognised or empty name.
func pageSizePoints(name string) (float64, float64) {
	switch strings.ToUpper(name) {
	case "A4":
		return 595.28, 841.89
	case "LEGAL":
		return 612, 1008
	default:
		return 612, 792 // Letter
	}
}
