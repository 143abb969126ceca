package web

import (
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/pagepress/pagepress/internal/config"
	"github.com/pagepress/pagepress/internal/engine/canvas"
	"github.com/pagepress/pagepress/internal/engine/colors"
	"github.com/pagepress/pagepress/internal/engine/export"
	"github.com/pagepress/pagepress/internal/engine/palette"
	"github.com/pagepress/pagepress/internal/engine/typescale"
	"github.com/pagepress/pagepress/internal/logger"
	"github.com/pagepress/pagepress/internal/templates"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// paletteResponse is the palette with every color hex-encoded for the UI.
type paletteResponse struct {
	TextDark      string `json:"textDark"`
	TextMedium    string `json:"textMedium"`
	TextLight     string `json:"textLight"`
	TextOnPrimary string `json:"textOnPrimary"`
	OffWhite      string `json:"offWhite"`
	LightGray     string `json:"lightGray"`
	MediumGray    string `json:"mediumGray"`
	BorderGray    string `json:"borderGray"`
	PrimaryLight  string `json:"primaryLight"`
}

type scaleResponse struct {
	Display  float64 `json:"display"`
	H1       float64 `json:"h1"`
	H2       float64 `json:"h2"`
	H3       float64 `json:"h3"`
	Body     float64 `json:"body"`
	Caption  float64 `json:"caption"`
	Label    float64 `json:"label"`
	Overline float64 `json:"overline"`
}

type exportRequest struct {
	Preset   string          `json:"preset"`
	Document config.Document `json:"document"`
}

func apiRouter(log *logger.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/palette", handlePalette)
	mux.HandleFunc("/scale", handleScale)
	mux.HandleFunc("/presets", handlePresets)
	mux.HandleFunc("/templates", handleTemplates)
	mux.HandleFunc("/preview", func(w http.ResponseWriter, r *http.Request) { handlePreview(w, r, log) })
	mux.HandleFunc("/export", func(w http.ResponseWriter, r *http.Request) { handleExport(w, r, log) })
	return mux
}

func handlePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	primary, err := colors.Parse(r.URL.Query().Get("color"))
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_color", err.Error())
		return
	}

	p := palette.Generate(primary)
	writeJSON(w, http.StatusOK, paletteResponse{
		TextDark:      p.TextDark.Hex(),
		TextMedium:    p.TextMedium.Hex(),
		TextLight:     p.TextLight.Hex(),
		TextOnPrimary: p.TextOnPrimary.Hex(),
		OffWhite:      p.OffWhite.Hex(),
		LightGray:     p.LightGray.Hex(),
		MediumGray:    p.MediumGray.Hex(),
		BorderGray:    p.BorderGray.Hex(),
		PrimaryLight:  p.PrimaryLight.Hex(),
	})
}

func handleScale(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	height := 842.0
	if raw := r.URL.Query().Get("height"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			writeAPIError(w, http.StatusBadRequest, "invalid_height", "height must be a positive number")
			return
		}
		height = parsed
	}

	s := typescale.ForPageHeight(height)
	writeJSON(w, http.StatusOK, scaleResponse{
		Display: s.Display, H1: s.H1, H2: s.H2, H3: s.H3,
		Body: s.Body, Caption: s.Caption, Label: s.Label, Overline: s.Overline,
	})
}

func handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, export.Presets())
}

func handleTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, templates.Names())
}

// handlePreview renders a template from query parameters at screen scale.
// It backs the editor's live preview pane.
func handlePreview(w http.ResponseWriter, r *http.Request, log *logger.Logger) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	doc := documentFromQuery(r)
	builder, ok := templates.Lookup(doc.Template)
	if !ok {
		writeAPIError(w, http.StatusNotFound, "unknown_template", fmt.Sprintf("no template %q", doc.Template))
		return
	}

	scale := 1.0
	if raw := r.URL.Query().Get("scale"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0.25 || parsed > 4 {
			writeAPIError(w, http.StatusBadRequest, "invalid_scale", "scale must be between 0.25 and 4")
			return
		}
		scale = parsed
	}

	c := canvas.New(doc.Page.Width, doc.Page.Height, scale)
	c.Fill(colors.MustParse("#ffffff"))
	builder(doc)(c, doc.Page.Width, doc.Page.Height)

	w.Header().Set("Content-Type", "image/png")
	if err := c.EncodePNG(w); err != nil {
		log.Error(err, "preview encode failed")
	}
}

// handleExport re-renders the posted document at a print preset and streams
// the raster back as a download.
func handleExport(w http.ResponseWriter, r *http.Request, log *logger.Logger) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	if err := config.Validate(&req.Document); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_document", err.Error())
		return
	}
	req.Document.ApplyDefaults()

	builder, ok := templates.Lookup(req.Document.Template)
	if !ok {
		writeAPIError(w, http.StatusNotFound, "unknown_template", fmt.Sprintf("no template %q", req.Document.Template))
		return
	}

	preset, ok := export.Lookup(req.Preset)
	if !ok {
		writeAPIError(w, http.StatusBadRequest, "unknown_preset", fmt.Sprintf("no preset %q", req.Preset))
		return
	}

	res := export.Render(builder(req.Document), req.Document.Page.Width, req.Document.Page.Height, preset)
	if res == nil {
		writeAPIError(w, http.StatusUnprocessableEntity, "empty_render", "document produced no render")
		return
	}

	name := fmt.Sprintf("%s-%s.png", req.Document.Template, preset.Name)
	setDownloadHeaders(w, name, "image/png")
	if err := writeResultPNG(w, res); err != nil {
		log.Error(err, "export encode failed")
	}
	log.Infof("exported %s at %s", req.Document.Template, preset.Name)
}

// documentFromQuery builds a throwaway document descriptor from preview
// query parameters. Missing fields stay empty; the templates treat empty
// fields as not-yet-filled editor state.
func documentFromQuery(r *http.Request) config.Document {
	q := r.URL.Query()
	doc := config.Document{
		Template:   q.Get("template"),
		BrandColor: q.Get("color"),
		FontStyle:  q.Get("font"),
		Title:      q.Get("title"),
		Subtitle:   q.Get("subtitle"),
		Overline:   q.Get("overline"),
		Footer:     q.Get("footer"),
		QR:         q.Get("qr"),
		Contact: config.Contact{
			Name:    q.Get("name"),
			Role:    q.Get("role"),
			Email:   q.Get("email"),
			Phone:   q.Get("phone"),
			Website: q.Get("website"),
		},
	}
	if doc.Template == "" {
		doc.Template = "business-card"
	}
	doc.ApplyDefaults()
	return doc
}

func writeResultPNG(w io.Writer, res *export.Result) error {
	return png.Encode(w, res.Image)
}

func setDownloadHeaders(w http.ResponseWriter, filename, contentType string) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	cd := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	w.Header().Set("Content-Disposition", cd)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
