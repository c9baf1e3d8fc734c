package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/net/websocket"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	minImageSize = 16
	maxImageSize = 2000
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server; YAML scenes are looked up in scenesDir
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// Stats represents render statistics
type Stats struct {
	TotalPixels   int     `json:"totalPixels"`
	ShadeCalls    int64   `json:"shadeCalls"`
	CallsPerPixel float64 `json:"callsPerPixel"`
	Workers       int     `json:"workers"`
	ElapsedMs     int64   `json:"elapsedMs"`
}

func newStats(rs renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:   rs.TotalPixels,
		ShadeCalls:    rs.ShadeCalls,
		CallsPerPixel: rs.CallsPerPixel(),
		Workers:       rs.Workers,
		ElapsedMs:     rs.Duration.Milliseconds(),
	}
}

// Handler returns the HTTP handler serving the API and static files
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", http.FileServer(http.Dir("static/")))

	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/export", s.handleExport)
	mux.Handle("/api/interactive", websocket.Handler(s.interactiveSession))

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and the YAML files in the scenes directory
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleRender renders a scene once at full quality and returns the image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sceneObj, err := s.createScene(query.Get("scene"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	width, err := parseIntParam(query, "width", sceneObj.RenderConfig.Width, minImageSize, maxImageSize)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	height, err := parseIntParam(query, "height", sceneObj.RenderConfig.Height, minImageSize, maxImageSize)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	depth, err := parseIntParam(query, "depth", sceneObj.RenderConfig.MaxDepth, 1, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sceneObj.Resize(width, height)
	sceneObj.RenderConfig.MaxDepth = depth
	sceneObj.RenderConfig.NumWorkers = 0

	frame := renderer.NewFrameBuffer(width, height)
	stats := renderer.NewRaytracer(sceneObj, integrator.FullQuality(), nil).Render(frame)

	data, contentType, err := encodeFrame(frame.Image(), query.Get("format"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	log.Printf("Rendered %s at %dx%d in %v", sceneObj.Name, width, height, stats.Duration)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Shade-Calls", strconv.FormatInt(stats.ShadeCalls, 10))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleExport returns the scene as a YAML document
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sceneObj, err := s.createScene(r.URL.Query().Get("scene"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	data, err := loaders.EncodeScene(sceneObj)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sceneObj.Name+".yaml"))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// createScene resolves a scene id: a built-in name or "yaml:<file>" in the scenes directory
func (s *Server) createScene(id string) (*scene.Scene, error) {
	if id == "" {
		id = "interactive"
	}

	if name, ok := strings.CutPrefix(id, "yaml:"); ok {
		// Only plain file names inside the scenes directory
		if name == "" || name != filepath.Base(name) {
			return nil, fmt.Errorf("invalid scene file name: %q", name)
		}
		path := filepath.Join(s.scenesDir, name+".yaml")
		if _, err := os.Stat(path); err != nil {
			path = filepath.Join(s.scenesDir, name+".yml")
		}
		return loaders.LoadSceneFile(path)
	}

	sceneObj, err := scene.NewBuiltinScene(id)
	if errors.Is(err, scene.ErrUnknownScene) {
		return nil, fmt.Errorf("unknown scene: %s", id)
	}
	return sceneObj, err
}

// encodeFrame encodes an image as BMP when requested, PNG otherwise
func encodeFrame(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer
	if strings.EqualFold(format, "bmp") {
		if err := bmp.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("failed to encode bmp: %w", err)
		}
		return buf.Bytes(), "image/bmp", nil
	}

	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), "image/png", nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// sessionID returns a short identifier for log prefixes
func sessionID() string {
	return strconv.FormatInt(time.Now().UnixNano()%1_000_000, 36)
}
