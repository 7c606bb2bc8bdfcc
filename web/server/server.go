// Package server provides a live render preview: clients open a websocket,
// submit a render request, and receive the image in progressive bands as
// base64 PNG frames.
package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/EpikSushi21/CSE287/pkg/renderer"
	"github.com/EpikSushi21/CSE287/pkg/scene"
)

// Server handles web requests for the raytracer preview
type Server struct {
	port     int
	upgrader websocket.Upgrader
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Preview tool, same-origin policy not enforced
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g., "default")
	Width   int    `json:"width"`   // Image width
	Height  int    `json:"height"`  // Image height
	Depth   int    `json:"depth"`   // Reflection recursion depth
	Shadows bool   `json:"shadows"` // Cast shadow rays
	Bands   int    `json:"bands"`   // Number of progressive bands
}

// ProgressUpdate represents a single progressive update sent to the client
type ProgressUpdate struct {
	Band       int    `json:"band"`
	TotalBands int    `json:"totalBands"`
	ImageData  string `json:"imageData"` // Base64 encoded PNG
	IsComplete bool   `json:"isComplete"`
	ElapsedMs  int64  `json:"elapsedMs"`
}

// Start starts the web server
func (s *Server) Start() error {
	http.HandleFunc("/", s.handleIndex)
	http.HandleFunc("/ws", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender upgrades the connection and streams progressive render
// updates until the frame is complete or the client disconnects
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Printf("Invalid render request: %v", err)
		return
	}
	applyDefaults(&req)

	selectedScene, err := createScene(req.Scene)
	if err != nil {
		conn.WriteJSON(map[string]string{"error": err.Error()})
		return
	}

	sink := renderer.NewImageSink(req.Width, req.Height)
	raytracer := renderer.NewRaytracer(sink, selectedScene.Camera, selectedScene, selectedScene.Background)
	raytracer.SetConfig(renderer.Config{
		RecursionDepth: req.Depth,
		Shadows:        req.Shadows,
	})

	startTime := time.Now()
	err = raytracer.RenderProgressive(req.Bands, func(completed, total int) error {
		imageData, err := imageToBase64PNG(sink.Image())
		if err != nil {
			return fmt.Errorf("failed to encode image: %v", err)
		}
		return conn.WriteJSON(ProgressUpdate{
			Band:       completed,
			TotalBands: total,
			ImageData:  imageData,
			IsComplete: completed == total,
			ElapsedMs:  time.Since(startTime).Milliseconds(),
		})
	})
	if err != nil {
		log.Printf("Render aborted: %v", err)
	}
}

// applyDefaults fills in missing request fields
func applyDefaults(req *RenderRequest) {
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Width <= 0 {
		req.Width = 640
	}
	if req.Height <= 0 {
		req.Height = 360
	}
	if req.Depth <= 0 {
		req.Depth = 2
	}
	if req.Bands <= 0 {
		req.Bands = 16
	}
}

// createScene builds a scene by name
func createScene(name string) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(), nil
	case "emissive":
		return scene.NewEmissiveScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene: %s", name)
	}
}

// imageToBase64PNG converts an image to a base64 encoded PNG string
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleIndex serves the embedded preview page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<title>Raytracer Preview</title>
<style>
body { font-family: sans-serif; background: #1e1e1e; color: #ddd; margin: 2em; }
img { border: 1px solid #444; image-rendering: pixelated; }
#status { margin: 1em 0; }
</style>
</head>
<body>
<h1>Raytracer Preview</h1>
<div>
  Scene:
  <select id="scene">
    <option value="default">default</option>
    <option value="emissive">emissive</option>
  </select>
  <button onclick="render()">Render</button>
</div>
<div id="status">Idle</div>
<img id="preview" width="640" height="360"/>
<script>
function render() {
  const ws = new WebSocket('ws://' + location.host + '/ws');
  ws.onopen = () => ws.send(JSON.stringify({
    scene: document.getElementById('scene').value,
    width: 640, height: 360, depth: 2, shadows: true, bands: 16
  }));
  ws.onmessage = (event) => {
    const update = JSON.parse(event.data);
    if (update.error) {
      document.getElementById('status').textContent = 'Error: ' + update.error;
      return;
    }
    document.getElementById('preview').src = 'data:image/png;base64,' + update.imageData;
    document.getElementById('status').textContent =
      'Band ' + update.band + '/' + update.totalBands + ' (' + update.elapsedMs + ' ms)';
    if (update.isComplete) ws.close();
  };
}
</script>
</body>
</html>`
