package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/net/websocket"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	maxSessionTime   = 3 * time.Minute
	maxSessionPixels = 1280 * 720
)

var errCloseFrame = errors.New("close-frame")

var (
	messageCodec = websocket.Codec{Marshal: marshalText, Unmarshal: unmarshalMessage}
	frameCodec   = websocket.Codec{Marshal: marshalFrame, Unmarshal: nil}
)

// SetupMessage is the first message of an interactive session
type SetupMessage struct {
	Scene  string `json:"scene"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"` // "png" (default) or "bmp"
}

// InputMessage is a user action. Which fields apply depends on Type.
type InputMessage struct {
	Type  string  `json:"type"` // pick, drag, scale, color, reflectivity, rotate, interactive, render
	X     int     `json:"x"`
	Y     int     `json:"y"`
	DX    float64 `json:"dx"`
	DY    float64 `json:"dy"`
	Delta float64 `json:"delta"`
	Index int     `json:"index"`
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	On    bool    `json:"on"`
}

// FrameInfo describes the binary frame that follows it
type FrameInfo struct {
	Type        string `json:"type"` // Always "frame"
	Frame       int    `json:"frame"`
	Full        bool   `json:"full"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Selected    int    `json:"selected"`
	Interactive bool   `json:"interactive"`
	Stats       Stats  `json:"stats"`
}

// ErrorMessage reports a rejected input message
type ErrorMessage struct {
	Type  string `json:"type"` // Always "error"
	Error string `json:"error"`
}

func marshalFrame(v interface{}) ([]byte, byte, error) {
	return v.([]byte), websocket.BinaryFrame, nil
}

func marshalText(v interface{}) ([]byte, byte, error) {
	data, err := json.Marshal(v)
	return data, websocket.TextFrame, err
}

func unmarshalMessage(data []byte, ty byte, v interface{}) error {
	switch ty {
	case websocket.CloseFrame:
		return errCloseFrame
	case websocket.TextFrame:
		return json.Unmarshal(data, v)
	default:
		return errors.New("invalid frame type")
	}
}

// Session owns one scene, its editor and its incremental renderer.
// It is driven by a single goroutine.
type Session struct {
	renderer *renderer.InteractiveRenderer
	editor   *scene.Editor
	format   string
	frames   int
	logger   *WebLogger
}

// NewSession creates an interactive session for the scene
func NewSession(s *scene.Scene, format string, logger *WebLogger) *Session {
	constraints := scene.DefaultEditConstraints()
	if s.Name != "interactive" {
		constraints.KeepAboveFloor = false
	}

	return &Session{
		renderer: renderer.NewInteractiveRenderer(s, integrator.DefaultQualityConfig(), renderer.DefaultInteractiveConfig(), logger),
		editor:   scene.NewEditor(s, constraints),
		format:   format,
		logger:   logger,
	}
}

// Renderer returns the session's interactive renderer
func (ss *Session) Renderer() *renderer.InteractiveRenderer {
	return ss.renderer
}

// Editor returns the session's scene editor
func (ss *Session) Editor() *scene.Editor {
	return ss.editor
}

// Apply performs one user action. Actions that change the scene schedule a full render.
func (ss *Session) Apply(msg InputMessage) error {
	changed := false

	switch msg.Type {
	case "pick":
		if index, ok := ss.renderer.Pick(msg.X, msg.Y); ok {
			ss.editor.Select(index)
			ss.logger.SetSelected(index)
			ss.logger.Printf("Selected shape %d\n", index)
		} else {
			ss.editor.Deselect()
			ss.logger.SetSelected(-1)
		}
	case "drag":
		changed = ss.editor.Drag(msg.DX, msg.DY)
	case "scale":
		step := 0
		if msg.Delta > 0 {
			step = 1
		} else if msg.Delta < 0 {
			step = -1
		}
		changed = ss.editor.ScaleStep(step)
	case "color":
		changed = ss.editor.SetPaletteColor(msg.Index)
	case "reflectivity":
		changed = ss.editor.StepReflectivity(msg.Delta)
	case "rotate":
		changed = ss.editor.RotateCamera(msg.Yaw, msg.Pitch)
	case "interactive":
		ss.renderer.SetInteractive(msg.On)
	case "render":
		changed = true
	default:
		return fmt.Errorf("unknown message type: %q", msg.Type)
	}

	if changed {
		ss.renderer.RequestFullRender()
	}
	return nil
}

// NextFrame renders one frame and encodes the whole persistent image
func (ss *Session) NextFrame() (FrameInfo, []byte, error) {
	ss.frames++
	ss.logger.SetFrame(ss.frames)
	result := ss.renderer.RenderFrame()

	data, _, err := encodeFrame(ss.renderer.Frame().Image(), ss.format)
	if err != nil {
		return FrameInfo{}, nil, err
	}

	selected, ok := ss.editor.Selected()
	if !ok {
		selected = -1
	}

	info := FrameInfo{
		Type:        "frame",
		Frame:       ss.frames,
		Full:        result.Full,
		Start:       result.Start,
		End:         result.End,
		Selected:    selected,
		Interactive: ss.renderer.Interactive(),
		Stats:       newStats(result.Stats),
	}
	return info, data, nil
}

// interactiveSession runs one websocket client: a setup message, then one frame per input message
func (s *Server) interactiveSession(ws *websocket.Conn) {
	addr := ws.Request().RemoteAddr
	log.Println("new connection:", addr)
	defer func() { log.Println(addr, "was disconnected") }()

	// Watchdog
	shutdownWatch := make(chan struct{}, 1)
	defer func() { shutdownWatch <- struct{}{} }()
	go func() {
		select {
		case <-shutdownWatch:
		case <-time.After(maxSessionTime):
			log.Println("session timeout")
			ws.Close()
		}
	}()

	var setup SetupMessage
	if err := messageCodec.Receive(ws, &setup); err != nil {
		log.Println(err)
		return
	}

	sceneObj, err := s.createScene(setup.Scene)
	if err != nil {
		messageCodec.Send(ws, ErrorMessage{Type: "error", Error: err.Error()})
		return
	}
	if setup.Width > 0 || setup.Height > 0 {
		if setup.Width < minImageSize || setup.Height < minImageSize || setup.Width*setup.Height > maxSessionPixels {
			messageCodec.Send(ws, ErrorMessage{Type: "error", Error: fmt.Sprintf("invalid size %dx%d", setup.Width, setup.Height)})
			return
		}
		sceneObj.Resize(setup.Width, setup.Height)
	}

	consoleChan := make(chan ConsoleMessage, 100)
	session := NewSession(sceneObj, setup.Format, NewWebLogger(sessionID(), consoleChan))

	// Closed when the session ends so the reader never blocks on a full input queue
	done := make(chan struct{})
	defer close(done)

	inputChan := make(chan InputMessage, 16)
	go func() {
		defer close(inputChan)
		for {
			var msg InputMessage
			if err := messageCodec.Receive(ws, &msg); err != nil {
				if !errors.Is(err, errCloseFrame) {
					log.Println(err)
				}
				return
			}
			select {
			case inputChan <- msg:
			case <-done:
				return
			}
		}
	}()

	// First frame needs no input
	if err := s.sendFrame(ws, session, consoleChan); err != nil {
		log.Println(err)
		return
	}

	for msg := range inputChan {
		if err := session.Apply(msg); err != nil {
			if err := messageCodec.Send(ws, ErrorMessage{Type: "error", Error: err.Error()}); err != nil {
				log.Println(err)
				return
			}
			continue
		}

		if err := s.sendFrame(ws, session, consoleChan); err != nil {
			log.Println(err)
			return
		}
	}
}

// sendFrame renders the next frame, then sends pending console messages, the frame info and the image
func (s *Server) sendFrame(ws *websocket.Conn, session *Session, consoleChan chan ConsoleMessage) error {
	info, data, err := session.NextFrame()
	if err != nil {
		return err
	}

	for pending := true; pending; {
		select {
		case msg := <-consoleChan:
			if err := messageCodec.Send(ws, msg); err != nil {
				return err
			}
		default:
			pending = false
		}
	}

	if err := messageCodec.Send(ws, info); err != nil {
		return err
	}
	return frameCodec.Send(ws, data)
}
