package sink

import (
	"image"

	"golang.org/x/net/websocket"

	"github.com/example/gotracer/pkg/core"
)

// streamCodec pushes raw framebuffer bytes as a single binary frame per
// Update() call. No Unmarshal since this direction is send-only.
var streamCodec = websocket.Codec{Marshal: marshalFrame, Unmarshal: nil}

func marshalFrame(v interface{}) (data []byte, payloadType byte, err error) {
	return v.([]byte), websocket.BinaryFrame, nil
}

// WebSocketSink streams the framebuffer to a connected websocket client
// as raw RGBA bytes on every Update() call, for a live progressive
// preview in a browser or other websocket client.
type WebSocketSink struct {
	img  *image.RGBA
	conn *websocket.Conn
}

// NewWebSocketSink builds a WebSocketSink of the given dimensions,
// streaming to conn. conn is typically obtained from a
// websocket.Handler callback on the server side.
func NewWebSocketSink(width, height int, conn *websocket.Conn) *WebSocketSink {
	return &WebSocketSink{img: image.NewRGBA(image.Rect(0, 0, width, height)), conn: conn}
}

func (s *WebSocketSink) Width() int  { return s.img.Bounds().Dx() }
func (s *WebSocketSink) Height() int { return s.img.Bounds().Dy() }

func (s *WebSocketSink) Plot(x, y int, c core.RGBColor) {
	s.img.SetRGBA(x, y, toRGBA(c))
}

// Update streams the current framebuffer as one binary frame. Send
// errors (a disconnected client mid-render) are not actionable from
// inside the core's render loop and are dropped — best-effort preview.
func (s *WebSocketSink) Update() {
	_ = streamCodec.Send(s.conn, s.img.Pix)
}
