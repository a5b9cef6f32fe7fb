// Package scancontroller hosts the scan screen: one scanner per terminal
// user, resolving decoded barcodes against the catalog into the cart.
package scancontroller

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/rainielmontanez/FSSPOS/cart"
	"github.com/rainielmontanez/FSSPOS/catalog"
	eventscontroller "github.com/rainielmontanez/FSSPOS/controllers/events"
	"github.com/rainielmontanez/FSSPOS/scanner"
)

type session struct {
	scanner *scanner.Scanner
	notices *scanner.NoticeBoard
}

type Hub struct {
	mu       sync.Mutex
	capture  scanner.CaptureDevice
	cat      *catalog.Store
	carts    *cart.Store
	events   *eventscontroller.Hub
	sessions map[int64]*session
}

func NewHub(capture scanner.CaptureDevice, cat *catalog.Store, carts *cart.Store, events *eventscontroller.Hub) *Hub {
	return &Hub{
		capture:  capture,
		cat:      cat,
		carts:    carts,
		events:   events,
		sessions: make(map[int64]*session),
	}
}

// getSession returns the terminal's scan session, replacing a scanner that
// already closed (each decode success closes the screen). The notice board
// survives across scanner instances.
func (h *Hub) getSession(userID int64) *session {
	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.sessions[userID]
	if !ok {
		sess = &session{notices: scanner.NewNoticeBoard()}
		h.sessions[userID] = sess
	}
	if sess.scanner == nil || sess.scanner.Closed() {
		sess.scanner = scanner.New(h.capture, func(code string) { h.resolveCode(userID, sess, code) })
	}
	return sess
}

// resolveCode is the decode success path shared by camera and manual entry:
// look the code up, add to the cart on a hit, post a transient notice either
// way. A miss is a catalog miss, not a scan failure.
func (h *Hub) resolveCode(userID int64, sess *session, code string) {
	product, found := h.cat.FindByBarcode(code)
	if !found {
		sess.notices.Push(scanner.NoticeError, "No product found for barcode "+code, code)
		h.events.Broadcast("scan_miss", gin.H{"user_id": userID, "code": code})
		return
	}
	h.carts.AddItem(userID, product)
	sess.notices.Push(scanner.NoticeSuccess, product.Name+" added to cart", code)
	h.events.Broadcast("scan_hit", gin.H{"user_id": userID, "code": code, "product": product})
}

func terminalUser(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return v.(int64), true
}

type manualInput struct {
	Code string `json:"code"`
}

// SubmitCode is manual entry: trimmed, empty input rejected, then the same
// success path as a camera decode.
// POST /scan
func (h *Hub) SubmitCode(c *gin.Context) {
	userID, ok := terminalUser(c)
	if !ok {
		return
	}
	var input manualInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	sess := h.getSession(userID)
	if err := sess.scanner.SubmitManual(input.Code); err != nil {
		if errors.Is(err, scanner.ErrEmptyCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Barcode must not be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Scan failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":    h.carts.View(userID),
		"notices": sess.notices.Active(),
	})
}

type cameraInput struct {
	Config scanner.FrameConfig `json:"config"`
}

// StartCamera opens a camera decode session. When no camera is available the
// scanner is forced to manual mode; that is a user-facing message, not an
// HTTP error.
// POST /scan/camera/start
func (h *Hub) StartCamera(c *gin.Context) {
	userID, ok := terminalUser(c)
	if !ok {
		return
	}
	var input cameraInput
	// an empty body just means default frame config
	_ = c.ShouldBindJSON(&input)
	sess := h.getSession(userID)
	if err := sess.scanner.StartCamera(input.Config); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"mode":    scanner.ModeManual,
			"message": "No camera available, please enter the barcode manually",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": scanner.ModeCamera})
}

// StopCamera closes the scan screen, releasing any open capture session.
// POST /scan/camera/stop
func (h *Hub) StopCamera(c *gin.Context) {
	userID, ok := terminalUser(c)
	if !ok {
		return
	}
	sess := h.getSession(userID)
	sess.scanner.Close()
	c.JSON(http.StatusOK, gin.H{"message": "Scanner closed"})
}

// Notices returns the terminal's still-active transient notices.
// GET /scan/notices
func (h *Hub) Notices(c *gin.Context) {
	userID, ok := terminalUser(c)
	if !ok {
		return
	}
	sess := h.getSession(userID)
	c.JSON(http.StatusOK, sess.notices.Active())
}

// Devices lists the capture devices visible to the till.
// GET /scan/devices
func (h *Hub) Devices(c *gin.Context) {
	devices, err := h.capture.Enumerate()
	if err != nil {
		c.JSON(http.StatusOK, []scanner.Device{})
		return
	}
	if devices == nil {
		devices = []scanner.Device{}
	}
	c.JSON(http.StatusOK, devices)
}
