package gui

import "hash/fnv"

// DrawData is the draw output of one rendered frame: an ordered set of
// draw lists plus a validity marker. The lists are frame-scoped - they are
// returned to the pool when the next frame begins - so callers that need
// to retain them past the frame boundary must deep-copy them.
type DrawData struct {
	Lists []*DrawList
	Valid bool
}

// ID uniquely identifies a widget for state tracking.
// IDs are stable across frames for the same widget.
type ID uint64

// Context holds all state for one UI surface. Every operation takes its
// receiver explicitly; there is no package-level current context, so
// independent surfaces never interfere.
type Context struct {
	// Input is mutated by the embedding surface between frames and read
	// by widgets during frame computation.
	Input *InputState

	// FontTextureID is the texture used by AddText (set by the backend).
	FontTextureID uint32

	// Capture flags, recomputed every frame. They tell the host whether
	// the UI claims keyboard/mouse events delivered after this frame.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	// FrameCount is incremented on every NewFrame.
	FrameCount uint64

	style       Style
	displaySize Vec2

	drawList *DrawList // active list while inside a frame
	drawData DrawData  // output of the last rendered frame
	inFrame  bool

	// Layout
	cursor    Vec2
	prevItem  Rect
	sameLine  bool
	windowEnd float32 // right edge of the current window's content area

	// IDs
	idStack   []ID
	idCounter uint32

	// Interaction state (persists across frames)
	focusedID ID // widget with keyboard focus
	activeID  ID // widget being dragged/held

	// Per-frame item tracking for activation queries
	lastItemID    ID
	activatedID   ID
	deactivatedID ID

	// Pending window placement set by SetNextWindowPos/Size
	nextWindowPos     Vec2
	nextWindowSize    Vec2
	hasNextWindowPos  bool
	hasNextWindowSize bool

	// Text editing scratch
	editBuffers map[ID][]rune
}

// NewContext creates a context for a surface of the given size in pixels.
func NewContext(width, height float32) *Context {
	return &Context{
		Input:       NewInputState(),
		style:       DefaultStyle(),
		displaySize: Vec2{X: width, Y: height},
		idStack:     make([]ID, 0, 8),
		editBuffers: make(map[ID][]rune),
	}
}

// Destroy releases the context's draw lists back to the pool.
// The context must not be used afterwards.
func (ctx *Context) Destroy() {
	ctx.releaseDrawData()
	if ctx.drawList != nil {
		ReleaseDrawList(ctx.drawList)
		ctx.drawList = nil
	}
	ctx.Input = nil
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the style used by subsequent frames.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// SetDisplaySize updates the surface size in pixels.
func (ctx *Context) SetDisplaySize(width, height float32) {
	ctx.displaySize = Vec2{X: width, Y: height}
}

// DisplaySize returns the surface size in pixels.
func (ctx *Context) DisplaySize() Vec2 {
	return ctx.displaySize
}

// NewFrame begins a new UI frame. The previous frame's draw lists are
// returned to the pool, so any retained reference to them becomes stale -
// callers needing stable copies must have deep-copied after Render.
func (ctx *Context) NewFrame() {
	ctx.releaseDrawData()

	ctx.drawList = AcquireDrawList()
	ctx.drawList.Flags = DrawListAntiAliasedLines | DrawListAntiAliasedFill
	ctx.inFrame = true
	ctx.FrameCount++

	ctx.cursor = Vec2{X: ctx.style.WindowPadding, Y: ctx.style.WindowPadding}
	ctx.windowEnd = ctx.displaySize.X - ctx.style.WindowPadding
	ctx.prevItem = Rect{}
	ctx.sameLine = false
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.lastItemID = 0
	ctx.activatedID = 0
	ctx.deactivatedID = 0
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
	ctx.hasNextWindowPos = false
	ctx.hasNextWindowSize = false
}

// Render ends the current frame and publishes its draw output.
// Transient input (wheel deltas, typed characters, press edges) is
// consumed here, at the frame boundary.
func (ctx *Context) Render() {
	if !ctx.inFrame || ctx.drawList == nil {
		return
	}
	ctx.drawList.Finalize()

	ctx.drawData = DrawData{
		Lists: append(ctx.drawData.Lists[:0], ctx.drawList),
		Valid: true,
	}
	ctx.drawList = nil
	ctx.inFrame = false

	if ctx.Input != nil {
		ctx.Input.EndFrame()
	}
}

// DrawData returns the output of the most recently rendered frame, or nil
// if no frame has been rendered yet. The returned lists are only valid
// until the next NewFrame call.
func (ctx *Context) DrawData() *DrawData {
	if !ctx.drawData.Valid {
		return nil
	}
	return &ctx.drawData
}

// releaseDrawData returns the published lists to the pool and invalidates
// the draw data.
func (ctx *Context) releaseDrawData() {
	for i, dl := range ctx.drawData.Lists {
		ReleaseDrawList(dl)
		ctx.drawData.Lists[i] = nil
	}
	ctx.drawData.Lists = ctx.drawData.Lists[:0]
	ctx.drawData.Valid = false
}

// GetID generates a stable ID from a string label, scoped by the ID stack
// and a per-frame call counter so repeated labels stay distinct.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++

	parentID := ID(0)
	if len(ctx.idStack) > 0 {
		parentID = ctx.idStack[len(ctx.idStack)-1]
	}

	h := fnv.New64a()
	h.Write([]byte(label))

	return ID(uint64(parentID)<<32 | uint64(ctx.idCounter)<<16 | h.Sum64()&0xFFFF)
}

// PushID pushes an ID scope for nested widgets.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID removes the last ID scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// SetNextWindowPos sets the position of the next Window call.
func (ctx *Context) SetNextWindowPos(x, y float32) {
	ctx.nextWindowPos = Vec2{X: x, Y: y}
	ctx.hasNextWindowPos = true
}

// SetNextWindowSize sets the size of the next Window call.
func (ctx *Context) SetNextWindowSize(w, h float32) {
	ctx.nextWindowSize = Vec2{X: w, Y: h}
	ctx.hasNextWindowSize = true
}

// IsItemActivated returns true if the last submitted widget started being
// edited this frame (e.g. a slider grab was clicked).
func (ctx *Context) IsItemActivated() bool {
	return ctx.lastItemID != 0 && ctx.lastItemID == ctx.activatedID
}

// IsItemDeactivated returns true if the last submitted widget stopped
// being edited this frame (e.g. a slider grab was released).
func (ctx *Context) IsItemDeactivated() bool {
	return ctx.lastItemID != 0 && ctx.lastItemID == ctx.deactivatedID
}

// MeasureText returns the pixel size of a string in the current style's
// fixed-width font.
func (ctx *Context) MeasureText(text string) Vec2 {
	return Vec2{
		X: float32(len(text)) * ctx.style.CharWidth * ctx.style.FontScale,
		Y: ctx.style.CharHeight * ctx.style.FontScale,
	}
}

// lineHeight is the height of one widget row.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight*ctx.style.FontScale + 2*ctx.style.FramePadding
}

// addText draws a string through the active draw list.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.drawList.SetTexture(ctx.FontTextureID)
	ctx.drawList.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.drawList.SetTexture(0)
}

// itemAdd reserves a rectangle at the cursor and advances the layout.
func (ctx *Context) itemAdd(w, h float32) Rect {
	pos := ctx.cursor
	if ctx.sameLine {
		pos = Vec2{X: ctx.prevItem.X + ctx.prevItem.W + ctx.style.ItemSpacing, Y: ctx.prevItem.Y}
		ctx.sameLine = false
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}
	ctx.prevItem = rect
	ctx.cursor = Vec2{X: ctx.cursor.X, Y: pos.Y + h + ctx.style.ItemSpacing}
	return rect
}

// SameLine places the next widget to the right of the previous one.
func (ctx *Context) SameLine() {
	ctx.sameLine = true
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// isHovered returns true if the rectangle is under the mouse cursor.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY})
}
