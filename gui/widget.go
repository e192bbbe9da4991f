package gui

import "fmt"

// Text draws a line of text.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// TextColored draws a line of text in the given color.
func (ctx *Context) TextColored(text string, color uint32) {
	size := ctx.MeasureText(text)
	rect := ctx.itemAdd(size.X, ctx.lineHeight())
	ctx.addText(rect.X, rect.Y+ctx.style.FramePadding, text, color)
}

// TextDisabled draws a line of text in the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

// Textf draws formatted text.
func (ctx *Context) Textf(format string, args ...any) {
	ctx.Text(fmt.Sprintf(format, args...))
}

// Button draws a clickable button. Returns true if it was clicked this
// frame.
func (ctx *Context) Button(label string) bool {
	id := ctx.GetID(label)
	ctx.lastItemID = id

	size := ctx.MeasureText(label)
	w := size.X + 4*ctx.style.FramePadding
	h := ctx.lineHeight()
	rect := ctx.itemAdd(w, h)

	hovered := ctx.isHovered(rect)
	if hovered {
		ctx.WantCaptureMouse = true
	}
	held := hovered && ctx.Input != nil && ctx.Input.MouseDown(MouseButtonLeft)
	clicked := hovered && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft)

	bg := ctx.style.ButtonColor
	if held {
		bg = ctx.style.ButtonActiveColor
	} else if hovered {
		bg = ctx.style.ButtonHoveredColor
	}

	ctx.drawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)
	ctx.addText(rect.X+2*ctx.style.FramePadding, rect.Y+ctx.style.FramePadding, label, ctx.style.TextColor)

	return clicked
}

// Checkbox draws a labeled checkbox bound to value.
// Returns true if the value was toggled this frame.
func (ctx *Context) Checkbox(label string, value *bool) bool {
	id := ctx.GetID(label)
	ctx.lastItemID = id

	h := ctx.lineHeight()
	box := h
	labelSize := ctx.MeasureText(label)
	rect := ctx.itemAdd(box+ctx.style.ItemSpacing+labelSize.X, h)

	hovered := ctx.isHovered(rect)
	if hovered {
		ctx.WantCaptureMouse = true
	}

	changed := false
	if hovered && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
		*value = !*value
		changed = true
	}

	bg := ctx.style.InputBgColor
	if hovered {
		bg = ctx.style.InputFocusedBgColor
	}
	ctx.drawList.AddRect(rect.X, rect.Y, box, box, bg)
	ctx.drawList.AddRectOutline(rect.X, rect.Y, box, box, ctx.style.InputBorderColor, ctx.style.BorderSize)
	if *value {
		pad := box * 0.25
		ctx.drawList.AddRect(rect.X+pad, rect.Y+pad, box-2*pad, box-2*pad, ctx.style.CheckMarkColor)
	}

	ctx.addText(rect.X+box+ctx.style.ItemSpacing, rect.Y+ctx.style.FramePadding, label, ctx.style.TextColor)

	return changed
}

// SliderFloat draws a horizontal slider for float32 values.
// Returns true if the value was changed. IsItemActivated and
// IsItemDeactivated report the start and end of the drag gesture, which
// embedding code typically forwards as an edit-begin/edit-end pair.
func (ctx *Context) SliderFloat(label string, value *float32, minVal, maxVal float32) bool {
	id := ctx.GetID(label)
	ctx.lastItemID = id

	h := ctx.lineHeight()
	sliderW := ctx.windowEnd - ctx.cursor.X
	labelW := float32(0)
	if label != "" {
		labelW = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}
	sliderW -= labelW
	if sliderW < 4*h {
		sliderW = 4 * h
	}

	rect := ctx.itemAdd(sliderW+labelW, h)
	track := Rect{X: rect.X, Y: rect.Y, W: sliderW, H: h}

	hovered := ctx.isHovered(track)
	if hovered {
		ctx.WantCaptureMouse = true
	}

	// Drag gesture
	if ctx.Input != nil {
		if hovered && ctx.Input.MouseClicked(MouseButtonLeft) && ctx.activeID == 0 {
			ctx.activeID = id
			ctx.activatedID = id
		}
		if ctx.activeID == id && !ctx.Input.MouseDown(MouseButtonLeft) {
			ctx.activeID = 0
			ctx.deactivatedID = id
		}
	}

	changed := false
	grabW := float32(10)
	if ctx.activeID == id && ctx.Input != nil {
		relX := ctx.Input.MouseX - track.X - grabW/2
		ratio := clampf(relX/(track.W-grabW), 0, 1)
		newValue := minVal + ratio*(maxVal-minVal)
		if newValue != *value {
			*value = newValue
			changed = true
		}
	}

	// Wheel adjusts by 1% of the range while hovered
	if hovered && ctx.Input != nil && ctx.Input.MouseWheelY != 0 {
		step := (maxVal - minVal) / 100
		newValue := clampf(*value+ctx.Input.MouseWheelY*step, minVal, maxVal)
		if newValue != *value {
			*value = newValue
			changed = true
		}
	}

	// Track and fill
	trackH := h * 0.4
	trackY := track.Y + (h-trackH)/2
	ctx.drawList.AddRect(track.X, trackY, track.W, trackH, ctx.style.SliderTrackColor)

	ratio := float32(0)
	if maxVal > minVal {
		ratio = clampf((*value-minVal)/(maxVal-minVal), 0, 1)
	}
	ctx.drawList.AddRect(track.X, trackY, track.W*ratio, trackH, ctx.style.SliderFillColor)

	// Grab
	grabX := track.X + ratio*(track.W-grabW)
	grabColor := ctx.style.SliderGrabColor
	if ctx.activeID == id {
		grabColor = ctx.style.SliderGrabActive
	}
	ctx.drawList.AddRect(grabX, track.Y, grabW, h, grabColor)

	if label != "" {
		ctx.addText(track.X+track.W+ctx.style.ItemSpacing, rect.Y+ctx.style.FramePadding, label, ctx.style.TextColor)
	}

	return changed
}

// InputText draws a single-line text field bound to value.
// Click to focus; typed characters edit the value, backspace deletes,
// enter or escape releases focus. Returns true if the value changed.
func (ctx *Context) InputText(label string, value *string) bool {
	id := ctx.GetID(label)
	ctx.lastItemID = id

	h := ctx.lineHeight()
	fieldW := ctx.windowEnd - ctx.cursor.X
	labelW := float32(0)
	if label != "" {
		labelW = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}
	fieldW -= labelW
	if fieldW < 4*h {
		fieldW = 4 * h
	}

	rect := ctx.itemAdd(fieldW+labelW, h)
	field := Rect{X: rect.X, Y: rect.Y, W: fieldW, H: h}

	hovered := ctx.isHovered(field)
	if hovered {
		ctx.WantCaptureMouse = true
	}

	focused := ctx.focusedID == id
	if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
		if hovered {
			if !focused {
				ctx.focusedID = id
				ctx.editBuffers[id] = append(ctx.editBuffers[id][:0], []rune(*value)...)
			}
			focused = true
		} else if focused {
			ctx.focusedID = 0
			focused = false
		}
	}

	changed := false
	if focused && ctx.Input != nil {
		ctx.WantCaptureKeyboard = true
		buf := ctx.editBuffers[id]

		for _, r := range ctx.Input.InputChars {
			if r >= 32 && r != 127 {
				buf = append(buf, r)
			}
		}
		if ctx.Input.ASCIIKeyPressed('\b') && len(buf) > 0 {
			buf = buf[:len(buf)-1]
		}
		if ctx.Input.ASCIIKeyPressed('\r') || ctx.Input.ASCIIKeyPressed(27) {
			ctx.focusedID = 0
			focused = false
		}

		ctx.editBuffers[id] = buf
		if newValue := string(buf); newValue != *value {
			*value = newValue
			changed = true
		}
	}

	bg := ctx.style.InputBgColor
	if focused {
		bg = ctx.style.InputFocusedBgColor
	}
	ctx.drawList.AddRect(field.X, field.Y, field.W, field.H, bg)
	ctx.drawList.AddRectOutline(field.X, field.Y, field.W, field.H, ctx.style.InputBorderColor, ctx.style.BorderSize)

	shown := *value
	maxChars := int((field.W - 2*ctx.style.FramePadding) / (ctx.style.CharWidth * ctx.style.FontScale))
	if maxChars > 0 && len(shown) > maxChars {
		shown = shown[len(shown)-maxChars:]
	}
	ctx.addText(field.X+ctx.style.FramePadding, field.Y+ctx.style.FramePadding, shown, ctx.style.TextColor)

	if focused && ctx.FrameCount%60 < 30 {
		cursorX := field.X + ctx.style.FramePadding + ctx.MeasureText(shown).X
		ctx.drawList.AddRect(cursorX, field.Y+ctx.style.FramePadding, 2, h-2*ctx.style.FramePadding, ctx.style.TextColor)
	}

	return changed
}

// Separator draws a horizontal line across the content area.
func (ctx *Context) Separator() {
	rect := ctx.itemAdd(ctx.windowEnd-ctx.cursor.X, ctx.style.ItemSpacing)
	y := rect.Y + rect.H/2
	ctx.drawList.AddLine(rect.X, y, rect.X+rect.W, y, ctx.style.SeparatorColor, 1)
}

// Window draws a titled window region and runs contents inside it.
// Position and size come from SetNextWindowPos/SetNextWindowSize, falling
// back to the full display.
func (ctx *Context) Window(title string, contents func()) {
	pos := Vec2{}
	size := ctx.displaySize
	if ctx.hasNextWindowPos {
		pos = ctx.nextWindowPos
		ctx.hasNextWindowPos = false
	}
	if ctx.hasNextWindowSize {
		size = ctx.nextWindowSize
		ctx.hasNextWindowSize = false
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	if ctx.isHovered(rect) {
		ctx.WantCaptureMouse = true
	}

	titleH := ctx.lineHeight()
	ctx.drawList.AddRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.WindowBgColor)
	ctx.drawList.AddRect(rect.X, rect.Y, rect.W, titleH, ctx.style.TitleBgColor)
	ctx.drawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.style.WindowBorderColor, ctx.style.BorderSize)
	ctx.addText(rect.X+ctx.style.WindowPadding, rect.Y+ctx.style.FramePadding, title, ctx.style.TextColor)

	ctx.drawList.PushClipRect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)

	savedCursor := ctx.cursor
	savedEnd := ctx.windowEnd
	ctx.cursor = Vec2{X: rect.X + ctx.style.WindowPadding, Y: rect.Y + titleH + ctx.style.WindowPadding}
	ctx.windowEnd = rect.X + rect.W - ctx.style.WindowPadding

	ctx.PushID(title)
	contents()
	ctx.PopID()

	ctx.cursor = savedCursor
	ctx.windowEnd = savedEnd
	ctx.drawList.PopClipRect()
}
