package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	PaddingXS = float32(8)
	PaddingS  = float32(12)
	PaddingM  = float32(18)
	PaddingL  = float32(24)

	CornerRadius   = float32(0.08)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
	RowHeight        = float32(44)
	ButtonHeight     = float32(48)
	AccentStripWidth = float32(4)
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHover
	ButtonSelected
	ButtonDisabled
)

func DrawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, CornerRadius/2, CornerSegments, Panel)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius/2, CornerSegments, BorderWidth, Border)
	if title == "" {
		return
	}
	DrawHeader(title, int32(rect.X+PaddingM), int32(rect.Y+PaddingS))
}

func DrawButton(rect rl.Rectangle, state ButtonState, text string) {
	fill := Panel
	stroke := Border
	label := TextPrimary
	strokeWidth := BorderWidth

	switch state {
	case ButtonHover:
		fill = PanelRaised
		stroke = AccentPine
	case ButtonSelected:
		fill = PanelRaised
		stroke = AccentHarvest
		strokeWidth = BorderWidthFocus
	case ButtonDisabled:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
		label = DisabledText
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
	if state == ButtonSelected {
		strip := rl.NewRectangle(rect.X+1, rect.Y+3, AccentStripWidth, rect.Height-6)
		rl.DrawRectangleRec(strip, AccentHarvest)
	}

	if text == "" {
		return
	}
	size := Type.Body
	w := MeasureText(text, size)
	DrawText(text, int32(rect.X+(rect.Width-float32(w))/2), int32(rect.Y+(rect.Height-float32(size))/2), size, label)
}

// DrawRow renders a list row with left-aligned and right-aligned text.
func DrawRow(rect rl.Rectangle, leftText, rightText string, highlight bool) {
	fill := rl.Fade(PanelRaised, 0.45)
	right := TextSecondary
	if highlight {
		fill = PanelRaised
		right = AccentHarvest
	}
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)

	y := int32(rect.Y + (rect.Height-float32(Type.Body))/2)
	if leftText != "" {
		DrawText(leftText, int32(rect.X+PaddingS), y, Type.Body, TextPrimary)
	}
	if rightText != "" {
		w := MeasureText(rightText, Type.Body)
		DrawText(rightText, int32(rect.X+rect.Width-PaddingS-float32(w)), y, Type.Body, right)
	}
}

// DrawProgressBar fills rect left to right by progress in [0, 1].
func DrawProgressBar(rect rl.Rectangle, progress float32, fill rl.Color) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	rl.DrawRectangleRounded(rect, 0.4, CornerSegments, DisabledPanel)
	if progress > 0 {
		done := rl.NewRectangle(rect.X, rect.Y, rect.Width*progress, rect.Height)
		rl.DrawRectangleRounded(done, 0.4, CornerSegments, fill)
	}
	rl.DrawRectangleRoundedLinesEx(rect, 0.4, CornerSegments, BorderWidth, Border)
}

func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	DrawText(text, x, y, Type.Header, TextPrimary)
	w := MeasureText(text, Type.Header)
	lineW := max(int32(float32(w)*0.6), 44)
	ly := float32(y + Type.Header + 6)
	rl.DrawLineEx(rl.NewVector2(float32(x), ly), rl.NewVector2(float32(x+lineW), ly), 2.0, AccentHarvest)
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	DrawText(text, x, y, Type.Small, TextMuted)
}
