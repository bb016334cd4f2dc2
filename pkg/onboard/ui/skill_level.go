package ui

import (
	"time"

	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal/display"
	"github.com/BrandonKowalski/onboard/pkg/onboard/text"
	"github.com/veandco/go-sdl2/sdl"
)

// skillLevelView lists the skill levels. Focus moves over the options and
// then the continue button; pressing A on an option toggles it.
type skillLevelView struct {
	pageBase
	levels      []flow.SkillLevel
	focus       int
	directional display.DirectionalInput
}

func newSkillLevelView(screen *Screen, state *flow.Subject) *skillLevelView {
	v := &skillLevelView{
		pageBase:    pageBase{screen: screen, state: state},
		levels:      flow.SkillLevels(),
		directional: display.NewDirectionalInput(),
	}
	v.focusSelected()
	return v
}

func (v *skillLevelView) focusSelected() {
	selected := v.state.Value().Model.SkillLevel
	for i, l := range v.levels {
		if l == selected {
			v.focus = i
			return
		}
	}
	v.focus = 0
}

func (v *skillLevelView) OnStateChanged() {
	v.focusSelected()
}

func (v *skillLevelView) SetActive(active bool) {
	v.pageBase.SetActive(active)
	if !active {
		v.directional.Reset()
	}
}

// buttonFocus is the focus index of the continue button.
func (v *skillLevelView) buttonFocus() int {
	return len(v.levels)
}

func (v *skillLevelView) move(button constants.VirtualButton) {
	switch button {
	case constants.VirtualButtonUp:
		v.focus = max(v.focus-1, 0)
	case constants.VirtualButtonDown:
		v.focus = min(v.focus+1, v.buttonFocus())
	}
}

func (v *skillLevelView) handleInput(event display.Event, now time.Time) {
	if v.directional.SetHeld(event.Button, event.Pressed, now) {
		if event.Pressed {
			v.move(event.Button)
		}
		return
	}

	if !v.accept(event, now) {
		return
	}

	switch event.Button {
	case constants.VirtualButtonA:
		if v.focus == v.buttonFocus() {
			v.proceed()
			return
		}
		model := v.state.Value().Model
		v.state.Update(model.ToggleSkillLevel(v.levels[v.focus]))
	case constants.VirtualButtonStart:
		v.proceed()
	}
}

func (v *skillLevelView) update(now time.Time) {
	if button := v.directional.Update(now); button != constants.VirtualButtonUnassigned {
		v.move(button)
	}
}

func (v *skillLevelView) draw(renderer *sdl.Renderer, area sdl.Rect) {
	theme := display.GetTheme()
	catalog := v.screen.catalog
	state := v.state.Value()
	content := display.UniformPadding(constants.HorizontalMargin).Inset(area)
	cx := content.X + content.W/2

	y := content.Y
	art := min(content.W, content.H) / 5
	v.drawArt(renderer, "smiley", cx, y, art, 1)
	y += art + constants.VerticalSpacingSm

	y += display.RenderMultilineText(renderer, catalog.Text(text.SkillLevelTitle), display.Fonts.LargeFont,
		content.W, cx, y, theme.TextColor, constants.TextAlignCenter, 1)
	y += constants.VerticalSpacingSm
	y += display.RenderMultilineText(renderer, catalog.Text(text.SkillLevelQuestion), display.Fonts.SmallFont,
		content.W, cx, y, theme.HintColor, constants.TextAlignCenter, 1)
	y += constants.VerticalSpacing

	font := display.Fonts.MediumFont
	rowH := constants.ButtonHeight
	if font != nil {
		rowH = max(rowH, int32(font.Height())+constants.VerticalSpacingSm)
	}
	rowW := min(content.W, 2*constants.ButtonWidth)

	for i, level := range v.levels {
		row := sdl.Rect{X: cx - rowW/2, Y: y, W: rowW, H: rowH}

		textColor := theme.HintColor
		if level == state.Model.SkillLevel {
			fill := theme.AccentColor
			renderer.SetDrawColor(fill.R, fill.G, fill.B, fill.A)
			renderer.FillRect(&row)
			textColor = theme.ButtonTextColor
		}
		if i == v.focus {
			outline := theme.TextColor
			renderer.SetDrawColor(outline.R, outline.G, outline.B, outline.A)
			renderer.DrawRect(&row)
		}

		if font != nil {
			display.RenderText(renderer, font, catalog.SkillOption(level),
				row.X+constants.VerticalSpacingSm, row.Y+(rowH-int32(font.Height()))/2, textColor, 1)
		}
		y += rowH + constants.VerticalSpacingSm
	}

	display.RenderMultilineText(renderer, catalog.Text(text.SkillLevelHint), display.Fonts.SmallFont,
		content.W, cx, y+constants.VerticalSpacingSm, theme.HintColor, constants.TextAlignCenter, 0.7)

	v.drawButton(renderer, area, catalog.Prompt(state.Step), state.CanContinue(), v.focus == v.buttonFocus(), 1)
}

func (v *skillLevelView) PreTransitionState() bool {
	return true
}

func (v *skillLevelView) VisibleState() bool {
	return false
}

func (v *skillLevelView) PostTransitionState() bool {
	return false
}
