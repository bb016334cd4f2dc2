package ui

import (
	"time"

	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal/display"
	"github.com/veandco/go-sdl2/sdl"
)

// completionView greets the user by skill level. The greeting fades in once
// the page is on screen, then the finish button appears.
type completionView struct {
	pageBase
	reveal tween
	button tween
}

func newCompletionView(screen *Screen, state *flow.Subject) *completionView {
	return &completionView{pageBase: pageBase{screen: screen, state: state}}
}

func (v *completionView) OnStateChanged() {
	if v.state.Value().Step != flow.StepCompletion {
		return
	}
	now := time.Now()
	v.reveal.animate(now, 1, 2*constants.DefaultRevealDuration)
	v.button.jump(0)
}

func (v *completionView) handleInput(event display.Event, now time.Time) {
	if !v.accept(event, now) {
		return
	}
	switch event.Button {
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		if v.reveal.done(now) {
			v.screen.finish()
		}
	}
}

func (v *completionView) update(now time.Time) {
	if v.reveal.done(now) && v.button.to == 0 && v.reveal.to == 1 {
		v.button.animate(now, 1, constants.DefaultRevealDuration)
	}
}

func (v *completionView) draw(renderer *sdl.Renderer, area sdl.Rect) {
	theme := display.GetTheme()
	catalog := v.screen.catalog
	state := v.state.Value()
	now := time.Now()
	reveal := v.reveal.value(now)
	content := display.UniformPadding(constants.HorizontalMargin).Inset(area)
	cx := content.X + content.W/2

	art := min(content.W, content.H) / 4
	y := content.Y + constants.VerticalSpacing
	v.drawArt(renderer, "check", cx, y, art, reveal)
	y += art + constants.VerticalSpacing

	y += display.RenderMultilineText(renderer, catalog.CompletionTitle(state.Model.SkillLevel), display.Fonts.LargeFont,
		content.W, cx, y, theme.TextColor, constants.TextAlignCenter, reveal)
	y += constants.VerticalSpacing

	bodyW := min(content.W, 2*constants.ButtonWidth)
	display.RenderMultilineText(renderer, catalog.CompletionBody(state.Model.SkillLevel), display.Fonts.SmallFont,
		bodyW, cx, y, theme.HintColor, constants.TextAlignCenter, reveal)

	v.drawButton(renderer, area, catalog.Prompt(state.Step), true, true, v.button.value(now))
}

// PreTransitionState hides the greeting.
func (v *completionView) PreTransitionState() bool {
	v.reveal.jump(0)
	v.button.jump(0)
	return true
}

// VisibleState shows the greeting without the finish button.
func (v *completionView) VisibleState() bool {
	v.reveal.jump(1)
	v.button.jump(0)
	return true
}

// PostTransitionState shows the finished page.
func (v *completionView) PostTransitionState() bool {
	v.reveal.jump(1)
	v.button.jump(1)
	return true
}
