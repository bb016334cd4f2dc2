package ui

import (
	"time"

	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal/display"
	"github.com/BrandonKowalski/onboard/pkg/onboard/text"
	"github.com/veandco/go-sdl2/sdl"
)

// welcomeView renders the welcome step and, in place, the overview step
// merged into it: the intro words slide away and the hero art and headline
// fade in.
type welcomeView struct {
	pageBase
	reveal tween
}

func newWelcomeView(screen *Screen, state *flow.Subject) *welcomeView {
	v := &welcomeView{pageBase: pageBase{screen: screen, state: state}}
	if state.Value().Step == flow.StepOverview {
		v.reveal.jump(1)
	}
	return v
}

func (v *welcomeView) OnStateChanged() {
	switch v.state.Value().Step {
	case flow.StepOverview:
		if v.active.Load() {
			v.reveal.animate(time.Now(), 1, constants.DefaultRevealDuration)
		} else {
			v.reveal.jump(1)
		}
	case flow.StepWelcome:
		v.reveal.jump(0)
	}
}

func (v *welcomeView) handleInput(event display.Event, now time.Time) {
	if !v.accept(event, now) {
		return
	}
	switch event.Button {
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		v.proceed()
	}
}

func (v *welcomeView) update(time.Time) {}

func (v *welcomeView) draw(renderer *sdl.Renderer, area sdl.Rect) {
	theme := display.GetTheme()
	reveal := v.reveal.value(time.Now())
	content := display.UniformPadding(constants.HorizontalMargin).Inset(area)
	cx := content.X + content.W/2

	// intro words drift down as they fade
	introY := content.Y + content.H/2 - constants.ButtonHeight + int32(50*reveal)
	display.RenderMultilineText(renderer, v.screen.catalog.Text(text.WelcomeIntro), display.Fonts.LargeFont,
		content.W, cx, introY, theme.TextColor, constants.TextAlignCenter, 1-reveal)

	if reveal > 0 {
		art := min(content.W, content.H) / 3
		artY := content.Y + constants.VerticalSpacing + int32(40*(1-reveal))
		v.drawArt(renderer, "hero", cx, artY, art, reveal)

		headlineY := artY + art + constants.VerticalSpacing
		display.RenderMultilineText(renderer, v.screen.catalog.Text(text.OverviewHeadline), display.Fonts.LargeFont,
			content.W, cx, headlineY, theme.TextColor, constants.TextAlignCenter, reveal)
	}

	v.drawButton(renderer, area, v.screen.catalog.Prompt(v.state.Value().Step), true, false, 1)
}

// PreTransitionState shows the page as it looks before the overview reveal.
func (v *welcomeView) PreTransitionState() bool {
	v.reveal.jump(0)
	return true
}

// VisibleState shows the page with the overview revealed.
func (v *welcomeView) VisibleState() bool {
	v.reveal.jump(1)
	return true
}

func (v *welcomeView) PostTransitionState() bool {
	return false
}
