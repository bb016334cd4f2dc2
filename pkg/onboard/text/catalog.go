// Package text holds the localized copy shown by the onboarding views.
package text

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/onboard/pkg/onboard/flow"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Message identifiers. Every locale file defines all of them.
const (
	PromptContinue     = "prompt_continue"
	PromptSkillLevel   = "prompt_skill_level"
	PromptFinish       = "prompt_finish"
	WelcomeIntro       = "welcome_intro"
	OverviewHeadline   = "overview_headline"
	SkillLevelTitle    = "skill_level_title"
	SkillLevelQuestion = "skill_level_question"
	SkillLevelHint     = "skill_level_hint"
)

// MessageIDs returns every identifier the views look up.
func MessageIDs() []string {
	ids := []string{
		PromptContinue, PromptSkillLevel, PromptFinish,
		WelcomeIntro, OverviewHeadline,
		SkillLevelTitle, SkillLevelQuestion, SkillLevelHint,
	}
	for _, l := range flow.SkillLevels() {
		ids = append(ids,
			"skill_option_"+l.String(),
			"skill_name_"+l.String(),
			"completion_title_"+l.String(),
			"completion_body_"+l.String(),
		)
	}
	return ids
}

var supported = []language.Tag{language.English, language.German}

// Supported returns the languages with a bundled locale file.
// The first one is the fallback.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Catalog resolves message identifiers to text in one language.
type Catalog struct {
	tag       language.Tag
	localizer *i18n.Localizer
	upper     cases.Caser
	logger    *slog.Logger
}

// New creates a Catalog for the best supported match of the preferred
// languages, given as BCP 47 tags or Accept-Language style lists.
// Unparseable entries are skipped; no usable preference selects English.
func New(preferred ...string) (*Catalog, error) {
	bundle := i18n.NewBundle(supported[0])
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, tag := range supported {
		path := fmt.Sprintf("locales/active.%s.toml", tag)
		if _, err := bundle.LoadMessageFileFS(locales, path); err != nil {
			return nil, fmt.Errorf("text: load %s: %w", path, err)
		}
	}

	var wanted []language.Tag
	for _, p := range preferred {
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		wanted = append(wanted, tags...)
	}

	_, index, _ := language.NewMatcher(supported).Match(wanted...)
	tag := supported[index]

	return &Catalog{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		upper:     cases.Upper(tag),
		logger:    internal.GetInternalLogger(),
	}, nil
}

// Language is the language the catalog was resolved to.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Text returns the message for id. A missing message is logged and the id
// itself is returned so the gap is visible on screen.
func (c *Catalog) Text(id string) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if msg == "" {
		c.logger.Warn("Missing onboarding message", "id", id, "language", c.tag.String(), "error", err)
		return id
	}
	return msg
}

// Prompt is the label of the continue action on step's page.
func (c *Catalog) Prompt(step flow.Step) string {
	switch step.Page() {
	case flow.PageSkillLevel:
		return c.Text(PromptSkillLevel)
	case flow.PageCompletion:
		return c.Text(PromptFinish)
	default:
		return c.Text(PromptContinue)
	}
}

// SkillOption is the selectable answer describing level.
func (c *Catalog) SkillOption(level flow.SkillLevel) string {
	return c.Text("skill_option_" + orIntermediate(level).String())
}

// SkillName is the short display name of level.
func (c *Catalog) SkillName(level flow.SkillLevel) string {
	return c.Text("skill_name_" + orIntermediate(level).String())
}

// CompletionTitle is the upper-cased greeting on the completion page.
// An unset level reads like intermediate.
func (c *Catalog) CompletionTitle(level flow.SkillLevel) string {
	return c.upper.String(c.Text("completion_title_" + orIntermediate(level).String()))
}

// CompletionBody is the paragraph below the completion title.
func (c *Catalog) CompletionBody(level flow.SkillLevel) string {
	return c.Text("completion_body_" + orIntermediate(level).String())
}

func orIntermediate(level flow.SkillLevel) flow.SkillLevel {
	if !level.IsSet() {
		return flow.SkillLevelIntermediate
	}
	return level
}
