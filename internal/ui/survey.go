package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption returns a survey option that replaces the default question icon
// so survey prompts match the look of the huh-based menus.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = ">"
	})
}
