package cli

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// promptID asks for a registry id, offering suggested as the default.
func promptID(kind, suggested string) (string, error) {
	var result string

	prompt := &survey.Input{
		Message: kind + " ID:",
		Default: suggested,
		Help:    "The id other structures use to reference this " + kind + ".",
	}

	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
