package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/dataset"
)

// Dashboard menu actions.
const (
	ActionOverview   = "Overview"
	ActionSellers    = "Top sellers"
	ActionCustomers  = "Top customers"
	ActionGeography  = "Cities and states"
	ActionCategories = "Category rankings"
	ActionSegments   = "Customer and seller segments"
	ActionChangeDate = "Change date range"
	ActionQuit       = "Quit"
)

var dashboardActions = []string{
	ActionOverview,
	ActionSellers,
	ActionCustomers,
	ActionGeography,
	ActionCategories,
	ActionSegments,
	ActionChangeDate,
	ActionQuit,
}

// SelectAction displays the dashboard menu and returns the chosen action.
func SelectAction() (string, error) {
	var selected string
	prompt := &survey.Select{
		Message:  "What would you like to see?",
		Options:  dashboardActions,
		PageSize: len(dashboardActions),
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

// AskDateRange prompts for an inclusive start and end date. The span of
// the loaded data is offered as the default, and each date is validated
// on entry; an inverted range fails in NewDateRange and interactive
// callers re-prompt on it.
func AskDateRange(min, max time.Time) (dataset.DateRange, error) {
	dateValidator := func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected a string answer")
		}
		if _, err := time.Parse(dataset.DateFormat, strings.TrimSpace(s)); err != nil {
			return fmt.Errorf("enter a date as YYYY-MM-DD")
		}
		return nil
	}

	questions := []*survey.Question{
		{
			Name: "start",
			Prompt: &survey.Input{
				Message: "Start date (YYYY-MM-DD):",
				Default: min.Format(dataset.DateFormat),
			},
			Validate: dateValidator,
		},
		{
			Name: "end",
			Prompt: &survey.Input{
				Message: "End date (YYYY-MM-DD):",
				Default: max.Format(dataset.DateFormat),
			},
			Validate: dateValidator,
		},
	}

	answers := struct {
		Start string
		End   string
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return dataset.DateRange{}, err
	}

	start, err := time.Parse(dataset.DateFormat, strings.TrimSpace(answers.Start))
	if err != nil {
		return dataset.DateRange{}, err
	}
	end, err := time.Parse(dataset.DateFormat, strings.TrimSpace(answers.End))
	if err != nil {
		return dataset.DateRange{}, err
	}

	return dataset.NewDateRange(start, end)
}

// ConfirmQuit asks whether to leave the dashboard.
func ConfirmQuit() (bool, error) {
	quit := true
	prompt := &survey.Confirm{
		Message: "Quit the dashboard?",
		Default: true,
	}
	if err := survey.AskOne(prompt, &quit); err != nil {
		return false, err
	}
	return quit, nil
}
