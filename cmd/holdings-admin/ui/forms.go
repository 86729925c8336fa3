package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// ConfirmSeed asks before wiping every user and portfolio row.
func ConfirmSeed() (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset demo data?").
				Description("This deletes ALL users, accounts, positions and snapshots.").
				Affirmative("Reset").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// CredentialsForm prompts for the email and password of a new user.
func CredentialsForm() (email, password string, err error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&email).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("email is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Password").
				Description("6-100 characters").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return "", "", err
	}
	return email, password, nil
}
