package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/edpay/internal/cli/formatter"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// edpayHuhTheme returns a huh theme using the Gruvbox palette.
func edpayHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(edpayHuhTheme()).WithShowHelp(false)
}

// signInForm collects a role, email and password.
func signInForm(role, email, password *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sign in as").
				Options(
					huh.NewOption("Admin", string(domain.RoleAdmin)),
					huh.NewOption("Mentor", string(domain.RoleMentor)),
				).
				Value(role),
			huh.NewInput().
				Title("Email").
				Placeholder("admin@edpay.com").
				Value(email).
				Validate(validateRequired("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(validateRequired("password")),
		),
	)
}

// sessionInput holds the raw text of the add-session form.
type sessionInput struct {
	MentorID string
	Date     string
	Type     string
	Duration string
	Rate     string
}

// toSession converts the form values. Validation proper happens in the
// service; this only rejects text that is not a number.
func (in sessionInput) toSession() (*domain.Session, error) {
	duration, err := strconv.Atoi(strings.TrimSpace(in.Duration))
	if err != nil {
		return nil, fmt.Errorf("duration %q: %w", in.Duration, err)
	}
	rate, err := strconv.Atoi(strings.TrimSpace(in.Rate))
	if err != nil {
		return nil, fmt.Errorf("rate %q: %w", in.Rate, err)
	}
	return &domain.Session{
		MentorID:    strings.TrimSpace(in.MentorID),
		Date:        strings.TrimSpace(in.Date),
		Type:        strings.TrimSpace(in.Type),
		Duration:    duration,
		RatePerHour: rate,
	}, nil
}

func sessionForm(mentors []*domain.Mentor, in *sessionInput) *huh.Form {
	mentorOptions := make([]huh.Option[string], 0, len(mentors))
	for _, m := range mentors {
		mentorOptions = append(mentorOptions, huh.NewOption(fmt.Sprintf("%s (%s)", m.Name, m.ID), m.ID))
	}
	typeOptions := make([]huh.Option[string], 0, len(domain.KnownSessionTypes))
	for _, t := range domain.KnownSessionTypes {
		typeOptions = append(typeOptions, huh.NewOption(t, t))
	}

	return newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Mentor").
				Options(mentorOptions...).
				Value(&in.MentorID).
				Validate(validateRequired("mentor")),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DDTHH:MM").
				Value(&in.Date).
				Validate(validateSessionDate),
			huh.NewSelect[string]().
				Title("Session type").
				Options(typeOptions...).
				Value(&in.Type),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&in.Duration).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Rate per hour (₹)").
				Value(&in.Rate).
				Validate(validatePositiveInt),
		),
	)
}

func selectMentorForm(mentors []*domain.Mentor, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(mentors))
	for _, m := range mentors {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", m.Name, m.ID), m.ID))
	}
	return newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which mentor?").
				Options(options...).
				Value(result),
		),
	)
}

func confirmForm(title string, result *bool) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Cancel").
				Value(result),
		),
	)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}

func validateSessionDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("date is required")
	}
	if _, ok := domain.ParseSessionDate(s); !ok {
		return errors.New("use YYYY-MM-DD or YYYY-MM-DDTHH:MM")
	}
	return nil
}
