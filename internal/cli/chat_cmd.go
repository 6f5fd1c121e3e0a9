package cli

import (
	"errors"

	"github.com/alexanderramin/edpay/internal/chat"
	"github.com/alexanderramin/edpay/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("chat needs an interactive terminal")

func newChatCmd(app *App) *cobra.Command {
	var mentorFlag string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the admin/mentor chat panel",
		Long: "Open the chat panel. Admins chat with the mentor chosen by --mentor;\n" +
			"mentors chat with the admin. Messages are not saved.",
		Args:    cobra.NoArgs,
		PreRunE: requireSignedIn(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			model, err := newChatModel(cmd, app, mentorFlag)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&mentorFlag, "mentor", "", "Mentor to chat with (admins)")

	return cmd
}

func newChatModel(cmd *cobra.Command, app *App, mentorFlag string) (chat.Model, error) {
	ctx := cmd.Context()
	id := identityFrom(ctx)
	mentorView := id != nil && id.Role == domain.RoleMentor

	mentorID, err := scopedMentorID(ctx, app, mentorFlag)
	if err != nil {
		return chat.Model{}, err
	}
	if mentorID == "" {
		if mentorID, err = pickMentor(ctx, app, ""); err != nil {
			return chat.Model{}, err
		}
	}
	mentor, err := app.Mentors.GetByID(ctx, mentorID)
	if err != nil {
		return chat.Model{}, err
	}

	return chat.New(chat.Config{
		MentorName: mentor.Name,
		MentorView: mentorView,
		ReplyDelay: app.ChatReplyDelay,
		Clock:      app.Clock,
	}), nil
}
