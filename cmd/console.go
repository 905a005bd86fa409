package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"feedback-desk/internal/wire"
	"feedback-desk/pkg/utils"

	"go.uber.org/zap"
)

const (
	choiceRegister = 1
	choiceLogin    = 2
	choiceExit     = 3
)

// Console runs the welcome menu until the user exits or input is closed.
// Unreadable input is returned as an error.
func Console(ctx context.Context, app *wire.App, prompt *utils.Prompter, logger *zap.Logger) error {
	out := prompt.Writer()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(out, "*****WELCOME TO CUSTOMER FEEDBACK MANAGEMENT SYSTEM*****")
		fmt.Fprintln(out, "1.Register")
		fmt.Fprintln(out, "2.Login")
		fmt.Fprintln(out, "3.Exit")

		choice, err := prompt.AskInt("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if !errors.Is(err, utils.ErrNotNumber) {
				return err
			}
			utils.ResponseError(out, err)
			continue
		}

		switch choice {
		case choiceRegister:
			err = app.Register(ctx)
		case choiceLogin:
			err = login(ctx, app, prompt, logger)
		case choiceExit:
			utils.ResponseSuccess(out, "Goodbye")
			return nil
		default:
			utils.ResponseSuccess(out, "Invalid choice")
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if utils.InputClosed(err) {
			return err
		}
		if err != nil {
			utils.ResponseError(out, err)
		}
	}
}

// login opens a session for the authenticated user and runs their menu.
func login(ctx context.Context, app *wire.App, prompt *utils.Prompter, logger *zap.Logger) error {
	user, err := app.Login(ctx)
	if err != nil {
		return err
	}

	menu := app.MenuFor(user.Role)
	if menu == nil {
		return fmt.Errorf("no menu for role %q", user.Role)
	}

	sessionID := utils.NewSessionID()
	session := utils.SetUserContext(ctx, user.UserID, string(user.Role), sessionID)

	log := logger.With(
		zap.String("session_id", sessionID.String()),
		zap.Int64("user_id", user.UserID),
		zap.String("role", string(user.Role)),
	)
	log.Info("Session started")
	defer log.Info("Session ended")

	return runMenu(session, menu, prompt)
}

// runMenu shows menu until its exit entry is chosen. Action failures are
// printed and the loop continues; input that can no longer be read ends it.
func runMenu(ctx context.Context, menu *wire.Menu, prompt *utils.Prompter) error {
	out := prompt.Writer()
	exit := len(menu.Items) + 1

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\n%s\n", menu.Title)
		for i, it := range menu.Items {
			fmt.Fprintf(out, "%d.%s\n", i+1, it.Label)
		}
		fmt.Fprintf(out, "%d.%s\n", exit, menu.ExitLabel)

		choice, err := prompt.AskInt("Enter your choice:- ")
		if err != nil {
			if !errors.Is(err, utils.ErrNotNumber) {
				return err
			}
			utils.ResponseError(out, err)
			continue
		}

		if choice == exit {
			utils.ResponseSuccess(out, "Logged out")
			return nil
		}
		if choice < 1 || choice > len(menu.Items) {
			utils.ResponseSuccess(out, "Invalid choice")
			continue
		}

		if err := menu.Items[choice-1].Action(ctx); err != nil {
			if utils.InputClosed(err) {
				return err
			}
			utils.ResponseError(out, err)
		}
	}
}
