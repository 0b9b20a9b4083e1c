// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal client of DiaCompanion.
//
// [TUI.Run] restores the saved session or runs the login flow (menu, login,
// registration), then opens the main loop with one tab per part of the
// diary. Logging out from the main loop returns to the login flow.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/session"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	api       adapter.ServerAdapter
	gate      authGate
	buildInfo models.AppBuildInfo

	// options are appended to the options of every program, e.g. to
	// replace the terminal.
	options  []tea.ProgramOption
	copyText func(string) error

	logger *logger.Logger
}

func New(api adapter.ServerAdapter, gate *session.Gate, buildInfo models.AppBuildInfo, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	return &TUI{
		api:       api,
		gate:      gate,
		buildInfo: buildInfo,
		options:   options,
		copyText:  clipboard.WriteAll,
		logger:    logger,
	}
}

// Run alternates between the login flow and the main loop until the user
// quits.
func (t *TUI) Run(ctx context.Context) error {
	for {
		user, err := t.gate.Restore(ctx)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				return fmt.Errorf("restore session: %w", err)
			}

			user, err = t.LoginFlow(ctx)
			if err != nil {
				return err
			}
		}

		logout, err := t.MainLoop(ctx, user)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = t.gate.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		t.logger.Info().Str("email", user.Email).Msg("logged out from terminal ui")
	}
}

// LoginFlow shows the menu until a login succeeds.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.gate),
		pageRegister: NewRegisterModel(ctx, t.gate),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := t.program(ctx, root).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.user, nil
}

// MainLoop runs the diary screens. logout is true when the user asked to
// log out or the session expired.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.api, user, t.copyText)
	finalModel, err := t.program(ctx, model).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) program(ctx context.Context, model tea.Model) *tea.Program {
	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)
	return tea.NewProgram(model, options...)
}
