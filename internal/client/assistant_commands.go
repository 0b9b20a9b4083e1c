// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/spf13/cobra"
)

// chatExit ends an interactive conversation.
const chatExit = "/exit"

// chatCmd asks a single question when a message is given. Otherwise it
// reads one message per line from stdin until EOF or /exit.
func (a *App) chatCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var history []models.ChatMessage

			if len(args) > 0 {
				message := strings.TrimSpace(strings.Join(args, " "))
				if message == "" {
					return errEmptyMessage
				}

				reply, err := a.api.Chat(ctx, models.ChatRequest{Message: message})
				if err != nil {
					return a.explain(ctx, err)
				}
				fmt.Fprintln(out, reply.Text)
				history = append(history, models.ChatMessage{Role: models.ChatRoleUser, Text: message}, reply)
			} else {
				greeting, err := a.api.Greeting(ctx)
				if err != nil {
					return a.explain(ctx, err)
				}
				fmt.Fprintln(out, greeting.Text)
				history = append(history, greeting)

				scanner := bufio.NewScanner(cmd.InOrStdin())
				for {
					fmt.Fprint(cmd.ErrOrStderr(), "> ")
					if !scanner.Scan() {
						break
					}

					line := strings.TrimSpace(scanner.Text())
					if line == "" {
						continue
					}
					if line == chatExit {
						break
					}

					reply, err := a.api.Chat(ctx, models.ChatRequest{History: history, Message: line})
					if err != nil {
						return a.explain(ctx, err)
					}
					fmt.Fprintln(out, reply.Text)
					history = append(history, models.ChatMessage{Role: models.ChatRoleUser, Text: line}, reply)
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("error reading message: %w", err)
				}
			}

			// a greeting alone is not worth keeping
			if !save || len(history) < 2 {
				return nil
			}

			chat, err := a.api.SaveChat(ctx, history)
			if err != nil {
				return a.explain(ctx, err)
			}
			fmt.Fprintf(out, "saved chat %s\n", chat.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "archive the conversation when it ends")
	return cmd
}

func (a *App) analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Ask the assistant for a trend analysis of the diary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			archived, err := a.api.Analyze(ctx)
			if err != nil {
				return a.explain(ctx, err)
			}

			out := cmd.OutOrStdout()
			printAnalysis(out, archived.Analysis)
			fmt.Fprintf(out, "\nsaved to archive as %s\n", archived.ID)
			return nil
		},
	}
}

func (a *App) imageCmd() *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "image <file>",
		Short: "Ask the assistant to read an image, e.g. a lab report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			img, err := utils.ReadImageFile(args[0])
			if err != nil {
				return err
			}

			text, err := a.api.AnalyzeImage(ctx, models.ImageAnalysisRequest{
				Prompt:      prompt,
				FileType:    img.MIMEType,
				FileContent: img.Content,
			})
			if err != nil {
				return a.explain(ctx, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "question about the image; the server default when omitted")
	return cmd
}

// speakCmd writes to stdout when the output is "-".
func (a *App) speakCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "speak <text>",
		Short: "Read text aloud into a WAV file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSession(ctx); err != nil {
				return err
			}

			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return errEmptyMessage
			}

			if output == "-" {
				if err := a.api.Speak(ctx, text, cmd.OutOrStdout()); err != nil {
					return a.explain(ctx, err)
				}
				return nil
			}

			file, err := os.OpenFile(output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
			if err != nil {
				return fmt.Errorf("error creating %s: %w", output, err)
			}

			if err = a.api.Speak(ctx, text, file); err != nil {
				file.Close()
				_ = os.Remove(output)
				return a.explain(ctx, err)
			}
			if err = file.Close(); err != nil {
				return fmt.Errorf("error writing %s: %w", output, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved speech to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "speech.wav", "WAV file to write, - for stdout")
	return cmd
}

func printAnalysis(w io.Writer, analysis models.Analysis) {
	fmt.Fprintln(w, strings.TrimSpace(analysis.Text))
	if len(analysis.Sources) == 0 {
		return
	}

	fmt.Fprintln(w, "\nsources:")
	for _, src := range analysis.Sources {
		title := src.Title
		if title == "" {
			title = src.URI
		}
		fmt.Fprintf(w, "  %s <%s>\n", title, src.URI)
	}
}
