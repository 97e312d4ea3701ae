// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Plain line-mode chat for dumb terminals.
//
// The fallback for environments where the full-screen TUI cannot run
// (no TTY capability detection, CI, screen readers). Same client,
// same analysis gate, same error taxonomy; the report renders as
// markdown through glamour instead of the modal.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/lekatlabs/lekat-tui/internal/api"
	"github.com/lekatlabs/lekat-tui/internal/config"
	"github.com/lekatlabs/lekat-tui/internal/model"
	"github.com/lekatlabs/lekat-tui/internal/util"
)

// IsTerminal reports whether stdout is an interactive terminal.
// main uses this to suggest plain mode on dumb terminals.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// PLAIN CHAT SESSION
// =============================================================================

// plainSession holds the line-mode REPL state.
type plainSession struct {
	client       *api.Client
	conversation *model.Conversation
	line         *liner.State
	historyPath  string
}

// HandlePlainChat runs the line-mode chat REPL until EOF or /quit.
func HandlePlainChat(client *api.Client) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	s := &plainSession{
		client:       client,
		conversation: model.NewConversation(client.SessionID()),
		line:         line,
	}
	if dir, err := config.ConfigDir(); err == nil {
		s.historyPath = filepath.Join(dir, "plain_history")
		s.loadInputHistory()
	}
	defer s.close()

	fmt.Printf("lekat %s · sesi %s\n", Version, client.SessionID())
	fmt.Println("Ketik pesan, /analyze untuk analisis, /quit untuk keluar.")
	fmt.Println()

	s.reload(true)

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			// io.EOF on ctrl+d
			fmt.Println()
			return nil
		}

		// Empty or whitespace-only input is a no-op.
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			if quit := s.handleCommand(input); quit {
				return nil
			}
			continue
		}

		s.send(input)
	}
}

// =============================================================================
// OPERATIONS
// =============================================================================

// reload fetches history and prints it (initial) or just updates the
// gate counter.
func (s *plainSession) reload(print bool) {
	msgs, err := s.client.ReadHistory(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "gagal memuat riwayat: %v\n", err)
		return
	}
	s.conversation.ReplaceAll(msgs)

	if print {
		for _, msg := range msgs {
			s.printMessage(msg)
		}
		if len(msgs) > 0 {
			fmt.Println()
		}
	}
}

// send posts one message and prints the bot reply.
func (s *plainSession) send(text string) {
	result, err := s.client.Send(context.Background(), model.SenderUser, text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gagal mengirim: %v\n", err)
		return
	}

	s.conversation.AppendUserMessage(result.User)
	s.conversation.AppendBotMessage(result.Bot)
	fmt.Printf("%s: %s\n\n", model.SenderBot.DisplayName(), util.SanitizeControl(result.Bot))

	if s.conversation.AnalysisEligible() {
		fmt.Println("(analisis tersedia: /analyze)")
	}
}

// analyze runs the analysis and renders the report as markdown.
func (s *plainSession) analyze() {
	if !s.conversation.AnalysisEligible() {
		fmt.Printf("Analisis butuh minimal %d pesan; %d lagi.\n",
			model.AnalysisMinMessages, s.conversation.MessagesRemaining())
		return
	}

	fmt.Println("Menganalisis...")
	r, err := s.client.Analyze(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "analisis gagal: %v\n", err)
		return
	}

	out, err := glamour.Render(reportMarkdown(r), "auto")
	if err != nil {
		// Fall back to the raw markdown when the renderer balks.
		out = reportMarkdown(r)
	}
	fmt.Println(out)

	// The verdict also lands in the transcript server-side.
	s.reload(false)
}

// handleCommand dispatches slash commands. Returns true to quit.
func (s *plainSession) handleCommand(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "/quit", "/exit", "/q":
		return true
	case "/analyze", "/analisis":
		s.analyze()
	case "/reload":
		s.reload(true)
	case "/help":
		fmt.Println("/analyze  jalankan analisis percakapan")
		fmt.Println("/reload   muat ulang riwayat")
		fmt.Println("/quit     keluar")
	default:
		fmt.Printf("perintah tidak dikenal: %s (coba /help)\n", input)
	}
	return false
}

// printMessage prints one history message.
func (s *plainSession) printMessage(msg *model.Message) {
	fmt.Printf("%s: %s\n", msg.Sender.DisplayName(), util.SanitizeControl(msg.Content))
}

// =============================================================================
// INPUT HISTORY
// =============================================================================

func (s *plainSession) loadInputHistory() {
	if s.historyPath == "" {
		return
	}
	if f, err := os.Open(s.historyPath); err == nil {
		s.line.ReadHistory(f)
		f.Close()
	}
}

func (s *plainSession) saveInputHistory() {
	if s.historyPath == "" {
		return
	}
	if f, err := os.Create(s.historyPath); err == nil {
		s.line.WriteHistory(f)
		f.Close()
	}
}

func (s *plainSession) close() {
	s.saveInputHistory()
	s.line.Close()
}
