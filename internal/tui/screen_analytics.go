package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
)

const msgAnalysisFailed = "Не удалось выполнить анализ. Попробуйте позже."

type analysisDoneMsg struct {
	archived models.ArchivedAnalysis
	err      error
}

type imageAnalyzedMsg struct {
	text string
	err  error
}

// analyticsScreen runs the trend analysis of the diary and the analysis of
// a meal photo.
type analyticsScreen struct {
	ctx      context.Context
	api      adapter.ServerAdapter
	copyText func(string) error

	spinner spinner.Model
	busy    string
	title   string
	text    textView
	photo   *promptModel
}

func newAnalyticsScreen(ctx context.Context, api adapter.ServerAdapter, copyText func(string) error) *analyticsScreen {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return &analyticsScreen{
		ctx:      ctx,
		api:      api,
		copyText: copyText,
		spinner:  sp,
		text:     newTextView(),
	}
}

func (s *analyticsScreen) Init() tea.Cmd {
	return nil
}

func (s *analyticsScreen) Capturing() bool {
	return s.photo != nil
}

func (s *analyticsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case analysisDoneMsg:
		s.busy = ""
		if errors.Is(msg.err, adapter.ErrUnprocessable) {
			return alert(msgNotEnoughRecords)
		}
		if msg.err != nil {
			return failedWith(msgAnalysisFailed, msg.err)
		}
		s.title = "Анализ от " + msg.archived.Datetime
		s.text.setText(msg.archived.Analysis.Text + "\n" + sourcesText(msg.archived.Analysis.Sources))
		return notice("Анализ сохранен в архив")
	case imageAnalyzedMsg:
		s.busy = ""
		switch {
		case errors.Is(msg.err, utils.ErrNotAnImage):
			return alert(msgWrongFileType)
		case errors.Is(msg.err, utils.ErrImageTooLarge):
			return alert(msgFileTooLarge)
		case msg.err != nil:
			return failedWith(msgImageAnalysisFailed, msg.err)
		}
		s.title = "Анализ фото"
		s.text.setText(msg.text)
		return nil
	case spinner.TickMsg:
		if s.busy == "" {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	case tea.WindowSizeMsg:
		s.text.resize(msg)
		return nil
	case tea.KeyMsg:
		return s.updateKey(msg)
	}

	if s.photo != nil {
		return s.photo.update(msg)
	}
	return nil
}

func (s *analyticsScreen) updateKey(msg tea.KeyMsg) tea.Cmd {
	if s.photo != nil {
		switch {
		case key.Matches(msg, keys.esc):
			s.photo = nil
		case key.Matches(msg, keys.enter):
			path := strings.TrimSpace(s.photo.value())
			if path == "" {
				return nil
			}
			s.photo = nil
			s.busy = "Анализирую фото..."
			return tea.Batch(s.spinner.Tick, s.cmdAnalyzeImage(path))
		default:
			return s.photo.update(msg)
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.generate):
		if s.busy != "" {
			return nil
		}
		s.busy = "Анализирую..."
		return tea.Batch(s.spinner.Tick, s.cmdAnalyze())
	case key.Matches(msg, keys.photo):
		if s.busy == "" {
			s.photo = newPrompt("Фото блюда: путь к файлу", "meal.jpg")
		}
		return nil
	case key.Matches(msg, keys.copy):
		return copyToClipboard(s.copyText, s.text.text)
	}
	return s.text.update(msg)
}

func (s *analyticsScreen) HotKeys() string {
	if s.photo != nil {
		return "enter: отправить │ esc: отмена"
	}
	return "g: сгенерировать анализ данных │ f: фото блюда │ c: копировать │ ↑/↓: прокрутка"
}

func (s *analyticsScreen) View() string {
	if s.photo != nil {
		return s.photo.View()
	}
	if s.busy != "" {
		return s.spinner.View() + " " + s.busy
	}
	if s.title == "" {
		return "Нажмите g, чтобы сгенерировать анализ данных.\nНужно как минимум 3 записи в дневнике."
	}
	return titleStyle.Render(s.title) + "\n\n" + s.text.View()
}

func (s *analyticsScreen) cmdAnalyze() tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		archived, err := api.Analyze(ctx)
		return analysisDoneMsg{archived: archived, err: err}
	}
}

func (s *analyticsScreen) cmdAnalyzeImage(path string) tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		img, err := utils.ReadImageFile(path)
		if err != nil {
			return imageAnalyzedMsg{err: err}
		}

		text, err := api.AnalyzeImage(ctx, models.ImageAnalysisRequest{
			FileType:    img.MIMEType,
			FileContent: img.Content,
		})
		return imageAnalyzedMsg{text: text, err: err}
	}
}

func copyToClipboard(copyText func(string) error, text string) tea.Cmd {
	if strings.TrimSpace(text) == "" {
		return notice(msgNothingToCopy)
	}
	if err := copyText(text); err != nil {
		return failed("Не удалось скопировать", err)
	}
	return notice(msgCopied)
}
