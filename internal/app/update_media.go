package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gesture/internal/errmsg"
)

func (m Model) handleMediaMsg(msg MediaMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ImageLoadedMsg:
		if msg.URL != m.wantURL {
			return m, nil
		}
		if msg.Err != nil {
			slog.Warn("download photo", "url", msg.URL, "error", msg.Err)
			m.imageErr = errmsg.Format(errmsg.OpImageFetch, msg.Err)
			return m, nil
		}
		m.image = msg.Image
		return m, m.showImage()

	case GraphicsSentMsg:
		if msg.Seq == m.graphicsSeq {
			m.pendingGraphics = ""
		}
	}
	return m, nil
}

// syncPhoto follows the current item: it clears the photo when nothing is
// displayed and starts the download of a new current photo. Only the
// current and upcoming photos are kept by the fetcher.
func (m *Model) syncPhoto() tea.Cmd {
	if !m.snap.Mode.IsDisplaying() {
		if m.wantURL == "" {
			return nil
		}
		m.resetPhoto("")
		m.retain()
		return m.queueGraphics(m.renderer.Clear())
	}

	if m.snap.CurrentURL == m.wantURL {
		return nil
	}
	m.resetPhoto(m.snap.CurrentURL)
	clearCmd := m.queueGraphics(m.renderer.Clear())
	m.retain(m.snap.CurrentURL, m.snap.PrefetchURL)
	if m.fetcher == nil || m.renderer.Protocol() == nil {
		return clearCmd
	}
	if m.snap.PrefetchURL != "" {
		m.fetcher.Prefetch(m.snap.PrefetchURL)
	}
	return tea.Batch(clearCmd, FetchImageCmd(m.fetcher, m.snap.CurrentURL))
}

func (m *Model) resetPhoto(url string) {
	m.wantURL = url
	m.image = nil
	m.imageErr = ""
}

func (m *Model) retain(urls ...string) {
	if m.fetcher != nil {
		m.fetcher.Retain(urls...)
	}
}

// showImage prepares the downloaded photo for the current photo area.
func (m *Model) showImage() tea.Cmd {
	if m.image == nil {
		return nil
	}
	seq, err := m.renderer.Show(m.image.URL, m.image.Data)
	if err != nil {
		slog.Warn("display photo", "url", m.image.URL, "error", err)
		m.imageErr = errmsg.Format(errmsg.OpImageRender, err)
	}
	return m.queueGraphics(seq)
}

// relayout resizes the photo area and prepares the photo again when its
// size changed.
func (m *Model) relayout() tea.Cmd {
	area := m.photoArea()
	m.renderer.SetSize(area.Width, area.Height)
	if m.image != nil && m.renderer.NeedsPrepare(m.image.URL) {
		return m.showImage()
	}
	return nil
}
