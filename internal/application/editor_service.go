package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/example/schedule-studio/internal/poster"
	"github.com/example/schedule-studio/internal/poster/render"
)

// EditorSession is the external view of one open poster editing session.
type EditorSession struct {
	Token      string
	ScheduleID string
	Data       poster.Data
	Zoom       int
}

type editorState struct {
	scheduleID string
	data       poster.Data
	zoom       int
	exporting  bool
}

// EditorService owns poster editing sessions. A session is seeded from the
// schedule's saved poster document (or the defaults), edited in isolation,
// and written back only on Apply. Export renders the working copy without
// closing the session; at most one export per session is in flight.
type EditorService struct {
	schedules *ScheduleService
	renderer  *render.Renderer
	newToken  func() string
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[string]*editorState
}

// NewEditorService constructs an editor service with the provided dependencies.
func NewEditorService(schedules *ScheduleService, renderer *render.Renderer) *EditorService {
	return NewEditorServiceWithLogger(schedules, renderer, nil, nil)
}

// NewEditorServiceWithLogger constructs an editor service with a specified
// token generator and logger.
func NewEditorServiceWithLogger(schedules *ScheduleService, renderer *render.Renderer, newToken func() string, logger *slog.Logger) *EditorService {
	if newToken == nil {
		newToken = uuid.NewString
	}
	return &EditorService{
		schedules: schedules,
		renderer:  renderer,
		newToken:  newToken,
		logger:    defaultLogger(logger),
		sessions:  make(map[string]*editorState),
	}
}

func (s *EditorService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "EditorService", operation, attrs...)
}

// Open starts a session for the given schedule.
func (s *EditorService) Open(ctx context.Context, scheduleID string) (session EditorSession, err error) {
	if s == nil {
		err = fmt.Errorf("EditorService is nil")
		return
	}

	logger := s.loggerWith(ctx, "Open", "schedule_id", scheduleID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to open editor session", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("session_token", session.Token).InfoContext(ctx, "editor session opened")
	}()

	schedule, err := s.schedules.GetSchedule(ctx, scheduleID)
	if err != nil {
		return
	}

	data := poster.DefaultData()
	if schedule.Poster != nil {
		data = *schedule.Poster
	}

	state := &editorState{scheduleID: scheduleID, data: data, zoom: poster.ZoomReset}
	token := s.newToken()

	s.mu.Lock()
	s.sessions[token] = state
	s.mu.Unlock()

	session = EditorSession{Token: token, ScheduleID: scheduleID, Data: data, Zoom: state.zoom}
	return
}

// Get returns the current state of a session.
func (s *EditorService) Get(token string) (EditorSession, error) {
	if s == nil {
		return EditorSession{}, fmt.Errorf("EditorService is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[token]
	if !ok {
		return EditorSession{}, ErrNotFound
	}
	return EditorSession{Token: token, ScheduleID: state.scheduleID, Data: state.data, Zoom: state.zoom}, nil
}

// UpdateSettings replaces the session's working poster document.
func (s *EditorService) UpdateSettings(ctx context.Context, token string, data poster.Data) (EditorSession, error) {
	if s == nil {
		return EditorSession{}, fmt.Errorf("EditorService is nil")
	}

	if !data.AspectRatio.Valid() {
		vErr := &ValidationError{}
		vErr.add("aspectRatio", "unknown aspect ratio")
		return EditorSession{}, vErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[token]
	if !ok {
		return EditorSession{}, ErrNotFound
	}
	state.data = data
	return EditorSession{Token: token, ScheduleID: state.scheduleID, Data: state.data, Zoom: state.zoom}, nil
}

// SetImage validates and installs a background image from a data URL. A
// rejected image leaves the session untouched.
func (s *EditorService) SetImage(ctx context.Context, token, dataURL string) (session EditorSession, err error) {
	if s == nil {
		err = fmt.Errorf("EditorService is nil")
		return
	}

	logger := s.loggerWith(ctx, "SetImage", "session_token", token)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to set background image", "error", err, "error_kind", ErrorKind(err))
		}
	}()

	if dataURL != "" {
		if _, decodeErr := render.DecodeDataURL(dataURL, s.maxImageBytes()); decodeErr != nil {
			vErr := &ValidationError{}
			switch {
			case errors.Is(decodeErr, render.ErrImageTooLarge):
				vErr.add("image", "image exceeds the 10MB limit")
			default:
				vErr.add("image", "image could not be decoded")
			}
			err = vErr
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[token]
	if !ok {
		err = ErrNotFound
		return
	}
	state.data.Background.Image = dataURL
	session = EditorSession{Token: token, ScheduleID: state.scheduleID, Data: state.data, Zoom: state.zoom}
	return
}

func (s *EditorService) maxImageBytes() int64 {
	if s.renderer != nil {
		return s.renderer.MaxImageBytes()
	}
	return render.DefaultMaxImageBytes
}

// SetZoom updates the session's preview zoom. The value is clamped to the
// 25–200 range and snapped to the 25 step; zoom never affects export output.
func (s *EditorService) SetZoom(token string, zoom int) (EditorSession, error) {
	if s == nil {
		return EditorSession{}, fmt.Errorf("EditorService is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[token]
	if !ok {
		return EditorSession{}, ErrNotFound
	}
	state.zoom = poster.ClampZoom(zoom)
	return EditorSession{Token: token, ScheduleID: state.scheduleID, Data: state.data, Zoom: state.zoom}, nil
}

// Preset kinds accepted by ApplyPreset.
const (
	PresetGradient = "gradient"
	PresetLayout   = "layout"
	PresetFilter   = "filter"
	PresetOverlay  = "overlay"
	PresetStyle    = "style"
)

// ApplyPreset merges a named entry from the built-in preset tables into the
// session's working document. A style preset replaces background and text
// wholesale but keeps an uploaded image; an overlay preset keeps the mute
// flag.
func (s *EditorService) ApplyPreset(ctx context.Context, token, kind, name string) (EditorSession, error) {
	if s == nil {
		return EditorSession{}, fmt.Errorf("EditorService is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[token]
	if !ok {
		return EditorSession{}, ErrNotFound
	}

	data := state.data
	switch kind {
	case PresetGradient:
		preset, found := poster.FindGradientPreset(name)
		if !found {
			return EditorSession{}, unknownPresetError(name)
		}
		data.Background.Gradient = preset.Gradient()
	case PresetLayout:
		preset, found := poster.FindLayoutPreset(name)
		if !found {
			return EditorSession{}, unknownPresetError(name)
		}
		data.Text, data.Background.Overlay = preset.Apply(data.Text, data.Background.Overlay)
	case PresetFilter:
		preset, found := poster.FindFilterPreset(name)
		if !found {
			return EditorSession{}, unknownPresetError(name)
		}
		data.Background.Filters = preset.Filters
	case PresetOverlay:
		preset, found := poster.FindOverlayPreset(name)
		if !found {
			return EditorSession{}, unknownPresetError(name)
		}
		data.Background.Overlay.Color = preset.Color
		data.Background.Overlay.Opacity = preset.Opacity
	case PresetStyle:
		preset, found := poster.FindStylePreset(name)
		if !found {
			return EditorSession{}, unknownPresetError(name)
		}
		image := data.Background.Image
		data.Background = preset.Background
		data.Background.Image = image
		data.Text = preset.Text
	default:
		vErr := &ValidationError{}
		vErr.add("kind", "kind must be one of gradient, layout, filter, overlay, style")
		return EditorSession{}, vErr
	}

	state.data = data
	s.loggerWith(ctx, "ApplyPreset", "session_token", token, "preset_kind", kind, "preset_name", name).
		InfoContext(ctx, "preset applied to editor session")
	return EditorSession{Token: token, ScheduleID: state.scheduleID, Data: state.data, Zoom: state.zoom}, nil
}

func unknownPresetError(name string) *ValidationError {
	vErr := &ValidationError{}
	vErr.add("preset", fmt.Sprintf("unknown preset %q", name))
	return vErr
}

// Apply writes the working poster document back to the schedule and closes
// the session. On a save failure the session stays open.
func (s *EditorService) Apply(ctx context.Context, token string) (err error) {
	if s == nil {
		return fmt.Errorf("EditorService is nil")
	}

	logger := s.loggerWith(ctx, "Apply", "session_token", token)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to apply editor session", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "editor session applied")
	}()

	s.mu.Lock()
	state, ok := s.sessions[token]
	s.mu.Unlock()
	if !ok {
		err = ErrNotFound
		return
	}

	if err = s.schedules.SavePoster(ctx, state.scheduleID, state.data); err != nil {
		return
	}

	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return
}

// Cancel discards the session without touching the schedule.
func (s *EditorService) Cancel(ctx context.Context, token string) error {
	if s == nil {
		return fmt.Errorf("EditorService is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, token)
	s.loggerWith(ctx, "Cancel", "session_token", token).InfoContext(ctx, "editor session cancelled")
	return nil
}

// Export renders the session's working document against the schedule's
// current content and returns the encoded PNG. The session stays open. A
// second export while one is in flight fails with ErrExportBusy.
func (s *EditorService) Export(ctx context.Context, token string) (export render.Export, err error) {
	if s == nil {
		err = fmt.Errorf("EditorService is nil")
		return
	}
	if s.renderer == nil {
		err = fmt.Errorf("renderer not configured")
		return
	}

	logger := s.loggerWith(ctx, "Export", "session_token", token)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to export poster", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("filename", export.Filename, "bytes", len(export.Data)).InfoContext(ctx, "poster exported")
	}()

	s.mu.Lock()
	state, ok := s.sessions[token]
	if !ok {
		s.mu.Unlock()
		err = ErrNotFound
		return
	}
	if state.exporting {
		s.mu.Unlock()
		err = ErrExportBusy
		return
	}
	state.exporting = true
	scheduleID := state.scheduleID
	data := state.data
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if current, ok := s.sessions[token]; ok {
			current.exporting = false
		}
		s.mu.Unlock()
	}()

	schedule, err := s.schedules.GetSchedule(ctx, scheduleID)
	if err != nil {
		return
	}

	export, err = s.renderer.ExportPNG(renderContent(schedule), data)
	return
}

// renderContent projects a schedule onto the renderer's content shape,
// keeping only bound assignees in the lineup.
func renderContent(schedule Schedule) render.Content {
	content := render.Content{
		Title:       schedule.Title,
		Date:        schedule.Date,
		Description: schedule.Description,
		Location:    schedule.Location,
	}
	for _, assignee := range schedule.Assignees {
		if !assignee.Bound() {
			continue
		}
		content.Lineup = append(content.Lineup, render.Lineup{
			Role:   assignee.RoleName,
			Member: assignee.Member.Name,
		})
	}
	return content
}
