package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	kvRepo "barbershop/database/repository/kv"
	"barbershop/models"
	"barbershop/utils"

	"go.uber.org/zap"
)

var (
	ErrInvalidTheme    = errors.New("preferences: theme must be light or dark")
	ErrInvalidLanguage = errors.New("preferences: language must be es or en")
)

// Service reads and writes per-client display preferences.
type Service struct {
	KV              kvRepo.Store
	DefaultLanguage models.Language
	TTL             time.Duration
	Logger          *zap.Logger
}

func (s *Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *Service) defaults() models.Preferences {
	lang := s.DefaultLanguage
	if !lang.Valid() {
		lang = models.LanguageES
	}
	return models.Preferences{Theme: models.ThemeDark, Language: lang}
}

// Get returns the stored preferences of clientID, filling missing or
// unreadable fields with the defaults.
func (s *Service) Get(ctx context.Context, clientID string) models.Preferences {
	prefs := s.defaults()
	raw, err := s.KV.Get(ctx, utils.PreferencesKeyPrefix+clientID)
	if err != nil {
		if !errors.Is(err, kvRepo.ErrNotFound) {
			s.logger().Warn("preferences: read failed, using defaults", zap.String("clientID", clientID), zap.Error(err))
		}
		return prefs
	}

	var stored models.Preferences
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger().Warn("preferences: malformed value, using defaults", zap.String("clientID", clientID), zap.Error(err))
		return prefs
	}
	if stored.Theme.Valid() {
		prefs.Theme = stored.Theme
	}
	if stored.Language.Valid() {
		prefs.Language = stored.Language
	}
	return prefs
}

// Update applies every non-nil field of req and returns the result.
func (s *Service) Update(ctx context.Context, clientID string, req models.UpdatePreferencesRequest) (models.Preferences, error) {
	prefs := s.Get(ctx, clientID)
	if req.Theme != nil {
		t := models.Theme(strings.ToLower(strings.TrimSpace(*req.Theme)))
		if !t.Valid() {
			return prefs, fmt.Errorf("%w: %q", ErrInvalidTheme, *req.Theme)
		}
		prefs.Theme = t
	}
	if req.Language != nil {
		l := models.Language(strings.ToLower(strings.TrimSpace(*req.Language)))
		if !l.Valid() {
			return prefs, fmt.Errorf("%w: %q", ErrInvalidLanguage, *req.Language)
		}
		prefs.Language = l
	}
	s.save(ctx, clientID, prefs)
	return prefs, nil
}

// ToggleTheme flips between light and dark.
func (s *Service) ToggleTheme(ctx context.Context, clientID string) models.Preferences {
	prefs := s.Get(ctx, clientID)
	if prefs.Theme == models.ThemeDark {
		prefs.Theme = models.ThemeLight
	} else {
		prefs.Theme = models.ThemeDark
	}
	s.save(ctx, clientID, prefs)
	return prefs
}

// ToggleLanguage flips between Spanish and English.
func (s *Service) ToggleLanguage(ctx context.Context, clientID string) models.Preferences {
	prefs := s.Get(ctx, clientID)
	if prefs.Language == models.LanguageES {
		prefs.Language = models.LanguageEN
	} else {
		prefs.Language = models.LanguageES
	}
	s.save(ctx, clientID, prefs)
	return prefs
}

func (s *Service) save(ctx context.Context, clientID string, prefs models.Preferences) {
	data, err := json.Marshal(prefs)
	if err != nil {
		s.logger().Error("preferences: encode failed", zap.Error(err))
		return
	}
	if err := s.KV.Set(ctx, utils.PreferencesKeyPrefix+clientID, string(data), s.TTL); err != nil {
		s.logger().Warn("preferences: could not persist", zap.String("clientID", clientID), zap.Error(err))
	}
}
