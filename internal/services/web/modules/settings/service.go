package settings

import (
	"context"
	"errors"
	"net/url"
	"strings"

	apperrors "github.com/louisbranch/gmscreen/internal/platform/errors"
	"github.com/louisbranch/gmscreen/internal/platform/timeouts"
	"github.com/louisbranch/gmscreen/internal/preferences"
	"github.com/louisbranch/gmscreen/internal/storage"
)

const (
	fieldTheme        = "theme"
	fieldFontSize     = "font_size"
	fieldReduceMotion = "reduce_motion"
	fieldSound        = "sound"
)

type service struct {
	store storage.PreferencesStore
}

func newService(store storage.PreferencesStore) service {
	return service{store: store}
}

// parseForm reads submitted preferences. The returned value is always
// normalized for re-rendering; err reports whether the submission was valid.
func parseForm(form url.Values) (preferences.Preferences, error) {
	prefs := preferences.Preferences{
		ReduceMotion: formFlag(form[fieldReduceMotion]),
		Sound:        formFlag(form[fieldSound]),
	}
	var errs []error
	theme, err := preferences.ParseTheme(form.Get(fieldTheme))
	errs = append(errs, err)
	prefs.Theme = theme
	fontSize, err := preferences.ParseFontSize(form.Get(fieldFontSize))
	errs = append(errs, err)
	prefs.FontSize = fontSize
	if err := errors.Join(errs...); err != nil {
		return prefs.Normalize(), apperrors.Wrap(apperrors.KindInvalidInput, "error.preferences_invalid", err)
	}
	return prefs, nil
}

// formFlag treats the checkbox as set when any submitted value is truthy;
// the form pairs each checkbox with a hidden "0".
func formFlag(values []string) bool {
	for _, value := range values {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "true", "on", "yes":
			return true
		}
	}
	return false
}

func (s service) save(ctx context.Context, deviceID string, prefs preferences.Preferences) error {
	if s.store == nil {
		return apperrors.EK(apperrors.KindUnavailable, "error.unavailable", "preferences store is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.StoreRequest)
	defer cancel()
	if err := s.store.PutPreferences(ctx, deviceID, prefs); err != nil {
		if errors.Is(err, preferences.ErrInvalid) {
			return apperrors.Wrap(apperrors.KindInvalidInput, "error.preferences_invalid", err)
		}
		return apperrors.Wrap(apperrors.KindUnavailable, "error.unavailable", err)
	}
	return nil
}
