package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/omkarsindha/GSM-Alarm/internal/format"
	"github.com/omkarsindha/GSM-Alarm/internal/models"
	"github.com/omkarsindha/GSM-Alarm/internal/view"
)

// MinPhoneDigits shortest phone number accepted by the phone form
const MinPhoneDigits = 10

// PhoneTooShortMessage alert shown when the phone form fails MinPhoneDigits
const PhoneTooShortMessage = "Phone number must be at least 10 digits long."

// Backend monitor backend operations used by a page
type Backend interface {
	GetSensorConfig(ctx context.Context) (*models.SensorConfig, error)
	GetHistory(ctx context.Context) ([]models.HistoryEntry, error)
	ConfigureAlarm(ctx context.Context, req models.AlarmConfigRequest) error
	AddPhoneNumber(ctx context.Context, req models.PhoneNumberRequest) error
	DeleteNumber(ctx context.Context, key string) error
	ClearHistory(ctx context.Context) error
	UpdateSensor(ctx context.Context, req models.UpdateSensorRequest) error
}

// Bindings everything a page renders into. Zero members are skipped.
type Bindings struct {
	Config  view.ConfigBindings
	History view.HistoryBindings
	Errors  view.ErrorDisplay
	Alerts  view.Alerter
}

// Outcome result of a form submission
type Outcome int

const (
	OutcomeReloaded Outcome = iota + 1 // accepted; the page was reloaded
	OutcomeRejected                    // client-side validation failed, nothing sent
	OutcomeFailed                      // transport failure or success=false
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReloaded:
		return "reloaded"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// AlarmConfigForm values of the alarm settings form, posted as-is.
type AlarmConfigForm = models.AlarmConfigRequest

// PhoneForm raw values of the add-phone-number form
type PhoneForm struct {
	Name     string
	Phone    string
	DailySMS *bool
	Admin    *bool // admins may change alert settings by SMS
}

// SensorForm raw values of the per-sensor rename/trigger form
type SensorForm struct {
	Sensor  string
	Name    string
	Trigger string
}

// Page one dashboard page: loads backend state into its bindings and
// handles its forms. State only changes through a full reload.
type Page struct {
	backend  Backend
	bindings Bindings
	logger   *zap.Logger
	reload   func(ctx context.Context) error
}

type Option func(*Page)

// WithReload replaces the default reload (re-running Load on the same bindings).
func WithReload(fn func(ctx context.Context) error) Option {
	return func(p *Page) { p.reload = fn }
}

func NewPage(backend Backend, bindings Bindings, logger *zap.Logger, opts ...Option) *Page {
	p := &Page{
		backend:  backend,
		bindings: bindings,
		logger:   logger,
	}
	p.reload = p.Load
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load is the page-ready step: one config fetch and one history fetch,
// run independently, each rendered into its bindings when it arrives.
// Failures are logged and shown; nothing is retried.
func (p *Page) Load(ctx context.Context) error {
	var configErr, historyErr error
	var g errgroup.Group
	if !p.bindings.Config.Empty() {
		g.Go(func() error {
			configErr = p.loadConfig(ctx)
			return configErr
		})
	}
	if p.bindings.History.Table != nil {
		g.Go(func() error {
			historyErr = p.loadHistory(ctx)
			return historyErr
		})
	}
	_ = g.Wait()
	return errors.Join(configErr, historyErr)
}

func (p *Page) loadConfig(ctx context.Context) error {
	cfg, err := p.backend.GetSensorConfig(ctx)
	if err != nil {
		return p.fail("Error fetching sensor status", fmt.Errorf("failed to load sensor config: %w", err))
	}
	if err := view.RenderSensorConfig(cfg, p.bindings.Config); err != nil {
		return p.fail("Error rendering sensor config", err)
	}
	return nil
}

func (p *Page) loadHistory(ctx context.Context) error {
	entries, err := p.backend.GetHistory(ctx)
	if err != nil {
		return p.fail("Error fetching history", fmt.Errorf("failed to load history: %w", err))
	}
	view.RenderHistory(entries, p.bindings.History)
	p.logger.Debug("History rendered", zap.Int("entries", len(entries)))
	return nil
}

// SubmitAlarmConfig posts the alarm settings form and reloads on success.
func (p *Page) SubmitAlarmConfig(ctx context.Context, req AlarmConfigForm) (Outcome, error) {
	if err := p.backend.ConfigureAlarm(ctx, req); err != nil {
		return OutcomeFailed, p.fail("Error configuring alarm", err)
	}
	p.logger.Info("Configured alarm",
		zap.String("max_temp", req.MaxTemp),
		zap.String("hys", req.Hysteresis),
		zap.String("interval", req.Interval),
	)
	return p.reloaded(ctx)
}

// SubmitPhoneNumber checks the digit count, posts the digits-only number
// and reloads on success. A short number raises an alert and sends nothing.
func (p *Page) SubmitPhoneNumber(ctx context.Context, form PhoneForm) (Outcome, error) {
	digits := format.Digits(form.Phone)
	if len(digits) < MinPhoneDigits {
		if p.bindings.Alerts != nil {
			p.bindings.Alerts.Alert(PhoneTooShortMessage)
		}
		p.logger.Info("Phone number rejected", zap.Int("digits", len(digits)))
		return OutcomeRejected, &ValidationError{Field: "phone", Message: PhoneTooShortMessage}
	}

	req := models.PhoneNumberRequest{Name: form.Name, Phone: digits, DailySMS: form.DailySMS, Admin: form.Admin}
	if err := p.backend.AddPhoneNumber(ctx, req); err != nil {
		return OutcomeFailed, p.fail("Error adding phone number", err)
	}
	p.logger.Info("Added phone number", zap.String("name", form.Name))
	return p.reloaded(ctx)
}

// DeleteNumber follows a phone table delete link.
func (p *Page) DeleteNumber(ctx context.Context, key string) (Outcome, error) {
	if key == "" {
		return OutcomeRejected, &ValidationError{Field: "key", Message: "missing phone entry identifier"}
	}
	if err := p.backend.DeleteNumber(ctx, key); err != nil {
		return OutcomeFailed, p.fail("Error deleting phone number", err)
	}
	p.logger.Info("Deleted phone number", zap.String("key", key))
	return p.reloaded(ctx)
}

// UpdateSensor renames a sensor and sets its alarm trigger. The trigger
// must be a number; the backend is not called otherwise.
func (p *Page) UpdateSensor(ctx context.Context, form SensorForm) (Outcome, error) {
	req := models.UpdateSensorRequest{
		Sensor:  strings.TrimSpace(form.Sensor),
		Name:    strings.TrimSpace(form.Name),
		Trigger: strings.TrimSpace(form.Trigger),
	}
	var verr *ValidationError
	switch {
	case req.Sensor == "":
		verr = &ValidationError{Field: "sensor", Message: "no sensor selected"}
	case req.Name == "":
		verr = &ValidationError{Field: "name", Message: "sensor name is required"}
	default:
		if _, err := strconv.ParseFloat(req.Trigger, 64); err != nil {
			verr = &ValidationError{Field: "trigger", Message: "trigger must be a number"}
		}
	}
	if verr != nil {
		if p.bindings.Alerts != nil {
			p.bindings.Alerts.Alert(verr.Message)
		}
		return OutcomeRejected, verr
	}

	if err := p.backend.UpdateSensor(ctx, req); err != nil {
		return OutcomeFailed, p.fail("Error updating sensor", err)
	}
	p.logger.Info("Updated sensor",
		zap.String("sensor", req.Sensor),
		zap.String("name", req.Name),
		zap.String("trigger", req.Trigger),
	)
	return p.reloaded(ctx)
}

// ClearHistory empties the alarm history.
func (p *Page) ClearHistory(ctx context.Context) (Outcome, error) {
	if err := p.backend.ClearHistory(ctx); err != nil {
		return OutcomeFailed, p.fail("Error clearing history", err)
	}
	p.logger.Info("Cleared history")
	return p.reloaded(ctx)
}

func (p *Page) reloaded(ctx context.Context) (Outcome, error) {
	return OutcomeReloaded, p.reload(ctx)
}

// fail logs err under msg and hands it to the error display.
func (p *Page) fail(msg string, err error) error {
	kind := Classify(err)
	if kind == KindBusiness || kind == KindFormat {
		p.logger.Warn(msg, zap.String("kind", string(kind)), zap.Error(err))
	} else {
		p.logger.Error(msg, zap.String("kind", string(kind)), zap.Error(err))
	}
	if p.bindings.Errors != nil {
		p.bindings.Errors.ShowError(err)
	}
	return err
}
