package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/omkarsindha/GSM-Alarm/internal/dashboard"
	"github.com/omkarsindha/GSM-Alarm/internal/export"
	"github.com/omkarsindha/GSM-Alarm/internal/flash"
	"github.com/omkarsindha/GSM-Alarm/internal/view"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardHandler serves the dashboard pages. Every request gets a fresh
// Document and Page; nothing is cached between requests.
type DashboardHandler struct {
	backend   dashboard.Backend
	flash     *flash.Store
	templates *template.Template
	logger    *zap.Logger
}

func NewDashboardHandler(backend dashboard.Backend, flashStore *flash.Store, logger *zap.Logger) (*DashboardHandler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &DashboardHandler{
		backend:   backend,
		flash:     flashStore,
		templates: tmpl,
		logger:    logger,
	}, nil
}

// GET /
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, pages["index"])
}

// GET /settings
func (h *DashboardHandler) Settings(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, pages["settings"])
}

// GET /history
func (h *DashboardHandler) History(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, pages["history"])
}

// GET /api/v1/dashboard/{page}
func (h *DashboardHandler) Snapshot(w http.ResponseWriter, r *http.Request, name string) {
	spec, ok := pages[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, Fail("unknown page: "+name))
		return
	}
	doc := view.NewDocument()
	_ = dashboard.NewPage(h.backend, spec.Bindings(doc), h.logger).Load(r.Context())
	writeJSON(w, http.StatusOK, Ok(doc.Snapshot()))
}

// GET /history/export.xlsx
func (h *DashboardHandler) ExportHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.backend.GetHistory(r.Context())
	if err != nil {
		h.logger.Error("Error fetching history for export", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, Fail("failed to load history"))
		return
	}
	data, err := export.HistoryWorkbook(entries)
	if err != nil {
		h.logger.Error("Error building history workbook", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to build workbook"))
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="alarm-history.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// POST /configure-alarm
func (h *DashboardHandler) ConfigureAlarm(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "/settings", "Alarm settings saved", func(ctx context.Context, page *dashboard.Page) (dashboard.Outcome, error) {
		form := dashboard.AlarmConfigForm{
			MaxTemp:         r.PostForm.Get("max_temp"),
			Hysteresis:      r.PostForm.Get("hys"),
			Interval:        r.PostForm.Get("interval"),
			Location:        formString(r, "location"),
			DailyReportTime: formString(r, "daily_report_time"),
			SendDailyReport: formCheckbox(r, "send_daily_report"),
			Armed:           formCheckbox(r, "armed"),
			RepeatAlerts:    formCheckbox(r, "repeat_alerts"),
		}
		return page.SubmitAlarmConfig(ctx, form)
	})
}

// POST /add-phone-number
func (h *DashboardHandler) AddPhoneNumber(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "/settings", "Phone number added", func(ctx context.Context, page *dashboard.Page) (dashboard.Outcome, error) {
		form := dashboard.PhoneForm{
			Name:     r.PostForm.Get("name"),
			Phone:    r.PostForm.Get("phone"),
			DailySMS: formCheckbox(r, "daily_sms"),
			Admin:    formCheckbox(r, "admin"),
		}
		return page.SubmitPhoneNumber(ctx, form)
	})
}

// POST /update_sensor
func (h *DashboardHandler) UpdateSensor(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "/settings", "Sensor updated", func(ctx context.Context, page *dashboard.Page) (dashboard.Outcome, error) {
		form := dashboard.SensorForm{
			Sensor:  r.PostForm.Get("sensor"),
			Name:    r.PostForm.Get("name"),
			Trigger: r.PostForm.Get("trigger"),
		}
		return page.UpdateSensor(ctx, form)
	})
}

// GET /delete-number/{key}
func (h *DashboardHandler) DeleteNumber(w http.ResponseWriter, r *http.Request, key string) {
	h.submit(w, r, "/settings", "Phone number deleted", func(ctx context.Context, page *dashboard.Page) (dashboard.Outcome, error) {
		return page.DeleteNumber(ctx, key)
	})
}

// GET /clear_history
func (h *DashboardHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "/history", "History cleared", func(ctx context.Context, page *dashboard.Page) (dashboard.Outcome, error) {
		return page.ClearHistory(ctx)
	})
}

func (h *DashboardHandler) renderPage(w http.ResponseWriter, r *http.Request, spec pageSpec) {
	ctx := r.Context()
	session := h.flash.Session(w, r)
	doc := view.NewDocument()

	var notices []string
	msgs, err := h.flash.Pop(ctx, session)
	if err != nil {
		h.logger.Warn("Error reading flash messages", zap.Error(err))
	}
	for _, m := range msgs {
		switch m.Kind {
		case flash.KindAlert:
			doc.Alert(m.Text)
		case flash.KindError:
			doc.ShowMessage(m.Text)
		default:
			notices = append(notices, m.Text)
		}
	}

	// Failures are already on the document and in the log.
	_ = dashboard.NewPage(h.backend, spec.Bindings(doc), h.logger).Load(ctx)

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, spec.Template, newPageData(spec, doc.Snapshot(), notices)); err != nil {
		h.logger.Error("Error rendering page", zap.String("page", spec.Name), zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

type submitFunc func(ctx context.Context, page *dashboard.Page) (dashboard.Outcome, error)

// submit runs one form action and answers with a redirect to target. The
// browser's follow-up GET is the reload; errors and alerts raised on the
// way are carried to it as flash messages.
func (h *DashboardHandler) submit(w http.ResponseWriter, r *http.Request, target, notice string, fn submitFunc) {
	ctx := r.Context()
	session := h.flash.Session(w, r)
	sink := &flashSink{ctx: ctx, store: h.flash, session: session, logger: h.logger}

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("Error parsing form", zap.String("path", r.URL.Path), zap.Error(err))
		sink.ShowError(fmt.Errorf("invalid form: %w", err))
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	page := dashboard.NewPage(h.backend, dashboard.Bindings{Errors: sink, Alerts: sink}, h.logger,
		dashboard.WithReload(func(context.Context) error { return nil }),
	)
	outcome, err := fn(ctx, page)
	h.logger.Debug("Form handled",
		zap.String("path", r.URL.Path),
		zap.Stringer("outcome", outcome),
		zap.String("kind", string(dashboard.Classify(err))),
	)
	if outcome == dashboard.OutcomeReloaded {
		sink.add(flash.Message{Kind: flash.KindInfo, Text: notice})
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// flashSink error display and alerter that defers to the next page view.
type flashSink struct {
	ctx     context.Context
	store   *flash.Store
	session string
	logger  *zap.Logger
}

func (s *flashSink) ShowError(err error) {
	if err != nil {
		s.add(flash.Message{Kind: flash.KindError, Text: err.Error()})
	}
}

func (s *flashSink) Alert(message string) {
	s.add(flash.Message{Kind: flash.KindAlert, Text: message})
}

func (s *flashSink) add(msg flash.Message) {
	if err := s.store.Add(s.ctx, s.session, msg); err != nil {
		s.logger.Warn("Error storing flash message", zap.String("kind", string(msg.Kind)), zap.Error(err))
	}
}
