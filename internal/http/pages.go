package httpapi

import (
	"embed"
	"html/template"

	"github.com/omkarsindha/GSM-Alarm/internal/dashboard"
	"github.com/omkarsindha/GSM-Alarm/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// pageSpec one browser page: its template and what it binds.
type pageSpec struct {
	Name     string
	Title    string
	Template string
	Bindings func(d *view.Document) dashboard.Bindings
}

var pages = map[string]pageSpec{
	"index": {
		Name:     "index",
		Title:    "Lab Monitor",
		Template: "index.html",
		Bindings: func(d *view.Document) dashboard.Bindings {
			return dashboard.Bindings{Config: view.IndexBindings(d), Errors: d, Alerts: d}
		},
	},
	"settings": {
		Name:     "settings",
		Title:    "Settings",
		Template: "settings.html",
		Bindings: func(d *view.Document) dashboard.Bindings {
			return dashboard.Bindings{Config: view.SettingsBindings(d), Errors: d, Alerts: d}
		},
	},
	"history": {
		Name:     "history",
		Title:    "History",
		Template: "history.html",
		Bindings: func(d *view.Document) dashboard.Bindings {
			return dashboard.Bindings{History: view.HistoryPageBindings(d), Errors: d, Alerts: d}
		},
	},
}

// pageData what the templates see
type pageData struct {
	Title    string
	Active   string
	Snapshot view.Snapshot
	Notices  []string
	elements map[string]view.Element
}

func newPageData(spec pageSpec, snap view.Snapshot, notices []string) pageData {
	els := make(map[string]view.Element, len(snap.Elements))
	for _, e := range snap.Elements {
		els[e.ID] = e
	}
	return pageData{
		Title:    spec.Title,
		Active:   spec.Name,
		Snapshot: snap,
		Notices:  notices,
		elements: els,
	}
}

// El element by id; a zero Element when nothing was rendered into it.
func (p pageData) El(id string) view.Element {
	if e, ok := p.elements[id]; ok {
		return e
	}
	return view.Element{ID: id}
}
