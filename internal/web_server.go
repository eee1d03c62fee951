package internal

import (
	"chat-shell/auth"
	"chat-shell/domain"
	"chat-shell/errors"
	"chat-shell/observability"
	"chat-shell/projection"
	"chat-shell/repositories"
	"chat-shell/services"
	"chat-shell/session"
	"embed"
	"encoding/json"
	stderrors "errors"
	"html/template"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"path"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// WebServer renders the shell as plain HTML forms; every action posts and redirects back to "/".
type WebServer struct {
	log        *slog.Logger
	svc        services.IShellService
	tokens     *auth.TokenIssuer
	monitoring *observability.MonitoringManager
	inspector  Inspector
	tmpl       *template.Template
}

func NewWebServer(log *slog.Logger, svc services.IShellService, tokens *auth.TokenIssuer,
	monitoring *observability.MonitoringManager, inspector Inspector) *WebServer {
	return &WebServer{
		log:        log,
		svc:        svc,
		tokens:     tokens,
		monitoring: monitoring,
		inspector:  inspector,
		tmpl:       template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (s *WebServer) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/debug/stats", s.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/debug/inspect", s.handleInspect).Methods(http.MethodGet)
	r.HandleFunc("/static/{file}", s.handleStatic).Methods(http.MethodGet)

	shell := r.NewRoute().Subrouter()
	shell.Use(s.withSession)
	shell.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	shell.HandleFunc("/submit", s.handleSubmit).Methods(http.MethodPost)
	shell.HandleFunc("/toggle", s.action(func(*http.Request) session.Action {
		return session.ToggleRegistering{}
	})).Methods(http.MethodPost)
	shell.HandleFunc("/logout", s.action(func(*http.Request) session.Action {
		return session.Logout{}
	})).Methods(http.MethodPost)
	shell.HandleFunc("/search", s.action(func(r *http.Request) session.Action {
		return session.SetSearch{Term: r.PostFormValue("q")}
	})).Methods(http.MethodPost)
	shell.HandleFunc("/view/{view}", s.handleView).Methods(http.MethodPost)

	return chainMiddlewares(r, s.withRecovery, s.withLogging, withRequestID)
}

// withSession resolves the session behind the cookie, opening a new one when
// the cookie is missing, invalid, or refers to a session this process does not know.
func (s *WebServer) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw, err := s.tokens.SessionIDFromRequest(r); err == nil {
			if id, err := uuid.Parse(raw); err == nil {
				if _, err = s.svc.State(id); err == nil {
					next.ServeHTTP(w, r.WithContext(auth.WithSessionID(r.Context(), raw)))
					return
				}
			}
		}

		id, _, err := s.svc.Open()
		if err != nil {
			s.fail(w, r, err)
			return
		}
		cookie, err := s.tokens.Cookie(id.String())
		if err != nil {
			s.fail(w, r, err)
			return
		}
		http.SetCookie(w, cookie)
		next.ServeHTTP(w, r.WithContext(auth.WithSessionID(r.Context(), id.String())))
	})
}

func sessionID(r *http.Request) (repositories.SessionID, error) {
	raw, ok := auth.SessionIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, errors.ErrSessionNotFound
	}
	return uuid.Parse(raw)
}

func (s *WebServer) handlePage(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	page, err := s.svc.Page(id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, page)
}

func (s *WebServer) render(w http.ResponseWriter, r *http.Request, page projection.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "layout", page); err != nil {
		s.log.Error("Template rendering failed", "err", err, "path", r.URL.Path)
	}
}

// handleSubmit copies the form fields into the session and submits them.
// An incomplete form leaves the session as it was.
func (s *WebServer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	var actions []session.Action
	for _, field := range []session.Field{session.NAME, session.EMAIL, session.PASSWORD} {
		// The sign in form has no name input; an absent field keeps what was typed before.
		if values, ok := r.PostForm[string(field)]; ok && len(values) > 0 {
			actions = append(actions, session.EditForm{Field: field, Value: values[0]})
		}
	}
	s.dispatchAll(w, r, append(actions, session.Submit{})...)
}

func (s *WebServer) handleView(w http.ResponseWriter, r *http.Request) {
	view, err := domain.ParseView(mux.Vars(r)["view"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.dispatchAll(w, r, session.SetView{View: view})
}

func (s *WebServer) action(build func(*http.Request) session.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.dispatchAll(w, r, build(r))
	}
}

func (s *WebServer) dispatchAll(w http.ResponseWriter, r *http.Request, actions ...session.Action) {
	id, err := sessionID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	for _, a := range actions {
		if _, err = s.svc.Dispatch(id, a); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *WebServer) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.monitoring.Snapshot(s.svc.Sessions())); err != nil {
		s.log.Error("Encoding stats failed", "err", err)
	}
}

func (s *WebServer) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := path.Join("static", path.Base(mux.Vars(r)["file"]))
	data, err := fs.ReadFile(staticFS, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType(name, data))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(data)
}

// contentType trusts the extension first, then sniffs the bytes.
func contentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return mimetype.Detect(data).String()
}

func (s *WebServer) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.monitoring.IncrServerErrors()
	s.log.Error("Request failed", "err", err, "path", r.URL.Path, "request_id", requestID(r.Context()))
	status := http.StatusInternalServerError
	if stderrors.Is(err, errors.ErrSessionNotFound) {
		status = http.StatusGone
	}
	http.Error(w, http.StatusText(status), status)
}
