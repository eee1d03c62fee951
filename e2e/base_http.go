package e2e

import (
	"chat-shell/auth"
	"chat-shell/fixtures"
	"chat-shell/internal"
	"chat-shell/observability"
	"chat-shell/repositories"
	"chat-shell/services"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config    Config
	server    *httptest.Server
	directory *repositories.DirectoryRepository
}

// SetupSuite loads the environment configuration and starts an in-process
// server when no address is given.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ShellAddr != "" {
		return
	}

	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	s.directory, err = repositories.OpenDirectory(log)
	s.Require().NoError(err)
	s.Require().NoError(s.directory.LoadDataset(fixtures.Seed(time.Now())))

	tokens, err := auth.NewTokenIssuer("e2e-secret", time.Hour)
	s.Require().NoError(err)
	svc := services.NewShellService(log, s.directory, repositories.NewMemorySessionRepository(time.Hour), time.Now)
	web := internal.NewWebServer(log, svc, tokens, observability.NewMonitoringManager(log), s.directory)

	s.server = httptest.NewServer(web.Handler())
	s.Config.ShellAddr = s.server.URL
}

func (s *BaseHTTPSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.directory != nil {
		_ = s.directory.Close()
	}
}

// Browser keeps its own cookie jar, so each one is a separate session.
type Browser struct {
	s      *BaseHTTPSuite
	client *http.Client
}

// NewBrowser prints a colorized header for the step and returns a fresh browser.
func (s *BaseHTTPSuite) NewBrowser(name string) *Browser {
	t := s.T()
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	return &Browser{
		s: s,
		client: &http.Client{
			Jar:       jar,
			Timeout:   5 * time.Second,
			Transport: &loggingTransport{t: t, next: http.DefaultTransport, debug: s.Config.DebugBody},
		},
	}
}

// Get returns the status and body of the page at path.
func (b *Browser) Get(path string) (int, string) {
	res, err := b.client.Get(b.s.Config.ShellAddr + path)
	b.s.Require().NoError(err)
	return read(b.s, res)
}

// Post submits a form and follows the redirect back to the page.
func (b *Browser) Post(path string, form url.Values) (int, string) {
	res, err := b.client.PostForm(b.s.Config.ShellAddr+path, form)
	b.s.Require().NoError(err)
	return read(b.s, res)
}

func read(s *BaseHTTPSuite, res *http.Response) (int, string) {
	defer func() { _ = res.Body.Close() }()
	body, err := io.ReadAll(res.Body)
	s.Require().NoError(err)
	return res.StatusCode, string(body)
}

type loggingTransport struct {
	t     *testing.T
	next  http.RoundTripper
	debug bool
}

func (l *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	res, err := l.next.RoundTrip(req)
	if err != nil {
		l.t.Logf("HTTP %s %s failed in %v: %v", req.Method, req.URL.Path, time.Since(start), err)
		return nil, err
	}
	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", req.Method, req.URL.Path, res.StatusCode, time.Since(start))

	if l.debug {
		body, readErr := io.ReadAll(res.Body)
		_ = res.Body.Close()
		if readErr != nil {
			return nil, readErr
		}
		res.Body = io.NopCloser(strings.NewReader(string(body)))
		fmt.Fprintln(&logBuilder, "\nRESPONSE:")
		fmt.Fprintln(&logBuilder, string(body))
	}
	l.t.Log(logBuilder.String())
	return res, nil
}
