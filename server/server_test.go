package server

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amritr10/Reporter-app/config"
)

const guestCSV = `First Name,Last Name,Tags,Wedding RSVP,Reception RSVP,Haldi RSVP,Mehndi RSVP,Party,"Would you like transportation to our wedding? (Please note this event will be alcohol-free)"
John,Doe,"Wedding Party, Haldi",,,Accept with pleasure,,Doe Family,Yes please
John,Doe,Reception,Regretfully decline,,,,Doe Family,
Jane,Smith,,,,,,,
`

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *Server {
	t.Helper()

	cfg, err := config.Default()
	require.NoError(t, err)
	for _, m := range mutate {
		m(cfg)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(cfg, log)
}

func postCSV(t *testing.T, s *Server, target, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "text/csv")
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReport(t *testing.T) {
	s := newTestServer(t)

	resp := postCSV(t, s, "/api/v1/report", guestCSV)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[ReportResponse](t, resp)
	_, err := uuid.Parse(body.AnalysisID)
	assert.NoError(t, err)

	require.NotNil(t, body.Report)
	assert.Equal(t, 3, body.Report.Records)
	assert.Len(t, body.Report.Duplicates.Records, 2)
	require.Len(t, body.Report.MissingRSVPs.Guests, 1)
	assert.Equal(t, "Jane", body.Report.MissingRSVPs.Guests[0].Record.FirstName)
	assert.Equal(t, 1, body.Report.Shuttle.Eligible)
	assert.Contains(t, body.Report.MissingColumns, "email")
}

func TestReportMultipart(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "guests.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(guestCSV))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/report", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[ReportResponse](t, resp)
	assert.Equal(t, 3, body.Report.Records)
}

func TestReportCSV(t *testing.T) {
	s := newTestServer(t)

	resp := postCSV(t, s, "/api/v1/report?format=csv", guestCSV)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	defer resp.Body.Close()
	rows, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus Jane")
	assert.Equal(t, "Jane", rows[1][0])
}

func TestReportRejectsBadUploads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty", body: ""},
		{name: "whitespace", body: "\n\n"},
		{name: "unbalanced quote", body: "First Name,Last Name\nJane,\"Smith\n"},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postCSV(t, s, "/api/v1/report", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := decode[errorBody](t, resp)
			assert.Equal(t, http.StatusBadRequest, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestFilter(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{name: "no filters", query: "", wantNames: []string{"John", "John", "Jane"}},
		{name: "wedding", query: "?events=Wedding", wantNames: []string{"John"}},
		{name: "wedding or reception unanswered", query: "?events=Wedding,Reception&statuses=unanswered", wantNames: []string{"John", "John"}},
		{name: "shuttle", query: "?shuttle=true", wantNames: []string{"John"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postCSV(t, s, "/api/v1/filter"+tt.query, guestCSV)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			body := decode[FilterResponse](t, resp)
			require.NotNil(t, body.Result)
			assert.Equal(t, 3, body.Result.Total)

			names := make([]string, 0, len(body.Result.Records))
			for _, r := range body.Result.Records {
				names = append(names, r.FirstName)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestFilterRejectsBadParams(t *testing.T) {
	s := newTestServer(t)

	for _, query := range []string{"?events=Sangeet", "?statuses=maybe", "?shuttle=perhaps"} {
		t.Run(query, func(t *testing.T) {
			resp := postCSV(t, s, "/api/v1/filter"+query, guestCSV)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestVocabulary(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/vocabulary", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[struct {
		Events []struct {
			Name string `json:"name"`
		} `json:"events"`
		Statuses []string `json:"statuses"`
	}](t, resp)
	require.Len(t, body.Events, 4)
	assert.Equal(t, "Wedding", body.Events[0].Name)
	assert.Equal(t, []string{"Accepted", "Declined", "Unanswered"}, body.Statuses)
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t)

	resp := postCSV(t, s, "/api/v1/report", guestCSV)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = postCSV(t, s, "/api/v1/report", "First Name,Last Name\nAsha,Patel\n")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = postCSV(t, s, "/api/v1/report", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(raw)
	assert.Contains(t, text, `reporter_analyses_total{endpoint="report",outcome="ok"} 2`)
	assert.Contains(t, text, `reporter_analyses_total{endpoint="report",outcome="malformed"} 1`)
	assert.Contains(t, text, `reporter_warnings_total{check="missing_rsvps"} 1`)
	assert.Contains(t, text, "reporter_upload_records_count 2")
}

func TestMetricsDisabled(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.Server.MetricsEnabled = false })

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUploadLimit(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.Server.MaxUploadBytes = 64 })

	req := httptest.NewRequest(http.MethodPost, "/api/v1/report", bytes.NewBufferString(guestCSV))
	req.Header.Set("Content-Type", "text/csv")
	_, err := s.App().Test(req)
	require.ErrorContains(t, err, "body size exceeds", "oversized uploads are refused before any handler runs")

	small := postCSV(t, s, "/api/v1/report", "First Name,Last Name\nAsha,Patel\n")
	assert.Equal(t, http.StatusOK, small.StatusCode)
}

func TestStartStop(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.Server.Addr = "127.0.0.1:0" })
	assert.NoError(t, s.Stop(), "stopping a server that never started is a no-op")

	require.NoError(t, s.Start(context.Background()))
	assert.NoError(t, s.Stop())
}
