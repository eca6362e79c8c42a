package server

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/amritr10/Reporter-app/engine"
	"github.com/amritr10/Reporter-app/helpers"
	"github.com/amritr10/Reporter-app/schema"
)

// ReportResponse is the body of POST /api/v1/report.
type ReportResponse struct {
	AnalysisID     string                 `json:"analysisId"`
	SkippedColumns []schema.SkippedColumn `json:"skippedColumns"`
	Report         *engine.Report         `json:"report"`
}

// FilterResponse is the body of POST /api/v1/filter.
type FilterResponse struct {
	AnalysisID string               `json:"analysisId"`
	Params     engine.FilterParams  `json:"params"`
	Result     *engine.FilterResult `json:"result"`
}

// handleReport runs every data check and summary over the uploaded list.
func (s *Server) handleReport(c fiber.Ctx) error {
	start := time.Now()
	id := uuid.NewString()
	log := s.log.WithField("analysis_id", id)

	parsed, err := s.readUpload(c)
	if err != nil {
		s.metrics.observe("report", "malformed", start)
		log.WithError(err).Warn("Rejected upload")
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	s.metrics.Records.Observe(float64(parsed.Snapshot.Len()))

	report := engine.Analyze(parsed.Snapshot, s.cfg.EngineOptions(log)...)
	s.metrics.observeWarnings(report.Warnings)
	s.metrics.observe("report", "ok", start)

	if c.Query("format") == "csv" {
		return sendTable(c, engine.BuildMissingTable(report.MissingRSVPs.Guests, parsed.Snapshot.Columns()))
	}

	skipped := parsed.Binding.Skipped
	if skipped == nil {
		skipped = []schema.SkippedColumn{}
	}
	return c.JSON(ReportResponse{
		AnalysisID:     id,
		SkippedColumns: skipped,
		Report:         report,
	})
}

// handleFilter returns the records matching the query's filter parameters.
//
//	?events=Wedding,Reception&statuses=Accepted&shuttle=true
func (s *Server) handleFilter(c fiber.Ctx) error {
	start := time.Now()
	id := uuid.NewString()
	log := s.log.WithField("analysis_id", id)

	params, err := filterParams(c)
	if err != nil {
		s.metrics.observe("filter", "invalid", start)
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	parsed, err := s.readUpload(c)
	if err != nil {
		s.metrics.observe("filter", "malformed", start)
		log.WithError(err).Warn("Rejected upload")
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	s.metrics.Records.Observe(float64(parsed.Snapshot.Len()))

	result, err := engine.ApplyFilters(parsed.Snapshot, params, s.cfg.EngineOptions(log)...)
	if err != nil {
		s.metrics.observe("filter", "invalid", start)
		if errors.Is(err, engine.ErrUnknownEvent) || errors.Is(err, engine.ErrInvalidStatus) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}
	s.metrics.observeWarnings(result.Warnings)
	s.metrics.observe("filter", "ok", start)

	if c.Query("format") == "csv" {
		return sendTable(c, engine.BuildRecordTable("Filtered guests", result.Records, parsed.Snapshot.Columns()))
	}

	return c.JSON(FilterResponse{
		AnalysisID: id,
		Params:     params,
		Result:     result,
	})
}

// handleVocabulary exposes the configured events so clients can build filters.
func (s *Server) handleVocabulary(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"events":   s.cfg.Vocabulary.Events,
		"statuses": engine.FilterableStatuses,
	})
}

// readUpload accepts either a multipart "file" field or a raw CSV body.
func (s *Server) readUpload(c fiber.Ctx) (*helpers.Parsed, error) {
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "failed to open upload"), helpers.ErrMalformedInput)
		}
		defer f.Close()
		return helpers.ReadCSV(f)
	}

	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.Mark(errors.New("empty upload"), helpers.ErrMalformedInput)
	}
	return helpers.ParseCSV(body)
}

func filterParams(c fiber.Ctx) (engine.FilterParams, error) {
	params := engine.FilterParams{
		Events: splitList(c.Query("events")),
	}

	for _, raw := range splitList(c.Query("statuses")) {
		status, err := engine.ParseStatus(raw)
		if err != nil {
			return params, err
		}
		params.Statuses = append(params.Statuses, status)
	}

	if raw := c.Query("shuttle"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return params, errors.Wrapf(err, "shuttle=%q", raw)
		}
		params.ShuttleOnly = v
	}
	return params, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func sendTable(c fiber.Ctx, table *engine.TableData) error {
	var buf bytes.Buffer
	if err := helpers.WriteTableCSV(&buf, table); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}
