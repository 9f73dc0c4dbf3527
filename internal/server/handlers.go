package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alexiusacademia/gosite/internal/report"
	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/alexiusacademia/gosite/internal/tables"
	"github.com/alexiusacademia/gosite/internal/wind"
	"github.com/gorilla/mux"
)

// maxBody caps request bodies; every request is a handful of short fields
const maxBody = 1 << 16

// rawField accepts a JSON string or number and keeps its text for validation
type rawField string

func (f *rawField) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = rawField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected a string or number, got %s", b)
	}
	*f = rawField(n.String())
	return nil
}

type soilRequest struct {
	SoilType        rawField `json:"soil_type"`
	BearingCapacity rawField `json:"bearing_capacity"`
	LayerDepth      rawField `json:"layer_depth"`
	WaterTableDepth rawField `json:"water_table_depth"`

	Project string `json:"project"`
	Author  string `json:"author"`
}

type windRequest struct {
	Speed    rawField `json:"speed"`
	Exposure rawField `json:"exposure"`
	Shape    rawField `json:"shape"`
	Category rawField `json:"category"`
	Subtype  rawField `json:"subtype"`
	Area     rawField `json:"area"`

	Project string `json:"project"`
	Author  string `json:"author"`
}

func (req windRequest) input() wind.Input {
	return wind.Input{
		Speed:    string(req.Speed),
		Exposure: string(req.Exposure),
		Shape:    string(req.Shape),
		Category: string(req.Category),
		Subtype:  string(req.Subtype),
		Area:     string(req.Area),
	}
}

type errorBody struct {
	Field string `json:"field,omitempty"`
	Error string `json:"error"`
}

type soilResponse struct {
	Result         *soil.Result `json:"result"`
	HistoryWarning string       `json:"history_warning,omitempty"`
}

type windResponse struct {
	Result         *wind.Result `json:"result"`
	Message        string       `json:"message"`
	Recommendation string       `json:"recommendation,omitempty"`
	HistoryWarning string       `json:"history_warning,omitempty"`
}

type categoryBody struct {
	Category tables.Category  `json:"category"`
	Title    string           `json:"title"`
	Subtypes []tables.Subtype `json:"subtypes"`
}

type tablesBody struct {
	SoilTypes  []tables.SoilType     `json:"soil_types"`
	Exposures  []tables.ExposureInfo `json:"exposures"`
	Shapes     []tables.ShapeInfo    `json:"shapes"`
	Categories []categoryBody        `json:"categories"`
}

// writeJSON encodes before writing the header so an encode failure still yields a 500
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, `{"error":"encoding response failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// writeError maps validation failures to 400 with the offending field
func writeError(w http.ResponseWriter, err error) {
	var verr *tables.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorBody{Field: verr.Field, Error: verr.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	body := tablesBody{
		SoilTypes: tables.SoilTypes(),
		Exposures: tables.Exposures(),
		Shapes:    tables.Shapes(),
	}
	for _, c := range tables.Categories() {
		body.Categories = append(body.Categories, categoryBody{Category: c, Title: c.Title(), Subtypes: tables.Subtypes(c)})
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleSubtypes(w http.ResponseWriter, r *http.Request) {
	c, err := tables.ParseCategory(mux.Vars(r)["category"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables.Subtypes(c))
}

func (s *Server) analyzeSoil(req soilRequest) (*soil.Result, error) {
	sample, err := soil.ParseSample(string(req.SoilType), string(req.BearingCapacity), string(req.LayerDepth), string(req.WaterTableDepth))
	if err != nil {
		return nil, err
	}
	return s.soil.Analyze(sample)
}

func (s *Server) handleSoilAnalyze(w http.ResponseWriter, r *http.Request) {
	var req soilRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.analyzeSoil(req)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := soilResponse{Result: res}
	if err := s.rec.RecordSoil(res); err != nil {
		s.logger.Printf("[%s] history: %v", RequestID(r.Context()), err)
		resp.HistoryWarning = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWindCompute(w http.ResponseWriter, r *http.Request) {
	var req windRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := computeWind(req)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := windResponse{
		Result:         res,
		Message:        res.Advisory.Message(string(res.Scenario.Category)),
		Recommendation: res.Advisory.Recommendation(),
	}
	if err := s.rec.RecordWind(res); err != nil {
		s.logger.Printf("[%s] history: %v", RequestID(r.Context()), err)
		resp.HistoryWarning = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func computeWind(req windRequest) (*wind.Result, error) {
	sc, err := req.input().Parse()
	if err != nil {
		return nil, err
	}
	return wind.Compute(sc)
}

func (s *Server) handleSoilReport(w http.ResponseWriter, r *http.Request) {
	var req soilRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.analyzeSoil(req)
	if err != nil {
		writeError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := report.WriteSoil(&buf, res, report.Meta{Project: req.Project, Author: req.Author}); err != nil {
		writeError(w, err)
		return
	}
	writePDF(w, "soil-analysis.pdf", buf.Bytes())
}

func (s *Server) handleWindReport(w http.ResponseWriter, r *http.Request) {
	var req windRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := computeWind(req)
	if err != nil {
		writeError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := report.WriteWind(&buf, res, report.Meta{Project: req.Project, Author: req.Author}); err != nil {
		writeError(w, err)
		return
	}
	writePDF(w, "wind-load.pdf", buf.Bytes())
}

func writePDF(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
