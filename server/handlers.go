package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andareed/siftly-bikes/charts"
	"github.com/andareed/siftly-bikes/dataset"
	"github.com/andareed/siftly-bikes/engine"
	"github.com/andareed/siftly-bikes/logging"
	"github.com/go-chi/chi/v5"
)

type tableJSON struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type viewJSON struct {
	Selection engine.Selection  `json:"selection"`
	Table     tableJSON         `json:"table"`
	Total     int               `json:"total"`
	Grouped   map[string]int    `json:"grouped"`
	Top       []engine.DayCount `json:"top"`
}

func toTableJSON(ds *dataset.Dataset) tableJSON {
	t := tableJSON{Columns: ds.ColumnNames(), Rows: make([][]string, ds.Len())}
	for i := range ds.Records {
		t.Rows[i] = ds.Strings(i)
	}
	return t
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warnf("server: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var le *dataset.LoadError
	switch {
	case errors.Is(err, engine.ErrInvalidSelection):
		status = http.StatusBadRequest
	case errors.Is(err, charts.ErrNoData):
		status = http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	case errors.As(err, &le):
		logging.Errorf("server: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// selection reads ?column=..&value=..; without a column the first
// categorical column is used, as the dashboard does on start.
func selection(r *http.Request, ds *dataset.Dataset) engine.Selection {
	q := r.URL.Query()
	sel := engine.Selection{Column: q.Get("column"), Values: q["value"]}
	if sel.Column == "" {
		if cols := engine.CategoricalColumns(ds); len(cols) > 0 {
			sel.Column = cols[0]
		}
	}
	return sel
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

func (h *Handler) Columns(w http.ResponseWriter, r *http.Request) {
	ds, err := h.relabeled(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"columns": engine.CategoricalColumns(ds)})
}

func (h *Handler) Values(w http.ResponseWriter, r *http.Request) {
	ds, err := h.relabeled(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	column := chi.URLParam(r, "column")
	values, err := engine.DistinctValues(ds, column)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"column": column, "values": values})
}

func (h *Handler) computeView(r *http.Request) (engine.View, error) {
	ds, err := h.relabeled(r.Context())
	if err != nil {
		return engine.View{}, err
	}
	return engine.ComputeView(r.Context(), ds, selection(r, ds), h.opts.View)
}

func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	v, err := h.computeView(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sel := v.Selection
	if sel.Values == nil {
		sel.Values = []string{}
	}
	writeJSON(w, http.StatusOK, viewJSON{
		Selection: sel,
		Table:     toTableJSON(v.Table),
		Total:     v.Total,
		Grouped:   v.Grouped,
		Top:       v.Top,
	})
}

func (h *Handler) GroupedChart(w http.ResponseWriter, r *http.Request) {
	v, err := h.computeView(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := charts.GroupedBarChart(&buf, v.Selection.Column, engine.SortedGroups(v.Grouped), h.opts.ChartSize); err != nil {
		writeError(w, err)
		return
	}
	writePNG(w, buf.Bytes())
}

func (h *Handler) TopDaysChart(w http.ResponseWriter, r *http.Request) {
	v, err := h.computeView(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := charts.TopDaysBarChart(&buf, v.Top, h.opts.ChartSize); err != nil {
		writeError(w, err)
		return
	}
	writePNG(w, buf.Bytes())
}

func (h *Handler) Invalidate(w http.ResponseWriter, r *http.Request) {
	h.cache.Invalidate(h.source)
	w.WriteHeader(http.StatusNoContent)
}

func writePNG(w http.ResponseWriter, b []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
