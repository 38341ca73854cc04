package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"distlab/domain/core"
	"distlab/domain/dist"
	"distlab/internal/stddist"
)

// analyzeRequest is the payload shared by the pipeline endpoints.
type analyzeRequest struct {
	Function string  `json:"function"`
	Range    string  `json:"range"`
	K        float64 `json:"k,omitempty"`
	R        int     `json:"r,omitempty"`
	Points   int     `json:"points,omitempty"`
}

func (a *App) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decode(w, r)
	if !ok {
		return
	}
	result, err := a.pipeline.Analyze(r.Context(), req.Function, req.Range)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, result)
}

func (a *App) handleMoment(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decode(w, r)
	if !ok {
		return
	}
	if req.R < 1 {
		a.writeError(w, core.NewParameterError("r", float64(req.R), "moment order must be at least 1"))
		return
	}
	moment, err := a.pipeline.CustomMoment(req.Function, req.Range, req.R)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{"r": req.R, "moment": dist.Real(moment)})
}

func (a *App) handleProbability(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decode(w, r)
	if !ok {
		return
	}
	result, err := a.pipeline.Probability(req.Function, req.Range, req.K)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, result)
}

func (a *App) handleCurve(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decode(w, r)
	if !ok {
		return
	}
	points, err := a.pipeline.Curve(req.Function, req.Range, req.Points)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{"points": points})
}

// ---- standard model endpoints ----

func (a *App) handleBinomial(w http.ResponseWriter, r *http.Request) {
	n, err1 := intParam(r, "n")
	p, err2 := floatParam(r, "p")
	k, err3 := floatParam(r, "k")
	if err := firstErr(err1, err2, err3); err != nil {
		a.writeError(w, err)
		return
	}
	model, err := stddist.NewBinomial(n, p)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, modelAnswer(model, k))
}

func (a *App) handleBinomialChart(w http.ResponseWriter, r *http.Request) {
	n, err1 := intParam(r, "n")
	p, err2 := floatParam(r, "p")
	if err := firstErr(err1, err2); err != nil {
		a.writeError(w, err)
		return
	}
	model, err := stddist.NewBinomial(n, p)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{"points": model.Points(0)})
}

func (a *App) handleNormal(w http.ResponseWriter, r *http.Request) {
	mu, err1 := floatParam(r, "mu")
	sigma, err2 := floatParam(r, "sigma")
	if err := firstErr(err1, err2); err != nil {
		a.writeError(w, err)
		return
	}
	model, err := stddist.NewNormal(mu, sigma)
	if err != nil {
		a.writeError(w, err)
		return
	}

	// Inverse lookup when p is supplied, forward lookup on x otherwise.
	if r.URL.Query().Has("p") {
		p, perr := floatParam(r, "p")
		if perr != nil {
			a.writeError(w, perr)
			return
		}
		x, qerr := model.InvCDF(p)
		if qerr != nil {
			a.writeError(w, qerr)
			return
		}
		a.writeJSON(w, http.StatusOK, map[string]interface{}{"p": p, "quantile": x})
		return
	}

	x, err := floatParam(r, "x")
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, modelAnswer(model, x))
}

func (a *App) handleNormalChart(w http.ResponseWriter, r *http.Request) {
	mu, err1 := floatParam(r, "mu")
	sigma, err2 := floatParam(r, "sigma")
	if err := firstErr(err1, err2); err != nil {
		a.writeError(w, err)
		return
	}
	model, err := stddist.NewNormal(mu, sigma)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{"points": model.Points(optionalInt(r, "points", 100))})
}

func (a *App) handlePoisson(w http.ResponseWriter, r *http.Request) {
	lambda, err1 := floatParam(r, "lambda")
	k, err2 := floatParam(r, "k")
	if err := firstErr(err1, err2); err != nil {
		a.writeError(w, err)
		return
	}
	model, err := stddist.NewPoisson(lambda)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, modelAnswer(model, k))
}

func (a *App) handlePoissonChart(w http.ResponseWriter, r *http.Request) {
	lambda, err := floatParam(r, "lambda")
	if err != nil {
		a.writeError(w, err)
		return
	}
	model, merr := stddist.NewPoisson(lambda)
	if merr != nil {
		a.writeError(w, merr)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{"points": model.Points(optionalInt(r, "points", 0))})
}

func (a *App) handleExponential(w http.ResponseWriter, r *http.Request) {
	rate, err := floatParam(r, "rate")
	if err != nil {
		a.writeError(w, err)
		return
	}
	model, merr := stddist.NewExponential(rate)
	if merr != nil {
		a.writeError(w, merr)
		return
	}

	if r.URL.Query().Has("p") {
		p, perr := floatParam(r, "p")
		if perr != nil {
			a.writeError(w, perr)
			return
		}
		x, qerr := model.InvCDF(p)
		if qerr != nil {
			a.writeError(w, qerr)
			return
		}
		a.writeJSON(w, http.StatusOK, map[string]interface{}{"p": p, "quantile": x})
		return
	}

	x, xerr := floatParam(r, "x")
	if xerr != nil {
		a.writeError(w, xerr)
		return
	}
	a.writeJSON(w, http.StatusOK, modelAnswer(model, x))
}

func (a *App) handleExponentialChart(w http.ResponseWriter, r *http.Request) {
	rate, err := floatParam(r, "rate")
	if err != nil {
		a.writeError(w, err)
		return
	}
	model, merr := stddist.NewExponential(rate)
	if merr != nil {
		a.writeError(w, merr)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{"points": model.Points(optionalInt(r, "points", 100))})
}

// ---- helpers ----

// modelAnswer packages the full closed-form readout at one point.
func modelAnswer(m stddist.Model, x float64) map[string]interface{} {
	out := map[string]interface{}{
		"x":        x,
		"at":       m.At(x),
		"cdf":      m.CDF(x),
		"survival": m.Survival(x),
		"mean":     m.Mean(),
		"variance": m.Variance(),
		"mgf":      m.MGF(),
	}
	if pgf := m.PGF(); pgf != "" {
		out["pgf"] = pgf
	}
	return out
}

func (a *App) decode(w http.ResponseWriter, r *http.Request) (*analyzeRequest, bool) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return nil, false
	}
	return &req, true
}

func (a *App) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Error("encode response: %v", err)
	}
}

// writeError maps domain errors onto HTTP statuses: divergence guidance is a
// well-formed but unprocessable request, everything else from the engine is
// bad input.
func (a *App) writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if core.IsDivergenceError(err) {
		status = http.StatusUnprocessableEntity
	}
	a.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, core.NewParameterError(name, 0, "missing query parameter")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, core.NewParameterError(name, 0, "not a number")
	}
	return v, nil
}

func intParam(r *http.Request, name string) (int, error) {
	v, err := floatParam(r, name)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func optionalInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	return fallback
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
