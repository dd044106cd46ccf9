package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/consultready/consultready/internal/adapters/outbound/intake"
	"github.com/consultready/consultready/internal/application"
	"github.com/consultready/consultready/internal/domain"
	"github.com/consultready/consultready/internal/domain/tbsa"
)

type Handler struct {
	catalog *application.Catalog
	svc     *application.EvaluateService
}

func NewHandler(catalog *application.Catalog, svc *application.EvaluateService) *Handler {
	return &Handler{catalog: catalog, svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	v1 := e.Group("/v1")
	v1.GET("/domains", h.ListDomains)
	v1.GET("/domains/:name", h.GetDomain)
	v1.POST("/domains/:name/evaluate", h.Evaluate)
	v1.POST("/domains/:name/checklist", h.Checklist)
	v1.GET("/tbsa/regions", h.ListRegions)
	v1.POST("/tbsa", h.EstimateTBSA)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"domains": len(h.catalog.Names()),
	})
}

func (h *Handler) ListDomains(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Summaries())
}

func (h *Handler) GetDomain(c echo.Context) error {
	cfg, err := h.catalog.Get(c.Param("name"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cfg)
}

// EvaluateResponse is the body of a successful evaluation.
type EvaluateResponse struct {
	Result    domain.Result     `json:"result"`
	TBSA      *tbsa.Estimate    `json:"tbsa,omitempty"`
	Checklist *domain.Checklist `json:"checklist,omitempty"`
}

// Evaluate accepts an intake document. ?checklist=true adds the per-item
// breakdown.
func (h *Handler) Evaluate(c echo.Context) error {
	cfg, in, err := h.readIntake(c)
	if err != nil {
		return err
	}

	res, err := h.svc.Evaluate(cfg.Name, in.Inputs, in.Details)
	if err != nil {
		return httpError(err)
	}
	resp := EvaluateResponse{Result: res, TBSA: in.TBSA}

	if want, _ := strconv.ParseBool(c.QueryParam("checklist")); want {
		cl, err := h.svc.Checklist(cfg.Name, in.Inputs)
		if err != nil {
			return httpError(err)
		}
		resp.Checklist = &cl
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Checklist(c echo.Context) error {
	cfg, in, err := h.readIntake(c)
	if err != nil {
		return err
	}
	cl, err := h.svc.Checklist(cfg.Name, in.Inputs)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cl)
}

func (h *Handler) ListRegions(c echo.Context) error {
	return c.JSON(http.StatusOK, tbsa.Regions())
}

type tbsaRequest struct {
	Regions []string `json:"regions"`
}

func (h *Handler) EstimateTBSA(c echo.Context) error {
	var req tbsaRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	est, err := tbsa.Compute(req.Regions)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, est)
}

func (h *Handler) readIntake(c echo.Context) (domain.DomainConfig, intake.Intake, error) {
	cfg, err := h.catalog.Get(c.Param("name"))
	if err != nil {
		return domain.DomainConfig{}, intake.Intake{}, httpError(err)
	}
	var doc intake.Document
	if err := decodeBody(c, &doc); err != nil {
		return domain.DomainConfig{}, intake.Intake{}, err
	}
	in, err := intake.Convert(doc, cfg)
	if err != nil {
		return domain.DomainConfig{}, intake.Intake{}, httpError(err)
	}
	return cfg, in, nil
}

// decodeBody reads JSON keeping numbers exact so range checks see the
// submitted value.
func decodeBody(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		if errors.Is(err, io.EOF) {
			return echo.NewHTTPError(http.StatusBadRequest, "request body is empty")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON: "+err.Error())
	}
	return nil
}

// httpError maps engine and intake errors onto statuses.
func httpError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownDomain):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, intake.ErrOutOfRange),
		errors.Is(err, intake.ErrInvalidValue),
		errors.Is(err, tbsa.ErrUnknownRegion):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
}
