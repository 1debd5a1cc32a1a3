package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/arnav-sinha2713/trading-journal/internal/dto"
	"github.com/arnav-sinha2713/trading-journal/internal/model"
	"github.com/arnav-sinha2713/trading-journal/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupJournal(base *echo.Group) {
	journalGroup := base.Group("/journal", h.authMiddleware)
	journalGroup.POST("/trades", h.submitTrade)
	journalGroup.GET("/trades", h.getJournal)
	journalGroup.GET("/summary", h.getSummary)
	journalGroup.Static("/charts", h.cfg.Journal.ChartDir)
}

func (h *HttpAPIHandler) submitTrade(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.SubmitTradeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	chart, err := h.readChartUpload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	result, err := h.service.JournalService.SubmitTrade(ctx, identityFromContext(c), *req, chart)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(vErr.Error()))
		}
		h.log.ErrorContext(ctx, "Failed to submit trade", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to save trade, please retry", nil))
	}

	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "trade saved", result))
}

func (h *HttpAPIHandler) getJournal(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.service.JournalService.GetJournal(ctx, identityFromContext(c))
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to load journal", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to load journal", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("journal loaded", result))
}

func (h *HttpAPIHandler) getSummary(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.service.JournalService.GetJournal(ctx, identityFromContext(c))
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to load summary", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to load summary", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("summary loaded", result.Summary))
}

// readChartUpload pulls the optional "chart" file out of the multipart
// form. A missing file is not an error; the trade just has no screenshot.
func (h *HttpAPIHandler) readChartUpload(c echo.Context) (*dto.ChartUpload, error) {
	fileHeader, err := c.FormFile("chart")
	if err != nil {
		// No chart attached, or the request was not multipart. The upload
		// is optional either way.
		return nil, nil
	}

	if fileHeader.Size > h.cfg.Journal.MaxChartSizeBytes {
		return nil, errors.New("chart image too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.New("could not read chart upload")
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, h.cfg.Journal.MaxChartSizeBytes+1))
	if err != nil {
		return nil, errors.New("could not read chart upload")
	}
	if int64(len(content)) > h.cfg.Journal.MaxChartSizeBytes {
		return nil, errors.New("chart image too large")
	}

	return &dto.ChartUpload{
		Filename: fileHeader.Filename,
		Content:  content,
	}, nil
}
