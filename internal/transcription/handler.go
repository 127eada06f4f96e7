package transcription

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/voiceowl/transcription-backend/internal/dto"
	"github.com/voiceowl/transcription-backend/internal/shared"
)

type Handler struct {
	service *Service
	azure   *AzureService
	logger  *slog.Logger
}

func NewHandler(service *Service, azure *AzureService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		azure:   azure,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/transcription", h.CreateTranscription)
	g.GET("/transcriptions", h.ListTranscriptions)
	g.POST("/azure-transcription", h.CreateAzureTranscription)
}

func bindCreateRequest(c echo.Context) (*dto.CreateTranscriptionRequest, error) {
	var req dto.CreateTranscriptionRequest
	if err := c.Bind(&req); err != nil {
		return nil, shared.BadRequest("invalid_body", "invalid request body")
	}
	if req.AudioURL == "" {
		return nil, shared.BadRequest("missing_field", "audioUrl is required")
	}
	return &req, nil
}

// CreateTranscription transcribes an audio reference with the default engine.
//
//	@Summary		Create a transcription
//	@Description	Downloads the referenced audio (mocked) and stores the resulting transcription.
//	@Tags			transcription
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTranscriptionRequest	true	"audio reference"
//	@Success		201		{object}	dto.CreateTranscriptionResponse
//	@Failure		400		{object}	shared.APIError
//	@Failure		500		{object}	shared.APIError
//	@Router			/transcription [post]
func (h *Handler) CreateTranscription(c echo.Context) error {
	req, err := bindCreateRequest(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	text, err := h.service.TranscribeAudio(ctx, req.AudioURL)
	if err != nil {
		if errors.Is(err, ErrInvalidURL) {
			return shared.BadRequest("invalid_url", err.Error())
		}
		h.logger.Error("transcription failed", "audio_url", req.AudioURL, "error", err)
		return shared.InternalError("transcription_failed", "failed to transcribe audio")
	}

	t, err := h.service.CreateTranscription(ctx, req.AudioURL, text, shared.SourceDefault, "")
	if err != nil {
		h.logger.Error("failed to persist transcription", "error", err)
		return shared.InternalError("create_failed", "failed to save transcription")
	}

	return c.JSON(http.StatusCreated, dto.CreateTranscriptionResponse{ID: t.ID})
}

// ListTranscriptions returns transcriptions created in the last N days.
//
//	@Summary		List recent transcriptions
//	@Tags			transcription
//	@Produce		json
//	@Param			days	query		int	false	"lookback window in days"	default(30)
//	@Success		200		{object}	dto.ListTranscriptionsResponse
//	@Failure		500		{object}	shared.APIError
//	@Router			/transcriptions [get]
func (h *Handler) ListTranscriptions(c echo.Context) error {
	days := 30
	if raw := c.QueryParam("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	items, err := h.service.RecentTranscriptions(c.Request().Context(), days)
	if err != nil {
		h.logger.Error("failed to list transcriptions", "error", err)
		return shared.InternalError("list_failed", "failed to fetch transcriptions")
	}

	resp := dto.ListTranscriptionsResponse{
		Count:          len(items),
		Transcriptions: make([]dto.TranscriptionResponse, 0, len(items)),
	}
	for _, t := range items {
		resp.Transcriptions = append(resp.Transcriptions, toResponse(t))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateAzureTranscription transcribes an audio reference through Azure.
//
//	@Summary		Create a transcription via Azure Speech-to-Text
//	@Description	Uses Azure when credentials are configured, a mock fallback otherwise.
//	@Tags			transcription
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTranscriptionRequest	true	"audio reference and optional language"
//	@Success		201		{object}	dto.CreateTranscriptionResponse
//	@Failure		400		{object}	shared.APIError
//	@Failure		500		{object}	shared.APIError
//	@Router			/azure-transcription [post]
func (h *Handler) CreateAzureTranscription(c echo.Context) error {
	req, err := bindCreateRequest(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	text, err := h.azure.TranscribeAudio(ctx, req.AudioURL, req.Language)
	if err != nil {
		h.logger.Error("azure transcription failed", "audio_url", req.AudioURL, "error", err)
		return shared.InternalError("transcription_failed", "failed to transcribe audio")
	}

	t, err := h.service.CreateTranscription(ctx, req.AudioURL, text, shared.SourceAzure, req.Language)
	if err != nil {
		h.logger.Error("failed to persist transcription", "error", err)
		return shared.InternalError("create_failed", "failed to save transcription")
	}

	return c.JSON(http.StatusCreated, dto.CreateTranscriptionResponse{ID: t.ID})
}

func toResponse(t *Transcription) dto.TranscriptionResponse {
	return dto.TranscriptionResponse{
		ID:            t.ID,
		AudioURL:      t.AudioURL,
		Transcription: t.Transcription,
		Source:        t.Source.String(),
		Language:      t.Language,
		CreatedAt:     t.CreatedAt,
	}
}
