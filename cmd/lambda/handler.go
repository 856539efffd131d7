package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/spacesedan/reviewsense/internal/analysis"
	"github.com/spacesedan/reviewsense/internal/models"
)

type analyzer interface {
	Analyze(ctx context.Context, review string) (models.Verdict, error)
	ClassifierName() string
}

type handler struct {
	svc analyzer
}

func newHandler(svc analyzer) *handler {
	return &handler{svc: svc}
}

// Handle serves POST /api/analyze behind API Gateway. Every failure becomes a
// response; the returned error is always nil so the gateway never sees a 502.
func (h *handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Lambda] Recovered from panic", slog.String("panic", fmt.Sprint(r)))
			resp = jsonResponse(http.StatusInternalServerError, models.ErrorResponse{Error: models.MsgAnalyzeFailed})
			err = nil
		}
	}()

	if req.HTTPMethod != "" && req.HTTPMethod != http.MethodPost {
		return jsonResponse(http.StatusMethodNotAllowed, models.ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)}), nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, decodeErr := base64.StdEncoding.DecodeString(req.Body)
		if decodeErr != nil {
			return jsonResponse(http.StatusBadRequest, models.ErrorResponse{Error: models.MsgReviewRequired}), nil
		}
		body = decoded
	}

	review, decodeErr := analysis.DecodeReview(body)
	if decodeErr != nil {
		return jsonResponse(http.StatusBadRequest, models.ErrorResponse{Error: decodeErr.Error()}), nil
	}

	verdict, analyzeErr := h.svc.Analyze(ctx, review)
	if analyzeErr != nil {
		slog.Error("[Lambda] Analysis failed",
			slog.String("classifier", h.svc.ClassifierName()),
			slog.String("request_id", req.RequestContext.RequestID),
			slog.String("error", analyzeErr.Error()))
		return jsonResponse(http.StatusInternalServerError, models.ErrorResponse{Error: models.MsgAnalyzeFailed}), nil
	}

	return jsonResponse(http.StatusOK, verdict), nil
}

func jsonResponse(status int, payload any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"` + models.MsgAnalyzeFailed + `"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
