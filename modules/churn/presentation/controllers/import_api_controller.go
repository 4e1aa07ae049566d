package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	churnservices "github.com/churnai/churnai/modules/churn/services"
	coreservices "github.com/churnai/churnai/modules/core/services"
	"github.com/churnai/churnai/pkg/composables"
	"github.com/churnai/churnai/pkg/httpapi"
	"github.com/churnai/churnai/pkg/server"
)

type importRequest struct {
	CSVType    string `json:"csv_type"`
	CSVContent string `json:"csv_content"`
}

// ImportAPIController exposes the CSV ingestion endpoint consumed by the
// dashboard's import wizard. Every request is authorized with a bearer
// session token and scoped to the caller's organization.
type ImportAPIController struct {
	auth    *coreservices.AuthService
	imports *churnservices.ImportService
}

func NewImportAPIController(auth *coreservices.AuthService, imports *churnservices.ImportService) server.Controller {
	return &ImportAPIController{auth: auth, imports: imports}
}

func (c *ImportAPIController) Key() string {
	return "/import-csv"
}

func (c *ImportAPIController) Register(r *mux.Router) {
	r.HandleFunc("/import-csv", c.Import).Methods(http.MethodPost)
}

func (c *ImportAPIController) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := composables.UseLogger(ctx)

	token := bearerToken(r)
	profile, organizationID, err := c.auth.Authorize(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, coreservices.ErrNoOrganization):
			_ = httpapi.WriteError(w, http.StatusBadRequest, "No organization found for user")
		case errors.Is(err, coreservices.ErrSessionNotFound),
			errors.Is(err, coreservices.ErrSessionExpired),
			errors.Is(err, coreservices.ErrProfileNotFound):
			_ = httpapi.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			// Infrastructure failures during auth are not credential problems.
			logger.WithError(err).Error("authorization failed")
			_ = httpapi.WriteError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	var body importRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	requestID := composables.UseRequestID(ctx)
	result, err := c.imports.Run(ctx, organizationID, requestID, body.CSVType, body.CSVContent)
	if err != nil {
		var svcErr *churnservices.ServiceError
		if errors.As(err, &svcErr) {
			_ = httpapi.WriteError(w, svcErr.Status, svcErr.Message)
			return
		}
		logger.WithError(err).WithFields(map[string]any{
			"csv_type": body.CSVType,
			"user_id":  profile.ID,
		}).Error("csv import failed")
		_ = httpapi.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.WithFields(map[string]any{
		"csv_type": body.CSVType,
		"inserted": result.Inserted,
		"errors":   len(result.Errors),
	}).Info("csv import finished")
	_ = httpapi.WriteJSON(w, http.StatusOK, result)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
