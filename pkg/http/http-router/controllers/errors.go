package controllers

import (
	"errors"
	"net/http"

	"github.com/lintang-b-s/nearby-grid/pkg"

	"go.uber.org/zap"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (api *mapAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := errorResponse{Error: errorBody{Code: code, Message: message}}
	if err := api.writeJSON(w, status, resp, nil); err != nil {
		api.log.Error("failed to write error response", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (api *mapAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

func (api *mapAPI) UnprocessableEntityResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusUnprocessableEntity, "unprocessable_entity", err.Error())
}

func (api *mapAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusNotFound, "not_found", "the requested resource could not be found")
}

func (api *mapAPI) MethodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusMethodNotAllowed, "method_not_allowed",
		"the "+r.Method+" method is not supported for this resource")
}

func (api *mapAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	api.errorResponse(w, r, http.StatusInternalServerError, "internal_server_error", pkg.MessageInternalServerError)
}

// handleServiceError maps the code carried by a pkg.Error to a response.
func (api *mapAPI) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch code := pkg.ErrorCode(err); {
	case errors.Is(code, pkg.ErrBadParamInput):
		api.BadRequestResponse(w, r, err)
	case errors.Is(code, pkg.ErrUnprocessable):
		api.UnprocessableEntityResponse(w, r, err)
	case errors.Is(code, pkg.ErrNotFound):
		api.NotFoundResponse(w, r)
	default:
		api.ServerErrorResponse(w, r, err)
	}
}
