package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lintang-b-s/nearby-grid/pkg/demo"
	helper "github.com/lintang-b-s/nearby-grid/pkg/http/http-router/router-helper"
	"github.com/lintang-b-s/nearby-grid/pkg/mapview"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

const maxRequestBodyBytes = 1 << 16

type mapAPI struct {
	mapService MapService
	log        *zap.Logger
	validate   *validator.Validate
	trans      ut.Translator
}

func New(mapService MapService, log *zap.Logger) *mapAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &mapAPI{
		mapService: mapService,
		log:        log,
		validate:   validate,
		trans:      trans,
	}
}

func (api *mapAPI) Routes(group *helper.RouteGroup) {
	group.GET("/scene", api.scene)
	group.POST("/view", api.moveView)
	group.POST("/click", api.click)
	group.GET("/grid", api.grid)
}

// NotFound and MethodNotAllowed answer with the json error envelope instead of plain text.
func (api *mapAPI) NotFound() http.Handler {
	return http.HandlerFunc(api.NotFoundResponse)
}

func (api *mapAPI) MethodNotAllowed() http.Handler {
	return http.HandlerFunc(api.MethodNotAllowedResponse)
}

// sceneResponse model info
//
//	@Description	response body with every layer on the map.
type sceneResponse struct {
	Data mapview.Snapshot `json:"data"`
}

// scene godoc
// @Summary		current map layers: view, tile layer, markers, popup and grid overlay.
// @Description	current map layers: view, tile layer, markers, popup and grid overlay.
// @Tags			map
// @ID scene
// @Produce		application/json
// @Router			/api/scene [get]
// @Success		200	{object}	sceneResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) scene(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.mapService.Scene()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// viewRequest model info
//
//	@Description	request body with the bounds visible in the browser.
type viewRequest struct {
	South float64 `json:"south" validate:"min=-90,max=90"`
	West  float64 `json:"west" validate:"min=-180,max=180"`
	North float64 `json:"north" validate:"min=-90,max=90,gtefield=South"`
	East  float64 `json:"east" validate:"min=-180,max=180,gtefield=West"`
}

// moveView godoc
// @Summary		report the visible bounds after the map moved, the grid overlay is redrawn for them.
// @Description	report the visible bounds after the map moved, the grid overlay is redrawn for them.
// @Tags			map
// @ID move-view
// @Param			body	body	viewRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/view [post]
// @Success		200	{object}	sceneResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) moveView(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request viewRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	bounds := orb.Bound{
		Min: orb.Point{request.West, request.South},
		Max: orb.Point{request.East, request.North},
	}
	snap, err := api.mapService.MoveView(bounds)
	if err != nil {
		api.handleServiceError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": snap}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// clickRequest model info
//
//	@Description	request body with the clicked location.
type clickRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// clickResponse model info
//
//	@Description	response body with the opened popup and the nearby places, nearest first.
type clickResponse struct {
	Data demo.ClickResult `json:"data"`
}

// click godoc
// @Summary		click on the map, lists the places in the 3x3 cells around the clicked location.
// @Description	click on the map, lists the places in the 3x3 cells around the clicked location.
// @Tags			map
// @ID click
// @Param			body	body	clickRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/click [post]
// @Success		200	{object}	clickResponse
// @Failure		400	{object}	errorResponse
// @Failure		422	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *mapAPI) click(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request clickRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	result, err := api.mapService.Click(request.Lat, request.Lng)
	if err != nil {
		api.handleServiceError(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// grid godoc
// @Summary		grid overlay as a geojson feature collection.
// @Description	grid overlay as a geojson feature collection, one polygon per visible cell.
// @Tags			map
// @ID grid
// @Produce		application/geo+json
// @Router			/api/grid [get]
// @Success		200
// @Failure		500	{object}	errorResponse
func (api *mapAPI) grid(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	js, err := api.mapService.GridGeoJSON().MarshalJSON()
	if err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(js); err != nil {
		api.log.Error("failed to write geojson response", zap.Error(err))
	}
}

func (api *mapAPI) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &syntaxErr):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxErr.Offset)
		case errors.As(err, &typeErr):
			return fmt.Errorf("body contains incorrect JSON type for field %q", typeErr.Field)
		case errors.As(err, &maxBytesErr):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesErr.Limit)
		default:
			return err
		}
	}
	return nil
}

func (api *mapAPI) validateRequest(request any) error {
	err := api.validate.Struct(request)
	if err == nil {
		return nil
	}
	vv := translateError(err, api.trans)
	vvString := []string{}
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	return fmt.Errorf("validation error: %v", vvString)
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
