package company

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"carrent/infras/otel"
	"carrent/internal/domains/company/model/dto"
	"carrent/internal/domains/company/service"
	"carrent/shared/constant"
	gDto "carrent/shared/dto"
	"carrent/shared/validator"
	"carrent/transport/http/response"
)

type Handler struct {
	service service.Company
	otel    otel.Otel
}

func New(service service.Company, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/companies", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCompany)
		routerGroup.Get("/", handler.GetCompanies)
		routerGroup.Get("/{id}", handler.GetCompanyByID)
	})
}

// CreateCompany registers a new rental company profile.
// @Summary Create a new company
// @Description Register a rental company profile.
// @Tags Company
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Create Company Request"
// @Success 201 {object} response.Message "Company created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies [post]
// @Security BearerAuth
func (handler *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCompany")
	defer scope.End()

	req := dto.CreateCompanyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create company")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company created successfully")

	response.WithMessage(w, http.StatusCreated, "Company created successfully")
}

// GetCompanies retrieves all companies based on query parameters.
// @Summary Get all companies
// @Description Retrieve company profiles with pagination.
// @Tags Company
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetCompaniesResponse] "List of companies"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies [get]
func (handler *Handler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	companies, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get companies")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Companies retrieved successfully")

	response.WithJSON(w, http.StatusOK, companies)
}

// GetCompanyByID retrieves a company by its ID.
// @Summary Get a company by ID
// @Description Retrieve a company profile by its unique identifier.
// @Tags Company
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} response.Data[dto.CompanyResponse] "Company details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/companies/{id} [get]
func (handler *Handler) GetCompanyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	company, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get company by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company retrieved successfully")

	response.WithJSON(w, http.StatusOK, company)
}
