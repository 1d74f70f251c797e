package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/neomorfeo/leaseflow/internal/app"
	"github.com/neomorfeo/leaseflow/internal/domain"
)

const timeFormat = "2006-01-02T15:04:05Z"

// --- API representations ---

// UserResponse is the API representation of an identity.
type UserResponse struct {
	ID    int64  `json:"id" doc:"Unique identifier"`
	Email string `json:"email" doc:"Login email"`
	Role  string `json:"role" doc:"LANDLORD or TENANT"`
}

// PropertyResponse is the API representation of a listing.
type PropertyResponse struct {
	ID           int64  `json:"id" doc:"Unique identifier"`
	OwnerID      int64  `json:"owner_id" doc:"Owning landlord"`
	City         string `json:"city" doc:"City"`
	District     string `json:"district" doc:"District"`
	Deposit      int64  `json:"deposit" doc:"Deposit amount in won"`
	MonthlyRent  int64  `json:"monthly_rent" doc:"Monthly rent in won (MONTHLY deals only)"`
	PropertyType string `json:"property_type" doc:"Listing category"`
	DealType     string `json:"deal_type" doc:"Transaction mode"`
	Status       string `json:"status" doc:"Lifecycle state"`
	CreatedAt    string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
}

// RequestResponse is the API representation of a contract request.
type RequestResponse struct {
	ID          int64  `json:"id" doc:"Unique identifier"`
	RequesterID int64  `json:"requester_id" doc:"Requesting tenant"`
	PropertyID  int64  `json:"property_id" doc:"Target listing"`
	Status      string `json:"status" doc:"Lifecycle state"`
	CreatedAt   string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
}

// ContractResponse is the API representation of a concluded deal.
type ContractResponse struct {
	ID          int64  `json:"id" doc:"Contract identifier (equals the originating request id)"`
	Reference   string `json:"reference" doc:"Opaque external reference"`
	OwnerID     int64  `json:"owner_id" doc:"Landlord party"`
	RequesterID int64  `json:"requester_id" doc:"Tenant party"`
	Status      string `json:"status" doc:"Always COMPLETED"`
	CreatedAt   string `json:"created_at" doc:"Completion timestamp (ISO 8601)"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Role: string(u.Role)}
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		City:         p.Location.City,
		District:     p.Location.District,
		Deposit:      p.Price.Deposit,
		MonthlyRent:  p.Price.MonthlyRent,
		PropertyType: string(p.PropertyType),
		DealType:     string(p.DealType),
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt.Format(timeFormat),
	}
}

func toPropertyResponses(properties []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyResponse(p))
	}
	return out
}

func toRequestResponse(r domain.ContractRequest) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		PropertyID:  r.PropertyID,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format(timeFormat),
	}
}

func toContractResponse(c domain.Contract) ContractResponse {
	return ContractResponse{
		ID:          c.ID,
		Reference:   c.Reference,
		OwnerID:     c.OwnerID,
		RequesterID: c.RequesterID,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt.Format(timeFormat),
	}
}

// --- Inputs / outputs ---

type LoginInput struct {
	Body struct {
		Email string `json:"email" minLength:"1" maxLength:"255" doc:"Registered email"`
	}
}

type LoginOutput struct {
	Body UserResponse
}

type CreatePropertyInput struct {
	ActorID int64 `header:"X-Actor-ID" doc:"Acting user id"`
	Body    struct {
		City         string `json:"city" minLength:"1" doc:"City"`
		District     string `json:"district" minLength:"1" doc:"District"`
		Deposit      int64  `json:"deposit" minimum:"0" doc:"Deposit amount in won"`
		MonthlyRent  int64  `json:"monthly_rent,omitempty" minimum:"0" doc:"Monthly rent in won (MONTHLY deals only)"`
		PropertyType string `json:"property_type" enum:"APARTMENT,VILLA,OFFICETEL,ONE_ROOM" doc:"Listing category"`
		DealType     string `json:"deal_type" enum:"JEONSE,MONTHLY,SALE" doc:"Transaction mode"`
	}
}

type CreatePropertyOutput struct {
	Body PropertyResponse
}

type SearchPropertiesInput struct {
	City          string   `query:"city" required:"false" doc:"Filter by city"`
	District      string   `query:"district" required:"false" doc:"Filter by district"`
	PropertyTypes []string `query:"property_type" required:"false" doc:"Filter by listing category (repeatable)"`
	DealTypes     []string `query:"deal_type" required:"false" doc:"Filter by transaction mode (repeatable)"`
	MinPrice      int64    `query:"min_price" required:"false" doc:"Lower price bound (rent for MONTHLY, deposit otherwise)"`
	MaxPrice      int64    `query:"max_price" required:"false" doc:"Upper price bound"`
}

type SearchPropertiesOutput struct {
	Body []PropertyResponse
}

type GetPropertyInput struct {
	ID int64 `path:"id" doc:"Property ID"`
}

type GetPropertyOutput struct {
	Body PropertyResponse
}

type UpdatePropertyInput struct {
	ActorID int64 `header:"X-Actor-ID" doc:"Acting user id"`
	ID      int64 `path:"id" doc:"Property ID"`
	Body    struct {
		DealType    *string `json:"deal_type,omitempty" enum:"JEONSE,MONTHLY,SALE" doc:"New transaction mode"`
		Deposit     *int64  `json:"deposit,omitempty" minimum:"0" doc:"New deposit amount"`
		MonthlyRent *int64  `json:"monthly_rent,omitempty" minimum:"0" doc:"New monthly rent"`
	}
}

type UpdatePropertyOutput struct {
	Body PropertyResponse
}

type DeletePropertyInput struct {
	ActorID int64 `header:"X-Actor-ID" doc:"Acting user id"`
	ID      int64 `path:"id" doc:"Property ID"`
}

type DeletePropertyOutput struct{}

type MyPropertiesInput struct {
	ActorID int64 `header:"X-Actor-ID" doc:"Acting user id"`
}

type MyPropertiesOutput struct {
	Body []PropertyResponse
}

type CreateRequestInput struct {
	ActorID int64 `header:"X-Actor-ID" doc:"Acting user id"`
	Body    struct {
		PropertyID int64 `json:"property_id" doc:"Target listing"`
	}
}

type CreateRequestOutput struct {
	Body RequestResponse
}

type RequestActionInput struct {
	ActorID int64 `header:"X-Actor-ID" doc:"Acting user id"`
	ID      int64 `path:"id" doc:"Request ID"`
}

type RequestActionOutput struct {
	Body RequestResponse
}

type CompleteContractInput struct {
	ID int64 `path:"id" doc:"Request ID"`
}

type CompleteContractOutput struct {
	Body ContractResponse
}

type MyRequestsInput struct {
	ActorID int64 `header:"X-Actor-ID" doc:"Acting user id"`
}

type MyRequestsOutput struct {
	Body []RequestResponse
}

type GetContractInput struct {
	ID int64 `path:"id" doc:"Contract ID"`
}

type GetContractOutput struct {
	Body ContractResponse
}

// Handler bundles the services behind the API routes.
type Handler struct {
	listings *app.ListingService
	deals    *app.DealService
	auth     *app.AuthService
	users    domain.UserRepository
}

// Register adds all deal API routes to the Huma API.
func Register(api huma.API, listings *app.ListingService, deals *app.DealService, auth *app.AuthService, users domain.UserRepository) {
	h := &Handler{listings: listings, deals: deals, auth: auth, users: users}

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/v1/login",
		Summary:     "Resolve an email to an identity",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
		user, err := h.auth.Login(ctx, input.Body.Email)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &LoginOutput{Body: toUserResponse(user)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-property",
		Method:      http.MethodPost,
		Path:        "/api/v1/properties",
		Summary:     "List a new property",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *CreatePropertyInput) (*CreatePropertyOutput, error) {
		actor, err := h.actor(ctx, input.ActorID)
		if err != nil {
			return nil, err
		}

		property, err := h.listings.CreateProperty(ctx, actor,
			domain.Location{City: input.Body.City, District: input.Body.District},
			domain.Price{Deposit: input.Body.Deposit, MonthlyRent: input.Body.MonthlyRent},
			domain.PropertyType(input.Body.PropertyType),
			domain.DealType(input.Body.DealType),
		)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &CreatePropertyOutput{Body: toPropertyResponse(property)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "search-properties",
		Method:      http.MethodGet,
		Path:        "/api/v1/properties",
		Summary:     "Search listings",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *SearchPropertiesInput) (*SearchPropertiesOutput, error) {
		properties, err := h.listings.Search(ctx, toFilter(input))
		if err != nil {
			return nil, toHumaError(err)
		}
		return &SearchPropertiesOutput{Body: toPropertyResponses(properties)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-property",
		Method:      http.MethodGet,
		Path:        "/api/v1/properties/{id}",
		Summary:     "Get a listing",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *GetPropertyInput) (*GetPropertyOutput, error) {
		property, err := h.listings.GetProperty(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetPropertyOutput{Body: toPropertyResponse(property)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-property",
		Method:      http.MethodPatch,
		Path:        "/api/v1/properties/{id}",
		Summary:     "Change the terms of an available listing",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *UpdatePropertyInput) (*UpdatePropertyOutput, error) {
		actor, err := h.actor(ctx, input.ActorID)
		if err != nil {
			return nil, err
		}

		update := domain.PropertyUpdate{
			Deposit:     input.Body.Deposit,
			MonthlyRent: input.Body.MonthlyRent,
		}
		if input.Body.DealType != nil {
			dealType := domain.DealType(*input.Body.DealType)
			update.DealType = &dealType
		}

		property, err := h.listings.UpdateProperty(ctx, actor, input.ID, update)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &UpdatePropertyOutput{Body: toPropertyResponse(property)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-property",
		Method:      http.MethodDelete,
		Path:        "/api/v1/properties/{id}",
		Summary:     "Delete an available listing",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *DeletePropertyInput) (*DeletePropertyOutput, error) {
		actor, err := h.actor(ctx, input.ActorID)
		if err != nil {
			return nil, err
		}

		if err := h.listings.DeleteProperty(ctx, actor, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return &DeletePropertyOutput{}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "my-properties",
		Method:      http.MethodGet,
		Path:        "/api/v1/my/properties",
		Summary:     "List the acting landlord's properties",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *MyPropertiesInput) (*MyPropertiesOutput, error) {
		actor, err := h.actor(ctx, input.ActorID)
		if err != nil {
			return nil, err
		}

		properties, err := h.listings.ListByOwner(ctx, actor)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &MyPropertiesOutput{Body: toPropertyResponses(properties)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-request",
		Method:      http.MethodPost,
		Path:        "/api/v1/requests",
		Summary:     "Request a contract on an available listing",
		Tags:        []string{"Requests"},
	}, func(ctx context.Context, input *CreateRequestInput) (*CreateRequestOutput, error) {
		actor, err := h.actor(ctx, input.ActorID)
		if err != nil {
			return nil, err
		}

		request, err := h.deals.CreateRequest(ctx, actor, input.Body.PropertyID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &CreateRequestOutput{Body: toRequestResponse(request)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "approve-request",
		Method:      http.MethodPost,
		Path:        "/api/v1/requests/{id}/approve",
		Summary:     "Approve a pending request",
		Tags:        []string{"Requests"},
	}, func(ctx context.Context, input *RequestActionInput) (*RequestActionOutput, error) {
		actor, err := h.actor(ctx, input.ActorID)
		if err != nil {
			return nil, err
		}

		request, err := h.deals.ApproveRequest(ctx, actor, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &RequestActionOutput{Body: toRequestResponse(request)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "reject-request",
		Method:      http.MethodPost,
		Path:        "/api/v1/requests/{id}/reject",
		Summary:     "Reject a pending request",
		Tags:        []string{"Requests"},
	}, func(ctx context.Context, input *RequestActionInput) (*RequestActionOutput, error) {
		actor, err := h.actor(ctx, input.ActorID)
		if err != nil {
			return nil, err
		}

		request, err := h.deals.RejectRequest(ctx, actor, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &RequestActionOutput{Body: toRequestResponse(request)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "complete-contract",
		Method:      http.MethodPost,
		Path:        "/api/v1/requests/{id}/complete",
		Summary:     "Finalize an approved request into a contract",
		Tags:        []string{"Requests"},
	}, func(ctx context.Context, input *CompleteContractInput) (*CompleteContractOutput, error) {
		contract, err := h.deals.CompleteContract(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &CompleteContractOutput{Body: toContractResponse(contract)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "my-requests",
		Method:      http.MethodGet,
		Path:        "/api/v1/my/requests",
		Summary:     "List the acting tenant's requests",
		Tags:        []string{"Requests"},
	}, func(ctx context.Context, input *MyRequestsInput) (*MyRequestsOutput, error) {
		actor, err := h.actor(ctx, input.ActorID)
		if err != nil {
			return nil, err
		}

		requests, err := h.deals.ListRequestsByRequester(ctx, actor)
		if err != nil {
			return nil, toHumaError(err)
		}

		out := make([]RequestResponse, 0, len(requests))
		for _, r := range requests {
			out = append(out, toRequestResponse(r))
		}
		return &MyRequestsOutput{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-contract",
		Method:      http.MethodGet,
		Path:        "/api/v1/contracts/{id}",
		Summary:     "Get a concluded contract",
		Tags:        []string{"Contracts"},
	}, func(ctx context.Context, input *GetContractInput) (*GetContractOutput, error) {
		contract, err := h.deals.GetContract(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetContractOutput{Body: toContractResponse(contract)}, nil
	})
}

// actor resolves the X-Actor-ID header to an identity. The system trusts the
// supplied identifier; an unknown id is the only failure mode.
func (h *Handler) actor(ctx context.Context, id int64) (domain.User, error) {
	user, err := h.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, huma.Error401Unauthorized("unknown acting user")
		}
		return domain.User{}, huma.Error500InternalServerError("internal server error")
	}
	return user, nil
}

// toFilter maps the query parameters to the domain filter. Zero price bounds
// and empty strings impose no constraint.
func toFilter(input *SearchPropertiesInput) domain.PropertyFilter {
	var f domain.PropertyFilter

	if input.City != "" {
		f.City = &input.City
	}
	if input.District != "" {
		f.District = &input.District
	}
	for _, t := range input.PropertyTypes {
		f.PropertyTypes = append(f.PropertyTypes, domain.PropertyType(t))
	}
	for _, t := range input.DealTypes {
		f.DealTypes = append(f.DealTypes, domain.DealType(t))
	}
	if input.MinPrice > 0 {
		f.MinPrice = &input.MinPrice
	}
	if input.MaxPrice > 0 {
		f.MaxPrice = &input.MaxPrice
	}

	return f
}

// toHumaError translates domain errors to Huma HTTP errors.
func toHumaError(err error) error {
	switch {
	case errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrContractNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, domain.ErrPropertyAlreadyContracted):
		return huma.Error409Conflict(err.Error())
	}

	var noAuth *domain.NoAuthorityError
	if errors.As(err, &noAuth) {
		return huma.Error403Forbidden(noAuth.Error())
	}

	var notOwner *domain.NotOwnerError
	if errors.As(err, &notOwner) {
		return huma.Error403Forbidden(notOwner.Error())
	}

	var propStatus *domain.InvalidPropertyStatusError
	if errors.As(err, &propStatus) {
		return huma.Error422UnprocessableEntity(propStatus.Error())
	}

	var reqStatus *domain.InvalidRequestStatusError
	if errors.As(err, &reqStatus) {
		return huma.Error422UnprocessableEntity(reqStatus.Error())
	}

	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return huma.Error422UnprocessableEntity(validation.Error())
	}

	return huma.Error500InternalServerError("internal server error")
}
