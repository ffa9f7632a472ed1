package petstore

import (
	"net/http"

	"github.com/vitalvas/swaggerdoc/mux"
	"github.com/vitalvas/swaggerdoc/swagger"
	"github.com/vitalvas/swaggerdoc/validation"
)

const defaultLimit = 20

// ScopeAdmin is required to see and call the mutating pet operations.
const ScopeAdmin = "admin"

// Models describes the JSON bodies returned by the store.
var Models = swagger.ModelsFor(Pet{}, Order{}, APIError{})

var (
	yes = validation.Bool(true)

	idRule = validation.Field(validation.FieldRule{
		Scope:       validation.ScopePath,
		IsInt:       yes,
		Required:    yes,
		Description: "Pet ID",
	})
	statusRule = validation.FieldRule{In: []any{StatusAvailable, StatusPending, StatusSold}}
)

// Register mounts the store API on r and documents every route in reg.
// Routes are compiled by the next reg.LoadRoutes call.
func Register(reg *swagger.Registry, r *mux.Router, store *Store) {
	h := &handlers{store: store}

	reg.Route(r.HandleFunc("/pets", h.listPets).Methods(http.MethodGet)).
		Summary("List pets by status").
		ResponseClass("Pet").
		Models(Models).
		Validation(validation.Rules{
			"status": validation.Field(
				statusRule,
				validation.FieldRule{Scope: validation.ScopeQuery, DefaultValue: StatusAvailable, Description: "Status to filter by"},
			),
			"limit": validation.Field(validation.FieldRule{IsInt: yes, DefaultValue: defaultLimit, Description: "Maximum number of pets"}),
		})

	reg.Route(r.HandleFunc("/pets", h.addPet).Methods(http.MethodPost)).
		Summary("Add a pet").
		BodyDescription("Pet to add to the store").
		ResponseClass("Pet").
		ResponseMessage(http.StatusBadRequest, "Invalid input", "APIError").
		Authorizations(ScopeAdmin).
		Validation(validation.Rules{
			"name":          validation.Field(validation.FieldRule{Scope: validation.ScopeBody, Required: yes}),
			"status":        validation.Field(statusRule, validation.FieldRule{Scope: validation.ScopeBody}),
			"tags":          validation.Field(validation.FieldRule{Scope: validation.ScopeBody, Type: swagger.TypeArray, SwaggerType: "Tag"}),
			"category.id":   validation.Field(validation.FieldRule{Scope: validation.ScopeBody, IsInt: yes}),
			"category.name": validation.Field(validation.FieldRule{Scope: validation.ScopeBody}),
		})

	reg.Route(r.HandleFunc("/pets/:id", h.getPet).Methods(http.MethodGet)).
		Summary("Find pet by ID").
		ResponseClass("Pet").
		ResponseMessage(http.StatusNotFound, "Pet not found", "APIError").
		Validation(validation.Rules{"id": idRule})

	reg.Route(r.HandleFunc("/pets/:id", h.deletePet).Methods(http.MethodDelete)).
		Summary("Delete a pet").
		ResponseMessage(http.StatusNotFound, "Pet not found", "APIError").
		Validation(validation.Rules{
			"id": idRule,
			swagger.APIKeyParam: validation.Field(validation.FieldRule{
				Scope:    validation.ScopeHeader,
				Required: yes,
			}),
		})

	reg.Route(r.HandleFunc("/pets/:id/photo", h.uploadPhoto).Methods(http.MethodPost)).
		Summary("Upload a pet photo").
		Consumes("multipart/form-data").
		ResponseClass("Pet").
		Authorizations(ScopeAdmin).
		Validation(validation.Rules{
			"id":   idRule,
			"file": validation.Field(validation.FieldRule{SwaggerType: "file", Required: yes, Description: "Image to upload"}),
		})

	sr := r.PathPrefix("/store").Subrouter()

	reg.Route(sr.HandleFunc("/orders", h.placeOrder).Methods(http.MethodPost)).
		Summary("Place an order for a pet").
		Models(Models).
		ResponseClass("Order").
		ResponseMessage(http.StatusNotFound, "Pet not found", "APIError").
		Validation(validation.Rules{
			"petId":    validation.Field(validation.FieldRule{Scope: validation.ScopeBody, IsInt: yes, Required: yes}),
			"quantity": validation.Field(validation.FieldRule{Scope: validation.ScopeBody, IsInt: yes, DefaultValue: 1}),
			"status": validation.Field(validation.FieldRule{
				Scope: validation.ScopeBody,
				In:    []any{OrderPlaced, OrderApproved, OrderDelivered},
			}),
		})

	reg.Route(sr.HandleFunc("/orders/:orderId", h.getOrder).Methods(http.MethodGet)).
		Summary("Find an order by ID").
		ResponseClass("Order").
		ResponseMessage(http.StatusNotFound, "Order not found", "APIError").
		Validation(validation.Rules{
			"orderId": validation.Field(validation.FieldRule{Scope: validation.ScopePath, IsInt: yes, Required: yes}),
		})
}
