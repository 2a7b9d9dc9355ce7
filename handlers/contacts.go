package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/oaiiae/contacts-api/contacts"
)

// ContactsService is the part of [contacts.Service] the handlers call.
type ContactsService interface {
	GetContacts() []contacts.Contact
	GetContactByID(id contacts.ContactID) (contacts.Contact, bool)
	ValidateContact(c *contacts.Contact) (bool, error)
	CreateContact(ctx context.Context, c *contacts.Contact) (contacts.ContactID, error)
	UpdateContact(ctx context.Context, id contacts.ContactID, c *contacts.Contact) error
	DeleteContact(ctx context.Context, id contacts.ContactID) error
}

var _ ContactsService = (*contacts.Service)(nil)

type Contacts struct {
	Service      ContactsService
	ErrorHandler func(context.Context, error)
	// BasePath is where the operations are mounted, used for Location headers.
	BasePath string
}

type ContactModel struct {
	ID contacts.ContactID `json:"id" readOnly:"true" example:"1"`

	FirstName string `json:"firstName" example:"jane"`
	LastName  string `json:"lastName"  example:"smith"`
	Email     string `json:"email"     example:"jane@example.com"`
}

// ContactInput leaves every field optional so that field checks are
// answered by the service messages rather than schema validation.
type ContactInput struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	FirstName string `json:"firstName,omitempty" example:"jane"`
	LastName  string `json:"lastName,omitempty"  example:"smith"`
	Email     string `json:"email,omitempty"     example:"jane@example.com"`
}

func (in *ContactInput) contact() *contacts.Contact {
	return &contacts.Contact{FirstName: in.FirstName, LastName: in.LastName, Email: in.Email}
}

func contactModel(c contacts.Contact) ContactModel {
	return ContactModel{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Email: c.Email}
}

const (
	msgContactNotFound  = "Contact not found."
	msgValidationFailed = "Validation failed."
)

// validate maps the service validation outcome to a 400 error.
func (h *Contacts) validate(c *contacts.Contact) error {
	ok, err := h.Service.ValidateContact(c)
	switch {
	case err != nil:
		return badRequest(err)
	case !ok:
		return huma.Error400BadRequest(msgValidationFailed)
	default:
		return nil
	}
}

func (h *Contacts) RegisterList(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "",
		handlerWithErrorHandler(h.list, h.ErrorHandler),
	)
}

type ContactsListOutput struct {
	Body []ContactModel
}

func (h *Contacts) list(_ context.Context, _ *struct{}) (*ContactsListOutput, error) {
	contacts := h.Service.GetContacts()
	body := make([]ContactModel, 0, len(contacts))
	for _, contact := range contacts {
		body = append(body, contactModel(contact))
	}
	return &ContactsListOutput{Body: body}, nil
}

func (h *Contacts) RegisterGet(api huma.API) { // called by [huma.AutoRegister]
	huma.Get(api, "/{id}",
		handlerWithErrorHandler(h.get, h.ErrorHandler),
		opErrors(http.StatusNotFound),
	)
}

type ContactsGetOutput struct {
	Body ContactModel
}

func (h *Contacts) get(_ context.Context, input *struct {
	ID contacts.ContactID `path:"id" example:"1" doc:"ID of the contact to get"`
}) (*ContactsGetOutput, error) {
	contact, ok := h.Service.GetContactByID(input.ID)
	if !ok {
		return nil, notFound(msgContactNotFound, contacts.ErrNotFound)
	}
	return &ContactsGetOutput{Body: contactModel(contact)}, nil
}

func (h *Contacts) RegisterCreate(api huma.API) { // called by [huma.AutoRegister]
	huma.Post(api, "",
		handlerWithErrorHandler(h.create, h.ErrorHandler),
		opErrors(http.StatusBadRequest),
		opDefaultStatus(http.StatusCreated),
	)
}

type ContactsCreateOutput struct {
	Location string `header:"Location" doc:"URL of the created contact"`
	Body     ContactModel
}

func (h *Contacts) create(ctx context.Context, input *struct {
	Body ContactInput
}) (*ContactsCreateOutput, error) {
	contact := input.Body.contact()
	err := h.validate(contact)
	if err != nil {
		return nil, err
	}

	id, err := h.Service.CreateContact(ctx, contact)
	if err != nil {
		return nil, badRequest(err)
	}

	return &ContactsCreateOutput{
		Location: h.BasePath + "/" + strconv.Itoa(id),
		Body:     contactModel(*contact),
	}, nil
}

func (h *Contacts) RegisterUpdate(api huma.API) { // called by [huma.AutoRegister]
	huma.Put(api, "/{id}",
		handlerWithErrorHandler(h.update, h.ErrorHandler),
		opErrors(http.StatusBadRequest),
	)
}

func (h *Contacts) update(ctx context.Context, input *struct {
	ID   contacts.ContactID `path:"id" example:"1" doc:"ID of the contact to update"`
	Body ContactInput
}) (*struct{}, error) {
	contact := input.Body.contact()
	err := h.validate(contact)
	if err != nil {
		return nil, err
	}

	err = h.Service.UpdateContact(ctx, input.ID, contact)
	if err != nil {
		return nil, badRequest(err)
	}
	return nil, nil
}

func (h *Contacts) RegisterDelete(api huma.API) { // called by [huma.AutoRegister]
	huma.Delete(api, "/{id}",
		handlerWithErrorHandler(h.del, h.ErrorHandler),
		opErrors(http.StatusBadRequest),
	)
}

func (h *Contacts) del(ctx context.Context, input *struct {
	ID contacts.ContactID `path:"id" example:"1" doc:"ID of the contact to delete"`
}) (*struct{}, error) {
	err := h.Service.DeleteContact(ctx, input.ID)
	if err != nil {
		return nil, badRequest(err)
	}
	return nil, nil
}
