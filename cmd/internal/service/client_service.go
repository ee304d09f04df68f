package service

import (
	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/domain/events"
	"conesites/cmd/internal/utils"
	"conesites/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
)

type ClientStore interface {
	AddClient(c entity.Client)
	Clients() []entity.Client
	ClientByID(id string) (entity.Client, bool)
}

type ClientService struct {
	Store    ClientStore
	IDs      IDGenerator
	Events   EventPublisher
	Validate *validator.Validate
}

func NewClientService(st ClientStore, ids IDGenerator, publisher EventPublisher, validate *validator.Validate) *ClientService {
	return &ClientService{
		Store:    st,
		IDs:      ids,
		Events:   publisher,
		Validate: validate,
	}
}

func (s *ClientService) GetClients() []*contract.ClientResponse {
	clients := s.Store.Clients()
	resp := make([]*contract.ClientResponse, len(clients))
	for i := range clients {
		resp[i] = toClientResponse(&clients[i])
	}
	return resp
}

func (s *ClientService) GetClient(id string) (*contract.ClientResponse, apierror.ErrorResponse) {
	client, ok := s.Store.ClientByID(id)
	if !ok {
		return nil, apierror.NotFoundError
	}
	return toClientResponse(&client), nil
}

func (s *ClientService) CreateClient(req *contract.CreateClientRequest) (*contract.ClientResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	client := entity.Client{
		ID:               s.IDs.Next(clientPrefix),
		CNPJ:             utils.FormatCNPJ(req.CNPJ),
		BusinessName:     req.BusinessName,
		TradeName:        req.TradeName,
		ZipCode:          req.ZipCode,
		Street:           req.Street,
		Number:           req.Number,
		City:             req.City,
		State:            req.State,
		RegistrationDate: utils.Deref(req.RegistrationDate, utils.Today()),
		Activity:         req.Activity,
		Status:           entity.ClientStatus(utils.Deref(req.Status, string(entity.ClientActive))),
	}

	s.Store.AddClient(client)
	s.Events.Publish(events.NewEntityCreated(contract.EntityClient, client.ID))
	return toClientResponse(&client), nil
}

func toClientResponse(c *entity.Client) *contract.ClientResponse {
	return &contract.ClientResponse{
		ID:               c.ID,
		CNPJ:             c.CNPJ,
		BusinessName:     c.BusinessName,
		TradeName:        c.TradeName,
		ZipCode:          c.ZipCode,
		Street:           c.Street,
		Number:           c.Number,
		City:             c.City,
		State:            c.State,
		RegistrationDate: c.RegistrationDate,
		Activity:         c.Activity,
		Status:           string(c.Status),
	}
}
