package handlers

import "github.com/nwfth/forms-go/services"

type Handlers struct {
	User *UserHandler
	Form *FormHandler
}

func New(svcs *services.Services) *Handlers {
	return &Handlers{
		User: NewUserHandler(svcs.User),
		Form: NewFormHandler(svcs.Form, svcs.Mail),
	}
}
