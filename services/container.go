package services

import (
	"github.com/nwfth/forms-go/directory"
	"github.com/nwfth/forms-go/mailer"
	"github.com/nwfth/forms-go/repositories"
)

type Services struct {
	Form *FormService
	User *UserService
	Mail *MailService
}

func New(repos *repositories.Repos, dir directory.Client, sender mailer.Sender) *Services {
	mail := NewMailService(sender)
	return &Services{
		Form: NewFormService(repos),
		User: NewUserService(repos, dir, mail),
		Mail: mail,
	}
}
