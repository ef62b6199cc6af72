package repositories

type Repos struct {
	Form  FormRepo
	User  UserRepo
	Reset ResetRepo
}

func New() *Repos {
	return &Repos{
		Form:  &DBFormRepo{},
		User:  &DBUserRepo{},
		Reset: &DBResetRepo{},
	}
}
