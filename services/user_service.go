package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/nwfth/forms-go/config"
	"github.com/nwfth/forms-go/directory"
	"github.com/nwfth/forms-go/dto"
	"github.com/nwfth/forms-go/middleware"
	"github.com/nwfth/forms-go/models"
	"github.com/nwfth/forms-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrDirectoryUnavailable  = errors.New("directory service unavailable")
	ErrEmailTaken            = errors.New("email already registered")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
)

type UserService struct {
	users  repositories.UserRepo
	resets repositories.ResetRepo
	dir    directory.Client
	mail   *MailService
}

func NewUserService(repos *repositories.Repos, dir directory.Client, mail *MailService) *UserService {
	return &UserService{users: repos.User, resets: repos.Reset, dir: dir, mail: mail}
}

func tokenDuration(rememberMe bool) time.Duration {
	if rememberMe {
		return 7 * 24 * time.Hour
	}
	return 24 * time.Hour
}

// Login verifies credentials against either the local user table or the
// corporate directory, and issues a session token.
func (s *UserService) Login(input dto.LoginDTO) (string, *models.User, error) {
	if input.UseDomain {
		return s.loginDomain(input)
	}
	return s.loginLocal(input)
}

func (s *UserService) loginLocal(input dto.LoginDTO) (string, *models.User, error) {
	user, err := s.users.GetLocalUserByEmail(strings.ToLower(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user, tokenDuration(input.RememberMe))
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// loginDomain authenticates against the directory, then provisions or
// refreshes the local shadow row so the rest of the system only ever deals
// with users from its own table.
func (s *UserService) loginDomain(input dto.LoginDTO) (string, *models.User, error) {
	upn := directory.NormalizeUPN(input.Email, config.LdapDomainSuffix)

	profile, err := s.dir.Authenticate(upn, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrInvalidCredentials),
			errors.Is(err, directory.ErrProfileNotFound):
			return "", nil, ErrInvalidCredentials
		case errors.Is(err, directory.ErrUnreachable):
			return "", nil, ErrDirectoryUnavailable
		default:
			return "", nil, err
		}
	}

	email := strings.ToLower(profile.Email)
	if email == "" {
		email = strings.ToLower(upn)
	}

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, err
		}
		user = models.User{
			Email:        email,
			Password:     models.DomainUserPassword,
			Role:         string(models.UserRoleUser),
			IsDomainUser: true,
		}
	}

	user.Name = profile.DisplayName
	user.Department = profile.Department
	user.IsDomainUser = true
	if err := s.users.SaveUser(&user); err != nil {
		return "", nil, err
	}

	token, err := middleware.GenerateToken(user, tokenDuration(input.RememberMe))
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *UserService) Register(input dto.RegisterDTO) (*models.User, error) {
	email := strings.ToLower(input.Email)
	if _, err := s.users.GetUserByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:      email,
		Password:   string(hash),
		Name:       input.Name,
		Department: input.Department,
		Role:       string(models.UserRoleUser),
	}
	if err := s.users.SaveUser(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RequestPasswordReset issues a one-hour single-use reset ticket and mails
// the reset link. Domain accounts never get one; their password lives in the
// directory.
func (s *UserService) RequestPasswordReset(input dto.ResetRequestDTO) error {
	user, err := s.users.GetLocalUserByEmail(strings.ToLower(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	token, err := middleware.GenerateResetToken(user)
	if err != nil {
		return err
	}

	reset := models.PasswordReset{
		UserID:     user.ID,
		ResetToken: token,
		Expiry:     time.Now().Add(time.Hour),
	}
	if err := s.resets.Create(&reset); err != nil {
		return err
	}

	link := config.FrontendURL + "/reset-password?token=" + token
	if err := s.mail.SendPasswordReset(user, link); err != nil {
		log.Printf("Failed to send reset email to %s: %v", user.Email, err)
		return err
	}
	return nil
}

// CompletePasswordReset requires both a valid signed token and an unused,
// unexpired ticket row, so a link only works once.
func (s *UserService) CompletePasswordReset(input dto.ResetPasswordDTO) error {
	claims, err := middleware.ParseToken(input.Token)
	if err != nil {
		return ErrInvalidOrExpiredToken
	}

	reset, err := s.resets.FindActiveByToken(input.Token, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return err
	}

	user, err := s.users.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)

	if err := s.users.SaveUser(&user); err != nil {
		return err
	}
	return s.resets.MarkUsed(reset.ID)
}
