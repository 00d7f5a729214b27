package service

import (
	"fmt"

	"github.com/sathishrouthu/blog-cli/pkg/api"
	"github.com/sathishrouthu/blog-cli/pkg/client"
	"github.com/sathishrouthu/blog-cli/pkg/credentials"
	"github.com/sathishrouthu/blog-cli/pkg/formatter"
	"github.com/sathishrouthu/blog-cli/pkg/logger"
	"github.com/sathishrouthu/blog-cli/pkg/output"
	"github.com/sathishrouthu/blog-cli/pkg/prompter"
)

// AuthService handles login, registration and logout.
type AuthService struct {
	prompt *prompter.Prompter
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{prompt: prompter.New()}
}

// NewAuthServiceWithPrompter creates an auth service reading from the
// given prompter.
func NewAuthServiceWithPrompter(p *prompter.Prompter) *AuthService {
	return &AuthService{prompt: p}
}

// Login authenticates the user and stores credentials.
func (s *AuthService) Login() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds.IsValid() {
		output.PrintWarning("Already logged in as %s", creds.Username)
		confirm, err := s.prompt.Confirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	username, err := s.prompt.String("Username: ")
	if err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	password, err := s.prompt.Password("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	client.Init()

	output.PrintInfo("Authenticating...")
	user, err := api.Login(api.LoginRequest{Username: username, Password: password})
	if err != nil {
		output.PrintError("Login failed: %v", err)
		return err
	}

	creds = &credentials.Credentials{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
	}
	if err := credentials.Save(creds); err != nil {
		output.PrintError("Failed to save credentials: %v", err)
		return err
	}

	output.PrintSuccess("Logged in as %s", creds.DisplayName())
	return nil
}

// Register creates a new account and logs the user in.
func (s *AuthService) Register() error {
	username, err := s.prompt.String("Username: ")
	if err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	name, err := s.prompt.String("Name: ")
	if err != nil {
		return err
	}

	email, err := s.prompt.String("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	contact, err := s.prompt.String("Contact (optional): ")
	if err != nil {
		return err
	}

	bio, err := s.prompt.String("Bio (optional): ")
	if err != nil {
		return err
	}

	password, err := s.prompt.Password("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	client.Init()

	output.PrintInfo("Creating account...")
	user, err := api.Register(api.RegisterRequest{
		Username: username,
		Name:     name,
		Email:    email,
		Contact:  contact,
		Bio:      bio,
		Password: password,
	})
	if err != nil {
		output.PrintError("Registration failed: %v", err)
		return err
	}

	creds := &credentials.Credentials{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
	}
	if err := credentials.Save(creds); err != nil {
		output.PrintError("Failed to save credentials: %v", err)
		return err
	}

	output.PrintSuccess("Account created. Logged in as %s", creds.DisplayName())
	return nil
}

// Logout deletes stored credentials and clears the user's session
// interaction cache so a later login starts fresh.
func (s *AuthService) Logout() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds == nil {
		output.PrintWarning("Not logged in")
		return nil
	}

	cache := openSession()
	cache.ClearForUser(creds.UserID)
	if err := cache.Save(); err != nil {
		logger.Warn("Failed to persist session cache", "error", err)
	}

	if err := credentials.Delete(); err != nil {
		output.PrintError("Failed to delete credentials: %v", err)
		return err
	}

	output.PrintSuccess("Logged out")
	return nil
}

// WhoAmI shows the logged-in user's profile.
func (s *AuthService) WhoAmI() error {
	creds, err := requireLogin()
	if err != nil {
		return err
	}

	user, err := api.GetUser(creds.UserID)
	if err != nil {
		if api.IsNotFound(err) {
			output.PrintWarning("Account no longer exists, clearing credentials")
			credentials.Delete()
		}
		return err
	}

	keys, record := formatter.UserRecord(user)
	return output.PrintRecord("Logged in as", keys, record)
}
