package credentials

import (
	"encoding/json"
	"os"

	"github.com/sathishrouthu/blog-cli/pkg/config"
)

// Credentials is the logged-in user identity persisted between commands
type Credentials struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// Load loads credentials from disk
func Load() (*Credentials, error) {
	path := config.GetCredentialsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Not logged in
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

// Save saves credentials to disk
func Save(creds *Credentials) error {
	path := config.GetCredentialsPath()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}

// Delete deletes credentials from disk
func Delete() error {
	path := config.GetCredentialsPath()
	return os.Remove(path)
}

// IsValid checks that the credentials identify a user
func (c *Credentials) IsValid() bool {
	return c != nil && c.UserID != 0
}

// DisplayName returns the user's name, falling back to the username
func (c *Credentials) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Username
}
