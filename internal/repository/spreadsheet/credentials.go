package spreadsheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

// Scopes are the OAuth scopes the store needs: read/write spreadsheets and
// look spreadsheets up by name.
var Scopes = []string{
	sheets.SpreadsheetsScope,
	drive.DriveMetadataReadonlyScope,
}

// ErrInvalidCredentials is returned for a credential blob that is not a usable
// service-account key.
var ErrInvalidCredentials = errors.New("invalid Google credentials")

type serviceAccountKey struct {
	Type        string `json:"type"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// ParseCredentials validates a service-account JSON key and returns credentials
// scoped for the store.
func ParseCredentials(ctx context.Context, data []byte) (*google.Credentials, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty credential blob", ErrInvalidCredentials)
	}
	var key serviceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	switch {
	case key.Type != "service_account":
		return nil, fmt.Errorf("%w: type is %q, want service_account", ErrInvalidCredentials, key.Type)
	case key.ClientEmail == "":
		return nil, fmt.Errorf("%w: client_email is missing", ErrInvalidCredentials)
	case key.PrivateKey == "":
		return nil, fmt.Errorf("%w: private_key is missing", ErrInvalidCredentials)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	return creds, nil
}
