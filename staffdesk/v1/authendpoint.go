package v1

import (
	"context"
	"net/http"
	"strings"

	"staffdesk.com/staffdesk/staffdesk/v1/common"
)

type AuthEndpoint struct {
	transport *Transport
}

// Login authenticates with email and password. It is the only call issued
// without a bearer token; storing the returned token is the caller's job.
func (a *AuthEndpoint) Login(ctx context.Context, email, password string) (*common.LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, invalidArgument(http.MethodPost, basePath+"/auth/login", "email and password are required")
	}

	resp, err := a.transport.postAnon(ctx, basePath+"/auth/login", &common.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	result, err := DecodeObject[common.LoginResult](resp.Data)
	if err != nil {
		return nil, err
	}
	if result.Token == "" || result.Role == "" {
		return nil, &APIError{Kind: ErrUnexpectedShape, Status: resp.Status, Method: http.MethodPost, Path: basePath + "/auth/login", Body: "login response missing token or role"}
	}
	return result, nil
}
