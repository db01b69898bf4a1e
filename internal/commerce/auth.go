package commerce

import "context"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginData is the payload inside a login response envelope.
type LoginData struct {
	IsSuccess bool   `json:"IsSuccess"`
	Message   string `json:"Message"`
	Token     string `json:"Token"`
	UserID    int64  `json:"UserId"`
	UserMail  string `json:"UserMail"`
	UserName  string `json:"UserName"`
}

type loginResponse struct {
	Data LoginData `json:"data"`
}

// Login exchanges credentials for a bearer token and user identity.
// A declined login (bad credentials) comes back with IsSuccess false and
// a nil error; transport and non-2xx failures come back as errors.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginData, error) {
	var resp loginResponse
	err := c.postJSON(ctx, "/Login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is the payload inside a registration response envelope.
type RegisterData struct {
	IsSuccess bool   `json:"IsSuccess"`
	Message   string `json:"Message"`
}

type registerResponse struct {
	Data RegisterData `json:"data"`
}

// Register creates a new account. Notification delivery (the welcome
// e-mail) is the API's concern, not ours.
func (c *Client) Register(ctx context.Context, name, email, password string) (*RegisterData, error) {
	var resp registerResponse
	err := c.postJSON(ctx, "/Registration", registerRequest{Name: name, Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
