package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const RoleRecruiter = "recruiter"

// Recruiter is the user-directory view of a payer. AddressID is nil when the
// recruiter never completed registration.
type Recruiter struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Username     string     `json:"username"`
	Role         string     `json:"role"`
	IsRegistered bool       `json:"isRegistered"`
	Phone        string     `json:"phone"`
	AddressID    *uuid.UUID `json:"addressId"`
	CompanyID    *uuid.UUID `json:"companyId"`
	PlanID       *uuid.UUID `json:"planId"`
}

type RecruiterClient struct {
	baseURL string
	client  *http.Client
}

func NewRecruiterClient(baseURL string, timeout time.Duration) *RecruiterClient {
	return &RecruiterClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

func (c *RecruiterClient) FetchRecruiter(ctx context.Context, id uuid.UUID, token string) (*Recruiter, error) {
	var recruiter Recruiter
	found, err := getJSON(ctx, c.client, "user-api", joinURL(c.baseURL, id.String()), token, &recruiter)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &recruiter, nil
}
