package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Address struct {
	ID      uuid.UUID `json:"id"`
	Street  string    `json:"street"`
	Number  string    `json:"number"`
	City    string    `json:"city"`
	ZipCode string    `json:"zipCode"`
	Country string    `json:"country"`
}

// String renders the postal address as the single line the invoice service
// expects.
func (a *Address) String() string {
	street := strings.TrimSpace(strings.TrimSpace(a.Number) + " " + strings.TrimSpace(a.Street))
	return fmt.Sprintf("%s, %s %s, %s", street, strings.TrimSpace(a.ZipCode), strings.TrimSpace(a.City), strings.TrimSpace(a.Country))
}

type AddressClient struct {
	baseURL string
	client  *http.Client
}

func NewAddressClient(baseURL string, timeout time.Duration) *AddressClient {
	return &AddressClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

func (c *AddressClient) FetchAddress(ctx context.Context, id uuid.UUID, token string) (*Address, error) {
	var address Address
	found, err := getJSON(ctx, c.client, "address-api", joinURL(c.baseURL, id.String()), token, &address)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &address, nil
}
