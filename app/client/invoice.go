package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// InvoiceData is the document request assembled by the payment workflow.
// Field naming follows the invoice service contract: Name carries the
// recruiter's last name and Surname the first name.
type InvoiceData struct {
	CreationDate time.Time `json:"creationDate"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Address      string    `json:"address"`
	Plan         string    `json:"plan"`
	Price        float64   `json:"price"`
}

type Invoice struct {
	ID           uuid.UUID `json:"id"`
	CreationDate time.Time `json:"creationDate"`
	PdfURL       string    `json:"pdfUrl"`
}

type InvoiceClient struct {
	baseURL string
	client  *http.Client
}

func NewInvoiceClient(baseURL string, timeout time.Duration) *InvoiceClient {
	return &InvoiceClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
	}
}

func (c *InvoiceClient) CreateInvoice(ctx context.Context, data *InvoiceData, token string) (*Invoice, error) {
	var invoice Invoice
	found, err := postJSON(ctx, c.client, "invoice-api", joinURL(c.baseURL, ""), token, data, &invoice)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &invoice, nil
}
