package prereg

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// APIPath is where the server accepts pre-registrations.
const APIPath = "/api/preregistrations"

// Response is the body returned by the pre-registration API on success.
type Response struct {
	ID     string       `json:"id"`
	Status SubmitStatus `json:"status"`
}

// APIError is the error envelope returned by the server.
type APIError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client submits pre-registrations to the HTTP API. The browser client uses
// it as the Form's Submitter.
type Client struct {
	http *resty.Client
}

// NewClient creates a client for the API at baseURL. An empty baseURL means
// same-origin requests.
func NewClient(baseURL string, hc *http.Client) *Client {
	var rc *resty.Client
	if hc != nil {
		rc = resty.NewWithClient(hc)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	return &Client{http: rc}
}

// Submit posts s. It is only reached after local validation passed, so the
// agreement is sent as accepted.
func (c *Client) Submit(ctx context.Context, s Submission) error {
	var (
		out    Response
		apiErr APIError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(FormData{Name: s.Name, Phone: s.Phone, Email: s.Email, AgreementAccepted: true}).
		SetResult(&out).
		SetError(&apiErr).
		Post(APIPath)
	if err != nil {
		return &SubmissionError{Target: "api", Err: err}
	}
	if resp.IsError() {
		return &SubmissionError{
			Target: "api",
			Err:    fmt.Errorf("status %d: %s %s", resp.StatusCode(), apiErr.Error.Code, apiErr.Error.Message),
		}
	}
	return nil
}
