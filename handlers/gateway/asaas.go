package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

type AsaasClient struct {
	BaseUrl string
	ApiKey  string
	client  *http.Client
}

func NewAsaasClient(baseUrl string, apiKey string, timeout time.Duration) *AsaasClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &AsaasClient{
		BaseUrl: baseUrl,
		ApiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type asaasCharge struct {
	Id                string  `json:"id"`
	Status            string  `json:"status"`
	Value             float64 `json:"value"`
	NetValue          float64 `json:"netValue"`
	PaymentDate       string  `json:"paymentDate"`
	DueDate           string  `json:"dueDate"`
	ExternalReference string  `json:"externalReference"`
	Deleted           bool    `json:"deleted"`
}

type asaasInvoice struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

type listResponse[T any] struct {
	Data []T `json:"data"`
}

func (c *AsaasClient) CreateCustomer(profile *CustomerProfile) (string, error) {
	payload := map[string]interface{}{
		"name":          profile.Name,
		"email":         profile.Email,
		"cpfCnpj":       profile.Document,
		"phone":         profile.Phone,
		"postalCode":    profile.PostalCode,
		"addressNumber": profile.AddressNumber,
	}
	var created struct {
		Id string `json:"id"`
	}
	if err := c.do(http.MethodPost, "/customers", payload, &created); err != nil {
		return "", errors.Wrap(err, "creating gateway customer")
	}
	return created.Id, nil
}

func (c *AsaasClient) UpdateCustomer(id string, profile *CustomerProfile) error {
	payload := map[string]interface{}{
		"name":          profile.Name,
		"email":         profile.Email,
		"cpfCnpj":       profile.Document,
		"phone":         profile.Phone,
		"postalCode":    profile.PostalCode,
		"addressNumber": profile.AddressNumber,
	}
	err := c.do(http.MethodPost, "/customers/"+id, payload, nil)
	return errors.Wrap(err, "updating gateway customer")
}

func (c *AsaasClient) CreateCharge(req *ChargeRequest) (*Charge, error) {
	payload := map[string]interface{}{
		"customer":          req.CustomerId,
		"billingType":       "BOLETO",
		"value":             req.Value,
		"dueDate":           req.DueDate.Format(dateLayout),
		"description":       req.Description,
		"externalReference": req.ExternalReference,
		"fine":              map[string]float64{"value": req.FinePercent},
		"interest":          map[string]float64{"value": req.InterestPercent},
	}
	var raw asaasCharge
	if err := c.do(http.MethodPost, "/payments", payload, &raw); err != nil {
		return nil, errors.Wrap(err, "creating gateway charge")
	}
	return raw.toCharge(), nil
}

func (c *AsaasClient) GetCharge(id string) (*Charge, error) {
	var raw asaasCharge
	if err := c.do(http.MethodGet, "/payments/"+id, nil, &raw); err != nil {
		return nil, errors.Wrapf(err, "fetching gateway charge %s", id)
	}
	return raw.toCharge(), nil
}

func (c *AsaasClient) FindChargeByExternalReference(ref string) (*Charge, error) {
	var list listResponse[asaasCharge]
	path := "/payments?externalReference=" + url.QueryEscape(ref)
	if err := c.do(http.MethodGet, path, nil, &list); err != nil {
		return nil, errors.Wrapf(err, "searching gateway charge by reference %s", ref)
	}
	if len(list.Data) == 0 {
		return nil, nil
	}
	return list.Data[0].toCharge(), nil
}

func (c *AsaasClient) CreateInvoice(req *InvoiceRequest) (*Invoice, error) {
	payload := map[string]interface{}{
		"payment":            req.ChargeId,
		"serviceDescription": req.Description,
		"value":              req.Value,
		"deductions":         0,
		"effectiveDate":      time.Now().Format(dateLayout),
		"taxes":              map[string]float64{"iss": req.TaxRate},
	}
	var raw asaasInvoice
	if err := c.do(http.MethodPost, "/invoices", payload, &raw); err != nil {
		return nil, errors.Wrap(err, "creating gateway invoice")
	}
	return &Invoice{Id: raw.Id, Status: raw.Status}, nil
}

func (c *AsaasClient) FindInvoiceByCharge(chargeId string) (*Invoice, error) {
	var list listResponse[asaasInvoice]
	path := "/invoices?payment=" + url.QueryEscape(chargeId)
	err := c.do(http.MethodGet, path, nil, &list)
	if err == errNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "searching gateway invoice for charge %s", chargeId)
	}
	if len(list.Data) == 0 {
		return nil, nil
	}
	return &Invoice{Id: list.Data[0].Id, Status: list.Data[0].Status}, nil
}

func (c *AsaasClient) AuthorizeInvoice(invoiceId string) error {
	err := c.do(http.MethodPost, "/invoices/"+invoiceId+"/authorize", map[string]interface{}{}, nil)
	return errors.Wrapf(err, "authorizing gateway invoice %s", invoiceId)
}

var errNotFound = errors.New("gateway: not found")

func (c *AsaasClient) do(method string, path string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}
	req, err := http.NewRequest(method, c.BaseUrl+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("access_token", c.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(raw))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (raw *asaasCharge) toCharge() *Charge {
	charge := &Charge{
		Id:                raw.Id,
		Status:            raw.Status,
		OriginalValue:     raw.Value,
		NetValue:          raw.NetValue,
		ExternalReference: raw.ExternalReference,
		Deleted:           raw.Deleted,
	}
	if raw.PaymentDate != "" {
		if t, err := time.Parse(dateLayout, raw.PaymentDate); err == nil {
			charge.PaymentDate = &t
		}
	}
	if raw.DueDate != "" {
		if t, err := time.Parse(dateLayout, raw.DueDate); err == nil {
			charge.DueDate = &t
		}
	}
	return charge
}
