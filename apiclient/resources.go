package apiclient

import (
	"context"
	"net/url"
)

// Sauda is the wire shape of a purchase agreement. IDs are snowflakes
// serialized as strings.
type Sauda struct {
	ID               string  `json:"id"`
	SaudaNo          string  `json:"sauda_no"`
	Type             string  `json:"type"`
	RiceQuality      string  `json:"rice_quality"`
	Rate             float64 `json:"rate"`
	QuantityQuintals float64 `json:"quantity_quintals"`
	Purchaser        string  `json:"purchaser"`
	VendorID         *uint   `json:"vendor_id"`
	BrokerID         *uint   `json:"broker_id"`
	TransporterID    *uint   `json:"transporter_id"`
	Commission       float64 `json:"commission"`
	TransportCost    float64 `json:"transportation_cost"`
	CashDiscount     float64 `json:"cash_discount"`
	SaudaDate        string  `json:"sauda_date"`
	Status           string  `json:"status"`
	Remarks          string  `json:"remarks"`
}

type InwardSlipLot struct {
	LotNo          string  `json:"lot_no"`
	Item           string  `json:"item"`
	Bags           int     `json:"bags"`
	BillWeight     float64 `json:"bill_weight"`
	ReceivedWeight float64 `json:"received_weight"`
	Rate           float64 `json:"rate"`
	Amount         float64 `json:"amount"`
}

type InwardSlipPass struct {
	ID        string          `json:"id"`
	SlipNo    string          `json:"slip_no"`
	SaudaID   string          `json:"sauda_id"`
	VehicleNo string          `json:"vehicle_no"`
	PartyName string          `json:"party_name"`
	SlipDate  string          `json:"slip_date"`
	Remarks   string          `json:"remarks"`
	Lots      []InwardSlipLot `json:"lots"`
}

type Purchase struct {
	ID            string  `json:"id"`
	PurchaseNo    string  `json:"purchase_no"`
	SaudaID       string  `json:"sauda_id"`
	VendorID      uint    `json:"vendor_id"`
	InwardSlipID  *string `json:"inward_slip_id"`
	Rate          float64 `json:"rate"`
	TotalWeight   float64 `json:"total_weight"`
	TotalAmount   float64 `json:"total_amount"`
	IgstPercent   float64 `json:"igst_percent"`
	IgstAmount    float64 `json:"igst_amount"`
	PurchaseDate  string  `json:"purchase_date"`
	TransportBill string  `json:"transportation_bill_url"`
	PurchaseBill  string  `json:"purchase_bill_url"`
	Bilti         string  `json:"bilti_url"`
	EwayBill      string  `json:"eway_bill_url"`
	Remarks       string  `json:"remarks"`
}

type PaymentCharge struct {
	ChargeName string  `json:"charge_name"`
	ChargeType string  `json:"charge_type"`
	Value      float64 `json:"value"`
}

type PaymentAdvice struct {
	ID             string          `json:"id"`
	AdviceNo       string          `json:"advice_no"`
	PurchaseID     string          `json:"purchase_id"`
	Amount         float64         `json:"amount"`
	NetPayable     float64         `json:"net_payable"`
	Status         string          `json:"status"`
	PaymentSlipURL string          `json:"payment_slip_url"`
	AdviceDate     string          `json:"advice_date"`
	Remarks        string          `json:"remarks"`
	Charges        []PaymentCharge `json:"charges"`
}

func (c *Client) SaudaByID(ctx context.Context, id string) (*Sauda, error) {
	var out Sauda
	if err := c.get(ctx, "/saudas/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSauda(ctx context.Context, in *Sauda) (*Sauda, error) {
	var out Sauda
	if err := c.post(ctx, "/saudas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSauda(ctx context.Context, id string, in *Sauda) (*Sauda, error) {
	var out Sauda
	if err := c.put(ctx, "/saudas/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSauda(ctx context.Context, id string) error {
	return c.delete(ctx, "/saudas/"+id)
}

// InwardSlipsBySauda lists slips for a sauda, newest first
func (c *Client) InwardSlipsBySauda(ctx context.Context, saudaID string) ([]InwardSlipPass, error) {
	var out []InwardSlipPass
	q := url.Values{"sauda_id": {saudaID}}
	if err := c.get(ctx, "/inward-slip-passes", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) InwardSlipByID(ctx context.Context, id string) (*InwardSlipPass, error) {
	var out InwardSlipPass
	if err := c.get(ctx, "/inward-slip-passes/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateInwardSlip(ctx context.Context, in *InwardSlipPass) (*InwardSlipPass, error) {
	var out InwardSlipPass
	if err := c.post(ctx, "/inward-slip-passes", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PurchasesBySauda lists purchases for a sauda, newest first
func (c *Client) PurchasesBySauda(ctx context.Context, saudaID string) ([]Purchase, error) {
	var out []Purchase
	q := url.Values{"sauda_id": {saudaID}}
	if err := c.get(ctx, "/purchases", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PurchaseByID(ctx context.Context, id string) (*Purchase, error) {
	var out Purchase
	if err := c.get(ctx, "/purchases/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePurchase(ctx context.Context, in *Purchase) (*Purchase, error) {
	var out Purchase
	if err := c.post(ctx, "/purchases", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PaymentAdvicesByPurchase lists advices for a purchase, newest first
func (c *Client) PaymentAdvicesByPurchase(ctx context.Context, purchaseID string) ([]PaymentAdvice, error) {
	var out []PaymentAdvice
	q := url.Values{"purchase_id": {purchaseID}}
	if err := c.get(ctx, "/payment-advices", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PaymentAdviceByID(ctx context.Context, id string) (*PaymentAdvice, error) {
	var out PaymentAdvice
	if err := c.get(ctx, "/payment-advices/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePaymentAdvice(ctx context.Context, in *PaymentAdvice) (*PaymentAdvice, error) {
	var out PaymentAdvice
	if err := c.post(ctx, "/payment-advices", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
