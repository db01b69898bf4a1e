package model

// OfferStatus is the negotiation state of an offer. Offered is the only
// non-terminal state; Accepted and Rejected admit no further transition.
type OfferStatus string

const (
	OfferStatusOffered  OfferStatus = "Offered"
	OfferStatusAccepted OfferStatus = "Accepted"
	OfferStatusRejected OfferStatus = "Rejected"
)

// Respondable reports whether accept/reject actions may still be offered
// to the product owner.
func (s OfferStatus) Respondable() bool {
	return s == OfferStatusOffered
}

// Display returns the Turkish status label shown on the account page.
func (s OfferStatus) Display() string {
	switch s {
	case OfferStatusOffered:
		return "Teklif Verildi"
	case OfferStatusAccepted:
		return "Teklif Kabul Edildi"
	case OfferStatusRejected:
		return "Teklif Red Edildi"
	}
	return string(s)
}

// Offer is one price negotiation between a bidder and a product owner.
type Offer struct {
	ID               int64       `json:"id"`
	ProductID        int64       `json:"productId"`
	ProductName      string      `json:"productName"`
	ProductOwnerID   int64       `json:"productOwnerId"`
	ProductOwnerName string      `json:"productOwnerName"`
	BidderID         int64       `json:"bidderId"`
	BidderName       string      `json:"bidderName"`
	OfferedPrice     float64     `json:"offeredPrice"`
	Status           OfferStatus `json:"status"`
}
