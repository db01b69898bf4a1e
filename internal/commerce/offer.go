package commerce

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ebalci/pazaryeri/internal/model"
)

type submitOfferRequest struct {
	OwnerID   int64   `json:"ownerId"`
	BuyerID   int64   `json:"buyerId"`
	ProductID int64   `json:"productId"`
	Price     float64 `json:"price"`
}

// OfferResult is the outcome payload the API returns for offer and
// purchase operations.
type OfferResult struct {
	IsSuccess bool   `json:"IsSuccess"`
	Message   string `json:"Message"`
}

type offerResponse struct {
	Data OfferResult `json:"data"`
}

// SubmitOffer places a new price offer on a product.
func (c *Client) SubmitOffer(ctx context.Context, ownerID, buyerID, productID int64, price float64) (*OfferResult, error) {
	var resp offerResponse
	req := submitOfferRequest{OwnerID: ownerID, BuyerID: buyerID, ProductID: productID, Price: price}
	if err := c.postJSON(ctx, "/Offer/AddOffer", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

type acceptOfferRequest struct {
	OfferID int64 `json:"offerId"`
	UserID  int64 `json:"userId"`
}

// AcceptOffer resolves an open offer in the bidder's favor. The API
// declines it when the offer is already resolved or not the caller's.
func (c *Client) AcceptOffer(ctx context.Context, offerID, userID int64) error {
	req := acceptOfferRequest{OfferID: offerID, UserID: userID}
	return c.postJSON(ctx, "/Offer/AcceptOffer", req, nil)
}

type rejectOfferRequest struct {
	OfferID int64 `json:"offerId"`
}

// RejectOffer resolves an open offer against the bidder.
func (c *Client) RejectOffer(ctx context.Context, offerID int64) error {
	return c.postJSON(ctx, "/Offer/RejectOffer", rejectOfferRequest{OfferID: offerID}, nil)
}

type buyProductRequest struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
}

// BuyProduct purchases a product outright, bypassing negotiation.
func (c *Client) BuyProduct(ctx context.Context, userID, productID int64) (*OfferResult, error) {
	var resp offerResponse
	if err := c.postJSON(ctx, "/Offer/BuyProduct", buyProductRequest{UserID: userID, ProductID: productID}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// IncomingOffers lists offers placed on the user's own products.
func (c *Client) IncomingOffers(ctx context.Context, userID int64) ([]model.Offer, error) {
	var out []model.Offer
	q := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	if err := c.getJSON(ctx, "/Offer/GetOfferOfUser", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OutgoingOffers lists offers the user has placed on other products.
func (c *Client) OutgoingOffers(ctx context.Context, userID int64) ([]model.Offer, error) {
	var out []model.Offer
	q := url.Values{"userId": {strconv.FormatInt(userID, 10)}}
	if err := c.getJSON(ctx, "/Offer/PostOfferOfUser", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
