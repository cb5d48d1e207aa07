package http

import (
	"encoding/json"
	"time"

	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type ProductDTO struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Price        json.Number `json:"price"`
	PriceDisplay string      `json:"price_display"`
	Description  string      `json:"description"`
	ImageURL     string      `json:"image_url"`
}

type CartLineDTO struct {
	Product  ProductDTO  `json:"product"`
	Quantity int         `json:"quantity"`
	Subtotal json.Number `json:"subtotal"`
}

type CartDTO struct {
	Lines             []CartLineDTO `json:"lines"`
	TotalItems        int           `json:"total_items"`
	TotalPrice        json.Number   `json:"total_price"`
	TotalPriceDisplay string        `json:"total_price_display"`
}

type OrderItemDTO struct {
	ProductID   int64       `json:"product_id"`
	ProductName string      `json:"product_name"`
	Price       json.Number `json:"price"`
	Quantity    int         `json:"quantity"`
	Subtotal    json.Number `json:"subtotal"`
}

type OrderDTO struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	Items         []OrderItemDTO `json:"items"`
	Total         json.Number    `json:"total"`
	TotalDisplay  string         `json:"total_display"`
	Status        string         `json:"status"`
	PaymentMethod string         `json:"payment_method"`
	CreatedAt     string         `json:"created_at"`
}

type AddItemRequestDTO struct {
	ProductID *int64 `json:"product_id"`
}

type MergeItemDTO struct {
	ProductID *int64 `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type MergeItemsRequestDTO struct {
	Items []MergeItemDTO `json:"items"`
}

type UpdateQuantityRequestDTO struct {
	Quantity *int `json:"quantity"`
}

type CheckoutRequestDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CheckoutResponseDTO struct {
	OrderID   int64  `json:"order_id"`
	CreatedAt string `json:"created_at"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

func amount(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(domain.MinorUnits))
}

func convertProduct(p domain.Product, unit currency.Unit) ProductDTO {
	return ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		Price:        amount(p.Price),
		PriceDisplay: domain.NewMoney(p.Price, unit).String(),
		Description:  p.Description,
		ImageURL:     p.ImageURL,
	}
}

func convertCart(store *cart.Store, unit currency.Unit) CartDTO {
	lines := store.Lines()

	dto := CartDTO{
		Lines:             make([]CartLineDTO, 0, len(lines)),
		TotalItems:        store.TotalItems(),
		TotalPrice:        amount(store.TotalPrice()),
		TotalPriceDisplay: domain.NewMoney(store.TotalPrice(), unit).String(),
	}
	for _, line := range lines {
		dto.Lines = append(dto.Lines, CartLineDTO{
			Product:  convertProduct(line.Product, unit),
			Quantity: line.Quantity,
			Subtotal: amount(line.Subtotal()),
		})
	}

	return dto
}

func convertOrder(o domain.Order, unit currency.Unit) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       amount(item.UnitPrice),
			Quantity:    item.Quantity,
			Subtotal:    amount(item.Subtotal),
		})
	}

	return OrderDTO{
		ID:            o.ID,
		Name:          o.Customer.Name,
		Email:         o.Customer.Email,
		Phone:         o.Customer.Phone,
		Address:       o.Customer.Address,
		Items:         items,
		Total:         amount(o.Total),
		TotalDisplay:  domain.NewMoney(o.Total, unit).String(),
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339),
	}
}
