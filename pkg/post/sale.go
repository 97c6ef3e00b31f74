package post

import (
	"fmt"
)

// SalePost is a post offering an item for sale. Price and sold state are the
// only mutable post contents, and both mutations require the author's
// password.
type SalePost struct {
	base

	// guarded by base.mu
	price    float64
	location string
	sold     bool
}

// Price returns the current asking price. May be fractional after a discount.
func (p *SalePost) Price() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.price
}

// Location returns the pickup location.
func (p *SalePost) Location() string {
	return p.location
}

// Sold reports whether the item was marked sold.
func (p *SalePost) Sold() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sold
}

// Discount lowers the price by percent, authenticated against the author.
// Discounting an already sold item fails with ErrAlreadySold.
func (p *SalePost) Discount(percent float64, password string) error {
	if err := p.author.Authenticate(password); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sold {
		return ErrAlreadySold
	}
	p.price -= p.price * percent / 100
	return nil
}

// MarkSold marks the item sold, authenticated against the author.
// Re-marking a sold item is permitted and has no further effect.
func (p *SalePost) MarkSold(password string) error {
	if err := p.author.Authenticate(password); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.sold = true
	return nil
}

func (p *SalePost) Describe() string {
	p.mu.Lock()
	price, sold := p.price, p.sold
	p.mu.Unlock()

	status := "For sale"
	if sold {
		status = "Sold"
	}
	return fmt.Sprintf("%s posted a product for sale:\n%s! %s, price: %v, pickup from: %s",
		p.AuthorName(), status, p.Content(), price, p.location)
}
