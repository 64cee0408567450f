package client

import (
	"sync"

	"shopapi/internal/models"
)

// Ambient client-wide state is modeled as explicit context objects passed by
// reference to the pages that need them, instead of implicit global lookup.
// Each context is safe for use from concurrent page fetches.

type AuthContext struct {
	mu    sync.RWMutex
	user  *models.User
	token string
}

func NewAuthContext() *AuthContext {
	return &AuthContext{}
}

func (a *AuthContext) Set(user *models.User, token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user, a.token = user, token
}

func (a *AuthContext) User() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *AuthContext) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *AuthContext) SignedIn() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user != nil && a.token != ""
}

func (a *AuthContext) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user, a.token = nil, ""
}

type CartContext struct {
	mu    sync.RWMutex
	items []models.Product
}

func NewCartContext() *CartContext {
	return &CartContext{}
}

func (c *CartContext) Add(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, p)
}

func (c *CartContext) Items() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.items))
	copy(out, c.items)
	return out
}

// Total sums item prices; quantity is not part of the cart model.
func (c *CartContext) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var total float64
	for _, p := range c.items {
		total += p.Price
	}
	return total
}

func (c *CartContext) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

type SearchContext struct {
	mu      sync.RWMutex
	keyword string
	results []*models.Product
}

func NewSearchContext() *SearchContext {
	return &SearchContext{}
}

func (s *SearchContext) SetKeyword(keyword string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyword = keyword
}

func (s *SearchContext) Keyword() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyword
}

func (s *SearchContext) SetResults(results []*models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = results
}

func (s *SearchContext) Results() []*models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results
}
