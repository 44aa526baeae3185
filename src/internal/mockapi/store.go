package mockapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/casava/admin-console/src/internal/stats"
)

// customerNamespace derives stable ids for seeded customers.
var customerNamespace = uuid.MustParse("6f1c8f4e-2a43-4f57-9d0c-5d7d3f4f8a21")

var seedNames = [][2]string{
	{"Ada", "Okafor"}, {"Bola", "Adeyemi"}, {"Chidi", "Eze"}, {"Damilola", "Bello"},
	{"Emeka", "Nwosu"}, {"Funke", "Akindele"}, {"Garba", "Musa"}, {"Halima", "Sani"},
	{"Ifeoma", "Obi"}, {"Jide", "Kosoko"}, {"Kemi", "Adetiba"}, {"Lanre", "Olu"},
	{"Musa", "Aliyu"}, {"Ngozi", "Iwu"}, {"Ope", "Ajayi"}, {"Rotimi", "Alakija"},
	{"Sade", "Balogun"}, {"Tunde", "Bakare"}, {"Uche", "Nnaji"}, {"Yemi", "Alade"},
	{"Zainab", "Ibrahim"},
}

// Store is the in-memory data behind the mock API.
type Store struct {
	mu        sync.RWMutex
	customers []stats.Customer

	smedan  stats.SmedanStats
	d2c     stats.D2CStats
	b2b     stats.B2BStats
	finance stats.FinanceStats
}

// NewStore creates a store seeded with sample customers and statistics.
func NewStore() *Store {
	s := &Store{
		smedan: stats.SmedanStats{ChurnRate: 5, Difference: 1.5, TotalBusinessGroSubscribers: 1240, TotalSignup: 3180},
		d2c: stats.D2CStats{
			TotalSignups: 5400, TotalVerifiedUsers: 4100, TotalPoliciesCreated: 2950,
			TotalPremiumPayments: 18250000, TotalActivePolicies: 2600, TotalInactivePolicies: 350,
		},
		b2b: stats.B2BStats{
			TotalPartners: 38, TotalPoliciesCreated: 7200, TotalPartnerPremiumPayments: 41300000,
			TotalActivePartnerPolicies: 6900, TotalInactivePartnerPolicies: 300, TotalPartnerCustomers: 6500,
		},
		finance: stats.FinanceStats{TotalPolicies: 10150, TotalPremiumPayments: 59550000, TotalTransactions: 23800},
	}

	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for i, n := range seedNames {
		email := strings.ToLower(n[0]+"."+n[1]) + "@example.com"
		s.customers = append(s.customers, stats.Customer{
			ID:        uuid.NewSHA1(customerNamespace, []byte(email)).String(),
			FirstName: n[0],
			LastName:  n[1],
			Email:     email,
			Phone:     fmt.Sprintf("+23480300000%02d", i),
			Verified:  i%3 != 0,
			CreatedAt: created.AddDate(0, 0, i),
		})
	}
	return s
}

func (s *Store) Smedan() stats.SmedanStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.smedan
}

func (s *Store) D2C() stats.D2CStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d2c
}

func (s *Store) B2B() stats.B2BStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.b2b
}

func (s *Store) Finance() stats.FinanceStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finance
}

// SetSmedan replaces the SMEDAN statistics.
func (s *Store) SetSmedan(v stats.SmedanStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.smedan = v
}

// Customers returns the customers matching search (name or email, case
// insensitive), newest first.
func (s *Store) Customers(search string) []stats.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]stats.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if search == "" ||
			strings.Contains(strings.ToLower(c.FirstName+" "+c.LastName), search) ||
			strings.Contains(strings.ToLower(c.Email), search) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Customer returns the customer with id.
func (s *Store) Customer(id string) (stats.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return stats.Customer{}, false
}

// ErrEmailTaken is returned by AddCustomer for a duplicate email.
var ErrEmailTaken = errors.New("email has already been taken")

// AddCustomer stores a new customer and returns it.
func (s *Store) AddCustomer(c stats.Customer) (stats.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.customers {
		if strings.EqualFold(existing.Email, c.Email) {
			return stats.Customer{}, ErrEmailTaken
		}
	}

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	s.customers = append(s.customers, c)
	return c, nil
}
