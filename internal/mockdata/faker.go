package mockdata

import (
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// maxUniqueAttempts bounds the reject-and-retry loops used for unique
// names; gofakeit's name pools are large enough that the bound is never
// hit at realistic record counts.
const maxUniqueAttempts = 10000

var (
	ErrNoPrerequisites      = errors.New("prerequisite collection is empty")
	ErrUniqueRetryExhausted = errors.New("could not draw a unique value")
)

var (
	engineeringFields = []string{"Generators", "Pumps", "Hydraulic Systems", "HVAC", "Marine Machinery"}
	manufacturers     = []string{"Caterpillar", "Siemens", "Hitachi", "Schneider Electric", "KSB"}
	cities            = []string{"Cairo", "Alexandria", "Al Sharqiyah", "Aswan", "Matruh"}
	addressTypes      = []string{"Main Office", "Headquarters", "Office", "Branch"}
	documentKinds     = []string{"Contract", "Specification", "Order", "Manual", "Invoice", "Service Agreement", "Purchase Order"}
)

type StatusCode struct {
	Value int
	Label string
}

var ProjectStatuses = []StatusCode{
	{0, "Active"}, {1, "Inactive"}, {2, "Archived"}, {3, "Pending"},
	{4, "Rejected"}, {5, "Cancelled"}, {6, "Completed"}, {7, "On Hold"},
	{8, "Pending Approval"}, {9, "Pending Payment"}, {10, "Pending Delivery"},
	{11, "Issue"},
}

var Currencies = []StatusCode{
	{0, "USD"}, {1, "EUR"}, {2, "GBP"}, {3, "JPY"}, {4, "INR"},
	{5, "CNY"}, {7, "AED"}, {8, "SAR"}, {9, "EGP"},
}

// CurrencyEGP is the currency code every generated line item is priced in.
const CurrencyEGP = 9

// Generator produces fake field values from a seeded source. All
// randomness flows through the embedded faker, so two generators built
// with the same seed and reference time emit identical datasets.
type Generator struct {
	faker    *gofakeit.Faker
	now      time.Time
	password string
}

// NewGenerator seeds the value source; seed 0 falls back to the clock.
// password is the shared placeholder credential stamped on every user.
func NewGenerator(seed int64, password string) *Generator {
	return NewGeneratorAt(seed, time.Now(), password)
}

// NewGeneratorAt pins the reference time used for past/recent
// timestamps, which tests need for reproducible output.
func NewGeneratorAt(seed int64, now time.Time, password string) *Generator {
	return &Generator{
		faker:    gofakeit.New(seed),
		now:      now,
		password: password,
	}
}

func (g *Generator) pick(values []string) string {
	return values[g.faker.IntRange(0, len(values)-1)]
}

func (g *Generator) index(n int) int {
	return g.faker.IntRange(0, n-1)
}

// pastDate falls within the year before the reference time.
func (g *Generator) pastDate() time.Time {
	return g.faker.DateRange(g.now.AddDate(-1, 0, 0), g.now)
}

// recentDate falls within the day before the reference time.
func (g *Generator) recentDate() time.Time {
	return g.faker.DateRange(g.now.Add(-24*time.Hour), g.now)
}

// registrationNumber has the XXX-XXX-XXX-XXXX shape used on company
// registration certificates in the source data.
func (g *Generator) registrationNumber() string {
	return fmt.Sprintf("%d-%d-%d-%d",
		g.faker.IntRange(100, 999),
		g.faker.IntRange(100, 999),
		g.faker.IntRange(100, 999),
		g.faker.IntRange(1000, 9999))
}

func (g *Generator) audit(users []User) Audit {
	return Audit{
		CreatedBy: users[g.index(len(users))].ID,
		CreatedAt: g.pastDate(),
		UpdatedBy: users[g.index(len(users))].ID,
		UpdatedAt: g.recentDate(),
	}
}

// unique redraws from draw until the value is new within seen, up to
// maxUniqueAttempts. The accepted value is recorded in seen.
func (g *Generator) unique(what string, seen map[string]bool, draw func() string) (string, error) {
	for attempt := 0; attempt < maxUniqueAttempts; attempt++ {
		v := draw()
		if !seen[v] {
			seen[v] = true
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %s after %d attempts", ErrUniqueRetryExhausted, what, maxUniqueAttempts)
}
