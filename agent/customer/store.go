// Package customer implements the customer store port over Postgres.
package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/tanpawarit/telecom-support-agent/agent/contract"
	statex "github.com/tanpawarit/telecom-support-agent/agent/state"
)

type Config struct {
	DSN     string        `envconfig:"DSN" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"5s"`
}

// PostgresStore reads the customers table. It holds a shared connection
// pool and is safe for concurrent lookups.
type PostgresStore struct {
	db *bun.DB
}

var _ contractx.CustomerStore = (*PostgresStore)(nil)

func NewPostgresStore(cfg Config) (*PostgresStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("customer store dsn is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(timeout),
	))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Lookup(ctx context.Context, customerID string) (*statex.CustomerRecord, error) {
	id := strings.TrimSpace(customerID)
	if id == "" {
		return nil, fmt.Errorf("%w: customer id is empty", contractx.ErrValidation)
	}

	var row customerRow
	err := s.db.NewSelect().
		Model(&row).
		Where("customer_id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, contractx.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup customer id=%s: %w", id, err)
	}

	return row.record(), nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

type customerRow struct {
	bun.BaseModel `bun:"table:customers,alias:c"`

	CustomerID         string `bun:"customer_id,pk"`
	Name               string `bun:"name"`
	Age                int    `bun:"age"`
	Gender             string `bun:"gender"`
	Location           string `bun:"location"`
	PlanSubscribed     string `bun:"plan_subscribed"`
	Device             string `bun:"device"`
	PlanDetails        string `bun:"plan_details"`
	NetworkType        string `bun:"network_type"`
	JoinDate           string `bun:"join_date"`
	LastReportedIssue  string `bun:"last_reported_issue"`
	ResolutionProvided string `bun:"resolution_provided"`
}

func (r *customerRow) record() *statex.CustomerRecord {
	return &statex.CustomerRecord{
		CustomerID:         r.CustomerID,
		Name:               r.Name,
		Age:                r.Age,
		Gender:             r.Gender,
		Location:           r.Location,
		PlanSubscribed:     r.PlanSubscribed,
		Device:             r.Device,
		PlanDetails:        r.PlanDetails,
		NetworkType:        r.NetworkType,
		JoinDate:           r.JoinDate,
		LastReportedIssue:  r.LastReportedIssue,
		ResolutionProvided: r.ResolutionProvided,
	}
}
