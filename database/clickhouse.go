package database

import (
	"context"
	"fmt"
	"kucukaslan/timeapp/config"
	"kucukaslan/timeapp/domain"
	"log"
	"time"

	"github.com/uptrace/go-clickhouse/ch"
)

var clickHouseDB *ch.DB

// InitClickHouse initializes the ClickHouse database connection used for
// visit analytics. Disabled configuration is not an error.
func InitClickHouse(ctx context.Context, cfg *config.ClickHouseConfig) error {
	if !cfg.Enabled {
		log.Println("ClickHouse disabled, visit analytics unavailable")
		return nil
	}

	dsn := cfg.GetClickHouseDSN()

	// Connect without TLS since ClickHouse native protocol doesn't use TLS by default
	db := ch.Connect(
		ch.WithDSN(dsn),
		ch.WithInsecure(true), // Disable TLS for native protocol
	)

	if err := InitVisitsTable(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize visits table: %w", err)
	}

	clickHouseDB = db
	log.Println("ClickHouse connection established successfully")

	return nil
}

// CloseClickHouse closes the ClickHouse database connection
func CloseClickHouse() error {
	if clickHouseDB != nil {
		if err := clickHouseDB.Close(); err != nil {
			return fmt.Errorf("failed to close ClickHouse connection: %w", err)
		}
		clickHouseDB = nil
		log.Println("ClickHouse connection closed")
	}
	return nil
}

// InitVisitsTable creates the visits table if it doesn't exist
func InitVisitsTable(ctx context.Context, db *ch.DB) error {
	_, err := db.NewCreateTable().
		Model((*Visit)(nil)).
		Engine("ReplacingMergeTree(ingested_at)").
		Order("timestamp, path, client_ip").
		IfNotExists().
		Exec(ctx)

	return err
}

// GetClickHouseDB returns the ClickHouse database instance
func GetClickHouseDB() ClickHouseDB {
	return ClickHouseDB{clickHouseDB}
}

type ClickHouseDB struct {
	*ch.DB
}

var _ domain.VisitAnalytics = ClickHouseDB{}

func (c ClickHouseDB) Connected() bool {
	return c.DB != nil
}

// HealthCheck verifies that the ClickHouse connection is alive
func (c ClickHouseDB) HealthCheck(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("ClickHouse connection is not initialized")
	}
	return c.Ping(ctx)
}

// Visit represents the visits table structure for ClickHouse ORM
type Visit struct {
	ch.CHModel `ch:"table:visits,partition:toYYYYMMDD(timestamp)"`
	Path       string    `ch:"path,lc"`
	Referrer   string    `ch:"referrer,lc"`
	UserAgent  string    `ch:"user_agent"`
	ClientIP   string    `ch:"client_ip"`
	Timestamp  time.Time `ch:"timestamp"`

	IngestedAt time.Time `ch:"ingested_at,default:now()"`
}

// VisitColumnar: visits in columnar format for batch inserts
type VisitColumnar struct {
	ch.CHModel `ch:"table:visits,partition:toYYYYMMDD(timestamp),columnar"`
	Path       []string    `ch:"path,lc"`
	Referrer   []string    `ch:"referrer,lc"`
	UserAgent  []string    `ch:"user_agent"`
	ClientIP   []string    `ch:"client_ip"`
	Timestamp  []time.Time `ch:"timestamp"`

	IngestedAt []time.Time `ch:"ingested_at,default:now()"`
}

// SaveVisits saves multiple visits using ClickHouse's native columnar insert:
// data is sent column-by-column as arrays
func (c ClickHouseDB) SaveVisits(ctx context.Context, visits []domain.VisitEvent) error {
	if c.DB == nil {
		return fmt.Errorf("database connection is nil")
	}

	if len(visits) == 0 {
		return fmt.Errorf("no visits to insert")
	}

	_, err := c.DB.NewInsert().
		Model(mapVisitsToColumnar(visits, time.Now())).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to columnar insert visits: %w", err)
	}

	return nil
}

func mapVisitsToColumnar(visits []domain.VisitEvent, now time.Time) *VisitColumnar {
	batchSize := len(visits)
	columns := &VisitColumnar{
		Path:       make([]string, 0, batchSize),
		Referrer:   make([]string, 0, batchSize),
		UserAgent:  make([]string, 0, batchSize),
		ClientIP:   make([]string, 0, batchSize),
		Timestamp:  make([]time.Time, 0, batchSize),
		IngestedAt: make([]time.Time, 0, batchSize),
	}

	for _, visit := range visits {
		columns.Path = append(columns.Path, visit.Path)
		columns.Referrer = append(columns.Referrer, visit.Referrer)
		columns.UserAgent = append(columns.UserAgent, visit.UserAgent)
		columns.ClientIP = append(columns.ClientIP, visit.ClientIP)
		columns.Timestamp = append(columns.Timestamp, visit.Timestamp)
		columns.IngestedAt = append(columns.IngestedAt, now)
	}
	return columns
}

type visitMetricRow struct {
	// The "Bucket" holds the group name (e.g., "2024-08-25 10:00:00" or "/pricing")
	Bucket         string `ch:"bucket"`
	TotalVisits    uint64 `ch:"total_visits"`
	UniqueVisitors uint64 `ch:"unique_visitors"`
}

// visitGroupExpressions is the allowlist of group_by values; anything else
// never reaches the query.
var visitGroupExpressions = map[string]string{
	"hour":     "toString(toStartOfHour(timestamp))",
	"day":      "toString(toStartOfDay(timestamp))",
	"week":     "toString(toStartOfWeek(timestamp))",
	"month":    "toString(toStartOfMonth(timestamp))",
	"year":     "toString(toStartOfYear(timestamp))",
	"path":     "path",
	"referrer": "referrer",
}

// IsVisitGroup reports whether group is an accepted group_by value
func IsVisitGroup(group string) bool {
	_, ok := visitGroupExpressions[group]
	return ok
}

// GetVisitMetrics retrieves aggregated metrics from the visits table
func (c ClickHouseDB) GetVisitMetrics(ctx context.Context, request domain.VisitMetricRequest) ([]domain.VisitMetric, error) {
	if c.DB == nil {
		return nil, domain.ErrAnalyticsDisabled
	}

	query := visitMetricsQuery(c.DB, request)

	var rows []visitMetricRow
	if err := query.Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to query visit metrics: %w", err)
	}

	metrics := make([]domain.VisitMetric, len(rows))
	for i, row := range rows {
		metrics[i] = domain.VisitMetric{
			Bucket:         row.Bucket,
			TotalVisits:    row.TotalVisits,
			UniqueVisitors: row.UniqueVisitors,
		}
	}
	return metrics, nil
}

func visitMetricsQuery(db *ch.DB, request domain.VisitMetricRequest) *ch.SelectQuery {
	var groupExpr string
	if request.GroupBy != nil {
		groupExpr = visitGroupExpressions[*request.GroupBy]
	}

	query := db.NewSelect().
		// FINAL forces ClickHouse to deduplicate rows before counting.
		TableExpr("visits FINAL")

	if groupExpr != "" {
		query = query.ColumnExpr("? AS bucket", ch.Safe(groupExpr))
	} else {
		query = query.ColumnExpr("'total' AS bucket")
	}
	query = query.
		ColumnExpr("count() AS total_visits").
		ColumnExpr("uniqExact(client_ip) AS unique_visitors")

	if request.From != nil {
		query = query.Where("timestamp >= ?", time.Unix(*request.From, 0))
	}
	if request.To != nil {
		query = query.Where("timestamp <= ?", time.Unix(*request.To, 0))
	}
	if groupExpr != "" {
		query = query.GroupExpr(groupExpr)
		query = query.OrderExpr("bucket ASC")
	}
	return query
}
