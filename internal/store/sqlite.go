package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mossreef/angler/internal/fish"
)

type SQLiteStore struct {
	db           *sql.DB
	addCatchStmt *sql.Stmt
	discoverStmt *sql.Stmt
}

func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db path: %w", err)
	}

	// DSN notes:
	// - _pragma=busy_timeout sets a lock wait
	// - _pragma=journal_mode(WAL) enables the write-ahead log
	// - _pragma=synchronous(NORMAL) sets the disk synchronizing
	//	 mode to NORMAL (recommended with WAL enabled)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", filepath.Clean(dbPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	addCatch, err := db.Prepare(`
		INSERT INTO catches (zone, key, name, tier, kg_tenths, price_cents, caught_at)
		VALUES (?,?,?,?,?,?,?)
	`)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	discover, err := db.Prepare(`
		INSERT INTO discovery (zone, key, name, tier, count, max_kg_tenths, max_value_cents)
		VALUES (?,?,?,?,1,?,?)
		ON CONFLICT (zone, key) DO UPDATE SET
			count = count + 1,
			max_kg_tenths = MAX(max_kg_tenths, excluded.max_kg_tenths),
			max_value_cents = MAX(max_value_cents, excluded.max_value_cents)
	`)
	if err != nil {
		_ = addCatch.Close()
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db, addCatchStmt: addCatch, discoverStmt: discover}, nil
}

func (s *SQLiteStore) Close() error {
	if s.addCatchStmt != nil {
		_ = s.addCatchStmt.Close()
	}
	if s.discoverStmt != nil {
		_ = s.discoverStmt.Close()
	}
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS player (
			id               INTEGER PRIMARY KEY CHECK (id = 1),
			balance          REAL    NOT NULL,
			xp               INTEGER NOT NULL,
			level            INTEGER NOT NULL,
			streak           INTEGER NOT NULL,
			zone             TEXT    NOT NULL,
			fast_price       REAL    NOT NULL,
			has_boat         INTEGER NOT NULL DEFAULT 0,
			has_submarine    INTEGER NOT NULL DEFAULT 0,
			has_torch        INTEGER NOT NULL DEFAULT 0,
			has_trench_pass  INTEGER NOT NULL DEFAULT 0,
			has_ancient_pass INTEGER NOT NULL DEFAULT 0,
			has_ancient_key  INTEGER NOT NULL DEFAULT 0,
			has_floating_key INTEGER NOT NULL DEFAULT 0,
			hour             INTEGER NOT NULL DEFAULT 0,
			day              INTEGER NOT NULL DEFAULT 0,
			moon_event       TEXT    NOT NULL DEFAULT '',
			daily_event      TEXT    NOT NULL DEFAULT '',
			daily_event_day  INTEGER NOT NULL DEFAULT 0,
			floating_day     INTEGER NOT NULL DEFAULT 0,
			floating_today   INTEGER NOT NULL DEFAULT 0,
			floating_visible INTEGER NOT NULL DEFAULT 0,
			trap_stock       INTEGER NOT NULL DEFAULT 0,
			bait_normal      INTEGER NOT NULL DEFAULT 0,
			bait_advanced    INTEGER NOT NULL DEFAULT 0,
			bait_expert      INTEGER NOT NULL DEFAULT 0,
			bait_legend      INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS catches (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			zone         TEXT    NOT NULL,
			key          TEXT    NOT NULL,
			name         TEXT    NOT NULL,
			tier         INTEGER NOT NULL,
			kg_tenths    INTEGER NOT NULL,
			price_cents  INTEGER NOT NULL,
			caught_at    INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS discovery (
			zone             TEXT    NOT NULL,
			key              TEXT    NOT NULL,
			name             TEXT    NOT NULL,
			tier             INTEGER NOT NULL,
			count            INTEGER NOT NULL,
			max_kg_tenths    INTEGER NOT NULL,
			max_value_cents  INTEGER NOT NULL,
			PRIMARY KEY (zone, key)
		);

		CREATE TABLE IF NOT EXISTS quests (
			zone        TEXT    NOT NULL,
			idx         INTEGER NOT NULL,
			kind        INTEGER NOT NULL,
			target_key  TEXT    NOT NULL,
			target_name TEXT    NOT NULL,
			tier        INTEGER NOT NULL,
			amount      INTEGER NOT NULL,
			progress    INTEGER NOT NULL,
			reward      INTEGER NOT NULL,
			PRIMARY KEY (zone, idx)
		);

		CREATE TABLE IF NOT EXISTS traps (
			id        TEXT PRIMARY KEY,
			zone      TEXT    NOT NULL,
			bait      TEXT    NOT NULL,
			set_at    INTEGER NOT NULL,
			capacity  INTEGER NOT NULL,
			caught    INTEGER NOT NULL
		);
	`)
	return err
}

func (s *SQLiteStore) LoadPlayer(ctx context.Context) (PlayerRow, bool, error) {
	var p PlayerRow
	if s == nil || s.db == nil {
		return p, false, errors.New("store not initialized")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT balance, xp, level, streak, zone, fast_price,
			has_boat, has_submarine, has_torch, has_trench_pass,
			has_ancient_pass, has_ancient_key, has_floating_key,
			hour, day, moon_event, daily_event, daily_event_day,
			floating_day, floating_today, floating_visible,
			trap_stock, bait_normal, bait_advanced, bait_expert, bait_legend
		FROM player WHERE id = 1
	`)
	err := row.Scan(
		&p.Balance, &p.XP, &p.Level, &p.Streak, &p.Zone, &p.FastPrice,
		&p.HasBoat, &p.HasSubmarine, &p.HasTorch, &p.HasTrenchPass,
		&p.HasAncientPass, &p.HasAncientKey, &p.HasFloatingKey,
		&p.Hour, &p.Day, &p.MoonEvent, &p.DailyEvent, &p.DailyEventDay,
		&p.FloatingDay, &p.FloatingToday, &p.FloatingVisible,
		&p.TrapStock, &p.BaitNormal, &p.BaitAdvanced, &p.BaitExpert, &p.BaitLegend,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return p, false, nil
	}
	if err != nil {
		return p, false, err
	}
	return p, true, nil
}

func (s *SQLiteStore) SavePlayer(ctx context.Context, p PlayerRow) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO player (
			id, balance, xp, level, streak, zone, fast_price,
			has_boat, has_submarine, has_torch, has_trench_pass,
			has_ancient_pass, has_ancient_key, has_floating_key,
			hour, day, moon_event, daily_event, daily_event_day,
			floating_day, floating_today, floating_visible,
			trap_stock, bait_normal, bait_advanced, bait_expert, bait_legend
		) VALUES (1,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT (id) DO UPDATE SET
			balance = excluded.balance,
			xp = excluded.xp,
			level = excluded.level,
			streak = excluded.streak,
			zone = excluded.zone,
			fast_price = excluded.fast_price,
			has_boat = excluded.has_boat,
			has_submarine = excluded.has_submarine,
			has_torch = excluded.has_torch,
			has_trench_pass = excluded.has_trench_pass,
			has_ancient_pass = excluded.has_ancient_pass,
			has_ancient_key = excluded.has_ancient_key,
			has_floating_key = excluded.has_floating_key,
			hour = excluded.hour,
			day = excluded.day,
			moon_event = excluded.moon_event,
			daily_event = excluded.daily_event,
			daily_event_day = excluded.daily_event_day,
			floating_day = excluded.floating_day,
			floating_today = excluded.floating_today,
			floating_visible = excluded.floating_visible,
			trap_stock = excluded.trap_stock,
			bait_normal = excluded.bait_normal,
			bait_advanced = excluded.bait_advanced,
			bait_expert = excluded.bait_expert,
			bait_legend = excluded.bait_legend
	`,
		p.Balance, p.XP, p.Level, p.Streak, p.Zone, p.FastPrice,
		p.HasBoat, p.HasSubmarine, p.HasTorch, p.HasTrenchPass,
		p.HasAncientPass, p.HasAncientKey, p.HasFloatingKey,
		p.Hour, p.Day, p.MoonEvent, p.DailyEvent, p.DailyEventDay,
		p.FloatingDay, p.FloatingToday, p.FloatingVisible,
		p.TrapStock, p.BaitNormal, p.BaitAdvanced, p.BaitExpert, p.BaitLegend,
	)
	return err
}

func (s *SQLiteStore) AddCatch(ctx context.Context, c fish.Catch) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("store not initialized")
	}

	if c.CaughtAt.IsZero() {
		c.CaughtAt = time.Now()
	}

	res, err := s.addCatchStmt.ExecContext(ctx,
		c.Zone,
		c.Key,
		c.Name,
		int(c.Tier),
		kgTenths(c.Kg),
		priceCents(c.Price),
		c.CaughtAt.Unix(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) Inventory(ctx context.Context) ([]fish.Catch, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, zone, key, name, tier, kg_tenths, price_cents, caught_at
		FROM catches
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []fish.Catch
	for rows.Next() {
		var (
			c          fish.Catch
			tier       int
			kgT        int64
			cents      int64
			caughtUnix int64
		)
		if err := rows.Scan(&c.Id, &c.Zone, &c.Key, &c.Name, &tier, &kgT, &cents, &caughtUnix); err != nil {
			return nil, err
		}
		c.Tier = fish.RarityTier(tier)
		c.Kg = float64(kgT) / 10.0
		c.Price = float64(cents) / 100.0
		c.CaughtAt = time.Unix(caughtUnix, 0).UTC()
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) RemoveCatches(ctx context.Context, ids []int64) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}
	if len(ids) == 0 {
		return nil
	}

	ph := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM catches WHERE id IN ("+ph+")", args...)
	return err
}

func (s *SQLiteStore) ClearInventory(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM catches")
	return err
}

func (s *SQLiteStore) RecordDiscovery(ctx context.Context, c fish.Catch) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}
	_, err := s.discoverStmt.ExecContext(ctx,
		c.Zone, c.Key, c.Name, int(c.Tier),
		kgTenths(c.Kg), priceCents(c.Value()),
	)
	return err
}

func (s *SQLiteStore) Discovered(ctx context.Context, zone string) (map[string]DiscoveryRow, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT zone, key, name, tier, count, max_kg_tenths, max_value_cents
		FROM discovery WHERE zone = ?
	`, zone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]DiscoveryRow)
	for rows.Next() {
		var (
			d     DiscoveryRow
			tier  int
			kgT   int64
			cents int64
		)
		if err := rows.Scan(&d.Zone, &d.Key, &d.Name, &tier, &d.Count, &kgT, &cents); err != nil {
			return nil, err
		}
		d.Tier = fish.RarityTier(tier)
		d.MaxKg = float64(kgT) / 10.0
		d.MaxValue = float64(cents) / 100.0
		out[d.Key] = d
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ReplaceQuests(ctx context.Context, qs []QuestRow) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM quests"); err != nil {
		return err
	}
	for _, q := range qs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO quests (zone, idx, kind, target_key, target_name, tier, amount, progress, reward)
			VALUES (?,?,?,?,?,?,?,?,?)
		`, q.Zone, q.Idx, q.Kind, q.TargetKey, q.TargetName, q.Tier, q.Amount, q.Progress, q.Reward)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) LoadQuests(ctx context.Context) ([]QuestRow, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT zone, idx, kind, target_key, target_name, tier, amount, progress, reward
		FROM quests ORDER BY zone, idx
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []QuestRow
	for rows.Next() {
		var q QuestRow
		if err := rows.Scan(&q.Zone, &q.Idx, &q.Kind, &q.TargetKey, &q.TargetName, &q.Tier, &q.Amount, &q.Progress, &q.Reward); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ReplaceTraps(ctx context.Context, ts []TrapRow) error {
	if s == nil || s.db == nil {
		return errors.New("store not initialized")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM traps"); err != nil {
		return err
	}
	for _, t := range ts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO traps (id, zone, bait, set_at, capacity, caught)
			VALUES (?,?,?,?,?,?)
		`, t.Id, t.Zone, t.Bait, t.SetAt.Unix(), t.Capacity, t.Caught)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) LoadTraps(ctx context.Context) ([]TrapRow, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("store not initialized")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, zone, bait, set_at, capacity, caught FROM traps ORDER BY set_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TrapRow
	for rows.Next() {
		var (
			t       TrapRow
			setUnix int64
		)
		if err := rows.Scan(&t.Id, &t.Zone, &t.Bait, &setUnix, &t.Capacity, &t.Caught); err != nil {
			return nil, err
		}
		t.SetAt = time.Unix(setUnix, 0).UTC()
		out = append(out, t)
	}
	return out, rows.Err()
}

func kgTenths(kg float64) int64 {
	return int64(math.Round(kg * 10.0))
}

func priceCents(v float64) int64 {
	return int64(math.Round(v * 100.0))
}
