package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/CynthiaM111/weshare-sub002/internal/service/ports"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const rideColumns = `id, category_id, agency_id, origin, destination, departure_time,
	estimated_arrival_time, seats, booked_seats, price, status, version, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

type rowSet interface {
	scanner
	Next() bool
	Err() error
	Close() error
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type RideRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRideRepo(db *dbpg.DB) *RideRepository {
	return &RideRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *RideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO rides (` + rideColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(ctx, query,
		ride.ID, ride.CategoryID, ride.AgencyID, ride.From, ride.To, ride.DepartureTime,
		ride.EstimatedArrivalTime, ride.Seats, ride.SeatCount(), ride.Price, ride.Status,
		ride.Version, ride.CreatedAt, ride.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ride: %w", err)
	}

	if err = insertBookings(ctx, tx, ride.ID, ride.Bookings); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *RideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ride: %w", err)
	}

	ride, err := scanRide(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRideNotFound
		}
		return nil, fmt.Errorf("scan ride: %w", err)
	}

	if err = r.attachBookings(ctx, []*domain.Ride{ride}); err != nil {
		return nil, err
	}

	return ride, nil
}

func (r *RideRepository) List(ctx context.Context, filter domain.RideFilter) ([]*domain.Ride, error) {
	where, args := filterClause(filter)
	query := `SELECT ` + rideColumns + ` FROM rides` + where + ` ORDER BY departure_time, created_at`

	return r.queryRides(ctx, query, args...)
}

func (r *RideRepository) ListByRider(ctx context.Context, userID string) ([]*domain.Ride, error) {
	query := `SELECT ` + rideColumns + `
			  FROM rides
			  WHERE id IN (SELECT ride_id FROM ride_bookings WHERE user_id = $1)
			  ORDER BY departure_time DESC`

	return r.queryRides(ctx, query, userID)
}

// Update locks the ride row for the duration of fn, so ledger mutations on
// the same ride run one after another.
func (r *RideRepository) Update(ctx context.Context, id string, fn ports.RideMutation) (*domain.Ride, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1 FOR UPDATE`
	ride, err := scanRide(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRideNotFound
		}
		return nil, fmt.Errorf("lock ride: %w", err)
	}

	rows, err := tx.QueryContext(ctx, bookingsQuery, pq.Array([]string{id}))
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	byRide, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}
	ride.Bookings = byRide[id]

	changed, err := applyMutation(ctx, tx, ride, fn)
	if err != nil {
		return nil, err
	}
	if !changed {
		return ride, nil
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return ride, nil
}

// applyMutation runs fn on the locked ride and writes the difference back
// through tx. It reports false, writing nothing, when fn left the bookings
// and the status as they were.
func applyMutation(ctx context.Context, tx execer, ride *domain.Ride, fn ports.RideMutation) (bool, error) {
	before := slices.Clone(ride.Bookings)
	status := ride.Status

	if err := fn(ride); err != nil {
		return false, err
	}

	diff := domain.DiffBookings(before, ride.Bookings)
	if diff.Empty() && ride.Status == status {
		return false, nil
	}

	if len(diff.Removed) > 0 {
		ids := make([]string, 0, len(diff.Removed))
		for _, b := range diff.Removed {
			ids = append(ids, b.ID)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM ride_bookings WHERE id = ANY($1)`, pq.Array(ids)); err != nil {
			return false, fmt.Errorf("delete bookings: %w", err)
		}
	}
	for _, b := range diff.Changed {
		if _, err := tx.ExecContext(ctx,
			`UPDATE ride_bookings SET check_in_status = $2 WHERE id = $1`,
			b.ID, b.CheckInStatus,
		); err != nil {
			return false, fmt.Errorf("update booking: %w", err)
		}
	}
	if err := insertBookings(ctx, tx, ride.ID, diff.Added); err != nil {
		return false, err
	}

	ride.BookedSeats = ride.SeatCount()
	ride.Version++
	ride.UpdatedAt = time.Now().UTC()

	_, err := tx.ExecContext(ctx,
		`UPDATE rides
		 SET booked_seats = $2, status = $3, version = $4, updated_at = $5
		 WHERE id = $1`,
		ride.ID, ride.BookedSeats, ride.Status, ride.Version, ride.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update ride: %w", err)
	}

	return true, nil
}

// Delete removes a ride only while nobody is booked on it.
func (r *RideRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM rides WHERE id = $1 AND booked_seats = 0`, id)
	if err != nil {
		return fmt.Errorf("delete ride: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ride rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}

	// не удалили: либо нет такой поездки, либо есть брони
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT EXISTS (SELECT 1 FROM rides WHERE id = $1)`, id)
	if err != nil {
		return fmt.Errorf("check ride: %w", err)
	}
	var exists bool
	if err = row.Scan(&exists); err != nil {
		return fmt.Errorf("scan ride exists: %w", err)
	}
	if exists {
		return domain.ErrRideHasBookings
	}

	return domain.ErrRideNotFound
}

func (r *RideRepository) queryRides(ctx context.Context, query string, args ...any) ([]*domain.Ride, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rides: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ride: %w", err)
		}
		res = append(res, ride)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rides: %w", err)
	}

	if err = r.attachBookings(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

const bookingsQuery = `SELECT ride_id, id, user_id, check_in_status, created_at
					   FROM ride_bookings
					   WHERE ride_id = ANY($1)
					   ORDER BY ride_id, seq`

func (r *RideRepository) attachBookings(ctx context.Context, rides []*domain.Ride) error {
	if len(rides) == 0 {
		return nil
	}

	ids := make([]string, 0, len(rides))
	for _, ride := range rides {
		ids = append(ids, ride.ID)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, bookingsQuery, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}

	byRide, err := scanBookings(rows)
	if err != nil {
		return err
	}

	for _, ride := range rides {
		ride.Bookings = byRide[ride.ID]
		if ride.Bookings == nil {
			ride.Bookings = []domain.Booking{}
		}
	}

	return nil
}

func scanBookings(rows rowSet) (map[string][]domain.Booking, error) {
	defer rows.Close()

	res := make(map[string][]domain.Booking)
	for rows.Next() {
		var (
			rideID string
			b      domain.Booking
		)
		if err := rows.Scan(&rideID, &b.ID, &b.UserID, &b.CheckInStatus, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res[rideID] = append(res[rideID], b)
	}

	return res, rows.Err()
}

func insertBookings(ctx context.Context, tx execer, rideID string, bookings []domain.Booking) error {
	query := `INSERT INTO ride_bookings (id, ride_id, user_id, check_in_status, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	for _, b := range bookings {
		if _, err := tx.ExecContext(ctx, query, b.ID, rideID, b.UserID, b.CheckInStatus, b.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateBooking
			}
			return fmt.Errorf("insert booking: %w", err)
		}
	}

	return nil
}

// filterClause renders the WHERE part of a ride listing with positional args.
func filterClause(filter domain.RideFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.From != "" {
		add("origin = $%d", filter.From)
	}
	if filter.To != "" {
		add("destination = $%d", filter.To)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if !filter.Date.IsZero() {
		d := filter.Date.UTC()
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		add("departure_time >= $%d", day)
		add("departure_time < $%d", day.AddDate(0, 0, 1))
	}
	if !filter.ArrivalBefore.IsZero() {
		add("estimated_arrival_time <= $%d", filter.ArrivalBefore)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanRide(row scanner) (*domain.Ride, error) {
	var ride domain.Ride
	if err := row.Scan(
		&ride.ID, &ride.CategoryID, &ride.AgencyID, &ride.From, &ride.To, &ride.DepartureTime,
		&ride.EstimatedArrivalTime, &ride.Seats, &ride.BookedSeats, &ride.Price, &ride.Status,
		&ride.Version, &ride.CreatedAt, &ride.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &ride, nil
}
